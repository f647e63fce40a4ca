/*
File    : lox/internal/resolver/resolver.go

Package resolver implements the static semantic pass: a single
traversal over the parsed statements that computes, for every local
variable/this/super reference, the lexical distance to its binding
frame and deposits it into the interpreter's side-table, and that
diagnoses scope misuses (self-referential initializers, redeclaration,
return/this/super outside their contexts, self-inheriting classes).

The resolver depends on the AST and on a narrow Depositor interface
satisfied by the interpreter; it never depends on interpreter
evaluation logic itself.
*/
package resolver

import (
	"github.com/golox/lox/internal/ast"
	"github.com/golox/lox/internal/token"
)

// Depositor receives the resolved lexical depth for one expression node.
// The interpreter implements this by storing into its own locals map,
// keyed on node identity.
type Depositor interface {
	Resolve(expr ast.Expr, depth int)
}

// Reporter receives resolve-time diagnostics anchored to a token.
type Reporter interface {
	ErrorAtToken(tok token.Token, message string)
}

type functionType int

const (
	funcNone functionType = iota
	funcFunction
	funcMethod
	funcInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// bindingState tracks whether a name has merely been declared (visible
// but not yet safe to read, guarding against `var a = a;`) or fully
// defined.
type bindingState bool

const (
	declared bindingState = false
	defined  bindingState = true
)

// Resolver walks a statement list exactly once, maintaining a stack of
// block-scoped name tables.
type Resolver struct {
	depositor Depositor
	reporter  Reporter

	scopes []map[string]bindingState

	currentFunction functionType
	currentClass    classType

	hadError bool
}

// New creates a Resolver that deposits resolution results into d and
// reports diagnostics to r.
func New(d Depositor, r Reporter) *Resolver {
	return &Resolver{depositor: d, reporter: r}
}

// Resolve walks every top-level statement. It returns true if any
// diagnostic was reported, in which case the run is a static error and
// the tree must not be evaluated.
func (res *Resolver) Resolve(stmts []ast.Stmt) bool {
	res.resolveStmts(stmts)
	return res.hadError
}

func (res *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		res.resolveStmt(s)
	}
}

func (res *Resolver) resolveStmt(s ast.Stmt) {
	// Errors from statement visiting never need to propagate: every
	// diagnostic is reported immediately and traversal simply continues.
	_, _ = s.AcceptStmt(res)
}

func (res *Resolver) resolveExpr(e ast.Expr) {
	_, _ = e.AcceptExpr(res)
}

// ---- scope stack -------------------------------------------------------

func (res *Resolver) beginScope() {
	res.scopes = append(res.scopes, make(map[string]bindingState))
}

func (res *Resolver) endScope() {
	res.scopes = res.scopes[:len(res.scopes)-1]
}

func (res *Resolver) declare(name token.Token) {
	if len(res.scopes) == 0 {
		return
	}
	scope := res.scopes[len(res.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		res.errorAt(name, "Variable with name "+name.Lexeme+" already declared in this scope.")
	}
	scope[name.Lexeme] = declared
}

func (res *Resolver) define(name token.Token) {
	if len(res.scopes) == 0 {
		return
	}
	res.scopes[len(res.scopes)-1][name.Lexeme] = defined
}

// resolveLocal walks the scope stack inner-to-outer; the depth recorded
// is the number of enclosing links to traverse. A miss leaves no entry
// at all, so the interpreter treats it as a global.
func (res *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(res.scopes) - 1; i >= 0; i-- {
		if _, ok := res.scopes[i][name.Lexeme]; ok {
			res.depositor.Resolve(expr, len(res.scopes)-1-i)
			return
		}
	}
}

func (res *Resolver) errorAt(tok token.Token, message string) {
	res.reporter.ErrorAtToken(tok, message)
	res.hadError = true
}

func (res *Resolver) resolveFunction(fn *ast.Fun, typ functionType) {
	enclosingFunction := res.currentFunction
	res.currentFunction = typ
	defer func() { res.currentFunction = enclosingFunction }()

	res.beginScope()
	defer res.endScope()
	for _, param := range fn.Params {
		res.declare(param)
		res.define(param)
	}
	res.resolveStmts(fn.Body)
}
