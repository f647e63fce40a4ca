/*
File    : lox/internal/interp/interp.go

Package interp is the tree-walking evaluator. It implements
ast.ExprVisitor, ast.StmtVisitor, and resolver.Depositor, so one value
satisfies the whole pipeline's back half: the resolver deposits lexical
depths into it via Resolve, and then Interpret walks the same tree
using those depths.

Generalizes eval.Evaluator's shape (one struct owning the current scope
and dispatching per node kind) to Lox's grammar and adds the resolver
side-table that a dynamically-scoped evaluator never needed.
*/
package interp

import (
	"io"

	"github.com/golox/lox/internal/ast"
	"github.com/golox/lox/internal/diag"
	"github.com/golox/lox/internal/token"
)

// Reporter receives a runtime error for display; the CLI/REPL decide
// what to do with HadRuntimeError afterward.
type Reporter interface {
	RuntimeErrorf(err *diag.RuntimeError)
}

// Interpreter walks a resolved AST, evaluating expressions and
// executing statements against a chain of Environment frames.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[ast.Expr]int

	out      io.Writer
	reporter Reporter
}

// New creates an Interpreter that writes `print` output to out and
// reports runtime errors to reporter. The global frame is seeded with
// the built-ins from builtins.go.
func New(out io.Writer, reporter Reporter) *Interpreter {
	globals := NewEnvironment(nil)
	defineGlobals(globals)
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[ast.Expr]int),
		out:         out,
		reporter:    reporter,
	}
}

// Resolve implements resolver.Depositor: it is called once per
// resolved expression, before Interpret ever runs over the same tree.
func (in *Interpreter) Resolve(expr ast.Expr, depth int) {
	in.locals[expr] = depth
}

// Interpret executes every statement in order. It stops at the first
// runtime error, reports it, and returns it so the caller can decide
// the process exit code. The value of the last top-level statement is
// returned too, for REPL printing.
func (in *Interpreter) Interpret(stmts []ast.Stmt) (Value, error) {
	var last Value
	for _, stmt := range stmts {
		v, err := in.exec(stmt)
		if err != nil {
			if rerr, ok := err.(*diag.RuntimeError); ok {
				in.reporter.RuntimeErrorf(rerr)
			}
			return nil, err
		}
		last = v
	}
	return last, nil
}

func (in *Interpreter) exec(stmt ast.Stmt) (Value, error) {
	return stmt.AcceptStmt(in)
}

func (in *Interpreter) eval(expr ast.Expr) (Value, error) {
	return expr.AcceptExpr(in)
}

// executeBlock runs stmts in env, restoring the previous environment on
// every exit path: normal, returnSignal, or runtime error.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range stmts {
		if _, err := in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// lookUpVariable resolves a variable reference: a resolved local is a
// direct GetAt; a miss falls back to the global frame.
func (in *Interpreter) lookUpVariable(expr ast.Expr, name token.Token) (Value, error) {
	if depth, ok := in.locals[expr]; ok {
		return in.environment.GetAt(depth, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

// Out exposes the Interpreter's output writer so a REPL driver can
// print a bare expression's value through the same stream `print`
// uses (repl.Repl needs this to keep ordering consistent).
func (in *Interpreter) Out() io.Writer { return in.out }

// GlobalNames lists every name currently bound in the global frame,
// for the REPL's `/scope` command.
func (in *Interpreter) GlobalNames() []string {
	return in.globals.Names()
}
