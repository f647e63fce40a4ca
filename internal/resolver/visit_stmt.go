/*
File    : lox/internal/resolver/visit_stmt.go

StmtVisitor implementation. Every method returns (nil, nil): the
resolver never produces a value, it only has side effects on scopes and
the depositor.
*/
package resolver

import "github.com/golox/lox/internal/ast"

func (res *Resolver) VisitBlockStmt(s *ast.Block) (interface{}, error) {
	res.beginScope()
	res.resolveStmts(s.Statements)
	res.endScope()
	return nil, nil
}

func (res *Resolver) VisitVarStmt(s *ast.Var) (interface{}, error) {
	res.declare(s.Name)
	res.resolveExpr(s.Initializer)
	res.define(s.Name)
	return nil, nil
}

func (res *Resolver) VisitFunStmt(s *ast.Fun) (interface{}, error) {
	// A function's own name is visible (and callable recursively) inside
	// its body, so declare+define before resolving it.
	res.declare(s.Name)
	res.define(s.Name)
	res.resolveFunction(s, funcFunction)
	return nil, nil
}

func (res *Resolver) VisitExpressionStmt(s *ast.Expression) (interface{}, error) {
	res.resolveExpr(s.Expr)
	return nil, nil
}

func (res *Resolver) VisitIfStmt(s *ast.If) (interface{}, error) {
	res.resolveExpr(s.Condition)
	res.resolveStmt(s.Then)
	res.resolveStmt(s.Else)
	return nil, nil
}

func (res *Resolver) VisitPrintStmt(s *ast.Print) (interface{}, error) {
	res.resolveExpr(s.Expr)
	return nil, nil
}

func (res *Resolver) VisitReturnStmt(s *ast.Return) (interface{}, error) {
	if res.currentFunction == funcNone {
		res.errorAt(s.Keyword, "Can not return from top-level code.")
	}
	if res.currentFunction == funcInitializer && !s.Empty {
		res.errorAt(s.Keyword, "Can't return a value from an initializer.")
	}
	res.resolveExpr(s.Value)
	return nil, nil
}

func (res *Resolver) VisitWhileStmt(s *ast.While) (interface{}, error) {
	res.resolveExpr(s.Condition)
	res.resolveStmt(s.Body)
	return nil, nil
}

// VisitClassStmt resolves a class declaration: the superclass expression
// (if the source wrote one), a `super` scope (only for real subclasses;
// the synthesized Object superclass never gets one), a `this` scope
// around every method, and each method body with the appropriate
// function type so `init` can forbid value-returns.
func (res *Resolver) VisitClassStmt(s *ast.Class) (interface{}, error) {
	enclosingClass := res.currentClass
	res.currentClass = classClass
	defer func() { res.currentClass = enclosingClass }()

	res.declare(s.Name)
	res.define(s.Name)

	if s.HasExplicitSuperclass {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			res.errorAt(s.Superclass.Name, "A class can not inherit from itself.")
		}
		res.currentClass = classSubclass
		res.resolveExpr(s.Superclass)

		res.beginScope()
		res.scopes[len(res.scopes)-1]["super"] = defined
		defer res.endScope()
	}

	res.beginScope()
	res.scopes[len(res.scopes)-1]["this"] = defined
	defer res.endScope()

	for _, method := range s.Methods {
		declType := funcMethod
		if method.Name.Lexeme == "init" {
			declType = funcInitializer
		}
		res.resolveFunction(method, declType)
	}
	return nil, nil
}
