/*
File    : lox/internal/resolver/visit_expr.go

ExprVisitor implementation.
*/
package resolver

import "github.com/golox/lox/internal/ast"

func (res *Resolver) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	if len(res.scopes) > 0 {
		if state, ok := res.scopes[len(res.scopes)-1][e.Name.Lexeme]; ok && state == declared {
			res.errorAt(e.Name, "Can not read local variable in its own initializer.")
		}
	}
	res.resolveLocal(e, e.Name)
	return nil, nil
}

func (res *Resolver) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	res.resolveExpr(e.Value)
	res.resolveLocal(e, e.Name)
	return nil, nil
}

func (res *Resolver) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	res.resolveExpr(e.Left)
	res.resolveExpr(e.Right)
	return nil, nil
}

func (res *Resolver) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	res.resolveExpr(e.Left)
	res.resolveExpr(e.Right)
	return nil, nil
}

func (res *Resolver) VisitCallExpr(e *ast.Call) (interface{}, error) {
	res.resolveExpr(e.Callee)
	for _, arg := range e.Arguments {
		res.resolveExpr(arg)
	}
	return nil, nil
}

func (res *Resolver) VisitGetExpr(e *ast.Get) (interface{}, error) {
	res.resolveExpr(e.Object)
	return nil, nil
}

func (res *Resolver) VisitSetExpr(e *ast.Set) (interface{}, error) {
	res.resolveExpr(e.Value)
	res.resolveExpr(e.Object)
	return nil, nil
}

func (res *Resolver) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	res.resolveExpr(e.Expression)
	return nil, nil
}

func (res *Resolver) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return nil, nil
}

func (res *Resolver) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	res.resolveExpr(e.Right)
	return nil, nil
}

func (res *Resolver) VisitThisExpr(e *ast.This) (interface{}, error) {
	if res.currentClass == classNone {
		res.errorAt(e.Keyword, "Can not use 'this' outside of a class.")
		return nil, nil
	}
	res.resolveLocal(e, e.Keyword)
	return nil, nil
}

func (res *Resolver) VisitSuperExpr(e *ast.Super) (interface{}, error) {
	switch res.currentClass {
	case classNone:
		res.errorAt(e.Keyword, "Can not use 'super' outside of a class.")
	case classClass:
		res.errorAt(e.Keyword, "Can not use 'super' in a class with no superclass.")
	}
	res.resolveLocal(e, e.Keyword)
	return nil, nil
}
