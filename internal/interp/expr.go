/*
File    : lox/internal/interp/expr.go

ExprVisitor implementation: one method per expression variant, each
returning the Value that variant evaluates to along with any
*diag.RuntimeError raised along the way.
*/
package interp

import (
	"github.com/golox/lox/internal/ast"
	"github.com/golox/lox/internal/diag"
	"github.com/golox/lox/internal/token"
)

func (in *Interpreter) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return e.Value, nil
}

func (in *Interpreter) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	return in.eval(e.Expression)
}

func (in *Interpreter) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.BANG:
		return !truthy(right), nil
	case token.MINUS:
		num, ok := right.(float64)
		if !ok {
			return nil, diag.NewRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -num, nil
	}
	panic("unreachable unary operator " + string(e.Operator.Type))
}

// VisitBinaryExpr implements Lox arithmetic: `+ - * /` and comparisons
// require numbers, `++` requires strings, and `/` by zero follows
// IEEE-754 rather than raising.
func (in *Interpreter) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.BANG_EQUAL:
		return !isEqual(left, right), nil
	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	case token.PLUS_PLUS:
		ls, lok := left.(string)
		rs, rok := right.(string)
		if !lok || !rok {
			return nil, diag.NewRuntimeError(e.Operator, "Operands must be strings.")
		}
		return ls + rs, nil
	case token.PLUS:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, diag.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return ln + rn, nil
	case token.MINUS, token.STAR, token.SLASH, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, diag.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Type {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.SLASH:
			return ln / rn, nil
		case token.GREATER:
			return ln > rn, nil
		case token.GREATER_EQUAL:
			return ln >= rn, nil
		case token.LESS:
			return ln < rn, nil
		case token.LESS_EQUAL:
			return ln <= rn, nil
		}
	}
	panic("unreachable binary operator " + string(e.Operator.Type))
}

// VisitLogicalExpr implements short-circuiting: the returned value is
// whichever operand decided the result, not a coerced boolean.
func (in *Interpreter) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.OR {
		if truthy(left) {
			return left, nil
		}
	} else if !truthy(left) {
		return left, nil
	}
	return in.eval(e.Right)
}

func (in *Interpreter) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	return in.lookUpVariable(e, e.Name)
}

func (in *Interpreter) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	value, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := in.locals[e]; ok {
		in.environment.AssignAt(depth, e.Name, value)
		return value, nil
	}
	if err := in.globals.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

// VisitCallExpr implements call dispatch: evaluate callee then
// arguments left-to-right, require a Callable, and check arity before
// invoking.
func (in *Interpreter) VisitCallExpr(e *ast.Call) (interface{}, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		v, err := in.eval(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, diag.NewRuntimeError(e.Paren, "Only functions and classes are callable.")
	}
	if len(args) != fn.Arity() {
		return nil, diag.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(in, args)
}

func (in *Interpreter) VisitGetExpr(e *ast.Get) (interface{}, error) {
	obj, err := in.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, diag.NewRuntimeError(e.Name, "Can not access property from a non-instance value.")
	}
	v, found := instance.Get(e.Name.Lexeme)
	if !found {
		return nil, diag.NewRuntimeError(e.Name, "Undefined property %s.", e.Name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) VisitSetExpr(e *ast.Set) (interface{}, error) {
	obj, err := in.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, diag.NewRuntimeError(e.Name, "Only objects have fields.")
	}
	value, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

func (in *Interpreter) VisitThisExpr(e *ast.This) (interface{}, error) {
	return in.lookUpVariable(e, e.Keyword)
}

// VisitSuperExpr resolves a `super.m` reference: the depth recorded for
// this node points at the frame defining `super`; `this` always lives
// exactly one frame further in (see function.go's Bind and resolver's
// VisitClassStmt, which pushes `super` then `this` in that order).
func (in *Interpreter) VisitSuperExpr(e *ast.Super) (interface{}, error) {
	depth := in.locals[e]
	superclass := in.environment.GetAt(depth, "super").(*Class)
	instance := in.environment.GetAt(depth-1, "this").(*Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, diag.NewRuntimeError(e.Method, "Undefined method %s.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
