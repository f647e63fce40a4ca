/*
File    : lox/internal/interp/stmt.go

StmtVisitor implementation. Most statements yield nil; Expression
yields its expression's value so a REPL driver can print the value of a
bare expression line.
*/
package interp

import (
	"fmt"

	"github.com/golox/lox/internal/ast"
	"github.com/golox/lox/internal/diag"
)

func (in *Interpreter) VisitExpressionStmt(s *ast.Expression) (interface{}, error) {
	return in.eval(s.Expr)
}

func (in *Interpreter) VisitPrintStmt(s *ast.Print) (interface{}, error) {
	v, err := in.eval(s.Expr)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(in.out, Stringify(v))
	return nil, nil
}

func (in *Interpreter) VisitVarStmt(s *ast.Var) (interface{}, error) {
	v, err := in.eval(s.Initializer)
	if err != nil {
		return nil, err
	}
	in.environment.Define(s.Name.Lexeme, v)
	return nil, nil
}

func (in *Interpreter) VisitBlockStmt(s *ast.Block) (interface{}, error) {
	return nil, in.executeBlock(s.Statements, NewEnvironment(in.environment))
}

func (in *Interpreter) VisitIfStmt(s *ast.If) (interface{}, error) {
	cond, err := in.eval(s.Condition)
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		return in.exec(s.Then)
	}
	return in.exec(s.Else)
}

func (in *Interpreter) VisitWhileStmt(s *ast.While) (interface{}, error) {
	for {
		cond, err := in.eval(s.Condition)
		if err != nil {
			return nil, err
		}
		if !truthy(cond) {
			return nil, nil
		}
		if _, err := in.exec(s.Body); err != nil {
			return nil, err
		}
	}
}

func (in *Interpreter) VisitFunStmt(s *ast.Fun) (interface{}, error) {
	fn := NewFunction(s, in.environment, false)
	in.environment.Define(s.Name.Lexeme, fn)
	return nil, nil
}

func (in *Interpreter) VisitReturnStmt(s *ast.Return) (interface{}, error) {
	v, err := in.eval(s.Value)
	if err != nil {
		return nil, err
	}
	return nil, &returnSignal{Value: v}
}

// VisitClassStmt evaluates a class declaration: the superclass
// expression is evaluated and must be a Class, the class name is
// predeclared as nil so methods can reference it recursively, a
// `super` frame is pushed only when the source wrote an explicit `<`
// clause (the synthesized implicit Object superclass gets no `super`
// frame; see ast.Class.HasExplicitSuperclass), and every method closes
// over that same environment.
func (in *Interpreter) VisitClassStmt(s *ast.Class) (interface{}, error) {
	superVal, err := in.eval(s.Superclass)
	if err != nil {
		return nil, err
	}
	superclass, ok := superVal.(*Class)
	if !ok {
		return nil, diag.NewRuntimeError(s.Superclass.Name, "Super class must be a class.")
	}

	in.environment.Define(s.Name.Lexeme, nil)

	methodEnv := in.environment
	if s.HasExplicitSuperclass {
		methodEnv = NewEnvironment(in.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, decl := range s.Methods {
		isInitializer := decl.Name.Lexeme == "init"
		methods[decl.Name.Lexeme] = NewFunction(decl, methodEnv, isInitializer)
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)
	return nil, in.environment.Assign(s.Name, class)
}
