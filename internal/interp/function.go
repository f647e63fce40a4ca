/*
File    : lox/internal/interp/function.go

Function generalizes function.Function's shape (name + params + body +
captured scope) to Lox's semantics: a function's Closure is the live
*Environment in effect at its declaration (see environment.go), and
Bind produces a new Function whose closure adds exactly one frame
defining `this` as the bound instance. IsInitializer lets Call
special-case `init`'s return value.
*/
package interp

import (
	"fmt"

	"github.com/golox/lox/internal/ast"
)

// Function is a user-defined function or method.
type Function struct {
	Declaration   *ast.Fun
	Closure       *Environment
	IsInitializer bool
}

// NewFunction wraps a parsed Fun declaration with the environment it
// closes over.
func NewFunction(decl *ast.Fun, closure *Environment, isInitializer bool) *Function {
	return &Function{Declaration: decl, Closure: closure, IsInitializer: isInitializer}
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

// Bind returns a copy of f whose closure has one additional frame
// defining `this` as instance.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Declaration, env, f.IsInitializer)
}

// Call runs the function body in a fresh frame enclosing the closure,
// with parameters bound left-to-right, and extracts the return value
// from a propagated returnSignal; or returns `this` itself, if this is
// an initializer, regardless of what (if anything) the body returned.
func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := in.executeBlock(f.Declaration.Body, env)
	if ret, ok := asReturn(err); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}
