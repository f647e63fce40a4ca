/*
File    : lox/internal/interp/environment.go

Environment is the runtime counterpart of scope.Scope: a chain of
frames linked by Enclosing, walked upward for lookup and assignment.
Unlike scope.Scope, a closure captures its defining *Environment
directly rather than a snapshot (scope.Scope.Copy): Lox closures
require that mutating a captured local through one closure be visible
to every other holder of the same frame, which only holds if the frame
is shared, not copied.

GetAt/AssignAt give the interpreter the resolver's "skip straight to
the right frame" fast path; Get/Assign remain for globals, which the
resolver never puts in its side-table.
*/
package interp

import (
	"github.com/golox/lox/internal/diag"
	"github.com/golox/lox/internal/token"
)

// Environment is one frame in the environment chain.
type Environment struct {
	values    map[string]Value
	Enclosing *Environment
}

// NewEnvironment creates a frame enclosed by parent (nil for the global
// frame).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: make(map[string]Value), Enclosing: parent}
}

// Define binds name in this frame, overwriting any existing binding.
// Lox has no "redeclaration" error at runtime; that is the resolver's
// job, and only applies to locals, not globals.
func (e *Environment) Define(name string, v Value) {
	e.values[name] = v
}

// Get looks up name by walking the chain outward, used only for
// variables the resolver left out of its side-table.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, diag.NewRuntimeError(name, "Undefined variable %s.", name.Lexeme)
}

// Assign mutates the nearest frame (walking outward) that already
// defines name. It never creates a new binding.
func (e *Environment) Assign(name token.Token, v Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = v
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, v)
	}
	return diag.NewRuntimeError(name, "Cannot assign value to undefined variable %s.", name.Lexeme)
}

// ancestor walks exactly distance Enclosing links outward.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name from the frame exactly distance links out, per the
// resolver's recorded depth.
func (e *Environment) GetAt(distance int, name string) Value {
	return e.ancestor(distance).values[name]
}

// AssignAt mirrors GetAt for writes.
func (e *Environment) AssignAt(distance int, name token.Token, v Value) {
	e.ancestor(distance).values[name.Lexeme] = v
}

// Names lists every binding defined directly in this frame, for the
// REPL's `/scope` command.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	return names
}
