/*
File    : lox/internal/interp/class.go

Class generalizes objects.GoMixStruct's shape (name + method table)
with the one thing GoMix never needed: a Superclass link, walked by
FindMethod so subclasses inherit methods they don't override. Calling a
class is itself a Callable operation: it constructs a fresh instance
and runs its initializer.
*/
package interp

import "fmt"

// Class is a Lox class value: a name, an optional superclass, and its
// own (non-inherited) methods.
type Class struct {
	Name       string
	Superclass *Class // nil only for the built-in Object class
	Methods    map[string]*Function
}

// NewClass builds a class with the given declared methods.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// FindMethod looks up name on this class, falling back to the
// superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

func (c *Class) String() string { return c.Name }

// Arity is that of `init`, the constructor (declared or inherited), or 0
// if neither the class nor any superclass has one.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a fresh Instance, runs its initializer (if any) bound
// to that instance, and yields the instance regardless of what the
// initializer itself returns.
func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a single object created by calling a Class.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

// NewInstance creates a fresh, fieldless instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

func (i *Instance) String() string {
	return fmt.Sprintf("<%s> instance", i.Class.Name)
}

// Get reads a field if present, else binds and returns a method.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if method, ok := i.Class.FindMethod(name); ok {
		return method.Bind(i), true
	}
	return nil, false
}

// Set always succeeds and writes a field.
func (i *Instance) Set(name string, v Value) {
	i.Fields[name] = v
}
