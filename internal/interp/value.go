/*
File    : lox/internal/interp/value.go

The Lox value model: `nil`, booleans, and float64 doubles are
represented by their native Go equivalents and type-asserted directly;
strings are native Go strings. Callables and instances get their own
types (function.go, class.go) so the interpreter can
dispatch on them with a plain type switch, mirroring GoMixObject's
family of concrete types without needing a shared interface of our own:
Go's `interface{}` already is the sum type a dynamically typed value
needs.
*/
package interp

import (
	"fmt"
	"strconv"
)

// Value is any Lox runtime value. It is never a pointer to a Go-native
// type (numbers are bare float64, strings are bare string) so that two
// values compare equal with plain `==` exactly when Lox's own equality
// rule says they should.
type Value = interface{}

// Callable is implemented by every value that can appear as the callee
// of a Call expression: user functions, bound methods, classes, and
// built-ins.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
	String() string
}

// truthy reports Lox's truthiness rule: nil and false are the only
// falsy values.
func truthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements the equality rule used by `==`/`!=`: nil equals
// only nil, otherwise values of different Go dynamic types are
// unequal, otherwise compare by value.
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify renders a Value the way `print` and the REPL do. strconv's
// shortest round-trip formatting never emits a trailing ".0" for
// integral doubles, giving one consistent number format throughout.
func Stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
