/*
File    : lox/lox.go

Package lox is a small public surface: the release Version and a value
printer. internal/interp ships the only printing implementation this
repository uses (its own tests exercise the real logic directly);
Stringify here wraps it for anyone importing the module as a library,
who cannot import internal/interp directly. Importing this package
still links in internal/interp.
*/
package lox

import "github.com/golox/lox/internal/interp"

// Version is the interpreter's release version, surfaced by `lox
// --version`.
const Version = "0.1.0"

// Stringify renders a Lox runtime value the way `print` and the REPL
// do.
func Stringify(v interface{}) string {
	return interp.Stringify(v)
}
