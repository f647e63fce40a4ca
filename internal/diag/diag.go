/*
File    : lox/internal/diag/diag.go

Package diag is the error-reporting sink shared by every pipeline stage.
It renders two diagnostic shapes: the static form
(`[line L] Error at <lexeme>: <message>`) for lex/parse/resolve errors,
and the runtime form (`<message>\n[line L]`) for runtime errors. It also
tracks whether a static or runtime error has occurred so the CLI can
choose the right exit code.
*/
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/golox/lox/internal/token"
)

var errorColor = color.New(color.FgRed)

// RuntimeError is the only error type the interpreter raises for failed
// operations; it always carries the token whose line anchors the
// diagnostic.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// NewRuntimeError builds a *RuntimeError with a formatted message.
func NewRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// Reporter accumulates and prints diagnostics for one run (one script
// execution, or one REPL line). It is safe to reuse across REPL lines;
// HadError/HadRuntimeError should be reset between lines by the caller
// (see repl.Repl), so each line is judged independently.
type Reporter struct {
	Out             io.Writer
	HadError        bool
	HadRuntimeError bool
}

// New creates a Reporter that writes to out.
func New(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

// Reset clears the error flags for a fresh run while keeping Out.
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntimeError = false
}

// Error reports a lex-time diagnostic with no token context.
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// ErrorAtToken reports a parse/resolve-time diagnostic anchored to tok.
func (r *Reporter) ErrorAtToken(tok token.Token, message string) {
	r.report(tok.Line, " at "+tok.DisplayLexeme(), message)
}

func (r *Reporter) report(line int, where, message string) {
	errorColor.Fprintf(r.Out, "[line %d] Error%s: %s\n", line, where, message)
	r.HadError = true
}

// RuntimeErrorf reports a runtime diagnostic and marks HadRuntimeError.
func (r *Reporter) RuntimeErrorf(err *RuntimeError) {
	errorColor.Fprintf(r.Out, "%s\n[line %d]\n", err.Message, err.Token.Line)
	r.HadRuntimeError = true
}
