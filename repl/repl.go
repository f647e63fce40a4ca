/*
File    : lox/repl/repl.go

Package repl implements the interactive Read-Eval-Print loop. Line
editing and history come from github.com/chzyer/readline, colored
output from github.com/fatih/color. Each line gets a fresh lexer,
parser and resolver, but the REPL keeps one *interp.Interpreter alive
across the whole session, so globals persist across lines the way a
single Interpreter's global environment naturally survives.
*/
package repl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/golox/lox/internal/ast"
	"github.com/golox/lox/internal/diag"
	"github.com/golox/lox/internal/interp"
	"github.com/golox/lox/internal/lexer"
	"github.com/golox/lox/internal/parser"
	"github.com/golox/lox/internal/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's configuration and state.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
	Line    string

	interp   *interp.Interpreter
	reporter *diag.Reporter
}

// New creates a Repl that prints results and diagnostics to out.
func New(banner, version, prompt, line string, out io.Writer) *Repl {
	reporter := diag.New(out)
	return &Repl{
		Banner:   banner,
		Version:  version,
		Prompt:   prompt,
		Line:     line,
		interp:   interp.New(out, reporter),
		reporter: reporter,
	}
}

func (r *Repl) printBanner(out io.Writer) {
	blueColor.Fprintf(out, "%s\n", r.Line)
	greenColor.Fprintf(out, "%s\n", r.Banner)
	blueColor.Fprintf(out, "%s\n", r.Line)
	yellowColor.Fprintln(out, "lox "+r.Version)
	cyanColor.Fprintln(out, "Type Lox statements and press enter.")
	cyanColor.Fprintln(out, "/exit to quit, /scope to list current globals.")
	blueColor.Fprintf(out, "%s\n", r.Line)
}

// Start runs the loop until /exit, EOF, or a readline error. out is
// also where the banner and every evaluated result are written.
func (r *Repl) Start(out io.Writer) error {
	r.printBanner(out)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdout: out})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl+D, readline.ErrInterrupt on Ctrl+C
			fmt.Fprintln(out, "Goodbye.")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			fmt.Fprintln(out, "Goodbye.")
			return nil
		}
		rl.SaveHistory(line)

		switch line {
		case "/exit":
			fmt.Fprintln(out, "Goodbye.")
			return nil
		case "/scope":
			r.printGlobals(out)
			continue
		}

		r.EvalLine(line)
	}
}

// EvalLine runs one REPL line through the full pipeline, resetting the
// reporter's error flags first so each line is judged independently,
// while globals on the single Interpreter persist regardless of
// outcome. Exported so it can be driven directly in tests, without
// going through readline.
func (r *Repl) EvalLine(line string) {
	r.reporter.Reset()

	toks := lexer.New(line, r.reporter).ScanTokens()
	if r.reporter.HadError {
		return
	}

	stmts, hadParseError := parser.New(toks, r.reporter).Parse()
	if hadParseError {
		return
	}

	if resolver.New(r.interp, r.reporter).Resolve(stmts) {
		return
	}

	result, err := r.interp.Interpret(stmts)
	if err != nil {
		// Interpret already reported the runtime error; the REPL just
		// keeps going rather than terminating the session.
		return
	}

	if isBareExpression(stmts) {
		yellowColor.Fprintln(r.interp.Out(), interp.Stringify(result))
	}
}

// isBareExpression reports whether the last statement of a REPL line
// is an expression statement, in which case its value is worth
// printing.
func isBareExpression(stmts []ast.Stmt) bool {
	if len(stmts) == 0 {
		return false
	}
	_, ok := stmts[len(stmts)-1].(*ast.Expression)
	return ok
}

func (r *Repl) printGlobals(out io.Writer) {
	names := r.interp.GlobalNames()
	sort.Strings(names)
	cyanColor.Fprintln(out, "globals:")
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", name)
	}
}
