/*
File    : lox/cmd/lox/main.go

Package main is the CLI entry point: a flat os.Args switch, no flag
library (see DESIGN.md), github.com/fatih/color for the usage banner,
and an optional --config YAML file for REPL banner/prompt
customization (see config.go).
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/golox/lox"
	"github.com/golox/lox/internal/diag"
	"github.com/golox/lox/internal/interp"
	"github.com/golox/lox/internal/lexer"
	"github.com/golox/lox/internal/parser"
	"github.com/golox/lox/internal/resolver"
	"github.com/golox/lox/repl"
)

const (
	exitOK         = 0
	exitStaticErr  = 65
	exitRuntimeErr = 70
	exitUsageErr   = 64
)

var banner = `
 _
| |    _____  __
| |   / _ \ \/ /
| |__| (_) >  <
|_____\___/_/\_\
`

var (
	cyanColor = color.New(color.FgCyan)
	redColor  = color.New(color.FgRed)
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches the whole CLI surface (REPL, file, help, version,
// config); it takes its stdout/stderr explicitly so cmd/lox's own
// tests can drive it without touching the process's real streams.
func run(args []string, stdout, stderr io.Writer) int {
	cfg := defaultConfig()

	if len(args) >= 2 && args[0] == "--config" {
		if err := loadConfig(cfg, args[1]); err != nil {
			redColor.Fprintf(stderr, "Could not load config %q: %v\n", args[1], err)
			return exitUsageErr
		}
		args = args[2:]
	}

	switch {
	case len(args) == 0:
		startRepl(cfg, stdout, stderr)
		return exitOK
	case args[0] == "--help" || args[0] == "-h":
		showHelp(stdout)
		return exitOK
	case args[0] == "--version" || args[0] == "-v":
		showVersion(stdout)
		return exitOK
	case len(args) == 1:
		return runFile(args[0], stdout)
	default:
		redColor.Fprintf(stderr, "Usage: lox [script]\n")
		return exitUsageErr
	}
}

func startRepl(cfg *config, stdout, stderr io.Writer) {
	r := repl.New(cfg.Banner, lox.Version, cfg.Prompt, cfg.Line, stdout)
	if err := r.Start(stdout); err != nil {
		redColor.Fprintf(stderr, "%v\n", err)
	}
}

// runFile reads, lexes, parses, resolves, and interprets a script once,
// translating each failure class into its exit code.
func runFile(path string, stdout io.Writer) int {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(stdout, "Could not read file %q: %v\n", path, err)
		return exitUsageErr
	}

	reporter := diag.New(stdout)

	toks := lexer.New(string(src), reporter).ScanTokens()
	if reporter.HadError {
		return exitStaticErr
	}

	stmts, hadParseError := parser.New(toks, reporter).Parse()
	if hadParseError {
		return exitStaticErr
	}

	in := interp.New(stdout, reporter)
	if resolver.New(in, reporter).Resolve(stmts) {
		return exitStaticErr
	}

	if _, err := in.Interpret(stmts); err != nil {
		return exitRuntimeErr
	}
	return exitOK
}

func showHelp(out io.Writer) {
	cyanColor.Fprintln(out, "lox, a tree-walking interpreter for the Lox language")
	cyanColor.Fprintln(out)
	cyanColor.Fprintln(out, "USAGE:")
	fmt.Fprintln(out, "  lox                 Start the interactive REPL")
	fmt.Fprintln(out, "  lox <script>        Run a Lox script")
	fmt.Fprintln(out, "  lox --help          Show this message")
	fmt.Fprintln(out, "  lox --version       Show version information")
	cyanColor.Fprintln(out)
	cyanColor.Fprintln(out, "REPL COMMANDS:")
	fmt.Fprintln(out, "  /exit               Exit the REPL")
	fmt.Fprintln(out, "  /scope              List the current global bindings")
}

func showVersion(out io.Writer) {
	cyanColor.Fprintf(out, "lox %s\n", lox.Version)
}
