package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRepl() (*Repl, *bytes.Buffer) {
	var out bytes.Buffer
	return New("banner", "0.1.0", "> ", "----", &out), &out
}

func TestEvalLine_PrintsExpressionValue(t *testing.T) {
	r, out := newTestRepl()
	r.EvalLine("1 + 2;")
	assert.Contains(t, out.String(), "3")
}

func TestEvalLine_GlobalsPersistAcrossLines(t *testing.T) {
	r, out := newTestRepl()
	r.EvalLine("var x = 10;")
	r.EvalLine("x = x + 1;")
	r.EvalLine("print x;")
	assert.Contains(t, out.String(), "11")
}

func TestEvalLine_StaticErrorDoesNotPoisonSubsequentLines(t *testing.T) {
	r, out := newTestRepl()
	r.EvalLine("var ;")
	out.Reset()
	r.EvalLine("print 1 + 1;")
	assert.Contains(t, out.String(), "2")
}

func TestEvalLine_RuntimeErrorDoesNotStopTheSession(t *testing.T) {
	r, out := newTestRepl()
	r.EvalLine(`"a" + 1;`)
	out.Reset()
	r.EvalLine("print 42;")
	assert.Contains(t, out.String(), "42")
}

func TestPrintGlobals_ListsDefinedNames(t *testing.T) {
	r, out := newTestRepl()
	r.EvalLine("var greeting = \"hi\";")
	out.Reset()
	r.printGlobals(out)
	assert.Contains(t, out.String(), "greeting")
	assert.Contains(t, out.String(), "clock")
	assert.Contains(t, out.String(), "Object")
}
