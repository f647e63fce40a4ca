package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golox/lox/internal/ast"
	"github.com/golox/lox/internal/lexer"
	"github.com/golox/lox/internal/parser"
	"github.com/golox/lox/internal/token"
)

type stubReporter struct {
	messages []string
}

func (r *stubReporter) ErrorAtToken(tok token.Token, message string) {
	r.messages = append(r.messages, message)
}

func (r *stubReporter) Error(line int, message string) {
	r.messages = append(r.messages, message)
}

type recordingDepositor struct {
	depths map[ast.Expr]int
}

func newRecordingDepositor() *recordingDepositor {
	return &recordingDepositor{depths: make(map[ast.Expr]int)}
}

func (d *recordingDepositor) Resolve(expr ast.Expr, depth int) {
	d.depths[expr] = depth
}

func resolve(t *testing.T, src string) (*recordingDepositor, *stubReporter, bool) {
	t.Helper()
	lexRep := &stubReporter{}
	toks := lexer.New(src, lexRep).ScanTokens()
	require.Empty(t, lexRep.messages, "lex errors in %q", src)

	parseRep := &stubReporter{}
	stmts, hadParseError := parser.New(toks, parseRep).Parse()
	require.False(t, hadParseError, "parse errors in %q: %v", src, parseRep.messages)

	dep := newRecordingDepositor()
	resolveRep := &stubReporter{}
	hadError := New(dep, resolveRep).Resolve(stmts)
	return dep, resolveRep, hadError
}

func TestResolve_TopLevelReturnIsError(t *testing.T) {
	_, rep, hadError := resolve(t, "return 1;")
	require.True(t, hadError)
	require.NotEmpty(t, rep.messages)
	assert.Contains(t, rep.messages[0], "return from top-level code")
}

func TestResolve_ClassInheritingFromItselfIsError(t *testing.T) {
	_, rep, hadError := resolve(t, "class Foo < Foo {}")
	require.True(t, hadError)
	found := false
	for _, m := range rep.messages {
		if m == "A class can not inherit from itself." {
			found = true
		}
	}
	assert.True(t, found)
}

func TestResolve_ImplicitSuperclassNeverErrors(t *testing.T) {
	_, _, hadError := resolve(t, "class Foo { bar() { return 1; } }")
	assert.False(t, hadError)
}

func TestResolve_SelfReferentialInitializerIsError(t *testing.T) {
	_, rep, hadError := resolve(t, "{ var a = a; }")
	require.True(t, hadError)
	require.NotEmpty(t, rep.messages)
	assert.Contains(t, rep.messages[0], "own initializer")
}

func TestResolve_RedeclarationInSameScopeIsError(t *testing.T) {
	_, rep, hadError := resolve(t, "{ var a = 1; var a = 2; }")
	require.True(t, hadError)
	require.NotEmpty(t, rep.messages)
	assert.Contains(t, rep.messages[0], "already declared")
}

func TestResolve_RedeclarationAcrossScopesIsFine(t *testing.T) {
	_, _, hadError := resolve(t, "var a = 1; { var a = 2; }")
	assert.False(t, hadError)
}

func TestResolve_ThisOutsideClassIsError(t *testing.T) {
	_, rep, hadError := resolve(t, "print this;")
	require.True(t, hadError)
	require.NotEmpty(t, rep.messages)
	assert.Contains(t, rep.messages[0], "'this' outside")
}

func TestResolve_SuperOutsideClassIsError(t *testing.T) {
	_, rep, hadError := resolve(t, "fun f() { return super.x(); } f();")
	require.True(t, hadError)
	found := false
	for _, m := range rep.messages {
		if m == "Can not use 'super' outside of a class." {
			found = true
		}
	}
	assert.True(t, found)
}

func TestResolve_SuperWithNoSuperclassIsError(t *testing.T) {
	_, rep, hadError := resolve(t, "class A { m() { return super.m(); } }")
	require.True(t, hadError)
	found := false
	for _, m := range rep.messages {
		if m == "Can not use 'super' in a class with no superclass." {
			found = true
		}
	}
	assert.True(t, found)
}

func TestResolve_SuperInSubclassIsFine(t *testing.T) {
	_, _, hadError := resolve(t, "class A { m() {} } class B < A { m() { return super.m(); } }")
	assert.False(t, hadError)
}

func TestResolve_InitializerCannotReturnValue(t *testing.T) {
	_, rep, hadError := resolve(t, "class X { init() { return 1; } }")
	require.True(t, hadError)
	found := false
	for _, m := range rep.messages {
		if m == "Can't return a value from an initializer." {
			found = true
		}
	}
	assert.True(t, found)
}

func TestResolve_InitializerBareReturnIsFine(t *testing.T) {
	_, _, hadError := resolve(t, "class X { init() { return; } }")
	assert.False(t, hadError)
}

func TestResolve_ShadowingResolvesToCorrectDepth(t *testing.T) {
	// var a = "global"; { var a = "outer"; { var a = "inner"; print a; } }
	// The innermost `print a` should resolve to depth 0 (the block that
	// declares "inner"), not walk past it to "outer" or the global.
	src := `var a = "global"; { var a = "outer"; { var a = "inner"; print a; } }`
	dep, _, hadError := resolve(t, src)
	require.False(t, hadError)

	var innerDepth int
	var found bool
	for expr, depth := range dep.depths {
		if _, ok := expr.(*ast.Variable); ok {
			innerDepth = depth
			found = true
		}
	}
	require.True(t, found, "expected the `print a` variable reference to be resolved")
	assert.Equal(t, 0, innerDepth)
}

func TestResolve_ClosureCapturesEnclosingFunctionLocal(t *testing.T) {
	src := `fun outer() { var x = 1; fun inner() { return x; } return inner; } outer();`
	dep, _, hadError := resolve(t, src)
	require.False(t, hadError)

	var sawDepthOne bool
	for expr, depth := range dep.depths {
		if v, ok := expr.(*ast.Variable); ok && v.Name.Lexeme == "x" {
			sawDepthOne = depth == 1
		}
	}
	assert.True(t, sawDepthOne, "reference to x inside inner() should resolve one scope out")
}
