package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golox/lox/internal/ast"
	"github.com/golox/lox/internal/lexer"
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

func parse(t *testing.T, src string) ([]ast.Stmt, *stubReporter, bool) {
	t.Helper()
	lexRep := &stubReporter{}
	toks := lexer.New(src, lexRep).ScanTokens()
	require.Empty(t, lexRep.messages, "lex errors in %q", src)

	parseRep := &stubReporter{}
	stmts, hadError := New(toks, parseRep).Parse()
	return stmts, parseRep, hadError
}

func TestParse_BinaryPrecedence(t *testing.T) {
	stmts, rep, hadError := parse(t, "1 + 2 * 3;")
	require.False(t, hadError)
	require.Empty(t, rep.messages)
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(*ast.Expression)
	bin := exprStmt.Expr.(*ast.Binary)
	assert.Equal(t, token.PLUS, bin.Operator.Type)
	assert.Equal(t, float64(1), bin.Left.(*ast.Literal).Value)

	right := bin.Right.(*ast.Binary)
	assert.Equal(t, token.STAR, right.Operator.Type)
}

func TestParse_StringConcatOperator(t *testing.T) {
	stmts, _, hadError := parse(t, `"foo" ++ "bar";`)
	require.False(t, hadError)
	bin := stmts[0].(*ast.Expression).Expr.(*ast.Binary)
	assert.Equal(t, token.PLUS_PLUS, bin.Operator.Type)
}

func TestParse_UnaryRightAssociative(t *testing.T) {
	stmts, _, hadError := parse(t, "!!true;")
	require.False(t, hadError)
	outer := stmts[0].(*ast.Expression).Expr.(*ast.Unary)
	assert.Equal(t, token.BANG, outer.Operator.Type)
	inner := outer.Right.(*ast.Unary)
	assert.Equal(t, token.BANG, inner.Operator.Type)
	assert.Equal(t, true, inner.Right.(*ast.Literal).Value)
}

func TestParse_AssignmentTargets(t *testing.T) {
	stmts, _, hadError := parse(t, "a = 1; a.b = 2;")
	require.False(t, hadError)
	require.Len(t, stmts, 2)

	assign := stmts[0].(*ast.Expression).Expr.(*ast.Assign)
	assert.Equal(t, "a", assign.Name.Lexeme)

	set := stmts[1].(*ast.Expression).Expr.(*ast.Set)
	assert.Equal(t, "b", set.Name.Lexeme)
}

func TestParse_InvalidAssignmentTarget(t *testing.T) {
	_, rep, hadError := parse(t, "1 = 2;")
	require.True(t, hadError)
	require.Len(t, rep.messages, 1)
	assert.Contains(t, rep.messages[0], "Invalid assignment target")
}

func TestParse_VarDesugarsMissingInitializer(t *testing.T) {
	stmts, _, hadError := parse(t, "var x;")
	require.False(t, hadError)
	v := stmts[0].(*ast.Var)
	assert.Equal(t, "x", v.Name.Lexeme)
	assert.Nil(t, v.Initializer.(*ast.Literal).Value)
}

func TestParse_BareReturnDesugarsWithEmptyFlag(t *testing.T) {
	stmts, _, hadError := parse(t, "fun f() { return; }")
	require.False(t, hadError)
	fn := stmts[0].(*ast.Fun)
	ret := fn.Body[0].(*ast.Return)
	assert.True(t, ret.Empty)
	assert.Nil(t, ret.Value.(*ast.Literal).Value)
}

func TestParse_ValueReturnNotEmpty(t *testing.T) {
	stmts, _, hadError := parse(t, "fun f() { return 1; }")
	require.False(t, hadError)
	fn := stmts[0].(*ast.Fun)
	ret := fn.Body[0].(*ast.Return)
	assert.False(t, ret.Empty)
}

func TestParse_IfWithoutElseDesugarsEmptyBlock(t *testing.T) {
	stmts, _, hadError := parse(t, "if (true) print 1;")
	require.False(t, hadError)
	ifStmt := stmts[0].(*ast.If)
	elseBlock := ifStmt.Else.(*ast.Block)
	assert.Empty(t, elseBlock.Statements)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts, _, hadError := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.False(t, hadError)
	outer := stmts[0].(*ast.Block)
	require.Len(t, outer.Statements, 2)

	_, isVar := outer.Statements[0].(*ast.Var)
	assert.True(t, isVar)

	whileStmt := outer.Statements[1].(*ast.While)
	_, isBinary := whileStmt.Condition.(*ast.Binary)
	assert.True(t, isBinary)

	body := whileStmt.Body.(*ast.Block)
	require.Len(t, body.Statements, 2)
	_, isPrint := body.Statements[0].(*ast.Print)
	assert.True(t, isPrint)
	_, isIncrementExpr := body.Statements[1].(*ast.Expression)
	assert.True(t, isIncrementExpr)
}

func TestParse_ForMissingClausesDesugarDefaults(t *testing.T) {
	stmts, _, hadError := parse(t, "for (;;) print 1;")
	require.False(t, hadError)
	outer := stmts[0].(*ast.Block)
	initBlock := outer.Statements[0].(*ast.Block)
	assert.Empty(t, initBlock.Statements)

	whileStmt := outer.Statements[1].(*ast.While)
	cond := whileStmt.Condition.(*ast.Literal)
	assert.Equal(t, true, cond.Value)
}

func TestParse_ClassWithImplicitSuperclass(t *testing.T) {
	stmts, _, hadError := parse(t, "class Foo { bar() { return 1; } }")
	require.False(t, hadError)
	class := stmts[0].(*ast.Class)
	assert.Equal(t, "Object", class.Superclass.Name.Lexeme)
	assert.False(t, class.HasExplicitSuperclass)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "bar", class.Methods[0].Name.Lexeme)
}

func TestParse_ClassWithExplicitSuperclass(t *testing.T) {
	stmts, _, hadError := parse(t, "class A {} class B < A {}")
	require.False(t, hadError)
	class := stmts[1].(*ast.Class)
	assert.Equal(t, "A", class.Superclass.Name.Lexeme)
	assert.True(t, class.HasExplicitSuperclass)
}

func TestParse_ClassInheritingFromItselfParsesFine(t *testing.T) {
	// The self-inheritance diagnostic belongs to the resolver; the parser
	// just records the explicit superclass clause.
	stmts, _, hadError := parse(t, "class Foo < Foo {}")
	require.False(t, hadError)
	class := stmts[0].(*ast.Class)
	assert.True(t, class.HasExplicitSuperclass)
	assert.Equal(t, "Foo", class.Superclass.Name.Lexeme)
}

func TestParse_SuperRequiresDot(t *testing.T) {
	_, rep, hadError := parse(t, "class B < A { m() { return super; } }")
	require.True(t, hadError)
	require.NotEmpty(t, rep.messages)
}

func TestParse_CallAndPropertyChain(t *testing.T) {
	stmts, _, hadError := parse(t, "a.b().c;")
	require.False(t, hadError)
	get := stmts[0].(*ast.Expression).Expr.(*ast.Get)
	assert.Equal(t, "c", get.Name.Lexeme)
	call := get.Object.(*ast.Call)
	methodGet := call.Callee.(*ast.Get)
	assert.Equal(t, "b", methodGet.Name.Lexeme)
}

func TestParse_TooManyArgumentsReportsButContinues(t *testing.T) {
	src := "fun f() {}\nf("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"

	_, rep, hadError := parse(t, src)
	require.True(t, hadError)
	found := false
	for _, m := range rep.messages {
		if m == "Can't have more than 255 arguments." {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParse_SynchronizeRecoversAfterSemicolon(t *testing.T) {
	// The first statement is malformed ("var ;" has no name); the parser
	// should still recover and parse the following print statement.
	stmts, rep, hadError := parse(t, "var ; print 1;")
	require.True(t, hadError)
	require.NotEmpty(t, rep.messages)

	var sawPrint bool
	for _, s := range stmts {
		if _, ok := s.(*ast.Print); ok {
			sawPrint = true
		}
	}
	assert.True(t, sawPrint, "parser should recover and still parse the print statement")
}
