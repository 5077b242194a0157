package parser

import (
	"testing"

	"github.com/gomix-labs/loxwalk/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	p, lexReport := New(src)
	require.False(t, lexReport.HasErrors())
	stmts := p.Parse()
	require.False(t, p.HasErrors(), "%v", p.Report().Diagnostics)
	return stmts
}

func TestParseVarDeclaration(t *testing.T) {
	stmts := parseOK(t, "var x = 1 + 2;")
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	_, ok = v.Initializer.(*ast.Binary)
	assert.True(t, ok)
}

func TestParseForDesugarsToWhileBlock(t *testing.T) {
	stmts := parseOK(t, "for (var i = 0; i < 3; i = i + 1) println(i);")
	require.Len(t, stmts, 1)
	outer, ok := stmts[0].(*ast.Block)
	require.True(t, ok, "desugared for must be a Block")
	require.Len(t, outer.Statements, 2)
	_, ok = outer.Statements[0].(*ast.Var)
	assert.True(t, ok, "first statement must be the initializer")
	whileStmt, ok := outer.Statements[1].(*ast.While)
	require.True(t, ok, "second statement must be the desugared while")
	body, ok := whileStmt.Body.(*ast.Block)
	require.True(t, ok)
	assert.Len(t, body.Statements, 2, "body; increment")
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	stmts := parseOK(t, "a = b = 1;")
	require.Len(t, stmts, 1)
	exprStmt := stmts[0].(*ast.Expression)
	assign, ok := exprStmt.Expr.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)
	inner, ok := assign.Value.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParseInvalidAssignmentTargetIsDiagnostic(t *testing.T) {
	p, lexReport := New("1 + 2 = 3;")
	require.False(t, lexReport.HasErrors())
	p.Parse()
	assert.True(t, p.HasErrors())
}

func TestParseCallChaining(t *testing.T) {
	stmts := parseOK(t, "f()()();")
	exprStmt := stmts[0].(*ast.Expression)
	outer, ok := exprStmt.Expr.(*ast.Call)
	require.True(t, ok)
	mid, ok := outer.Callee.(*ast.Call)
	require.True(t, ok)
	_, ok = mid.Callee.(*ast.Call)
	require.True(t, ok)
}

func TestParseFunctionDeclaration(t *testing.T) {
	stmts := parseOK(t, "fun add(a, b) { return a + b; }")
	fn, ok := stmts[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Equal(t, []string{"a", "b"}, []string{fn.Params[0].Lexeme, fn.Params[1].Lexeme})
	require.Len(t, fn.Body, 1)
}

func TestParseErrorAccumulatesMultipleDiagnostics(t *testing.T) {
	p, lexReport := New("var ; print(;")
	require.False(t, lexReport.HasErrors())
	p.Parse()
	assert.True(t, p.HasErrors())
	assert.GreaterOrEqual(t, len(p.Report().Diagnostics), 2)
}

func TestParseLogicalIsDistinctFromBinary(t *testing.T) {
	stmts := parseOK(t, "a and b;")
	exprStmt := stmts[0].(*ast.Expression)
	_, ok := exprStmt.Expr.(*ast.Logical)
	assert.True(t, ok)
}
