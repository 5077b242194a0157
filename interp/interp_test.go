package interp

import (
	"strings"
	"testing"

	"github.com/gomix-labs/loxwalk/ast"
	"github.com/gomix-labs/loxwalk/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stringWriter is an in-memory Writer for asserting on stdout.
type stringWriter struct {
	strings.Builder
}

func (w *stringWriter) WriteString(s string) (int, error) { return w.Builder.WriteString(s) }

func parseProgram(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	p, lexReport := parser.New(src)
	require.False(t, lexReport.HasErrors(), "lex errors: %v", lexReport.Diagnostics)
	stmts := p.Parse()
	require.False(t, p.HasErrors(), "parse errors: %v", p.Report().Diagnostics)
	return stmts
}

func run(t *testing.T, src string) string {
	t.Helper()
	out := &stringWriter{}
	i := New(out, nil)
	report := i.Run(parseProgram(t, src))
	require.False(t, report.HasErrors(), "runtime errors: %v", report.Diagnostics)
	return out.String()
}

func TestArithmeticAndPrint(t *testing.T) {
	assert.Equal(t, "7\n", run(t, "println(1 + 2 * 3);"))
}

func TestLexicalClosureCounter(t *testing.T) {
	src := `
fun makeCounter() {
  var i = 0;
  fun count() { i = i + 1; return i; }
  return count;
}
var c = makeCounter();
println(c()); println(c()); println(c());
`
	assert.Equal(t, "1\n2\n3\n", run(t, src))
}

func TestShortCircuitNoSideEffect(t *testing.T) {
	src := `
fun bomb() { println("boom"); return true; }
var x = false and bomb();
println(x);
`
	assert.Equal(t, "false\n", run(t, src))
}

func TestForLoopDesugaring(t *testing.T) {
	assert.Equal(t, "0\n1\n2\n", run(t, "for (var i = 0; i < 3; i = i + 1) println(i);"))
}

func TestRecursionFibonacci(t *testing.T) {
	src := `
fun fib(n) { if (n < 2) return n; return fib(n-1) + fib(n-2); }
println(fib(10));
`
	assert.Equal(t, "55\n", run(t, src))
}

func TestNumericEqualityTolerance(t *testing.T) {
	assert.Equal(t, "true\n", run(t, "println(0.1 + 0.2 == 0.3);"))
}

func TestEmptyBlockIsNoOp(t *testing.T) {
	assert.Equal(t, "", run(t, "{}"))
}

func TestEmptyReturnYieldsNil(t *testing.T) {
	assert.Equal(t, "nil\n", run(t, "fun f() { return; } println(f());"))
}

func TestZeroParamFunction(t *testing.T) {
	assert.Equal(t, "42\n", run(t, "fun answer() { return 42; } println(answer());"))
}

func TestClosureSharesMutableEnvironment(t *testing.T) {
	// A function observes mutations made to its defining scope after
	// capture, because the closure's captured environment is shared
	// rather than copied.
	src := `
var shared = 0;
fun capture() { return shared; }
shared = 99;
println(capture());
`
	assert.Equal(t, "99\n", run(t, src))
}

func TestAssignToUndefinedVariableIsRuntimeError(t *testing.T) {
	out := &stringWriter{}
	i := New(out, nil)
	report := i.Run(parseProgram(t, "x = 1;"))
	assert.True(t, report.HasErrors())
}

func TestBangNumberIsEqualToZero(t *testing.T) {
	assert.Equal(t, "true\nfalse\n", run(t, "println(!0); println(!1);"))
}

func TestErrorInStatementDoesNotAbortNextStatement(t *testing.T) {
	out := &stringWriter{}
	i := New(out, nil)
	report := i.Run(parseProgram(t, "undefined_var; println(1);"))
	assert.True(t, report.HasErrors())
	assert.Equal(t, "1\n", out.String())
}

func TestDomainStackMathAndStringNatives(t *testing.T) {
	assert.Equal(t, "3\n", run(t, "println(sqrt(9));"))
	assert.Equal(t, "8\n", run(t, "println(pow(2, 3));"))
	assert.Equal(t, "HELLO\n", run(t, `println(upper("hello"));`))
	assert.Equal(t, "true\n", run(t, `println(starts_with("hello", "he"));`))
}

func TestDomainStackCryptoAndRegexNatives(t *testing.T) {
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592\n", run(t, `println(md5_hex("hello"));`))
	assert.Equal(t, "true\n", run(t, `println(regex_match("hello123", "[0-9]+"));`))
}
