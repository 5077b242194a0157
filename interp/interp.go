/*
File    : loxwalk/interp/interp.go

Package interp implements the AST evaluator: two cooperating walkers —
one for Expr (yields a Value or a diagnostic), one for Stmt (produces
side effects and a control signal). Statements run sequentially; a
dedicated signal type carries the non-local return value; function calls
swap in the callee's closure environment, shared (not copied) so later
mutation in an enclosing scope stays visible — see DESIGN.md.
*/
package interp

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gomix-labs/loxwalk/ast"
	"github.com/gomix-labs/loxwalk/callable"
	"github.com/gomix-labs/loxwalk/diagnostics"
	"github.com/gomix-labs/loxwalk/environment"
	"github.com/gomix-labs/loxwalk/token"
	"github.com/gomix-labs/loxwalk/value"
)

// signalKind tags which of the two channels — error or control-flow —
// a signal carries.
type signalKind int

const (
	sigError signalKind = iota
	sigReturn
)

// signal is the Go type used to thread the Error(message) |
// Return(value) channel through statement and expression evaluation. It
// implements `error`, with Error() returning its message.
type signal struct {
	kind    signalKind
	message string
	line    int
	column  int
	value   value.Value
}

func (s *signal) Error() string { return s.message }

func errSignal(line, column int, format string, args ...interface{}) *signal {
	return &signal{kind: sigError, message: fmt.Sprintf(format, args...), line: line, column: column}
}

func returnSignal(v value.Value) *signal {
	return &signal{kind: sigReturn, value: v}
}

// Interpreter owns the global environment and the accumulated runtime
// diagnostics report. One instance persists across REPL submissions as an
// owned handle on the interpreter's mutable state.
type Interpreter struct {
	Globals *environment.Environment
	Stdout  Writer
	Stdin   Reader
	report  diagnostics.Report
}

// Writer is the minimal output sink print/println/dbg write to.
type Writer interface {
	WriteString(s string) (int, error)
}

// Reader is the minimal input source read_line consumes from.
type Reader interface {
	ReadLine() (string, error)
}

// New creates an Interpreter with a fresh global environment populated
// with the core native functions plus the extended natives (math,
// string, crypto/encoding, regex, time, json).
func New(stdout Writer, stdin Reader) *Interpreter {
	i := &Interpreter{
		Globals: environment.New(),
		Stdout:  stdout,
		Stdin:   stdin,
	}
	RegisterNatives(i)
	return i
}

// Run evaluates a full program (statement list) against the global
// environment, returning the accumulated runtime diagnostics. Each
// top-level statement is evaluated in turn; a runtime error aborts only
// the offending statement, not the whole program. A Return signal
// reaching top level is itself a diagnostic ("return outside function").
func (i *Interpreter) Run(statements []ast.Stmt) diagnostics.Report {
	i.report = diagnostics.Report{Phase: diagnostics.Runtime}
	for _, stmt := range statements {
		sig := i.execStmt(i.Globals, stmt)
		if sig == nil {
			continue
		}
		switch sig.kind {
		case sigReturn:
			i.report.Add(diagnostics.New("return outside function", sig.line, sig.column))
		case sigError:
			i.report.Add(diagnostics.New(sig.message, sig.line, sig.column))
		}
	}
	return i.report
}

// execStmt evaluates a single statement, returning a non-nil signal when
// a Return control-flow signal is in flight or when the statement failed
// with a sigError. Callers that run a sequence of statements (Run,
// execBlock) record sigError results in the interpreter's report and go
// on with the next statement; only a Return signal stops the sequence.
func (i *Interpreter) execStmt(env *environment.Environment, stmt ast.Stmt) *signal {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, sig := i.evalExpr(env, s.Expr)
		return sig
	case *ast.Block:
		return i.execBlock(env.NewChild(), s.Statements)
	case *ast.Var:
		return i.execVar(env, s)
	case *ast.If:
		return i.execIf(env, s)
	case *ast.While:
		return i.execWhile(env, s)
	case *ast.Function:
		return i.execFunction(env, s)
	case *ast.Return:
		return i.execReturn(env, s)
	}
	return errSignal(0, 0, "unknown statement node %T", stmt)
}

// execBlock runs statements in env (already the fresh child scope). A
// sigError is folded into the interpreter's report and execution
// continues with the next statement; a sigReturn stops the block
// immediately and propagates.
func (i *Interpreter) execBlock(env *environment.Environment, statements []ast.Stmt) *signal {
	for _, stmt := range statements {
		sig := i.execStmt(env, stmt)
		if sig == nil {
			continue
		}
		if sig.kind == sigReturn {
			return sig
		}
		i.report.Add(diagnostics.New(sig.message, sig.line, sig.column))
	}
	return nil
}

func (i *Interpreter) execVar(env *environment.Environment, s *ast.Var) *signal {
	v := value.Nil()
	if s.Initializer != nil {
		val, sig := i.evalExpr(env, s.Initializer)
		if sig != nil {
			return sig
		}
		v = val
	}
	env.Define(s.Name.Lexeme, v)
	return nil
}

func (i *Interpreter) execIf(env *environment.Environment, s *ast.If) *signal {
	cond, sig := i.evalExpr(env, s.Condition)
	if sig != nil {
		return sig
	}
	if cond.Truthy() {
		return i.execStmt(env.NewChild(), s.Then)
	}
	if s.Else != nil {
		return i.execStmt(env.NewChild(), s.Else)
	}
	return nil
}

func (i *Interpreter) execWhile(env *environment.Environment, s *ast.While) *signal {
	for {
		cond, sig := i.evalExpr(env, s.Condition)
		if sig != nil {
			return sig
		}
		if !cond.Truthy() {
			return nil
		}
		if sig := i.execStmt(env.NewChild(), s.Body); sig != nil {
			return sig
		}
	}
}

func (i *Interpreter) execFunction(env *environment.Environment, s *ast.Function) *signal {
	params := make([]string, len(s.Params))
	for idx, p := range s.Params {
		params[idx] = p.Lexeme
	}
	fn := &callable.User{
		Name:    s.Name.Lexeme,
		Params:  params,
		Body:    s.Body,
		Closure: env,
	}
	env.Define(s.Name.Lexeme, value.NewCallable(fn))
	return nil
}

func (i *Interpreter) execReturn(env *environment.Environment, s *ast.Return) *signal {
	v := value.Nil()
	if s.Value != nil {
		val, sig := i.evalExpr(env, s.Value)
		if sig != nil {
			return sig
		}
		v = val
	}
	return returnSignal(v)
}

// evalExpr evaluates an expression node, returning a sigError signal (never
// sigReturn) on failure.
func (i *Interpreter) evalExpr(env *environment.Environment, expr ast.Expr) (value.Value, *signal) {
	switch e := expr.(type) {
	case *ast.Literal:
		return i.evalLiteral(e)
	case *ast.Grouping:
		return i.evalExpr(env, e.Inner)
	case *ast.Unary:
		return i.evalUnary(env, e)
	case *ast.Binary:
		return i.evalBinary(env, e)
	case *ast.Variable:
		return i.evalVariable(env, e)
	case *ast.Assign:
		return i.evalAssign(env, e)
	case *ast.Logical:
		return i.evalLogical(env, e)
	case *ast.Call:
		return i.evalCall(env, e)
	}
	return value.Nil(), errSignal(0, 0, "unknown expression node %T", expr)
}

func (i *Interpreter) evalLiteral(e *ast.Literal) (value.Value, *signal) {
	switch e.Token.Kind {
	case token.True:
		return value.Boolean(true), nil
	case token.False:
		return value.Boolean(false), nil
	case token.Nil:
		return value.Nil(), nil
	case token.Number:
		return value.Number(e.Token.Literal.(float64)), nil
	case token.String:
		return value.String(e.Token.Literal.(string)), nil
	}
	return value.Nil(), errSignal(e.Token.Line, e.Token.Column, "unrecognized literal token")
}

func (i *Interpreter) evalUnary(env *environment.Environment, e *ast.Unary) (value.Value, *signal) {
	operand, sig := i.evalExpr(env, e.Operand)
	if sig != nil {
		return value.Nil(), sig
	}
	switch e.Op.Kind {
	case token.Minus:
		if !operand.IsNumber() {
			return value.Nil(), errSignal(e.Op.Line, e.Op.Column, "operand of unary '-' must be a number")
		}
		return value.Number(-operand.AsNumber()), nil
	case token.Bang:
		// Reserved identifiers true/false/nil resolve as expected, and for
		// a Number operand `!n` is true iff n == 0 (within the equality
		// tolerance) rather than the ordinary Lox "numbers are truthy"
		// rule — intentional.
		if operand.IsNumber() {
			return value.Boolean(operand.Equal(value.Number(0))), nil
		}
		return value.Boolean(!operand.Truthy()), nil
	}
	return value.Nil(), errSignal(e.Op.Line, e.Op.Column, "unrecognized unary operator")
}

func (i *Interpreter) evalBinary(env *environment.Environment, e *ast.Binary) (value.Value, *signal) {
	left, sig := i.evalExpr(env, e.Left)
	if sig != nil {
		return value.Nil(), sig
	}
	right, sig := i.evalExpr(env, e.Right)
	if sig != nil {
		return value.Nil(), sig
	}

	op := e.Op
	switch {
	case left.IsNumber() && right.IsNumber():
		return evalNumericBinary(op, left.AsNumber(), right.AsNumber())
	case left.IsString() && right.IsString():
		return evalStringBinary(op, left.AsString(), right.AsString())
	}
	return value.Nil(), errSignal(op.Line, op.Column,
		"type mismatch: cannot apply '%s' to operands of differing or unsupported types", op.Lexeme)
}

func evalNumericBinary(op token.Token, l, r float64) (value.Value, *signal) {
	switch op.Kind {
	case token.Plus:
		return value.Number(l + r), nil
	case token.Minus:
		return value.Number(l - r), nil
	case token.Star:
		return value.Number(l * r), nil
	case token.Slash:
		return value.Number(l / r), nil // IEEE-754 result, no trap on division by zero
	case token.Greater:
		return value.Boolean(l > r), nil
	case token.GreaterEqual:
		return value.Boolean(l >= r), nil
	case token.Less:
		return value.Boolean(l < r), nil
	case token.LessEqual:
		return value.Boolean(l <= r), nil
	case token.EqualEqual:
		return value.Boolean(value.Number(l).Equal(value.Number(r))), nil
	case token.BangEqual:
		return value.Boolean(!value.Number(l).Equal(value.Number(r))), nil
	}
	return value.Nil(), errSignal(op.Line, op.Column, "unsupported numeric operator '%s'", op.Lexeme)
}

func evalStringBinary(op token.Token, l, r string) (value.Value, *signal) {
	switch op.Kind {
	case token.Plus:
		return value.String(l + r), nil
	case token.Greater:
		return value.Boolean(l > r), nil
	case token.GreaterEqual:
		return value.Boolean(l >= r), nil
	case token.Less:
		return value.Boolean(l < r), nil
	case token.LessEqual:
		return value.Boolean(l <= r), nil
	case token.EqualEqual:
		return value.Boolean(l == r), nil
	case token.BangEqual:
		return value.Boolean(l != r), nil
	}
	return value.Nil(), errSignal(op.Line, op.Column, "unsupported string operator '%s'", op.Lexeme)
}

func (i *Interpreter) evalVariable(env *environment.Environment, e *ast.Variable) (value.Value, *signal) {
	switch e.Name.Kind {
	case token.True:
		return value.Boolean(true), nil
	case token.False:
		return value.Boolean(false), nil
	case token.Nil:
		return value.Nil(), nil
	}
	v, err := env.Get(e.Name.Lexeme)
	if err != nil {
		return value.Nil(), errSignal(e.Name.Line, e.Name.Column, "%s", err)
	}
	return v, nil
}

func (i *Interpreter) evalAssign(env *environment.Environment, e *ast.Assign) (value.Value, *signal) {
	v, sig := i.evalExpr(env, e.Value)
	if sig != nil {
		return value.Nil(), sig
	}
	if err := env.Assign(e.Name.Lexeme, v); err != nil {
		return value.Nil(), errSignal(e.Name.Line, e.Name.Column, "%s", err)
	}
	return v, nil
}

func (i *Interpreter) evalLogical(env *environment.Environment, e *ast.Logical) (value.Value, *signal) {
	left, sig := i.evalExpr(env, e.Left)
	if sig != nil {
		return value.Nil(), sig
	}
	if !left.IsBoolean() {
		return value.Nil(), errSignal(e.Op.Line, e.Op.Column, "logical operand must be a boolean")
	}
	if e.Op.Kind == token.Or && left.AsBoolean() {
		return value.Boolean(true), nil
	}
	if e.Op.Kind == token.And && !left.AsBoolean() {
		return value.Boolean(false), nil
	}
	right, sig := i.evalExpr(env, e.Right)
	if sig != nil {
		return value.Nil(), sig
	}
	if !right.IsBoolean() {
		return value.Nil(), errSignal(e.Op.Line, e.Op.Column, "logical operand must be a boolean")
	}
	return value.Boolean(right.AsBoolean()), nil
}

func (i *Interpreter) evalCall(env *environment.Environment, e *ast.Call) (value.Value, *signal) {
	callee, sig := i.evalExpr(env, e.Callee)
	if sig != nil {
		return value.Nil(), sig
	}
	args := make([]value.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, sig := i.evalExpr(env, a)
		if sig != nil {
			return value.Nil(), sig
		}
		args = append(args, v)
	}
	if !callee.IsCallable() {
		return value.Nil(), errSignal(e.ClosingParen.Line, e.ClosingParen.Column, "can only call functions")
	}
	fn := callee.AsCallable()
	if fn.Arity() != len(args) {
		return value.Nil(), errSignal(e.ClosingParen.Line, e.ClosingParen.Column,
			"expected %d argument(s) but got %d", fn.Arity(), len(args))
	}
	return i.invoke(fn, args, e.ClosingParen)
}

// invoke implements call semantics for both Callable variants.
func (i *Interpreter) invoke(fn value.Callable, args []value.Value, site token.Token) (value.Value, *signal) {
	switch c := fn.(type) {
	case *callable.Native:
		v, err := c.Call(args)
		if err != nil {
			return value.Nil(), errSignal(site.Line, site.Column, "%s", err)
		}
		return v, nil
	case *callable.User:
		callEnv := c.Closure.NewChild()
		for idx, param := range c.Params {
			callEnv.Define(param, args[idx])
		}
		sig := i.execBlock(callEnv, c.Body)
		if sig == nil {
			return value.Nil(), nil
		}
		if sig.kind == sigReturn {
			return sig.value, nil
		}
		return value.Nil(), sig
	}
	return value.Nil(), errSignal(site.Line, site.Column, "uncallable callable implementation")
}

// parseFloatOrNil backs the `parse` native (SPEC_FULL.md §2 core table).
func parseFloatOrNil(s string) value.Value {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return value.Nil()
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return value.Nil()
	}
	return value.Number(f)
}
