/*
File    : loxwalk/ast/ast.go

Package ast defines the two tagged sums the parser produces and the
evaluator walks: Expr and Stmt. Dispatch is by type switch in package
interp rather than an Accept(visitor) indirection, since the variant set
is small and fixed; each node type carries an unexported marker method
purely to restrict Expr/Stmt to this package's own types, in the idiom of
the standard library's own go/ast package.
*/
package ast

import "github.com/gomix-labs/loxwalk/token"

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// --- Expr variants ---

type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Binary) exprNode() {}

type Grouping struct {
	Inner Expr
}

func (*Grouping) exprNode() {}

// Literal carries the token whose Kind/Literal the evaluator maps to a
// Value (true/false/nil/number/string).
type Literal struct {
	Token token.Token
}

func (*Literal) exprNode() {}

type Unary struct {
	Op      token.Token
	Operand Expr
}

func (*Unary) exprNode() {}

type Variable struct {
	Name token.Token
}

func (*Variable) exprNode() {}

type Assign struct {
	Name  token.Token
	Value Expr
}

func (*Assign) exprNode() {}

// Logical is distinct from Binary to preserve short-circuit semantics.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Logical) exprNode() {}

type Call struct {
	Callee       Expr
	ClosingParen token.Token
	Args         []Expr
}

func (*Call) exprNode() {}

// --- Stmt variants ---

type Block struct {
	Statements []Stmt
}

func (*Block) stmtNode() {}

type Expression struct {
	Expr Expr
}

func (*Expression) stmtNode() {}

type Var struct {
	Name        token.Token
	Initializer Expr // nil if omitted
}

func (*Var) stmtNode() {}

type While struct {
	Condition Expr
	Body      Stmt
}

func (*While) stmtNode() {}

type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if omitted
}

func (*If) stmtNode() {}

type Function struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (*Function) stmtNode() {}

type Return struct {
	Keyword token.Token
	Value   Expr // nil if omitted
}

func (*Return) stmtNode() {}
