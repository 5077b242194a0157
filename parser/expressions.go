/*
File    : loxwalk/parser/expressions.go

Precedence-climbing expression grammar, lowest to highest precedence:

	expression   := assignment
	assignment   := IDENT '=' assignment | logic_or
	logic_or     := logic_and ('or' logic_and)*
	logic_and    := equality ('and' equality)*
	equality     := comparison (('!=' | '==') comparison)*
	comparison   := term (('>' | '>=' | '<' | '<=') term)*
	term         := factor (('+' | '-') factor)*
	factor       := unary (('*' | '/') unary)*
	unary        := ('!' | '-') unary | call
	call         := primary ( '(' arguments? ')' )*
	primary      := 'true' | 'false' | 'nil' | NUMBER | STRING | IDENT
	             |  '(' expression ')'
*/
package parser

import (
	"fmt"

	"github.com/gomix-labs/loxwalk/ast"
	"github.com/gomix-labs/loxwalk/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative; the left side must be a bare Variable
// node — any other shape is a diagnostic ("invalid assignment target")
// anchored at the '=' token, and parsing continues (the malformed
// assignment is simply discarded as an expression-statement target).
func (p *Parser) assignment() ast.Expr {
	expr := p.logicOr()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: variable.Name, Value: value}
		}
		p.errorAt(equals, "invalid assignment target")
		return expr
	}
	return expr
}

func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(token.Or) {
		op := p.previous()
		right := p.logicAnd()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Star, token.Slash) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		operand := p.unary()
		return &ast.Unary{Op: op, Operand: operand}
	}
	return p.call()
}

// call := primary ( '(' arguments? ')' )*
// Chained calls (`f()()()`) parse left-to-right into nested Call nodes.
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(token.LeftParen) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArity {
				p.errorAt(p.peek(), fmt.Sprintf("can't have more than %d arguments", maxArity))
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren, _ := p.consume(token.RightParen, "expected ')' after arguments")
	return &ast.Call{Callee: callee, ClosingParen: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False, token.True, token.Nil, token.Number, token.String):
		return &ast.Literal{Token: p.previous()}
	case p.match(token.Identifier, token.Print):
		// `print` is a reserved word but names the print native function.
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "expected ')' after expression")
		return &ast.Grouping{Inner: expr}
	}
	p.errorAt(p.peek(), "expected expression")
	p.advance()
	return &ast.Literal{Token: token.New(token.Nil, "nil", 0, 0)}
}
