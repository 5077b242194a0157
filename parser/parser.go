/*
File    : loxwalk/parser/parser.go

Package parser implements a recursive-descent, precedence-climbing parser:
tokens -> ordered Stmt list, or a non-empty diagnostic list. Lookahead is a
single current token advanced one at a time, with error collection instead
of panicking, written as named functions per precedence level rather than
a token-type dispatch table.
*/
package parser

import (
	"fmt"

	"github.com/gomix-labs/loxwalk/ast"
	"github.com/gomix-labs/loxwalk/diagnostics"
	"github.com/gomix-labs/loxwalk/lexer"
	"github.com/gomix-labs/loxwalk/token"
)

// maxArity is the parameter/argument count cap.
const maxArity = 255

// Parser converts a token stream into a Stmt list with error recovery.
type Parser struct {
	tokens  []token.Token
	pos     int
	report  diagnostics.Report
}

// New creates a Parser over src, scanning it with the lexer first. If the
// lexer reports diagnostics, the parser still constructs (so callers can
// inspect Lex errors) but Parse should not be called — the driver gates
// on each phase's report being empty before advancing.
func New(src string) (*Parser, diagnostics.Report) {
	toks, lexReport := lexer.New(src).Scan()
	p := &Parser{
		tokens: toks,
		report: diagnostics.Report{Phase: diagnostics.Parse},
	}
	return p, lexReport
}

func (p *Parser) Report() diagnostics.Report { return p.report }
func (p *Parser) HasErrors() bool            { return p.report.HasErrors() }

func (p *Parser) peek() token.Token     { return p.tokens[p.pos] }
func (p *Parser) previous() token.Token { return p.tokens[p.pos-1] }
func (p *Parser) atEnd() bool           { return p.peek().Kind == token.Eof }

func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return kind == token.Eof
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past kind or records a diagnostic and returns false.
func (p *Parser) consume(kind token.Kind, message string) (token.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	p.errorAt(p.peek(), message)
	return token.Token{}, false
}

func (p *Parser) errorAt(t token.Token, message string) {
	p.report.Add(diagnostics.New(message, t.Line, t.Column))
}

// synchronize is best-effort error recovery: advance until crossing a ';'
// or reaching a token that conservatively begins a fresh declaration.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If,
			token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}

// Parse runs program := declaration* EOF.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.atEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// declaration := varDecl | funDecl | returnStmt | statement
func (p *Parser) declaration() ast.Stmt {
	stmt, err := p.declarationOrError()
	if err {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) declarationOrError() (ast.Stmt, bool) {
	before := len(p.report.Diagnostics)
	var stmt ast.Stmt
	switch {
	case p.match(token.Var):
		stmt = p.varDecl()
	case p.match(token.Fun):
		stmt = p.funDecl("function")
	case p.match(token.Return):
		stmt = p.returnStmt()
	default:
		stmt = p.statement()
	}
	return stmt, len(p.report.Diagnostics) > before
}

// varDecl := 'var' IDENT ('=' expression)? ';'
func (p *Parser) varDecl() ast.Stmt {
	name, ok := p.consume(token.Identifier, "expected variable name")
	if !ok {
		return nil
	}
	var init ast.Expr
	if p.match(token.Equal) {
		init = p.expression()
	}
	if _, ok := p.consume(token.Semicolon, "expected ';' after variable declaration"); !ok {
		return nil
	}
	return &ast.Var{Name: name, Initializer: init}
}

// funDecl := 'fun' IDENT '(' params? ')' block
func (p *Parser) funDecl(kind string) ast.Stmt {
	name, ok := p.consume(token.Identifier, "expected "+kind+" name")
	if !ok {
		return nil
	}
	if _, ok := p.consume(token.LeftParen, "expected '(' after "+kind+" name"); !ok {
		return nil
	}
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArity {
				p.errorAt(p.peek(), fmt.Sprintf("can't have more than %d parameters", maxArity))
			}
			param, ok := p.consume(token.Identifier, "expected parameter name")
			if !ok {
				return nil
			}
			params = append(params, param)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, ok := p.consume(token.RightParen, "expected ')' after parameters"); !ok {
		return nil
	}
	if _, ok := p.consume(token.LeftBrace, "expected '{' before "+kind+" body"); !ok {
		return nil
	}
	body := p.block()
	return &ast.Function{Name: name, Params: params, Body: body}
}

// returnStmt := 'return' expression? ';'
func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	if _, ok := p.consume(token.Semicolon, "expected ';' after return value"); !ok {
		return nil
	}
	return &ast.Return{Keyword: keyword, Value: value}
}

// statement := block | ifStmt | whileStmt | forStmt | returnStmt | exprStmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.LeftBrace):
		return &ast.Block{Statements: p.block()}
	case p.match(token.Return):
		return p.returnStmt()
	case p.match(token.If):
		return p.ifStmt()
	case p.match(token.While):
		return p.whileStmt()
	case p.match(token.For):
		return p.forStmt()
	default:
		return p.exprStmt()
	}
}

// block := '{' declaration* '}'   (opening '{' already consumed by caller)
func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RightBrace, "expected '}' after block")
	return statements
}

// ifStmt := 'if' '(' expression ')' statement ('else' statement)?
func (p *Parser) ifStmt() ast.Stmt {
	if _, ok := p.consume(token.LeftParen, "expected '(' after 'if'"); !ok {
		return nil
	}
	cond := p.expression()
	if _, ok := p.consume(token.RightParen, "expected ')' after if condition"); !ok {
		return nil
	}
	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.If{Condition: cond, Then: thenBranch, Else: elseBranch}
}

// whileStmt := 'while' '(' expression ')' statement
func (p *Parser) whileStmt() ast.Stmt {
	if _, ok := p.consume(token.LeftParen, "expected '(' after 'while'"); !ok {
		return nil
	}
	cond := p.expression()
	if _, ok := p.consume(token.RightParen, "expected ')' after while condition"); !ok {
		return nil
	}
	body := p.statement()
	return &ast.While{Condition: cond, Body: body}
}

// forStmt desugars `for (init; cond; inc) body` into
// `{ init; while (cond) { body; inc; } }` at parse time, so the evaluator
// needs no dedicated for-loop node.
func (p *Parser) forStmt() ast.Stmt {
	if _, ok := p.consume(token.LeftParen, "expected '(' after 'for'"); !ok {
		return nil
	}

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer = p.varDecl()
	default:
		initializer = p.exprStmt()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "expected ';' after loop condition")

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	if _, ok := p.consume(token.RightParen, "expected ')' after for clauses"); !ok {
		return nil
	}

	body := p.statement()

	if condition == nil {
		condition = &ast.Literal{Token: token.New(token.True, "true", 0, 0)}
	}

	if increment != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.Expression{Expr: increment}}}
	}
	body = &ast.While{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

// exprStmt := expression ';'
func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	if _, ok := p.consume(token.Semicolon, "expected ';' after expression"); !ok {
		return nil
	}
	return &ast.Expression{Expr: expr}
}
