/*
File    : loxwalk/lexer/lexer.go

Package lexer implements the scanner: source string -> token stream. A
character-by-character scan loop tracks line/column as it goes, and
accumulates diagnostics for unrecognized input instead of halting.
*/
package lexer

import (
	"strconv"
	"strings"

	"github.com/gomix-labs/loxwalk/diagnostics"
	"github.com/gomix-labs/loxwalk/token"
)

// Lexer scans a source string into a Token stream, one rune at a time.
type Lexer struct {
	src    []rune
	pos    int
	line   int
	column int
	tokens []token.Token
	report diagnostics.Report
}

// New creates a Lexer over src, ready for Scan.
func New(src string) *Lexer {
	return &Lexer{
		src:    []rune(src),
		pos:    0,
		line:   1,
		column: 1,
		report: diagnostics.Report{Phase: diagnostics.Lex},
	}
}

// Scan consumes the entire source and returns the resulting token stream
// (always terminated by a single Eof token) and any diagnostics. A
// non-empty diagnostics report means the caller must not trust tokens.
func (l *Lexer) Scan() ([]token.Token, diagnostics.Report) {
	for {
		l.skipWhitespaceAndComments()
		if l.atEnd() {
			break
		}
		l.scanToken()
	}
	l.tokens = append(l.tokens, token.New(token.Eof, "", l.line, l.column))
	return l.tokens, l.report
}

func (l *Lexer) atEnd() bool { return l.pos >= len(l.src) }

func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekNext() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) match(expected rune) bool {
	if l.atEnd() || l.src[l.pos] != expected {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case '/':
			if l.peekNext() == '/' {
				for !l.atEnd() && l.peek() != '\n' {
					l.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (l *Lexer) scanToken() {
	startLine, startColumn := l.line, l.column
	c := l.advance()

	emit := func(kind token.Kind, lexeme string) {
		l.tokens = append(l.tokens, token.New(kind, lexeme, startLine, startColumn))
	}

	switch c {
	case '(':
		emit(token.LeftParen, "(")
	case ')':
		emit(token.RightParen, ")")
	case '{':
		emit(token.LeftBrace, "{")
	case '}':
		emit(token.RightBrace, "}")
	case ',':
		emit(token.Comma, ",")
	case '.':
		emit(token.Dot, ".")
	case ';':
		emit(token.Semicolon, ";")
	case '+':
		emit(token.Plus, "+")
	case '-':
		emit(token.Minus, "-")
	case '*':
		emit(token.Star, "*")
	case '/':
		emit(token.Slash, "/")
	case '!':
		if l.match('=') {
			emit(token.BangEqual, "!=")
		} else {
			emit(token.Bang, "!")
		}
	case '=':
		if l.match('=') {
			emit(token.EqualEqual, "==")
		} else {
			emit(token.Equal, "=")
		}
	case '>':
		if l.match('=') {
			emit(token.GreaterEqual, ">=")
		} else {
			emit(token.Greater, ">")
		}
	case '<':
		if l.match('=') {
			emit(token.LessEqual, "<=")
		} else {
			emit(token.Less, "<")
		}
	case '"':
		l.scanString(startLine, startColumn)
	default:
		switch {
		case isDigit(c):
			l.scanNumber(startLine, startColumn)
		case isAlpha(c):
			l.scanIdentifier(startLine, startColumn)
		default:
			l.report.Add(diagnostics.New("unexpected character '"+string(c)+"'", startLine, startColumn))
		}
	}
}

func (l *Lexer) scanString(startLine, startColumn int) {
	var b strings.Builder
	for !l.atEnd() && l.peek() != '"' {
		b.WriteRune(l.advance())
	}
	if l.atEnd() {
		l.report.Add(diagnostics.New("unterminated string", startLine, startColumn))
		return
	}
	l.advance() // closing quote
	lexeme := b.String()
	t := token.New(token.String, lexeme, startLine, startColumn)
	t.Literal = lexeme
	l.tokens = append(l.tokens, t)
}

func (l *Lexer) scanNumber(startLine, startColumn int) {
	start := l.pos - 1
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	lexeme := string(l.src[start:l.pos])
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		l.report.Add(diagnostics.New("malformed number '"+lexeme+"'", startLine, startColumn))
		return
	}
	t := token.New(token.Number, lexeme, startLine, startColumn)
	t.Literal = value
	l.tokens = append(l.tokens, t)
}

func (l *Lexer) scanIdentifier(startLine, startColumn int) {
	start := l.pos - 1
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	t := token.NewIdentifier(lexeme, startLine, startColumn)
	l.tokens = append(l.tokens, t)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlpha(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlphaNumeric(r rune) bool { return isAlpha(r) || isDigit(r) }
