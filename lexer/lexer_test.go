package lexer

import (
	"testing"

	"github.com/gomix-labs/loxwalk/token"
	"github.com/stretchr/testify/assert"
)

func TestScanPunctuationAndOperators(t *testing.T) {
	tokens, report := New("(){},.;+-*/= == ! != > >= < <=").Scan()
	assert.False(t, report.HasErrors())

	expected := []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Semicolon, token.Plus, token.Minus,
		token.Star, token.Slash, token.Equal, token.EqualEqual, token.Bang,
		token.BangEqual, token.Greater, token.GreaterEqual, token.Less,
		token.LessEqual, token.Eof,
	}
	assert.Equal(t, len(expected), len(tokens))
	for i, kind := range expected {
		assert.Equal(t, kind, tokens[i].Kind)
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	tokens, report := New("var x = foo and bar").Scan()
	assert.False(t, report.HasErrors())
	assert.Equal(t, token.Var, tokens[0].Kind)
	assert.Equal(t, token.Identifier, tokens[1].Kind)
	assert.Equal(t, token.Equal, tokens[2].Kind)
	assert.Equal(t, token.Identifier, tokens[3].Kind)
	assert.Equal(t, token.And, tokens[4].Kind)
	assert.Equal(t, token.Identifier, tokens[5].Kind)
}

func TestScanStringLiteral(t *testing.T) {
	tokens, report := New(`"hello world"`).Scan()
	assert.False(t, report.HasErrors())
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanUnterminatedString(t *testing.T) {
	_, report := New(`"hello`).Scan()
	assert.True(t, report.HasErrors())
	assert.Contains(t, report.Diagnostics[0].Message, "unterminated string")
}

func TestScanNumber(t *testing.T) {
	tokens, report := New("42 3.14").Scan()
	assert.False(t, report.HasErrors())
	assert.Equal(t, 42.0, tokens[0].Literal)
	assert.Equal(t, 3.14, tokens[1].Literal)
}

func TestScanLineComment(t *testing.T) {
	tokens, report := New("1 // this is a comment\n2").Scan()
	assert.False(t, report.HasErrors())
	assert.Equal(t, 1.0, tokens[0].Literal)
	assert.Equal(t, 2.0, tokens[1].Literal)
}

func TestScanUnknownCharacterAccumulatesAndContinues(t *testing.T) {
	tokens, report := New("1 @ 2 # 3").Scan()
	assert.Len(t, report.Diagnostics, 2)
	// lexing continues past both bad characters, still producing 1, 2, 3, Eof
	assert.Equal(t, 1.0, tokens[0].Literal)
	assert.Equal(t, 2.0, tokens[1].Literal)
	assert.Equal(t, 3.0, tokens[2].Literal)
	assert.Equal(t, token.Eof, tokens[3].Kind)
}

func TestScanTracksLineAndColumn(t *testing.T) {
	tokens, _ := New("x\ny").Scan()
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Column)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 1, tokens[1].Column)
}
