/*
File    : loxwalk/token/token.go

Package token defines the lexeme model shared by the lexer and parser:
a tagged token Kind, source-location metadata, and the keyword table used
to remap identifiers onto reserved-word kinds.
*/
package token

import "fmt"

// Kind tags the lexical category of a Token.
type Kind int

const (
	// single/double-char punctuation and operators
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Semicolon
	Plus
	Minus
	Star
	Slash
	Equal
	EqualEqual
	Bang
	BangEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// literals
	Identifier
	String
	Number

	// keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// sentinels
	Skip
	Eof
)

var names = map[Kind]string{
	LeftParen: "(", RightParen: ")", LeftBrace: "{", RightBrace: "}",
	Comma: ",", Dot: ".", Semicolon: ";",
	Plus: "+", Minus: "-", Star: "*", Slash: "/",
	Equal: "=", EqualEqual: "==", Bang: "!", BangEqual: "!=",
	Greater: ">", GreaterEqual: ">=", Less: "<", LessEqual: "<=",
	Identifier: "IDENTIFIER", String: "STRING", Number: "NUMBER",
	And: "and", Class: "class", Else: "else", False: "false", Fun: "fun",
	For: "for", If: "if", Nil: "nil", Or: "or", Print: "print",
	Return: "return", Super: "super", This: "this", True: "true",
	Var: "var", While: "while",
	Skip: "SKIP", Eof: "EOF",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps a reserved lexeme to its Kind. Built once; consulted by
// NewIdentifier for every scanned identifier.
var keywords = map[string]Kind{
	"and": And, "class": Class, "else": Else, "false": False, "fun": Fun,
	"for": For, "if": If, "nil": Nil, "or": Or, "print": Print,
	"return": Return, "super": Super, "this": This, "true": True,
	"var": Var, "while": While,
}

// Token is a single lexeme plus its source location. Lexeme is the raw
// source text; Literal carries the decoded value for String/Number tokens
// (nil otherwise).
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

// NewIdentifier maps lexeme to its keyword Kind if reserved, else to a
// plain Identifier token.
func NewIdentifier(lexeme string, line, column int) Token {
	if kind, ok := keywords[lexeme]; ok {
		return Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}
	}
	return Token{Kind: Identifier, Lexeme: lexeme, Line: line, Column: column}
}

// New builds a token carrying no decoded literal (punctuation, operators,
// keywords, Eof).
func New(kind Kind, lexeme string, line, column int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Lexeme, t.Line, t.Column)
}
