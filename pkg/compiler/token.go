package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input, never produced by Lex

	// Words
	KEYWORD    // "int", "return"
	IDENTIFIER // function name
	INTEGER    // decimal integer literal

	// Structural
	LBRACE    // {
	RBRACE    // }
	LPAREN    // (
	RPAREN    // )
	SEMICOLON // ;
)

var tokenNames = [...]string{
	EOF:        "EOF",
	KEYWORD:    "KEYWORD",
	IDENTIFIER: "IDENTIFIER",
	INTEGER:    "INTEGER",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	SEMICOLON:  "SEMICOLON",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
}

func (t Token) String() string {
	switch t.Type {
	case KEYWORD:
		return fmt.Sprintf("Keyword(%s)", t.Lexeme)
	case IDENTIFIER:
		return fmt.Sprintf("Identifier(%s)", t.Lexeme)
	case INTEGER:
		return fmt.Sprintf("IntegerLiteral(%s)", t.Lexeme)
	case LBRACE:
		return "OpenBrace"
	case RBRACE:
		return "CloseBrace"
	case LPAREN:
		return "OpenParen"
	case RPAREN:
		return "CloseParen"
	case SEMICOLON:
		return "Semicolon"
	}
	return t.Type.String()
}
