package compiler

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar:
//
//	program    = function                          (named "main")
//	statement  = "int" IDENTIFIER "(" ")" "{" statement* "}"
//	           | "return" expression
//	expression = INTEGER ";"
type Parser struct {
	tokens      []Token
	pos         int
	sourceLines []string
}

func NewParser(tokens []Token, rawSource string) *Parser {
	return &Parser{tokens: tokens, sourceLines: strings.Split(rawSource, "\n")}
}

// fmtError wraps kind with detail and the source line where tok appears.
func (p *Parser) fmtError(tok Token, kind error, format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)
	lineIdx := tok.Line - 1 // Lines are 1-based

	snippet := "<source unavailable>"
	if lineIdx >= 0 && lineIdx < len(p.sourceLines) {
		snippet = strings.TrimSpace(p.sourceLines[lineIdx])
	}

	return fmt.Errorf("line %d: %w%s\n  |> %s", tok.Line, kind, detail, snippet)
}

// eof is returned by peek and advance once the tokens are exhausted. It
// carries the line of the last real token so errors still point somewhere.
func (p *Parser) eof() Token {
	line := 0
	if n := len(p.tokens); n > 0 {
		line = p.tokens[n-1].Line
	}
	return Token{Type: EOF, Line: line}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token and reports whether it has type tt.
// Running off the end is always an error.
func (p *Parser) expect(tt TokenType) (Token, bool, error) {
	tok := p.advance()
	if tok.Type == EOF {
		return tok, false, p.fmtError(tok, ErrUnexpectedEOF, "")
	}
	return tok, tok.Type == tt, nil
}

// parseExpression handles  INTEGER ";"
func (p *Parser) parseExpression() (Expression, error) {
	tok := p.advance()
	switch tok.Type {
	case EOF:
		return nil, p.fmtError(tok, ErrUnexpectedEOF, "")
	case INTEGER:
		val, err := strconv.ParseInt(tok.Lexeme, 10, 32)
		if err != nil {
			return nil, p.fmtError(tok, ErrInvalidLiteral, ": %s", tok.Lexeme)
		}
		semi, ok, err := p.expect(SEMICOLON)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, p.fmtError(semi, ErrMissingSemicolon, " after %s, got %s", tok.Lexeme, semi)
		}
		return &Constant{Value: &Integer{Value: int32(val)}}, nil
	default:
		return nil, p.fmtError(tok, ErrUnidentifiedExpression, ": %s", tok)
	}
}

// parseStatement handles a return statement or a function declaration.
func (p *Parser) parseStatement() (Statement, error) {
	tok := p.advance()
	switch {
	case tok.Type == EOF:
		return nil, p.fmtError(tok, ErrUnexpectedEOF, "")
	case tok.Type != KEYWORD:
		return nil, p.fmtError(tok, ErrInvalidSyntax, ": %s", tok)
	}

	switch tok.Lexeme {
	case "return":
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &Return{Expr: expr}, nil
	case "int":
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		return fn, nil
	default:
		return nil, p.fmtError(tok, ErrInvalidSyntax, ": %s", tok.Lexeme)
	}
}

// parseFunction handles  IDENTIFIER "(" ")" "{" statement* "}"
// The leading "int" must already have been consumed.
func (p *Parser) parseFunction() (*Function, error) {
	nameTok, ok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.fmtError(nameTok, ErrInvalidSyntax, ": %s", nameTok)
	}
	name := nameTok.Lexeme

	for _, tt := range []TokenType{LPAREN, RPAREN} {
		tok, ok, err := p.expect(tt)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, p.fmtError(tok, ErrMissingParams, " for function %s", name)
		}
	}

	tok, ok, err := p.expect(LBRACE)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.fmtError(tok, ErrMissingBody, " for function %s", name)
	}

	var body []Statement
	for p.peek().Type != RBRACE {
		if p.peek().Type == EOF {
			return nil, p.fmtError(p.peek(), ErrUnexpectedEOF, "")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	p.advance() // }

	return &Function{ReturnType: &Integer{Value: 0}, Name: name, Body: body}, nil
}

// Parse builds a Program from tokens. rawSource is only used for error
// snippets. Tokens following main's closing brace are not examined.
func Parse(tokens []Token, rawSource string) (*Program, error) {
	p := NewParser(tokens, rawSource)
	first := p.peek()
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	fn, ok := stmt.(*Function)
	if !ok || fn.Name != "main" {
		return nil, p.fmtError(first, ErrMissingMain, "")
	}
	return NewProgram(fn), nil
}
