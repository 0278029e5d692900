package compiler

import (
	"fmt"
	"unicode"
)

// keywords is the full reserved word set.
var keywords = map[string]bool{
	"int":    true,
	"return": true,
}

// symbols maps the structural one-character lexemes to their TokenType.
var symbols = map[rune]TokenType{
	'{': LBRACE,
	'}': RBRACE,
	'(': LPAREN,
	')': RPAREN,
	';': SEMICOLON,
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src    []rune
	tokens []Token
	start  int  // index of the first rune of the pending lexeme
	inWord bool // a lexeme is pending
	line   int  // current 1-based source line
	first  int  // line on which the pending lexeme started
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1}
}

// isPunct reports whether r is one of the 32 ASCII punctuation characters.
func isPunct(r rune) bool {
	return r <= unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}

func isDigits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(rs) > 0
}

// classify turns a complete lexeme into a Token.
func classify(lexeme []rune, line int) (Token, error) {
	text := string(lexeme)
	if isDigits(lexeme) {
		return Token{Type: INTEGER, Lexeme: text, Line: line}, nil
	}
	if len(lexeme) == 1 && isPunct(lexeme[0]) {
		tt, ok := symbols[lexeme[0]]
		if !ok {
			return Token{}, fmt.Errorf("line %d: %w %q", line, ErrInvalidSymbol, text)
		}
		return Token{Type: tt, Lexeme: text, Line: line}, nil
	}
	if keywords[text] {
		return Token{Type: KEYWORD, Lexeme: text, Line: line}, nil
	}
	return Token{Type: IDENTIFIER, Lexeme: text, Line: line}, nil
}

// flush emits the pending lexeme, if any, ending just before end.
func (l *Lexer) flush(end int) error {
	if !l.inWord {
		return nil
	}
	l.inWord = false
	tok, err := classify(l.src[l.start:end], l.first)
	if err != nil {
		return err
	}
	l.tokens = append(l.tokens, tok)
	return nil
}

func (l *Lexer) run() error {
	for i, r := range l.src {
		switch {
		case unicode.IsSpace(r):
			if err := l.flush(i); err != nil {
				return err
			}
			if r == '\n' {
				l.line++
			}
		case isPunct(r):
			if err := l.flush(i); err != nil {
				return err
			}
			tok, err := classify(l.src[i:i+1], l.line)
			if err != nil {
				return err
			}
			l.tokens = append(l.tokens, tok)
		default:
			if !l.inWord {
				l.start = i
				l.first = l.line
				l.inWord = true
			}
		}
	}
	return l.flush(len(l.src))
}

// Lex tokenises src and returns the tokens in source order.
// It returns a non-nil error on the first punctuation character that is not
// one of { } ( ) ;.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	if err := l.run(); err != nil {
		return l.tokens, err
	}
	return l.tokens, nil
}
