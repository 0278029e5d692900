package compiler

import "errors"

// Lexical errors.
var (
	ErrInvalidSymbol = errors.New("invalid symbol")
)

// Syntax errors. Messages are matched by callers via errors.Is.
var (
	ErrMissingMain            = errors.New("missing main function")
	ErrMissingParams          = errors.New("missing function parameters")
	ErrMissingBody            = errors.New("missing function body")
	ErrMissingSemicolon       = errors.New("missing semicolon")
	ErrInvalidSyntax          = errors.New("invalid syntax")
	ErrUnidentifiedExpression = errors.New("unidentified expression")
	ErrInvalidLiteral         = errors.New("invalid integer literal")
	ErrUnexpectedEOF          = errors.New("something went wrong")
)
