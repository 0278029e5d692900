package compiler

import "fmt"

// Compile runs the whole pipeline over src and returns the assembly text.
func Compile(src string) (string, error) {
	tokens, err := Lex(src)
	if err != nil {
		return "", fmt.Errorf("lex error: %w", err)
	}

	prog, err := Parse(tokens, src)
	if err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}

	assembly, err := Generate(prog)
	if err != nil {
		return "", fmt.Errorf("codegen error: %w", err)
	}

	return assembly, nil
}
