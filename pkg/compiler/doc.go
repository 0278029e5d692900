// Package compiler provides a lexer, parser, and code generator for the
// single-function C subset
//
//	int main() { return <digits>; }
//
// targeting 32-bit AT&T x86 assembly.
//
// Pipeline: C source → Lex → Parse → Generate → assembly text
package compiler
