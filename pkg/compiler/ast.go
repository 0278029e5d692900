package compiler

import (
	"fmt"
	"strings"
)

// Node is implemented by every tree node. String is the debug rendering;
// Asm is the assembly rendering (see codegen.go).
type Node interface {
	TypeOf() string
	String() string
	Asm() string
}

// bodyIndent prefixes every statement line inside a function body.
const bodyIndent = "        "

// indent prefixes each non-blank line of s with prefix. Line endings are kept.
func indent(s, prefix string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(s, "\n") {
		if strings.TrimSpace(line) != "" {
			b.WriteString(prefix)
		}
		b.WriteString(line)
	}
	return b.String()
}

//  Types

// Type is the value type of the language. Integer is the only variant.
type Type interface {
	Node
	typeNode()
}

// Integer is a 32-bit signed value, used both for literals and as the
// declared return type of a function.
//
//	return 2;
//	       ^  Integer{Value: 2}
type Integer struct {
	Value int32
}

func (*Integer) typeNode()        {}
func (*Integer) TypeOf() string   { return "Integer" }
func (i *Integer) String() string { return fmt.Sprintf("Integer<%d>", i.Value) }

//  Expression nodes

// Expression is implemented by every node that produces a value.
type Expression interface {
	Node
	exprNode()
	Evaluate() Type
}

// Constant is a compile-time literal.
type Constant struct {
	Value Type
}

func (*Constant) exprNode()        {}
func (*Constant) TypeOf() string   { return "Constant" }
func (c *Constant) Evaluate() Type { return c.Value }
func (c *Constant) String() string { return fmt.Sprintf("Constant %s", c.Value) }

//  Statement nodes

// Statement is implemented by every node that does not produce a value.
type Statement interface {
	Node
	stmtNode()
}

// Return represents  return expr;
type Return struct {
	Expr Expression
}

func (*Return) stmtNode()        {}
func (*Return) TypeOf() string   { return "Return" }
func (r *Return) String() string { return fmt.Sprintf("Return %s", r.Expr) }

// Function represents  int name() { body }
type Function struct {
	ReturnType Type
	Name       string
	Body       []Statement
}

func (*Function) stmtNode()      {}
func (*Function) TypeOf() string { return "Function" }
func (f *Function) String() string {
	var body strings.Builder
	for _, s := range f.Body {
		body.WriteString(s.String())
		body.WriteString("\n")
	}
	return fmt.Sprintf("Function %s %s:\n    body:\n%s", f.ReturnType.TypeOf(), f.Name, indent(body.String(), bodyIndent))
}

//  Root

// Program is the root of a parsed translation unit.
type Program struct {
	Root *Function
}

// NewProgram wraps a function statement as the program root. Passing any
// other statement is a caller bug and panics.
func NewProgram(root Statement) *Program {
	fn, ok := root.(*Function)
	if !ok {
		panic(fmt.Sprintf("compiler: program root must be a function, got %T", root))
	}
	return &Program{Root: fn}
}

func (*Program) TypeOf() string   { return "Program" }
func (p *Program) String() string { return "PROGRAM_START:\n" + p.Root.String() }
