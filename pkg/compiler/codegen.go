package compiler

import (
	"fmt"
	"strings"
)

// accumulator holds the function result on return.
const accumulator = "%eax"

// asmWriter collects one instruction or directive per line.
type asmWriter struct {
	out strings.Builder
}

func (w *asmWriter) line(format string, args ...any) {
	fmt.Fprintf(&w.out, format+"\n", args...)
}

// Asm renders the immediate operand for the value.
func (i *Integer) Asm() string { return fmt.Sprintf("$%d", i.Value) }

func (c *Constant) Asm() string { return c.Value.Asm() }

// Asm loads the expression into the accumulator and returns.
func (r *Return) Asm() string {
	var w asmWriter
	w.line("movl %s, %s", r.Expr.Asm(), accumulator)
	w.line("ret")
	return w.out.String()
}

// Asm emits the global symbol and label for the function followed by its
// body. Body statements are emitted last-declared first.
func (f *Function) Asm() string {
	var w asmWriter
	w.line(".globl %s", f.Name)
	w.line("%s:", f.Name)
	for i := len(f.Body) - 1; i >= 0; i-- {
		w.out.WriteString(f.Body[i].Asm())
	}
	return w.out.String()
}

func (p *Program) Asm() string { return p.Root.Asm() }

// Generate renders prog as assembly text.
func Generate(prog *Program) (string, error) {
	if prog == nil || prog.Root == nil {
		return "", ErrMissingMain
	}
	return prog.Asm(), nil
}
