// Command ccompiler runs the compiler pipeline stage by stage and prints
// each intermediate form.
package main

import (
	"flag"
	"fmt"
	"os"

	"minicc/pkg/compiler"
)

const testSource = `int main() {
    return 2;
}
`

func main() {
	showTokens := flag.Bool("tokens", true, "print the token stream")
	showAST := flag.Bool("ast", true, "print the debug rendering of the tree")
	showDump := flag.Bool("dump", false, "print a structural dump of the tree")
	showAsm := flag.Bool("asm", true, "print the generated assembly")
	flag.Parse()

	src := testSource
	if flag.NArg() > 0 {
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = string(data)
	}

	fmt.Printf("Source:\n%s\n", src)

	// Lex
	tokens, err := compiler.Lex(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lex error:", err)
		os.Exit(1)
	}

	if *showTokens {
		fmt.Printf("Tokens (%d)\n", len(tokens))
		for _, tok := range tokens {
			fmt.Printf("  %-18s line %d\n", tok, tok.Line)
		}
		fmt.Println()
	}

	// Parse
	prog, err := compiler.Parse(tokens, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		os.Exit(1)
	}

	if *showAST {
		fmt.Println("AST")
		fmt.Print(prog)
		fmt.Println()
	}
	if *showDump {
		fmt.Println("Dump")
		fmt.Println(compiler.Dump(prog))
		fmt.Println()
	}

	// code Generation
	asm, err := compiler.Generate(prog)
	if err != nil {
		fmt.Fprintln(os.Stderr, "codegen error:", err)
		os.Exit(1)
	}

	if *showAsm {
		fmt.Println("Generated Assembly")
		fmt.Print(asm)
	}
}
