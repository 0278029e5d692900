package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"minicc/pkg/compiler"
)

// outputPath is where the generated assembly is persisted, relative to the
// working directory.
const outputPath = "compiled.s"

var errUsage = errors.New("usage: minicc <source.c>")

func main() {
	log.SetFlags(0)
	log.SetPrefix("minicc: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run compiles the single file named in args, prints the assembly to stdout
// and writes it to outputPath.
func run(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	inPath := args[0]

	source, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read input file %q: %w", inPath, err)
	}

	assembly, err := compiler.Compile(string(source))
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	fmt.Fprintln(stdout, assembly)

	if err := os.WriteFile(outputPath, []byte(assembly), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", outputPath, err)
	}
	return nil
}
