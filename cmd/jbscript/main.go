// Command jbscript is the CLI driver for the JiaoBenScript interpreter:
// run a program, force a REPL session, or inspect the tokenizer/parser
// output of a source file.
package main

import (
	"os"

	"github.com/anish1234567/jiaobenscript/cmd/jbscript/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
