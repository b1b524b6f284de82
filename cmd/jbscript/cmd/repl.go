package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anish1234567/jiaobenscript/internal/ast"
	"github.com/anish1234567/jiaobenscript/internal/evaluator"
	jberrors "github.com/anish1234567/jiaobenscript/internal/errors"
	"github.com/anish1234567/jiaobenscript/internal/lexer"
	"github.com/anish1234567/jiaobenscript/internal/parser"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive JiaoBenScript session",
	Long: `Start the REPL regardless of whether stdin is a terminal -- useful
for scripted or piped interaction tests.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runREPL()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runREPL implements spec.md §4.6/§6's REPL contract: accumulate source
// text a line at a time, retokenizing and reparsing the whole buffer on
// each line; a parser.ErrIncomplete means "read one more line" (printed
// with an empty continuation prompt); any other error is reported and
// the buffer is discarded, but the evaluator -- and everything it has
// bound so far -- is kept. A complete entry's statements run against the
// evaluator's persistent root frame; a trailing bare expression's value
// is echoed as `Out[N]: <repr>`.
func runREPL() error {
	ev := evaluator.New()
	ev.SetDefaultBuiltinTable(os.Stdout)

	scanner := bufio.NewScanner(os.Stdin)
	var buf strings.Builder
	n := 1
	first := true

	for {
		if buf.Len() == 0 {
			fmt.Printf("In [%d]: ", n)
		}
		if !scanner.Scan() {
			fmt.Println()
			return nil
		}
		line := scanner.Text()

		if buf.Len() == 0 && strings.TrimSpace(line) == "" {
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")

		src := buf.String()
		entry, err := tryParseREPLBuffer(src)
		if err == parser.ErrIncomplete {
			continue
		}

		promptN := n
		buf.Reset()
		n++

		if err != nil {
			reportREPLError(err, src)
			continue
		}

		if err := evalREPLEntry(ev, &first, entry, promptN); err != nil {
			reportREPLError(err, src)
		}
	}
}

// tryParseREPLBuffer tokenizes and parses src as one REPL entry,
// returning parser.ErrIncomplete unchanged so the caller can tell "read
// more" apart from every other failure.
func tryParseREPLBuffer(src string) (*parser.REPLEntry, error) {
	runes, err := decodeSource([]byte(src))
	if err != nil {
		return nil, err
	}
	toks, err := lexer.TokenizeAll(runes)
	if err != nil {
		return nil, err
	}
	return parser.ParseREPLEntry(toks)
}

// evalREPLEntry runs entry against ev: the very first entry of a
// session installs the persistent root block/frame via
// EvalIncompleteRawBlock; every later entry extends that same root one
// statement at a time through EvalRawDeclList/EvalRawStmt, since only
// EvalIncompleteRawBlock is allowed to (re)create the root.
func evalREPLEntry(ev *evaluator.Evaluator, first *bool, entry *parser.REPLEntry, promptN int) error {
	if *first {
		if err := ev.EvalIncompleteRawBlock(entry.Program); err != nil {
			// A runtime error comes after the root was resolved and
			// installed, so what it bound is kept and later entries
			// extend it instead of replacing it.
			if jerr, ok := err.(*jberrors.Error); ok && jerr.Kind == jberrors.Runtime {
				*first = false
			}
			return err
		}
		*first = false
	} else {
		for _, stmt := range entry.Program.Stmts {
			if decl, ok := stmt.(*ast.DeclareList); ok {
				if err := ev.EvalRawDeclList(decl); err != nil {
					return err
				}
				continue
			}
			if err := ev.EvalRawStmt(stmt); err != nil {
				return err
			}
		}
	}

	if entry.Trailing == nil {
		return nil
	}
	v, err := ev.EvalRawExp(entry.Trailing)
	if err != nil {
		return err
	}
	fmt.Printf("Out[%d]: %s\n", promptN, v.Repr())
	return nil
}

func reportREPLError(err error, source string) {
	if jerr, ok := err.(*jberrors.Error); ok {
		fmt.Fprintln(os.Stderr, jerr.Format(source, false))
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
}
