package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anish1234567/jiaobenscript/internal/ast"
	"github.com/anish1234567/jiaobenscript/internal/evaluator"
	jberrors "github.com/anish1234567/jiaobenscript/internal/errors"
	"github.com/anish1234567/jiaobenscript/internal/lexer"
	"github.com/anish1234567/jiaobenscript/internal/parser"
)

var (
	runEvalExpr string
	runDumpAST  bool
	runTrace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a JiaoBenScript program",
	Long: `Execute a JiaoBenScript program from a file, stdin, or inline
source text.

Examples:
  # Run a script file
  jbscript run script.jbs

  # Run inline source (it must define main)
  jbscript run -e "let main = function() { print(1 + 2); };"

  # Pipe a script in on stdin
  cat script.jbs | jbscript run -

  # Dump the parsed AST before running
  jbscript run --dump-ast script.jbs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "run inline code instead of reading from a file")
	runCmd.Flags().BoolVar(&runDumpAST, "dump-ast", false, "print the parsed AST before running")
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "print each top-level statement's source span to stderr before running it")
}

func runRun(_ *cobra.Command, args []string) error {
	var raw []byte
	var filename string

	switch {
	case runEvalExpr != "":
		raw, filename = []byte(runEvalExpr), "<eval>"
	case len(args) == 1 && args[0] != "-":
		filename = args[0]
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("reading %s: %w", filename, err)
		}
		raw = data
	default:
		if isTerminal(os.Stdin) {
			return runREPL()
		}
		data, err := readAllStdin()
		if err != nil {
			return err
		}
		raw, filename = data, "<stdin>"
	}

	return runProgram(string(raw), filename, runDumpAST, runTrace)
}

// runProgram implements spec.md §6's "program execution" contract:
// tokenize, parse, resolve and run every top-level statement in one
// root frame, then synthesize and evaluate a no-argument call to
// `main`.
func runProgram(source, filename string, dumpASTFlag, trace bool) error {
	runes, err := decodeSource([]byte(source))
	if err != nil {
		return reportAndReturn(err, source)
	}

	toks, err := lexer.TokenizeAll(runes)
	if err != nil {
		return reportAndReturn(err, source)
	}

	program, err := parser.ParseProgram(toks)
	if err != nil {
		return reportAndReturn(err, source)
	}

	if dumpASTFlag {
		fmt.Println("AST:")
		dumpAST(program, 0)
		fmt.Println()
	}

	ev := evaluator.New()
	ev.SetDefaultBuiltinTable(os.Stdout)
	if trace {
		ev.SetTrace(func(stmt ast.Stmt) {
			fmt.Fprintf(os.Stderr, "[trace] %s: %T\n", stmt.Pos(), stmt)
		})
	}

	if err := ev.EvalIncompleteRawBlock(program); err != nil {
		return reportAndReturn(err, source)
	}

	mainCall := ast.NewOp(program.Pos(), ast.OpCall, ast.NewVar(program.Pos(), "main"))
	if _, err := ev.EvalRawExp(mainCall); err != nil {
		return reportAndReturn(err, source)
	}
	return nil
}

// reportAndReturn prints err's formatted diagnostic (source context and
// a "~"-underline, when err carries a span) to stderr and returns err
// unchanged so Execute can map it to the right exit code.
func reportAndReturn(err error, source string) error {
	if jerr, ok := err.(*jberrors.Error); ok {
		fmt.Fprintln(os.Stderr, jerr.Format(source, false))
		return jerr
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return err
}

func readAllStdin() ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(os.Stdin)
	return buf.Bytes(), err
}
