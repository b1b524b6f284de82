package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anish1234567/jiaobenscript/internal/lexer"
	"github.com/anish1234567/jiaobenscript/internal/parser"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse JiaoBenScript source and print its AST",
	Long: `Tokenize and parse a JiaoBenScript program and print the resulting
abstract syntax tree.

If no file is given, reads from stdin. Use -e to parse inline
program text instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from a file")
}

func runParse(_ *cobra.Command, args []string) error {
	var raw []byte

	if parseEvalExpr != "" {
		raw = []byte(parseEvalExpr)
	} else {
		data, name, err := readSource(args)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		raw = data
	}

	runes, err := decodeSource(raw)
	if err != nil {
		return reportAndReturn(err, string(raw))
	}
	toks, err := lexer.TokenizeAll(runes)
	if err != nil {
		return reportAndReturn(err, string(raw))
	}
	program, err := parser.ParseProgram(toks)
	if err != nil {
		return reportAndReturn(err, string(raw))
	}

	dumpAST(program, 0)
	return nil
}
