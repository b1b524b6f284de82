package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anish1234567/jiaobenscript/internal/lexer"
	"github.com/anish1234567/jiaobenscript/internal/token"
)

var (
	lexEvalExpr string
	lexShowPos  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a JiaoBenScript file or expression",
	Long: `Tokenize (lex) a JiaoBenScript program and print the resulting
tokens, one per line. Useful for debugging the tokenizer.

Examples:
  jbscript lex script.jbs
  jbscript lex -e "let x = 1 + 2;"
  jbscript lex --show-pos script.jbs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show each token's source span")
}

func runLex(_ *cobra.Command, args []string) error {
	var raw []byte

	if lexEvalExpr != "" {
		raw = []byte(lexEvalExpr)
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

	for _, t := range toks {
		if lexShowPos {
			fmt.Printf("%-20s @%s\n", t.String(), t.Span)
		} else {
			fmt.Println(t.String())
		}
		if t.Kind == token.END {
			break
		}
	}
	return nil
}
