package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	jberrors "github.com/anish1234567/jiaobenscript/internal/errors"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "jbscript",
	Short: "JiaoBenScript interpreter",
	Long: `jbscript is a Go implementation of JiaoBenScript (JBS), a small
dynamically typed scripting language: a tokenizer, parser, name
resolver, control-flow checker, and tree-walking evaluator, plus a REPL.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

// Execute runs the root command and returns the process exit code
// spec.md §6 assigns to whatever error (if any) a subcommand produced.
// A JiaoBenScript diagnostic (*errors.Error) has already been formatted
// and printed to stderr by the subcommand, so Execute only picks the
// exit code it implies; any other error is printed here as "Error: ..."
// and exits 6.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if jerr, ok := err.(*jberrors.Error); ok {
			return jerr.Kind.ExitCode()
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 6
	}
	return 0
}
