package cmd

import (
	"io"
	"os"

	jberrors "github.com/anish1234567/jiaobenscript/internal/errors"
	"github.com/anish1234567/jiaobenscript/internal/unicode"
)

// readSource resolves the run/lex/parse subcommands' shared positional
// argument: a file path, or "-" (or no argument at all) for stdin.
func readSource(args []string) (data []byte, filename string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
		return data, "<stdin>", err
	}
	data, err = os.ReadFile(args[0])
	return data, args[0], err
}

// decodeSource transcodes raw into code points, wrapping a malformed-
// UTF-8 failure as spec.md §6's position-less DecodeError.
func decodeSource(raw []byte) ([]rune, error) {
	runes, err := unicode.Decode(raw)
	if err != nil {
		if de, ok := err.(*unicode.DecodeError); ok {
			return nil, jberrors.NewSpanless(jberrors.Decode, "invalid UTF-8 sequence at byte offset %d", de.Offset)
		}
		return nil, jberrors.NewSpanless(jberrors.Decode, "%s", err.Error())
	}
	return runes, nil
}

// isTerminal reports whether f is an interactive character device
// rather than a pipe, redirect, or regular file.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
