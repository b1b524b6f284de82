// Package errors defines the diagnostic kinds raised by every stage of
// the JiaoBenScript pipeline, and formats them with source context and a
// "~"-underline pointing at the offending span -- the same caret-style
// reporting the teacher's compiler error package uses, extended from a
// single caret to a multi-column underline since JBS diagnostics carry a
// full (start, end) span rather than one point.
package errors

import (
	"fmt"
	"strings"

	"github.com/anish1234567/jiaobenscript/internal/pos"
	"github.com/anish1234567/jiaobenscript/internal/unicode"
)

// Kind identifies which pipeline stage raised an Error, and maps
// directly onto the exit codes of spec.md §6.
type Kind int

const (
	Decode Kind = iota + 1
	Tokenizer
	Parser

	// Compile-error sub-kinds (name resolution and control-flow checking).
	DuplicatedLocalName
	NoSuchName
	BadReturn
	BadBreak
	BadContinue

	// Runtime is a JBError: type errors, index errors, zero
	// division/remainder, unbound variable, bad call.
	Runtime
)

var kindNames = map[Kind]string{
	Decode:              "DecodeError",
	Tokenizer:           "TokenizerError",
	Parser:              "ParserError",
	DuplicatedLocalName: "DuplicatedLocalName",
	NoSuchName:          "NoSuchName",
	BadReturn:           "BadReturn",
	BadBreak:            "BadBreak",
	BadContinue:         "BadContinue",
	Runtime:             "JBError",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Error"
}

// IsCompileError reports whether k is one of the five CompileError
// sub-kinds from spec.md §7.
func (k Kind) IsCompileError() bool {
	switch k {
	case DuplicatedLocalName, NoSuchName, BadReturn, BadBreak, BadContinue:
		return true
	default:
		return false
	}
}

// ExitCode returns the process exit code spec.md §6 assigns to k.
// Decode errors that reach here have no Span; Kind 0 (unset) maps to 6.
func (k Kind) ExitCode() int {
	switch {
	case k == Decode:
		return 1
	case k == Tokenizer:
		return 2
	case k == Parser:
		return 3
	case k.IsCompileError():
		return 4
	case k == Runtime:
		return 5
	default:
		return 6
	}
}

// Error is a single diagnostic: a Kind, a human-readable message, and an
// optional source Span. Span.Valid() is false for the one diagnostic
// that has no position -- a UTF-8 decode failure, per spec.md §6.
type Error struct {
	Kind    Kind
	Message string
	Span    pos.Span
}

// New creates an Error with a span.
func New(kind Kind, span pos.Span, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Span: span}
}

// NewSpanless creates an Error with no position, used only for decode
// failures.
func NewSpanless(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Format("", false)
}

// Format renders the error with source context: a header naming the
// kind, file and position; the offending source line(s); and a row of
// "~" characters underlining the span. If color is true, ANSI codes
// highlight the underline and message, matching the teacher's
// CompilerError.Format color flag.
func (e *Error) Format(source string, color bool) string {
	var sb strings.Builder

	if e.Span.Valid() {
		sb.WriteString(fmt.Sprintf("%s at %s: %s\n", e.Kind, e.Span.Start, e.Message))
	} else {
		sb.WriteString(fmt.Sprintf("%s: %s\n", e.Kind, e.Message))
	}

	if !e.Span.Valid() || source == "" {
		return strings.TrimRight(sb.String(), "\n")
	}

	lines := strings.Split(source, "\n")
	startLine, endLine := e.Span.Start.Line, e.Span.End.Line
	if endLine < startLine {
		endLine = startLine
	}

	for lineNo := startLine; lineNo <= endLine && lineNo <= len(lines); lineNo++ {
		if lineNo < 1 {
			continue
		}
		text := lines[lineNo-1]
		prefix := fmt.Sprintf("%4d | ", lineNo)
		sb.WriteString(prefix)
		sb.WriteString(text)
		sb.WriteString("\n")

		underlineStartCol := 1
		if lineNo == startLine {
			underlineStartCol = e.Span.Start.Column
		}
		underlineEndCol := len([]rune(text)) + 1
		if lineNo == endLine {
			underlineEndCol = e.Span.End.Column
		}
		if underlineEndCol <= underlineStartCol {
			underlineEndCol = underlineStartCol + 1
		}

		sb.WriteString(strings.Repeat(" ", visualWidth(prefix)+visualWidthUpTo(text, underlineStartCol-1)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString(strings.Repeat("~", visualWidthRange(text, underlineStartCol-1, underlineEndCol-1)))
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// visualWidth sums the display width of every rune in s.
func visualWidth(s string) int {
	n := 0
	for _, r := range s {
		n += unicode.DisplayWidth(r)
	}
	return n
}

// visualWidthUpTo sums the display width of the first n runes of s.
func visualWidthUpTo(s string, n int) int {
	runes := []rune(s)
	if n > len(runes) {
		n = len(runes)
	}
	w := 0
	for _, r := range runes[:n] {
		w += unicode.DisplayWidth(r)
	}
	return w
}

// visualWidthRange sums the display width of runes[from:to], clamped to
// at least 1 column so a zero-width span still produces one marker.
func visualWidthRange(s string, from, to int) int {
	runes := []rune(s)
	if from > len(runes) {
		from = len(runes)
	}
	if to > len(runes) {
		to = len(runes)
	}
	if to <= from {
		return 1
	}
	w := 0
	for _, r := range runes[from:to] {
		w += unicode.DisplayWidth(r)
	}
	if w == 0 {
		return 1
	}
	return w
}

// FormatAll formats multiple errors in sequence, numbered, matching the
// teacher's FormatErrors helper.
func FormatAll(errs []*Error, source string, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(source, color)
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s):\n\n", len(errs)))
	for i, e := range errs {
		sb.WriteString(fmt.Sprintf("[%d/%d] ", i+1, len(errs)))
		sb.WriteString(e.Format(source, color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
