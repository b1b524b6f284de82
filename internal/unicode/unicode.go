// Package unicode provides the UTF-8 <-> code-point transcoding and
// character classification used by the tokenizer, plus the display-width
// lookup the error-highlighting driver needs to line up "~" underlines
// under wide source characters.
package unicode

import (
	"unicode/utf8"

	"golang.org/x/text/width"
)

// DecodeError reports that the input was not valid UTF-8. It carries no
// position: source position tracking only begins once code points are
// available, matching the original implementation's "decode error halts
// with a position-less diagnostic" contract (spec.md §6).
type DecodeError struct {
	Offset int
}

func (e *DecodeError) Error() string {
	return "invalid UTF-8 sequence"
}

// Decode transcodes a UTF-8 byte string into a slice of code points.
func Decode(input []byte) ([]rune, error) {
	runes := make([]rune, 0, len(input))
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRune(input[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, &DecodeError{Offset: i}
		}
		runes = append(runes, r)
		i += size
	}
	return runes, nil
}

// IsSpace reports whether r is tokenizer whitespace (discarded between
// tokens, but still tracked for source positions).
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsXDigit reports whether r is an ASCII hexadecimal digit, used by
// \uXXXX escape parsing.
func IsXDigit(r rune) bool {
	return IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsAlpha reports whether r can start or continue an identifier.
// Identifiers are ASCII-only per spec.md §4.1: `[_A-Za-z][_A-Za-z0-9]*`.
func IsAlpha(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsIdentStart reports whether r can begin an identifier.
func IsIdentStart(r rune) bool {
	return IsAlpha(r)
}

// IsIdentCont reports whether r can continue an identifier begun with
// IsIdentStart.
func IsIdentCont(r rune) bool {
	return IsAlpha(r) || IsDigit(r)
}

// DisplayWidth returns the number of terminal cells r occupies, using
// East-Asian width classification. Most source characters are narrow
// (width 1); wide characters (many CJK ideographs) are width 2. This is
// only consulted by the error driver when underlining a span with `~`
// characters so that the underline lines up visually under rendered
// wide glyphs -- the tokenizer and resolver only ever count code points,
// never display cells, per spec.md's column-tracking rule.
func DisplayWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
