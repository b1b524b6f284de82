package lexer

import (
	"github.com/anish1234567/jiaobenscript/internal/errors"
	"github.com/anish1234567/jiaobenscript/internal/pos"
	"github.com/anish1234567/jiaobenscript/internal/token"
)

func (l *Lexer) dispatchString(r rune, before pos.Position) error {
	switch {
	case r == '"':
		l.emit(token.STRING, pos.Advance(before, r), token.Token{Str: string(l.buf)})
		return nil
	case r == '\\':
		l.state = stStringEscape
		return nil
	case r < 0x20:
		return errors.New(errors.Tokenizer, pos.Span{Start: before, End: pos.Advance(before, r)},
			"unexpected control character in string literal")
	default:
		l.buf = append(l.buf, r)
		return nil
	}
}

func (l *Lexer) dispatchStringEscape(r rune, before pos.Position) error {
	if repl, ok := simpleEscapes[r]; ok {
		l.buf = append(l.buf, repl)
		l.state = stString
		return nil
	}
	if r == 'u' {
		l.state = stStringUnicode
		l.hex = nil
		return nil
	}
	return errors.New(errors.Tokenizer, pos.Span{Start: before, End: pos.Advance(before, r)},
		"malformed escape sequence \\%c", r)
}

// dispatchStringUnicode collects the four hex digits of a \uXXXX escape.
// low selects whether this is the low half of a surrogate pair.
func (l *Lexer) dispatchStringUnicode(r rune, before pos.Position, low bool) error {
	v, ok := hexValue(r)
	if !ok {
		return errors.New(errors.Tokenizer, pos.Span{Start: before, End: pos.Advance(before, r)},
			"invalid hex digit %q in \\u escape", r)
	}
	l.hex = append(l.hex, r)
	if len(l.hex) < 4 {
		return nil
	}

	cp := 0
	for _, h := range l.hex {
		d, _ := hexValue(h)
		cp = cp*16 + d
	}
	l.hex = nil

	if low {
		if !isLowSurrogate(cp) {
			return errors.New(errors.Tokenizer, pos.Span{Start: before, End: pos.Advance(before, r)},
				"expected low surrogate \\u escape after high surrogate")
		}
		l.buf = append(l.buf, combineSurrogates(l.pendingHigh, cp))
		l.state = stString
		return nil
	}

	switch {
	case isHighSurrogate(cp):
		l.pendingHigh = cp
		l.state = stStringAfterHighBackslash
		return nil
	case isLowSurrogate(cp):
		return errors.New(errors.Tokenizer, pos.Span{Start: before, End: pos.Advance(before, r)},
			"lone low surrogate in \\u escape")
	default:
		l.buf = append(l.buf, rune(cp))
		l.state = stString
		return nil
	}
}

func (l *Lexer) dispatchStringAfterHighBackslash(r rune, before pos.Position) error {
	if r != '\\' {
		return errors.New(errors.Tokenizer, pos.Span{Start: before, End: pos.Advance(before, r)},
			"high surrogate must be followed by a \\u escape")
	}
	l.state = stStringAfterHighU
	return nil
}

func (l *Lexer) dispatchStringAfterHighU(r rune, before pos.Position) error {
	if r != 'u' {
		return errors.New(errors.Tokenizer, pos.Span{Start: before, End: pos.Advance(before, r)},
			"high surrogate must be followed by a \\u escape")
	}
	l.state = stStringUnicodeLow
	l.hex = nil
	return nil
}
