package lexer

import (
	"github.com/anish1234567/jiaobenscript/internal/errors"
	"github.com/anish1234567/jiaobenscript/internal/pos"
	jbunicode "github.com/anish1234567/jiaobenscript/internal/unicode"
)

func (l *Lexer) dispatchNumberInt(r rune, before pos.Position) error {
	switch {
	case jbunicode.IsDigit(r):
		l.buf = append(l.buf, r)
		return nil
	case r == '.':
		l.buf = append(l.buf, r)
		l.hasDot = true
		l.dotDigitsSeen = false
		l.state = stNumberDotDigits
		return nil
	case r == 'e' || r == 'E':
		l.buf = append(l.buf, r)
		l.hasExp = true
		l.expSignConsumed, l.expDigitsSeen = false, false
		l.state = stNumberExpNeedDigit
		return nil
	default:
		if err := l.finishNumber(before); err != nil {
			return err
		}
		return l.dispatchInit(r, before)
	}
}

func (l *Lexer) dispatchNumberDotDigits(r rune, before pos.Position) error {
	switch {
	case jbunicode.IsDigit(r):
		l.buf = append(l.buf, r)
		l.dotDigitsSeen = true
		return nil
	case (r == 'e' || r == 'E') && l.dotDigitsSeen:
		l.buf = append(l.buf, r)
		l.hasExp = true
		l.expSignConsumed, l.expDigitsSeen = false, false
		l.state = stNumberExpNeedDigit
		return nil
	case !l.dotDigitsSeen:
		return errors.New(errors.Tokenizer, pos.Span{Start: before, End: pos.Advance(before, r)},
			"expected digit after '.'")
	default:
		if err := l.finishNumber(before); err != nil {
			return err
		}
		return l.dispatchInit(r, before)
	}
}

func (l *Lexer) dispatchNumberExpNeedDigit(r rune, before pos.Position) error {
	switch {
	case (r == '+' || r == '-') && !l.expSignConsumed:
		l.buf = append(l.buf, r)
		l.expSignConsumed = true
		l.expNegative = r == '-'
		return nil
	case jbunicode.IsDigit(r):
		l.buf = append(l.buf, r)
		l.expDigitsSeen = true
		l.state = stNumberExpDigits
		return nil
	default:
		return errors.New(errors.Tokenizer, pos.Span{Start: before, End: pos.Advance(before, r)},
			"expected digit in exponent")
	}
}

func (l *Lexer) dispatchNumberExpDigits(r rune, before pos.Position) error {
	if jbunicode.IsDigit(r) {
		l.buf = append(l.buf, r)
		return nil
	}
	if err := l.finishNumber(before); err != nil {
		return err
	}
	return l.dispatchInit(r, before)
}

func (l *Lexer) finishNumber(end pos.Position) error {
	n, err := parseNumber(string(l.buf), l.hasDot, l.hasExp, l.expNegative)
	if err != nil {
		return errors.New(errors.Tokenizer, pos.Span{Start: l.tokenStart, End: end}, "malformed number: %v", err)
	}
	l.emitNumber(n, end)
	return nil
}
