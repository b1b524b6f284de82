// Package lexer implements the character-driven tokenizer state machine
// of spec.md §4.1: a Lexer consumes one code point at a time via Feed,
// buffers complete tokens, and hands them out through Pop. This mirrors
// the teacher's internal/lexer.Lexer (position fields advanced one rune
// at a time, a LexerState-style snapshot of in-progress work) but trades
// its pull-based "NextToken" contract for the push-based
// feed/pop/is_ready contract spec.md requires, so a caller can stream
// characters as they arrive. TokenizeAll is the batch wrapper over it.
package lexer

import (
	"fmt"

	"github.com/anish1234567/jiaobenscript/internal/errors"
	"github.com/anish1234567/jiaobenscript/internal/pos"
	"github.com/anish1234567/jiaobenscript/internal/token"
	jbunicode "github.com/anish1234567/jiaobenscript/internal/unicode"
)

type state int

const (
	stInit state = iota
	stOp
	stString
	stStringEscape
	stStringUnicode
	stStringAfterHighBackslash
	stStringAfterHighU
	stStringUnicodeLow
	stNumberInt
	stNumberDotDigits
	stNumberExpNeedDigit
	stNumberExpDigits
	stIdent
	stLineComment
	stBlockComment
	stBlockCommentStar
)

// Lexer is the tokenizer state machine. The zero value is not usable;
// construct with New.
type Lexer struct {
	state      state
	cur        pos.Position // position of the next rune to be fed
	tokenStart pos.Position // position where the in-progress token began
	queue      []token.Token

	buf []rune // generic accumulation buffer (ident/number/string/comment)

	opFirst rune

	hasDot, dotDigitsSeen   bool
	hasExp, expNegative     bool
	expSignConsumed         bool
	expDigitsSeen           bool

	hex         []rune // accumulates up to 4 hex digits of a \uXXXX escape
	pendingHigh int     // high surrogate awaiting its \uLOW partner
}

// New creates a Lexer ready to accept input at line 1, column 1.
func New() *Lexer {
	return &Lexer{state: stInit, cur: pos.Start}
}

// IsReady reports whether the Lexer is between tokens, i.e. not in the
// middle of a multi-character lexeme.
func (l *Lexer) IsReady() bool {
	return l.state == stInit
}

// Pop returns the next ready token and true, or the zero Token and false
// if none is queued.
func (l *Lexer) Pop() (token.Token, bool) {
	if len(l.queue) == 0 {
		return token.Token{}, false
	}
	t := l.queue[0]
	l.queue = l.queue[1:]
	return t, true
}

// Feed advances the state machine past one code point, possibly
// queuing zero or more tokens (an Op-state resolution can both close a
// pending token and immediately re-route the fed rune, but never more
// than one token per Feed call other than that).
func (l *Lexer) Feed(r rune) error {
	before := l.cur
	if err := l.dispatch(r, before); err != nil {
		return err
	}
	l.cur = pos.Advance(before, r)
	return nil
}

// Finish reports an error if input ended mid-token in a state that
// cannot legally end there (an unterminated string or block comment).
// TokenizeAll calls it once after feeding all input.
func (l *Lexer) Finish() error {
	switch l.state {
	case stInit, stLineComment:
		if l.state == stLineComment {
			l.emit(token.COMMENT, l.cur, token.Token{Str: string(l.buf)})
		}
		return nil
	case stString, stStringEscape, stStringUnicode, stStringAfterHighBackslash,
		stStringAfterHighU, stStringUnicodeLow:
		return errors.New(errors.Tokenizer, pos.Span{Start: l.tokenStart, End: l.cur}, "unterminated string literal")
	case stBlockComment, stBlockCommentStar:
		return errors.New(errors.Tokenizer, pos.Span{Start: l.tokenStart, End: l.cur}, "unterminated block comment")
	case stNumberInt:
		return l.finishNumber(l.cur)
	case stNumberDotDigits:
		if !l.dotDigitsSeen {
			return errors.New(errors.Tokenizer, pos.Span{Start: l.tokenStart, End: l.cur}, "expected digit after '.'")
		}
		return l.finishNumber(l.cur)
	case stNumberExpDigits:
		return l.finishNumber(l.cur)
	case stNumberExpNeedDigit:
		return errors.New(errors.Tokenizer, pos.Span{Start: l.tokenStart, End: l.cur}, "expected digit in exponent")
	case stIdent:
		l.finishIdent(l.cur)
		return nil
	case stOp:
		return l.finishOp(l.opFirst, l.cur)
	default:
		return nil
	}
}

func (l *Lexer) emit(kind token.Kind, end pos.Position, payload token.Token) {
	payload.Kind = kind
	payload.Span = pos.Span{Start: l.tokenStart, End: end}
	l.queue = append(l.queue, payload)
	l.reset()
}

func (l *Lexer) emitNumber(n parsedNumber, end pos.Position) {
	l.emit(n.Kind, end, token.Token{Int: n.Int, Float: n.Float})
}

func (l *Lexer) reset() {
	l.state = stInit
	l.buf = nil
	l.hex = nil
	l.hasDot, l.dotDigitsSeen = false, false
	l.hasExp, l.expNegative = false, false
	l.expSignConsumed, l.expDigitsSeen = false, false
}

// dispatch routes r to the handler for the current state. before is the
// position r starts at (i.e. l.cur before this Feed call).
func (l *Lexer) dispatch(r rune, before pos.Position) error {
	switch l.state {
	case stInit:
		return l.dispatchInit(r, before)
	case stOp:
		return l.dispatchOp(r, before)
	case stString:
		return l.dispatchString(r, before)
	case stStringEscape:
		return l.dispatchStringEscape(r, before)
	case stStringUnicode:
		return l.dispatchStringUnicode(r, before, false)
	case stStringUnicodeLow:
		return l.dispatchStringUnicode(r, before, true)
	case stStringAfterHighBackslash:
		return l.dispatchStringAfterHighBackslash(r, before)
	case stStringAfterHighU:
		return l.dispatchStringAfterHighU(r, before)
	case stNumberInt:
		return l.dispatchNumberInt(r, before)
	case stNumberDotDigits:
		return l.dispatchNumberDotDigits(r, before)
	case stNumberExpNeedDigit:
		return l.dispatchNumberExpNeedDigit(r, before)
	case stNumberExpDigits:
		return l.dispatchNumberExpDigits(r, before)
	case stIdent:
		return l.dispatchIdent(r, before)
	case stLineComment:
		return l.dispatchLineComment(r, before)
	case stBlockComment:
		return l.dispatchBlockComment(r, before)
	case stBlockCommentStar:
		return l.dispatchBlockCommentStar(r, before)
	default:
		return fmt.Errorf("lexer: unreachable state %d", l.state)
	}
}

func (l *Lexer) dispatchInit(r rune, before pos.Position) error {
	if jbunicode.IsSpace(r) {
		return nil
	}
	if kind, ok := singleCharKind[r]; ok {
		l.tokenStart = before
		l.emit(kind, pos.Advance(before, r), token.Token{})
		return nil
	}
	switch {
	case r == '"':
		l.tokenStart = before
		l.state = stString
		l.buf = nil
		return nil
	case jbunicode.IsDigit(r):
		l.tokenStart = before
		l.state = stNumberInt
		l.buf = []rune{r}
		return nil
	case r == '.':
		l.tokenStart = before
		l.state = stNumberDotDigits
		l.buf = []rune{r}
		l.hasDot = true
		l.dotDigitsSeen = false
		return nil
	case jbunicode.IsIdentStart(r):
		l.tokenStart = before
		l.state = stIdent
		l.buf = []rune{r}
		return nil
	case isOpStart(r):
		l.tokenStart = before
		l.state = stOp
		l.opFirst = r
		return nil
	default:
		return errors.New(errors.Tokenizer, pos.Span{Start: before, End: pos.Advance(before, r)}, "unexpected character %q", r)
	}
}

func (l *Lexer) dispatchOp(r rune, before pos.Position) error {
	if l.opFirst == '/' && r == '/' {
		l.state = stLineComment
		l.buf = nil
		return nil
	}
	if l.opFirst == '/' && r == '*' {
		l.state = stBlockComment
		l.buf = nil
		return nil
	}
	if kind, ok := doubleOps[[2]rune{l.opFirst, r}]; ok {
		l.emit(kind, pos.Advance(before, r), token.Token{})
		return nil
	}
	if err := l.finishOp(l.opFirst, before); err != nil {
		return err
	}
	return l.dispatchInit(r, before)
}

// finishOp resolves a single pending operator-start rune that was not
// continued into a recognized two-character operator or comment.
func (l *Lexer) finishOp(first rune, end pos.Position) error {
	kind, ok := singleOpKind[first]
	if !ok {
		return errors.New(errors.Tokenizer, pos.Span{Start: l.tokenStart, End: end}, "unexpected character %q", first)
	}
	l.emit(kind, end, token.Token{})
	return nil
}

func (l *Lexer) dispatchIdent(r rune, before pos.Position) error {
	if jbunicode.IsIdentCont(r) {
		l.buf = append(l.buf, r)
		return nil
	}
	l.finishIdent(before)
	return l.dispatchInit(r, before)
}

func (l *Lexer) finishIdent(end pos.Position) {
	text := string(l.buf)
	if kind, ok := token.Keywords[text]; ok {
		l.emit(kind, end, token.Token{})
		return
	}
	l.emit(token.IDENT, end, token.Token{Str: text})
}

func (l *Lexer) dispatchLineComment(r rune, before pos.Position) error {
	if r == '\n' {
		l.emit(token.COMMENT, before, token.Token{Str: string(l.buf)})
		return l.dispatchInit(r, before)
	}
	l.buf = append(l.buf, r)
	return nil
}

func (l *Lexer) dispatchBlockComment(r rune, before pos.Position) error {
	if r == '*' {
		l.state = stBlockCommentStar
		return nil
	}
	l.buf = append(l.buf, r)
	return nil
}

func (l *Lexer) dispatchBlockCommentStar(r rune, before pos.Position) error {
	switch r {
	case '/':
		l.emit(token.COMMENT, pos.Advance(before, r), token.Token{Str: string(l.buf)})
		return nil
	case '*':
		l.buf = append(l.buf, '*')
		return nil
	default:
		l.buf = append(l.buf, '*', r)
		l.state = stBlockComment
		return nil
	}
}
