package lexer

import (
	"github.com/anish1234567/jiaobenscript/internal/pos"
	"github.com/anish1234567/jiaobenscript/internal/token"
)

// TokenizeAll runs every code point of input through a fresh Lexer and
// drains the resulting token queue, including a trailing synthetic END
// token. It is the batch entry point used by the file driver, by
// `jbscript lex` and `jbscript parse`, and by the REPL, which
// re-tokenizes its whole accumulated buffer after every line.
//
// Finish closes out whatever token was still open at end of input --
// flushing a trailing operator/number/identifier/line-comment, or
// reporting an unterminated string/block comment -- matching spec.md
// §8's round-trip invariant ("after feeding all characters plus a
// trailing newline, is_ready() is true") without actually needing to
// feed a synthetic newline, which would otherwise misreport an
// unterminated string as a bare control-character error.
func TokenizeAll(input []rune) ([]token.Token, error) {
	l := New()
	for _, r := range input {
		if err := l.Feed(r); err != nil {
			return nil, err
		}
	}
	if err := l.Finish(); err != nil {
		return nil, err
	}

	var out []token.Token
	for {
		t, ok := l.Pop()
		if !ok {
			break
		}
		out = append(out, t)
	}
	out = append(out, token.Token{Kind: token.END, Span: pos.Span{Start: l.cur, End: l.cur}})
	return out, nil
}
