package parser

import (
	"github.com/anish1234567/jiaobenscript/internal/ast"
	"github.com/anish1234567/jiaobenscript/internal/pos"
	"github.com/anish1234567/jiaobenscript/internal/token"
)

// ParseProgram parses a complete token stream (including its trailing
// END, as produced by lexer.TokenizeAll) into a Program. This is
// spec.md §4.2's start_program() entry mode.
func ParseProgram(toks []token.Token) (*ast.Program, error) {
	p := newParser(toks, false)
	start := p.cur().Span
	var stmts []ast.Stmt
	for p.cur().Kind != token.END {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return ast.NewBlock(pos.Cover(start, p.cur().Span), stmts), nil
}

// REPLEntry is one parsed unit of REPL input: zero or more complete
// statements, and optionally one trailing bare expression with no `;`
// whose value the REPL should echo.
type REPLEntry struct {
	Program  *ast.Program
	Trailing ast.Expr
}

// ParseREPLEntry parses toks -- the REPL's accumulated-so-far token
// buffer, already including a trailing END -- as spec.md §4.2's
// start_repl() entry mode: either a sequence of statements, or that
// sequence followed by a single bare expression. If toks ends before a
// complete construct was formed, it returns ErrIncomplete; the caller
// should read another line, retokenize the whole buffer, and retry.
func ParseREPLEntry(toks []token.Token) (*REPLEntry, error) {
	p := newParser(toks, true)
	start := p.cur().Span
	var stmts []ast.Stmt
	for p.cur().Kind != token.END {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		if es, ok := s.(*ast.ExprStmt); ok && es.Implicit {
			if p.cur().Kind != token.END {
				return nil, p.errExpected("end of input")
			}
			return &REPLEntry{
				Program:  ast.NewBlock(pos.Cover(start, p.cur().Span), stmts),
				Trailing: es.X,
			}, nil
		}
		stmts = append(stmts, s)
	}
	return &REPLEntry{Program: ast.NewBlock(pos.Cover(start, p.cur().Span), stmts)}, nil
}
