package parser

import (
	"github.com/anish1234567/jiaobenscript/internal/ast"
	"github.com/anish1234567/jiaobenscript/internal/pos"
	"github.com/anish1234567/jiaobenscript/internal/token"
)

// parseBlock parses a brace-delimited statement sequence. It is used
// both for `{ ... }` nested blocks and for the bodies of if/while/
// function statements.
func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.expect(token.LBRACE, "'{'")
	if err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for p.cur().Kind != token.RBRACE {
		if p.cur().Kind == token.END {
			return nil, p.errExpected("'}'")
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	close := p.advance()
	return ast.NewBlock(pos.Cover(open.Span, close.Span), stmts), nil
}

// parseStmt dispatches on the first token exactly as spec.md §4.2
// describes: a fixed set of statement-introducing keywords/punctuation,
// falling through to an expression statement.
func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.cur().Kind {
	case token.LBRACE:
		return p.parseBlock()
	case token.SEMI:
		tok := p.advance()
		return &ast.Empty{Meta: ast.Meta{Span: tok.Span}}, nil
	case token.LET:
		return p.parseDeclareList()
	case token.IF:
		return p.parseCondition()
	case token.WHILE:
		return p.parseWhile()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		tok := p.advance()
		semi, err := p.expect(token.SEMI, "';'")
		if err != nil {
			return nil, err
		}
		return &ast.Break{Meta: ast.Meta{Span: pos.Cover(tok.Span, semi.Span)}}, nil
	case token.CONTINUE:
		tok := p.advance()
		semi, err := p.expect(token.SEMI, "';'")
		if err != nil {
			return nil, err
		}
		return &ast.Continue{Meta: ast.Meta{Span: pos.Cover(tok.Span, semi.Span)}}, nil
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseDeclareList() (ast.Stmt, error) {
	tok := p.advance() // LET
	var items []ast.DeclItem
	for {
		nameTok, err := p.expect(token.IDENT, "name")
		if err != nil {
			return nil, err
		}
		var init ast.Expr
		if p.cur().Kind == token.ASSIGN {
			p.advance()
			init, err = p.parseAssign()
			if err != nil {
				return nil, err
			}
		}
		items = append(items, ast.DeclItem{Name: nameTok.Str, Init: init})
		if p.cur().Kind != token.COMMA {
			break
		}
		p.advance()
	}
	semi, err := p.expect(token.SEMI, "';'")
	if err != nil {
		return nil, err
	}
	return ast.NewDeclareList(pos.Cover(tok.Span, semi.Span), items), nil
}

// parseCondition parses `if (cond) { ... } [else ...]`. An `else if`
// nests a Condition directly into the Else field rather than wrapping
// it in a single-statement Block, matching spec.md §4.2's "producing an
// else-if by nesting a Condition in the else_branch".
func (p *Parser) parseCondition() (ast.Stmt, error) {
	tok := p.advance() // IF
	if _, err := p.expect(token.LPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "')'"); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	end := then.Pos()

	var elseBranch ast.Stmt
	if p.cur().Kind == token.ELSE {
		p.advance()
		if p.cur().Kind == token.IF {
			elseBranch, err = p.parseCondition()
		} else {
			elseBranch, err = p.parseBlock()
		}
		if err != nil {
			return nil, err
		}
		end = elseBranch.Pos()
	}

	return &ast.Condition{
		Meta: ast.Meta{Span: pos.Cover(tok.Span, end)},
		Cond: cond, Then: then, Else: elseBranch,
	}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	tok := p.advance() // WHILE
	if _, err := p.expect(token.LPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Meta: ast.Meta{Span: pos.Cover(tok.Span, body.Pos())}, Cond: cond, Body: body}, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	tok := p.advance() // RETURN
	if p.cur().Kind == token.SEMI {
		semi := p.advance()
		return &ast.Return{Meta: ast.Meta{Span: pos.Cover(tok.Span, semi.Span)}}, nil
	}
	val, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(token.SEMI, "';'")
	if err != nil {
		return nil, err
	}
	return &ast.Return{Meta: ast.Meta{Span: pos.Cover(tok.Span, semi.Span)}, Value: val}, nil
}

// parseExprStmt parses an expression followed by `;`. In REPL mode a
// trailing expression with no `;` immediately followed by END is
// accepted too, flagged Implicit so the REPL driver knows to print its
// value instead of discarding it (spec.md §4.2's "single bare expression
// ... no terminating ; required").
func (p *Parser) parseExprStmt() (ast.Stmt, error) {
	expr, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind == token.SEMI {
		semi := p.advance()
		return &ast.ExprStmt{Meta: ast.Meta{Span: pos.Cover(expr.Pos(), semi.Span)}, X: expr}, nil
	}
	if p.repl && p.cur().Kind == token.END {
		return &ast.ExprStmt{Meta: ast.Meta{Span: expr.Pos()}, X: expr, Implicit: true}, nil
	}
	return nil, p.errExpected("';'")
}
