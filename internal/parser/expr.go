package parser

import (
	"github.com/anish1234567/jiaobenscript/internal/ast"
	"github.com/anish1234567/jiaobenscript/internal/pos"
	"github.com/anish1234567/jiaobenscript/internal/token"
)

// parseExprList parses the comma/explist level (spec.md §4.2 cascade
// level 12), the outermost expression grammar reachable from a
// statement, a return value, or a condition. A single element is
// returned unwrapped; two or more become one Op(OpExpList, ...).
func (p *Parser) parseExprList() (ast.Expr, error) {
	first, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != token.COMMA {
		return first, nil
	}
	items := []ast.Expr{first}
	for p.cur().Kind == token.COMMA {
		p.advance()
		next, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	return ast.NewOp(pos.Cover(items[0].Pos(), items[len(items)-1].Pos()), ast.OpExpList, items...), nil
}

var assignOps = map[token.Kind]ast.OpCode{
	token.ASSIGN:   ast.OpAssign,
	token.PLUSEQ:   ast.OpAddAssign,
	token.MINUSEQ:  ast.OpSubAssign,
	token.STAREQ:   ast.OpMulAssign,
	token.SLASHEQ:  ast.OpDivAssign,
	token.PCTEQ:    ast.OpModAssign,
}

// parseAssign is level 11: right-associative `= += -= *= /= %=`, valid
// only when the left side is a Var or a subscript expression.
func (p *Parser) parseAssign() (ast.Expr, error) {
	lhs, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	code, ok := assignOps[p.cur().Kind]
	if !ok {
		return lhs, nil
	}
	if !isAssignable(lhs) {
		return nil, p.errAt(lhs.Pos(), "assignment target must be a variable or subscript")
	}
	p.advance()
	rhs, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	return ast.NewOp(pos.Cover(lhs.Pos(), rhs.Pos()), code, lhs, rhs), nil
}

func isAssignable(e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.Var:
		return true
	case *ast.Op:
		return x.Code == ast.OpSubscript
	default:
		return false
	}
}

// parseOr is level 10: left-associative `||`.
func (p *Parser) parseOr() (ast.Expr, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.OR {
		p.advance()
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = ast.NewOp(pos.Cover(lhs.Pos(), rhs.Pos()), ast.OpOr, lhs, rhs)
	}
	return lhs, nil
}

// parseAnd is level 9: left-associative `&&`.
func (p *Parser) parseAnd() (ast.Expr, error) {
	lhs, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.AND {
		p.advance()
		rhs, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		lhs = ast.NewOp(pos.Cover(lhs.Pos(), rhs.Pos()), ast.OpAnd, lhs, rhs)
	}
	return lhs, nil
}

// parseEquality is level 8: left-associative `== !=`.
func (p *Parser) parseEquality() (ast.Expr, error) {
	lhs, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		var code ast.OpCode
		switch p.cur().Kind {
		case token.EQ:
			code = ast.OpEq
		case token.NE:
			code = ast.OpNe
		default:
			return lhs, nil
		}
		p.advance()
		rhs, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		lhs = ast.NewOp(pos.Cover(lhs.Pos(), rhs.Pos()), code, lhs, rhs)
	}
}

// parseComparison is level 7: left-associative `< <= > >=`.
func (p *Parser) parseComparison() (ast.Expr, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var code ast.OpCode
		switch p.cur().Kind {
		case token.LT:
			code = ast.OpLt
		case token.LE:
			code = ast.OpLe
		case token.GT:
			code = ast.OpGt
		case token.GE:
			code = ast.OpGe
		default:
			return lhs, nil
		}
		p.advance()
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		lhs = ast.NewOp(pos.Cover(lhs.Pos(), rhs.Pos()), code, lhs, rhs)
	}
}

// parseAdditive is level 6: left-associative `+ -`.
func (p *Parser) parseAdditive() (ast.Expr, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var code ast.OpCode
		switch p.cur().Kind {
		case token.PLUS:
			code = ast.OpAdd
		case token.MINUS:
			code = ast.OpSub
		default:
			return lhs, nil
		}
		p.advance()
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		lhs = ast.NewOp(pos.Cover(lhs.Pos(), rhs.Pos()), code, lhs, rhs)
	}
}

// parseMultiplicative is level 5: left-associative `* / %`.
func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var code ast.OpCode
		switch p.cur().Kind {
		case token.STAR:
			code = ast.OpMul
		case token.SLASH:
			code = ast.OpDiv
		case token.PERCENT:
			code = ast.OpMod
		default:
			return lhs, nil
		}
		p.advance()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		lhs = ast.NewOp(pos.Cover(lhs.Pos(), rhs.Pos()), code, lhs, rhs)
	}
}

// parseUnary covers cascade levels 3 and 4 (prefix `!` and prefix unary
// `+`/`-`) in one recursive function rather than two, so the two prefix
// families nest freely in either order (`-!x`, `!-x`); spec.md lists
// them as adjacent levels but gives no binary operator that could fall
// between two bare prefix operators, so there is no observable grammar
// difference between splitting them and merging them.
func (p *Parser) parseUnary() (ast.Expr, error) {
	var code ast.OpCode
	switch p.cur().Kind {
	case token.BANG:
		code = ast.OpNot
	case token.PLUS:
		code = ast.OpAdd
	case token.MINUS:
		code = ast.OpSub
	default:
		return p.parsePostfix()
	}
	tok := p.advance()
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return ast.NewOp(pos.Cover(tok.Span, x.Pos()), code, x), nil
}

// parsePostfix is level 2: left-associative chains of call `f(args)` and
// subscript `a[idx]`.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	x, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().Kind {
		case token.LPAREN:
			p.advance()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			end, err := p.expect(token.RPAREN, "')'")
			if err != nil {
				return nil, err
			}
			x = ast.NewOp(pos.Cover(x.Pos(), end.Span), ast.OpCall, append([]ast.Expr{x}, args...)...)
		case token.LBRACKET:
			p.advance()
			idx, err := p.parseAssign()
			if err != nil {
				return nil, err
			}
			end, err := p.expect(token.RBRACKET, "']'")
			if err != nil {
				return nil, err
			}
			x = ast.NewOp(pos.Cover(x.Pos(), end.Span), ast.OpSubscript, x, idx)
		default:
			return x, nil
		}
	}
}

func (p *Parser) parseArgs() ([]ast.Expr, error) {
	var args []ast.Expr
	if p.cur().Kind == token.RPAREN {
		return args, nil
	}
	for {
		a, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if p.cur().Kind != token.COMMA {
			return args, nil
		}
		p.advance()
	}
}

// parseAtom is level 1: literals, parenthesized expressions, list
// literals, function literals, and bare identifiers.
func (p *Parser) parseAtom() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Kind {
	case token.INT:
		p.advance()
		return &ast.IntLit{Meta: ast.Meta{Span: tok.Span}, Value: tok.Int}, nil
	case token.FLOAT:
		p.advance()
		return &ast.FloatLit{Meta: ast.Meta{Span: tok.Span}, Value: tok.Float}, nil
	case token.STRING:
		p.advance()
		return &ast.StringLit{Meta: ast.Meta{Span: tok.Span}, Value: tok.Str}, nil
	case token.TRUE, token.FALSE:
		p.advance()
		return &ast.BoolLit{Meta: ast.Meta{Span: tok.Span}, Value: tok.Kind == token.TRUE}, nil
	case token.NULL:
		p.advance()
		return &ast.NullLit{Meta: ast.Meta{Span: tok.Span}}, nil
	case token.IDENT:
		p.advance()
		return ast.NewVar(tok.Span, tok.Str), nil
	case token.LPAREN:
		p.advance()
		x, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return x, nil
	case token.LBRACKET:
		return p.parseListLit()
	case token.FUNCTION:
		return p.parseFuncLit()
	default:
		return nil, p.errExpected("expression")
	}
}

func (p *Parser) parseListLit() (ast.Expr, error) {
	start := p.advance().Span // '['
	var items []ast.Expr
	if p.cur().Kind != token.RBRACKET {
		for {
			item, err := p.parseAssign()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			if p.cur().Kind != token.COMMA {
				break
			}
			p.advance()
		}
	}
	end, err := p.expect(token.RBRACKET, "']'")
	if err != nil {
		return nil, err
	}
	return &ast.ListLit{Meta: ast.Meta{Span: pos.Cover(start, end.Span)}, Items: items}, nil
}

func (p *Parser) parseFuncLit() (ast.Expr, error) {
	start := p.advance().Span // 'function'
	if _, err := p.expect(token.LPAREN, "'('"); err != nil {
		return nil, err
	}
	var params []ast.Param
	seen := map[string]bool{}
	if p.cur().Kind != token.RPAREN {
		for {
			nameTok, err := p.expect(token.IDENT, "parameter name")
			if err != nil {
				return nil, err
			}
			if seen[nameTok.Str] {
				return nil, p.errAt(nameTok.Span, "duplicate parameter %q", nameTok.Str)
			}
			seen[nameTok.Str] = true
			var def ast.Expr
			if p.cur().Kind == token.ASSIGN {
				p.advance()
				def, err = p.parseAssign()
				if err != nil {
					return nil, err
				}
			}
			params = append(params, ast.Param{Name: nameTok.Str, Default: def})
			if p.cur().Kind != token.COMMA {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RPAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncLit{Meta: ast.Meta{Span: pos.Cover(start, body.Pos())}, Params: params, Body: body}, nil
}
