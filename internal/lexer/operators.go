package lexer

import "github.com/anish1234567/jiaobenscript/internal/token"

// doubleOps maps a two-character operator lexeme to its Kind. Looked up
// whenever the Op state sees a second character after an operator-start
// character; a miss means the first character stands alone (or, for '&'
// and '|', is an error).
var doubleOps = map[[2]rune]token.Kind{
	{'<', '='}: token.LE,
	{'>', '='}: token.GE,
	{'=', '='}: token.EQ,
	{'!', '='}: token.NE,
	{'&', '&'}: token.AND,
	{'|', '|'}: token.OR,
	{'+', '='}: token.PLUSEQ,
	{'-', '='}: token.MINUSEQ,
	{'*', '='}: token.STAREQ,
	{'/', '='}: token.SLASHEQ,
	{'%', '='}: token.PCTEQ,
}

// singleOpKind maps an operator-start character to the Kind it carries
// when it appears alone (no continuation matched). '&' and '|' have no
// entry: standalone they are tokenizer errors per spec.md §4.1.
var singleOpKind = map[rune]token.Kind{
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.STAR,
	'/': token.SLASH,
	'%': token.PERCENT,
	'<': token.LT,
	'>': token.GT,
	'=': token.ASSIGN,
	'!': token.BANG,
}

// singleCharKind maps punctuation that always produces a token
// immediately, with no possible continuation.
var singleCharKind = map[rune]token.Kind{
	'[': token.LBRACKET,
	']': token.RBRACKET,
	'{': token.LBRACE,
	'}': token.RBRACE,
	'(': token.LPAREN,
	')': token.RPAREN,
	',': token.COMMA,
	';': token.SEMI,
}

func isOpStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '<', '>', '=', '!', '&', '|':
		return true
	default:
		return false
	}
}
