package ast

import "github.com/anish1234567/jiaobenscript/internal/pos"

// Block is a braced sequence of statements together with the static
// scope the resolver computes for it. Every function body and every
// bare `{ ... }` is a Block; a Program is the outermost one.
type Block struct {
	Meta
	Stmts []Stmt
	Attr  *BlockAttr
}

func NewBlock(span pos.Span, stmts []Stmt) *Block {
	return &Block{Meta: Meta{Span: span}, Stmts: stmts}
}

func (*Block) stmtNode() {}

// DeclItem is one `name` or `name = init` entry of a DeclareList.
type DeclItem struct {
	Name string
	Init Expr // nil if this item has no initializer
}

// DeclareList is a `let x, y = 1, z;`-style statement: one or more new
// locals declared in the enclosing block, each with an optional
// initializer evaluated left to right.
type DeclareList struct {
	Meta
	Items []DeclItem

	// StartIndex is the slot of Items[0] in the enclosing block's
	// LocalInfo; Items[i] is always at StartIndex+i since a DeclareList
	// declares a contiguous run of locals. The resolver fills this in;
	// it is -1 until then.
	StartIndex int
}

func NewDeclareList(span pos.Span, items []DeclItem) *DeclareList {
	return &DeclareList{Meta: Meta{Span: span}, Items: items, StartIndex: -1}
}

func (*DeclareList) stmtNode() {}

// Condition is an `if (Cond) Then [else Else]` statement. Else is nil,
// a *Block (the `else { ... }` form), or a *Condition (an `else if`
// chain link).
type Condition struct {
	Meta
	Cond Expr
	Then *Block
	Else Stmt
}

func (*Condition) stmtNode() {}

// While is a `while (Cond) Body` loop.
type While struct {
	Meta
	Cond Expr
	Body *Block
}

func (*While) stmtNode() {}

// Return is a `return [Value];` statement. Value is nil for a bare
// `return;`.
type Return struct {
	Meta
	Value Expr
}

func (*Return) stmtNode() {}

// Break is a `break;` statement.
type Break struct{ Meta }

func (*Break) stmtNode() {}

// Continue is a `continue;` statement.
type Continue struct{ Meta }

func (*Continue) stmtNode() {}

// ExprStmt is an expression evaluated for its side effect and discarded,
// e.g. a bare call or assignment followed by `;`.
//
// Implicit is set only by the REPL entry point: a top-level expression
// typed with no trailing `;` is still an ExprStmt, but the REPL driver
// prints its value instead of discarding it (spec.md §4.6).
type ExprStmt struct {
	Meta
	X         Expr
	Implicit  bool
}

func (*ExprStmt) stmtNode() {}

// Empty is a bare `;` with no effect.
type Empty struct{ Meta }

func (*Empty) stmtNode() {}
