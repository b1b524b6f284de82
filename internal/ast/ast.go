// Package ast defines the JiaoBenScript abstract syntax tree: the
// Stmt/Expr tagged variants of spec.md §3, carrying source spans and the
// per-node attribute slots the resolver (internal/resolver) fills in
// after parsing.
//
// This follows the teacher's internal/ast package in spirit -- a Node
// interface every variant satisfies, one Go struct per syntactic form --
// but replaces its deep class hierarchy (one struct embeds another to
// share fields, with type-switches or a visitor for dispatch) with two
// flat sum types, per the "sum types over inheritance" redesign note in
// spec.md §9.
package ast

import "github.com/anish1234567/jiaobenscript/internal/pos"

// Node is satisfied by every Stmt and Expr: it can report the source
// span it covers.
type Node interface {
	Pos() pos.Span
}

// Stmt is satisfied by every statement variant.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is satisfied by every expression variant.
type Expr interface {
	Node
	exprNode()
}

// Meta is embedded by every node to provide its Pos() method and back
// the Span field every constructor fills in.
type Meta struct {
	Span pos.Span
}

// Pos returns the span this node covers.
func (m Meta) Pos() pos.Span { return m.Span }

// Program is the root of a parsed source file: a Block with no parent.
// It is a Block used as the root (spec.md §3), not a distinct node kind.
type Program = Block
