package ast

import "github.com/anish1234567/jiaobenscript/internal/pos"

// Op is an operator application: unary, binary, a call, a subscript, or
// a comma expression list, per OpCode's doc comment. Evaluation order is
// always left to right through Args.
type Op struct {
	Meta
	Code OpCode
	Args []Expr
}

func NewOp(span pos.Span, code OpCode, args ...Expr) *Op {
	return &Op{Meta: Meta{Span: span}, Code: code, Args: args}
}

func (*Op) exprNode() {}

// Var is a name reference. Attr is filled in by the resolver; it is nil
// on a freshly parsed Var.
type Var struct {
	Meta
	Name string
	Attr *VarAttr
}

func NewVar(span pos.Span, name string) *Var {
	return &Var{Meta: Meta{Span: span}, Name: name}
}

func (*Var) exprNode() {}

// Param is one entry of a function's parameter list: a name with an
// optional default-value expression, evaluated in the callee's own new
// frame at call time if the argument was omitted.
type Param struct {
	Name    string
	Default Expr // nil if this parameter has no default
}

// FuncLit is a function literal: `function(params) { body }`. It has no
// name of its own; `let f = function(...) {...};` binds the name via a
// DeclareList.
type FuncLit struct {
	Meta
	Params []Param
	Body   *Block
}

func (*FuncLit) exprNode() {}

// BoolLit is a `true`/`false` literal.
type BoolLit struct {
	Meta
	Value bool
}

func (*BoolLit) exprNode() {}

// IntLit is an integer literal, classified at tokenize time per
// spec.md's Int/Float grammar rule.
type IntLit struct {
	Meta
	Value int64
}

func (*IntLit) exprNode() {}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Meta
	Value float64
}

func (*FloatLit) exprNode() {}

// StringLit is a double-quoted string literal with escapes already
// resolved by the tokenizer.
type StringLit struct {
	Meta
	Value string
}

func (*StringLit) exprNode() {}

// ListLit is a `[a, b, c]` list literal.
type ListLit struct {
	Meta
	Items []Expr
}

func (*ListLit) exprNode() {}

// NullLit is the `null` literal.
type NullLit struct{ Meta }

func (*NullLit) exprNode() {}
