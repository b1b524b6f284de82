package ast

// OpCode names an operator node's meaning. Unary and binary uses of the
// same symbol ('+', '-') share one OpCode; the evaluator tells them
// apart by len(Op.Args), exactly as spec.md §9's redesign note directs
// ("fold unary +/- into the same Op node kind as their binary
// counterparts; dispatch on arity"). Call and Subscript are also Op
// nodes rather than distinct node kinds, for the same reason: they are
// all "apply this operator to these operands".
type OpCode int

const (
	OpInvalid OpCode = iota

	// Arithmetic. Arity 1 is unary (+x, -x); arity 2 is binary.
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod

	OpNot // unary only

	OpLt
	OpLe
	OpGt
	OpGe
	OpEq
	OpNe

	OpAnd
	OpOr

	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign

	OpCall      // Args[0] is the callee, Args[1:] are arguments
	OpSubscript // Args[0][Args[1]]
	OpExpList   // comma expression; value is the last Arg
)

var opNames = map[OpCode]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpNot: "!",
	OpLt:  "<", OpLe: "<=", OpGt: ">", OpGe: ">=", OpEq: "==", OpNe: "!=",
	OpAnd: "&&", OpOr: "||",
	OpAssign: "=", OpAddAssign: "+=", OpSubAssign: "-=",
	OpMulAssign: "*=", OpDivAssign: "/=", OpModAssign: "%=",
	OpCall: "()", OpSubscript: "[]", OpExpList: ",",
}

func (op OpCode) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return "<invalid op>"
}

// IsAssign reports whether op is one of the compound-or-plain assignment
// operators, which spec.md §3 restricts to assigning into a Var or an
// OpSubscript target.
func (op OpCode) IsAssign() bool {
	switch op {
	case OpAssign, OpAddAssign, OpSubAssign, OpMulAssign, OpDivAssign, OpModAssign:
		return true
	}
	return false
}
