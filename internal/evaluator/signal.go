package evaluator

import "github.com/anish1234567/jiaobenscript/internal/values"

// signalKind distinguishes the three control-flow transfers spec.md
// §4.5 calls out as signals, not errors: Break, Continue, and Return
// unwind through statement execution until a While (break/continue) or
// Call (return) catches them.
type signalKind int

const (
	sigNone signalKind = iota
	sigBreak
	sigContinue
	sigReturn
)

// signal is the teacher's Interpreter.breakSignal/continueSignal flag
// idiom (internal/interp/statements.go's evalBreakStatement et al.)
// generalized into one field that also carries a Return value, since
// JBS's return produces a value where the teacher's exit statements do
// not need to.
type signal struct {
	kind  signalKind
	value values.Value
}
