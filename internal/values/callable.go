package values

import (
	"fmt"

	"github.com/anish1234567/jiaobenscript/internal/ast"
)

// Frame is one activation record: a fixed-size array of value slots
// sized to its Block's local count, and a link to the statically
// enclosing frame a nonlocal reference walks up to (spec.md §3's
// "Frames"). A nil entry in Vars is an unbound slot, distinct from a
// stored Null{} value.
type Frame struct {
	Parent *Frame
	Block  *ast.Block
	Vars   []Value
}

// NewFrame allocates a frame for block with every slot unbound.
func NewFrame(block *ast.Block, parent *Frame) *Frame {
	return &Frame{Parent: parent, Block: block, Vars: make([]Value, len(block.Attr.LocalInfo))}
}

// Grow appends n more unbound slots, used by the REPL's incremental
// top-level `let` (spec.md §4.6's eval_raw_decl_list).
func (f *Frame) Grow(n int) {
	f.Vars = append(f.Vars, make([]Value, n)...)
}

// FindOwner walks the parent chain starting at f looking for the frame
// instantiating block, per spec.md §4.5's nonlocal read rule.
func (f *Frame) FindOwner(block *ast.Block) *Frame {
	for cur := f; cur != nil; cur = cur.Parent {
		if cur.Block == block {
			return cur
		}
	}
	return nil
}

// Func is a user-defined function value: the AST node describing its
// parameters and body, plus the frame that was current when the literal
// was evaluated (its closure environment). Captured may be nil for a
// function literal evaluated with no enclosing frame at all (never
// happens for program code, only in tests).
//
// Two Funcs are equal only by pointer identity (spec.md §3: "Functions
// compare by identity") -- no separate id field is needed for that,
// since every function literal evaluation allocates a fresh *Func.
type Func struct {
	Code     *ast.FuncLit
	Captured *Frame
}

// NewFunc builds a Func value closing over captured.
func NewFunc(code *ast.FuncLit, captured *Frame) *Func {
	return &Func{Code: code, Captured: captured}
}

func (*Func) Kind() string  { return "Func" }
func (*Func) Truthy() bool  { return true }
func (*Func) Repr() string  { return "<Func>" }

// Builtin is a host function exposed to JBS code under a fixed name.
type Builtin struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (*Builtin) Kind() string   { return "Builtin" }
func (*Builtin) Truthy() bool   { return true }
func (b *Builtin) Repr() string { return fmt.Sprintf("<builtin %s>", b.Name) }
