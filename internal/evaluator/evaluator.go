// Package evaluator implements the tree-walking execution engine of
// spec.md §4.5: frame-based statement/expression execution over the
// resolved AST, with an arena reclamation strategy (§5 option (a)) and
// the incremental `eval_raw_*` surface §4.6 asks for so a REPL can grow
// a persistent root frame one top-level statement at a time.
//
// It is grounded on the teacher's internal/interp.Interpreter: a single
// struct walking the AST with a type switch per node, mutable
// break/continue signal flags (generalized here into one signal field
// that also carries a Return value), and an Environment chain
// (generalized into values.Frame's slot-indexed arrays).
package evaluator

import (
	"io"

	"github.com/anish1234567/jiaobenscript/internal/ast"
	"github.com/anish1234567/jiaobenscript/internal/builtins"
	"github.com/anish1234567/jiaobenscript/internal/errors"
	"github.com/anish1234567/jiaobenscript/internal/resolver"
	"github.com/anish1234567/jiaobenscript/internal/values"
)

// Evaluator holds everything one program run or REPL session needs:
// the synthetic builtins scope, the persistent root program block and
// frame (grown incrementally by the REPL), and the in-flight control
// signal, if any. Every value and frame it ever allocates is reachable
// from here for as long as the Evaluator itself is -- the arena from
// spec.md §5 is simply "whatever this struct keeps alive."
type Evaluator struct {
	builtinsBlock *ast.Block
	builtinsFrame *values.Frame

	root      *ast.Program
	rootFrame *values.Frame

	sig *signal

	// trace, if set, is called with every top-level statement of a
	// program just before EvalIncompleteRawBlock executes it -- the
	// hook cmd/jbscript's `run --trace` uses to announce each statement
	// it is about to run.
	trace func(ast.Stmt)
}

// SetTrace installs fn as the Evaluator's top-level execution trace
// hook, or clears it if fn is nil.
func (e *Evaluator) SetTrace(fn func(ast.Stmt)) {
	e.trace = fn
}

// New returns an Evaluator with no builtins installed; call
// SetBuiltinTable or SetDefaultBuiltinTable before evaluating any
// program that references a builtin name.
func New() *Evaluator {
	return &Evaluator{}
}

// SetBuiltinTable installs table as the program's visible builtin
// names, per spec.md §4.5's set_builtin_table: every entry becomes an
// ordinary non-local name one scope above the program root.
func (e *Evaluator) SetBuiltinTable(table builtins.Table) {
	e.builtinsBlock = &ast.Block{Attr: ast.NewBlockAttr()}
	for _, name := range table.Names() {
		e.builtinsBlock.Attr.DeclareLocal(name)
	}
	e.builtinsFrame = values.NewFrame(e.builtinsBlock, nil)
	copy(e.builtinsFrame.Vars, table.Values())
}

// SetDefaultBuiltinTable installs builtins.Default(out) as the builtin
// table, per spec.md §4.5's set_default_builtin_table.
func (e *Evaluator) SetDefaultBuiltinTable(out io.Writer) {
	e.SetBuiltinTable(builtins.Default(out))
}

func (e *Evaluator) ensureBuiltins() {
	if e.builtinsBlock == nil {
		e.SetBuiltinTable(nil)
	}
}

// EvalIncompleteRawBlock resolves program against the installed
// builtins scope, installs it as the persistent root block and frame,
// and executes its statements in order -- spec.md §4.5's
// `eval_incomplete_raw_block`. Subsequent EvalRawDeclList/EvalRawStmt/
// EvalRawExp calls extend this same root frame, which is what makes it
// suitable both for a one-shot `run` and for a REPL's first chunk.
func (e *Evaluator) EvalIncompleteRawBlock(program *ast.Program) error {
	e.ensureBuiltins()
	if err := resolver.ResolveBlock(program, e.builtinsBlock); err != nil {
		return err
	}
	e.root = program
	e.rootFrame = values.NewFrame(program, e.builtinsFrame)

	for _, stmt := range program.Stmts {
		if e.trace != nil {
			e.trace(stmt)
		}
		if err := e.execStmt(e.rootFrame, stmt); err != nil {
			return err
		}
		if e.sig != nil {
			// A bare break/continue/return at the program's top level
			// is rejected by the control-flow checker before we ever
			// get here; reaching this would be an evaluator bug.
			e.sig = nil
		}
	}
	return nil
}

// EvalRawDeclList grows the persistent root frame with one more `let`,
// per spec.md §4.6: extend the root block's local_info, extend the root
// frame's vars, then resolve and run the new declarations' initializers.
func (e *Evaluator) EvalRawDeclList(decl *ast.DeclareList) error {
	before := len(e.root.Attr.LocalInfo)
	if err := resolver.ResolveDeclList(e.root, decl); err != nil {
		return err
	}
	e.rootFrame.Grow(len(e.root.Attr.LocalInfo) - before)
	return e.execStmt(e.rootFrame, decl)
}

// EvalRawStmt resolves and control-flow-checks stmt as one more
// top-level statement of the root block, then executes it against the
// persistent root frame -- spec.md §4.6's `eval_raw_stmt`. Callers must
// route a *ast.DeclareList through EvalRawDeclList instead, since only
// that path grows the root block's locals.
func (e *Evaluator) EvalRawStmt(stmt ast.Stmt) error {
	if err := resolver.ResolveStmt(e.root, stmt); err != nil {
		return err
	}
	return e.execStmt(e.rootFrame, stmt)
}

// EvalRawExp resolves expr against the root block and evaluates it
// against the persistent root frame, returning its value -- spec.md
// §4.6's `eval_raw_exp`, used for a REPL's bare trailing expression.
func (e *Evaluator) EvalRawExp(expr ast.Expr) (values.Value, error) {
	if err := resolver.ResolveExpr(e.root, expr); err != nil {
		return nil, err
	}
	return e.evalExpr(e.rootFrame, expr)
}

// runtimeErr wraps a builtins/evaluator error as a positioned JBError,
// unless it is already a positioned *errors.Error (a resolver error
// passed straight through from one of the Eval* entry points above).
func runtimeErr(node ast.Node, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*errors.Error); ok {
		return err
	}
	return errors.New(errors.Runtime, node.Pos(), "%s", err.Error())
}
