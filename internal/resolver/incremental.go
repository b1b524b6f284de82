package resolver

import (
	"github.com/anish1234567/jiaobenscript/internal/ast"
	"github.com/anish1234567/jiaobenscript/internal/errors"
)

// ResolveBlock resolves block as a program root whose lexically
// enclosing scope is parent, and control-flow-checks it. Unlike
// ResolveProgram, parent is a block the caller already owns (the
// evaluator's persistent builtins block) rather than one freshly built
// from a name list, so its identity matches across repeated
// resolutions -- required for the nonlocal owner-block comparisons in
// spec.md §4.5 to keep working once a REPL session has resolved more
// than one chunk against the same builtins scope.
func ResolveBlock(block *ast.Block, parent *ast.Block) error {
	r := &resolver{}
	if err := r.resolveBlock(block, parent); err != nil {
		return err
	}
	return checkControlFlow(block, false, false)
}

// ResolveDeclList incrementally declares decl's items onto block's
// already-resolved BlockAttr, declaring and binding one item at a time
// exactly as declareAndBind does for a freshly-resolved block, and
// control-flow-checks it -- the `eval_raw_decl_list` growth spec.md §4.6
// requires of the REPL: a top-level `let` typed after the program's
// first chunk extends the existing root block instead of starting a new
// one.
//
// Unlike a fresh block, block.Attr here is already committed and holds
// names from prior REPL chunks that must survive a failure in this one.
// So a failure rolls back to a snapshot taken before this call touched
// anything, rather than clearing Attr outright, per spec.md §8's
// resolver idempotence invariant: a failing call must not grow
// block.Attr's LocalInfo (or NonlocalIndexes) at all, since the
// evaluator's root frame is sized to match LocalInfo's length and is
// never grown on a failed declaration.
func ResolveDeclList(block *ast.Block, decl *ast.DeclareList) error {
	attr := block.Attr
	snap := attr.Snapshot()
	decl.StartIndex = len(attr.LocalInfo)

	r := &resolver{}
	for _, item := range decl.Items {
		if _, dup := attr.NameToLocalIndex[item.Name]; dup {
			attr.TruncateTo(snap)
			decl.StartIndex = -1
			return errors.New(errors.DuplicatedLocalName, decl.Pos(),
				"%q is already declared in this block", item.Name)
		}
		attr.DeclareLocal(item.Name)
		if item.Init != nil {
			if err := r.bindExpr(item.Init, block); err != nil {
				attr.TruncateTo(snap)
				decl.StartIndex = -1
				return err
			}
		}
	}

	if err := checkStmt(decl, false, false); err != nil {
		attr.TruncateTo(snap)
		decl.StartIndex = -1
		return err
	}
	return nil
}

// ResolveStmt binds and control-flow-checks stmt as an additional
// top-level statement of the already-resolved block, for the REPL's
// `eval_raw_stmt` over anything but a DeclareList (that case goes
// through ResolveDeclList instead, since it alone grows the block).
func ResolveStmt(block *ast.Block, stmt ast.Stmt) error {
	r := &resolver{}
	if err := r.bindStmt(stmt, block); err != nil {
		return err
	}
	return checkStmt(stmt, false, false)
}

// ResolveExpr binds and control-flow-checks expr against block, for the
// REPL's `eval_raw_exp` over a bare trailing expression.
func ResolveExpr(block *ast.Block, expr ast.Expr) error {
	r := &resolver{}
	if err := r.bindExpr(expr, block); err != nil {
		return err
	}
	return checkExpr(expr, false, false)
}
