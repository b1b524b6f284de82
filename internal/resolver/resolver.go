// Package resolver implements the single-pass, declare-as-you-go name
// resolution and control-flow checking of spec.md §4.3-4.4. It follows
// the teacher's internal/semantic.Analyzer in structure -- one
// recursive walk that both declares and binds names, tracking
// loop/function context with save-restore flags -- but replaces its
// name-keyed SymbolTable chain with the slot-indexed
// ast.BlockAttr/ast.VarAttr tables spec.md requires. It is also
// grounded on the original implementation's own
// `NameResolveVisitor::visit_declare_list` (original_source/src/
// name_resolve.cpp): each `let` item is declared, then its own
// initializer is bound, before the next item is even considered --
// never the other way around. A `let` name therefore only becomes
// visible to initializer expressions evaluated from that point in the
// block onward, which is what makes `let a = b; let b = 1;` a
// compile-time NoSuchName on `b` (spec.md §8) instead of a runtime one:
// `b` simply isn't declared yet when `a`'s initializer is bound.
package resolver

import (
	"github.com/anish1234567/jiaobenscript/internal/ast"
	"github.com/anish1234567/jiaobenscript/internal/errors"
)

// Resolve runs name resolution and control-flow checking over program,
// populating every Block's Attr and every Var's Attr in place. program
// is treated as the root block with no enclosing scope at all -- no
// builtins are visible. Most callers want ResolveProgram instead.
//
// On error, the offending block's Attr is left exactly as it was before
// this call touched it: resolveBlock only ever assigns a fresh BlockAttr
// onto a Block that has never been resolved (Attr nil), so rolling back
// on failure is just clearing Attr back to nil, satisfying spec.md
// §4.3's atomic-per-block guarantee. The REPL's incremental growth path
// (ResolveDeclList, in incremental.go) mutates an already-committed
// BlockAttr instead and rolls back with ast.BlockAttrSnapshot.
func Resolve(program *ast.Program) error {
	return ResolveProgram(program, nil)
}

// ResolveProgram resolves program the way a real run does: builtinNames
// become a synthetic enclosing block's locals, so every builtin is an
// ordinary nonlocal reference rather than a special case in the
// evaluator -- the "builtins visible as non-local names to the program"
// of spec.md §4.5's set_builtin_table.
func ResolveProgram(program *ast.Program, builtinNames []string) error {
	builtins := &ast.Block{Attr: ast.NewBlockAttr()}
	for _, name := range builtinNames {
		builtins.Attr.DeclareLocal(name)
	}

	r := &resolver{}
	if err := r.resolveBlock(program, builtins); err != nil {
		return err
	}
	return checkControlFlow(program, false, false)
}

type resolver struct{}

// resolveBlock builds a fresh BlockAttr for block, commits it onto block
// immediately (so nested scopes resolved along the way can walk up
// through it), and then interleaves declare and bind one statement at a
// time. If any statement fails, block.Attr is reset to nil -- block was
// never resolved before this call, so nil is exactly its prior state --
// and the error propagates.
func (r *resolver) resolveBlock(block *ast.Block, parent *ast.Block) error {
	attr := ast.NewBlockAttr()
	attr.Parent = parent
	block.Attr = attr

	if err := r.resolveStmts(block, block.Stmts); err != nil {
		block.Attr = nil
		return err
	}
	return nil
}

// resolveStmts declares and binds block's direct statements in order,
// one at a time, so a `let`'s initializer (and anything nested inside an
// `if`/`while`/bare block before it) only ever sees names declared
// earlier in the same block -- never one declared later.
func (r *resolver) resolveStmts(block *ast.Block, stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if decl, ok := stmt.(*ast.DeclareList); ok {
			if err := r.declareAndBind(decl, block); err != nil {
				return err
			}
			continue
		}
		if err := r.bindStmt(stmt, block); err != nil {
			return err
		}
	}
	return nil
}

// declareAndBind declares each of decl's items against block's Attr and
// binds that item's own initializer before moving to the next item,
// matching the original implementation's visit_declare_list: a later
// item in the same `let` can see an earlier one, but never the reverse.
func (r *resolver) declareAndBind(decl *ast.DeclareList, block *ast.Block) error {
	attr := block.Attr
	decl.StartIndex = len(attr.LocalInfo)
	for _, item := range decl.Items {
		if _, dup := attr.NameToLocalIndex[item.Name]; dup {
			return errors.New(errors.DuplicatedLocalName, decl.Pos(),
				"%q is already declared in this block", item.Name)
		}
		attr.DeclareLocal(item.Name)
		if item.Init != nil {
			if err := r.bindExpr(item.Init, block); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *resolver) bindStmt(stmt ast.Stmt, block *ast.Block) error {
	switch s := stmt.(type) {
	case *ast.Condition:
		if err := r.bindExpr(s.Cond, block); err != nil {
			return err
		}
		if err := r.resolveBlock(s.Then, block); err != nil {
			return err
		}
		if s.Else != nil {
			return r.bindStmt(s.Else, block)
		}
	case *ast.While:
		if err := r.bindExpr(s.Cond, block); err != nil {
			return err
		}
		return r.resolveBlock(s.Body, block)
	case *ast.Return:
		if s.Value != nil {
			return r.bindExpr(s.Value, block)
		}
	case *ast.ExprStmt:
		return r.bindExpr(s.X, block)
	case *ast.Block:
		return r.resolveBlock(s, block)
	case *ast.Break, *ast.Continue, *ast.Empty:
		// no children
	}
	return nil
}

func (r *resolver) bindExpr(expr ast.Expr, block *ast.Block) error {
	switch e := expr.(type) {
	case *ast.Var:
		return r.bindVar(e, block)
	case *ast.Op:
		for _, a := range e.Args {
			if err := r.bindExpr(a, block); err != nil {
				return err
			}
		}
	case *ast.ListLit:
		for _, item := range e.Items {
			if err := r.bindExpr(item, block); err != nil {
				return err
			}
		}
	case *ast.FuncLit:
		return r.bindFunc(e, block)
	case *ast.BoolLit, *ast.IntLit, *ast.FloatLit, *ast.StringLit, *ast.NullLit:
		// leaves
	}
	return nil
}

// bindFunc builds the body block's scope with the parameter list as its
// first locals, then resolves default-argument expressions against that
// same scope (falling back to outer, via the parent chain, for any name
// a default doesn't find among the parameters). This departs from a
// literal reading of §4.3's "resolve defaults in the outer scope" in
// order to honor §4.5/§9's runtime contract that a default may reference
// an earlier parameter by name ("function(a, b=a+1)"): evaluating the
// default in the callee's new frame only produces the right value if
// the resolver bound that name to a slot in that same frame. All
// parameters are declared before any default is bound, so a default may
// see any other parameter regardless of declaration order -- only the
// body's own `let`s, resolved afterward via resolveStmts, are subject to
// the declare-as-you-go forward-reference rule.
func (r *resolver) bindFunc(fn *ast.FuncLit, outer *ast.Block) error {
	attr := ast.NewBlockAttr()
	attr.Parent = outer
	for _, p := range fn.Params {
		if _, dup := attr.NameToLocalIndex[p.Name]; dup {
			return errors.New(errors.DuplicatedLocalName, fn.Pos(),
				"duplicate parameter name %q", p.Name)
		}
		attr.DeclareLocal(p.Name)
	}
	fn.Body.Attr = attr

	for _, p := range fn.Params {
		if p.Default == nil {
			continue
		}
		if err := r.bindExpr(p.Default, fn.Body); err != nil {
			fn.Body.Attr = nil
			return err
		}
	}

	if err := r.resolveStmts(fn.Body, fn.Body.Stmts); err != nil {
		fn.Body.Attr = nil
		return err
	}
	return nil
}

// bindVar resolves v against block's local table, then the enclosing
// chain, recording a new nonlocal slot on the way back down if the
// binding is found above block.
func (r *resolver) bindVar(v *ast.Var, block *ast.Block) error {
	if idx, ok := block.Attr.NameToLocalIndex[v.Name]; ok {
		v.Attr = &ast.VarAttr{IsLocal: true, Index: idx}
		return nil
	}
	if idx, ok := block.Attr.NameToNonlocalIndex[v.Name]; ok {
		v.Attr = &ast.VarAttr{IsLocal: false, Index: idx}
		return nil
	}

	owner, slot, err := resolveFromBlock(block.Attr.Parent, v.Name)
	if err != nil {
		return errors.New(errors.NoSuchName, v.Pos(), "no such name %q", v.Name)
	}

	idx := block.Attr.DeclareNonlocal(v.Name, owner, slot)
	v.Attr = &ast.VarAttr{IsLocal: false, Index: idx}
	return nil
}

// resolveFromBlock walks the parent chain starting at block looking for
// name as a local, returning the owning block and the slot within its
// locals.
func resolveFromBlock(block *ast.Block, name string) (*ast.Block, int, error) {
	for b := block; b != nil; b = b.Attr.Parent {
		if idx, ok := b.Attr.NameToLocalIndex[name]; ok {
			return b, idx, nil
		}
	}
	return nil, 0, errNoSuchName
}

var errNoSuchName = errors.NewSpanless(errors.NoSuchName, "no such name")
