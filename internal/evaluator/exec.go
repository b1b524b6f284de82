package evaluator

import (
	"github.com/anish1234567/jiaobenscript/internal/ast"
	"github.com/anish1234567/jiaobenscript/internal/values"
)

// execStmt dispatches one statement against frame, the "statement
// dispatch mirrors AST variants" rule of spec.md §4.5.
func (e *Evaluator) execStmt(frame *values.Frame, stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Block:
		return e.execBlock(frame, s)
	case *ast.DeclareList:
		return e.execDeclareList(frame, s)
	case *ast.Condition:
		return e.execCondition(frame, s)
	case *ast.While:
		return e.execWhile(frame, s)
	case *ast.Return:
		return e.execReturn(frame, s)
	case *ast.Break:
		e.sig = &signal{kind: sigBreak}
		return nil
	case *ast.Continue:
		e.sig = &signal{kind: sigContinue}
		return nil
	case *ast.ExprStmt:
		_, err := e.evalExpr(frame, s.X)
		return err
	case *ast.Empty:
		return nil
	}
	return nil
}

// execBlock creates a fresh frame sized to block's local count, parent
// = the enclosing frame, and runs its statements in order.
func (e *Evaluator) execBlock(parent *values.Frame, block *ast.Block) error {
	return e.execStmts(values.NewFrame(block, parent), block.Stmts)
}

// execStmts runs stmts in order against frame, stopping as soon as a
// control signal is pending so it can unwind to whichever caller is
// positioned to catch it.
func (e *Evaluator) execStmts(frame *values.Frame, stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := e.execStmt(frame, stmt); err != nil {
			return err
		}
		if e.sig != nil {
			return nil
		}
	}
	return nil
}

// execDeclareList evaluates each item's initializer (if present) and
// stores it into the slot the resolver assigned; an item with no
// initializer leaves its slot unbound.
func (e *Evaluator) execDeclareList(frame *values.Frame, decl *ast.DeclareList) error {
	for i, item := range decl.Items {
		if item.Init == nil {
			continue
		}
		v, err := e.evalExpr(frame, item.Init)
		if err != nil {
			return err
		}
		frame.Vars[decl.StartIndex+i] = v
	}
	return nil
}

func (e *Evaluator) execCondition(frame *values.Frame, c *ast.Condition) error {
	cond, err := e.evalExpr(frame, c.Cond)
	if err != nil {
		return err
	}
	if cond.Truthy() {
		return e.execBlock(frame, c.Then)
	}
	if c.Else != nil {
		return e.execStmt(frame, c.Else)
	}
	return nil
}

// execWhile repeats the body in a fresh frame each iteration, catching
// Break/Continue here and letting Return propagate past it unchanged.
func (e *Evaluator) execWhile(frame *values.Frame, w *ast.While) error {
	for {
		cond, err := e.evalExpr(frame, w.Cond)
		if err != nil {
			return err
		}
		if !cond.Truthy() {
			return nil
		}
		if err := e.execBlock(frame, w.Body); err != nil {
			return err
		}
		if e.sig == nil {
			continue
		}
		switch e.sig.kind {
		case sigBreak:
			e.sig = nil
			return nil
		case sigContinue:
			e.sig = nil
			continue
		default: // sigReturn: not ours to catch
			return nil
		}
	}
}

func (e *Evaluator) execReturn(frame *values.Frame, r *ast.Return) error {
	value := values.Value(values.Null{})
	if r.Value != nil {
		v, err := e.evalExpr(frame, r.Value)
		if err != nil {
			return err
		}
		value = v
	}
	e.sig = &signal{kind: sigReturn, value: value}
	return nil
}
