package resolver

import (
	"github.com/anish1234567/jiaobenscript/internal/ast"
	"github.com/anish1234567/jiaobenscript/internal/errors"
)

// checkControlFlow implements spec.md §4.4: a single traversal carrying
// insideLoop/insideFunc flags, entering a While sets insideLoop (leaving
// insideFunc as-is), entering a function body resets both.
func checkControlFlow(block *ast.Block, insideLoop, insideFunc bool) error {
	for _, stmt := range block.Stmts {
		if err := checkStmt(stmt, insideLoop, insideFunc); err != nil {
			return err
		}
	}
	return nil
}

func checkStmt(stmt ast.Stmt, insideLoop, insideFunc bool) error {
	switch s := stmt.(type) {
	case *ast.Block:
		return checkControlFlow(s, insideLoop, insideFunc)
	case *ast.DeclareList:
		for _, item := range s.Items {
			if item.Init != nil {
				if err := checkExpr(item.Init, insideLoop, insideFunc); err != nil {
					return err
				}
			}
		}
	case *ast.Condition:
		if err := checkExpr(s.Cond, insideLoop, insideFunc); err != nil {
			return err
		}
		if err := checkControlFlow(s.Then, insideLoop, insideFunc); err != nil {
			return err
		}
		if s.Else != nil {
			return checkStmt(s.Else, insideLoop, insideFunc)
		}
	case *ast.While:
		if err := checkExpr(s.Cond, insideLoop, insideFunc); err != nil {
			return err
		}
		return checkControlFlow(s.Body, true, insideFunc)
	case *ast.Return:
		if !insideFunc {
			return errors.New(errors.BadReturn, s.Pos(), "return outside of a function")
		}
		if s.Value != nil {
			return checkExpr(s.Value, insideLoop, insideFunc)
		}
	case *ast.Break:
		if !insideLoop {
			return errors.New(errors.BadBreak, s.Pos(), "break outside of a loop")
		}
	case *ast.Continue:
		if !insideLoop {
			return errors.New(errors.BadContinue, s.Pos(), "continue outside of a loop")
		}
	case *ast.ExprStmt:
		return checkExpr(s.X, insideLoop, insideFunc)
	case *ast.Empty:
		// no-op
	}
	return nil
}

func checkExpr(expr ast.Expr, insideLoop, insideFunc bool) error {
	switch e := expr.(type) {
	case *ast.Op:
		for _, a := range e.Args {
			if err := checkExpr(a, insideLoop, insideFunc); err != nil {
				return err
			}
		}
	case *ast.ListLit:
		for _, item := range e.Items {
			if err := checkExpr(item, insideLoop, insideFunc); err != nil {
				return err
			}
		}
	case *ast.FuncLit:
		for _, p := range e.Params {
			if p.Default != nil {
				if err := checkExpr(p.Default, insideLoop, insideFunc); err != nil {
					return err
				}
			}
		}
		return checkControlFlow(e.Body, false, true)
	}
	return nil
}
