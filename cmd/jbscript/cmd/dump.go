package cmd

import (
	"fmt"

	"github.com/anish1234567/jiaobenscript/internal/ast"
)

// dumpAST prints node and its children as an indented tree, grounded on
// go-dws's cmd/dwscript/cmd/parse.go dumpASTNode: one case per concrete
// AST variant, falling back to a generic %T/%v line for anything it
// doesn't recognize.
func dumpAST(node ast.Node, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}

	switch n := node.(type) {
	case *ast.Block:
		fmt.Printf("%sBlock (%d statements)\n", pad, len(n.Stmts))
		for _, s := range n.Stmts {
			dumpAST(s, indent+1)
		}
	case *ast.DeclareList:
		fmt.Printf("%sDeclareList\n", pad)
		for _, item := range n.Items {
			fmt.Printf("%s  %s\n", pad, item.Name)
			if item.Init != nil {
				dumpAST(item.Init, indent+2)
			}
		}
	case *ast.Condition:
		fmt.Printf("%sCondition\n", pad)
		fmt.Printf("%s  Cond:\n", pad)
		dumpAST(n.Cond, indent+2)
		fmt.Printf("%s  Then:\n", pad)
		dumpAST(n.Then, indent+2)
		if n.Else != nil {
			fmt.Printf("%s  Else:\n", pad)
			dumpAST(n.Else, indent+2)
		}
	case *ast.While:
		fmt.Printf("%sWhile\n", pad)
		fmt.Printf("%s  Cond:\n", pad)
		dumpAST(n.Cond, indent+2)
		fmt.Printf("%s  Body:\n", pad)
		dumpAST(n.Body, indent+2)
	case *ast.Return:
		fmt.Printf("%sReturn\n", pad)
		if n.Value != nil {
			dumpAST(n.Value, indent+1)
		}
	case *ast.Break:
		fmt.Printf("%sBreak\n", pad)
	case *ast.Continue:
		fmt.Printf("%sContinue\n", pad)
	case *ast.ExprStmt:
		fmt.Printf("%sExprStmt\n", pad)
		dumpAST(n.X, indent+1)
	case *ast.Empty:
		fmt.Printf("%sEmpty\n", pad)
	case *ast.Op:
		fmt.Printf("%sOp (%s)\n", pad, n.Code)
		for _, a := range n.Args {
			dumpAST(a, indent+1)
		}
	case *ast.Var:
		fmt.Printf("%sVar: %s\n", pad, n.Name)
	case *ast.FuncLit:
		names := make([]string, len(n.Params))
		for i, p := range n.Params {
			names[i] = p.Name
		}
		fmt.Printf("%sFuncLit %v\n", pad, names)
		dumpAST(n.Body, indent+1)
	case *ast.BoolLit:
		fmt.Printf("%sBoolLit: %v\n", pad, n.Value)
	case *ast.IntLit:
		fmt.Printf("%sIntLit: %d\n", pad, n.Value)
	case *ast.FloatLit:
		fmt.Printf("%sFloatLit: %g\n", pad, n.Value)
	case *ast.StringLit:
		fmt.Printf("%sStringLit: %q\n", pad, n.Value)
	case *ast.ListLit:
		fmt.Printf("%sListLit (%d items)\n", pad, len(n.Items))
		for _, item := range n.Items {
			dumpAST(item, indent+1)
		}
	case *ast.NullLit:
		fmt.Printf("%sNullLit\n", pad)
	default:
		fmt.Printf("%s%T: %v\n", pad, node, node)
	}
}
