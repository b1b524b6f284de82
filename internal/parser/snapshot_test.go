package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/anish1234567/jiaobenscript/internal/ast"
	"github.com/anish1234567/jiaobenscript/internal/lexer"
)

// astDump renders an AST as an indented tree, independent of
// cmd/jbscript's own dumpAST so a change to the CLI's pretty-printer
// can't silently mask a parser regression in these snapshots.
func astDump(node ast.Node, indent int, sb *strings.Builder) {
	pad := strings.Repeat("  ", indent)
	switch n := node.(type) {
	case *ast.Block:
		fmt.Fprintf(sb, "%sBlock\n", pad)
		for _, s := range n.Stmts {
			astDump(s, indent+1, sb)
		}
	case *ast.DeclareList:
		fmt.Fprintf(sb, "%sDeclareList\n", pad)
		for _, item := range n.Items {
			fmt.Fprintf(sb, "%s  %s\n", pad, item.Name)
			if item.Init != nil {
				astDump(item.Init, indent+2, sb)
			}
		}
	case *ast.Condition:
		fmt.Fprintf(sb, "%sCondition\n", pad)
		astDump(n.Cond, indent+1, sb)
		astDump(n.Then, indent+1, sb)
		if n.Else != nil {
			astDump(n.Else, indent+1, sb)
		}
	case *ast.While:
		fmt.Fprintf(sb, "%sWhile\n", pad)
		astDump(n.Cond, indent+1, sb)
		astDump(n.Body, indent+1, sb)
	case *ast.Return:
		fmt.Fprintf(sb, "%sReturn\n", pad)
		if n.Value != nil {
			astDump(n.Value, indent+1, sb)
		}
	case *ast.Break:
		fmt.Fprintf(sb, "%sBreak\n", pad)
	case *ast.Continue:
		fmt.Fprintf(sb, "%sContinue\n", pad)
	case *ast.ExprStmt:
		fmt.Fprintf(sb, "%sExprStmt(implicit=%v)\n", pad, n.Implicit)
		astDump(n.X, indent+1, sb)
	case *ast.Empty:
		fmt.Fprintf(sb, "%sEmpty\n", pad)
	case *ast.Op:
		fmt.Fprintf(sb, "%sOp(%s)\n", pad, n.Code)
		for _, a := range n.Args {
			astDump(a, indent+1, sb)
		}
	case *ast.Var:
		fmt.Fprintf(sb, "%sVar(%s)\n", pad, n.Name)
	case *ast.FuncLit:
		names := make([]string, len(n.Params))
		for i, p := range n.Params {
			names[i] = p.Name
		}
		fmt.Fprintf(sb, "%sFuncLit%v\n", pad, names)
		astDump(n.Body, indent+1, sb)
	case *ast.BoolLit:
		fmt.Fprintf(sb, "%sBoolLit(%v)\n", pad, n.Value)
	case *ast.IntLit:
		fmt.Fprintf(sb, "%sIntLit(%d)\n", pad, n.Value)
	case *ast.FloatLit:
		fmt.Fprintf(sb, "%sFloatLit(%g)\n", pad, n.Value)
	case *ast.StringLit:
		fmt.Fprintf(sb, "%sStringLit(%q)\n", pad, n.Value)
	case *ast.ListLit:
		fmt.Fprintf(sb, "%sListLit\n", pad)
		for _, item := range n.Items {
			astDump(item, indent+1, sb)
		}
	case *ast.NullLit:
		fmt.Fprintf(sb, "%sNullLit\n", pad)
	default:
		fmt.Fprintf(sb, "%s%T\n", pad, node)
	}
}

func mustParseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, err := lexer.TokenizeAll([]rune(src))
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	prog, err := ParseProgram(toks)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return prog
}

// TestParserSnapshots exercises every grammar shape of spec.md §4.2 --
// the full precedence cascade, if/else-if chains, while/break/continue,
// function literals with defaults, and list/subscript/call postfix
// chains -- and snapshots the resulting AST shape, the way the teacher's
// own fixture suite snapshots its parser's output per test case.
func TestParserSnapshots(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"precedence_cascade", `1 + 2 * 3 - 4 / 2 % 2 < 5 && 1 == 1 || false;`},
		{"assignment_chain", `let a = 1; a = a += 2;`},
		{"if_else_if_chain", `if (a) { 1; } else if (b) { 2; } else { 3; }`},
		{"while_break_continue", `while (x < 10) { if (x == 5) { break; } continue; }`},
		{"func_with_defaults", `let f = function(a, b = a + 1, c = 0) { return a + b + c; };`},
		{"call_and_subscript_chain", `f(1, 2)[0](3);`},
		{"list_literal", `let xs = [1, "two", [3, 4], null, true];`},
		{"comma_explist", `let a = (1, 2, 3);`},
		{"unary_prefix_nesting", `let a = -!x; let b = !-x;`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prog := mustParseProgram(t, tc.src)
			var sb strings.Builder
			astDump(prog, 0, &sb)
			snaps.MatchSnapshot(t, sb.String())
		})
	}
}
