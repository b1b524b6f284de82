package evaluator

import (
	"bytes"
	"testing"

	"github.com/anish1234567/jiaobenscript/internal/ast"
	"github.com/anish1234567/jiaobenscript/internal/lexer"
	"github.com/anish1234567/jiaobenscript/internal/parser"
	"github.com/anish1234567/jiaobenscript/internal/values"
)

// run parses src as a full program and executes it against a fresh
// Evaluator with the default builtin table, returning whatever "print"
// wrote.
func run(t *testing.T, src string) string {
	t.Helper()
	toks, err := lexer.TokenizeAll([]rune(src))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	program, err := parser.ParseProgram(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	ev := New()
	ev.SetDefaultBuiltinTable(&out)
	if err := ev.EvalIncompleteRawBlock(program); err != nil {
		t.Fatalf("eval: %v", err)
	}
	return out.String()
}

// evalExprValue parses src as a single trailing expression (REPL style)
// and returns its value.
func evalExprValue(t *testing.T, src string) values.Value {
	t.Helper()
	toks, err := lexer.TokenizeAll([]rune(src))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	entry, err := parser.ParseREPLEntry(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ev := New()
	ev.SetDefaultBuiltinTable(&bytes.Buffer{})
	if err := ev.EvalIncompleteRawBlock(entry.Program); err != nil {
		t.Fatalf("eval program: %v", err)
	}
	if entry.Trailing == nil {
		t.Fatalf("expected a trailing expression in %q", src)
	}
	v, err := ev.EvalRawExp(entry.Trailing)
	if err != nil {
		t.Fatalf("eval trailing expr: %v", err)
	}
	return v
}

func mustInt(t *testing.T, v values.Value, want int64) {
	t.Helper()
	i, ok := v.(values.Int)
	if !ok || i.Value != want {
		t.Fatalf("got %#v, want Int(%d)", v, want)
	}
}

func TestArithmeticPrecedence(t *testing.T) {
	mustInt(t, evalExprValue(t, "1 + 2 * 3"), 7)
}

func TestCompoundAssignment(t *testing.T) {
	mustInt(t, evalExprValue(t, "let a = 1; a += 2; a"), 3)
}

func TestRecursiveFunction(t *testing.T) {
	src := `let f = function(n){ if (n == 0) { return 1; } return n * f(n - 1); }; f(5)`
	mustInt(t, evalExprValue(t, src), 120)
}

func TestClosureCapturesMutableState(t *testing.T) {
	src := `let make = function(){ let x = 0; return function(){ x += 1; return x; }; }; let c = make(); c(); c(); c()`
	mustInt(t, evalExprValue(t, src), 3)
}

func TestListIndexAssignment(t *testing.T) {
	v := evalExprValue(t, "let L = [1,2,3]; L[1] = 9; L")
	list, ok := v.(*values.List)
	if !ok {
		t.Fatalf("got %#v, want *List", v)
	}
	mustInt(t, list.Items[0], 1)
	mustInt(t, list.Items[1], 9)
	mustInt(t, list.Items[2], 3)
}

func TestStringAndListOperators(t *testing.T) {
	if v := evalExprValue(t, `"ab" + "cd"`); v.(values.String).Value != "abcd" {
		t.Fatalf("got %#v", v)
	}
	concat := evalExprValue(t, "[1]+[2,3]").(*values.List)
	if len(concat.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(concat.Items))
	}
	repeat := evalExprValue(t, "[0]*3").(*values.List)
	if len(repeat.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(repeat.Items))
	}
	for _, item := range repeat.Items {
		mustInt(t, item, 0)
	}
}

func TestShortCircuitAndDoesNotCallRight(t *testing.T) {
	src := `let calls = 0; let bump = function(){ calls += 1; return true; }; let r = false && bump(); calls`
	mustInt(t, evalExprValue(t, src), 0)
}

func TestShortCircuitOrDoesNotCallRight(t *testing.T) {
	src := `let calls = 0; let bump = function(){ calls += 1; return true; }; let r = true || bump(); calls`
	mustInt(t, evalExprValue(t, src), 0)
}

func TestListMutationAliasing(t *testing.T) {
	src := `let a = [1,2]; let b = a; b[0] = 99; a[0]`
	mustInt(t, evalExprValue(t, src), 99)
}

func TestDefaultArgumentSeesEarlierParameter(t *testing.T) {
	src := `let f = function(a, b = a + 1){ return b; }; f(10)`
	mustInt(t, evalExprValue(t, src), 11)
}

func TestTooManyArgumentsIsError(t *testing.T) {
	toks, err := lexer.TokenizeAll([]rune("function(){}(1)"))
	if err != nil {
		t.Fatal(err)
	}
	entry, err := parser.ParseREPLEntry(toks)
	if err != nil {
		t.Fatal(err)
	}
	ev := New()
	ev.SetDefaultBuiltinTable(&bytes.Buffer{})
	if err := ev.EvalIncompleteRawBlock(entry.Program); err != nil {
		t.Fatal(err)
	}
	if _, err := ev.EvalRawExp(entry.Trailing); err == nil {
		t.Fatal("expected a \"too many args\" error")
	}
}

func TestDivisionByZeroIsError(t *testing.T) {
	_, err := evalExprValueOrErr(t, "1 / 0")
	if err == nil {
		t.Fatal("expected a zero-division error")
	}
}

func TestIndexOutOfRangeIsError(t *testing.T) {
	_, err := evalExprValueOrErr(t, "[1,2][5]")
	if err == nil {
		t.Fatal("expected an index error")
	}
}

func evalExprValueOrErr(t *testing.T, src string) (values.Value, error) {
	t.Helper()
	toks, err := lexer.TokenizeAll([]rune(src))
	if err != nil {
		return nil, err
	}
	entry, err := parser.ParseREPLEntry(toks)
	if err != nil {
		return nil, err
	}
	ev := New()
	ev.SetDefaultBuiltinTable(&bytes.Buffer{})
	if err := ev.EvalIncompleteRawBlock(entry.Program); err != nil {
		return nil, err
	}
	return ev.EvalRawExp(entry.Trailing)
}

func TestPrintWritesToInstalledWriter(t *testing.T) {
	got := run(t, `print("hello", 42);`)
	if got != "hello 42\n" {
		t.Fatalf("got %q", got)
	}
}

func TestReplIncrementalDeclAndStmt(t *testing.T) {
	var out bytes.Buffer
	ev := New()
	ev.SetDefaultBuiltinTable(&out)

	toks, err := lexer.TokenizeAll([]rune("let x = 1;"))
	if err != nil {
		t.Fatal(err)
	}
	entry, err := parser.ParseREPLEntry(toks)
	if err != nil {
		t.Fatal(err)
	}
	if err := ev.EvalIncompleteRawBlock(entry.Program); err != nil {
		t.Fatal(err)
	}

	decl := ast.NewDeclareList(entry.Program.Pos(), []ast.DeclItem{
		{Name: "y", Init: ast.NewOp(entry.Program.Pos(), ast.OpAdd,
			ast.NewVar(entry.Program.Pos(), "x"),
			&ast.IntLit{Value: 1})},
	})
	if err := ev.EvalRawDeclList(decl); err != nil {
		t.Fatalf("eval incremental decl: %v", err)
	}

	yTok, err := lexer.TokenizeAll([]rune("y;"))
	if err != nil {
		t.Fatal(err)
	}
	yEntry, err := parser.ParseREPLEntry(yTok)
	if err != nil {
		t.Fatal(err)
	}
	if err := ev.EvalRawStmt(yEntry.Program.Stmts[0]); err != nil {
		t.Fatalf("eval incremental stmt: %v", err)
	}

	exprToks, err := lexer.TokenizeAll([]rune("y"))
	if err != nil {
		t.Fatal(err)
	}
	exprEntry, err := parser.ParseREPLEntry(exprToks)
	if err != nil {
		t.Fatal(err)
	}
	v, err := ev.EvalRawExp(exprEntry.Trailing)
	if err != nil {
		t.Fatalf("eval incremental expr: %v", err)
	}
	mustInt(t, v, 2)
}

// TestReplFailedDeclDoesNotCorruptRootFrame guards against a resolver
// bug where a `let` whose initializer fails to resolve still grew the
// root block's LocalInfo without growing the root frame's Vars to
// match, so the *next* successful `let` computed a StartIndex past the
// end of Vars and panicked on a perfectly valid statement.
func TestReplFailedDeclDoesNotCorruptRootFrame(t *testing.T) {
	var out bytes.Buffer
	ev := New()
	ev.SetDefaultBuiltinTable(&out)

	toks, err := lexer.TokenizeAll([]rune("let x = 1;"))
	if err != nil {
		t.Fatal(err)
	}
	entry, err := parser.ParseREPLEntry(toks)
	if err != nil {
		t.Fatal(err)
	}
	if err := ev.EvalIncompleteRawBlock(entry.Program); err != nil {
		t.Fatal(err)
	}

	badDecl := ast.NewDeclareList(entry.Program.Pos(), []ast.DeclItem{
		{Name: "y", Init: ast.NewVar(entry.Program.Pos(), "undefined_name")},
	})
	if err := ev.EvalRawDeclList(badDecl); err == nil {
		t.Fatal("expected NoSuchName error for undefined_name")
	}

	goodDecl := ast.NewDeclareList(entry.Program.Pos(), []ast.DeclItem{
		{Name: "z", Init: ast.NewVar(entry.Program.Pos(), "x")},
	})
	if err := ev.EvalRawDeclList(goodDecl); err != nil {
		t.Fatalf("eval decl after failed decl: %v", err)
	}

	zToks, err := lexer.TokenizeAll([]rune("z"))
	if err != nil {
		t.Fatal(err)
	}
	zEntry, err := parser.ParseREPLEntry(zToks)
	if err != nil {
		t.Fatal(err)
	}
	v, err := ev.EvalRawExp(zEntry.Trailing)
	if err != nil {
		t.Fatalf("eval z: %v", err)
	}
	mustInt(t, v, 1)
}
