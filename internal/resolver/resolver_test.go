package resolver

import (
	"testing"

	"github.com/anish1234567/jiaobenscript/internal/errors"
	"github.com/anish1234567/jiaobenscript/internal/lexer"
	"github.com/anish1234567/jiaobenscript/internal/parser"
)

func TestResolveLocalSlotsInOrder(t *testing.T) {
	src := `let a = 1, b = 2; let c = a + b;`
	toks, err := lexer.TokenizeAll([]rune(src))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	prog, err := parser.ParseProgram(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := Resolve(prog); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(prog.Attr.LocalInfo) != len(want) {
		t.Fatalf("LocalInfo = %v, want %v", prog.Attr.LocalInfo, want)
	}
	for i, name := range want {
		if prog.Attr.LocalInfo[i] != name {
			t.Errorf("LocalInfo[%d] = %q, want %q", i, prog.Attr.LocalInfo[i], name)
		}
	}
}

func TestResolveDuplicateLocalIsError(t *testing.T) {
	toks, _ := lexer.TokenizeAll([]rune(`let a = 1; let a = 2;`))
	prog, err := parser.ParseProgram(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	err = Resolve(prog)
	if err == nil {
		t.Fatal("expected a DuplicatedLocalName error")
	}
	jbErr, ok := err.(*errors.Error)
	if !ok || jbErr.Kind != errors.DuplicatedLocalName {
		t.Fatalf("got %v, want a DuplicatedLocalName error", err)
	}
}

func TestResolveForwardReferenceToLaterLocalIsError(t *testing.T) {
	toks, _ := lexer.TokenizeAll([]rune(`let a = b; let b = 1;`))
	prog, err := parser.ParseProgram(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	err = Resolve(prog)
	jbErr, ok := err.(*errors.Error)
	if !ok || jbErr.Kind != errors.NoSuchName {
		t.Fatalf("got %v, want a NoSuchName error for forward reference to b", err)
	}
}

func TestResolveLaterItemInSameDeclareListSeesEarlierOne(t *testing.T) {
	toks, _ := lexer.TokenizeAll([]rune(`let a = 1, b = a + 1;`))
	prog, err := parser.ParseProgram(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := Resolve(prog); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
}

func TestResolveUnknownNameIsError(t *testing.T) {
	toks, _ := lexer.TokenizeAll([]rune(`print(nosuchname);`))
	prog, err := parser.ParseProgram(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	err = Resolve(prog)
	jbErr, ok := err.(*errors.Error)
	if !ok || jbErr.Kind != errors.NoSuchName {
		t.Fatalf("got %v, want a NoSuchName error", err)
	}
}

func TestResolveClosureCapturesOuterLocal(t *testing.T) {
	toks, _ := lexer.TokenizeAll([]rune(`
		let x = 10;
		let f = function() { return x; };
	`))
	prog, err := parser.ParseProgram(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := Resolve(prog); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
}

func TestControlFlowRejectsBreakOutsideLoop(t *testing.T) {
	toks, _ := lexer.TokenizeAll([]rune(`break;`))
	prog, err := parser.ParseProgram(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	err = Resolve(prog)
	jbErr, ok := err.(*errors.Error)
	if !ok || jbErr.Kind != errors.BadBreak {
		t.Fatalf("got %v, want a BadBreak error", err)
	}
}

func TestControlFlowRejectsReturnOutsideFunction(t *testing.T) {
	toks, _ := lexer.TokenizeAll([]rune(`return 1;`))
	prog, err := parser.ParseProgram(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	err = Resolve(prog)
	jbErr, ok := err.(*errors.Error)
	if !ok || jbErr.Kind != errors.BadReturn {
		t.Fatalf("got %v, want a BadReturn error", err)
	}
}

func TestControlFlowAllowsBreakInsideLoop(t *testing.T) {
	toks, _ := lexer.TokenizeAll([]rune(`while (true) { break; }`))
	prog, err := parser.ParseProgram(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := Resolve(prog); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
}

func TestControlFlowAllowsReturnInsideFunctionInsideLoop(t *testing.T) {
	toks, _ := lexer.TokenizeAll([]rune(`
		while (true) {
			let f = function() { return 1; };
			break;
		}
	`))
	prog, err := parser.ParseProgram(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := Resolve(prog); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
}
