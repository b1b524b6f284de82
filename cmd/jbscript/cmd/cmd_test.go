package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// runCLI executes the root command with args (excluding the program
// name) and captures everything written to stdout/stderr, plus the exit
// code Execute would hand to os.Exit -- the in-process analogue of the
// teacher's build-a-binary-and-exec CLI tests, avoiding a subprocess
// since every subcommand here is already reachable in the test binary.
func runCLI(t *testing.T, args []string) (stdout, stderr string, code int) {
	t.Helper()

	origArgs := os.Args
	origOut, origErr := os.Stdout, os.Stderr
	defer func() {
		os.Args = origArgs
		os.Stdout, os.Stderr = origOut, origErr
	}()

	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout, os.Stderr = outW, errW
	os.Args = append([]string{"jbscript"}, args...)

	code = Execute()

	outW.Close()
	errW.Close()

	var outBuf, errBuf bytes.Buffer
	io.Copy(&outBuf, outR)
	io.Copy(&errBuf, errR)

	return outBuf.String(), errBuf.String(), code
}

func TestRunEvalPrintsAndExitsZero(t *testing.T) {
	out, _, code := runCLI(t, []string{"run", "-e", `let main = function(){ print(1 + 2); };`})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if out != "3\n" {
		t.Fatalf("stdout = %q, want %q", out, "3\n")
	}
}

func TestRunWithoutMainIsCompileError(t *testing.T) {
	_, stderr, code := runCLI(t, []string{"run", "-e", `print(1);`})
	if code != 4 {
		t.Fatalf("exit code = %d, want 4 (compile error)", code)
	}
	if !strings.Contains(stderr, "NoSuchName") {
		t.Fatalf("stderr = %q, want it to mention NoSuchName", stderr)
	}
}

func TestRunRuntimeErrorExitsFive(t *testing.T) {
	_, _, code := runCLI(t, []string{"run", "-e", `let main = function(){ return 1 / 0; };`})
	if code != 5 {
		t.Fatalf("exit code = %d, want 5 (runtime error)", code)
	}
}

func TestRunParserErrorExitsThree(t *testing.T) {
	_, _, code := runCLI(t, []string{"run", "-e", `let main = function( {`})
	if code != 3 {
		t.Fatalf("exit code = %d, want 3 (parser error)", code)
	}
}

func TestRunDumpASTIncludesFuncLit(t *testing.T) {
	out, _, code := runCLI(t, []string{"run", "--dump-ast", "-e", `let main = function(){ print(1); };`})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out, "FuncLit") {
		t.Fatalf("stdout = %q, want it to contain the dumped AST", out)
	}
}

func TestLexPrintsTokenStream(t *testing.T) {
	out, _, code := runCLI(t, []string{"lex", "-e", "let x = 1;"})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{"let", "IDENT(x)", "INT(1)", ";", "END"} {
		if !strings.Contains(out, want) {
			t.Fatalf("lex output %q missing %q", out, want)
		}
	}
}

func TestParsePrintsBlock(t *testing.T) {
	out, _, code := runCLI(t, []string{"parse", "-e", "let x = 1;"})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out, "DeclareList") {
		t.Fatalf("parse output %q missing DeclareList", out)
	}
}

func TestVersionPrintsVersionString(t *testing.T) {
	out, _, code := runCLI(t, []string{"version"})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out, Version) {
		t.Fatalf("version output %q missing %q", out, Version)
	}
}

func TestReplEchoesTrailingExpression(t *testing.T) {
	stdin, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	origStdin := os.Stdin
	os.Stdin = stdin
	defer func() { os.Stdin = origStdin }()

	go func() {
		io.WriteString(w, "let a = 1;\n")
		io.WriteString(w, "a + 2\n")
		w.Close()
	}()

	out, _, code := runCLI(t, []string{"repl"})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out, "Out[2]: 3") {
		t.Fatalf("repl output %q missing Out[2]: 3", out)
	}
}
