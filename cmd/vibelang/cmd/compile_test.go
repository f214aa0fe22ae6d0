package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCompilePrintsGeneratedSourceToStdout(t *testing.T) {
	out, _, restore := captureCmdOutput(t)
	defer restore()
	compileOutputFile = ""

	path := writeTempSource(t, "define f() -> Int\ngiven\n  0\n")
	if err := runCompile(nil, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "class _VL_Success:") {
		t.Fatalf("expected the generated runtime preamble on stdout, got:\n%s", out.String())
	}
}

func TestRunCompileWritesToOutputFile(t *testing.T) {
	_, _, restore := captureCmdOutput(t)
	defer restore()

	outPath := filepath.Join(t.TempDir(), "out.py")
	compileOutputFile = outPath
	defer func() { compileOutputFile = "" }()

	path := writeTempSource(t, "define f() -> Int\ngiven\n  0\n")
	if err := runCompile(nil, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("expected the output file to be written: %v", err)
	}
	if !strings.Contains(string(content), "def f():") {
		t.Fatalf("expected generated Python in the output file, got:\n%s", content)
	}
}

func TestRunCompileFailsOnTypeError(t *testing.T) {
	_, _, restore := captureCmdOutput(t)
	defer restore()
	compileOutputFile = ""

	path := writeTempSource(t, "define f() -> Int\ngiven\n  true\n")
	if err := runCompile(nil, []string{path}); err == nil {
		t.Fatalf("expected compilation to fail on a type error")
	}
}
