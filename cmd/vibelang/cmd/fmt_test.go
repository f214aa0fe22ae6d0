package cmd

import (
	"os"
	"strings"
	"testing"
)

func TestRunFmtPrintsToStdoutByDefault(t *testing.T) {
	out, _, restore := captureCmdOutput(t)
	defer restore()
	fmtWrite = false

	source := "define   f ( )  ->   Int\ngiven\n  0\n"
	path := writeTempSource(t, source)
	if err := runFmt(nil, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "define f() -> Int") {
		t.Fatalf("expected canonical formatting, got:\n%s", out.String())
	}

	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read original file: %v", err)
	}
	if string(original) != source {
		t.Fatalf("expected the source file to remain unmodified without -w")
	}
}

func TestRunFmtWritesInPlaceWithWriteFlag(t *testing.T) {
	_, _, restore := captureCmdOutput(t)
	defer restore()
	fmtWrite = true
	defer func() { fmtWrite = false }()

	path := writeTempSource(t, "define   f ( )  ->   Int\ngiven\n  0\n")
	if err := runFmt(nil, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read rewritten file: %v", err)
	}
	if !strings.Contains(string(content), "define f() -> Int") {
		t.Fatalf("expected the file to be rewritten with canonical formatting, got:\n%s", content)
	}
}
