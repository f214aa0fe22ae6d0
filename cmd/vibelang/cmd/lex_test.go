package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"os"
)

func writeTempSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.vbl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp source: %v", err)
	}
	return path
}

func captureCmdOutput(t *testing.T) (out, errOut *bytes.Buffer, restore func()) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	oldOut, oldErr := cmdOut, cmdErr
	cmdOut, cmdErr = &outBuf, &errBuf
	return &outBuf, &errBuf, func() { cmdOut, cmdErr = oldOut, oldErr }
}

func TestRunLexPrintsOneLinePerToken(t *testing.T) {
	out, _, restore := captureCmdOutput(t)
	defer restore()

	path := writeTempSource(t, "define f() -> Int\ngiven\n  0\n")
	if err := runLex(nil, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "1:1  define ") {
		t.Fatalf("expected token lines with position and type, got:\n%s", out.String())
	}
}

func TestRunLexReportsLexError(t *testing.T) {
	_, errOut, restore := captureCmdOutput(t)
	defer restore()

	path := writeTempSource(t, "define f() -> Int\ngiven\n\t0\n")
	if err := runLex(nil, []string{path}); err == nil {
		t.Fatalf("expected a lex error for a tab-indented line")
	}
	if !strings.Contains(errOut.String(), "Lex error") {
		t.Fatalf("expected a 'Lex error' message on stderr, got:\n%s", errOut.String())
	}
}

func TestRunLexReportsMissingFile(t *testing.T) {
	if err := runLex(nil, []string{filepath.Join(t.TempDir(), "missing.vbl")}); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
