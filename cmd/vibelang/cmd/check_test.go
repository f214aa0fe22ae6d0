package cmd

import (
	"strings"
	"testing"
)

func TestRunCheckReportsOKForWellTypedProgram(t *testing.T) {
	out, _, restore := captureCmdOutput(t)
	defer restore()

	path := writeTempSource(t, "define add(a: Int, b: Int) -> Int\ngiven\n  a + b\n")
	if err := runCheck(nil, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "OK: no type errors") {
		t.Fatalf("expected the OK message, got:\n%s", out.String())
	}
}

func TestRunCheckReportsTypeErrorsAndFails(t *testing.T) {
	_, errOut, restore := captureCmdOutput(t)
	defer restore()

	path := writeTempSource(t, "define f() -> Int\ngiven\n  true\n")
	err := runCheck(nil, []string{path})
	if err == nil {
		t.Fatalf("expected a non-nil error for a type mismatch")
	}
	if errOut.Len() == 0 {
		t.Fatalf("expected diagnostics written to stderr")
	}
}
