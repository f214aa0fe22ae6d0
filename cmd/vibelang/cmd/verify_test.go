package cmd

import (
	"strings"
	"testing"
)

func TestRunVerifyPrintsProvenGlyph(t *testing.T) {
	out, _, restore := captureCmdOutput(t)
	defer restore()

	path := writeTempSource(t, "define f() -> Int\n  expect true\ngiven\n  0\n")
	if err := runVerify(nil, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "✓") {
		t.Fatalf("expected a proven glyph, got:\n%s", out.String())
	}
}

func TestRunVerifyFailsOnViolatedContract(t *testing.T) {
	out, _, restore := captureCmdOutput(t)
	defer restore()

	path := writeTempSource(t, "define f() -> Int\n  expect false\ngiven\n  0\n")
	err := runVerify(nil, []string{path})
	if err == nil {
		t.Fatalf("expected a non-nil error when a contract is violated")
	}
	if !strings.Contains(out.String(), "✗") {
		t.Fatalf("expected a violated glyph, got:\n%s", out.String())
	}
}
