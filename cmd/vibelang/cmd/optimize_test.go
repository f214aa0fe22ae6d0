package cmd

import (
	"strings"
	"testing"
)

func TestRunOptimizePrintsOptimizedSourceAndCount(t *testing.T) {
	out, errOut, restore := captureCmdOutput(t)
	defer restore()

	path := writeTempSource(t, "define f() -> Int\ngiven\n  1 + 2\n")
	if err := runOptimize(nil, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "3") {
		t.Fatalf("expected the folded constant 3 in the optimized program, got:\n%s", out.String())
	}
	if !strings.Contains(errOut.String(), "optimizations applied: 1") {
		t.Fatalf("expected the optimization count on stderr, got:\n%s", errOut.String())
	}
}
