package cmd

import (
	"strings"
	"testing"
)

func TestRunParsePrintsImportAndDeclarationSummary(t *testing.T) {
	out, _, restore := captureCmdOutput(t)
	defer restore()

	source := "import foo.bar\n\ndefine add(a: Int, b: Int) -> Int\n  expect a >= 0\ngiven\n  a + b\n"
	path := writeTempSource(t, source)
	if err := runParse(nil, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Imports: 1",
		"  - foo.bar",
		"Declarations: 1",
		"define add(a, b) -> Int",
		"    preconditions: 1",
		"    postconditions: 0",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRunParseTypeDeclarationSummary(t *testing.T) {
	out, _, restore := captureCmdOutput(t)
	defer restore()

	path := writeTempSource(t, "type Positive = Int\n  invariant value > 0\n")
	if err := runParse(nil, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "type Positive (1 invariants)") {
		t.Fatalf("expected a type-declaration summary line, got:\n%s", out.String())
	}
}

func TestRunParseReportsParseError(t *testing.T) {
	_, errOut, restore := captureCmdOutput(t)
	defer restore()

	path := writeTempSource(t, "42\n")
	if err := runParse(nil, []string{path}); err == nil {
		t.Fatalf("expected a parse error")
	}
	if !strings.Contains(errOut.String(), "Error:") {
		t.Fatalf("expected an 'Error:' message on stderr, got:\n%s", errOut.String())
	}
}
