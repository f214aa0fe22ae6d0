package verifier_test

import (
	"testing"

	"github.com/ycharfi09/VibeLang/internal/parser"
	"github.com/ycharfi09/VibeLang/internal/verifier"
)

func verifySource(t *testing.T, source string) []verifier.Result {
	t.Helper()
	program, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return verifier.Verify(program)
}

func TestVerifyTrivialPreconditionProven(t *testing.T) {
	results := verifySource(t, "define f() -> Int\n  expect true\ngiven\n  0\n")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Status != verifier.Proven {
		t.Fatalf("expected 'expect true' to be Proven, got %v", results[0].Status)
	}
	if results[0].ContractType != verifier.Precondition {
		t.Fatalf("expected a Precondition result, got %v", results[0].ContractType)
	}
}

func TestVerifyTrivialPreconditionViolated(t *testing.T) {
	results := verifySource(t, "define f() -> Int\n  expect false\ngiven\n  0\n")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Status != verifier.Violated {
		t.Fatalf("expected 'expect false' to be Violated, got %v", results[0].Status)
	}
}

func TestVerifyReflexivePostcondition(t *testing.T) {
	results := verifySource(t, "define f(x: Int) -> Int\n  ensure x >= x\ngiven\n  x\n")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Status != verifier.Proven {
		t.Fatalf("expected reflexive postcondition to be Proven, got %v", results[0].Status)
	}
}

func TestVerifyPreconditionAssumptionProvesPostcondition(t *testing.T) {
	source := "define f(x: Int) -> Int\n  expect x >= 0\n  ensure x >= -1\ngiven\n  x\n"
	results := verifySource(t, source)
	if len(results) != 2 {
		t.Fatalf("expected 2 results (1 precondition, 1 postcondition), got %d", len(results))
	}
	var post verifier.Result
	for _, r := range results {
		if r.ContractType == verifier.Postcondition {
			post = r
		}
	}
	if post.Status != verifier.Proven {
		t.Fatalf("expected 'x >= 0' to prove 'x >= -1', got %v", post.Status)
	}
}

func TestVerifyUnprovenWithoutAssumption(t *testing.T) {
	results := verifySource(t, "define f(x: Int) -> Int\n  ensure x >= 0\ngiven\n  x\n")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Status != verifier.Unproven {
		t.Fatalf("expected an unconstrained postcondition to be Unproven, got %v", results[0].Status)
	}
}

func TestVerifyAdditivePatternPostcondition(t *testing.T) {
	source := "define f(a: Int, b: Int) -> Int\n  expect b >= 0\n  ensure result >= a\ngiven\n  a + b\n"
	results := verifySource(t, source)
	var post verifier.Result
	for _, r := range results {
		if r.ContractType == verifier.Postcondition {
			post = r
		}
	}
	if post.Status != verifier.Proven {
		t.Fatalf("expected additive-pattern reasoning to prove 'result >= a', got %v", post.Status)
	}
}

func TestVerifyTypeInvariantCumulativeAssumptions(t *testing.T) {
	source := "type Range = Int\n  invariant value >= 0\n  invariant value < 100\n"
	results := verifySource(t, source)
	if len(results) != 2 {
		t.Fatalf("expected 2 invariant results, got %d", len(results))
	}
	for _, r := range results {
		if r.Status == verifier.Violated {
			t.Fatalf("expected no invariant to be Violated, got %#v", r)
		}
	}
}

func TestVerifyMultipleFunctionsEachReported(t *testing.T) {
	source := "define f() -> Int\n  expect true\ngiven\n  0\n\ndefine g() -> Int\n  expect false\ngiven\n  0\n"
	results := verifySource(t, source)
	if len(results) != 2 {
		t.Fatalf("expected 1 result per function, got %d", len(results))
	}
}
