package semantic_test

import (
	"testing"

	"github.com/ycharfi09/VibeLang/internal/parser"
	"github.com/ycharfi09/VibeLang/internal/semantic"
)

func checkSource(t *testing.T, source string) []string {
	t.Helper()
	program, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	errs := semantic.Check(program)
	messages := make([]string, len(errs))
	for i, e := range errs {
		messages[i] = e.Message
	}
	return messages
}

func TestCheckWellTypedFunction(t *testing.T) {
	errs := checkSource(t, "define add(a: Int, b: Int) -> Int\ngiven\n  a + b\n")
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestCheckIntFloatPromotion(t *testing.T) {
	errs := checkSource(t, "define f(a: Int, b: Float) -> Float\ngiven\n  a + b\n")
	if len(errs) != 0 {
		t.Fatalf("expected Int+Float to promote to Float with no errors, got %v", errs)
	}
}

func TestCheckReturnTypeMismatch(t *testing.T) {
	errs := checkSource(t, "define f() -> Int\ngiven\n  true\n")
	if len(errs) == 0 {
		t.Fatalf("expected a return-type mismatch error")
	}
}

func TestCheckPreconditionMustBeBool(t *testing.T) {
	errs := checkSource(t, "define f(a: Int) -> Int\n  expect a\ngiven\n  a\n")
	if len(errs) == 0 {
		t.Fatalf("expected a precondition-must-be-Bool error")
	}
}

func TestCheckUndefinedIdentifier(t *testing.T) {
	errs := checkSource(t, "define f() -> Int\ngiven\n  y\n")
	if len(errs) == 0 {
		t.Fatalf("expected an undefined-identifier error")
	}
}

func TestCheckFunctionCallArity(t *testing.T) {
	errs := checkSource(t, "define add(a: Int, b: Int) -> Int\ngiven\n  a + b\n\ndefine f() -> Int\ngiven\n  add(1)\n")
	if len(errs) == 0 {
		t.Fatalf("expected an arity-mismatch error")
	}
}

func TestCheckTypeAliasCompatibility(t *testing.T) {
	errs := checkSource(t, "type UserId = Int\n\ndefine f(id: UserId) -> Int\ngiven\n  id + 1\n")
	if len(errs) != 0 {
		t.Fatalf("expected alias resolution to allow UserId where Int is used, got %v", errs)
	}
}

func TestCheckInvariantMustBeBool(t *testing.T) {
	errs := checkSource(t, "type Positive = Int\n  invariant value\n")
	if len(errs) == 0 {
		t.Fatalf("expected an invariant-must-be-Bool error since 'value' is Int, not Bool")
	}
}

func TestCheckPostconditionSeesResult(t *testing.T) {
	errs := checkSource(t, "define f() -> Int\n  ensure result == 0\ngiven\n  0\n")
	if len(errs) != 0 {
		t.Fatalf("expected 'result' to be bound in postconditions, got %v", errs)
	}
}

func TestCheckAccumulatesAllErrors(t *testing.T) {
	errs := checkSource(t, "define f() -> Int\ngiven\n  x\n\ndefine g() -> Int\ngiven\n  y\n")
	if len(errs) != 2 {
		t.Fatalf("expected the checker to accumulate errors across declarations, got %d: %v", len(errs), errs)
	}
}
