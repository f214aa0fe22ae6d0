package codegen_test

import (
	"strings"
	"testing"

	"github.com/ycharfi09/VibeLang/internal/codegen"
	"github.com/ycharfi09/VibeLang/internal/parser"
)

func generate(t *testing.T, source string) string {
	t.Helper()
	program, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	out, genErr := codegen.Generate(program)
	if genErr != nil {
		t.Fatalf("unexpected codegen error: %v", genErr)
	}
	return out
}

func TestGenerateEmitsRuntimePreamble(t *testing.T) {
	out := generate(t, "define f() -> Int\ngiven\n  0\n")
	if !strings.Contains(out, "class _VL_Success:") || !strings.Contains(out, "class _VL_Error:") {
		t.Fatalf("expected the fixed runtime preamble, got:\n%s", out)
	}
}

func TestGenerateIntegerDivisionMapsToFloorDivisionUnconditionally(t *testing.T) {
	out := generate(t, "define f(a: Float, b: Float) -> Float\ngiven\n  a / b\n")
	if !strings.Contains(out, "(a // b)") {
		t.Fatalf("expected '/' to lower to Python's '//' even for Float operands, got:\n%s", out)
	}
}

func TestGenerateFunctionReturnsLastExpression(t *testing.T) {
	out := generate(t, "define f() -> Int\ngiven\n  1 + 2\n")
	if !strings.Contains(out, "result = (1 + 2)") || !strings.Contains(out, "return result") {
		t.Fatalf("expected the tail expression to be bound to result and returned, got:\n%s", out)
	}
}

func TestGeneratePreconditionEmitsAssert(t *testing.T) {
	out := generate(t, "define f(a: Int) -> Int\n  expect a > 0\ngiven\n  a\n")
	if !strings.Contains(out, `assert (a > 0), "Precondition failed: (a > 0)"`) {
		t.Fatalf("expected a precondition assert, got:\n%s", out)
	}
}

func TestGeneratePostconditionEmitsAssertAfterBody(t *testing.T) {
	out := generate(t, "define f() -> Int\n  ensure result == 0\ngiven\n  0\n")
	bodyIdx := strings.Index(out, "return result")
	assertIdx := strings.Index(out, `assert (result == 0)`)
	if bodyIdx == -1 || assertIdx == -1 || assertIdx < bodyIdx {
		t.Fatalf("expected the postcondition assert to follow the return, got:\n%s", out)
	}
}

func TestGenerateWhenStatementLowersToIfElse(t *testing.T) {
	out := generate(t, "define f() -> Int\ngiven\n  when true\n    1\n  otherwise\n    2\n")
	if !strings.Contains(out, "if True:") || !strings.Contains(out, "else:") {
		t.Fatalf("expected a statement-position when to lower to if/else, got:\n%s", out)
	}
}

func TestGenerateWhenStatementWithoutElseOmitsElseBranch(t *testing.T) {
	out := generate(t, "define f() -> Int\ngiven\n  when true\n    1\n")
	if strings.Contains(out, "else:") {
		t.Fatalf("expected no else branch when 'otherwise' is absent, got:\n%s", out)
	}
}

func TestGenerateGivenExpressionLowersToLambda(t *testing.T) {
	source := "type Shape =\n  | Circle(Float)\n  | Square(Float)\n\ndefine area(s: Shape) -> Float\ngiven\n  given s\n    Circle(r) -> r\n    Square(side) -> side\n"
	out := generate(t, source)
	if !strings.Contains(out, "lambda _vl_scrutinee:") {
		t.Fatalf("expected the pattern match to lower to an IIFE lambda, got:\n%s", out)
	}
	if !strings.Contains(out, "isinstance(_vl_scrutinee, Circle)") {
		t.Fatalf("expected a constructor-pattern isinstance check, got:\n%s", out)
	}
}

func TestGenerateSumTypeEmitsClassHierarchy(t *testing.T) {
	source := "type Shape =\n  | Circle(Float)\n  | Square(Float)\n"
	out := generate(t, source)
	if !strings.Contains(out, "class Shape:") || !strings.Contains(out, "class Circle(Shape):") || !strings.Contains(out, "class Square(Shape):") {
		t.Fatalf("expected a base class and one subclass per variant, got:\n%s", out)
	}
}

func TestGenerateTypeInvariantEmitsAssertInInit(t *testing.T) {
	out := generate(t, "type Positive = Int\n  invariant value > 0\n")
	if !strings.Contains(out, "def __init__(self, value):") || !strings.Contains(out, "assert (value > 0), \"Invariant violated for Positive\"") {
		t.Fatalf("expected the invariant to be asserted in __init__, got:\n%s", out)
	}
}

func TestGenerateStringLiteralUsesSingleQuotes(t *testing.T) {
	out := generate(t, `define f() -> String
given
  "hi"
`)
	if !strings.Contains(out, "result = 'hi'") {
		t.Fatalf("expected a Python-style single-quoted string, got:\n%s", out)
	}
}

func TestGenerateImportEmitsPythonImport(t *testing.T) {
	out := generate(t, "import foo.bar\n\ndefine f() -> Int\ngiven\n  0\n")
	if !strings.Contains(out, "import foo.bar") {
		t.Fatalf("expected a Python import line, got:\n%s", out)
	}
}
