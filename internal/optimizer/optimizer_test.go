package optimizer_test

import (
	"testing"

	"github.com/ycharfi09/VibeLang/internal/ast"
	"github.com/ycharfi09/VibeLang/internal/optimizer"
	"github.com/ycharfi09/VibeLang/internal/parser"
)

func optimizeSource(t *testing.T, source string) (*ast.Program, int) {
	t.Helper()
	program, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return optimizer.Optimize(program)
}

func firstBodyExpr(program *ast.Program) ast.Expression {
	fn := program.Declarations[0].(*ast.FunctionDeclaration)
	return fn.Body.Statements[0].(*ast.ExpressionStatement).Expression
}

func TestOptimizeConstantFolding(t *testing.T) {
	optimized, count := optimizeSource(t, "define f() -> Int\ngiven\n  1 + 2\n")
	lit, ok := firstBodyExpr(optimized).(*ast.IntegerLiteral)
	if !ok || lit.Value != 3 {
		t.Fatalf("expected folded literal 3, got %#v", firstBodyExpr(optimized))
	}
	if count != 1 {
		t.Fatalf("expected 1 optimization applied, got %d", count)
	}
}

func TestOptimizeDivisionByZeroPreserved(t *testing.T) {
	optimized, _ := optimizeSource(t, "define f() -> Int\ngiven\n  1 / 0\n")
	bin, ok := firstBodyExpr(optimized).(*ast.BinaryOp)
	if !ok || bin.Operator != "/" {
		t.Fatalf("expected division by zero to be preserved as a BinaryOp, got %#v", firstBodyExpr(optimized))
	}
}

func TestOptimizeIdentitySimplification(t *testing.T) {
	optimized, _ := optimizeSource(t, "define f(x: Int) -> Int\ngiven\n  x + 0\n")
	ident, ok := firstBodyExpr(optimized).(*ast.Identifier)
	if !ok || ident.Name != "x" {
		t.Fatalf("expected 'x + 0' to simplify to the identifier 'x', got %#v", firstBodyExpr(optimized))
	}
}

func TestOptimizeMultiplyByZero(t *testing.T) {
	optimized, _ := optimizeSource(t, "define f(x: Int) -> Int\ngiven\n  x * 0\n")
	lit, ok := firstBodyExpr(optimized).(*ast.IntegerLiteral)
	if !ok || lit.Value != 0 {
		t.Fatalf("expected 'x * 0' to simplify to 0, got %#v", firstBodyExpr(optimized))
	}
}

func TestOptimizeDoubleNegation(t *testing.T) {
	optimized, _ := optimizeSource(t, "define f(b: Bool) -> Bool\ngiven\n  !!b\n")
	ident, ok := firstBodyExpr(optimized).(*ast.Identifier)
	if !ok || ident.Name != "b" {
		t.Fatalf("expected '!!b' to simplify to 'b', got %#v", firstBodyExpr(optimized))
	}
}

func TestOptimizeWhenTrueEliminatesBranch(t *testing.T) {
	optimized, _ := optimizeSource(t, "define f() -> Int\ngiven\n  when true\n    1\n  otherwise\n    2\n")
	lit, ok := firstBodyExpr(optimized).(*ast.IntegerLiteral)
	if !ok || lit.Value != 1 {
		t.Fatalf("expected 'when true' to reduce to the then-branch, got %#v", firstBodyExpr(optimized))
	}
}

func TestOptimizeWhenFalseWithoutElseBecomesZero(t *testing.T) {
	optimized, _ := optimizeSource(t, "define f() -> Int\ngiven\n  when false\n    1\n")
	lit, ok := firstBodyExpr(optimized).(*ast.IntegerLiteral)
	if !ok || lit.Value != 0 {
		t.Fatalf("expected 'when false' with no else to reduce to 0, got %#v", firstBodyExpr(optimized))
	}
}

func TestOptimizeLeavesOriginalProgramUnmodified(t *testing.T) {
	program, err := parser.Parse("define f() -> Int\ngiven\n  1 + 2\n")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	optimizer.Optimize(program)

	fn := program.Declarations[0].(*ast.FunctionDeclaration)
	bin, ok := fn.Body.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("expected the original program's body to remain a BinaryOp, got %#v", fn.Body.Statements[0])
	}
	if bin.Operator != "+" {
		t.Fatalf("expected the original BinaryOp to be untouched, got operator %q", bin.Operator)
	}
}
