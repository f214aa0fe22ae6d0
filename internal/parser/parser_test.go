package parser_test

import (
	"testing"

	"github.com/ycharfi09/VibeLang/internal/ast"
	"github.com/ycharfi09/VibeLang/internal/parser"
)

func mustParse(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", source, err)
	}
	return program
}

func TestParseImports(t *testing.T) {
	program := mustParse(t, "import foo.bar.baz\n\ndefine f() -> Int\ngiven\n  0\n")
	if len(program.Imports) != 1 {
		t.Fatalf("expected 1 import, got %d", len(program.Imports))
	}
	if program.Imports[0].ModulePath != "foo.bar.baz" {
		t.Fatalf("expected dotted path, got %q", program.Imports[0].ModulePath)
	}
	if len(program.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(program.Declarations))
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	source := "define add(a: Int, b: Int) -> Int\n  expect a >= 0\n  ensure result >= a\ngiven\n  a + b\n"
	program := mustParse(t, source)
	if len(program.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(program.Declarations))
	}
	fn, ok := program.Declarations[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected *ast.FunctionDeclaration, got %T", program.Declarations[0])
	}
	if fn.Name != "add" {
		t.Fatalf("expected name 'add', got %q", fn.Name)
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(fn.Parameters))
	}
	if len(fn.Preconditions) != 1 || len(fn.Postconditions) != 1 {
		t.Fatalf("expected 1 precondition and 1 postcondition, got %d/%d", len(fn.Preconditions), len(fn.Postconditions))
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body.Statements))
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	program := mustParse(t, "define f() -> Int\ngiven\n  1 + 2 * 3\n")
	fn := program.Declarations[0].(*ast.FunctionDeclaration)
	stmt := fn.Body.Statements[0].(*ast.ExpressionStatement)
	bin, ok := stmt.Expression.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("expected top-level BinaryOp, got %T", stmt.Expression)
	}
	if bin.Operator != "+" {
		t.Fatalf("expected '+' at the top (lowest precedence wins outermost), got %q", bin.Operator)
	}
	right, ok := bin.Right.(*ast.BinaryOp)
	if !ok || right.Operator != "*" {
		t.Fatalf("expected '*' nested on the right, got %#v", bin.Right)
	}
}

func TestParseWhenWithAndWithoutOtherwise(t *testing.T) {
	withElse := mustParse(t, "define f() -> Int\ngiven\n  when true\n    1\n  otherwise\n    2\n")
	fn := withElse.Declarations[0].(*ast.FunctionDeclaration)
	stmt := fn.Body.Statements[0].(*ast.ExpressionStatement)
	when := stmt.Expression.(*ast.WhenExpression)
	if when.Else == nil {
		t.Fatalf("expected an else block to be present")
	}

	withoutElse := mustParse(t, "define f() -> Int\ngiven\n  when true\n    1\n")
	fn2 := withoutElse.Declarations[0].(*ast.FunctionDeclaration)
	stmt2 := fn2.Body.Statements[0].(*ast.ExpressionStatement)
	when2 := stmt2.Expression.(*ast.WhenExpression)
	if when2.Else != nil {
		t.Fatalf("expected no else block, got one")
	}
}

func TestParseGivenPatterns(t *testing.T) {
	source := "type Shape =\n  | Circle(Float)\n  | Square(Float)\n\ndefine area(s: Shape) -> Float\ngiven\n  given s\n    Circle(r) -> r\n    Square(side) -> side\n"
	program := mustParse(t, source)
	fn := program.Declarations[1].(*ast.FunctionDeclaration)
	stmt := fn.Body.Statements[0].(*ast.ExpressionStatement)
	given := stmt.Expression.(*ast.GivenExpression)
	if len(given.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(given.Cases))
	}
	ctor, ok := given.Cases[0].Pattern.(*ast.ConstructorPattern)
	if !ok || ctor.Constructor != "Circle" {
		t.Fatalf("expected ConstructorPattern Circle, got %#v", given.Cases[0].Pattern)
	}
}

func TestParseTypeDeclarationWithInvariant(t *testing.T) {
	program := mustParse(t, "type Positive = Int\n  invariant value > 0\n")
	td := program.Declarations[0].(*ast.TypeDeclaration)
	if td.Name != "Positive" {
		t.Fatalf("expected name 'Positive', got %q", td.Name)
	}
	if len(td.Invariants) != 1 {
		t.Fatalf("expected 1 invariant, got %d", len(td.Invariants))
	}
}

func TestParseErrorOnUnexpectedToken(t *testing.T) {
	if _, err := parser.Parse("42\n"); err == nil {
		t.Fatalf("expected a parse error for a leading non-declaration token")
	}
}

func TestParseArrayAndResultTypes(t *testing.T) {
	program := mustParse(t, "define f(xs: Array[Int]) -> Result[Int, String]\ngiven\n  0\n")
	fn := program.Declarations[0].(*ast.FunctionDeclaration)
	if _, ok := fn.Parameters[0].TypeAnnotation.(*ast.ArrayType); !ok {
		t.Fatalf("expected ArrayType parameter, got %#v", fn.Parameters[0].TypeAnnotation)
	}
	if _, ok := fn.ReturnType.(*ast.ResultType); !ok {
		t.Fatalf("expected ResultType return, got %#v", fn.ReturnType)
	}
}
