package semantic

import (
	"fmt"
	"strings"

	"github.com/ycharfi09/VibeLang/internal/ast"
)

// primitiveTypeNames are the built-in scalar/unit type names (spec.md
// §4.3 "Types").
var primitiveTypeNames = map[string]bool{
	"Int": true, "Float": true, "Bool": true, "String": true, "Byte": true, "Unit": true,
}

var arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true}
var comparisonOps = map[string]bool{"<": true, ">": true, "<=": true, ">=": true}
var equalityOps = map[string]bool{"==": true, "!=": true}
var logicalOps = map[string]bool{"&&": true, "||": true}

// typeToStr renders an ast.Type in the compact string form the checker
// reasons about (spec.md §4.3): `Array[Int]`, `Result[Int, String]`,
// `(Int, Int) -> Bool`, `Foo[Int]`, or a bare name.
func typeToStr(t ast.Type) string {
	switch n := t.(type) {
	case *ast.Primitive:
		return n.Name
	case *ast.ArrayType:
		return fmt.Sprintf("Array[%s]", typeToStr(n.Elem))
	case *ast.ResultType:
		return fmt.Sprintf("Result[%s, %s]", typeToStr(n.Ok), typeToStr(n.Err))
	case *ast.FunctionType:
		parts := make([]string, len(n.Params))
		for i, pt := range n.Params {
			parts[i] = typeToStr(pt)
		}
		return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), typeToStr(n.Return))
	case *ast.NamedType:
		if len(n.Args) > 0 {
			parts := make([]string, len(n.Args))
			for i, a := range n.Args {
				parts[i] = typeToStr(a)
			}
			return fmt.Sprintf("%s[%s]", n.Name, strings.Join(parts, ", "))
		}
		return n.Name
	case *ast.SimpleType:
		if len(n.Args) > 0 {
			parts := make([]string, len(n.Args))
			for i, a := range n.Args {
				parts[i] = typeToStr(a)
			}
			return fmt.Sprintf("%s[%s]", n.Name, strings.Join(parts, ", "))
		}
		return n.Name
	}
	return "Unknown"
}

// TypeToStr exposes typeToStr for callers outside the package (the CLI's
// `parse` summary renders declared types the same way the checker does).
func TypeToStr(t ast.Type) string {
	return typeToStr(t)
}
