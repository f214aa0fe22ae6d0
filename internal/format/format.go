// Package format pretty-prints a parsed VibeLang AST back to canonical
// source text (spec.md §4.7), the way gofmt round-trips a parsed Go file:
// every node renders to the same surface syntax a human would write.
package format

import (
	"strconv"
	"strings"

	"github.com/ycharfi09/VibeLang/internal/ast"
)

// Formatter renders a Program using a fixed per-level indent width.
type Formatter struct {
	indentSize int
}

// New returns a Formatter using the canonical two-space indent.
func New() *Formatter {
	return &Formatter{indentSize: 2}
}

// Format renders program as VibeLang source text.
func Format(program *ast.Program) string {
	return New().Format(program)
}

func (f *Formatter) indent(level int) string {
	return strings.Repeat(" ", f.indentSize*level)
}

// ------------------------------------------------------------------
// Program
// ------------------------------------------------------------------

func (f *Formatter) Format(program *ast.Program) string {
	var parts []string

	for _, imp := range program.Imports {
		parts = append(parts, f.formatImport(imp))
	}
	if len(program.Imports) > 0 && len(program.Declarations) > 0 {
		parts = append(parts, "")
	}

	for i, decl := range program.Declarations {
		switch d := decl.(type) {
		case *ast.TypeDeclaration:
			parts = append(parts, f.formatTypeDeclaration(d))
		case *ast.FunctionDeclaration:
			parts = append(parts, f.formatFunctionDeclaration(d))
		}
		if i < len(program.Declarations)-1 {
			parts = append(parts, "")
		}
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n") + "\n"
}

// ------------------------------------------------------------------
// Import
// ------------------------------------------------------------------

func (f *Formatter) formatImport(node *ast.ImportStatement) string {
	return "import " + node.ModulePath
}

// ------------------------------------------------------------------
// Type declaration
// ------------------------------------------------------------------

func (f *Formatter) formatTypeDeclaration(decl *ast.TypeDeclaration) string {
	var lines []string
	header := "type " + decl.Name
	if len(decl.TypeParams) > 0 {
		header += "[" + strings.Join(decl.TypeParams, ", ") + "]"
	}
	header += " = " + f.formatTypeDefinition(decl.Definition)
	lines = append(lines, header)

	for _, inv := range decl.Invariants {
		lines = append(lines, f.indent(1)+"invariant "+f.formatExpression(inv))
	}

	return strings.Join(lines, "\n")
}

func (f *Formatter) formatTypeDefinition(defn ast.TypeDefinition) string {
	switch d := defn.(type) {
	case *ast.SumType:
		parts := make([]string, len(d.Variants))
		for i, v := range d.Variants {
			part := "| " + v.Name
			if len(v.Parameters) > 0 {
				names := make([]string, len(v.Parameters))
				for j, t := range v.Parameters {
					names[j] = f.formatType(t)
				}
				part += "(" + strings.Join(names, ", ") + ")"
			}
			parts[i] = part
		}
		if len(parts) == 1 {
			return parts[0]
		}
		return "\n  " + strings.Join(parts, "\n  ")
	case *ast.SimpleType:
		s := d.Name
		if len(d.Args) > 0 {
			parts := make([]string, len(d.Args))
			for i, t := range d.Args {
				parts[i] = f.formatType(t)
			}
			s += "[" + strings.Join(parts, ", ") + "]"
		}
		return s
	case *ast.RefinedType:
		return f.formatType(d.Base) + " where " + f.formatExpression(d.Condition)
	}
	return ""
}

// ------------------------------------------------------------------
// Function declaration
// ------------------------------------------------------------------

func (f *Formatter) formatFunctionDeclaration(decl *ast.FunctionDeclaration) string {
	var lines []string
	params := make([]string, len(decl.Parameters))
	for i, p := range decl.Parameters {
		params[i] = p.Name + ": " + f.formatType(p.TypeAnnotation)
	}
	sig := "define " + decl.Name + "(" + strings.Join(params, ", ") + ") -> " + f.formatType(decl.ReturnType)
	lines = append(lines, sig)

	for _, pre := range decl.Preconditions {
		lines = append(lines, f.indent(1)+"expect "+f.formatExpression(pre))
	}
	for _, post := range decl.Postconditions {
		lines = append(lines, f.indent(1)+"ensure "+f.formatExpression(post))
	}

	lines = append(lines, "given")
	lines = append(lines, f.formatBlock(decl.Body, 1)...)
	return strings.Join(lines, "\n")
}

// ------------------------------------------------------------------
// Types
// ------------------------------------------------------------------

func (f *Formatter) formatType(t ast.Type) string {
	switch n := t.(type) {
	case *ast.Primitive:
		return n.Name
	case *ast.ArrayType:
		return "Array[" + f.formatType(n.Elem) + "]"
	case *ast.ResultType:
		return "Result[" + f.formatType(n.Ok) + ", " + f.formatType(n.Err) + "]"
	case *ast.FunctionType:
		parts := make([]string, len(n.Params))
		for i, p := range n.Params {
			parts[i] = f.formatType(p)
		}
		return "(" + strings.Join(parts, ", ") + ") -> " + f.formatType(n.Return)
	case *ast.NamedType:
		s := n.Name
		if len(n.Args) > 0 {
			parts := make([]string, len(n.Args))
			for i, a := range n.Args {
				parts[i] = f.formatType(a)
			}
			s += "[" + strings.Join(parts, ", ") + "]"
		}
		return s
	}
	return ""
}

// ------------------------------------------------------------------
// Expressions
// ------------------------------------------------------------------

func (f *Formatter) formatExpression(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return strconv.FormatInt(e.Value, 10)
	case *ast.FloatLiteral:
		s := strconv.FormatFloat(e.Value, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case *ast.StringLiteral:
		escaped := strings.ReplaceAll(e.Value, "\\", "\\\\")
		escaped = strings.ReplaceAll(escaped, `"`, `\"`)
		return `"` + escaped + `"`
	case *ast.BoolLiteral:
		if e.Value {
			return "true"
		}
		return "false"
	case *ast.Identifier:
		return e.Name
	case *ast.BinaryOp:
		return f.formatExpression(e.Left) + " " + e.Operator + " " + f.formatExpression(e.Right)
	case *ast.UnaryOp:
		return e.Operator + f.formatExpression(e.Operand)
	case *ast.FunctionCall:
		args := make([]string, len(e.Arguments))
		for i, a := range e.Arguments {
			args[i] = f.formatExpression(a)
		}
		return f.formatExpression(e.Callee) + "(" + strings.Join(args, ", ") + ")"
	case *ast.MemberAccess:
		return f.formatExpression(e.Object) + "." + e.Member
	case *ast.ArrayLiteral:
		elems := make([]string, len(e.Elements))
		for i, el := range e.Elements {
			elems[i] = f.formatExpression(el)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case *ast.RecordLiteral:
		fields := make([]string, len(e.Fields))
		for i, fl := range e.Fields {
			fields[i] = fl.Name + ": " + f.formatExpression(fl.Value)
		}
		return "{ " + strings.Join(fields, ", ") + " }"
	case *ast.WhenExpression:
		return f.formatWhenInline(e)
	case *ast.GivenExpression:
		return f.formatGivenInline(e)
	}
	return ""
}

func (f *Formatter) formatWhenInline(expr *ast.WhenExpression) string {
	s := "when " + f.formatExpression(expr.Condition)
	if expr.Else != nil {
		s += " otherwise"
	}
	return s
}

func (f *Formatter) formatGivenInline(expr *ast.GivenExpression) string {
	return "given " + f.formatExpression(expr.Scrutinee)
}

// ------------------------------------------------------------------
// Patterns
// ------------------------------------------------------------------

func (f *Formatter) formatPattern(pat ast.Pattern) string {
	switch p := pat.(type) {
	case *ast.ConstructorPattern:
		if len(p.Parameters) > 0 {
			parts := make([]string, len(p.Parameters))
			for i, sub := range p.Parameters {
				parts[i] = f.formatPattern(sub)
			}
			return p.Constructor + "(" + strings.Join(parts, ", ") + ")"
		}
		return p.Constructor
	case *ast.IdentifierPattern:
		return p.Name
	case *ast.LiteralPattern:
		switch v := p.Value.(type) {
		case string:
			return `"` + v + `"`
		case bool:
			if v {
				return "true"
			}
			return "false"
		case int64:
			return strconv.FormatInt(v, 10)
		case float64:
			s := strconv.FormatFloat(v, 'f', -1, 64)
			if !strings.Contains(s, ".") {
				s += ".0"
			}
			return s
		}
		return ""
	case *ast.WildcardPattern:
		return "_"
	}
	return ""
}

// ------------------------------------------------------------------
// Blocks / statements
// ------------------------------------------------------------------

func (f *Formatter) formatBlock(block *ast.Block, level int) []string {
	var lines []string
	for _, stmt := range block.Statements {
		switch s := stmt.(type) {
		case *ast.ExpressionStatement:
			switch e := s.Expression.(type) {
			case *ast.WhenExpression:
				lines = append(lines, f.formatWhenBlock(e, level)...)
			case *ast.GivenExpression:
				lines = append(lines, f.formatGivenBlock(e, level)...)
			default:
				lines = append(lines, f.indent(level)+f.formatExpression(e))
			}
		case *ast.LetBinding:
			lines = append(lines, f.indent(level)+s.Name+" = "+f.formatExpression(s.Value))
		case *ast.Assignment:
			lines = append(lines, f.indent(level)+s.Target+" = "+f.formatExpression(s.Value))
		case *ast.Block:
			lines = append(lines, f.formatBlock(s, level)...)
		}
	}
	return lines
}

func (f *Formatter) formatWhenBlock(expr *ast.WhenExpression, level int) []string {
	lines := []string{f.indent(level) + "when " + f.formatExpression(expr.Condition)}
	lines = append(lines, f.formatBlock(expr.Then, level+1)...)
	if expr.Else != nil {
		lines = append(lines, f.indent(level)+"otherwise")
		lines = append(lines, f.formatBlock(expr.Else, level+1)...)
	}
	return lines
}

func (f *Formatter) formatGivenBlock(expr *ast.GivenExpression, level int) []string {
	lines := []string{f.indent(level) + "given " + f.formatExpression(expr.Scrutinee)}
	for _, c := range expr.Cases {
		pat := f.formatPattern(c.Pattern)
		body := f.formatExpression(c.Expression)
		lines = append(lines, f.indent(level+1)+pat+" -> "+body)
	}
	return lines
}
