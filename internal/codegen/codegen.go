// Package codegen lowers a checked, optimized VibeLang AST to Python
// source text (spec.md §4.6): a fixed Success/Error runtime preamble,
// then one class per type declaration and one def per function, with
// contracts compiled to runtime asserts.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ycharfi09/VibeLang/internal/ast"
	"github.com/ycharfi09/VibeLang/internal/cerrors"
)

// binaryOpMap translates a VibeLang operator to its Python spelling.
// "/" maps to Python's floor division "//" unconditionally — the
// checker's Int/Float split is not consulted here, so `3.0 / 2.0` is
// deliberately lowered the same as `3 / 2` (spec.md §9 "Known
// mismatches").
var binaryOpMap = map[string]string{
	"&&": "and", "||": "or",
	"+": "+", "-": "-", "*": "*", "/": "//", "%": "%",
	"==": "==", "!=": "!=", "<": "<", ">": ">", "<=": "<=", ">=": ">=",
}

var unaryOpMap = map[string]string{"!": "not ", "-": "-"}

const runtimeHeader = `# --- VibeLang Runtime ---
class _VL_Success:
    def __init__(self, value):
        self.value = value
    def __repr__(self):
        return f"Success({self.value!r})"

class _VL_Error:
    def __init__(self, error):
        self.error = error
    def __repr__(self):
        return f"Error({self.error!r})"
# --- End Runtime ---`

// Generator translates one VibeLang Program into a single Python module.
type Generator struct {
	indentLevel int
	lines       []string
}

// New returns a Generator ready to emit one program.
func New() *Generator {
	return &Generator{}
}

// Generate renders program as Python source, or the first CodeGenError
// hit while lowering an unrecognized node kind.
func Generate(program *ast.Program) (string, *cerrors.CodeGenError) {
	g := New()
	return g.Generate(program)
}

func (g *Generator) Generate(program *ast.Program) (string, *cerrors.CodeGenError) {
	g.indentLevel = 0
	g.lines = nil

	g.emitRaw(runtimeHeader)

	for _, imp := range program.Imports {
		g.genImport(imp)
	}
	if len(program.Imports) > 0 {
		g.emit("")
	}

	for _, decl := range program.Declarations {
		var err *cerrors.CodeGenError
		switch d := decl.(type) {
		case *ast.TypeDeclaration:
			err = g.genTypeDeclaration(d)
		case *ast.FunctionDeclaration:
			err = g.genFunctionDeclaration(d)
		default:
			err = cerrors.NewCodeGenError(decl.Pos(), fmt.Sprintf("unknown declaration type: %T", decl))
		}
		if err != nil {
			return "", err
		}
		g.emit("")
	}

	return strings.TrimRight(strings.Join(g.lines, "\n"), "\n") + "\n", nil
}

// ------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------

func (g *Generator) indent() string {
	return strings.Repeat("    ", g.indentLevel)
}

func (g *Generator) emit(line string) {
	if line == "" {
		g.lines = append(g.lines, "")
		return
	}
	g.lines = append(g.lines, g.indent()+line)
}

func (g *Generator) emitRaw(text string) {
	g.lines = append(g.lines, strings.Split(text, "\n")...)
}

// ------------------------------------------------------------------
// Imports
// ------------------------------------------------------------------

func (g *Generator) genImport(node *ast.ImportStatement) {
	g.emit(fmt.Sprintf("import %s", node.ModulePath))
}

// ------------------------------------------------------------------
// Type declarations
// ------------------------------------------------------------------

func (g *Generator) genTypeDeclaration(node *ast.TypeDeclaration) *cerrors.CodeGenError {
	switch def := node.Definition.(type) {
	case *ast.SumType:
		g.genSumType(node.Name, def)
	case *ast.SimpleType:
		if err := g.genSimpleType(node.Name, def, node.Invariants); err != nil {
			return err
		}
	case *ast.RefinedType:
		if err := g.genRefinedType(node.Name, def); err != nil {
			return err
		}
	default:
		return cerrors.NewCodeGenError(node.Pos(), fmt.Sprintf("unknown type definition: %T", node.Definition))
	}
	return nil
}

func (g *Generator) genSumType(typeName string, sumType *ast.SumType) {
	g.emit(fmt.Sprintf("class %s:", typeName))
	g.indentLevel++
	g.emit("pass")
	g.indentLevel--
	g.emit("")

	for _, variant := range sumType.Variants {
		g.genVariant(typeName, variant)
	}
}

func (g *Generator) genVariant(baseName string, variant *ast.Variant) {
	g.emit(fmt.Sprintf("class %s(%s):", variant.Name, baseName))
	g.indentLevel++
	if len(variant.Parameters) > 0 {
		names := make([]string, len(variant.Parameters))
		for i := range variant.Parameters {
			names[i] = fmt.Sprintf("v%d", i)
		}
		g.emit(fmt.Sprintf("def __init__(self, %s):", strings.Join(names, ", ")))
		g.indentLevel++
		for i := range variant.Parameters {
			g.emit(fmt.Sprintf("self.v%d = v%d", i, i))
		}
		g.indentLevel--
	} else {
		g.emit("pass")
	}
	g.indentLevel--
	g.emit("")
}

func (g *Generator) genSimpleType(name string, _ *ast.SimpleType, invariants []ast.Expression) *cerrors.CodeGenError {
	g.emit(fmt.Sprintf("class %s:", name))
	g.indentLevel++
	g.emit("def __init__(self, value):")
	g.indentLevel++
	for _, inv := range invariants {
		code, err := g.genExpr(inv)
		if err != nil {
			return err
		}
		g.emit(fmt.Sprintf("assert %s, \"Invariant violated for %s\"", code, name))
	}
	g.emit("self.value = value")
	g.indentLevel--
	g.indentLevel--
	return nil
}

func (g *Generator) genRefinedType(name string, refined *ast.RefinedType) *cerrors.CodeGenError {
	g.emit(fmt.Sprintf("class %s:", name))
	g.indentLevel++
	g.emit("def __init__(self, value):")
	g.indentLevel++
	cond, err := g.genExpr(refined.Condition)
	if err != nil {
		return err
	}
	g.emit(fmt.Sprintf("assert %s, \"Refinement violated for %s\"", cond, name))
	g.emit("self.value = value")
	g.indentLevel--
	g.indentLevel--
	return nil
}

// ------------------------------------------------------------------
// Function declarations
// ------------------------------------------------------------------

func (g *Generator) genFunctionDeclaration(node *ast.FunctionDeclaration) *cerrors.CodeGenError {
	names := make([]string, len(node.Parameters))
	for i, p := range node.Parameters {
		names[i] = p.Name
	}
	g.emit(fmt.Sprintf("def %s(%s):", node.Name, strings.Join(names, ", ")))
	g.indentLevel++

	for _, pre := range node.Preconditions {
		code, err := g.genExpr(pre)
		if err != nil {
			return err
		}
		g.emit(fmt.Sprintf("# expect: %s", code))
		g.emit(fmt.Sprintf("assert %s, \"Precondition failed: %s\"", code, code))
	}

	if err := g.genBlockBody(node.Body, true); err != nil {
		return err
	}

	for _, post := range node.Postconditions {
		code, err := g.genExpr(post)
		if err != nil {
			return err
		}
		g.emit(fmt.Sprintf("# ensure: %s", code))
		g.emit(fmt.Sprintf("assert %s, \"Postcondition failed: %s\"", code, code))
	}

	g.indentLevel--
	return nil
}

// ------------------------------------------------------------------
// Blocks / statements
// ------------------------------------------------------------------

// genBlockBody emits a block's statements without changing indent level.
// isLast propagates to the block's own final statement: true means that
// statement's value becomes the enclosing function's (or when-branch's)
// return value.
func (g *Generator) genBlockBody(block *ast.Block, isLast bool) *cerrors.CodeGenError {
	if len(block.Statements) == 0 {
		g.emit("pass")
		return nil
	}

	lastIdx := len(block.Statements) - 1
	for i, stmt := range block.Statements {
		stmtIsLast := isLast && i == lastIdx
		if err := g.genStatement(stmt, stmtIsLast); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) genStatement(stmt ast.Statement, isLast bool) *cerrors.CodeGenError {
	switch s := stmt.(type) {
	case *ast.LetBinding:
		val, err := g.genExpr(s.Value)
		if err != nil {
			return err
		}
		g.emit(fmt.Sprintf("%s = %s", s.Name, val))
		return nil
	case *ast.Assignment:
		val, err := g.genExpr(s.Value)
		if err != nil {
			return err
		}
		g.emit(fmt.Sprintf("%s = %s", s.Target, val))
		return nil
	case *ast.ExpressionStatement:
		if when, ok := s.Expression.(*ast.WhenExpression); ok {
			return g.genWhenStatement(when, isLast)
		}
		code, err := g.genExpr(s.Expression)
		if err != nil {
			return err
		}
		if isLast {
			g.emit(fmt.Sprintf("result = %s", code))
			g.emit("return result")
		} else {
			g.emit(code)
		}
		return nil
	case *ast.Block:
		return g.genBlockBody(s, isLast)
	}
	return cerrors.NewCodeGenError(stmt.Pos(), fmt.Sprintf("unknown statement type: %T", stmt))
}

// genWhenStatement lowers a When used at statement position as a
// statement-level if/else, rather than the conditional-expression form
// used everywhere else (spec.md §4.6): isLast propagates into both arms
// so a When in tail position still yields the function's return value.
func (g *Generator) genWhenStatement(expr *ast.WhenExpression, isLast bool) *cerrors.CodeGenError {
	cond, err := g.genExpr(expr.Condition)
	if err != nil {
		return err
	}
	g.emit(fmt.Sprintf("if %s:", cond))
	g.indentLevel++
	if err := g.genBlockBody(expr.Then, isLast); err != nil {
		return err
	}
	g.indentLevel--
	if expr.Else != nil {
		g.emit("else:")
		g.indentLevel++
		if err := g.genBlockBody(expr.Else, isLast); err != nil {
			return err
		}
		g.indentLevel--
	}
	return nil
}

// ------------------------------------------------------------------
// Expressions
// ------------------------------------------------------------------

func (g *Generator) genExpr(expr ast.Expression) (string, *cerrors.CodeGenError) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return strconv.FormatInt(e.Value, 10), nil
	case *ast.FloatLiteral:
		return pyFloatRepr(e.Value), nil
	case *ast.StringLiteral:
		return pyStringRepr(e.Value), nil
	case *ast.BoolLiteral:
		if e.Value {
			return "True", nil
		}
		return "False", nil
	case *ast.Identifier:
		return e.Name, nil
	case *ast.BinaryOp:
		return g.genBinaryOp(e)
	case *ast.UnaryOp:
		return g.genUnaryOp(e)
	case *ast.FunctionCall:
		return g.genFunctionCall(e)
	case *ast.MemberAccess:
		obj, err := g.genExpr(e.Object)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s.%s", obj, e.Member), nil
	case *ast.ArrayLiteral:
		parts := make([]string, len(e.Elements))
		for i, el := range e.Elements {
			code, err := g.genExpr(el)
			if err != nil {
				return "", err
			}
			parts[i] = code
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case *ast.RecordLiteral:
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			code, err := g.genExpr(f.Value)
			if err != nil {
				return "", err
			}
			parts[i] = fmt.Sprintf("%s: %s", pyStringRepr(f.Name), code)
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	case *ast.WhenExpression:
		return g.genWhenExpr(e)
	case *ast.GivenExpression:
		return g.genGivenExpr(e)
	}
	return "", cerrors.NewCodeGenError(expr.Pos(), fmt.Sprintf("unknown expression type: %T", expr))
}

func (g *Generator) genBinaryOp(expr *ast.BinaryOp) (string, *cerrors.CodeGenError) {
	left, err := g.genExpr(expr.Left)
	if err != nil {
		return "", err
	}
	right, err := g.genExpr(expr.Right)
	if err != nil {
		return "", err
	}
	pyOp, ok := binaryOpMap[expr.Operator]
	if !ok {
		pyOp = expr.Operator
	}
	return fmt.Sprintf("(%s %s %s)", left, pyOp, right), nil
}

func (g *Generator) genUnaryOp(expr *ast.UnaryOp) (string, *cerrors.CodeGenError) {
	operand, err := g.genExpr(expr.Operand)
	if err != nil {
		return "", err
	}
	pyOp, ok := unaryOpMap[expr.Operator]
	if !ok {
		pyOp = expr.Operator
	}
	return fmt.Sprintf("(%s%s)", pyOp, operand), nil
}

func (g *Generator) genFunctionCall(expr *ast.FunctionCall) (string, *cerrors.CodeGenError) {
	callee, err := g.genExpr(expr.Callee)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(expr.Arguments))
	for i, a := range expr.Arguments {
		code, err := g.genExpr(a)
		if err != nil {
			return "", err
		}
		parts[i] = code
	}
	return fmt.Sprintf("%s(%s)", callee, strings.Join(parts, ", ")), nil
}

// genWhenExpr generates the conditional-expression form of When used
// wherever a value (not a statement) is expected.
func (g *Generator) genWhenExpr(expr *ast.WhenExpression) (string, *cerrors.CodeGenError) {
	cond, err := g.genExpr(expr.Condition)
	if err != nil {
		return "", err
	}
	thenCode, err := g.genBlockReturnExpr(expr.Then)
	if err != nil {
		return "", err
	}
	if expr.Else != nil {
		elseCode, err := g.genBlockReturnExpr(expr.Else)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s if %s else %s)", thenCode, cond, elseCode), nil
	}
	return fmt.Sprintf("(%s if %s else None)", thenCode, cond), nil
}

func (g *Generator) genBlockReturnExpr(block *ast.Block) (string, *cerrors.CodeGenError) {
	if len(block.Statements) > 0 {
		if es, ok := block.Statements[len(block.Statements)-1].(*ast.ExpressionStatement); ok {
			return g.genExpr(es.Expression)
		}
	}
	return "None", nil
}

// genGivenExpr lowers a pattern match to an immediately-invoked lambda
// binding the scrutinee once, with a chained conditional expression per
// case — Python has no statement-expression form to build this in place.
func (g *Generator) genGivenExpr(expr *ast.GivenExpression) (string, *cerrors.CodeGenError) {
	scrutinee, err := g.genExpr(expr.Scrutinee)
	if err != nil {
		return "", err
	}

	type armT struct{ cond, val string }
	arms := make([]armT, 0, len(expr.Cases))
	for _, c := range expr.Cases {
		cond, err := g.genPatternCondition("_vl_scrutinee", c.Pattern)
		if err != nil {
			return "", err
		}
		val, err := g.genExpr(c.Expression)
		if err != nil {
			return "", err
		}
		arms = append(arms, armT{cond, val})
	}

	if len(arms) == 0 {
		return "None", nil
	}

	result := "None"
	for i := len(arms) - 1; i >= 0; i-- {
		if arms[i].cond == "True" {
			result = arms[i].val
		} else {
			result = fmt.Sprintf("(%s if %s else %s)", arms[i].val, arms[i].cond, result)
		}
	}

	return fmt.Sprintf("(lambda _vl_scrutinee: %s)(%s)", result, scrutinee), nil
}

func (g *Generator) genPatternCondition(v string, pattern ast.Pattern) (string, *cerrors.CodeGenError) {
	switch p := pattern.(type) {
	case *ast.LiteralPattern:
		return fmt.Sprintf("%s == %s", v, pyValueRepr(p.Value)), nil
	case *ast.IdentifierPattern:
		return "True", nil
	case *ast.WildcardPattern:
		return "True", nil
	case *ast.ConstructorPattern:
		return fmt.Sprintf("isinstance(%s, %s)", v, p.Constructor), nil
	}
	return "", cerrors.NewCodeGenError(pattern.Pos(), fmt.Sprintf("unknown pattern type: %T", pattern))
}

// ------------------------------------------------------------------
// Python literal rendering
// ------------------------------------------------------------------

func pyStringRepr(s string) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			sb.WriteString(`\'`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}

func pyFloatRepr(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func pyValueRepr(v any) string {
	switch val := v.(type) {
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return pyFloatRepr(val)
	case string:
		return pyStringRepr(val)
	case bool:
		if val {
			return "True"
		}
		return "False"
	}
	return "None"
}
