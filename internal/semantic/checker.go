// Package semantic implements VibeLang's structural type checker: it walks
// a parsed *ast.Program and accumulates every type error found, rather than
// stopping at the first one (spec.md §4.3 "Failure mode").
package semantic

import (
	"fmt"

	"github.com/ycharfi09/VibeLang/internal/ast"
	"github.com/ycharfi09/VibeLang/internal/cerrors"
)

// Checker accumulates type declarations and function signatures as it
// walks a program, the way the Python reference's TypeChecker does.
type Checker struct {
	typeEnv            env
	typeDeclarations   map[string]*ast.TypeDeclaration
	functionSignatures map[string]*Signature
	errors             []*cerrors.TypeCheckError
}

// New returns a Checker ready to check one program.
func New() *Checker {
	return &Checker{
		typeEnv:            env{},
		typeDeclarations:   map[string]*ast.TypeDeclaration{},
		functionSignatures: map[string]*Signature{},
	}
}

// Check type-checks program and returns every diagnostic found, in
// declaration order; an empty slice means the program is well-typed.
func Check(program *ast.Program) []*cerrors.TypeCheckError {
	c := New()
	return c.Check(program)
}

func (c *Checker) Check(program *ast.Program) []*cerrors.TypeCheckError {
	c.errors = nil
	c.typeEnv = env{}
	c.typeDeclarations = map[string]*ast.TypeDeclaration{}
	c.functionSignatures = map[string]*Signature{}

	for _, decl := range program.Declarations {
		switch d := decl.(type) {
		case *ast.TypeDeclaration:
			c.checkTypeDeclaration(d)
		case *ast.FunctionDeclaration:
			c.checkFunctionDeclaration(d)
		}
	}

	return c.errors
}

func (c *Checker) errorf(pos cerrors.Position, format string, args ...any) {
	c.errors = append(c.errors, cerrors.NewTypeCheckError(pos, fmt.Sprintf(format, args...)))
}

// ------------------------------------------------------------------
// Type declarations
// ------------------------------------------------------------------

func (c *Checker) checkTypeDeclaration(decl *ast.TypeDeclaration) {
	c.typeDeclarations[decl.Name] = decl

	switch def := decl.Definition.(type) {
	case *ast.SimpleType:
		c.typeEnv[decl.Name] = resolveSimpleType(def)
	case *ast.SumType:
		c.typeEnv[decl.Name] = decl.Name
		for _, v := range def.Variants {
			c.typeEnv[v.Name] = decl.Name
		}
	case *ast.RefinedType:
		c.typeEnv[decl.Name] = typeToStr(def.Base)
	}

	declared := c.typeEnv[decl.Name]
	if declared == "" {
		declared = "Unknown"
	}
	for _, inv := range decl.Invariants {
		invEnv := env{"value": declared}
		invType := c.inferType(inv, invEnv)
		if invType != "Bool" {
			c.errorf(inv.Pos(), "Invariant must be Bool, got %s", invType)
		}
	}
}

func resolveSimpleType(st *ast.SimpleType) string {
	if len(st.Args) > 0 {
		return typeToStr(st)
	}
	return st.Name
}

// ------------------------------------------------------------------
// Function declarations
// ------------------------------------------------------------------

func (c *Checker) checkFunctionDeclaration(decl *ast.FunctionDeclaration) {
	retTypeStr := typeToStr(decl.ReturnType)

	paramTypes := make(map[string]string, len(decl.Parameters))
	paramOrder := make([]string, len(decl.Parameters))
	for i, param := range decl.Parameters {
		t := typeToStr(param.TypeAnnotation)
		paramTypes[param.Name] = t
		paramOrder[i] = t
	}

	c.functionSignatures[decl.Name] = &Signature{Params: paramTypes, ParamOrder: paramOrder, ReturnType: retTypeStr}
	c.typeEnv[decl.Name] = retTypeStr

	localEnv := c.typeEnv.clone()
	for name, t := range paramTypes {
		localEnv[name] = t
	}

	for _, pre := range decl.Preconditions {
		preType := c.inferType(pre, localEnv)
		if preType != "Bool" {
			c.errorf(pre.Pos(), "Precondition must be Bool, got %s", preType)
		}
	}

	postEnv := localEnv.clone()
	postEnv["result"] = retTypeStr
	for _, post := range decl.Postconditions {
		postType := c.inferType(post, postEnv)
		if postType != "Bool" {
			c.errorf(post.Pos(), "Postcondition must be Bool, got %s", postType)
		}
	}

	bodyType := c.checkBlock(decl.Body, localEnv)
	if bodyType != "Unknown" && retTypeStr != "Unknown" {
		if !c.typesCompatible(bodyType, retTypeStr) {
			c.errorf(decl.Pos(), "Function '%s' body type %s does not match return type %s",
				decl.Name, bodyType, retTypeStr)
		}
	}
}

// ------------------------------------------------------------------
// Block / statement checking
// ------------------------------------------------------------------

func (c *Checker) checkBlock(block *ast.Block, parentEnv env) string {
	resultType := "Unit"
	localEnv := parentEnv.clone()

	for _, stmt := range block.Statements {
		switch s := stmt.(type) {
		case *ast.LetBinding:
			valType := c.inferType(s.Value, localEnv)
			if s.TypeAnnotation != nil {
				annType := typeToStr(s.TypeAnnotation)
				if valType != "Unknown" && !c.typesCompatible(valType, annType) {
					c.errorf(s.Pos(), "Let binding '%s' type %s does not match value type %s",
						s.Name, annType, valType)
				}
				localEnv[s.Name] = annType
			} else {
				localEnv[s.Name] = valType
			}
			resultType = "Unit"
		case *ast.Assignment:
			valType := c.inferType(s.Value, localEnv)
			if targetType, ok := localEnv[s.Target]; ok && valType != "Unknown" {
				if !c.typesCompatible(valType, targetType) {
					c.errorf(s.Pos(), "Cannot assign %s to '%s' of type %s", valType, s.Target, targetType)
				}
			}
			resultType = "Unit"
		case *ast.ExpressionStatement:
			resultType = c.inferType(s.Expression, localEnv)
		case *ast.Block:
			resultType = c.checkBlock(s, localEnv)
		}
	}

	return resultType
}

// ------------------------------------------------------------------
// Expression type inference
// ------------------------------------------------------------------

func (c *Checker) inferType(expr ast.Expression, e env) string {
	switch ex := expr.(type) {
	case *ast.IntegerLiteral:
		return "Int"
	case *ast.FloatLiteral:
		return "Float"
	case *ast.StringLiteral:
		return "String"
	case *ast.BoolLiteral:
		return "Bool"

	case *ast.Identifier:
		if t, ok := e[ex.Name]; ok {
			return t
		}
		if sig, ok := c.functionSignatures[ex.Name]; ok {
			return sig.ReturnType
		}
		c.errorf(ex.Pos(), "Undefined identifier '%s'", ex.Name)
		return "Unknown"

	case *ast.BinaryOp:
		return c.inferBinaryOp(ex, e)

	case *ast.UnaryOp:
		return c.inferUnaryOp(ex, e)

	case *ast.FunctionCall:
		return c.inferFunctionCall(ex, e)

	case *ast.MemberAccess:
		c.inferType(ex.Object, e)
		return "Unknown"

	case *ast.ArrayLiteral:
		if len(ex.Elements) == 0 {
			return "Array[Unknown]"
		}
		elemType := c.inferType(ex.Elements[0], e)
		for _, elem := range ex.Elements[1:] {
			et := c.inferType(elem, e)
			if et != elemType && et != "Unknown" && elemType != "Unknown" {
				c.errorf(elem.Pos(), "Array element type mismatch: expected %s, got %s", elemType, et)
			}
		}
		return fmt.Sprintf("Array[%s]", elemType)

	case *ast.RecordLiteral:
		return "Unknown"

	case *ast.WhenExpression:
		condType := c.inferType(ex.Condition, e)
		if condType != "Bool" && condType != "Unknown" {
			c.errorf(ex.Condition.Pos(), "When condition must be Bool, got %s", condType)
		}
		thenType := c.checkBlock(ex.Then, e)
		if ex.Else != nil {
			elseType := c.checkBlock(ex.Else, e)
			if thenType != elseType && thenType != "Unknown" && elseType != "Unknown" {
				c.errorf(ex.Pos(), "When branches have different types: %s vs %s", thenType, elseType)
			}
		}
		return thenType

	case *ast.GivenExpression:
		c.inferType(ex.Scrutinee, e)
		var first string
		for i, cs := range ex.Cases {
			ct := c.inferType(cs.Expression, e)
			if i == 0 {
				first = ct
			}
		}
		if len(ex.Cases) > 0 {
			return first
		}
		return "Unknown"
	}

	return "Unknown"
}

func (c *Checker) inferBinaryOp(expr *ast.BinaryOp, e env) string {
	leftType := c.inferType(expr.Left, e)
	rightType := c.inferType(expr.Right, e)
	op := expr.Operator

	switch {
	case arithmeticOps[op]:
		if leftType == "Unknown" || rightType == "Unknown" {
			return "Unknown"
		}
		if leftType == "Int" && rightType == "Int" {
			return "Int"
		}
		if leftType == "Float" && rightType == "Float" {
			return "Float"
		}
		if (leftType == "Int" && rightType == "Float") || (leftType == "Float" && rightType == "Int") {
			return "Float"
		}
		if op == "+" && leftType == "String" && rightType == "String" {
			return "String"
		}
		c.errorf(expr.Pos(), "Cannot apply '%s' to %s and %s", op, leftType, rightType)
		return "Unknown"

	case comparisonOps[op]:
		if leftType == "Unknown" || rightType == "Unknown" {
			return "Bool"
		}
		if isNumeric(leftType) && isNumeric(rightType) {
			return "Bool"
		}
		c.errorf(expr.Pos(), "Cannot apply '%s' to %s and %s", op, leftType, rightType)
		return "Bool"

	case equalityOps[op]:
		return "Bool"

	case logicalOps[op]:
		if leftType != "Bool" && leftType != "Unknown" {
			c.errorf(expr.Pos(), "Left operand of '%s' must be Bool, got %s", op, leftType)
		}
		if rightType != "Bool" && rightType != "Unknown" {
			c.errorf(expr.Pos(), "Right operand of '%s' must be Bool, got %s", op, rightType)
		}
		return "Bool"
	}

	return "Unknown"
}

func isNumeric(t string) bool { return t == "Int" || t == "Float" }

func (c *Checker) inferUnaryOp(expr *ast.UnaryOp, e env) string {
	operandType := c.inferType(expr.Operand, e)
	switch expr.Operator {
	case "!":
		if operandType != "Bool" && operandType != "Unknown" {
			c.errorf(expr.Pos(), "Operand of '!' must be Bool, got %s", operandType)
		}
		return "Bool"
	case "-":
		if operandType == "Int" || operandType == "Float" || operandType == "Unknown" {
			return operandType
		}
		c.errorf(expr.Pos(), "Operand of unary '-' must be numeric, got %s", operandType)
		return "Unknown"
	}
	return "Unknown"
}

func (c *Checker) inferFunctionCall(expr *ast.FunctionCall, e env) string {
	if ident, ok := expr.Callee.(*ast.Identifier); ok {
		if sig, ok := c.functionSignatures[ident.Name]; ok {
			if len(expr.Arguments) != len(sig.ParamOrder) {
				c.errorf(expr.Pos(), "Function '%s' expects %d arguments, got %d",
					ident.Name, len(sig.ParamOrder), len(expr.Arguments))
			} else {
				for i, arg := range expr.Arguments {
					expected := sig.ParamOrder[i]
					argType := c.inferType(arg, e)
					if argType != "Unknown" && !c.typesCompatible(argType, expected) {
						c.errorf(arg.Pos(), "Argument %d of '%s': expected %s, got %s",
							i+1, ident.Name, expected, argType)
					}
				}
			}
			return sig.ReturnType
		}
	}

	c.inferType(expr.Callee, e)
	for _, arg := range expr.Arguments {
		c.inferType(arg, e)
	}
	return "Unknown"
}

// ------------------------------------------------------------------
// Compatibility
// ------------------------------------------------------------------

func (c *Checker) typesCompatible(actual, expected string) bool {
	if actual == expected {
		return true
	}
	if actual == "Unknown" || expected == "Unknown" {
		return true
	}
	if actual == "Int" && expected == "Float" {
		return true
	}
	if _, ok := c.typeDeclarations[actual]; ok {
		if resolved, ok := c.typeEnv[actual]; ok && c.typesCompatible(resolved, expected) {
			return true
		}
	}
	if _, ok := c.typeDeclarations[expected]; ok {
		if resolved, ok := c.typeEnv[expected]; ok && c.typesCompatible(actual, resolved) {
			return true
		}
	}
	return false
}
