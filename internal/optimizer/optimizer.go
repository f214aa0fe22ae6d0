// Package optimizer performs pure AST-to-AST optimizations on a checked
// VibeLang program: constant folding, identity simplification, and
// when-expression dead code elimination (spec.md §4.4). Optimize never
// mutates its input. Function declarations, blocks, statements and
// composite expressions are fresh nodes; literals, identifiers, imports
// and type declarations are shared with the input tree, not copied.
package optimizer

import (
	"github.com/ycharfi09/VibeLang/internal/ast"
	"github.com/ycharfi09/VibeLang/internal/cerrors"
)

// Optimizer counts the rewrites it applies across one Optimize call.
type Optimizer struct {
	OptimizationsApplied int
}

// New returns a fresh Optimizer with its counter at zero.
func New() *Optimizer {
	return &Optimizer{}
}

// Optimize returns an optimized copy of program; program itself is left
// untouched.
func Optimize(program *ast.Program) (*ast.Program, int) {
	o := New()
	return o.Optimize(program), o.OptimizationsApplied
}

func (o *Optimizer) Optimize(program *ast.Program) *ast.Program {
	decls := make([]ast.Declaration, len(program.Declarations))
	for i, d := range program.Declarations {
		decls[i] = o.optimizeDeclaration(d)
	}
	return &ast.Program{Imports: program.Imports, Declarations: decls}
}

// ------------------------------------------------------------------
// Declarations
// ------------------------------------------------------------------

func (o *Optimizer) optimizeDeclaration(decl ast.Declaration) ast.Declaration {
	fn, ok := decl.(*ast.FunctionDeclaration)
	if !ok {
		return decl
	}
	out := *fn
	out.Preconditions = o.optimizeExprs(fn.Preconditions)
	out.Postconditions = o.optimizeExprs(fn.Postconditions)
	out.Body = o.optimizeBlock(fn.Body)
	return &out
}

func (o *Optimizer) optimizeExprs(exprs []ast.Expression) []ast.Expression {
	if exprs == nil {
		return nil
	}
	out := make([]ast.Expression, len(exprs))
	for i, e := range exprs {
		out[i] = o.optimizeExpr(e)
	}
	return out
}

// ------------------------------------------------------------------
// Statements / blocks
// ------------------------------------------------------------------

func (o *Optimizer) optimizeBlock(block *ast.Block) *ast.Block {
	stmts := make([]ast.Statement, len(block.Statements))
	for i, s := range block.Statements {
		stmts[i] = o.optimizeStmt(s)
	}
	return &ast.Block{Statements: stmts, Position: block.Position}
}

func (o *Optimizer) optimizeStmt(stmt ast.Statement) ast.Statement {
	switch s := stmt.(type) {
	case *ast.Block:
		return o.optimizeBlock(s)
	case *ast.LetBinding:
		out := *s
		out.Value = o.optimizeExpr(s.Value)
		return &out
	case *ast.Assignment:
		out := *s
		out.Value = o.optimizeExpr(s.Value)
		return &out
	case *ast.ExpressionStatement:
		out := *s
		out.Expression = o.optimizeExpr(s.Expression)
		return &out
	}
	return stmt
}

// ------------------------------------------------------------------
// Expressions
// ------------------------------------------------------------------

func (o *Optimizer) optimizeExpr(expr ast.Expression) ast.Expression {
	switch e := expr.(type) {
	case *ast.BinaryOp:
		return o.optimizeBinary(e)
	case *ast.UnaryOp:
		return o.optimizeUnary(e)
	case *ast.FunctionCall:
		out := *e
		out.Arguments = o.optimizeExprs(e.Arguments)
		return &out
	case *ast.MemberAccess:
		out := *e
		out.Object = o.optimizeExpr(e.Object)
		return &out
	case *ast.ArrayLiteral:
		out := *e
		out.Elements = o.optimizeExprs(e.Elements)
		return &out
	case *ast.RecordLiteral:
		fields := make([]ast.RecordField, len(e.Fields))
		for i, f := range e.Fields {
			fields[i] = ast.RecordField{Name: f.Name, Value: o.optimizeExpr(f.Value)}
		}
		out := *e
		out.Fields = fields
		return &out
	case *ast.WhenExpression:
		return o.optimizeWhen(e)
	case *ast.GivenExpression:
		out := *e
		out.Scrutinee = o.optimizeExpr(e.Scrutinee)
		cases := make([]*ast.PatternCase, len(e.Cases))
		for i, c := range e.Cases {
			cc := *c
			cc.Expression = o.optimizeExpr(c.Expression)
			cases[i] = &cc
		}
		out.Cases = cases
		return &out
	}
	return expr
}

// ------------------------------------------------------------------
// Binary operations: constant folding + identity simplification
// ------------------------------------------------------------------

func (o *Optimizer) optimizeBinary(expr *ast.BinaryOp) ast.Expression {
	left := o.optimizeExpr(expr.Left)
	right := o.optimizeExpr(expr.Right)
	op := expr.Operator
	pos := expr.Position

	if folded := tryFoldBinary(left, op, right, pos); folded != nil {
		o.OptimizationsApplied++
		return folded
	}

	if simplified := trySimplifyIdentity(left, op, right, pos); simplified != nil {
		o.OptimizationsApplied++
		return simplified
	}

	return &ast.BinaryOp{Left: left, Operator: op, Right: right, Position: pos}
}

func tryFoldBinary(left ast.Expression, op string, right ast.Expression, pos cerrors.Position) ast.Expression {
	li, lIsInt := left.(*ast.IntegerLiteral)
	ri, rIsInt := right.(*ast.IntegerLiteral)
	lf, lIsFloat := left.(*ast.FloatLiteral)
	rf, rIsFloat := right.(*ast.FloatLiteral)

	if lIsInt && rIsInt {
		return foldInt(li.Value, op, ri.Value, pos)
	}
	if lIsFloat && rIsFloat {
		return foldFloat(lf.Value, op, rf.Value, pos)
	}
	if (lIsInt || lIsFloat) && (rIsInt || rIsFloat) {
		lv := numericValue(left)
		rv := numericValue(right)
		return foldFloat(lv, op, rv, pos)
	}

	if ls, ok := left.(*ast.StringLiteral); ok {
		if rs, ok := right.(*ast.StringLiteral); ok && op == "+" {
			return &ast.StringLiteral{Value: ls.Value + rs.Value, Position: pos}
		}
	}

	if lb, ok := left.(*ast.BoolLiteral); ok {
		if rb, ok := right.(*ast.BoolLiteral); ok {
			return foldBool(lb.Value, op, rb.Value, pos)
		}
	}

	return nil
}

func numericValue(expr ast.Expression) float64 {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return float64(e.Value)
	case *ast.FloatLiteral:
		return e.Value
	}
	return 0
}

func foldInt(lv int64, op string, rv int64, pos cerrors.Position) ast.Expression {
	switch op {
	case "+":
		return &ast.IntegerLiteral{Value: lv + rv, Position: pos}
	case "-":
		return &ast.IntegerLiteral{Value: lv - rv, Position: pos}
	case "*":
		return &ast.IntegerLiteral{Value: lv * rv, Position: pos}
	case "%":
		if rv == 0 {
			return nil
		}
		return &ast.IntegerLiteral{Value: lv % rv, Position: pos}
	case "/":
		if rv == 0 {
			return nil
		}
		if lv%rv == 0 {
			return &ast.IntegerLiteral{Value: lv / rv, Position: pos}
		}
		return &ast.FloatLiteral{Value: float64(lv) / float64(rv), Position: pos}
	case "==":
		return &ast.BoolLiteral{Value: lv == rv, Position: pos}
	case "!=":
		return &ast.BoolLiteral{Value: lv != rv, Position: pos}
	case "<":
		return &ast.BoolLiteral{Value: lv < rv, Position: pos}
	case "<=":
		return &ast.BoolLiteral{Value: lv <= rv, Position: pos}
	case ">":
		return &ast.BoolLiteral{Value: lv > rv, Position: pos}
	case ">=":
		return &ast.BoolLiteral{Value: lv >= rv, Position: pos}
	}
	return nil
}

func foldFloat(lv float64, op string, rv float64, pos cerrors.Position) ast.Expression {
	switch op {
	case "+":
		return &ast.FloatLiteral{Value: lv + rv, Position: pos}
	case "-":
		return &ast.FloatLiteral{Value: lv - rv, Position: pos}
	case "*":
		return &ast.FloatLiteral{Value: lv * rv, Position: pos}
	case "/":
		if rv == 0.0 {
			return nil
		}
		return &ast.FloatLiteral{Value: lv / rv, Position: pos}
	case "==":
		return &ast.BoolLiteral{Value: lv == rv, Position: pos}
	case "!=":
		return &ast.BoolLiteral{Value: lv != rv, Position: pos}
	case "<":
		return &ast.BoolLiteral{Value: lv < rv, Position: pos}
	case "<=":
		return &ast.BoolLiteral{Value: lv <= rv, Position: pos}
	case ">":
		return &ast.BoolLiteral{Value: lv > rv, Position: pos}
	case ">=":
		return &ast.BoolLiteral{Value: lv >= rv, Position: pos}
	}
	return nil
}

func foldBool(lv bool, op string, rv bool, pos cerrors.Position) ast.Expression {
	switch op {
	case "&&":
		return &ast.BoolLiteral{Value: lv && rv, Position: pos}
	case "||":
		return &ast.BoolLiteral{Value: lv || rv, Position: pos}
	case "==":
		return &ast.BoolLiteral{Value: lv == rv, Position: pos}
	case "!=":
		return &ast.BoolLiteral{Value: lv != rv, Position: pos}
	}
	return nil
}

func isIntLiteral(expr ast.Expression, value int64) bool {
	lit, ok := expr.(*ast.IntegerLiteral)
	return ok && lit.Value == value
}

func trySimplifyIdentity(left ast.Expression, op string, right ast.Expression, pos cerrors.Position) ast.Expression {
	lZero := isIntLiteral(left, 0)
	rZero := isIntLiteral(right, 0)
	lOne := isIntLiteral(left, 1)
	rOne := isIntLiteral(right, 1)

	switch {
	case op == "+" && rZero:
		return left
	case op == "+" && lZero:
		return right
	case op == "-" && rZero:
		return left
	case op == "*" && rOne:
		return left
	case op == "*" && lOne:
		return right
	case op == "*" && (rZero || lZero):
		return &ast.IntegerLiteral{Value: 0, Position: pos}
	}

	return nil
}

// ------------------------------------------------------------------
// Unary operations: constant folding + double negation
// ------------------------------------------------------------------

func (o *Optimizer) optimizeUnary(expr *ast.UnaryOp) ast.Expression {
	operand := o.optimizeExpr(expr.Operand)
	op := expr.Operator
	pos := expr.Position

	if op == "-" {
		if lit, ok := operand.(*ast.IntegerLiteral); ok {
			o.OptimizationsApplied++
			return &ast.IntegerLiteral{Value: -lit.Value, Position: pos}
		}
		if lit, ok := operand.(*ast.FloatLiteral); ok {
			o.OptimizationsApplied++
			return &ast.FloatLiteral{Value: -lit.Value, Position: pos}
		}
	}
	if op == "!" {
		if lit, ok := operand.(*ast.BoolLiteral); ok {
			o.OptimizationsApplied++
			return &ast.BoolLiteral{Value: !lit.Value, Position: pos}
		}
		if inner, ok := operand.(*ast.UnaryOp); ok && inner.Operator == "!" {
			o.OptimizationsApplied++
			return inner.Operand
		}
	}

	return &ast.UnaryOp{Operator: op, Operand: operand, Position: pos}
}

// ------------------------------------------------------------------
// When expression: dead code elimination
// ------------------------------------------------------------------

func (o *Optimizer) optimizeWhen(expr *ast.WhenExpression) ast.Expression {
	cond := o.optimizeExpr(expr.Condition)
	thenBlock := o.optimizeBlock(expr.Then)
	var elseBlock *ast.Block
	if expr.Else != nil {
		elseBlock = o.optimizeBlock(expr.Else)
	}
	pos := expr.Position

	if lit, ok := cond.(*ast.BoolLiteral); ok {
		if lit.Value {
			o.OptimizationsApplied++
			return blockToExpr(thenBlock, pos)
		}
		o.OptimizationsApplied++
		if elseBlock != nil {
			return blockToExpr(elseBlock, pos)
		}
		return &ast.IntegerLiteral{Value: 0, Position: pos}
	}

	return &ast.WhenExpression{Condition: cond, Then: thenBlock, Else: elseBlock, Position: pos}
}

// blockToExpr extracts the meaningful expression from a single-statement
// block, or else wraps the block in a `when true` guard so it is
// preserved as an expression.
func blockToExpr(block *ast.Block, pos cerrors.Position) ast.Expression {
	if len(block.Statements) == 1 {
		if es, ok := block.Statements[0].(*ast.ExpressionStatement); ok {
			return es.Expression
		}
	}
	return &ast.WhenExpression{
		Condition: &ast.BoolLiteral{Value: true, Position: pos},
		Then:      block,
		Position:  pos,
	}
}
