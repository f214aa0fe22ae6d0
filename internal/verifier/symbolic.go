package verifier

import "github.com/ycharfi09/VibeLang/internal/ast"

// SymbolicBound records a known fact `var op value` an evaluator may use
// to answer later truth queries about the same variable.
type SymbolicBound struct {
	Var   string
	Op    string // ">=", ">", "<=", "<", "=="
	Value float64
}

// SymbolicEvaluator evaluates expressions under a growing set of
// assumptions, without an SMT solver: constant folding, reflexivity,
// assumption lookup, and one additive-pattern special case (spec.md §4.5
// "Design Notes" — the single extension point for adding more patterns
// is implies, below).
type SymbolicEvaluator struct {
	assumptions []SymbolicBound
}

// NewSymbolicEvaluator returns an evaluator with the given starting
// assumptions (nil is fine).
func NewSymbolicEvaluator(assumptions []SymbolicBound) *SymbolicEvaluator {
	return &SymbolicEvaluator{assumptions: append([]SymbolicBound(nil), assumptions...)}
}

func (s *SymbolicEvaluator) addAssumption(b SymbolicBound) {
	s.assumptions = append(s.assumptions, b)
}

// ------------------------------------------------------------------
// Constant folding
// ------------------------------------------------------------------

// TryEvalConstant attempts to fold expr to a constant int64, float64, or
// bool; it returns (nil, false) when expr is not fully constant.
func (s *SymbolicEvaluator) TryEvalConstant(expr ast.Expression) (any, bool) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return e.Value, true
	case *ast.FloatLiteral:
		return e.Value, true
	case *ast.BoolLiteral:
		return e.Value, true

	case *ast.UnaryOp:
		operand, ok := s.TryEvalConstant(e.Operand)
		if !ok {
			return nil, false
		}
		switch e.Operator {
		case "-":
			switch v := operand.(type) {
			case int64:
				return -v, true
			case float64:
				return -v, true
			}
		case "!":
			if b, ok := operand.(bool); ok {
				return !b, true
			}
		}
		return nil, false

	case *ast.BinaryOp:
		left, ok := s.TryEvalConstant(e.Left)
		if !ok {
			return nil, false
		}
		right, ok := s.TryEvalConstant(e.Right)
		if !ok {
			return nil, false
		}
		return evalBinary(left, e.Operator, right)
	}

	return nil, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func floorDivInt(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorModInt(a, b int64) int64 {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}

// evalBinary evaluates a binary op over two already-constant operands,
// mirroring the reference evaluator's numeric-tower promotion: int op int
// stays int, with `/` and `%` flooring toward negative infinity; any float
// operand promotes both sides to float.
func evalBinary(left any, op string, right any) (any, bool) {
	li, lInt := left.(int64)
	ri, rInt := right.(int64)

	if lInt && rInt {
		switch op {
		case "+":
			return li + ri, true
		case "-":
			return li - ri, true
		case "*":
			return li * ri, true
		case "/":
			if ri == 0 {
				return nil, false
			}
			return floorDivInt(li, ri), true
		case "%":
			if ri == 0 {
				return nil, false
			}
			return floorModInt(li, ri), true
		case "==":
			return li == ri, true
		case "!=":
			return li != ri, true
		case "<":
			return li < ri, true
		case ">":
			return li > ri, true
		case "<=":
			return li <= ri, true
		case ">=":
			return li >= ri, true
		}
		return nil, false
	}

	if lf, lOK := asFloat(left); lOK {
		if rf, rOK := asFloat(right); rOK {
			switch op {
			case "+":
				return lf + rf, true
			case "-":
				return lf - rf, true
			case "*":
				return lf * rf, true
			case "/":
				if rf == 0 {
					return nil, false
				}
				return lf / rf, true
			case "==":
				return lf == rf, true
			case "!=":
				return lf != rf, true
			case "<":
				return lf < rf, true
			case ">":
				return lf > rf, true
			case "<=":
				return lf <= rf, true
			case ">=":
				return lf >= rf, true
			}
			return nil, false
		}
	}

	if lb, lOK := left.(bool); lOK {
		if rb, rOK := right.(bool); rOK {
			switch op {
			case "&&":
				return lb && rb, true
			case "||":
				return lb || rb, true
			case "==":
				return lb == rb, true
			case "!=":
				return lb != rb, true
			}
		}
	}

	return nil, false
}

// ------------------------------------------------------------------
// Symbolic truth checking
// ------------------------------------------------------------------

// CheckTruth determines the truth value of expr where possible: true,
// false, or nil for unknown.
func (s *SymbolicEvaluator) CheckTruth(expr ast.Expression) *bool {
	if c, ok := s.TryEvalConstant(expr); ok {
		if b, ok := c.(bool); ok {
			return &b
		}
		truthy := truthyOf(c)
		return &truthy
	}

	if lit, ok := expr.(*ast.BoolLiteral); ok {
		v := lit.Value
		return &v
	}

	if bin, ok := expr.(*ast.BinaryOp); ok {
		switch bin.Operator {
		case "&&":
			lt := s.CheckTruth(bin.Left)
			rt := s.CheckTruth(bin.Right)
			if (lt != nil && !*lt) || (rt != nil && !*rt) {
				f := false
				return &f
			}
			if lt != nil && *lt && rt != nil && *rt {
				t := true
				return &t
			}
			return nil
		case "||":
			lt := s.CheckTruth(bin.Left)
			rt := s.CheckTruth(bin.Right)
			if (lt != nil && *lt) || (rt != nil && *rt) {
				t := true
				return &t
			}
			if lt != nil && !*lt && rt != nil && !*rt {
				f := false
				return &f
			}
			return nil
		}
		return s.checkComparison(bin)
	}

	if un, ok := expr.(*ast.UnaryOp); ok && un.Operator == "!" {
		inner := s.CheckTruth(un.Operand)
		if inner == nil {
			return nil
		}
		flipped := !*inner
		return &flipped
	}

	return nil
}

func truthyOf(v any) bool {
	switch n := v.(type) {
	case int64:
		return n != 0
	case float64:
		return n != 0
	case bool:
		return n
	}
	return false
}

// ------------------------------------------------------------------
// Comparison reasoning
// ------------------------------------------------------------------

var comparisonOperators = map[string]bool{
	">=": true, ">": true, "<=": true, "<": true, "==": true, "!=": true,
}

// extractableBoundOperators excludes "!=": a bound of the form
// `var != constant` carries no useful ordering information to extract.
var extractableBoundOperators = map[string]bool{
	">=": true, ">": true, "<=": true, "<": true, "==": true,
}

func (s *SymbolicEvaluator) checkComparison(expr *ast.BinaryOp) *bool {
	op := expr.Operator
	if !comparisonOperators[op] {
		return nil
	}

	if structurallyEqual(expr.Left, expr.Right) {
		var result bool
		switch op {
		case ">=", "<=", "==":
			result = true
		case ">", "<", "!=":
			result = false
		}
		return &result
	}

	if result := s.checkVarConst(expr.Left, op, expr.Right); result != nil {
		return result
	}

	if flippedOp, ok := flipOp(op); ok {
		if result := s.checkVarConst(expr.Right, flippedOp, expr.Left); result != nil {
			return result
		}
	}

	if result := s.checkAdditivePattern(expr); result != nil {
		return result
	}

	return nil
}

func (s *SymbolicEvaluator) checkVarConst(varExpr ast.Expression, op string, constExpr ast.Expression) *bool {
	ident, ok := varExpr.(*ast.Identifier)
	if !ok {
		return nil
	}
	c, ok := s.TryEvalConstant(constExpr)
	if !ok {
		return nil
	}
	cf, ok := asFloat(c)
	if !ok {
		return nil
	}

	for _, a := range s.assumptions {
		if a.Var != ident.Name {
			continue
		}
		if result := implies(a.Op, a.Value, op, cf); result != nil {
			return result
		}
	}
	return nil
}

func (s *SymbolicEvaluator) checkAdditivePattern(expr *ast.BinaryOp) *bool {
	op := expr.Operator
	switch op {
	case ">=", ">", "<=", "<":
	default:
		return nil
	}

	left, right := expr.Left, expr.Right

	if lb, ok := left.(*ast.BinaryOp); ok && lb.Operator == "+" {
		if structurallyEqual(lb.Left, right) {
			return s.checkAddendSign(lb.Right, op)
		}
		if structurallyEqual(lb.Right, right) {
			return s.checkAddendSign(lb.Left, op)
		}
	}

	if rb, ok := right.(*ast.BinaryOp); ok && rb.Operator == "+" {
		if flipped, ok := flipOp(op); ok {
			if structurallyEqual(rb.Left, left) {
				return s.checkAddendSign(rb.Right, flipped)
			}
			if structurallyEqual(rb.Right, left) {
				return s.checkAddendSign(rb.Left, flipped)
			}
		}
	}

	return nil
}

func (s *SymbolicEvaluator) checkAddendSign(addend ast.Expression, op string) *bool {
	var targetOp string
	switch op {
	case ">=", "<=":
		targetOp = op
	case ">", "<":
		targetOp = op
	default:
		return nil
	}

	if c, ok := s.TryEvalConstant(addend); ok {
		if cf, ok := asFloat(c); ok {
			var result bool
			switch targetOp {
			case ">=":
				result = cf >= 0
			case ">":
				result = cf > 0
			case "<=":
				result = cf <= 0
			case "<":
				result = cf < 0
			}
			return &result
		}
	}

	if ident, ok := addend.(*ast.Identifier); ok {
		for _, a := range s.assumptions {
			if a.Var != ident.Name {
				continue
			}
			if result := implies(a.Op, a.Value, targetOp, 0); result != nil {
				return result
			}
		}
	}

	return nil
}

// ------------------------------------------------------------------
// Structural equality
// ------------------------------------------------------------------

// structurallyEqual is a shallow equality check: same node kind and
// matching literal/identifier value. It does not recurse into operators.
func structurallyEqual(a, b ast.Expression) bool {
	switch av := a.(type) {
	case *ast.Identifier:
		bv, ok := b.(*ast.Identifier)
		return ok && av.Name == bv.Name
	case *ast.IntegerLiteral:
		bv, ok := b.(*ast.IntegerLiteral)
		return ok && av.Value == bv.Value
	case *ast.FloatLiteral:
		bv, ok := b.(*ast.FloatLiteral)
		return ok && av.Value == bv.Value
	case *ast.BoolLiteral:
		bv, ok := b.(*ast.BoolLiteral)
		return ok && av.Value == bv.Value
	case *ast.StringLiteral:
		bv, ok := b.(*ast.StringLiteral)
		return ok && av.Value == bv.Value
	}
	return false
}

// ------------------------------------------------------------------
// Extract assumptions from an expression
// ------------------------------------------------------------------

// ExtractBounds pulls simple `var OP constant` facts out of a contract
// expression, recursing through `&&` conjunctions.
func (s *SymbolicEvaluator) ExtractBounds(expr ast.Expression) []SymbolicBound {
	var bounds []SymbolicBound

	bin, ok := expr.(*ast.BinaryOp)
	if !ok {
		return bounds
	}

	if bin.Operator == "&&" {
		bounds = append(bounds, s.ExtractBounds(bin.Left)...)
		bounds = append(bounds, s.ExtractBounds(bin.Right)...)
		return bounds
	}

	if extractableBoundOperators[bin.Operator] {
		if b, ok := extractSingleBound(bin.Left, bin.Operator, bin.Right); ok {
			bounds = append(bounds, b)
		}
		if flipped, ok := flipOp(bin.Operator); ok {
			if b, ok := extractSingleBound(bin.Right, flipped, bin.Left); ok {
				bounds = append(bounds, b)
			}
		}
	}

	return bounds
}

func extractSingleBound(left ast.Expression, op string, right ast.Expression) (SymbolicBound, bool) {
	ident, ok := left.(*ast.Identifier)
	if !ok {
		return SymbolicBound{}, false
	}
	switch r := right.(type) {
	case *ast.IntegerLiteral:
		return SymbolicBound{Var: ident.Name, Op: op, Value: float64(r.Value)}, true
	case *ast.FloatLiteral:
		return SymbolicBound{Var: ident.Name, Op: op, Value: r.Value}, true
	}
	return SymbolicBound{}, false
}

// ------------------------------------------------------------------
// Implication between bounds
// ------------------------------------------------------------------

func flipOp(op string) (string, bool) {
	switch op {
	case ">=":
		return "<=", true
	case "<=":
		return ">=", true
	case ">":
		return "<", true
	case "<":
		return ">", true
	case "==":
		return "==", true
	case "!=":
		return "!=", true
	}
	return "", false
}

// implies answers whether `var knownOp knownVal` implies `var queryOp
// queryVal` — true, false (a contradiction), or nil (neither).
func implies(knownOp string, knownVal float64, queryOp string, queryVal float64) *bool {
	t, f := true, false

	switch {
	case knownOp == ">=" && queryOp == ">=":
		if knownVal >= queryVal {
			return &t
		}
	case knownOp == ">=" && queryOp == ">":
		if knownVal > queryVal {
			return &t
		}
	case knownOp == ">" && queryOp == ">=":
		if knownVal >= queryVal {
			return &t
		}
	case knownOp == ">" && queryOp == ">":
		if knownVal >= queryVal {
			return &t
		}
	case knownOp == "<=" && queryOp == "<=":
		if knownVal <= queryVal {
			return &t
		}
	case knownOp == "<=" && queryOp == "<":
		if knownVal < queryVal {
			return &t
		}
	case knownOp == "<" && queryOp == "<=":
		if knownVal <= queryVal {
			return &t
		}
	case knownOp == "<" && queryOp == "<":
		if knownVal <= queryVal {
			return &t
		}
	}

	if knownOp == "==" {
		switch queryOp {
		case "==":
			r := knownVal == queryVal
			return &r
		case "!=":
			r := knownVal != queryVal
			return &r
		case ">=":
			r := knownVal >= queryVal
			return &r
		case ">":
			r := knownVal > queryVal
			return &r
		case "<=":
			r := knownVal <= queryVal
			return &r
		case "<":
			r := knownVal < queryVal
			return &r
		}
	}

	switch {
	case knownOp == ">=" && queryOp == "<":
		if knownVal >= queryVal {
			return &f
		}
	case knownOp == ">" && queryOp == "<=":
		if knownVal >= queryVal {
			return &f
		}
	case knownOp == "<=" && queryOp == ">":
		if knownVal <= queryVal {
			return &f
		}
	case knownOp == "<" && queryOp == ">=":
		if knownVal <= queryVal {
			return &f
		}
	}

	return nil
}
