// Package verifier implements VibeLang's lightweight symbolic contract
// verifier (spec.md §4.5): it proves, refutes, or gives up on each
// precondition, postcondition, and type invariant without an SMT solver,
// using constant folding, reflexivity, and assumption propagation from
// preconditions into postconditions.
package verifier

import (
	"fmt"

	"github.com/ycharfi09/VibeLang/internal/ast"
)

// Status is the tri-valued outcome of checking one contract.
type Status string

const (
	Proven   Status = "proven"
	Unproven Status = "unproven"
	Violated Status = "violated"
)

// ContractType names which kind of contract a Result reports on.
type ContractType string

const (
	Precondition  ContractType = "precondition"
	Postcondition ContractType = "postcondition"
	Invariant     ContractType = "invariant"
)

// Result is one verification finding against a named function or type.
type Result struct {
	FunctionName string
	ContractType ContractType
	Status       Status
	Message      string
	Line         int
	Column       int
}

// Verifier accumulates Results across one Verify call.
type Verifier struct {
	results []Result
}

// New returns an empty Verifier.
func New() *Verifier {
	return &Verifier{}
}

// Verify checks every contract in program and returns the findings in
// declaration order.
func Verify(program *ast.Program) []Result {
	v := New()
	return v.Verify(program)
}

func (v *Verifier) Verify(program *ast.Program) []Result {
	v.results = nil
	for _, decl := range program.Declarations {
		switch d := decl.(type) {
		case *ast.FunctionDeclaration:
			v.verifyFunction(d)
		case *ast.TypeDeclaration:
			v.verifyTypeInvariants(d)
		}
	}
	return v.results
}

// ------------------------------------------------------------------
// Function verification
// ------------------------------------------------------------------

func (v *Verifier) verifyFunction(fn *ast.FunctionDeclaration) {
	evaluator := NewSymbolicEvaluator(nil)
	for _, pre := range fn.Preconditions {
		v.checkContract(evaluator, pre, fn.Name, Precondition)
	}

	preEvaluator := NewSymbolicEvaluator(nil)
	for _, pre := range fn.Preconditions {
		for _, bound := range preEvaluator.ExtractBounds(pre) {
			preEvaluator.addAssumption(bound)
		}
	}

	for _, post := range fn.Postconditions {
		v.checkContract(preEvaluator, post, fn.Name, Postcondition)
	}
}

// ------------------------------------------------------------------
// Type invariant verification
// ------------------------------------------------------------------

func (v *Verifier) verifyTypeInvariants(td *ast.TypeDeclaration) {
	evaluator := NewSymbolicEvaluator(nil)
	for _, inv := range td.Invariants {
		v.checkContract(evaluator, inv, td.Name, Invariant)
		for _, bound := range evaluator.ExtractBounds(inv) {
			evaluator.addAssumption(bound)
		}
	}
}

// ------------------------------------------------------------------
// Core contract checking
// ------------------------------------------------------------------

func (v *Verifier) checkContract(evaluator *SymbolicEvaluator, expr ast.Expression, name string, contractType ContractType) {
	truth := evaluator.CheckTruth(expr)
	pos := expr.Pos()

	var status Status
	var message string
	switch {
	case truth != nil && *truth:
		status = Proven
		message = fmt.Sprintf("%s is trivially true", capitalize(string(contractType)))
	case truth != nil && !*truth:
		status = Violated
		message = fmt.Sprintf("%s is trivially false", capitalize(string(contractType)))
	default:
		status = Unproven
		message = fmt.Sprintf("%s could not be statically verified", capitalize(string(contractType)))
	}

	v.results = append(v.results, Result{
		FunctionName: name, ContractType: contractType, Status: status,
		Message: message, Line: pos.Line, Column: pos.Column,
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}
