package ast

import "github.com/ycharfi09/VibeLang/internal/cerrors"

// Primitive is one of the built-in scalar/unit types: Int, Float, Bool,
// String, Byte, Unit.
type Primitive struct {
	Name     string
	Position cerrors.Position
}

func (p *Primitive) Pos() cerrors.Position { return p.Position }
func (p *Primitive) typeNode()             {}

// ArrayType is `Array[Elem]`.
type ArrayType struct {
	Elem     Type
	Position cerrors.Position
}

func (a *ArrayType) Pos() cerrors.Position { return a.Position }
func (a *ArrayType) typeNode()             {}

// ResultType is `Result[Ok, Err]`.
type ResultType struct {
	Ok       Type
	Err      Type
	Position cerrors.Position
}

func (r *ResultType) Pos() cerrors.Position { return r.Position }
func (r *ResultType) typeNode()             {}

// FunctionType is a function type value `(params) -> ret`. The surface
// grammar in spec.md §4.2 never produces one directly (no function-typed
// parameters are parsed), but it is part of the closed Type family so the
// type checker and formatter still handle it exhaustively.
type FunctionType struct {
	Params   []Type
	Return   Type
	Position cerrors.Position
}

func (f *FunctionType) Pos() cerrors.Position { return f.Position }
func (f *FunctionType) typeNode()             {}

// NamedType is an identifier used as a type, with optional type arguments:
// `Foo` or `Foo[Int, String]`.
type NamedType struct {
	Name     string
	Args     []Type
	Position cerrors.Position
}

func (n *NamedType) Pos() cerrors.Position { return n.Position }
func (n *NamedType) typeNode()             {}

// SimpleType is an alias or record stand-in: `type X = Y[Z]`, or a record
// literal `{ field: Type, ... }` represented as a SimpleType named
// "Record" whose Args are the field types in declaration order (field
// names are validated by the parser but not retained — see spec.md §9).
// It also satisfies Type, so the checker can render an alias with type
// arguments through the same typeToStr used for annotations.
type SimpleType struct {
	Name     string
	Args     []Type
	Position cerrors.Position
}

func (s *SimpleType) Pos() cerrors.Position  { return s.Position }
func (s *SimpleType) typeDefinitionNode()    {}
func (s *SimpleType) typeNode()              {}

// Variant is one alternative of a SumType: a constructor name plus its
// ordered positional parameter types.
type Variant struct {
	Name       string
	Parameters []Type
	Position   cerrors.Position
}

func (v *Variant) Pos() cerrors.Position { return v.Position }

// SumType is a disjoint union of Variants.
type SumType struct {
	Variants []*Variant
	Position cerrors.Position
}

func (s *SumType) Pos() cerrors.Position  { return s.Position }
func (s *SumType) typeDefinitionNode()    {}

// RefinedType is a base type plus a boolean refinement predicate in which
// the identifier `value` is bound to the base type.
type RefinedType struct {
	Base      Type
	Condition Expression
	Position  cerrors.Position
}

func (r *RefinedType) Pos() cerrors.Position  { return r.Position }
func (r *RefinedType) typeDefinitionNode()    {}
