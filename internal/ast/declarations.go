package ast

import "github.com/ycharfi09/VibeLang/internal/cerrors"

// TypeDeclaration declares a named type, optionally generic, with zero or
// more invariants evaluated against the bound name `value`.
type TypeDeclaration struct {
	Name       string
	TypeParams []string
	Definition TypeDefinition
	Invariants []Expression
	Position   cerrors.Position
}

func (t *TypeDeclaration) Pos() cerrors.Position { return t.Position }
func (t *TypeDeclaration) declarationNode()      {}

// Parameter is one function parameter: a name plus its declared type.
type Parameter struct {
	Name           string
	TypeAnnotation Type
	Position       cerrors.Position
}

func (p *Parameter) Pos() cerrors.Position { return p.Position }

// FunctionDeclaration declares a function: its signature, its contract
// clauses in source order (partitioned into preconditions/postconditions),
// and its body.
type FunctionDeclaration struct {
	Name            string
	Parameters      []*Parameter
	ReturnType      Type
	Preconditions   []Expression
	Postconditions  []Expression
	Body            *Block
	Position        cerrors.Position
}

func (f *FunctionDeclaration) Pos() cerrors.Position { return f.Position }
func (f *FunctionDeclaration) declarationNode()      {}
