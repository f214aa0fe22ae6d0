package ast

import "github.com/ycharfi09/VibeLang/internal/cerrors"

// ConstructorPattern matches a sum-type variant by name, recursively
// matching its ordered sub-patterns.
type ConstructorPattern struct {
	Constructor string
	Parameters  []Pattern
	Position    cerrors.Position
}

func (c *ConstructorPattern) Pos() cerrors.Position { return c.Position }
func (c *ConstructorPattern) patternNode()          {}

// IdentifierPattern binds the scrutinee (or sub-value) to a name.
type IdentifierPattern struct {
	Name     string
	Position cerrors.Position
}

func (i *IdentifierPattern) Pos() cerrors.Position { return i.Position }
func (i *IdentifierPattern) patternNode()          {}

// LiteralPattern matches an exact literal value.
type LiteralPattern struct {
	Value    any // int64, float64, string, or bool
	Position cerrors.Position
}

func (l *LiteralPattern) Pos() cerrors.Position { return l.Position }
func (l *LiteralPattern) patternNode()          {}

// WildcardPattern matches anything without binding; written `_`.
type WildcardPattern struct {
	Position cerrors.Position
}

func (w *WildcardPattern) Pos() cerrors.Position { return w.Position }
func (w *WildcardPattern) patternNode()          {}
