package ast

import "github.com/ycharfi09/VibeLang/internal/cerrors"

// IntegerLiteral is an integer literal value.
type IntegerLiteral struct {
	Value    int64
	Position cerrors.Position
}

func (i *IntegerLiteral) Pos() cerrors.Position { return i.Position }
func (i *IntegerLiteral) expressionNode()       {}

// FloatLiteral is a floating-point literal value.
type FloatLiteral struct {
	Value    float64
	Position cerrors.Position
}

func (f *FloatLiteral) Pos() cerrors.Position { return f.Position }
func (f *FloatLiteral) expressionNode()       {}

// StringLiteral is a double-quoted string literal, already unescaped.
type StringLiteral struct {
	Value    string
	Position cerrors.Position
}

func (s *StringLiteral) Pos() cerrors.Position { return s.Position }
func (s *StringLiteral) expressionNode()       {}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Value    bool
	Position cerrors.Position
}

func (b *BoolLiteral) Pos() cerrors.Position { return b.Position }
func (b *BoolLiteral) expressionNode()       {}

// Identifier references a variable, parameter, function, or constructor
// name.
type Identifier struct {
	Name     string
	Position cerrors.Position
}

func (i *Identifier) Pos() cerrors.Position { return i.Position }
func (i *Identifier) expressionNode()       {}

// BinaryOp is a binary operator application. Operator is one of
// `+ - * / % == != < > <= >= && ||`.
type BinaryOp struct {
	Left     Expression
	Operator string
	Right    Expression
	Position cerrors.Position
}

func (b *BinaryOp) Pos() cerrors.Position { return b.Position }
func (b *BinaryOp) expressionNode()       {}

// UnaryOp is a prefix unary operator application. Operator is `!` or `-`.
type UnaryOp struct {
	Operator string
	Operand  Expression
	Position cerrors.Position
}

func (u *UnaryOp) Pos() cerrors.Position { return u.Position }
func (u *UnaryOp) expressionNode()       {}

// FunctionCall applies Callee to an ordered argument list.
type FunctionCall struct {
	Callee    Expression
	Arguments []Expression
	Position  cerrors.Position
}

func (f *FunctionCall) Pos() cerrors.Position { return f.Position }
func (f *FunctionCall) expressionNode()       {}

// MemberAccess is `obj.member`.
type MemberAccess struct {
	Object   Expression
	Member   string
	Position cerrors.Position
}

func (m *MemberAccess) Pos() cerrors.Position { return m.Position }
func (m *MemberAccess) expressionNode()       {}

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Elements []Expression
	Position cerrors.Position
}

func (a *ArrayLiteral) Pos() cerrors.Position { return a.Position }
func (a *ArrayLiteral) expressionNode()       {}

// RecordField is one `name: expr` pair inside a RecordLiteral.
type RecordField struct {
	Name  string
	Value Expression
}

// RecordLiteral is `{ name: expr, ... }` with fields kept in declaration
// order.
type RecordLiteral struct {
	Fields   []RecordField
	Position cerrors.Position
}

func (r *RecordLiteral) Pos() cerrors.Position { return r.Position }
func (r *RecordLiteral) expressionNode()       {}

// WhenExpression is `when cond \n then-block [otherwise \n else-block]`.
// Else is nil when absent — semantically distinct from an empty
// block, per spec.md §3.
type WhenExpression struct {
	Condition Expression
	Then      *Block
	Else      *Block
	Position  cerrors.Position
}

func (w *WhenExpression) Pos() cerrors.Position { return w.Position }
func (w *WhenExpression) expressionNode()       {}

// PatternCase is one `pattern -> expression` arm of a GivenExpression.
type PatternCase struct {
	Pattern    Pattern
	Expression Expression
	Position   cerrors.Position
}

func (p *PatternCase) Pos() cerrors.Position { return p.Position }

// GivenExpression is a pattern match over Scrutinee across ordered Cases.
type GivenExpression struct {
	Scrutinee Expression
	Cases     []*PatternCase
	Position  cerrors.Position
}

func (g *GivenExpression) Pos() cerrors.Position { return g.Position }
func (g *GivenExpression) expressionNode()       {}
