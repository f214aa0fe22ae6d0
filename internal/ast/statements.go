package ast

import "github.com/ycharfi09/VibeLang/internal/cerrors"

// Block is an ordered sequence of statements. When it is the then/else arm
// of a When, or a function body, its value is that of its last statement
// if that statement is an ExpressionStatement.
type Block struct {
	Statements []Statement
	Position   cerrors.Position
}

func (b *Block) Pos() cerrors.Position { return b.Position }
func (b *Block) statementNode()        {}

// LetBinding introduces a name bound to Value, optionally annotated. The
// parser never produces this node directly (spec.md §4.2 reserves it for
// future syntax); it exists so the type checker and code generator handle
// the full closed Statement family exhaustively.
type LetBinding struct {
	Name           string
	TypeAnnotation Type // nil when unannotated
	Value          Expression
	Position       cerrors.Position
}

func (l *LetBinding) Pos() cerrors.Position { return l.Position }
func (l *LetBinding) statementNode()        {}

// Assignment rebinds an existing identifier. Like LetBinding, the parser
// never emits this node directly.
type Assignment struct {
	Target   string
	Value    Expression
	Position cerrors.Position
}

func (a *Assignment) Pos() cerrors.Position { return a.Position }
func (a *Assignment) statementNode()        {}

// ExpressionStatement evaluates Expression, for effect or — as a block's
// last statement — for value.
type ExpressionStatement struct {
	Expression Expression
	Position   cerrors.Position
}

func (e *ExpressionStatement) Pos() cerrors.Position { return e.Position }
func (e *ExpressionStatement) statementNode()        {}
