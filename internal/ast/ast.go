// Package ast defines the Abstract Syntax Tree node types shared by every
// pass of the VibeLang toolchain: the lexer produces tokens, the parser
// builds these nodes, and the type checker, optimizer, verifier, and code
// generator each walk them independently and read-only (the optimizer is
// the only pass that produces a new tree).
package ast

import "github.com/ycharfi09/VibeLang/internal/cerrors"

// Node is the base interface implemented by every AST node. Every node
// carries a source position so downstream passes can report diagnostics
// against the original text.
type Node interface {
	Pos() cerrors.Position
}

// Declaration is a top-level program member: a TypeDeclaration or a
// FunctionDeclaration.
type Declaration interface {
	Node
	declarationNode()
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that is evaluated for effect, possibly producing the
// value of a block when it is the block's last statement.
type Statement interface {
	Node
	statementNode()
}

// TypeDefinition is the right-hand side of a type declaration: SimpleType,
// SumType, or RefinedType.
type TypeDefinition interface {
	Node
	typeDefinitionNode()
}

// Type is a type annotation appearing in a parameter, return type,
// let-binding, or type argument position.
type Type interface {
	Node
	typeNode()
}

// Pattern is one arm's match condition in a GivenExpression.
type Pattern interface {
	Node
	patternNode()
}

// Program is the root of the AST: an ordered list of imports followed by an
// ordered list of declarations. Order is preserved through every pass.
type Program struct {
	Imports      []*ImportStatement
	Declarations []Declaration
}

func (p *Program) Pos() cerrors.Position {
	if len(p.Imports) > 0 {
		return p.Imports[0].Pos()
	}
	if len(p.Declarations) > 0 {
		return p.Declarations[0].Pos()
	}
	return cerrors.Position{Line: 1, Column: 1}
}

// ImportStatement is a single `import a.b.c` clause.
type ImportStatement struct {
	ModulePath string
	Position   cerrors.Position
}

func (i *ImportStatement) Pos() cerrors.Position { return i.Position }
