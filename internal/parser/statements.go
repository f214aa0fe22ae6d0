package parser

import (
	"github.com/ycharfi09/VibeLang/internal/ast"
	"github.com/ycharfi09/VibeLang/internal/cerrors"
	"github.com/ycharfi09/VibeLang/internal/lexer"
)

// parseBlock parses an INDENT-wrapped run of statements, or falls back to
// a single statement when no INDENT follows (spec.md §4.2 "Blocks"): a
// one-line `given`/`when` arm need not indent onto its own line.
func (p *Parser) parseBlock() (*ast.Block, *cerrors.ParseError) {
	startTok := p.peek()

	if p.peek().Type == lexer.INDENT {
		p.advance()
		var stmts []ast.Statement
		for p.peek().Type != lexer.DEDENT && p.peek().Type != lexer.EOF {
			p.skipNewlines()
			if p.peek().Type == lexer.DEDENT {
				break
			}
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, stmt)
			p.skipNewlines()
		}
		if _, err := p.expect(lexer.DEDENT); err != nil {
			return nil, err
		}
		return &ast.Block{Statements: stmts, Position: cerrors.Position(startTok.Pos)}, nil
	}

	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.Block{Statements: []ast.Statement{stmt}, Position: cerrors.Position(startTok.Pos)}, nil
}

// parseStatement always produces an ExpressionStatement: the surface
// grammar has no standalone let/assignment syntax (spec.md §4.2) — those
// AST nodes exist only for the closed Statement family's exhaustiveness.
func (p *Parser) parseStatement() (ast.Statement, *cerrors.ParseError) {
	tok := p.peek()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expression: expr, Position: cerrors.Position(tok.Pos)}, nil
}
