// Package parser implements VibeLang's recursive-descent, precedence
// climbing parser: tokens in, an *ast.Program (or the first positioned
// parse error) out.
package parser

import (
	"fmt"

	"github.com/ycharfi09/VibeLang/internal/ast"
	"github.com/ycharfi09/VibeLang/internal/cerrors"
	"github.com/ycharfi09/VibeLang/internal/lexer"
)

// Parser consumes a fixed token slice produced by the lexer.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New wraps a token slice (as returned by lexer.Tokenize) for parsing.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse tokenizes source and parses it in one step.
func Parse(source string) (*ast.Program, error) {
	tokens, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		return nil, lexErr
	}
	return New(tokens).ParseProgram()
}

func (p *Parser) peek(offset ...int) lexer.Token {
	off := 0
	if len(offset) > 0 {
		off = offset[0]
	}
	idx := p.pos + off
	if idx < len(p.tokens) {
		return p.tokens[idx]
	}
	return p.tokens[len(p.tokens)-1] // EOF
}

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if tok.Type != lexer.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, *cerrors.ParseError) {
	tok := p.peek()
	if tok.Type != tt {
		return lexer.Token{}, cerrors.NewParseError(
			cerrors.Position(tok.Pos),
			fmt.Sprintf("expected %s, got %s at %d:%d", tt, tok.Type, tok.Pos.Line, tok.Pos.Column),
		)
	}
	return p.advance(), nil
}

func (p *Parser) skipNewlines() {
	for p.peek().Type == lexer.NEWLINE {
		p.advance()
	}
}

func parseErrf(tok lexer.Token, format string, args ...any) *cerrors.ParseError {
	return cerrors.NewParseError(cerrors.Position(tok.Pos), fmt.Sprintf(format, args...))
}

// ------------------------------------------------------------------
// Top-level
// ------------------------------------------------------------------

// ParseProgram parses the full token stream: zero or more imports followed
// by zero or more declarations (spec.md §4.2 "Shape").
func (p *Parser) ParseProgram() (*ast.Program, error) {
	var imports []*ast.ImportStatement
	var decls []ast.Declaration

	p.skipNewlines()

	for p.peek().Type == lexer.IMPORT {
		imp, err := p.parseImport()
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
		p.skipNewlines()
	}

	for p.peek().Type != lexer.EOF {
		var decl ast.Declaration
		var err *cerrors.ParseError
		switch p.peek().Type {
		case lexer.TYPE:
			decl, err = p.parseTypeDeclaration()
		case lexer.DEFINE:
			decl, err = p.parseFunctionDeclaration()
		default:
			err = parseErrf(p.peek(), "unexpected token %s", p.peek().Type)
		}
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
		p.skipNewlines()
	}

	return &ast.Program{Imports: imports, Declarations: decls}, nil
}

func (p *Parser) parseImport() (*ast.ImportStatement, *cerrors.ParseError) {
	importTok, err := p.expect(lexer.IMPORT)
	if err != nil {
		return nil, err
	}

	first, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	path := first.Literal

	for p.peek().Type == lexer.DOT {
		p.advance()
		part, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		path += "." + part.Literal
	}

	return &ast.ImportStatement{ModulePath: path, Position: cerrors.Position(importTok.Pos)}, nil
}
