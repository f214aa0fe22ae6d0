package parser

import (
	"strconv"

	"github.com/ycharfi09/VibeLang/internal/ast"
	"github.com/ycharfi09/VibeLang/internal/cerrors"
	"github.com/ycharfi09/VibeLang/internal/lexer"
)

// parsePattern parses one `given` case pattern (spec.md §4.2 "Patterns"):
// a constructor name applied to sub-patterns, a bare identifier binding
// (or the wildcard `_`), or a literal.
func (p *Parser) parsePattern() (ast.Pattern, *cerrors.ParseError) {
	tok := p.peek()

	switch tok.Type {
	case lexer.IDENT:
		p.advance()
		if p.peek().Type == lexer.LPAREN {
			p.advance()
			var params []ast.Pattern
			if p.peek().Type != lexer.RPAREN {
				sub, err := p.parsePattern()
				if err != nil {
					return nil, err
				}
				params = append(params, sub)
				for p.peek().Type == lexer.COMMA {
					p.advance()
					sub, err := p.parsePattern()
					if err != nil {
						return nil, err
					}
					params = append(params, sub)
				}
			}
			if _, err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
			return &ast.ConstructorPattern{Constructor: tok.Literal, Parameters: params, Position: cerrors.Position(tok.Pos)}, nil
		}
		if tok.Literal == "_" {
			return &ast.WildcardPattern{Position: cerrors.Position(tok.Pos)}, nil
		}
		return &ast.IdentifierPattern{Name: tok.Literal, Position: cerrors.Position(tok.Pos)}, nil

	case lexer.INT:
		p.advance()
		v, _ := strconv.ParseInt(tok.Literal, 10, 64)
		return &ast.LiteralPattern{Value: v, Position: cerrors.Position(tok.Pos)}, nil
	case lexer.FLOAT:
		p.advance()
		v, _ := strconv.ParseFloat(tok.Literal, 64)
		return &ast.LiteralPattern{Value: v, Position: cerrors.Position(tok.Pos)}, nil
	case lexer.STRING:
		p.advance()
		return &ast.LiteralPattern{Value: tok.Literal, Position: cerrors.Position(tok.Pos)}, nil
	case lexer.TRUE:
		p.advance()
		return &ast.LiteralPattern{Value: true, Position: cerrors.Position(tok.Pos)}, nil
	case lexer.FALSE:
		p.advance()
		return &ast.LiteralPattern{Value: false, Position: cerrors.Position(tok.Pos)}, nil
	}

	return nil, parseErrf(tok, "expected pattern, got %s at %d:%d", tok.Type, tok.Pos.Line, tok.Pos.Column)
}
