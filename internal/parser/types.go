package parser

import (
	"github.com/ycharfi09/VibeLang/internal/ast"
	"github.com/ycharfi09/VibeLang/internal/cerrors"
	"github.com/ycharfi09/VibeLang/internal/lexer"
)

// primitiveTokenNames maps a primitive-type keyword token to its canonical
// spelling, used when building an *ast.Primitive.
var primitiveTokenNames = map[lexer.TokenType]string{
	lexer.INT_TYPE: "Int", lexer.FLOAT_TYPE: "Float", lexer.BOOL_TYPE: "Bool",
	lexer.STRING_TYPE: "String", lexer.BYTE_TYPE: "Byte", lexer.UNIT_TYPE: "Unit",
}

// parseType parses a type reference: a primitive keyword, `Array[T]`,
// `Result[Ok, Err]`, or a named type with optional `[args]`
// (spec.md §4.2 "Types").
func (p *Parser) parseType() (ast.Type, *cerrors.ParseError) {
	tok := p.peek()

	if name, ok := primitiveTokenNames[tok.Type]; ok {
		p.advance()
		return &ast.Primitive{Name: name, Position: cerrors.Position(tok.Pos)}, nil
	}

	if tok.Type == lexer.ARRAY_TYPE {
		p.advance()
		if _, err := p.expect(lexer.LBRACKET); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		return &ast.ArrayType{Elem: elem, Position: cerrors.Position(tok.Pos)}, nil
	}

	if tok.Type == lexer.RESULT_TYPE {
		p.advance()
		if _, err := p.expect(lexer.LBRACKET); err != nil {
			return nil, err
		}
		ok, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COMMA); err != nil {
			return nil, err
		}
		errType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		return &ast.ResultType{Ok: ok, Err: errType, Position: cerrors.Position(tok.Pos)}, nil
	}

	if tok.Type == lexer.IDENT {
		p.advance()
		var args []ast.Type
		if p.peek().Type == lexer.LBRACKET {
			p.advance()
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			for p.peek().Type == lexer.COMMA {
				p.advance()
				arg, err := p.parseType()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
			}
			if _, err := p.expect(lexer.RBRACKET); err != nil {
				return nil, err
			}
		}
		return &ast.NamedType{Name: tok.Literal, Args: args, Position: cerrors.Position(tok.Pos)}, nil
	}

	return nil, parseErrf(tok, "expected type, got %s at %d:%d", tok.Type, tok.Pos.Line, tok.Pos.Column)
}
