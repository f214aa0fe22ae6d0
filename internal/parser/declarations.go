package parser

import (
	"github.com/ycharfi09/VibeLang/internal/ast"
	"github.com/ycharfi09/VibeLang/internal/cerrors"
	"github.com/ycharfi09/VibeLang/internal/lexer"
)

// typeNameTokens are the token types accepted in `type NAME = ...`'s name
// position: an ordinary identifier, or — per spec.md §4.2 and §9 — a
// primitive-type keyword, which lets a program shadow a built-in name
// such as `type Result = ...`.
var typeNameTokens = map[lexer.TokenType]bool{
	lexer.IDENT: true,
	lexer.RESULT_TYPE: true, lexer.ARRAY_TYPE: true,
	lexer.INT_TYPE: true, lexer.FLOAT_TYPE: true, lexer.BOOL_TYPE: true,
	lexer.STRING_TYPE: true, lexer.BYTE_TYPE: true, lexer.UNIT_TYPE: true,
}

func (p *Parser) parseTypeDeclaration() (*ast.TypeDeclaration, *cerrors.ParseError) {
	typeTok, err := p.expect(lexer.TYPE)
	if err != nil {
		return nil, err
	}

	nameTok := p.peek()
	if !typeNameTokens[nameTok.Type] {
		return nil, parseErrf(nameTok, "expected type name, got %s at %d:%d", nameTok.Type, nameTok.Pos.Line, nameTok.Pos.Column)
	}
	name := p.advance().Literal

	var typeParams []string
	if p.peek().Type == lexer.LBRACKET {
		p.advance()
		first, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		typeParams = append(typeParams, first.Literal)
		for p.peek().Type == lexer.COMMA {
			p.advance()
			tp, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			typeParams = append(typeParams, tp.Literal)
		}
		if _, err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}

	definition, err := p.parseTypeDefinition()
	if err != nil {
		return nil, err
	}

	var invariants []ast.Expression
	p.skipNewlines()
	hasIndent := false
	if p.peek().Type == lexer.INDENT {
		p.advance()
		hasIndent = true
	}
	for p.peek().Type == lexer.INVARIANT {
		p.advance()
		inv, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		invariants = append(invariants, inv)
		p.skipNewlines()
	}
	if hasIndent && p.peek().Type == lexer.DEDENT {
		p.advance()
	}

	return &ast.TypeDeclaration{
		Name: name, TypeParams: typeParams, Definition: definition,
		Invariants: invariants, Position: cerrors.Position(typeTok.Pos),
	}, nil
}

// parseTypeDefinition parses the RHS of `type NAME = ...`, which may be
// wrapped in INDENT/DEDENT (spec.md §4.2).
func (p *Parser) parseTypeDefinition() (ast.TypeDefinition, *cerrors.ParseError) {
	p.skipNewlines()
	hasIndent := false
	if p.peek().Type == lexer.INDENT {
		p.advance()
		hasIndent = true
	}

	def, err := p.parseTypeDefinitionInner()
	if err != nil {
		return nil, err
	}

	p.skipNewlines()
	if hasIndent && p.peek().Type == lexer.DEDENT {
		p.advance()
	}
	return def, nil
}

func (p *Parser) parseTypeDefinitionInner() (ast.TypeDefinition, *cerrors.ParseError) {
	switch p.peek().Type {
	case lexer.PIPE:
		return p.parseSumType()
	case lexer.LBRACE:
		return p.parseRecordTypeDefinition()
	}

	tok := p.peek()
	if tok.Type == lexer.IDENT {
		p.advance()
		var typeArgs []ast.Type
		if p.peek().Type == lexer.LBRACKET {
			p.advance()
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}
			typeArgs = append(typeArgs, arg)
			for p.peek().Type == lexer.COMMA {
				p.advance()
				arg, err := p.parseType()
				if err != nil {
					return nil, err
				}
				typeArgs = append(typeArgs, arg)
			}
			if _, err := p.expect(lexer.RBRACKET); err != nil {
				return nil, err
			}
		}
		return &ast.SimpleType{Name: tok.Literal, Args: typeArgs, Position: cerrors.Position(tok.Pos)}, nil
	}

	if typeNameTokens[tok.Type] {
		p.advance()
		return &ast.SimpleType{Name: tok.Literal, Position: cerrors.Position(tok.Pos)}, nil
	}

	return nil, parseErrf(tok, "expected type definition, got %s at %d:%d", tok.Type, tok.Pos.Line, tok.Pos.Column)
}

func (p *Parser) parseSumType() (*ast.SumType, *cerrors.ParseError) {
	firstPipe := p.peek()
	var variants []*ast.Variant

	for p.peek().Type == lexer.PIPE {
		p.advance()
		p.skipNewlines()
		variantTok, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}

		var params []ast.Type
		if p.peek().Type == lexer.LPAREN {
			p.advance()
			if p.peek().Type != lexer.RPAREN {
				t, err := p.parseType()
				if err != nil {
					return nil, err
				}
				params = append(params, t)
				for p.peek().Type == lexer.COMMA {
					p.advance()
					t, err := p.parseType()
					if err != nil {
						return nil, err
					}
					params = append(params, t)
				}
			}
			if _, err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
		}

		variants = append(variants, &ast.Variant{
			Name: variantTok.Literal, Parameters: params, Position: cerrors.Position(variantTok.Pos),
		})
		p.skipNewlines()
	}

	return &ast.SumType{Variants: variants, Position: cerrors.Position(firstPipe.Pos)}, nil
}

// parseRecordTypeDefinition parses `{ field: Type, ... }`, storing it as a
// SimpleType named "Record" whose Args are the field types in order
// (spec.md §3, §9: field names are validated but not retained).
func (p *Parser) parseRecordTypeDefinition() (*ast.SimpleType, *cerrors.ParseError) {
	lbrace, err := p.expect(lexer.LBRACE)
	if err != nil {
		return nil, err
	}
	p.skipNewlines()

	var fieldTypes []ast.Type
	for p.peek().Type != lexer.RBRACE {
		if _, err := p.expect(lexer.IDENT); err != nil { // field name
			return nil, err
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fieldTypes = append(fieldTypes, t)
		p.skipNewlines()
		if p.peek().Type == lexer.COMMA {
			p.advance()
			p.skipNewlines()
		}
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}

	return &ast.SimpleType{Name: "Record", Args: fieldTypes, Position: cerrors.Position(lbrace.Pos)}, nil
}

// ------------------------------------------------------------------
// Function declarations
// ------------------------------------------------------------------

func (p *Parser) parseFunctionDeclaration() (*ast.FunctionDeclaration, *cerrors.ParseError) {
	defineTok, err := p.expect(lexer.DEFINE)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []*ast.Parameter
	if p.peek().Type != lexer.RPAREN {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		for p.peek().Type == lexer.COMMA {
			p.advance()
			param, err := p.parseParameter()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.ARROW); err != nil {
		return nil, err
	}
	returnType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	p.skipNewlines()

	hasOuterIndent := false
	if p.peek().Type == lexer.INDENT {
		p.advance()
		hasOuterIndent = true
	}

	var preconditions, postconditions []ast.Expression
	for p.peek().Type == lexer.EXPECT || p.peek().Type == lexer.ENSURE {
		if p.peek().Type == lexer.EXPECT {
			p.advance()
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			preconditions = append(preconditions, expr)
		} else {
			p.advance()
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			postconditions = append(postconditions, expr)
		}
		p.skipNewlines()
	}

	if hasOuterIndent && p.peek().Type == lexer.DEDENT {
		p.advance()
		hasOuterIndent = false
	}
	p.skipNewlines()

	if _, err := p.expect(lexer.GIVEN); err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	if hasOuterIndent && p.peek().Type == lexer.DEDENT {
		p.advance()
	}

	return &ast.FunctionDeclaration{
		Name: nameTok.Literal, Parameters: params, ReturnType: returnType,
		Preconditions: preconditions, Postconditions: postconditions, Body: body,
		Position: cerrors.Position(defineTok.Pos),
	}, nil
}

func (p *Parser) parseParameter() (*ast.Parameter, *cerrors.ParseError) {
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.Parameter{Name: nameTok.Literal, TypeAnnotation: typ, Position: cerrors.Position(nameTok.Pos)}, nil
}
