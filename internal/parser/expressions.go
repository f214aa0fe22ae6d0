package parser

import (
	"strconv"

	"github.com/ycharfi09/VibeLang/internal/ast"
	"github.com/ycharfi09/VibeLang/internal/cerrors"
	"github.com/ycharfi09/VibeLang/internal/lexer"
)

// parseExpression is the entry point of the precedence-climbing chain
// (spec.md §4.2 "Expressions", lowest to highest: or, and, equality,
// comparison, additive, multiplicative, unary, postfix, primary).
func (p *Parser) parseExpression() (ast.Expression, *cerrors.ParseError) {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() (ast.Expression, *cerrors.ParseError) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == lexer.OR {
		opTok := p.advance()
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Operator: "||", Right: right, Position: cerrors.Position(opTok.Pos)}
	}
	return left, nil
}

func (p *Parser) parseLogicalAnd() (ast.Expression, *cerrors.ParseError) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == lexer.AND {
		opTok := p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Operator: "&&", Right: right, Position: cerrors.Position(opTok.Pos)}
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Expression, *cerrors.ParseError) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == lexer.EQ || p.peek().Type == lexer.NEQ {
		opTok := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Operator: opTok.Literal, Right: right, Position: cerrors.Position(opTok.Pos)}
	}
	return left, nil
}

func (p *Parser) parseComparison() (ast.Expression, *cerrors.ParseError) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == lexer.LT || p.peek().Type == lexer.GT ||
		p.peek().Type == lexer.LE || p.peek().Type == lexer.GE {
		opTok := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Operator: opTok.Literal, Right: right, Position: cerrors.Position(opTok.Pos)}
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expression, *cerrors.ParseError) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == lexer.PLUS || p.peek().Type == lexer.MINUS {
		opTok := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Operator: opTok.Literal, Right: right, Position: cerrors.Position(opTok.Pos)}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, *cerrors.ParseError) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == lexer.STAR || p.peek().Type == lexer.SLASH || p.peek().Type == lexer.PERCENT {
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Operator: opTok.Literal, Right: right, Position: cerrors.Position(opTok.Pos)}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expression, *cerrors.ParseError) {
	if p.peek().Type == lexer.NOT || p.peek().Type == lexer.MINUS {
		opTok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Operator: opTok.Literal, Operand: operand, Position: cerrors.Position(opTok.Pos)}, nil
	}
	return p.parsePostfix()
}

// parsePostfix chains function calls and member accesses onto a primary
// expression: `f(a)(b).x(c)`.
func (p *Parser) parsePostfix() (ast.Expression, *cerrors.ParseError) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Type {
		case lexer.LPAREN:
			parenTok := p.advance()
			var args []ast.Expression
			if p.peek().Type != lexer.RPAREN {
				arg, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				for p.peek().Type == lexer.COMMA {
					p.advance()
					arg, err := p.parseExpression()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
				}
			}
			if _, err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
			expr = &ast.FunctionCall{Callee: expr, Arguments: args, Position: cerrors.Position(parenTok.Pos)}
		case lexer.DOT:
			dotTok := p.advance()
			member, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberAccess{Object: expr, Member: member.Literal, Position: cerrors.Position(dotTok.Pos)}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expression, *cerrors.ParseError) {
	tok := p.peek()

	switch tok.Type {
	case lexer.INT:
		p.advance()
		v, _ := strconv.ParseInt(tok.Literal, 10, 64)
		return &ast.IntegerLiteral{Value: v, Position: cerrors.Position(tok.Pos)}, nil
	case lexer.FLOAT:
		p.advance()
		v, _ := strconv.ParseFloat(tok.Literal, 64)
		return &ast.FloatLiteral{Value: v, Position: cerrors.Position(tok.Pos)}, nil
	case lexer.STRING:
		p.advance()
		return &ast.StringLiteral{Value: tok.Literal, Position: cerrors.Position(tok.Pos)}, nil
	case lexer.TRUE:
		p.advance()
		return &ast.BoolLiteral{Value: true, Position: cerrors.Position(tok.Pos)}, nil
	case lexer.FALSE:
		p.advance()
		return &ast.BoolLiteral{Value: false, Position: cerrors.Position(tok.Pos)}, nil
	case lexer.IDENT:
		p.advance()
		return &ast.Identifier{Name: tok.Literal, Position: cerrors.Position(tok.Pos)}, nil
	case lexer.SELF:
		p.advance()
		return &ast.Identifier{Name: "self", Position: cerrors.Position(tok.Pos)}, nil
	case lexer.OLD:
		p.advance()
		return &ast.Identifier{Name: "old", Position: cerrors.Position(tok.Pos)}, nil
	case lexer.LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.LBRACKET:
		return p.parseArrayLiteral()
	case lexer.LBRACE:
		return p.parseRecordLiteral()
	case lexer.WHEN:
		return p.parseWhenExpression()
	case lexer.GIVEN:
		return p.parseGivenExpression()
	}

	return nil, parseErrf(tok, "unexpected token %s in expression at %d:%d", tok.Type, tok.Pos.Line, tok.Pos.Column)
}

func (p *Parser) parseArrayLiteral() (*ast.ArrayLiteral, *cerrors.ParseError) {
	lbracket, err := p.expect(lexer.LBRACKET)
	if err != nil {
		return nil, err
	}
	var elements []ast.Expression
	if p.peek().Type != lexer.RBRACKET {
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
		for p.peek().Type == lexer.COMMA {
			p.advance()
			elem, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elements = append(elements, elem)
		}
	}
	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Elements: elements, Position: cerrors.Position(lbracket.Pos)}, nil
}

func (p *Parser) parseRecordLiteral() (*ast.RecordLiteral, *cerrors.ParseError) {
	lbrace, err := p.expect(lexer.LBRACE)
	if err != nil {
		return nil, err
	}
	var fields []ast.RecordField
	if p.peek().Type != lexer.RBRACE {
		field, err := p.parseRecordField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
		for p.peek().Type == lexer.COMMA {
			p.advance()
			field, err := p.parseRecordField()
			if err != nil {
				return nil, err
			}
			fields = append(fields, field)
		}
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return &ast.RecordLiteral{Fields: fields, Position: cerrors.Position(lbrace.Pos)}, nil
}

func (p *Parser) parseRecordField() (ast.RecordField, *cerrors.ParseError) {
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return ast.RecordField{}, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return ast.RecordField{}, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return ast.RecordField{}, err
	}
	return ast.RecordField{Name: nameTok.Literal, Value: value}, nil
}

// parseWhenExpression parses `when cond` followed by a then-block and an
// optional `otherwise` else-block (spec.md §4.2, §3: a missing else arm is
// semantically distinct from an empty one).
func (p *Parser) parseWhenExpression() (*ast.WhenExpression, *cerrors.ParseError) {
	whenTok, err := p.expect(lexer.WHEN)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	save := p.pos
	p.skipNewlines()
	var elseBlock *ast.Block
	if p.peek().Type == lexer.OTHERWISE {
		p.advance()
		p.skipNewlines()
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	} else {
		p.pos = save
	}

	return &ast.WhenExpression{
		Condition: cond, Then: thenBlock, Else: elseBlock, Position: cerrors.Position(whenTok.Pos),
	}, nil
}

// tokenStartsPattern reports whether tok can begin a `given` case's pattern.
func tokenStartsPattern(tt lexer.TokenType) bool {
	switch tt {
	case lexer.IDENT, lexer.INT, lexer.FLOAT, lexer.STRING, lexer.TRUE, lexer.FALSE:
		return true
	}
	return false
}

func (p *Parser) parseGivenExpression() (*ast.GivenExpression, *cerrors.ParseError) {
	givenTok, err := p.expect(lexer.GIVEN)
	if err != nil {
		return nil, err
	}
	scrutinee, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()

	hasIndent := false
	if p.peek().Type == lexer.INDENT {
		p.advance()
		hasIndent = true
	}

	var cases []*ast.PatternCase
	for tokenStartsPattern(p.peek().Type) {
		caseTok := p.peek()
		pattern, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.ARROW); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		cases = append(cases, &ast.PatternCase{Pattern: pattern, Expression: expr, Position: cerrors.Position(caseTok.Pos)})
		p.skipNewlines()
	}

	if hasIndent && p.peek().Type == lexer.DEDENT {
		p.advance()
	}

	return &ast.GivenExpression{Scrutinee: scrutinee, Cases: cases, Position: cerrors.Position(givenTok.Pos)}, nil
}
