package parser

import (
	"strconv"
	"strings"

	"nac/internal/ast"
	"nac/internal/errors"
	"nac/token"
)

// Binding powers, lowest to highest.
const (
	precLowest = iota
	precAssign
	precConditional
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precPower
	precUnary
	precPostfix
)

type binaryOp struct {
	op   ast.BinaryOperator
	prec int
}

var binaryOps = map[token.TokenType]binaryOp{
	token.OR:                {ast.LogicalOr, precOr},
	token.OR_KW:             {ast.LogicalOr, precOr},
	token.AND:               {ast.LogicalAnd, precAnd},
	token.AND_KW:            {ast.LogicalAnd, precAnd},
	token.PIPE:              {ast.BitOr, precBitOr},
	token.CARET:             {ast.BitXor, precBitXor},
	token.AMPERSAND:         {ast.BitAnd, precBitAnd},
	token.EQUAL_EQUAL:       {ast.Equal, precEquality},
	token.BANG_EQUAL:        {ast.NotEqual, precEquality},
	token.EQUAL_EQUAL_EQUAL: {ast.StrictEqual, precEquality},
	token.BANG_EQUAL_EQUAL:  {ast.StrictNotEqual, precEquality},
	token.LESS:              {ast.Less, precRelational},
	token.LESS_EQUAL:        {ast.LessEqual, precRelational},
	token.GREATER:           {ast.Greater, precRelational},
	token.GREATER_EQUAL:     {ast.GreaterEqual, precRelational},
	token.LESS_LESS:         {ast.ShiftLeft, precShift},
	token.GREATER_GREATER:   {ast.ShiftRight, precShift},
	token.PLUS:              {ast.Add, precAdditive},
	token.MINUS:             {ast.Subtract, precAdditive},
	token.STAR:              {ast.Multiply, precMultiplicative},
	token.SLASH:             {ast.Divide, precMultiplicative},
	token.PERCENT:           {ast.Modulo, precMultiplicative},
	token.STAR_STAR:         {ast.Power, precPower},
}

var assignOps = map[token.TokenType]ast.AssignOperator{
	token.EQUAL:           ast.ASSIGN,
	token.PLUS_EQUAL:      ast.PLUS_ASSIGN,
	token.MINUS_EQUAL:     ast.MINUS_ASSIGN,
	token.STAR_EQUAL:      ast.STAR_ASSIGN,
	token.SLASH_EQUAL:     ast.SLASH_ASSIGN,
	token.PERCENT_EQUAL:   ast.PERCENT_ASSIGN,
	token.STAR_STAR_EQUAL: ast.POWER_ASSIGN,
}

var unaryOps = map[token.TokenType]ast.UnaryOperator{
	token.MINUS:  ast.Negate,
	token.PLUS:   ast.UnaryPlus,
	token.BANG:   ast.Not,
	token.NOT_KW: ast.Not,
	token.TILDE:  ast.BitNot,
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseExprAt(precAssign)
}

// parseExprAt parses an expression whose operators all bind at least as
// tightly as minPrec.
func (p *Parser) parseExprAt(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()

		if op, ok := assignOps[tok.Type]; ok {
			if precAssign < minPrec {
				return left, nil
			}
			if !isAssignable(left, op == ast.ASSIGN) {
				return nil, errors.NewSyntaxError("invalid assignment target", tok.Position)
			}
			p.advance()
			value, err := p.parseExprAt(precAssign)
			if err != nil {
				return nil, err
			}
			left = &ast.AssignExpr{
				Pos:    left.NodePos(),
				EndPos: value.NodeEndPos(),
				Op:     op,
				Target: left,
				Value:  value,
			}
			continue
		}

		if tok.Type == token.QUESTION {
			if precConditional < minPrec {
				return left, nil
			}
			p.advance()
			consequent, err := p.parseExprAt(precAssign)
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(token.COLON); err != nil {
				return nil, err
			}
			alternate, err := p.parseExprAt(precConditional)
			if err != nil {
				return nil, err
			}
			left = &ast.ConditionalExpr{
				Pos:        left.NodePos(),
				EndPos:     alternate.NodeEndPos(),
				Condition:  left,
				Consequent: consequent,
				Alternate:  alternate,
			}
			continue
		}

		bin, ok := binaryOps[tok.Type]
		if !ok || bin.prec < minPrec {
			return left, nil
		}
		p.advance()

		// power is right associative
		next := bin.prec + 1
		if bin.op == ast.Power {
			next = bin.prec
		}
		right, err := p.parseExprAt(next)
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     bin.op,
			Left:   left,
			Right:  right,
		}
	}
}

// isAssignable reports whether e may appear on the left of an assignment.
// Array and object patterns are only allowed for plain '='.
func isAssignable(e ast.Expr, pattern bool) bool {
	switch e := e.(type) {
	case *ast.Identifier, *ast.MemberExpr, *ast.IndexExpr:
		return true
	case *ast.ArrayLiteral:
		if !pattern {
			return false
		}
		for _, el := range e.Elements {
			if !isAssignable(el, true) {
				return false
			}
		}
		return true
	case *ast.ObjectLiteral:
		if !pattern {
			return false
		}
		for _, prop := range e.Properties {
			if !isAssignable(prop.Value, true) {
				return false
			}
		}
		return true
	}
	return false
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	tok := p.peek()
	if op, ok := unaryOps[tok.Type]; ok {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{
			Pos:     tok.Position,
			EndPos:  operand.NodeEndPos(),
			Op:      op,
			Operand: operand,
		}, nil
	}

	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parsePostfix(expr)
}

func (p *Parser) parsePostfix(expr ast.Expr) (ast.Expr, error) {
	for {
		switch {
		case p.match(token.DOT):
			prop, err := p.consumePropertyName()
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpr{
				Pos:      expr.NodePos(),
				EndPos:   prop.EndPos,
				Object:   expr,
				Property: prop,
			}
		case p.match(token.LEFT_PAREN):
			args, err := p.parseExprList(token.RIGHT_PAREN)
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{
				Pos:    expr.NodePos(),
				EndPos: p.endPos(),
				Callee: expr,
				Args:   args,
			}
		case p.match(token.LEFT_BRACKET):
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(token.RIGHT_BRACKET); err != nil {
				return nil, err
			}
			expr = &ast.IndexExpr{
				Pos:    expr.NodePos(),
				EndPos: p.endPos(),
				Object: expr,
				Index:  index,
			}
		default:
			return expr, nil
		}
	}
}

// parseExprList parses comma separated expressions up to and including
// the closing token. A trailing comma is allowed.
func (p *Parser) parseExprList(closing token.TokenType) ([]ast.Expr, error) {
	var exprs []ast.Expr
	for !p.check(closing) {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if !p.match(token.COMMA) {
			break
		}
	}
	if _, err := p.consume(closing); err != nil {
		return nil, err
	}
	return exprs, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()

	switch tok.Type {
	case token.NUMBER:
		p.advance()
		return numberLiteral(tok)
	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Pos: tok.Position, EndPos: tok.EndPosition(), Value: tok.Value}, nil
	case token.TEMPLATE:
		p.advance()
		return p.parseTemplate(tok)
	case token.TRUE, token.FALSE:
		p.advance()
		return &ast.BooleanLiteral{Pos: tok.Position, EndPos: tok.EndPosition(), Value: tok.Type == token.TRUE}, nil
	case token.NULL:
		p.advance()
		return &ast.NullLiteral{Pos: tok.Position, EndPos: tok.EndPosition()}, nil
	case token.IDENTIFIER:
		if p.ts.PeekN(1).Type == token.ARROW {
			return p.parseArrow()
		}
		p.advance()
		return makeIdent(tok), nil
	case token.LEFT_PAREN:
		if p.arrowAhead() {
			return p.parseArrow()
		}
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case token.LEFT_BRACKET:
		p.advance()
		elements, err := p.parseExprList(token.RIGHT_BRACKET)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayLiteral{Pos: tok.Position, EndPos: p.endPos(), Elements: elements}, nil
	case token.LEFT_BRACE:
		return p.parseObject()
	case token.FUNCTION:
		return p.parseFunctionLiteral()
	case token.MARKUP_OPEN:
		return p.parseMarkup()
	}

	return nil, p.unexpected()
}

func numberLiteral(tok token.Token) (*ast.NumberLiteral, error) {
	value, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		return nil, errors.NewInvalidNumber(tok.Lexeme, tok.Position)
	}
	return &ast.NumberLiteral{
		Pos:       tok.Position,
		EndPos:    tok.EndPosition(),
		Raw:       tok.Lexeme,
		Value:     value,
		IsInteger: !strings.ContainsAny(tok.Lexeme, ".eE"),
	}, nil
}

// parseObject parses `{key: value, "k": v, 1: v, shorthand}`.
func (p *Parser) parseObject() (ast.Expr, error) {
	open := p.advance()
	obj := &ast.ObjectLiteral{Pos: open.Position}

	for !p.check(token.RIGHT_BRACE) {
		prop, err := p.parseProperty()
		if err != nil {
			return nil, err
		}
		obj.Properties = append(obj.Properties, prop)
		if !p.match(token.COMMA) {
			break
		}
	}

	if _, err := p.consume(token.RIGHT_BRACE); err != nil {
		return nil, err
	}
	obj.EndPos = p.endPos()
	return obj, nil
}

func (p *Parser) parseProperty() (*ast.Property, error) {
	tok := p.peek()

	var key ast.Expr
	switch {
	case tok.Type == token.IDENTIFIER:
		p.advance()
		ident := makeIdent(tok)
		if !p.check(token.COLON) {
			return &ast.Property{Pos: ident.Pos, EndPos: ident.EndPos, Key: ident, Value: makeIdent(tok), Shorthand: true}, nil
		}
		key = ident
	case tok.Type.IsKeyword():
		p.advance()
		key = makeIdent(tok)
	case tok.Type == token.STRING, tok.Type == token.NUMBER:
		expr, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		key = expr
	default:
		return nil, p.unexpected()
	}

	if _, err := p.consume(token.COLON); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Property{Pos: key.NodePos(), EndPos: value.NodeEndPos(), Key: key, Value: value}, nil
}
