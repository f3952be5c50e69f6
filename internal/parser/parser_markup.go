package parser

import (
	"strings"

	"nac/internal/ast"
	"nac/internal/errors"
	"nac/token"
)

// parseMarkup parses `<Tag attr="s" attr={e} flag>children</Tag>` or a
// self-closing `<Tag/>`.
func (p *Parser) parseMarkup() (ast.Expr, error) {
	open := p.advance()
	name, err := p.consume(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	el := &ast.MarkupElement{Pos: open.Position, Tag: name.Lexeme}

	for p.check(token.IDENTIFIER) {
		attr, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		el.Attributes = append(el.Attributes, attr)
	}

	if p.match(token.MARKUP_SELF_CLOSE) {
		el.SelfClosing = true
		el.EndPos = p.endPos()
		return el, nil
	}
	if _, err := p.consume(token.GREATER); err != nil {
		return nil, err
	}

	for !p.check(token.MARKUP_CLOSE_OPEN) {
		child, err := p.parseMarkupChild()
		if err != nil {
			return nil, err
		}
		if child != nil {
			el.Children = append(el.Children, child)
		}
	}

	p.advance() // </
	closing, err := p.consume(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if closing.Lexeme != el.Tag {
		return nil, errors.NewExpected("</"+el.Tag+">", "</"+closing.Lexeme+">", closing.Position)
	}
	if _, err := p.consume(token.GREATER); err != nil {
		return nil, err
	}
	el.EndPos = p.endPos()
	return el, nil
}

func (p *Parser) parseAttribute() (*ast.MarkupAttribute, error) {
	name := p.advance()
	attr := &ast.MarkupAttribute{Pos: name.Position, EndPos: name.EndPosition(), Name: name.Lexeme}
	if !p.match(token.EQUAL) {
		return attr, nil
	}

	switch tok := p.peek(); tok.Type {
	case token.STRING:
		p.advance()
		attr.Value = &ast.StringLiteral{Pos: tok.Position, EndPos: tok.EndPosition(), Value: tok.Value}
	case token.LEFT_BRACE:
		expr, err := p.parseEmbedded()
		if err != nil {
			return nil, err
		}
		attr.Value = expr
	default:
		return nil, p.unexpected()
	}
	attr.EndPos = p.endPos()
	return attr, nil
}

// parseMarkupChild returns nil for layout-only text between elements.
func (p *Parser) parseMarkupChild() (ast.MarkupChild, error) {
	tok := p.peek()
	switch tok.Type {
	case token.MARKUP_TEXT:
		p.advance()
		if strings.TrimSpace(tok.Value) == "" && strings.Contains(tok.Value, "\n") {
			return nil, nil
		}
		return &ast.MarkupText{Pos: tok.Position, EndPos: advancePosition(tok.Position, tok.Lexeme), Text: tok.Value}, nil
	case token.MARKUP_OPEN:
		expr, err := p.parseMarkup()
		if err != nil {
			return nil, err
		}
		return expr.(*ast.MarkupElement), nil
	case token.LEFT_BRACE:
		expr, err := p.parseEmbedded()
		if err != nil {
			return nil, err
		}
		return &ast.MarkupExpr{Pos: tok.Position, EndPos: p.endPos(), Expr: expr}, nil
	}
	return nil, p.unexpected()
}

// parseEmbedded parses `{expr}` inside markup.
func (p *Parser) parseEmbedded() (ast.Expr, error) {
	p.advance()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_BRACE); err != nil {
		return nil, err
	}
	return expr, nil
}
