package parser

import (
	"nac/internal/ast"
	"nac/token"
)

// parseClass parses `class Name [extends Base | (Base)]:` and its body.
func (p *Parser) parseClass() (ast.Stmt, error) {
	start := p.advance()

	name, err := p.consumeIdent()
	if err != nil {
		return nil, err
	}
	class := &ast.ClassDecl{Pos: start.Position, Name: name}

	switch {
	case p.match(token.EXTENDS):
		super, err := p.parseExprAt(precPostfix)
		if err != nil {
			return nil, err
		}
		class.Superclass = super
	case p.match(token.LEFT_PAREN):
		super, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN); err != nil {
			return nil, err
		}
		class.Superclass = super
	}

	body, err := p.parseSuite(start.Type, p.parseClassMember, p.parseClassMember)
	if err != nil {
		return nil, err
	}
	class.Body = body
	class.EndPos = body.EndPos
	return class, nil
}

// parseClassMember accepts methods, fields and pass.
func (p *Parser) parseClassMember() (ast.Stmt, error) {
	switch p.peek().Type {
	case token.DEF, token.ASYNC:
		return p.parseFunctionDecl()
	case token.LET, token.CONST, token.PASS:
		return p.parseSimpleStatement()
	}
	return nil, p.unexpected()
}
