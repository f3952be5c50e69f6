package parser

import (
	"nac/internal/ast"
	"nac/token"
)

// parseFunctionDecl parses `[async] def name(params):` and
// `function name(params)` followed by a `:` block or a brace body.
func (p *Parser) parseFunctionDecl() (ast.Stmt, error) {
	start := p.peek()
	async := p.match(token.ASYNC)

	kw := p.peek()
	if async {
		if _, err := p.consume(token.DEF); err != nil {
			return nil, err
		}
	} else {
		p.advance() // def or function
	}

	name, err := p.consumeIdent()
	if err != nil {
		return nil, err
	}

	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}

	var body *ast.Block
	if kw.Type == token.FUNCTION && p.check(token.LEFT_BRACE) {
		body, err = p.parseBraceBlock()
		if err == nil {
			err = p.endStatement()
		}
	} else {
		body, err = p.parseBlock(kw.Type)
	}
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDecl{
		Pos:     start.Position,
		EndPos:  body.EndPos,
		Keyword: kw.Lexeme,
		Async:   async,
		Name:    name,
		Params:  params,
		Body:    body,
	}, nil
}

// parseFunctionParameters parses the parameter list in parentheses
func (p *Parser) parseFunctionParameters() ([]*ast.Param, error) {
	if _, err := p.consume(token.LEFT_PAREN); err != nil {
		return nil, err
	}

	var params []*ast.Param
	for !p.check(token.RIGHT_PAREN) {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.match(token.COMMA) {
			break
		}
	}

	if _, err := p.consume(token.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseParam() (*ast.Param, error) {
	name, err := p.consumeIdent()
	if err != nil {
		return nil, err
	}
	param := &ast.Param{Pos: name.Pos, EndPos: name.EndPos, Name: name}
	if p.match(token.EQUAL) {
		def, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		param.Default = def
		param.EndPos = def.NodeEndPos()
	}
	return param, nil
}

// parseFunctionLiteral parses `function [name](params) { ... }`.
func (p *Parser) parseFunctionLiteral() (ast.Expr, error) {
	start := p.advance()
	fn := &ast.FunctionLiteral{Pos: start.Position}

	if p.check(token.IDENTIFIER) {
		fn.Name = makeIdent(p.advance())
	}

	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}
	fn.Params = params

	body, err := p.parseBraceBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	fn.EndPos = body.EndPos
	return fn, nil
}

// arrowAhead reports whether the parenthesized group at the cursor is
// followed by '=>'. It scans tokens only, so each group is looked at once.
func (p *Parser) arrowAhead() bool {
	checkpoint := p.ts.Checkpoint()
	defer p.ts.Reset(checkpoint)

	depth := 0
	for {
		switch p.advance().Type {
		case token.LEFT_PAREN, token.LEFT_BRACKET, token.LEFT_BRACE:
			depth++
		case token.RIGHT_PAREN, token.RIGHT_BRACKET, token.RIGHT_BRACE:
			depth--
			if depth == 0 {
				return p.check(token.ARROW)
			}
		case token.EOF:
			return false
		}
	}
}

// parseArrow parses `x => e` or `(params) => body`. The caller has seen the
// '=>' that follows the parameters.
func (p *Parser) parseArrow() (ast.Expr, error) {
	start := p.peek()

	var params []*ast.Param
	if p.check(token.IDENTIFIER) {
		params = []*ast.Param{{Pos: start.Position, EndPos: start.EndPosition(), Name: makeIdent(p.advance())}}
	} else {
		var err error
		params, err = p.parseFunctionParameters()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.ARROW); err != nil {
		return nil, err
	}

	fn := &ast.FunctionLiteral{Pos: start.Position, Arrow: true, Params: params}
	if p.check(token.LEFT_BRACE) {
		body, err := p.parseBraceBlock()
		if err != nil {
			return nil, err
		}
		fn.Body = body
		fn.EndPos = body.EndPos
		return fn, nil
	}

	body, err := p.parseExprAt(precAssign)
	if err != nil {
		return nil, err
	}
	fn.ExprBody = body
	fn.EndPos = body.NodeEndPos()
	return fn, nil
}
