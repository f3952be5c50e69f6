package parser

import (
	"nac/internal/ast"
	"nac/internal/errors"
	"nac/token"
)

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.peek().Type {
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.DEF, token.ASYNC:
		return p.parseFunctionDecl()
	case token.FUNCTION:
		if p.ts.PeekN(1).Type == token.IDENTIFIER {
			return p.parseFunctionDecl()
		}
	case token.CLASS:
		return p.parseClass()
	case token.MATCH:
		return p.parseMatch()
	case token.TRY:
		return p.parseTry()
	case token.WITH:
		return p.parseWith()
	case token.IMPORT, token.FROM:
		return p.parseImport()
	case token.EXPORT:
		return p.parseExport()
	case token.INDENT:
		return nil, p.unexpected()
	}
	return p.parseSimpleStatement()
}

// parseSimpleStatement parses the statements allowed in an inline suite.
func (p *Parser) parseSimpleStatement() (ast.Stmt, error) {
	start := p.peek()

	var stmt ast.Stmt
	switch start.Type {
	case token.LET, token.CONST:
		let, err := p.parseLet()
		if err != nil {
			return nil, err
		}
		stmt = let
	case token.RETURN:
		p.advance()
		ret := &ast.ReturnStmt{Pos: start.Position}
		if !p.check(token.NEWLINE, token.SEMICOLON, token.DEDENT, token.RIGHT_BRACE, token.EOF) {
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			ret.Value = value
		}
		ret.EndPos = p.endPos()
		stmt = ret
	case token.BREAK:
		p.advance()
		stmt = &ast.BreakStmt{Pos: start.Position, EndPos: p.endPos()}
	case token.CONTINUE:
		p.advance()
		stmt = &ast.ContinueStmt{Pos: start.Position, EndPos: p.endPos()}
	case token.PASS:
		p.advance()
		stmt = &ast.PassStmt{Pos: start.Position, EndPos: p.endPos()}
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt = &ast.ExprStmt{Pos: expr.NodePos(), EndPos: expr.NodeEndPos(), Expr: expr}
	}

	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseLet parses `let name [= value]` or `const name = value` without the
// statement terminator.
func (p *Parser) parseLet() (*ast.LetStmt, error) {
	kw := p.advance()
	let := &ast.LetStmt{Pos: kw.Position, Const: kw.Type == token.CONST}

	name, err := p.consumeIdent()
	if err != nil {
		return nil, err
	}
	let.Name = name

	if p.match(token.EQUAL) {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		let.Value = value
	} else if let.Const {
		return nil, errors.NewSyntaxError("missing initializer in const declaration", name.Pos)
	}

	let.EndPos = p.endPos()
	return let, nil
}

// parseBlock parses `:` followed by either an indented block or an inline
// suite of simple statements on the same line.
func (p *Parser) parseBlock(header token.TokenType) (*ast.Block, error) {
	return p.parseSuite(header, p.parseStatement, p.parseSimpleStatement)
}

// parseSuite parses the block after a header. Only headers whose keyword
// opens a block may continue on indented lines; others take an inline suite.
func (p *Parser) parseSuite(header token.TokenType, indented, inline func() (ast.Stmt, error)) (*ast.Block, error) {
	colon, err := p.consume(token.COLON)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Pos: colon.Position}

	if p.check(token.NEWLINE) && !token.OpensBlock(header) {
		return nil, p.unexpected()
	}
	if p.match(token.NEWLINE) {
		if _, err := p.consume(token.INDENT); err != nil {
			return nil, err
		}
		for !p.check(token.DEDENT) && !p.isAtEnd() {
			stmt, err := indented()
			if err != nil {
				return nil, err
			}
			block.Statements = append(block.Statements, stmt)
			p.skipNewlines()
		}
		if _, err := p.consume(token.DEDENT); err != nil {
			return nil, err
		}
		block.EndPos = lastEnd(block)
		return block, nil
	}

	for {
		stmt, err := inline()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		if p.previous().Type == token.NEWLINE || p.check(token.DEDENT, token.RIGHT_BRACE, token.EOF) {
			break
		}
	}
	block.EndPos = lastEnd(block)
	return block, nil
}

// parseBraceBlock parses a `{ ... }` function body.
func (p *Parser) parseBraceBlock() (*ast.Block, error) {
	open, err := p.consume(token.LEFT_BRACE)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Pos: open.Position}

	for {
		p.skipNewlines()
		if p.check(token.RIGHT_BRACE) || p.isAtEnd() {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}

	if _, err := p.consume(token.RIGHT_BRACE); err != nil {
		return nil, err
	}
	block.EndPos = p.endPos()
	return block, nil
}

func lastEnd(b *ast.Block) ast.Position {
	if n := len(b.Statements); n > 0 {
		return b.Statements[n-1].NodeEndPos()
	}
	return b.Pos
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	start := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock(start.Type)
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{Pos: start.Position, Condition: cond, Body: body}

	for p.check(token.ELIF) {
		elif := p.advance()
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock(elif.Type)
		if err != nil {
			return nil, err
		}
		stmt.Elifs = append(stmt.Elifs, &ast.ElifClause{
			Pos:       elif.Position,
			EndPos:    body.EndPos,
			Condition: cond,
			Body:      body,
		})
	}

	if p.match(token.ELSE) {
		els, err := p.parseBlock(token.ELSE)
		if err != nil {
			return nil, err
		}
		stmt.Else = els
	}

	stmt.EndPos = body.EndPos
	if n := len(stmt.Elifs); n > 0 {
		stmt.EndPos = stmt.Elifs[n-1].EndPos
	}
	if stmt.Else != nil {
		stmt.EndPos = stmt.Else.EndPos
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	start := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock(start.Type)
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Pos: start.Position, EndPos: body.EndPos, Condition: cond, Body: body}, nil
}

// parseFor parses `for a[, b] in iterable:`.
func (p *Parser) parseFor() (ast.Stmt, error) {
	start := p.advance()
	targets, err := p.parseIdentifierList()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.IN); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock(start.Type)
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{
		Pos:      start.Position,
		EndPos:   body.EndPos,
		Targets:  targets,
		Iterable: iterable,
		Body:     body,
	}, nil
}

// parseMatch parses a subject followed by an indented list of arms.
func (p *Parser) parseMatch() (ast.Stmt, error) {
	start := p.advance()
	subject, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt := &ast.MatchStmt{Pos: start.Position, Subject: subject}

	if _, err := p.consume(token.COLON); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.NEWLINE); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.INDENT); err != nil {
		return nil, err
	}

	for !p.check(token.DEDENT) && !p.isAtEnd() {
		pattern, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock(token.MATCH)
		if err != nil {
			return nil, err
		}
		stmt.Arms = append(stmt.Arms, &ast.MatchArm{
			Pos:     pattern.NodePos(),
			EndPos:  body.EndPos,
			Pattern: pattern,
			Body:    body,
		})
		p.skipNewlines()
	}

	if _, err := p.consume(token.DEDENT); err != nil {
		return nil, err
	}
	stmt.EndPos = subject.NodeEndPos()
	if n := len(stmt.Arms); n > 0 {
		stmt.EndPos = stmt.Arms[n-1].EndPos
	}
	return stmt, nil
}

func (p *Parser) parsePattern() (ast.Pattern, error) {
	tok := p.peek()
	switch tok.Type {
	case token.IDENTIFIER:
		p.advance()
		if tok.Lexeme == "_" {
			return &ast.WildcardPattern{Pos: tok.Position, EndPos: tok.EndPosition()}, nil
		}
		return &ast.IdentifierPattern{Pos: tok.Position, EndPos: tok.EndPosition(), Name: tok.Lexeme}, nil
	case token.MINUS:
		p.advance()
		num, err := p.consume(token.NUMBER)
		if err != nil {
			return nil, err
		}
		lit, err := numberLiteral(num)
		if err != nil {
			return nil, err
		}
		lit.Pos = tok.Position
		lit.Raw = "-" + lit.Raw
		lit.Value = -lit.Value
		return &ast.LiteralPattern{Pos: tok.Position, EndPos: lit.EndPos, Value: lit}, nil
	case token.NUMBER, token.STRING, token.TRUE, token.FALSE, token.NULL:
		expr, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		lit := expr.(ast.Literal)
		return &ast.LiteralPattern{Pos: lit.NodePos(), EndPos: lit.NodeEndPos(), Value: lit}, nil
	}
	return nil, p.unexpected()
}

func (p *Parser) parseTry() (ast.Stmt, error) {
	start := p.advance()
	body, err := p.parseBlock(start.Type)
	if err != nil {
		return nil, err
	}
	stmt := &ast.TryStmt{Pos: start.Position, Body: body}

	for p.check(token.EXCEPT) {
		kw := p.advance()
		handler := &ast.ExceptClause{Pos: kw.Position}
		if p.check(token.IDENTIFIER) {
			handler.Type = makeIdent(p.advance())
		}
		if p.match(token.AS) {
			name, err := p.consumeIdent()
			if err != nil {
				return nil, err
			}
			handler.Name = name
		}
		body, err := p.parseBlock(kw.Type)
		if err != nil {
			return nil, err
		}
		handler.Body = body
		handler.EndPos = body.EndPos
		stmt.Handlers = append(stmt.Handlers, handler)
	}

	if p.match(token.FINALLY) {
		finally, err := p.parseBlock(token.FINALLY)
		if err != nil {
			return nil, err
		}
		stmt.Finally = finally
	}

	if len(stmt.Handlers) == 0 && stmt.Finally == nil {
		_, err := p.consume(token.EXCEPT)
		return nil, err
	}

	stmt.EndPos = body.EndPos
	if n := len(stmt.Handlers); n > 0 {
		stmt.EndPos = stmt.Handlers[n-1].EndPos
	}
	if stmt.Finally != nil {
		stmt.EndPos = stmt.Finally.EndPos
	}
	return stmt, nil
}

func (p *Parser) parseWith() (ast.Stmt, error) {
	start := p.advance()
	ctx, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt := &ast.WithStmt{Pos: start.Position, Context: ctx}
	if p.match(token.AS) {
		name, err := p.consumeIdent()
		if err != nil {
			return nil, err
		}
		stmt.Name = name
	}
	body, err := p.parseBlock(start.Type)
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	stmt.EndPos = body.EndPos
	return stmt, nil
}
