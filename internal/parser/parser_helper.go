package parser

import (
	"nac/internal/ast"
	"nac/internal/errors"
	"nac/token"
)

func (p *Parser) advance() token.Token {
	return p.ts.Advance()
}

func (p *Parser) check(types ...token.TokenType) bool {
	tt := p.peek().Type
	for _, t := range types {
		if tt == t {
			return true
		}
	}
	return false
}

func (p *Parser) match(types ...token.TokenType) bool {
	if p.check(types...) {
		p.advance()
		return true
	}
	return false
}

// consume advances past a token of type tt or reports what was found instead.
func (p *Parser) consume(tt token.TokenType) (token.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	if p.layoutOnlyRemains() {
		return token.Token{}, errors.NewUnexpectedEOF(p.peek().Position)
	}
	tok := p.peek()
	return token.Token{}, errors.NewExpected(describe(tt), tok.Text(), tok.Position)
}

// unexpected reports the current token as having no production.
func (p *Parser) unexpected() error {
	tok := p.peek()
	if p.layoutOnlyRemains() {
		return errors.NewUnexpectedEOF(tok.Position)
	}
	return errors.NewUnexpectedToken(tok.Text(), tok.Position)
}

// layoutOnlyRemains reports whether nothing but NEWLINE/DEDENT separates the
// cursor from EOF, so running out of tokens is reported as end of input.
func (p *Parser) layoutOnlyRemains() bool {
	for i := 0; ; i++ {
		switch p.ts.PeekN(i).Type {
		case token.EOF:
			return true
		case token.NEWLINE, token.DEDENT:
		default:
			return false
		}
	}
}

func (p *Parser) peek() token.Token {
	return p.ts.Peek()
}

func (p *Parser) previous() token.Token {
	return p.ts.Previous()
}

func (p *Parser) isAtEnd() bool {
	return p.ts.AtEnd()
}

func (p *Parser) skipNewlines() {
	for p.match(token.NEWLINE) {
	}
}

// endPos is the end of the last consumed token.
func (p *Parser) endPos() ast.Position {
	return p.previous().EndPosition()
}

// endStatement accepts the terminators of a simple statement: ';', a
// newline, or the end of the enclosing block.
func (p *Parser) endStatement() error {
	if p.match(token.SEMICOLON) {
		p.match(token.NEWLINE)
		return nil
	}
	if p.match(token.NEWLINE) || p.check(token.DEDENT, token.RIGHT_BRACE, token.EOF) {
		return nil
	}
	return p.unexpected()
}

func describe(tt token.TokenType) string {
	switch tt {
	case token.IDENTIFIER:
		return "identifier"
	case token.STRING:
		return "string"
	case token.NUMBER:
		return "number"
	case token.NEWLINE:
		return "newline"
	case token.INDENT:
		return "indent"
	case token.DEDENT:
		return "dedent"
	case token.EOF:
		return "end of input"
	case token.GREATER:
		return ">"
	}
	return tt.String()
}

// Helper functions to reduce repetitive AST node creation

func makeIdent(tok token.Token) *ast.Identifier {
	return &ast.Identifier{
		Pos:    tok.Position,
		EndPos: tok.EndPosition(),
		Name:   tok.Lexeme,
	}
}

// consumeIdent consumes an identifier token and returns an ast.Identifier
func (p *Parser) consumeIdent() (*ast.Identifier, error) {
	tok, err := p.consume(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	return makeIdent(tok), nil
}

// consumePropertyName accepts an identifier or a keyword used as a name,
// as after '.' in member access.
func (p *Parser) consumePropertyName() (*ast.Identifier, error) {
	if p.peek().Type.IsKeyword() {
		return makeIdent(p.advance()), nil
	}
	return p.consumeIdent()
}

// parseIdentifierList parses a comma-separated list of identifiers
func (p *Parser) parseIdentifierList() ([]*ast.Identifier, error) {
	var idents []*ast.Identifier
	for {
		ident, err := p.consumeIdent()
		if err != nil {
			return nil, err
		}
		idents = append(idents, ident)
		if !p.match(token.COMMA) {
			return idents, nil
		}
	}
}

func (p *Parser) consumeString() (*ast.StringLiteral, error) {
	tok, err := p.consume(token.STRING)
	if err != nil {
		return nil, err
	}
	return &ast.StringLiteral{Pos: tok.Position, EndPos: tok.EndPosition(), Value: tok.Value}, nil
}
