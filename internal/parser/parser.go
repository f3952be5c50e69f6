package parser

import (
	"nac/internal/ast"
	"nac/token"
)

type Parser struct {
	ts *TokenStream
}

func NewParser(tokens []token.Token) *Parser {
	return &Parser{ts: NewTokenStream(tokens)}
}

// ParseProgram parses the whole token stream. It fails on the first error
// and never returns a partial program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{Pos: p.peek().Position}

	for {
		p.skipNewlines()
		if p.isAtEnd() {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	if n := len(program.Statements); n > 0 {
		program.EndPos = program.Statements[n-1].NodeEndPos()
	} else {
		program.EndPos = p.peek().Position
	}
	return program, nil
}
