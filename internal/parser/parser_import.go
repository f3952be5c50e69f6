package parser

import (
	"nac/internal/ast"
	"nac/token"
)

// parseImport handles
//
//	import "m"
//	import x from "m"
//	import x, { a, b as c } from "m"
//	import * as ns from "m"
//	from "m" import a, b as c
func (p *Parser) parseImport() (ast.Stmt, error) {
	start := p.advance()
	stmt := &ast.ImportStmt{Pos: start.Position}

	if start.Type == token.FROM {
		source, err := p.consumeString()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.IMPORT); err != nil {
			return nil, err
		}
		stmt.Source = source
		stmt.FromFirst = true

		paren := p.match(token.LEFT_PAREN)
		specs, err := p.parseImportSpecs(token.RIGHT_PAREN, paren)
		if err != nil {
			return nil, err
		}
		stmt.Specs = specs
		return p.finishImport(stmt)
	}

	if p.check(token.STRING) {
		source, err := p.consumeString()
		if err != nil {
			return nil, err
		}
		stmt.Source = source
		return p.finishImport(stmt)
	}

	if p.check(token.IDENTIFIER) {
		stmt.Default = makeIdent(p.advance())
		if !p.match(token.COMMA) {
			return p.finishImportFrom(stmt)
		}
	}

	switch {
	case p.match(token.STAR):
		if _, err := p.consume(token.AS); err != nil {
			return nil, err
		}
		ns, err := p.consumeIdent()
		if err != nil {
			return nil, err
		}
		stmt.Namespace = ns
	case p.match(token.LEFT_BRACE):
		specs, err := p.parseImportSpecs(token.RIGHT_BRACE, true)
		if err != nil {
			return nil, err
		}
		stmt.Specs = specs
	default:
		return nil, p.unexpected()
	}

	return p.finishImportFrom(stmt)
}

func (p *Parser) finishImportFrom(stmt *ast.ImportStmt) (ast.Stmt, error) {
	if _, err := p.consume(token.FROM); err != nil {
		return nil, err
	}
	source, err := p.consumeString()
	if err != nil {
		return nil, err
	}
	stmt.Source = source
	return p.finishImport(stmt)
}

func (p *Parser) finishImport(stmt *ast.ImportStmt) (ast.Stmt, error) {
	stmt.EndPos = p.endPos()
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseImportSpecs parses `a, b as c`. When delimited the list may be empty
// or end in a trailing comma and the closing token is consumed.
func (p *Parser) parseImportSpecs(closing token.TokenType, delimited bool) ([]*ast.ImportSpec, error) {
	specs := []*ast.ImportSpec{}
	for !delimited || !p.check(closing) {
		name, err := p.consumePropertyName()
		if err != nil {
			return nil, err
		}
		spec := &ast.ImportSpec{Pos: name.Pos, EndPos: name.EndPos, Name: name}
		if p.match(token.AS) {
			alias, err := p.consumeIdent()
			if err != nil {
				return nil, err
			}
			spec.Alias = alias
			spec.EndPos = alias.EndPos
		}
		specs = append(specs, spec)
		if !p.match(token.COMMA) {
			break
		}
	}
	if delimited {
		if _, err := p.consume(closing); err != nil {
			return nil, err
		}
	}
	return specs, nil
}

// parseExport handles the declaration, default and named export forms.
func (p *Parser) parseExport() (ast.Stmt, error) {
	start := p.advance()

	switch p.peek().Type {
	case token.DEFAULT:
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt := &ast.ExportDefault{Pos: start.Position, EndPos: p.endPos(), Value: value}
		if err := p.endStatement(); err != nil {
			return nil, err
		}
		return stmt, nil

	case token.LEFT_BRACE:
		p.advance()
		specs, err := p.parseImportSpecs(token.RIGHT_BRACE, true)
		if err != nil {
			return nil, err
		}
		stmt := &ast.ExportNamed{Pos: start.Position, Specs: specs}
		if p.match(token.FROM) {
			source, err := p.consumeString()
			if err != nil {
				return nil, err
			}
			stmt.Source = source
		}
		stmt.EndPos = p.endPos()
		if err := p.endStatement(); err != nil {
			return nil, err
		}
		return stmt, nil

	case token.LET, token.CONST:
		decl, err := p.parseSimpleStatement()
		if err != nil {
			return nil, err
		}
		return &ast.ExportDecl{Pos: start.Position, EndPos: decl.NodeEndPos(), Decl: decl}, nil

	case token.DEF, token.ASYNC, token.FUNCTION:
		decl, err := p.parseFunctionDecl()
		if err != nil {
			return nil, err
		}
		return &ast.ExportDecl{Pos: start.Position, EndPos: decl.NodeEndPos(), Decl: decl}, nil

	case token.CLASS:
		decl, err := p.parseClass()
		if err != nil {
			return nil, err
		}
		return &ast.ExportDecl{Pos: start.Position, EndPos: decl.NodeEndPos(), Decl: decl}, nil
	}

	return nil, p.unexpected()
}
