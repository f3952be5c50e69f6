package parser

import (
	"nac/internal/ast"
	"nac/token"
)

// ParseResult keeps everything the tooling needs from one parse. Tokens is
// set whenever scanning succeeded, even if parsing later failed.
type ParseResult struct {
	Program *ast.Program
	Tokens  []token.Token
	Err     error
}

// ParseDocument parses source and runs the default validators, keeping the
// intermediate token stream.
func ParseDocument(source string) *ParseResult {
	result := &ParseResult{}

	tokens, err := Tokenize(source)
	if err != nil {
		result.Err = err
		return result
	}
	result.Tokens = tokens

	program, err := NewParser(tokens).ParseProgram()
	if err != nil {
		result.Err = err
		return result
	}

	for _, v := range DefaultValidators() {
		if err := v.Validate(program); err != nil {
			result.Err = err
			return result
		}
	}
	result.Program = program
	return result
}

// NodeAt returns the innermost node whose span contains pos, or nil.
func (pr *ParseResult) NodeAt(pos ast.Position) ast.Node {
	if pr.Program == nil {
		return nil
	}

	var found ast.Node
	ast.Inspect(pr.Program, func(n ast.Node) bool {
		if !contains(n, pos) {
			return false
		}
		found = n
		return true
	})
	return found
}

func contains(n ast.Node, pos ast.Position) bool {
	return !before(pos, n.NodePos()) && !before(n.NodeEndPos(), pos)
}

func before(a, b ast.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}
