package parser

import (
	"nac/internal/ast"
	"nac/token"
)

// Parse scans and parses source into a program. The first error aborts and
// is always a *errors.ParseError; no partial program is returned.
func Parse(source string) (*ast.Program, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseProgram()
}

// ParseAndValidate parses source and runs each validator over the result in
// order, stopping at the first failure. DefaultValidators are used when none
// are given.
func ParseAndValidate(source string, validators ...Validator) (*ast.Program, error) {
	program, err := Parse(source)
	if err != nil {
		return nil, err
	}
	if len(validators) == 0 {
		validators = DefaultValidators()
	}
	for _, v := range validators {
		if err := v.Validate(program); err != nil {
			return nil, err
		}
	}
	return program, nil
}

// Tokenize runs only the scanner.
func Tokenize(source string) ([]token.Token, error) {
	return NewScanner(source).ScanTokens()
}
