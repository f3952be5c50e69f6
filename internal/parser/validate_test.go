package parser

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nac/internal/ast"
	"nac/internal/errors"
)

func TestControlFlowValidator(t *testing.T) {
	valid := []string{
		"while x:\n    if y:\n        break\n    continue\n",
		"for i in xs:\n    try:\n        continue\n    finally:\n        break\n",
		"def f():\n    return 1\n",
		"let f = () => {\n    return 1\n}\n",
		"class A:\n    def m(self):\n        return self\n",
		"def outer():\n    def inner():\n        return 1\n    return inner\n",
		"f(function() { return 1 })",
	}
	for _, src := range valid {
		_, err := ParseAndValidate(src)
		assert.NoError(t, err, src)
	}

	invalid := []struct {
		src  string
		msg  string
		line int
	}{
		{"break", "'break' outside loop", 1},
		{"if x:\n    continue\n", "'continue' outside loop", 2},
		{"return 1", "'return' outside function", 1},
		{"class A:\n    let x = 1\nreturn x\n", "'return' outside function", 3},
		{"while x:\n    def f():\n        break\n", "'break' outside loop", 3},
		{"for x in xs:\n    g = () => { continue }\n", "'continue' outside loop", 2},
		{"while x:\n    pass\nbreak\n", "'break' outside loop", 3},
	}
	for _, tt := range invalid {
		program, err := ParseAndValidate(tt.src)
		require.Error(t, err, tt.src)
		assert.Nil(t, program)

		pe, ok := errors.AsParseError(err)
		require.True(t, ok)
		assert.Equal(t, errors.SyntaxError, pe.Kind, tt.src)
		assert.Equal(t, tt.msg, pe.Message, tt.src)
		assert.Equal(t, tt.line, pe.Position.Line, tt.src)
		assert.Equal(t, errors.ErrorMisplacedStatement, pe.DiagnosticCode())
	}
}

func TestParseDoesNotValidate(t *testing.T) {
	program, err := Parse("break\nreturn 1\n")
	require.NoError(t, err)
	assert.Len(t, program.Statements, 2)
}

func TestParseAndValidateCustomValidators(t *testing.T) {
	errNoLets := stderrors.New("let is not allowed here")
	noLets := ValidatorFunc(func(p *ast.Program) error {
		for _, s := range p.Statements {
			if _, ok := s.(*ast.LetStmt); ok {
				return errNoLets
			}
		}
		return nil
	})

	var calls int
	counting := ValidatorFunc(func(*ast.Program) error {
		calls++
		return nil
	})

	_, err := ParseAndValidate("let x = 1", counting, noLets, counting)
	assert.ErrorIs(t, err, errNoLets)
	assert.Equal(t, 1, calls, "validators after a failure must not run")

	// explicit validators replace the defaults
	program, err := ParseAndValidate("break", counting)
	require.NoError(t, err)
	assert.NotNil(t, program)

	// parse errors win over validation
	_, err = ParseAndValidate("1 +", noLets)
	pe, ok := errors.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, errors.UnexpectedEOF, pe.Kind)
}

func TestParseDocument(t *testing.T) {
	result := ParseDocument("let x = 1\nlet y = x +\n")
	require.Error(t, result.Err)
	assert.Nil(t, result.Program)
	assert.NotEmpty(t, result.Tokens, "tokens survive a parse error")

	result = ParseDocument(`let s = "open`)
	require.Error(t, result.Err)
	assert.Empty(t, result.Tokens)

	result = ParseDocument("let total = price * count\n")
	require.NoError(t, result.Err)
	require.NotNil(t, result.Program)

	node := result.NodeAt(ast.Position{Line: 1, Column: 14})
	require.NotNil(t, node)
	ident, ok := node.(*ast.Identifier)
	require.True(t, ok, "got %T", node)
	assert.Equal(t, "price", ident.Name)

	assert.Nil(t, result.NodeAt(ast.Position{Line: 5, Column: 1}))
}
