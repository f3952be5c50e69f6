package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nac/internal/ast"
)

func init() {
	color.NoColor = true
}

func TestErrorReporter(t *testing.T) {
	source := "def main():\n    let x = (1 + 2\n    return x\n"
	reporter := NewErrorReporter("main.nac", source)

	err := NewExpected(")", "newline", ast.Position{Line: 2, Column: 19})
	formatted := reporter.FormatParseError(err)

	assert.Contains(t, formatted, "error["+ErrorExpected+"]")
	assert.Contains(t, formatted, "expected ')', found 'newline' at 2:19")
	assert.Contains(t, formatted, "main.nac:2:19")
	assert.Contains(t, formatted, "let x = (1 + 2")
	assert.Contains(t, formatted, "def main():")
	assert.Contains(t, formatted, "return x")
	assert.Contains(t, formatted, "insert ')'")
}

func TestErrorReporterWrappedError(t *testing.T) {
	reporter := NewErrorReporter("a.nac", "let = 1\n")
	wrapped := fmt.Errorf("parsing a.nac: %w", NewExpected("identifier", "=", ast.Position{Line: 1, Column: 5}))

	formatted := reporter.FormatParseError(wrapped)
	assert.Contains(t, formatted, "error["+ErrorExpected+"]")
	assert.Contains(t, formatted, "a.nac:1:5")
}

func TestErrorReporterPlainError(t *testing.T) {
	reporter := NewErrorReporter("a.nac", "")
	formatted := reporter.FormatParseError(stderrors.New("file too large"))
	assert.Equal(t, "error: file too large\n", formatted)
}

func TestErrorReporterUnknownPosition(t *testing.T) {
	reporter := NewErrorReporter("a.nac", "x")
	formatted := reporter.FormatError(NewDiagnostic(ErrorSourceTooLarge, "too big", ast.Position{}).Build())
	assert.Contains(t, formatted, "error["+ErrorSourceTooLarge+"]: too big")
	assert.NotContains(t, formatted, "a.nac:0:0")
}

func TestMarker(t *testing.T) {
	assert.Equal(t, "    ^^^", marker("let foo = 1", 5, 3, Error))
	assert.Equal(t, "\t^", marker("\tx", 2, 1, Error))
	// clamped to end of line
	assert.Equal(t, "  ^", marker("abc", 3, 10, Error))
	assert.Equal(t, "^", marker("", 0, 0, Error))
}

func TestFromParseError(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 1}

	t.Run("unexpected keyword typo", func(t *testing.T) {
		d := FromParseError(NewUnexpectedToken("retrun", pos))
		assert.Equal(t, ErrorUnexpectedToken, d.Code)
		assert.Equal(t, 6, d.Length)
		require.NotEmpty(t, d.Suggestions)
		assert.Equal(t, "did you mean 'return'?", d.Suggestions[0].Message)
	})

	t.Run("unexpected symbol", func(t *testing.T) {
		d := FromParseError(NewUnexpectedToken(")", pos))
		assert.Empty(t, d.Suggestions)
	})

	t.Run("misplaced statement", func(t *testing.T) {
		pe := NewSyntaxError("'break' outside loop", pos)
		pe.Code = ErrorMisplacedStatement
		d := FromParseError(pe)
		assert.Equal(t, ErrorMisplacedStatement, d.Code)
		assert.Len(t, d.Notes, 1)
	})

	t.Run("unterminated string", func(t *testing.T) {
		d := FromParseError(NewUnterminatedString(pos))
		assert.Equal(t, "unterminated string starting on line 1", d.Message)
		assert.NotEmpty(t, d.Suggestions)
	})
}

func TestParseErrorMessages(t *testing.T) {
	pos := ast.Position{Line: 3, Column: 5}
	tests := []struct {
		err      *ParseError
		expected string
		kind     string
	}{
		{NewUnexpectedToken("x", pos), "unexpected token 'x' at 3:5", "UnexpectedToken"},
		{NewUnexpectedEOF(pos), "unexpected end of input", "UnexpectedEof"},
		{NewInvalidNumber("1e+", pos), "invalid number literal '1e+'", "InvalidNumber"},
		{NewInvalidString(`"\u12"`, pos), `invalid string literal '"\u12"'`, "InvalidString"},
		{NewUnterminatedString(pos), "unterminated string starting on line 3", "UnterminatedString"},
		{NewInvalidCharacter('@', pos), "invalid character '@' at 3:5", "InvalidCharacter"},
		{NewExpected(")", "x", pos), "expected ')', found 'x' at 3:5", "Expected"},
		{NewSyntaxError("invalid assignment target", pos), "invalid assignment target at 3:5", "SyntaxError"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.Equal(t, tt.kind, tt.err.Kind.String())
			assert.Equal(t, tt.err.Kind.Code(), tt.err.DiagnosticCode())
		})
	}
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("else", "else"))
	assert.Equal(t, 2, levenshteinDistance("esle", "else"))
	assert.Equal(t, 3, levenshteinDistance("", "def"))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestErrorCodeMetadata(t *testing.T) {
	assert.Equal(t, "Parser", GetErrorCategory(ErrorUnexpectedToken))
	assert.Equal(t, "Validation", GetErrorCategory(ErrorMisplacedStatement))
	assert.NotEmpty(t, GetErrorDescription(ErrorInvalidNumber))
}
