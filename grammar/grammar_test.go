package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nac/grammar"
)

func TestHighlight(t *testing.T) {
	spans, err := grammar.Highlight("let x = 1 # note\nif x >= 2: print(\"hi\")\n")
	require.NoError(t, err)

	expected := []grammar.Span{
		{Kind: grammar.Keyword, Line: 1, Column: 1, Length: 3, Text: "let"},
		{Kind: grammar.Identifier, Line: 1, Column: 5, Length: 1, Text: "x"},
		{Kind: grammar.Operator, Line: 1, Column: 7, Length: 1, Text: "="},
		{Kind: grammar.Number, Line: 1, Column: 9, Length: 1, Text: "1"},
		{Kind: grammar.Comment, Line: 1, Column: 11, Length: 6, Text: "# note"},
		{Kind: grammar.Keyword, Line: 2, Column: 1, Length: 2, Text: "if"},
		{Kind: grammar.Identifier, Line: 2, Column: 4, Length: 1, Text: "x"},
		{Kind: grammar.Operator, Line: 2, Column: 6, Length: 2, Text: ">="},
		{Kind: grammar.Number, Line: 2, Column: 9, Length: 1, Text: "2"},
		{Kind: grammar.Punctuation, Line: 2, Column: 10, Length: 1, Text: ":"},
		{Kind: grammar.Identifier, Line: 2, Column: 12, Length: 5, Text: "print"},
		{Kind: grammar.Punctuation, Line: 2, Column: 17, Length: 1, Text: "("},
		{Kind: grammar.String, Line: 2, Column: 18, Length: 4, Text: `"hi"`},
		{Kind: grammar.Punctuation, Line: 2, Column: 22, Length: 1, Text: ")"},
	}
	assert.Equal(t, expected, spans)
}

func TestHighlightMultiline(t *testing.T) {
	spans, err := grammar.Highlight("t = `a\nbc`\n/* one\n   two */")
	require.NoError(t, err)
	require.Len(t, spans, 6)

	assert.Equal(t, grammar.Span{Kind: grammar.String, Line: 1, Column: 5, Length: 2, Text: "`a"}, spans[2])
	assert.Equal(t, grammar.Span{Kind: grammar.String, Line: 2, Column: 1, Length: 3, Text: "bc`"}, spans[3])
	assert.Equal(t, grammar.Span{Kind: grammar.Comment, Line: 3, Column: 1, Length: 6, Text: "/* one"}, spans[4])
	assert.Equal(t, grammar.Span{Kind: grammar.Comment, Line: 4, Column: 1, Length: 9, Text: "   two */"}, spans[5])
}

func TestHighlightTolerant(t *testing.T) {
	spans, err := grammar.Highlight("é = \"ü\nb @ 'open")
	require.NoError(t, err)

	var kinds []grammar.Kind
	for _, s := range spans {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []grammar.Kind{
		grammar.Identifier, grammar.Operator, grammar.String,
		grammar.Identifier, grammar.Invalid, grammar.String,
	}, kinds)

	// columns count runes, not bytes
	assert.Equal(t, 3, spans[1].Column)
	assert.Equal(t, 5, spans[2].Column)
	assert.Equal(t, 2, spans[2].Length)
	assert.Equal(t, "@", spans[4].Text)
	assert.Equal(t, 3, spans[4].Column)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "keyword", grammar.Keyword.String())
	assert.Equal(t, "invalid", grammar.Invalid.String())
	assert.Equal(t, "Kind(42)", grammar.Kind(42).String())
}

func TestParseOutline(t *testing.T) {
	source := `def f():
    pass
class A:
    async def m(self):
        x = function g() {}
let y = def + 1
async = 1
`
	symbols, err := grammar.ParseOutline(source)
	require.NoError(t, err)

	assert.Equal(t, []grammar.Symbol{
		{Kind: "def", Name: "f", Line: 1, Column: 1},
		{Kind: "class", Name: "A", Line: 3, Column: 1},
		{Kind: "def", Name: "m", Async: true, Line: 4, Column: 5},
		{Kind: "function", Name: "g", Line: 5, Column: 13},
	}, symbols)
}

func TestParseOutlineBrokenSource(t *testing.T) {
	symbols, err := grammar.ParseOutline("def ok(:\n  \"unterminated\ndef (\nclass B extends\n")
	require.NoError(t, err)
	require.Len(t, symbols, 2)
	assert.Equal(t, "ok", symbols[0].Name)
	assert.Equal(t, "B", symbols[1].Name)
	assert.Equal(t, 4, symbols[1].Line)
}
