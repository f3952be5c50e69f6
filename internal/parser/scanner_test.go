package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nac/internal/errors"
	"nac/token"
)

func scanTypes(t *testing.T, src string) []token.TokenType {
	t.Helper()
	tokens, err := NewScanner(src).ScanTokens()
	require.NoError(t, err)
	types := make([]token.TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func scanError(t *testing.T, src string) *errors.ParseError {
	t.Helper()
	tokens, err := NewScanner(src).ScanTokens()
	require.Error(t, err)
	assert.Nil(t, tokens)
	pe, ok := errors.AsParseError(err)
	require.True(t, ok, "expected *ParseError, got %T", err)
	return pe
}

func TestScanStatements(t *testing.T) {
	src := "let x = 42\nlet y = \"hello\"\nconsole.log(x, y);"
	expected := []token.TokenType{
		token.LET, token.IDENTIFIER, token.EQUAL, token.NUMBER, token.NEWLINE,
		token.LET, token.IDENTIFIER, token.EQUAL, token.STRING, token.NEWLINE,
		token.IDENTIFIER, token.DOT, token.IDENTIFIER, token.LEFT_PAREN,
		token.IDENTIFIER, token.COMMA, token.IDENTIFIER, token.RIGHT_PAREN,
		token.SEMICOLON, token.NEWLINE, token.EOF,
	}
	assert.Equal(t, expected, scanTypes(t, src))
}

func TestScanIndentation(t *testing.T) {
	t.Run("function body", func(t *testing.T) {
		src := "def greet():\n    print(\"hi\")\n"
		expected := []token.TokenType{
			token.DEF, token.IDENTIFIER, token.LEFT_PAREN, token.RIGHT_PAREN, token.COLON, token.NEWLINE,
			token.INDENT, token.IDENTIFIER, token.LEFT_PAREN, token.STRING, token.RIGHT_PAREN, token.NEWLINE,
			token.DEDENT, token.EOF,
		}
		assert.Equal(t, expected, scanTypes(t, src))
	})

	t.Run("multiple dedents", func(t *testing.T) {
		src := "if a:\n  if b:\n    c\nd\n"
		expected := []token.TokenType{
			token.IF, token.IDENTIFIER, token.COLON, token.NEWLINE,
			token.INDENT, token.IF, token.IDENTIFIER, token.COLON, token.NEWLINE,
			token.INDENT, token.IDENTIFIER, token.NEWLINE,
			token.DEDENT, token.DEDENT, token.IDENTIFIER, token.NEWLINE, token.EOF,
		}
		assert.Equal(t, expected, scanTypes(t, src))
	})

	t.Run("blank and comment lines", func(t *testing.T) {
		src := "if a:\n\n    # note\n    b\n"
		expected := []token.TokenType{
			token.IF, token.IDENTIFIER, token.COLON, token.NEWLINE,
			token.INDENT, token.IDENTIFIER, token.NEWLINE, token.DEDENT, token.EOF,
		}
		assert.Equal(t, expected, scanTypes(t, src))
	})

	t.Run("missing final newline", func(t *testing.T) {
		expected := []token.TokenType{
			token.IF, token.IDENTIFIER, token.COLON, token.NEWLINE,
			token.INDENT, token.IDENTIFIER, token.NEWLINE, token.DEDENT, token.EOF,
		}
		assert.Equal(t, expected, scanTypes(t, "if a:\n\tb"))
	})

	t.Run("empty source", func(t *testing.T) {
		assert.Equal(t, []token.TokenType{token.EOF}, scanTypes(t, ""))
		assert.Equal(t, []token.TokenType{token.EOF}, scanTypes(t, "\n\n  \n# only a comment\n"))
	})
}

func TestScanIndentBalance(t *testing.T) {
	sources := []string{
		"def f(a):\n    if a:\n        return 1\n    return 2\n",
		"class A:\n    def m(self):\n        while x:\n            pass\n",
		"for i in xs:\n  try:\n    f(i)\n  except E as e:\n    g(e)\n",
		"let f = () => {\n  if x:\n    y\n}\nz\n",
	}
	for _, src := range sources {
		tokens, err := Tokenize(src)
		require.NoError(t, err, src)

		depth := 0
		for _, tok := range tokens {
			switch tok.Type {
			case token.INDENT:
				depth++
			case token.DEDENT:
				depth--
			}
			assert.GreaterOrEqual(t, depth, 0, src)
		}
		assert.Equal(t, 0, depth, src)
	}
}

func TestScanIndentationErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		message string
		line    int
	}{
		{"bad dedent", "if a:\n    b\n  c\n", "unindent does not match any outer indentation level", 3},
		{"mixed in one line", "if a:\n \tb\n", "inconsistent use of tabs and spaces in indentation", 2},
		{"switching characters", "if a:\n\tb\nif c:\n    d\n", "inconsistent use of tabs and spaces in indentation", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pe := scanError(t, tt.src)
			assert.Equal(t, errors.SyntaxError, pe.Kind)
			assert.Equal(t, tt.message, pe.Message)
			assert.Equal(t, tt.line, pe.Position.Line)
		})
	}
}

func TestScanImplicitLineJoining(t *testing.T) {
	t.Run("parentheses", func(t *testing.T) {
		src := "x = (1,\n        2)\ny"
		expected := []token.TokenType{
			token.IDENTIFIER, token.EQUAL, token.LEFT_PAREN, token.NUMBER, token.COMMA,
			token.NUMBER, token.RIGHT_PAREN, token.NEWLINE, token.IDENTIFIER, token.NEWLINE, token.EOF,
		}
		assert.Equal(t, expected, scanTypes(t, src))
	})

	t.Run("object literal", func(t *testing.T) {
		src := "x = {\n  a: 1,\n    b: [2,\n3]\n}\n"
		expected := []token.TokenType{
			token.IDENTIFIER, token.EQUAL, token.LEFT_BRACE,
			token.IDENTIFIER, token.COLON, token.NUMBER, token.COMMA,
			token.IDENTIFIER, token.COLON, token.LEFT_BRACKET, token.NUMBER, token.COMMA, token.NUMBER, token.RIGHT_BRACKET,
			token.RIGHT_BRACE, token.NEWLINE, token.EOF,
		}
		assert.Equal(t, expected, scanTypes(t, src))
	})
}

func TestScanBlockBrace(t *testing.T) {
	t.Run("arrow body", func(t *testing.T) {
		src := "f = () => {\n  return 1\n}\n"
		expected := []token.TokenType{
			token.IDENTIFIER, token.EQUAL, token.LEFT_PAREN, token.RIGHT_PAREN, token.ARROW,
			token.LEFT_BRACE, token.RETURN, token.NUMBER, token.NEWLINE, token.RIGHT_BRACE,
			token.NEWLINE, token.EOF,
		}
		assert.Equal(t, expected, scanTypes(t, src))
	})

	t.Run("nested suite closed by brace", func(t *testing.T) {
		src := "f = () => {\n  if x:\n    y\n}"
		expected := []token.TokenType{
			token.IDENTIFIER, token.EQUAL, token.LEFT_PAREN, token.RIGHT_PAREN, token.ARROW,
			token.LEFT_BRACE, token.IF, token.IDENTIFIER, token.COLON, token.NEWLINE,
			token.INDENT, token.IDENTIFIER, token.NEWLINE, token.DEDENT, token.RIGHT_BRACE,
			token.NEWLINE, token.EOF,
		}
		assert.Equal(t, expected, scanTypes(t, src))
	})

	t.Run("one line", func(t *testing.T) {
		src := "g(function() { return 1 })"
		expected := []token.TokenType{
			token.IDENTIFIER, token.LEFT_PAREN, token.FUNCTION, token.LEFT_PAREN, token.RIGHT_PAREN,
			token.LEFT_BRACE, token.RETURN, token.NUMBER, token.NEWLINE, token.RIGHT_BRACE,
			token.RIGHT_PAREN, token.NEWLINE, token.EOF,
		}
		assert.Equal(t, expected, scanTypes(t, src))
	})

	t.Run("inside indented block", func(t *testing.T) {
		src := "if a:\n    g(function() {\n        return 1\n    })\n    h()\n"
		expected := []token.TokenType{
			token.IF, token.IDENTIFIER, token.COLON, token.NEWLINE, token.INDENT,
			token.IDENTIFIER, token.LEFT_PAREN, token.FUNCTION, token.LEFT_PAREN, token.RIGHT_PAREN,
			token.LEFT_BRACE, token.RETURN, token.NUMBER, token.NEWLINE, token.RIGHT_BRACE,
			token.RIGHT_PAREN, token.NEWLINE,
			token.IDENTIFIER, token.LEFT_PAREN, token.RIGHT_PAREN, token.NEWLINE,
			token.DEDENT, token.EOF,
		}
		assert.Equal(t, expected, scanTypes(t, src))
	})
}

func TestScanStrings(t *testing.T) {
	tests := []struct {
		src   string
		value string
	}{
		{`"hello"`, "hello"},
		{`'single'`, "single"},
		{`"a\"b"`, `a"b`},
		{`'it\'s'`, "it's"},
		{`"tab\there\n"`, "tab\there\n"},
		{`"\u0041\u{1F600}"`, "A\U0001F600"},
		{`"\q\\"`, `q\`},
		{`""`, ""},
	}
	for _, tt := range tests {
		tokens, err := Tokenize(tt.src)
		require.NoError(t, err, tt.src)
		require.Equal(t, token.STRING, tokens[0].Type, tt.src)
		assert.Equal(t, tt.value, tokens[0].Value, tt.src)
		assert.Equal(t, tt.src, tokens[0].Lexeme, tt.src)
	}
}

func TestScanStringErrors(t *testing.T) {
	t.Run("unterminated at end of file", func(t *testing.T) {
		pe := scanError(t, `let s = "oops`)
		assert.Equal(t, errors.UnterminatedString, pe.Kind)
		assert.Equal(t, 1, pe.Position.Line)
		assert.Equal(t, 9, pe.Position.Column)
		assert.Equal(t, "unterminated string starting on line 1", pe.Error())
	})

	t.Run("unterminated at end of line", func(t *testing.T) {
		pe := scanError(t, "x = 1\ny = 'ab\ncd'")
		assert.Equal(t, errors.UnterminatedString, pe.Kind)
		assert.Equal(t, 2, pe.Position.Line)
	})

	t.Run("escaped newline", func(t *testing.T) {
		pe := scanError(t, "'ab\\\ncd'")
		assert.Equal(t, errors.UnterminatedString, pe.Kind)
	})

	for _, src := range []string{`"\u12"`, `"\uZZZZ"`, `"\u{}"`, `"\u{110000}"`} {
		pe := scanError(t, src)
		assert.Equal(t, errors.InvalidString, pe.Kind, src)
		assert.Equal(t, src, pe.Text, src)
	}
}

func TestScanNumbers(t *testing.T) {
	tokens, err := Tokenize("42 3.14 1e10 2.5E-3 7.foo")
	require.NoError(t, err)

	lexemes := []string{"42", "3.14", "1e10", "2.5E-3", "7"}
	for i, lexeme := range lexemes {
		assert.Equal(t, token.NUMBER, tokens[i].Type)
		assert.Equal(t, lexeme, tokens[i].Lexeme)
	}
	assert.Equal(t, token.DOT, tokens[5].Type)
	assert.Equal(t, token.IDENTIFIER, tokens[6].Type)

	for src, text := range map[string]string{
		"1e+":       "1e+",
		"x = 1.2.3": "1.2.3",
		"12abc":     "12abc",
		"3eq":       "3eq",
	} {
		pe := scanError(t, src)
		assert.Equal(t, errors.InvalidNumber, pe.Kind, src)
		assert.Equal(t, text, pe.Text, src)
	}
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	src := "let const def function class return if elif else while for in match import from export default as async pass extends and or not _x café"
	types := scanTypes(t, src)
	expected := []token.TokenType{
		token.LET, token.CONST, token.DEF, token.FUNCTION, token.CLASS, token.RETURN, token.IF,
		token.ELIF, token.ELSE, token.WHILE, token.FOR, token.IN, token.MATCH, token.IMPORT,
		token.FROM, token.EXPORT, token.DEFAULT, token.AS, token.ASYNC, token.PASS, token.EXTENDS,
		token.AND_KW, token.OR_KW, token.NOT_KW, token.IDENTIFIER, token.IDENTIFIER,
	}
	assert.Equal(t, expected, types[:len(expected)])
}

func TestScanOperators(t *testing.T) {
	src := "** **= === == => = != !== <= << >= >> && || += -= *= /= %= ? ~ ^"
	expected := []token.TokenType{
		token.STAR_STAR, token.STAR_STAR_EQUAL, token.EQUAL_EQUAL_EQUAL, token.EQUAL_EQUAL,
		token.ARROW, token.EQUAL, token.BANG_EQUAL, token.BANG_EQUAL_EQUAL, token.LESS_EQUAL,
		token.LESS_LESS, token.GREATER_EQUAL, token.GREATER_GREATER, token.AND, token.OR,
		token.PLUS_EQUAL, token.MINUS_EQUAL, token.STAR_EQUAL, token.SLASH_EQUAL,
		token.PERCENT_EQUAL, token.QUESTION, token.TILDE, token.CARET, token.NEWLINE, token.EOF,
	}
	assert.Equal(t, expected, scanTypes(t, src))
}

func TestScanInvalidCharacter(t *testing.T) {
	pe := scanError(t, "let a = @")
	assert.Equal(t, errors.InvalidCharacter, pe.Kind)
	assert.Equal(t, "@", pe.Text)
	assert.Equal(t, "invalid character '@' at 1:9", pe.Error())
}

func TestScanComments(t *testing.T) {
	src := "a // line\nb /* spans\nlines */ c\n# hash\n"
	expected := []token.TokenType{
		token.IDENTIFIER, token.NEWLINE, token.IDENTIFIER, token.IDENTIFIER, token.NEWLINE, token.EOF,
	}
	assert.Equal(t, expected, scanTypes(t, src))

	pe := scanError(t, "a /* never closed")
	assert.Equal(t, errors.UnexpectedEOF, pe.Kind)
}

func TestScanTemplates(t *testing.T) {
	tokens, err := Tokenize("`a {f({b: 1})} c`")
	require.NoError(t, err)
	require.Equal(t, token.TEMPLATE, tokens[0].Type)
	assert.Equal(t, "a {f({b: 1})} c", tokens[0].Value)
	assert.Equal(t, "`a {f({b: 1})} c`", tokens[0].Lexeme)

	tokens, err = Tokenize("`line one\nline two`\nx")
	require.NoError(t, err)
	assert.Equal(t, token.TEMPLATE, tokens[0].Type)
	assert.Equal(t, token.NEWLINE, tokens[1].Type)
	assert.Equal(t, 3, tokens[2].Position.Line)

	pe := scanError(t, "`never closed")
	assert.Equal(t, errors.UnterminatedString, pe.Kind)
}

func TestScanMarkup(t *testing.T) {
	t.Run("element with attributes and children", func(t *testing.T) {
		src := `let el = <div class="a" id={x}>Hi {name}<br/></div>`
		tokens, err := Tokenize(src)
		require.NoError(t, err)

		expected := []token.TokenType{
			token.LET, token.IDENTIFIER, token.EQUAL, token.MARKUP_OPEN, token.IDENTIFIER,
			token.IDENTIFIER, token.EQUAL, token.STRING,
			token.IDENTIFIER, token.EQUAL, token.LEFT_BRACE, token.IDENTIFIER, token.RIGHT_BRACE,
			token.GREATER, token.MARKUP_TEXT, token.LEFT_BRACE, token.IDENTIFIER, token.RIGHT_BRACE,
			token.MARKUP_OPEN, token.IDENTIFIER, token.MARKUP_SELF_CLOSE,
			token.MARKUP_CLOSE_OPEN, token.IDENTIFIER, token.GREATER, token.NEWLINE, token.EOF,
		}
		types := make([]token.TokenType, len(tokens))
		for i, tok := range tokens {
			types[i] = tok.Type
		}
		assert.Equal(t, expected, types)
		assert.Equal(t, "Hi ", tokens[14].Value)
	})

	t.Run("comparison is not markup", func(t *testing.T) {
		assert.Equal(t, []token.TokenType{
			token.IDENTIFIER, token.LESS, token.IDENTIFIER, token.NEWLINE, token.EOF,
		}, scanTypes(t, "a <b"))
	})

	t.Run("indentation ignored inside markup", func(t *testing.T) {
		src := "x = <div>\n    text\n</div>\ny\n"
		expected := []token.TokenType{
			token.IDENTIFIER, token.EQUAL, token.MARKUP_OPEN, token.IDENTIFIER, token.GREATER,
			token.MARKUP_TEXT, token.MARKUP_CLOSE_OPEN, token.IDENTIFIER, token.GREATER, token.NEWLINE,
			token.IDENTIFIER, token.NEWLINE, token.EOF,
		}
		assert.Equal(t, expected, scanTypes(t, src))
	})

	t.Run("tag names with dashes", func(t *testing.T) {
		tokens, err := Tokenize(`<my-widget data-id="1"/>`)
		require.NoError(t, err)
		assert.Equal(t, "my-widget", tokens[1].Lexeme)
		assert.Equal(t, "data-id", tokens[2].Lexeme)
	})
}

func TestScanPositions(t *testing.T) {
	tokens, err := Tokenize("let x = 42\n  \"é\" y")
	require.NoError(t, err)

	assert.Equal(t, token.Position{Line: 1, Column: 5, Offset: 4}, tokens[1].Position)
	assert.Equal(t, token.Position{Line: 1, Column: 9, Offset: 8}, tokens[3].Position)

	// NEWLINE, INDENT, then the string
	assert.Equal(t, token.INDENT, tokens[5].Type)
	assert.Equal(t, token.Position{Line: 2, Column: 3, Offset: 13}, tokens[6].Position)
	assert.Equal(t, token.Position{Line: 2, Column: 7, Offset: 18}, tokens[7].Position)
}

func TestSegmentScannerPositions(t *testing.T) {
	pos := token.Position{Line: 3, Column: 10, Offset: 40}
	tokens, err := newSegmentScanner("a +\n b", pos).ScanTokens()
	require.NoError(t, err)

	require.Len(t, tokens, 4)
	assert.Equal(t, pos, tokens[0].Position)
	assert.Equal(t, token.PLUS, tokens[1].Type)
	assert.Equal(t, token.Position{Line: 4, Column: 2, Offset: 45}, tokens[2].Position)
	assert.Equal(t, token.EOF, tokens[3].Type)
}
