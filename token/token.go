// Package token SPDX-License-Identifier: Apache-2.0
package token

import "fmt"

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Structural markers synthesized by the scanner
	NEWLINE
	INDENT
	DEDENT

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	STRING
	TEMPLATE

	// Keywords
	LET
	CONST
	DEF
	FUNCTION
	CLASS
	RETURN
	IF
	ELIF
	ELSE
	WHILE
	FOR
	IN
	BREAK
	CONTINUE
	MATCH
	IMPORT
	FROM
	EXPORT
	DEFAULT
	AS
	TRUE
	FALSE
	NULL
	TRY
	EXCEPT
	FINALLY
	WITH
	ASYNC
	PASS
	EXTENDS
	AND_KW
	OR_KW
	NOT_KW

	// Operators
	PLUS
	MINUS
	STAR
	STAR_STAR
	SLASH
	PERCENT
	EQUAL
	PLUS_EQUAL
	MINUS_EQUAL
	STAR_EQUAL
	SLASH_EQUAL
	PERCENT_EQUAL
	STAR_STAR_EQUAL
	EQUAL_EQUAL
	BANG_EQUAL
	EQUAL_EQUAL_EQUAL
	BANG_EQUAL_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	LESS_LESS
	GREATER_GREATER
	AMPERSAND
	PIPE
	CARET
	TILDE
	AND
	OR
	BANG
	QUESTION
	ARROW
	DOT

	// Separators
	COMMA
	COLON
	SEMICOLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACKET
	RIGHT_BRACKET
	LEFT_BRACE
	RIGHT_BRACE

	// Markup
	MARKUP_OPEN
	MARKUP_CLOSE_OPEN
	MARKUP_SELF_CLOSE
	MARKUP_TEXT
)

var typeNames = [...]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	NEWLINE:    "NEWLINE",
	INDENT:     "INDENT",
	DEDENT:     "DEDENT",
	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	TEMPLATE:   "TEMPLATE",

	LET:      "let",
	CONST:    "const",
	DEF:      "def",
	FUNCTION: "function",
	CLASS:    "class",
	RETURN:   "return",
	IF:       "if",
	ELIF:     "elif",
	ELSE:     "else",
	WHILE:    "while",
	FOR:      "for",
	IN:       "in",
	BREAK:    "break",
	CONTINUE: "continue",
	MATCH:    "match",
	IMPORT:   "import",
	FROM:     "from",
	EXPORT:   "export",
	DEFAULT:  "default",
	AS:       "as",
	TRUE:     "true",
	FALSE:    "false",
	NULL:     "null",
	TRY:      "try",
	EXCEPT:   "except",
	FINALLY:  "finally",
	WITH:     "with",
	ASYNC:    "async",
	PASS:     "pass",
	EXTENDS:  "extends",
	AND_KW:   "and",
	OR_KW:    "or",
	NOT_KW:   "not",

	PLUS:              "+",
	MINUS:             "-",
	STAR:              "*",
	STAR_STAR:         "**",
	SLASH:             "/",
	PERCENT:           "%",
	EQUAL:             "=",
	PLUS_EQUAL:        "+=",
	MINUS_EQUAL:       "-=",
	STAR_EQUAL:        "*=",
	SLASH_EQUAL:       "/=",
	PERCENT_EQUAL:     "%=",
	STAR_STAR_EQUAL:   "**=",
	EQUAL_EQUAL:       "==",
	BANG_EQUAL:        "!=",
	EQUAL_EQUAL_EQUAL: "===",
	BANG_EQUAL_EQUAL:  "!==",
	LESS:              "<",
	LESS_EQUAL:        "<=",
	GREATER:           ">",
	GREATER_EQUAL:     ">=",
	LESS_LESS:         "<<",
	GREATER_GREATER:   ">>",
	AMPERSAND:         "&",
	PIPE:              "|",
	CARET:             "^",
	TILDE:             "~",
	AND:               "&&",
	OR:                "||",
	BANG:              "!",
	QUESTION:          "?",
	ARROW:             "=>",
	DOT:               ".",

	COMMA:     ",",
	COLON:     ":",
	SEMICOLON: ";",

	LEFT_PAREN:    "(",
	RIGHT_PAREN:   ")",
	LEFT_BRACKET:  "[",
	RIGHT_BRACKET: "]",
	LEFT_BRACE:    "{",
	RIGHT_BRACE:   "}",

	MARKUP_OPEN:       "MARKUP_OPEN",
	MARKUP_CLOSE_OPEN: "MARKUP_CLOSE_OPEN",
	MARKUP_SELF_CLOSE: "MARKUP_SELF_CLOSE",
	MARKUP_TEXT:       "MARKUP_TEXT",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(typeNames) && typeNames[t] != "" {
		return typeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// IsKeyword reports whether t is a reserved word.
func (t TokenType) IsKeyword() bool {
	return t >= LET && t <= NOT_KW
}

// IsStructural reports whether t is synthesized by the scanner rather than
// copied from the input.
func (t TokenType) IsStructural() bool {
	switch t {
	case NEWLINE, INDENT, DEDENT, EOF:
		return true
	}
	return false
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in runes
	Offset int // 0-based byte offset in input
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set.
func (p Position) IsValid() bool {
	return p.Line > 0
}

type Token struct {
	Type     TokenType
	Lexeme   string // exact source text, empty for structural markers
	Value    string // decoded payload of STRING and body of TEMPLATE tokens
	Position Position
}

// Text returns the text used to describe the token in diagnostics.
func (t Token) Text() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case NEWLINE:
		return "newline"
	case INDENT:
		return "indent"
	case DEDENT:
		return "dedent"
	}
	return t.Lexeme
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return fmt.Sprintf("%s at %s", t.Type, t.Position)
	}
	return fmt.Sprintf("%s %q at %s", t.Type, t.Lexeme, t.Position)
}

// EndPosition returns the position just past the token on its starting line.
func (t Token) EndPosition() Position {
	return Position{
		Line:   t.Position.Line,
		Column: t.Position.Column + len([]rune(t.Lexeme)),
		Offset: t.Position.Offset + len(t.Lexeme),
	}
}
