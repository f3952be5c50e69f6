package errors

import (
	"fmt"

	"nac/internal/ast"
)

// Kind is the closed taxonomy of front-end errors.
type Kind int

const (
	UnexpectedToken Kind = iota
	UnexpectedEOF
	InvalidNumber
	InvalidString
	UnterminatedString
	InvalidCharacter
	Expected
	SyntaxError
)

var kindNames = [...]string{
	UnexpectedToken:    "UnexpectedToken",
	UnexpectedEOF:      "UnexpectedEof",
	InvalidNumber:      "InvalidNumber",
	InvalidString:      "InvalidString",
	UnterminatedString: "UnterminatedString",
	InvalidCharacter:   "InvalidCharacter",
	Expected:           "Expected",
	SyntaxError:        "SyntaxError",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Code returns the stable diagnostic code for the kind.
func (k Kind) Code() string {
	switch k {
	case UnexpectedToken:
		return ErrorUnexpectedToken
	case UnexpectedEOF:
		return ErrorUnexpectedEOF
	case InvalidNumber:
		return ErrorInvalidNumber
	case InvalidString:
		return ErrorInvalidString
	case UnterminatedString:
		return ErrorUnterminatedString
	case InvalidCharacter:
		return ErrorInvalidCharacter
	case Expected:
		return ErrorExpected
	default:
		return ErrorSyntax
	}
}

// ParseError is the single error value produced by the scanner, the parser
// and the post-parse validators. Which fields are meaningful depends on Kind:
//
//	UnexpectedToken     Text, Position
//	UnexpectedEOF       Position (informational)
//	InvalidNumber       Text
//	InvalidString       Text
//	UnterminatedString  Position.Line
//	InvalidCharacter    Text, Position
//	Expected            Expected, Found, Position
//	SyntaxError         Message, Position
type ParseError struct {
	Kind     Kind
	Text     string
	Expected string
	Found    string
	Message  string
	Code     string // overrides Kind.Code() when set
	Position ast.Position
}

// Error renders the error. The text depends only on the error's fields.
func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token '%s' at %s", e.Text, e.Position)
	case UnexpectedEOF:
		return "unexpected end of input"
	case InvalidNumber:
		return fmt.Sprintf("invalid number literal '%s'", e.Text)
	case InvalidString:
		return fmt.Sprintf("invalid string literal '%s'", e.Text)
	case UnterminatedString:
		return fmt.Sprintf("unterminated string starting on line %d", e.Position.Line)
	case InvalidCharacter:
		return fmt.Sprintf("invalid character '%s' at %s", e.Text, e.Position)
	case Expected:
		return fmt.Sprintf("expected '%s', found '%s' at %s", e.Expected, e.Found, e.Position)
	default:
		return fmt.Sprintf("%s at %s", e.Message, e.Position)
	}
}

// DiagnosticCode returns the code used when reporting the error.
func (e *ParseError) DiagnosticCode() string {
	if e.Code != "" {
		return e.Code
	}
	return e.Kind.Code()
}

// Line returns the 1-based line the error refers to.
func (e *ParseError) Line() int { return e.Position.Line }

// Column returns the 1-based column the error refers to.
func (e *ParseError) Column() int { return e.Position.Column }

func NewUnexpectedToken(text string, pos ast.Position) *ParseError {
	return &ParseError{Kind: UnexpectedToken, Text: text, Position: pos}
}

func NewUnexpectedEOF(pos ast.Position) *ParseError {
	return &ParseError{Kind: UnexpectedEOF, Position: pos}
}

func NewInvalidNumber(text string, pos ast.Position) *ParseError {
	return &ParseError{Kind: InvalidNumber, Text: text, Position: pos}
}

func NewInvalidString(text string, pos ast.Position) *ParseError {
	return &ParseError{Kind: InvalidString, Text: text, Position: pos}
}

func NewUnterminatedString(pos ast.Position) *ParseError {
	return &ParseError{Kind: UnterminatedString, Position: pos}
}

func NewInvalidCharacter(char rune, pos ast.Position) *ParseError {
	return &ParseError{Kind: InvalidCharacter, Text: string(char), Position: pos}
}

func NewExpected(expected, found string, pos ast.Position) *ParseError {
	return &ParseError{Kind: Expected, Expected: expected, Found: found, Position: pos}
}

func NewSyntaxError(message string, pos ast.Position) *ParseError {
	return &ParseError{Kind: SyntaxError, Message: message, Position: pos}
}
