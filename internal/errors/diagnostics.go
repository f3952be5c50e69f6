package errors

import (
	stderrors "errors"
	"fmt"
	"sort"

	"nac/internal/ast"
	"nac/token"
)

// DiagnosticBuilder provides a fluent interface for creating diagnostics with suggestions
type DiagnosticBuilder struct {
	err CompilerError
}

// NewDiagnostic creates a new error-level diagnostic builder
func NewDiagnostic(code, message string, pos ast.Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithNote adds a note to the error
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

// AsParseError unwraps err into a *ParseError if it carries one.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if stderrors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// FromParseError converts a front-end error into a reportable diagnostic
// with hints derived from its kind.
func FromParseError(pe *ParseError) CompilerError {
	b := NewDiagnostic(pe.DiagnosticCode(), pe.Error(), pe.Position)

	switch pe.Kind {
	case UnexpectedToken:
		b.WithLength(len([]rune(pe.Text)))
		for _, kw := range findSimilarNames(pe.Text, token.Keywords()) {
			b.WithSuggestion(fmt.Sprintf("did you mean '%s'?", kw))
		}
	case UnexpectedEOF:
		b.WithHelp("the input ends before the construct is complete; check for a missing operand, bracket or block")
	case InvalidNumber:
		b.WithLength(len(pe.Text)).
			WithHelp("numbers are written as 42, 3.14 or 6.02e23")
	case InvalidString:
		b.WithLength(len(pe.Text)).
			WithHelp(`unicode escapes are written as \u00e9 or \u{1F600}`)
	case UnterminatedString:
		b.WithSuggestion("add the closing quote before the end of the line").
			WithNote("use a backtick template literal for text spanning several lines")
	case InvalidCharacter:
		b.WithSuggestion("remove the character or place it inside a string")
	case Expected:
		b.WithLength(max(1, len([]rune(pe.Found)))).
			WithSuggestion(fmt.Sprintf("insert '%s'", pe.Expected))
	case SyntaxError:
		if pe.Code == ErrorMisplacedStatement {
			b.WithNote("this statement is only valid inside a loop or function body")
		}
	}

	return b.Build()
}

// findSimilarNames returns candidates within a small edit distance of target
func findSimilarNames(target string, candidates []string) []string {
	if len(target) < 2 {
		return nil
	}
	var similar []string
	for _, candidate := range candidates {
		if candidate != target && levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}
	sort.Strings(similar)
	return similar
}

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
