package lsp

import (
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"nac/internal/errors"
)

const diagnosticSource = "nac-parser"

// ConvertParseError transforms a parse or validation failure into LSP
// diagnostics. Parsing stops at the first error, so there is at most one.
// A nil error yields an empty, non-nil slice, which clears the editor's list.
func ConvertParseError(err error) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if err == nil {
		return diagnostics
	}

	pe, ok := errors.AsParseError(err)
	if !ok {
		return append(diagnostics, protocol.Diagnostic{
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString(diagnosticSource),
			Message:  err.Error(),
		})
	}

	start := toProtocolPosition(pe.Line(), pe.Column())
	end := start
	end.Character += uint32(errorLength(pe))

	return append(diagnostics, protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: pe.DiagnosticCode()},
		Source:   ptrString(diagnosticSource),
		Message:  pe.Error(),
	})
}

// errorLength is the number of characters the diagnostic underlines.
func errorLength(pe *errors.ParseError) int {
	var text string
	switch pe.Kind {
	case errors.UnexpectedToken, errors.InvalidNumber, errors.InvalidString, errors.InvalidCharacter:
		text = pe.Text
	case errors.Expected:
		text = pe.Found
	}
	if n := utf8.RuneCountInString(text); n > 0 {
		return n
	}
	return 1
}

// toProtocolPosition converts 1-based line/column to 0-based LSP coordinates.
// Unset positions map to the start of the document.
func toProtocolPosition(line, column int) protocol.Position {
	if line < 1 {
		return protocol.Position{}
	}
	if column < 1 {
		column = 1
	}
	return protocol.Position{Line: uint32(line - 1), Character: uint32(column - 1)}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
