package lsp

import (
	"nac/grammar"
)

// SemanticTokenTypes is the legend advertised to clients; the LSP wire format
// refers to entries by index.
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"function",
	"class",
	"string",
	"number",
	"comment",
	"operator",
}

// SemanticTokenModifiers are encoded as a bitmask over this list.
var SemanticTokenModifiers = []string{
	"declaration",
	"async",
}

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens classifies source with the tolerant grammar lexer, so
// documents that fail to parse are still highlighted.
func collectSemanticTokens(source string) ([]SemanticToken, error) {
	spans, err := grammar.Highlight(source)
	if err != nil {
		return nil, err
	}

	var tokens []SemanticToken
	var prev, beforePrev string
	for _, span := range spans {
		tokenType, modifiers, ok := classifySpan(span, prev, beforePrev)
		if span.Kind != grammar.Comment {
			beforePrev, prev = prev, span.Text
		}
		if !ok {
			continue
		}
		tokens = append(tokens, SemanticToken{
			Line:           uint32(span.Line - 1),
			StartChar:      uint32(span.Column - 1),
			Length:         uint32(span.Length),
			TokenType:      indexOf(tokenType, SemanticTokenTypes),
			TokenModifiers: modifiers,
		})
	}
	return tokens, nil
}

// classifySpan maps a highlight span to a legend entry. Names directly after
// def, function or class are declarations.
func classifySpan(span grammar.Span, prev, beforePrev string) (string, int, bool) {
	switch span.Kind {
	case grammar.Keyword:
		return "keyword", 0, true
	case grammar.String:
		return "string", 0, true
	case grammar.Number:
		return "number", 0, true
	case grammar.Comment:
		return "comment", 0, true
	case grammar.Operator:
		return "operator", 0, true
	case grammar.Identifier:
		switch prev {
		case "def", "function":
			modifiers := modifierBit("declaration")
			if beforePrev == "async" {
				modifiers |= modifierBit("async")
			}
			return "function", modifiers, true
		case "class":
			return "class", modifierBit("declaration"), true
		case "extends":
			return "class", 0, true
		}
		return "variable", 0, true
	}
	return "", 0, false
}

// encodeSemanticTokens produces the LSP delta-line, delta-start encoding.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}
	return data
}

func modifierBit(name string) int {
	return 1 << indexOf(name, SemanticTokenModifiers)
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
