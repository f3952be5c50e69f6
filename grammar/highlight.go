package grammar

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"

	"nac/token"
)

// Kind classifies a highlighted span.
type Kind int

const (
	Keyword Kind = iota
	Identifier
	String
	Number
	Comment
	Operator
	Punctuation
	Invalid
)

var kindNames = [...]string{
	Keyword:     "keyword",
	Identifier:  "identifier",
	String:      "string",
	Number:      "number",
	Comment:     "comment",
	Operator:    "operator",
	Punctuation: "punctuation",
	Invalid:     "invalid",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Span is a highlighted piece of a single line. Line and Column are 1-based,
// Column and Length count runes.
type Span struct {
	Kind   Kind
	Line   int
	Column int
	Length int
	Text   string
}

// Tokens lexes source with NacLexer, dropping whitespace.
func Tokens(source string) ([]lexer.Token, error) {
	lex, err := NacLexer.LexString("", source)
	if err != nil {
		return nil, err
	}
	all, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	whitespace := NacLexer.Symbols()["Whitespace"]
	tokens := all[:0]
	for _, tok := range all {
		if tok.EOF() || tok.Type == whitespace {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// Highlight returns the spans of source in order. Tokens that cover several
// lines (block comments, templates) are split into one span per line.
func Highlight(source string) ([]Span, error) {
	tokens, err := Tokens(source)
	if err != nil {
		return nil, err
	}

	names := lexer.SymbolsByRune(NacLexer)
	lines := lineStarts(source)

	var spans []Span
	for _, tok := range tokens {
		kind := classify(names[tok.Type], tok.Value)
		line, column := locate(source, lines, tok.Pos.Offset)

		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				line++
				column = 1
			}
			n := utf8.RuneCountInString(part)
			if n == 0 {
				continue
			}
			spans = append(spans, Span{Kind: kind, Line: line, Column: column, Length: n, Text: part})
		}
	}
	return spans, nil
}

func classify(rule, value string) Kind {
	switch rule {
	case "Comment":
		return Comment
	case "Template", "String":
		return String
	case "Number":
		return Number
	case "Ident":
		if token.LookupIdent(value) != token.IDENTIFIER {
			return Keyword
		}
		return Identifier
	case "Operator":
		return Operator
	case "Punct":
		return Punctuation
	}
	return Invalid
}

func lineStarts(source string) []int {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// locate converts a byte offset into a 1-based line and rune column.
func locate(source string, starts []int, offset int) (int, int) {
	line := 0
	for line+1 < len(starts) && starts[line+1] <= offset {
		line++
	}
	return line + 1, utf8.RuneCountInString(source[starts[line]:offset]) + 1
}
