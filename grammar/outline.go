package grammar

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Outline is a flat view of a document: declarations and every other token.
// It accepts any input NacLexer can tokenize, broken programs included.
type Outline struct {
	Entries []*Entry `@@*`
}

type Entry struct {
	Decl  *Declaration `  @@`
	Token string       `| @(Ident | String | Template | Number | Operator | Punct | Error)`
}

// Declaration is a named def, function or class header.
type Declaration struct {
	Pos lexer.Position

	Async bool   `@"async"?`
	Kind  string `@("def" | "class" | "function")`
	Name  string `@Ident`
}

var outlineParser = participle.MustBuild[Outline](
	participle.Lexer(NacLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(8),
)

// Symbol is a declaration found by ParseOutline. Line and Column are 1-based,
// Column counts runes.
type Symbol struct {
	Kind   string
	Name   string
	Async  bool
	Line   int
	Column int
}

// ParseOutline lists the declarations in source in document order.
func ParseOutline(source string) ([]Symbol, error) {
	outline, err := outlineParser.ParseString("", source)
	if err != nil {
		return nil, err
	}

	lines := lineStarts(source)
	var symbols []Symbol
	for _, entry := range outline.Entries {
		decl := entry.Decl
		if decl == nil {
			continue
		}
		line, column := locate(source, lines, decl.Pos.Offset)
		symbols = append(symbols, Symbol{
			Kind:   decl.Kind,
			Name:   decl.Name,
			Async:  decl.Async,
			Line:   line,
			Column: column,
		})
	}
	return symbols, nil
}
