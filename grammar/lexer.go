package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// NacLexer is a tolerant lexer for editor features. It never fails: input
// the real scanner rejects (unterminated strings, stray characters) still
// yields tokens, so highlighting keeps working while a document is broken.
var NacLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `(#|//)[^\n]*|/\*([^*]|\*+[^*/])*\*+/`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},

		// Literals, closing delimiter optional
		{"Template", "`(\\\\.|[^`\\\\])*`?", nil},
		{"String", `"(\\.|[^"\\\n])*"?|'(\\.|[^'\\\n])*'?`, nil},
		{"Number", `[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?`, nil},

		// Keywords and Identifiers
		{"Ident", `[\p{L}_][\p{L}\p{N}_]*`, nil},

		// Operators, longest first
		{"Operator", `\*\*=|===|!==|\*\*|==|!=|<=|>=|<<|>>|&&|\|\||\+=|-=|\*=|/=|%=|=>|[-+*/%=<>!~^&|?]`, nil},

		// Punctuation (must come after operators)
		{"Punct", `[()[\]{},.:;]`, nil},

		// Anything else
		{"Error", `.`, nil},
	},
})
