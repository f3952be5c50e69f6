package token

var keywords = map[string]TokenType{
	"let":      LET,
	"const":    CONST,
	"def":      DEF,
	"function": FUNCTION,
	"class":    CLASS,
	"return":   RETURN,
	"if":       IF,
	"elif":     ELIF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"in":       IN,
	"break":    BREAK,
	"continue": CONTINUE,
	"match":    MATCH,
	"import":   IMPORT,
	"from":     FROM,
	"export":   EXPORT,
	"default":  DEFAULT,
	"as":       AS,
	"true":     TRUE,
	"false":    FALSE,
	"null":     NULL,
	"try":      TRY,
	"except":   EXCEPT,
	"finally":  FINALLY,
	"with":     WITH,
	"async":    ASYNC,
	"pass":     PASS,
	"extends":  EXTENDS,
	"and":      AND_KW,
	"or":       OR_KW,
	"not":      NOT_KW,
}

// blockOpeners are the keywords whose headers may be followed by an indented
// block. MATCH also covers the arms under it.
var blockOpeners = map[TokenType]bool{
	DEF:      true,
	FUNCTION: true,
	MATCH:    true,
	CLASS:    true,
	IF:       true,
	ELIF:     true,
	ELSE:     true,
	FOR:      true,
	WHILE:    true,
	TRY:      true,
	EXCEPT:   true,
	FINALLY:  true,
	WITH:     true,
	ASYNC:    true,
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENTIFIER
}

// OpensBlock reports whether a header starting with t may own an indented block.
func OpensBlock(t TokenType) bool {
	return blockOpeners[t]
}

// Keywords returns the reserved words in no particular order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	return words
}

// operators is the maximal-munch table, longest spellings first within each
// leading character.
var operators = map[byte][]struct {
	text string
	typ  TokenType
}{
	'+': {{"+=", PLUS_EQUAL}, {"+", PLUS}},
	'-': {{"-=", MINUS_EQUAL}, {"-", MINUS}},
	'*': {{"**=", STAR_STAR_EQUAL}, {"**", STAR_STAR}, {"*=", STAR_EQUAL}, {"*", STAR}},
	'/': {{"/=", SLASH_EQUAL}, {"/", SLASH}},
	'%': {{"%=", PERCENT_EQUAL}, {"%", PERCENT}},
	'=': {{"===", EQUAL_EQUAL_EQUAL}, {"==", EQUAL_EQUAL}, {"=>", ARROW}, {"=", EQUAL}},
	'!': {{"!==", BANG_EQUAL_EQUAL}, {"!=", BANG_EQUAL}, {"!", BANG}},
	'<': {{"<<", LESS_LESS}, {"<=", LESS_EQUAL}, {"<", LESS}},
	'>': {{">>", GREATER_GREATER}, {">=", GREATER_EQUAL}, {">", GREATER}},
	'&': {{"&&", AND}, {"&", AMPERSAND}},
	'|': {{"||", OR}, {"|", PIPE}},
	'^': {{"^", CARET}},
	'~': {{"~", TILDE}},
	'?': {{"?", QUESTION}},
	'.': {{".", DOT}},
	',': {{",", COMMA}},
	':': {{":", COLON}},
	';': {{";", SEMICOLON}},
	'(': {{"(", LEFT_PAREN}},
	')': {{")", RIGHT_PAREN}},
	'[': {{"[", LEFT_BRACKET}},
	']': {{"]", RIGHT_BRACKET}},
	'{': {{"{", LEFT_BRACE}},
	'}': {{"}", RIGHT_BRACE}},
}

// LookupOperator returns the longest operator that prefixes src.
func LookupOperator(src string) (TokenType, string, bool) {
	if src == "" {
		return ILLEGAL, "", false
	}
	for _, op := range operators[src[0]] {
		if len(src) >= len(op.text) && src[:len(op.text)] == op.text {
			return op.typ, op.text, true
		}
	}
	return ILLEGAL, "", false
}
