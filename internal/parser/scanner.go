package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"nac/internal/errors"
	"nac/token"
)

type bracketKind int

const (
	parenBracket bracketKind = iota
	squareBracket
	objectBrace
	blockBrace
)

// bracket is an open delimiter. Block braces carry the indentation context
// they replaced so it can be restored when they close.
type bracket struct {
	kind        bracketKind
	markupDepth int
	indents     []int
}

type markupMode int

const (
	tagMode markupMode = iota
	childrenMode
	embedMode
)

type markupFrame struct {
	mode     markupMode
	closing  bool // tag frame of a closing tag
	brackets int  // bracket depth when an embed frame opened
}

type Scanner struct {
	source      string
	tokens      []token.Token
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
	offsetBase  int

	indents       []int
	indentChar    byte
	leading       string // leading whitespace of the current line
	indentPending bool
	lineHasTokens bool

	brackets []bracket
	markup   []markupFrame
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source:  source,
		line:    1,
		column:  1,
		indents: []int{0},
	}
}

// newSegmentScanner scans an embedded template expression located at pos.
// The segment behaves as if it were inside parentheses so no layout tokens
// are produced.
func newSegmentScanner(source string, pos token.Position) *Scanner {
	s := NewScanner(source)
	s.line = pos.Line
	s.column = pos.Column
	s.offsetBase = pos.Offset
	s.brackets = []bracket{{kind: parenBracket}}
	return s
}

// ScanTokens scans the whole source. The first error stops the scan and no
// tokens are returned with it.
func (s *Scanner) ScanTokens() ([]token.Token, error) {
	if s.significant() {
		s.beginLine()
	}
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	s.finish()
	return s.tokens, nil
}

func (s *Scanner) scanToken() error {
	if n := len(s.markup); n > 0 {
		switch s.markup[n-1].mode {
		case tagMode:
			return s.scanTag()
		case childrenMode:
			return s.scanChildren()
		}
	}

	c := s.advance()
	switch {
	case c == '\n':
		s.newline()
		return nil
	case c == ' ' || c == '\t' || c == '\r':
		return nil
	case c == '#':
		s.skipLineComment()
		return nil
	case c == '/' && s.peek() == '/':
		s.skipLineComment()
		return nil
	case c == '/' && s.peek() == '*':
		return s.skipBlockComment()
	case c == '"' || c == '\'':
		return s.scanString(c)
	case c == '`':
		return s.scanTemplate()
	case isDigit(c):
		return s.scanNumber()
	case isIdentStart(c):
		return s.scanIdentifier()
	case c == '<' && s.startsMarkup():
		s.markup = append(s.markup, markupFrame{mode: tagMode})
		return s.addToken(token.MARKUP_OPEN, "")
	case c == '{':
		return s.openBrace()
	case c == '}':
		return s.closeBrace()
	}

	return s.scanOperator(c)
}

func (s *Scanner) scanOperator(c rune) error {
	typ, text, ok := token.LookupOperator(s.source[s.start:])
	if !ok {
		return errors.NewInvalidCharacter(c, s.startPos())
	}
	for i := 1; i < len(text); i++ {
		s.advance()
	}

	switch typ {
	case token.LEFT_PAREN:
		s.pushBracket(parenBracket)
	case token.LEFT_BRACKET:
		s.pushBracket(squareBracket)
	case token.RIGHT_PAREN:
		s.popBracket(parenBracket)
	case token.RIGHT_BRACKET:
		s.popBracket(squareBracket)
	}
	return s.addToken(typ, "")
}

func (s *Scanner) pushBracket(kind bracketKind) {
	s.brackets = append(s.brackets, bracket{kind: kind, markupDepth: len(s.markup)})
}

// popBracket closes the innermost bracket if it is of the given kind.
// Mismatched closers are left for the parser to report.
func (s *Scanner) popBracket(kind bracketKind) {
	if n := len(s.brackets); n > 0 && s.brackets[n-1].kind == kind {
		s.brackets = s.brackets[:n-1]
	}
}

// openBrace starts either an object literal or, directly after ')' or '=>',
// a function body with its own indentation context.
func (s *Scanner) openBrace() error {
	kind := objectBrace
	if prev, ok := s.lastToken(); ok && (prev.Type == token.RIGHT_PAREN || prev.Type == token.ARROW) {
		kind = blockBrace
	}
	if err := s.addToken(token.LEFT_BRACE, ""); err != nil {
		return err
	}

	b := bracket{kind: kind, markupDepth: len(s.markup)}
	if kind == blockBrace {
		b.indents = s.indents
		s.indents = nil
		s.lineHasTokens = false
	}
	s.brackets = append(s.brackets, b)
	return nil
}

func (s *Scanner) closeBrace() error {
	if n := len(s.markup); n > 0 && s.markup[n-1].mode == embedMode && s.markup[n-1].brackets == len(s.brackets) {
		s.markup = s.markup[:n-1]
		return s.addToken(token.RIGHT_BRACE, "")
	}

	n := len(s.brackets)
	if n == 0 || s.brackets[n-1].kind == parenBracket || s.brackets[n-1].kind == squareBracket {
		return s.addToken(token.RIGHT_BRACE, "")
	}

	b := s.brackets[n-1]
	s.brackets = s.brackets[:n-1]
	if b.kind == objectBrace {
		return s.addToken(token.RIGHT_BRACE, "")
	}

	// A line starting with '}' does not take part in indentation.
	s.indentPending = false
	pos := s.startPos()
	if s.lineHasTokens {
		s.emit(token.NEWLINE, pos)
	}
	for len(s.indents) > 1 {
		s.indents = s.indents[:len(s.indents)-1]
		s.emit(token.DEDENT, pos)
	}
	s.indents = b.indents
	return s.addToken(token.RIGHT_BRACE, "")
}

// significant reports whether newlines currently end logical lines.
func (s *Scanner) significant() bool {
	if n := len(s.brackets); n > 0 {
		b := s.brackets[n-1]
		return b.kind == blockBrace && b.markupDepth == len(s.markup)
	}
	return len(s.markup) == 0
}

func (s *Scanner) newline() {
	if !s.significant() {
		return
	}
	if s.lineHasTokens {
		s.emit(token.NEWLINE, s.startPos())
		s.lineHasTokens = false
	}
	s.beginLine()
}

// beginLine records the leading whitespace of a physical line. It is only
// turned into INDENT/DEDENT tokens once the line turns out to hold a token.
func (s *Scanner) beginLine() {
	from := s.current
	for s.peek() == ' ' || s.peek() == '\t' {
		s.advance()
	}
	s.leading = s.source[from:s.current]
	s.indentPending = true
}

func (s *Scanner) applyIndent() error {
	s.indentPending = false
	pos := s.startPos()
	lead := s.leading

	if strings.ContainsRune(lead, ' ') && strings.ContainsRune(lead, '\t') {
		return errors.NewSyntaxError("inconsistent use of tabs and spaces in indentation", pos)
	}
	width := len(lead)
	if width > 0 {
		if s.indentChar == 0 {
			s.indentChar = lead[0]
		} else if s.indentChar != lead[0] {
			return errors.NewSyntaxError("inconsistent use of tabs and spaces in indentation", pos)
		}
	}

	// first line of a block brace sets its base
	if len(s.indents) == 0 {
		s.indents = append(s.indents, width)
		return nil
	}

	top := s.indents[len(s.indents)-1]
	switch {
	case width > top:
		s.indents = append(s.indents, width)
		s.emit(token.INDENT, pos)
	case width < top:
		for len(s.indents) > 1 && width < s.indents[len(s.indents)-1] {
			s.indents = s.indents[:len(s.indents)-1]
			s.emit(token.DEDENT, pos)
		}
		if width != s.indents[len(s.indents)-1] {
			return errors.NewSyntaxError("unindent does not match any outer indentation level", pos)
		}
	}
	return nil
}

func (s *Scanner) finish() {
	pos := s.pos()
	if s.significant() && s.lineHasTokens {
		s.emit(token.NEWLINE, pos)
	}
	for len(s.indents) > 1 {
		s.indents = s.indents[:len(s.indents)-1]
		s.emit(token.DEDENT, pos)
	}
	s.emit(token.EOF, pos)
}

// Markup

func (s *Scanner) startsMarkup() bool {
	r, _ := utf8.DecodeRuneInString(s.source[s.current:])
	if !unicode.IsLetter(r) {
		return false
	}
	prev, ok := s.lastToken()
	return !ok || !endsValue(prev.Type)
}

func endsValue(t token.TokenType) bool {
	switch t {
	case token.IDENTIFIER, token.NUMBER, token.STRING, token.TEMPLATE,
		token.RIGHT_PAREN, token.RIGHT_BRACKET, token.RIGHT_BRACE,
		token.TRUE, token.FALSE, token.NULL:
		return true
	}
	return false
}

func (s *Scanner) scanTag() error {
	c := s.advance()
	top := len(s.markup) - 1

	switch {
	case c == ' ' || c == '\t' || c == '\r' || c == '\n':
		return nil
	case c == '/' && s.peek() == '>':
		s.advance()
		s.markup = s.markup[:top]
		return s.addToken(token.MARKUP_SELF_CLOSE, "")
	case c == '>':
		if s.markup[top].closing {
			s.markup = s.markup[:top]
		} else {
			s.markup[top] = markupFrame{mode: childrenMode}
		}
		return s.addToken(token.GREATER, "")
	case c == '=':
		return s.addToken(token.EQUAL, "")
	case c == '"' || c == '\'':
		return s.scanString(c)
	case c == '{':
		s.markup = append(s.markup, markupFrame{mode: embedMode, brackets: len(s.brackets)})
		return s.addToken(token.LEFT_BRACE, "")
	case isIdentStart(c):
		for isMarkupNameChar(s.peek()) {
			s.advance()
		}
		return s.addToken(token.IDENTIFIER, "")
	}
	return errors.NewInvalidCharacter(c, s.startPos())
}

func (s *Scanner) scanChildren() error {
	top := len(s.markup) - 1

	switch {
	case s.peek() == '<' && s.peekNext() == '/':
		s.advance()
		s.advance()
		s.markup[top] = markupFrame{mode: tagMode, closing: true}
		return s.addToken(token.MARKUP_CLOSE_OPEN, "")
	case s.peek() == '{':
		s.advance()
		s.markup = append(s.markup, markupFrame{mode: embedMode, brackets: len(s.brackets)})
		return s.addToken(token.LEFT_BRACE, "")
	case s.childBoundary():
		s.advance()
		s.markup = append(s.markup, markupFrame{mode: tagMode})
		return s.addToken(token.MARKUP_OPEN, "")
	}

	for !s.isAtEnd() && !s.childBoundary() && !(s.peek() == '<' && s.peekNext() == '/') {
		s.advance()
	}
	text := s.source[s.start:s.current]
	return s.addToken(token.MARKUP_TEXT, text)
}

// childBoundary reports whether a nested element or an embedded expression
// starts at the current position.
func (s *Scanner) childBoundary() bool {
	switch s.peek() {
	case '{':
		return true
	case '<':
		return unicode.IsLetter(s.peekNext())
	}
	return false
}

func isMarkupNameChar(r rune) bool {
	return isIdentPart(r) || r == '-' || r == '.' || r == ':'
}

// Literals

func (s *Scanner) scanString(quote rune) error {
	for {
		if s.isAtEnd() || s.peek() == '\n' {
			return errors.NewUnterminatedString(s.startPos())
		}
		c := s.advance()
		if c == quote {
			break
		}
		if c == '\\' {
			if s.isAtEnd() || s.peek() == '\n' {
				return errors.NewUnterminatedString(s.startPos())
			}
			s.advance()
		}
	}

	raw := s.source[s.start:s.current]
	value, ok := unescape(raw[1 : len(raw)-1])
	if !ok {
		return errors.NewInvalidString(raw, s.startPos())
	}
	return s.addToken(token.STRING, value)
}

func (s *Scanner) scanTemplate() error {
	n, ok := templateEnd(s.source[s.current:])
	if !ok {
		return errors.NewUnterminatedString(s.startPos())
	}
	for end := s.current + n; s.current < end; {
		s.advance()
	}
	raw := s.source[s.start:s.current]
	return s.addToken(token.TEMPLATE, raw[1:len(raw)-1])
}

func (s *Scanner) scanNumber() error {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
		if s.peek() == '.' && isDigit(s.peekNext()) {
			return s.invalidNumber()
		}
	}
	if s.peek() == 'e' || s.peek() == 'E' {
		s.advance()
		if s.peek() == '+' || s.peek() == '-' {
			s.advance()
		}
		if !isDigit(s.peek()) {
			return s.invalidNumber()
		}
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	if isIdentPart(s.peek()) {
		return s.invalidNumber()
	}
	return s.addToken(token.NUMBER, "")
}

// invalidNumber consumes the rest of the malformed literal for the message.
func (s *Scanner) invalidNumber() error {
	for isIdentPart(s.peek()) || (s.peek() == '.' && isDigit(s.peekNext())) {
		s.advance()
	}
	return errors.NewInvalidNumber(s.source[s.start:s.current], s.startPos())
}

func (s *Scanner) scanIdentifier() error {
	for isIdentPart(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	return s.addToken(token.LookupIdent(text), "")
}

// Comments

func (s *Scanner) skipLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *Scanner) skipBlockComment() error {
	s.advance() // *
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			return nil
		}
		s.advance()
	}
	return errors.NewUnexpectedEOF(s.startPos())
}

// Low level

func (s *Scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += size
	if r == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return r
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current:])
	return r
}

func (s *Scanner) peekNext() rune {
	if s.isAtEnd() {
		return 0
	}
	_, size := utf8.DecodeRuneInString(s.source[s.current:])
	if s.current+size >= len(s.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current+size:])
	return r
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) startPos() token.Position {
	return token.Position{Line: s.startLine, Column: s.startColumn, Offset: s.offsetBase + s.start}
}

func (s *Scanner) pos() token.Position {
	return token.Position{Line: s.line, Column: s.column, Offset: s.offsetBase + s.current}
}

func (s *Scanner) lastToken() (token.Token, bool) {
	if len(s.tokens) == 0 {
		return token.Token{}, false
	}
	return s.tokens[len(s.tokens)-1], true
}

func (s *Scanner) addToken(typ token.TokenType, value string) error {
	if s.indentPending {
		if err := s.applyIndent(); err != nil {
			return err
		}
	}
	s.tokens = append(s.tokens, token.Token{
		Type:     typ,
		Lexeme:   s.source[s.start:s.current],
		Value:    value,
		Position: s.startPos(),
	})
	s.lineHasTokens = true
	return nil
}

// emit appends a synthesized layout token.
func (s *Scanner) emit(typ token.TokenType, pos token.Position) {
	s.tokens = append(s.tokens, token.Token{Type: typ, Position: pos})
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
