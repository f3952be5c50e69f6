package parser

import "nac/token"

// TokenStream is a read-only cursor over scanned tokens with lookahead and
// backtracking. Reading past the end yields EOF.
type TokenStream struct {
	tokens  []token.Token
	current int
}

func NewTokenStream(tokens []token.Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

func (ts *TokenStream) Peek() token.Token {
	return ts.PeekN(0)
}

// PeekN returns the token n positions ahead of the cursor.
func (ts *TokenStream) PeekN(n int) token.Token {
	if i := ts.current + n; i >= 0 && i < len(ts.tokens) {
		return ts.tokens[i]
	}
	return ts.eof()
}

func (ts *TokenStream) Previous() token.Token {
	if ts.current == 0 {
		return token.Token{Type: token.ILLEGAL}
	}
	return ts.tokens[ts.current-1]
}

func (ts *TokenStream) Advance() token.Token {
	tok := ts.Peek()
	if ts.current < len(ts.tokens) {
		ts.current++
	}
	return tok
}

// Checkpoint marks the cursor so a speculative parse can be undone.
func (ts *TokenStream) Checkpoint() int {
	return ts.current
}

func (ts *TokenStream) Reset(checkpoint int) {
	ts.current = checkpoint
}

func (ts *TokenStream) AtEnd() bool {
	return ts.Peek().Type == token.EOF
}

func (ts *TokenStream) eof() token.Token {
	if n := len(ts.tokens); n > 0 {
		last := ts.tokens[n-1]
		if last.Type == token.EOF {
			return last
		}
		return token.Token{Type: token.EOF, Position: last.EndPosition()}
	}
	return token.Token{Type: token.EOF, Position: token.Position{Line: 1, Column: 1}}
}
