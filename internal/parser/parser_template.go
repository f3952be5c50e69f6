package parser

import (
	"strings"

	"nac/internal/ast"
	"nac/internal/errors"
	"nac/token"
)

// parseTemplate splits a TEMPLATE token into its text segments and parses
// each embedded {expr} with a scanner positioned at the segment.
func (p *Parser) parseTemplate(tok token.Token) (ast.Expr, error) {
	body := tok.Value
	base := token.Position{
		Line:   tok.Position.Line,
		Column: tok.Position.Column + 1,
		Offset: tok.Position.Offset + 1,
	}
	tmpl := &ast.TemplateLiteral{Pos: tok.Position, EndPos: templateEndPos(tok)}

	var quasi strings.Builder
	for i := 0; i < len(body); {
		switch body[i] {
		case '\\':
			text, n, ok := readEscape(body[i+1:])
			if !ok {
				return nil, errors.NewInvalidString(tok.Lexeme, tok.Position)
			}
			quasi.WriteString(text)
			i += 1 + n
		case '{':
			end, ok := braceEnd(body[i+1:])
			if !ok {
				return nil, errors.NewUnterminatedString(tok.Position)
			}
			segment := body[i+1 : i+1+end]
			expr, err := parseSegment(segment, advancePosition(base, body[:i+1]))
			if err != nil {
				return nil, err
			}
			tmpl.Quasis = append(tmpl.Quasis, quasi.String())
			tmpl.Exprs = append(tmpl.Exprs, expr)
			quasi.Reset()
			i += end + 2
		default:
			quasi.WriteByte(body[i])
			i++
		}
	}
	tmpl.Quasis = append(tmpl.Quasis, quasi.String())
	return tmpl, nil
}

func parseSegment(src string, pos token.Position) (ast.Expr, error) {
	tokens, err := newSegmentScanner(src, pos).ScanTokens()
	if err != nil {
		return nil, err
	}
	sub := NewParser(tokens)
	if sub.isAtEnd() {
		return nil, errors.NewSyntaxError("empty expression in template literal", pos)
	}
	expr, err := sub.parseExpression()
	if err != nil {
		return nil, err
	}
	if !sub.isAtEnd() {
		return nil, sub.unexpected()
	}
	return expr, nil
}

// advancePosition returns the position reached after text starting at pos.
func advancePosition(pos token.Position, text string) token.Position {
	for _, r := range text {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	pos.Offset += len(text)
	return pos
}

func templateEndPos(tok token.Token) token.Position {
	return advancePosition(tok.Position, tok.Lexeme)
}
