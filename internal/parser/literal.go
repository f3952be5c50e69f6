package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// unescape decodes the body of a quoted string literal.
func unescape(body string) (string, bool) {
	if !strings.ContainsRune(body, '\\') {
		return body, true
	}
	var b strings.Builder
	for i := 0; i < len(body); {
		if body[i] != '\\' {
			b.WriteByte(body[i])
			i++
			continue
		}
		text, n, ok := readEscape(body[i+1:])
		if !ok {
			return "", false
		}
		b.WriteString(text)
		i += 1 + n
	}
	return b.String(), true
}

// readEscape decodes the escape sequence following a backslash and returns
// the decoded text and the number of bytes consumed after the backslash.
// Unknown escapes stand for the escaped character itself.
func readEscape(rest string) (string, int, bool) {
	if rest == "" {
		return `\`, 0, true
	}
	r, size := utf8.DecodeRuneInString(rest)
	switch r {
	case 'n':
		return "\n", 1, true
	case 't':
		return "\t", 1, true
	case 'r':
		return "\r", 1, true
	case '0':
		return "\x00", 1, true
	case 'u':
		return readUnicodeEscape(rest)
	}
	return rest[:size], size, true
}

// readUnicodeEscape handles \uXXXX and \u{X...}; rest starts at the 'u'.
func readUnicodeEscape(rest string) (string, int, bool) {
	var digits string
	var n int
	if strings.HasPrefix(rest, "u{") {
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return "", 0, false
		}
		digits = rest[2:end]
		n = end + 1
		if len(digits) == 0 || len(digits) > 6 {
			return "", 0, false
		}
	} else {
		if len(rest) < 5 {
			return "", 0, false
		}
		digits = rest[1:5]
		n = 5
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || v > utf8.MaxRune {
		return "", 0, false
	}
	return string(rune(v)), n, true
}

// templateEnd returns the number of bytes up to and including the closing
// backtick of a template body. Embedded {expr} segments may contain braces,
// strings and nested templates.
func templateEnd(src string) (int, bool) {
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '`':
			return i + 1, true
		case '{':
			n, ok := braceEnd(src[i+1:])
			if !ok {
				return 0, false
			}
			i += 1 + n
		}
	}
	return 0, false
}

// braceEnd returns the index of the '}' that closes an embedded segment.
func braceEnd(src string) (int, bool) {
	depth := 0
	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return i, true
			}
			depth--
		case '"', '\'':
			for i++; i < len(src) && src[i] != c; i++ {
				if src[i] == '\\' {
					i++
				}
			}
			if i >= len(src) {
				return 0, false
			}
		case '`':
			n, ok := templateEnd(src[i+1:])
			if !ok {
				return 0, false
			}
			i += n
		}
	}
	return 0, false
}
