package lexer

import (
	"strings"

	"ember/internal/token"
)

// escapeValue maps the character after '\' to the one it stands for.
func escapeValue(b byte) (byte, bool) {
	switch b {
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '\\':
		return '\\', true
	case '0':
		return 0, true
	case '"':
		return '"', true
	}
	return 0, false
}

// matchString matches a double-quoted string and decodes its escapes.
// Newlines may appear inside. A backslash before an unknown character is
// kept as is.
func matchString(c Cursor) (lexeme, Cursor, miss) {
	cur, m := expectByte(c, '"')
	if m.failed() {
		return lexeme{}, c, m
	}

	var sb strings.Builder
	for {
		r, next, ok := cur.Step()
		if !ok {
			return lexeme{}, c, eofMiss(cur)
		}
		switch r {
		case '"':
			return lexeme{kind: token.StringLit, text: sb.String()}, next, miss{}
		case '\\':
			if next.EOF() {
				return lexeme{}, c, eofMiss(next)
			}
			if v, known := escapeValue(next.Peek()); known {
				sb.WriteByte(v)
				cur = next
				cur.Off++
				continue
			}
		}
		// raw bytes so that invalid UTF-8 survives untouched
		sb.Write(next.Since(cur))
		cur = next
	}
}

// Unescape decodes the body of a string literal the way matchString does.
func Unescape(body string) string {
	if !strings.Contains(body, `\`) {
		return body
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			if v, ok := escapeValue(body[i+1]); ok {
				sb.WriteByte(v)
				i++
				continue
			}
		}
		sb.WriteByte(body[i])
	}
	return sb.String()
}
