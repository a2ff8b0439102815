package lexer

import "ember/internal/token"

// missKind says why a matcher produced nothing.
type missKind uint8

const (
	hit      missKind = iota
	missChar          // the character at off cannot start or continue the lexeme
	missEOF           // input ended before the lexeme was complete
)

// miss is the failure half of a matcher result; the zero value is a hit.
type miss struct {
	kind missKind
	off  uint32
}

func (m miss) failed() bool {
	return m.kind != hit
}

// further reports whether m reached deeper into the input than o.
// Running out of input is as far as a matcher can get.
func (m miss) further(o miss) bool {
	if m.kind != o.kind {
		return m.kind == missEOF
	}
	return m.off > o.off
}

func charMiss(c Cursor) miss {
	return miss{kind: missChar, off: c.Off}
}

func eofMiss(c Cursor) miss {
	return miss{kind: missEOF, off: c.Limit}
}

// missAt is the miss for a cursor whose current character was rejected.
func missAt(c Cursor) miss {
	if c.EOF() {
		return eofMiss(c)
	}
	return charMiss(c)
}

// lexeme is what a matcher recognised. junk lexemes are dropped by the driver.
type lexeme struct {
	kind token.Kind
	junk bool
	text string
	flag bool
	num  float64
}

func (lx lexeme) token(meta token.Meta) token.Token {
	return token.Token{Kind: lx.kind, Meta: meta, Text: lx.text, Bool: lx.flag, Num: lx.num}
}

// matcher recognises one lexeme at c. On a miss the returned cursor is c.
type matcher func(c Cursor) (lexeme, Cursor, miss)

// firstOf tries ms in order from the same position and returns the first hit.
// When every alternative misses, the miss that got furthest is kept; ties go
// to the earlier alternative.
func firstOf(ms ...matcher) matcher {
	return func(c Cursor) (lexeme, Cursor, miss) {
		var best miss
		for i, m := range ms {
			lx, next, res := m(c)
			if !res.failed() {
				return lx, next, res
			}
			if i == 0 || res.further(best) {
				best = res
			}
		}
		return lexeme{}, c, best
	}
}

// expect consumes one character satisfying pred.
func expect(c Cursor, pred func(rune) bool) (Cursor, miss) {
	r, next, ok := c.Step()
	if !ok || !pred(r) {
		return c, missAt(c)
	}
	return next, miss{}
}

// expectByte consumes exactly b.
func expectByte(c Cursor, b byte) (Cursor, miss) {
	next, ok := c.Eat(b)
	if !ok {
		return c, missAt(c)
	}
	return next, miss{}
}

// fixed matches the exact lexeme of a punctuation kind.
func fixed(kind token.Kind) matcher {
	text, ok := token.Fixed(kind)
	if !ok {
		panic("lexer: fixed matcher for variable kind " + kind.String())
	}
	return func(c Cursor) (lexeme, Cursor, miss) {
		cur := c
		for i := 0; i < len(text); i++ {
			next, m := expectByte(cur, text[i])
			if m.failed() {
				return lexeme{}, c, m
			}
			cur = next
		}
		return lexeme{kind: kind}, cur, miss{}
	}
}

// yield matches the empty string and produces kind.
func yield(kind token.Kind) matcher {
	return func(c Cursor) (lexeme, Cursor, miss) {
		return lexeme{kind: kind}, c, miss{}
	}
}
