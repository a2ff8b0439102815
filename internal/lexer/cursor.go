package lexer

import (
	"fmt"
	"unicode/utf8"

	"ember/internal/source"
	"ember/internal/token"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в файле.
// Cursor is a value: every movement returns a new Cursor, so remembering a
// position for backtracking is a plain copy.
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off.
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Limit: limit}
}

// EOF проверяет, достигнут ли конец файла
func (c Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Rune decodes the character under the cursor.
// size is 0 at EOF; an invalid UTF-8 byte decodes as utf8.RuneError of size 1.
func (c Cursor) Rune() (r rune, size uint32) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	b := c.File.Content[c.Off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	r, n := utf8.DecodeRune(c.File.Content[c.Off:c.Limit])
	sz, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	return r, sz
}

// Step consumes one character. ok is false at EOF, and the cursor is unchanged.
func (c Cursor) Step() (r rune, next Cursor, ok bool) {
	r, sz := c.Rune()
	if sz == 0 {
		return r, c, false
	}
	c.Off += sz
	return r, c, true
}

// Eat consumes b if it is the current byte.
func (c Cursor) Eat(b byte) (Cursor, bool) {
	if c.EOF() || c.File.Content[c.Off] != b {
		return c, false
	}
	c.Off++
	return c, true
}

// EatAny consumes the current byte if it is one of bs.
func (c Cursor) EatAny(bs ...byte) (Cursor, bool) {
	for _, b := range bs {
		if next, ok := c.Eat(b); ok {
			return next, true
		}
	}
	return c, false
}

// Skip consumes characters while pred holds.
func (c Cursor) Skip(pred func(rune) bool) Cursor {
	for {
		r, next, ok := c.Step()
		if !ok || !pred(r) {
			return c
		}
		c = next
	}
}

// Since returns the raw bytes between from and c.
func (c Cursor) Since(from Cursor) []byte {
	return c.File.Content[from.Off:c.Off]
}

// Text returns an owned copy of the bytes between from and c.
func (c Cursor) Text(from Cursor) string {
	return string(c.Since(from))
}

// Meta returns the inclusive range of a non-empty lexeme that began at from.
func (c Cursor) Meta(from Cursor) token.Meta {
	return token.Meta{Start: from.Off, End: c.Off - 1}
}

// Span returns the half-open range between from and c.
func (c Cursor) Span(from Cursor) source.Span {
	return source.Span{File: c.File.ID, Start: from.Off, End: c.Off}
}
