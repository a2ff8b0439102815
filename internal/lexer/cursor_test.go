package lexer

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ember/internal/source"
	"ember/internal/token"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.em", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	c := NewCursor(createFile("a\nb"))

	for _, want := range []rune{'a', '\n', 'b'} {
		require.False(t, c.EOF())
		r, next, ok := c.Step()
		require.True(t, ok)
		assert.Equal(t, want, r)
		c = next
	}

	assert.True(t, c.EOF())
	assert.Equal(t, byte(0), c.Peek())
	_, same, ok := c.Step()
	assert.False(t, ok)
	assert.Equal(t, c, same)
}

// Курсор передаётся по значению: старая копия не сдвигается.
func TestCursorIsValue(t *testing.T) {
	start := NewCursor(createFile("xy"))
	_, moved, _ := start.Step()

	assert.Equal(t, uint32(0), start.Off)
	assert.Equal(t, uint32(1), moved.Off)
	assert.Equal(t, "x", moved.Text(start))
}

func TestRuneMultibyte(t *testing.T) {
	c := NewCursor(createFile("λ\xff"))

	r, sz := c.Rune()
	assert.Equal(t, 'λ', r)
	assert.Equal(t, uint32(2), sz)

	_, c, _ = c.Step()
	r, sz = c.Rune()
	assert.Equal(t, utf8.RuneError, r)
	assert.Equal(t, uint32(1), sz)
}

func TestEatAndSkip(t *testing.T) {
	c := NewCursor(createFile("--123abc"))

	next, ok := c.Eat('+')
	assert.False(t, ok)
	assert.Equal(t, c, next)

	next, ok = c.EatAny('+', '-')
	require.True(t, ok)
	assert.Equal(t, uint32(1), next.Off)

	digits := next.Skip(func(r rune) bool { return r == '-' }).Skip(isDigit)
	assert.Equal(t, uint32(5), digits.Off)
	assert.Equal(t, "-123", digits.Text(next))
	assert.Equal(t, token.Meta{Start: 1, End: 4}, digits.Meta(next))
	assert.Equal(t, source.Span{File: c.File.ID, Start: 1, End: 5}, digits.Span(next))
}

func TestSkipStopsAtEOF(t *testing.T) {
	c := NewCursor(createFile("   "))
	end := c.Skip(isSpace)
	assert.True(t, end.EOF())
	assert.Equal(t, uint32(3), end.Off)
}
