package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ember/internal/token"
)

func cursorAt(src string) Cursor {
	return NewCursor(createFile(src))
}

func TestMissFurther(t *testing.T) {
	eof := miss{kind: missEOF, off: 3}
	early := miss{kind: missChar, off: 1}
	late := miss{kind: missChar, off: 2}

	assert.True(t, eof.further(late))
	assert.False(t, late.further(eof))
	assert.True(t, late.further(early))
	assert.False(t, early.further(early))
}

func TestFirstOfPrefersEarlierHit(t *testing.T) {
	m := firstOf(fixed(token.Dot), yield(token.Bar))

	lx, next, res := m(cursorAt("."))
	require.False(t, res.failed())
	assert.Equal(t, token.Dot, lx.kind)
	assert.Equal(t, uint32(1), next.Off)

	lx, next, res = m(cursorAt("x"))
	require.False(t, res.failed())
	assert.Equal(t, token.Bar, lx.kind)
	assert.Equal(t, uint32(0), next.Off)
}

func TestFirstOfKeepsFurthestMiss(t *testing.T) {
	m := firstOf(fixed(token.LParen), fixed(token.Arrow))

	_, next, res := m(cursorAt("-x"))
	assert.Equal(t, miss{kind: missChar, off: 1}, res)
	assert.Equal(t, uint32(0), next.Off, "a miss must not move the cursor")

	_, _, res = m(cursorAt("-"))
	assert.Equal(t, missEOF, res.kind)
}

func TestMatchersLeaveCursorOnMiss(t *testing.T) {
	ms := map[string]matcher{
		"junk":   matchJunk,
		"lower":  matchLowerIdent,
		"upper":  matchUpperIdent,
		"number": matchNumber,
		"string": matchString,
		"punct":  matchPunct,
		"angle":  matchAngle,
	}
	for name, m := range ms {
		t.Run(name, func(t *testing.T) {
			c := cursorAt("$")
			_, next, res := m(c)
			require.True(t, res.failed())
			assert.Equal(t, c, next)
			assert.Equal(t, miss{kind: missChar, off: 0}, res)
		})
	}
}

func TestMatchNumberPartial(t *testing.T) {
	tests := []struct {
		input string
		end   uint32
		want  float64
	}{
		{"12abc", 2, 12},
		{"1.5.2", 3, 1.5},
		{"7e", 0, 0}, // miss: input ends inside the exponent
		{"7e-x", 1, 7},
		{"-0", 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, next, res := matchNumber(cursorAt(tt.input))
			if tt.end == 0 {
				assert.Equal(t, missEOF, res.kind)
				return
			}
			require.False(t, res.failed())
			assert.Equal(t, tt.end, next.Off)
			assert.Equal(t, tt.want, lx.num)
		})
	}
}

func TestMatchCommentAtEOF(t *testing.T) {
	lx, next, res := matchComment(cursorAt("# tail"))
	require.False(t, res.failed())
	assert.True(t, lx.junk)
	assert.True(t, next.EOF())
}

func TestMatchStringRawBytes(t *testing.T) {
	lx, _, res := matchString(cursorAt("\"\xff\""))
	require.False(t, res.failed())
	assert.Equal(t, "\xff", lx.text)
}

func TestAngleTailNeverMisses(t *testing.T) {
	for _, src := range []string{"", "-", "=", "x"} {
		_, _, res := angleTail(cursorAt(src))
		assert.False(t, res.failed(), "input %q", src)
	}
}
