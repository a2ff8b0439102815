package diagfmt

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"ember/internal/lexer"
	"ember/internal/source"
)

const tabWidth = 4

// expandTabs replaces tabs so that display width is stable.
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// snippetLine holds one rendered source line and the caret under it.
type snippetLine struct {
	num   uint32
	text  string
	caret string
}

// buildSnippet renders the line containing start with a caret run covering
// [start, end) clipped to that line. An empty range gets a single caret.
func buildSnippet(f *source.File, start, end uint32, width int) snippetLine {
	pos := f.Position(start)
	lineStart, lineEnd, ok := f.LineBounds(pos.Line)
	if !ok {
		return snippetLine{num: pos.Line}
	}
	end = min(max(end, start), lineEnd)
	start = min(start, lineEnd)

	prefix := expandTabs(string(f.Content[lineStart:start]))
	marked := expandTabs(string(f.Content[start:end]))
	text := expandTabs(string(f.Content[lineStart:lineEnd]))

	pad := runewidth.StringWidth(prefix)
	n := max(runewidth.StringWidth(marked), 1)
	if width > 0 {
		text = runewidth.Truncate(text, width, "…")
		if pad >= width {
			pad, n = max(width-1, 0), 1
		}
		n = min(n, max(width-pad, 1))
	}
	return snippetLine{
		num:   pos.Line,
		text:  text,
		caret: strings.Repeat(" ", pad) + "^" + strings.Repeat("~", n-1),
	}
}

// Snippet renders the source line around [start, end) with a caret marker.
func Snippet(f *source.File, start, end uint32) string {
	s := buildSnippet(f, start, end, 0)
	gutter := fmt.Sprintf("%d", s.num)
	blank := strings.Repeat(" ", len(gutter))
	return fmt.Sprintf("%s | %s\n%s | %s", gutter, s.text, blank, s.caret)
}

// Describe renders a tokenization failure as a user-facing message.
// Errors that are not *lexer.Error are returned as their Error text.
func Describe(f *source.File, err error) string {
	var le *lexer.Error
	if !errors.As(err, &le) {
		return err.Error()
	}
	if le.Kind == lexer.UnexpectedEndOfInput {
		return "Encountered unexpected end of file while tokenizing."
	}
	pos := f.Position(le.Offset)
	end := le.Offset + 1
	if int(le.Offset) < len(f.Content) {
		_, sz := utf8.DecodeRune(f.Content[le.Offset:])
		end = le.Offset + uint32(sz) // #nosec G115 -- rune size is at most 4
	}
	return fmt.Sprintf("Encountered tokenization error at line %d and column %d:\n\n%s",
		pos.Line, pos.Col, Snippet(f, le.Offset, end))
}
