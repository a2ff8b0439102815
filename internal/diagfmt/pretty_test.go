package diagfmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ember/internal/diag"
	"ember/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("name: \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.em", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LexUnexpectedEOF,
		source.Span{File: fileID, Start: 6, End: 27},
		"unexpected end of input",
	))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.em"},
		{"Relative path", PathModeRelative, "src/test.em"},
		{"Basename only", PathModeBasename, "test.em:1:7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			assert.Contains(t, output, tt.contains)
			assert.Contains(t, output, "ERROR")
			assert.Contains(t, output, "LEX1001")
			assert.Contains(t, output, "unexpected end of input")
		})
	}
}

// TestPathModeAuto проверяет авто-режим выбора пути
func TestPathModeAuto(t *testing.T) {
	fs := source.NewFileSet()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Short path - as is", "test.em", "test.em"},
		{"Long absolute path - basename", "/very/long/absolute/path/to/some/nested/directory/file.em", "file.em:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileID := fs.AddVirtual(tt.path, []byte("x = 42\n"))

			bag := diag.NewBag(10)
			bag.Add(diag.New(diag.SevWarning, diag.LexUnexpectedChar,
				source.Span{File: fileID, Start: 2, End: 3}, "Test warning"))

			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto})
			assert.Contains(t, buf.String(), tt.expected)
			assert.NotContains(t, buf.String(), "/very/long")
		})
	}
}

func TestPrettyCaretAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.em", []byte("first\nλ \"open\n"))

	d := diag.NewError(diag.LexUnexpectedEOF, source.Span{File: fileID, Start: 14, End: 14}, "unexpected end of input")
	d = d.WithNote(source.Span{File: fileID, Start: 9, End: 14}, "lexeme started here")
	bag := diag.NewBag(4)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename, ShowNotes: true})
	out := buf.String()

	assert.Contains(t, out, "1 | first\n")
	assert.Contains(t, out, "note: test.em:2:4: lexeme started here")
}

func TestPrettyCaretWidth(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("w.em", []byte("界 $$ x"))

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.LexUnexpectedChar, source.Span{File: fileID, Start: 4, End: 6}, "bad"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	// "界" занимает две колонки, поэтому каретка сдвинута на три
	assert.Contains(t, buf.String(), "  |    ^~\n")
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("c.em", []byte("$"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.LexUnexpectedChar, source.Span{File: fileID, Start: 0, End: 1}, "bad"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})

	require.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
}
