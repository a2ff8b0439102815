package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.em", []byte("hello world"), 0)
	id2 := fs.Add("test.em", []byte("hello universe"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("expected sequential ids 0,1; got %d,%d", id1, id2)
	}

	latest, ok := fs.GetLatest("test.em")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d,%v; want %d,true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("old version content = %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
	if fs.Get(42) != nil {
		t.Errorf("expected nil for unknown id")
	}
}

// TestAddVirtualLineIdx проверяет правильность построения LineIdx
func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("v.em", []byte("ab\ncd\n\nx"))
	f := fs.Get(id)

	want := []uint32{2, 5, 6}
	if len(f.LineIdx) != len(want) {
		t.Fatalf("LineIdx = %v, want %v", f.LineIdx, want)
	}
	for i := range want {
		if f.LineIdx[i] != want[i] {
			t.Fatalf("LineIdx = %v, want %v", f.LineIdx, want)
		}
	}
	if f.Flags&FileVirtual == 0 {
		t.Errorf("expected FileVirtual flag")
	}
}

func TestPosition(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("p.em", []byte("ab\ncd\n\nx")))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the '\n' belongs to the line it ends
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{8, LineCol{4, 2}}, // end of input
	}
	for _, tt := range tests {
		if got := f.Position(tt.off); got != tt.want {
			t.Errorf("Position(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.em", []byte("first\nsecond"))
	start, end := fs.Resolve(Span{File: id, Start: 6, End: 12})
	if start != (LineCol{2, 1}) || end != (LineCol{2, 7}) {
		t.Fatalf("Resolve = %+v..%+v", start, end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("l.em", []byte("one\ntwo\n")))

	cases := map[uint32]string{0: "", 1: "one", 2: "two", 3: "", 4: ""}
	for line, want := range cases {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
	if _, _, ok := f.LineBounds(4); ok {
		t.Errorf("LineBounds(4) should not exist")
	}
}

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.em")
	raw := []byte("\xEF\xBB\xBFa\r\nb\rc")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\rc" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags = %b", f.Flags)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.em")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
