package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"sysdl/internal/source"
)

func TestResolveLineCol(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sysdl", []byte("ab\ncd\nef"))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1},
		{7, 3, 2},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(source.Span{File: id, Start: tt.off, End: tt.off})
		if start.Line != tt.line || start.Col != tt.col {
			t.Errorf("offset %d: got %d:%d, want %d:%d", tt.off, start.Line, start.Col, tt.line, tt.col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sysdl", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Errorf("line 1: got %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Errorf("line 2: got %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Errorf("line 3: got %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("line 4: got %q, want empty", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("line 0: got %q, want empty", got)
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.sysdl")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("package P;\r\npart E;\r\n")...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if f.Flags&source.FileHadBOM == 0 {
		t.Error("BOM flag not set")
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("CRLF flag not set")
	}
	if string(f.Content) != "package P;\npart E;\n" {
		t.Errorf("normalized content: got %q", f.Content)
	}
}

func TestVirtualFileFlag(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("stdin", []byte("part E;"))
	if fs.Get(id).Flags&source.FileVirtual == 0 {
		t.Error("virtual flag not set")
	}
}

func TestGetByPath(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("a/b.sysdl", []byte("x"))
	if _, ok := fs.GetByPath("a/b.sysdl"); !ok {
		t.Error("GetByPath failed for known path")
	}
	if _, ok := fs.GetByPath("a/missing.sysdl"); ok {
		t.Error("GetByPath matched unknown path")
	}
}

func TestGetOutOfRangeReturnsNil(t *testing.T) {
	fs := source.NewFileSet()
	if fs.Get(0) != nil {
		t.Error("empty set must resolve no IDs")
	}
	id := fs.AddVirtual("a.sysdl", []byte("x"))
	if fs.Get(id) == nil {
		t.Error("known ID must resolve")
	}
	if fs.Get(id+1) != nil {
		t.Error("out-of-range ID must return nil")
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 0, Start: 5, End: 10}
	b := source.Span{File: 0, Start: 2, End: 7}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 10 {
		t.Errorf("cover: got %v", got)
	}
	other := source.Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file cover must be a no-op, got %v", got)
	}
}
