package source

import "testing"

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.minim", []byte("int a;\nbool b;\n\nvoid main() {\n}\n"))

	cases := []struct {
		name  string
		span  Span
		line  uint32
		col   uint32
	}{
		{"start of file", Span{File: id, Start: 0, End: 3}, 1, 1},
		{"mid first line", Span{File: id, Start: 4, End: 5}, 1, 5},
		{"second line", Span{File: id, Start: 7, End: 11}, 2, 1},
		{"after blank line", Span{File: id, Start: 16, End: 20}, 4, 1},
	}

	for _, tc := range cases {
		start, _ := fs.Resolve(tc.span)
		if start.Line != tc.line || start.Col != tc.col {
			t.Errorf("%s: got %d:%d, want %d:%d", tc.name, start.Line, start.Col, tc.line, tc.col)
		}
	}
}

func TestResolveUnknownFile(t *testing.T) {
	// IO diagnostics carry a zero-value span; resolving one against an
	// empty set must not panic.
	fs := NewFileSet()
	start, end := fs.Resolve(Span{})
	if start != (LineCol{}) || end != (LineCol{}) {
		t.Errorf("got %v..%v, want zero positions", start, end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.minim", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Errorf("line 1 = %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Errorf("line 2 = %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Errorf("line 3 = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("line 4 = %q, want empty", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("line 0 = %q, want empty", got)
	}
}

func TestLoadNormalization(t *testing.T) {
	fs := NewFileSet()

	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("int a;\r\nint b;\r\n")...)
	normalized, hadBOM := removeBOM(content)
	if !hadBOM {
		t.Fatalf("BOM not detected")
	}
	normalized, hadCRLF := normalizeCRLF(normalized)
	if !hadCRLF {
		t.Fatalf("CRLF not detected")
	}

	id := fs.Add("win.minim", normalized, FileHadBOM|FileNormalizedCRLF)
	f := fs.Get(id)
	if string(f.Content) != "int a;\nint b;\n" {
		t.Fatalf("normalized content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags not recorded: %b", f.Flags)
	}
}

func TestGetByPathReturnsLatest(t *testing.T) {
	fs := NewFileSet()
	fs.Add("a.minim", []byte("int a;"), 0)
	second := fs.Add("a.minim", []byte("int b;"), 0)

	f, ok := fs.GetByPath("a.minim")
	if !ok {
		t.Fatalf("path not found")
	}
	if f.ID != second {
		t.Fatalf("GetByPath returned stale file %d, want %d", f.ID, second)
	}
}
