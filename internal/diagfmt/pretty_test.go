package diagfmt

import (
	"strings"
	"testing"

	"minim/internal/diag"
	"minim/internal/source"
)

func testBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("main.minim", []byte("int a;\nvoid a() {\n}\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SemaDuplicateName,
		Message:  "Identifier multiply-declared",
		Primary:  source.Span{File: fileID, Start: 12, End: 13}, // 'a' on line 2
		Notes: []diag.Note{
			{Span: source.Span{File: fileID, Start: 4, End: 5}, Msg: "previous declaration here"},
		},
	})
	return bag, fs
}

func TestPrettyPlain(t *testing.T) {
	bag, fs := testBag(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true})
	out := sb.String()

	for _, want := range []string{
		"main.minim:2:6: ERROR SEM3002: Identifier multiply-declared",
		"void a() {",
		"note: previous declaration here",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain output contains ANSI escapes")
	}
}

func TestPrettyCaretAlignment(t *testing.T) {
	bag, fs := testBag(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	out := sb.String()

	// Column 6 on "void a() {" puts the caret under the 'a'.
	if !strings.Contains(out, "    void a() {\n         ^\n") {
		t.Errorf("caret misaligned:\n%s", out)
	}
}

func TestPrettyColor(t *testing.T) {
	bag, fs := testBag(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Color: true, PathMode: PathModeBasename})
	if !strings.Contains(sb.String(), "\x1b[") {
		t.Error("colored output has no ANSI escapes")
	}
}

func TestPrettyNoContext(t *testing.T) {
	bag, fs := testBag(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{PathMode: PathModeBasename, NoContext: true})
	if strings.Contains(sb.String(), "void a() {") {
		t.Error("NoContext output still prints source lines")
	}
}
