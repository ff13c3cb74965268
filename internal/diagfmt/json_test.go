package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"minim/internal/diag"
)

func TestJSONOutput(t *testing.T) {
	bag, fs := testBag(t)
	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d, want 1 and 1", out.Count, len(out.Diagnostics))
	}

	d := out.Diagnostics[0]
	if d.Code != "SEM3002" || d.Severity != "ERROR" {
		t.Errorf("code %q severity %q", d.Code, d.Severity)
	}
	if d.Location.File != "main.minim" || d.Location.StartLine != 2 || d.Location.StartCol != 6 {
		t.Errorf("location %+v", d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Location.StartLine != 1 {
		t.Errorf("notes %+v", d.Notes)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	bag, fs := testBag(t)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SemaUndeclaredIdentifier,
		Message:  "Identifier undeclared",
	})

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("truncated output: count = %d, len = %d", out.Count, len(out.Diagnostics))
	}
	if bag.Len() != 2 {
		t.Fatalf("bag mutated: len = %d", bag.Len())
	}
}
