package diag

import (
	"fmt"
	"strings"

	"minim/internal/source"
)

// FormatGolden renders diagnostics into a stable single-line-per-entry
// form suitable for golden comparisons and CLI short output:
//
//	ERROR SEM3002 main.minim:3:5 Identifier multiply-declared
//
// The bag should be sorted first when a deterministic order matters.
func FormatGolden(b *Bag, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || b.Len() == 0 {
		return ""
	}

	var sb strings.Builder
	for i, d := range b.Items() {
		writeGoldenLine(&sb, d.Severity.String(), d.Code, d.Primary, d.Message, fs)
		if includeNotes {
			for _, n := range d.Notes {
				sb.WriteByte('\n')
				writeGoldenLine(&sb, "NOTE", d.Code, n.Span, n.Msg, fs)
			}
		}
		if i < b.Len()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func writeGoldenLine(sb *strings.Builder, label string, code Code, span source.Span, msg string, fs *source.FileSet) {
	f := fs.Get(span.File)
	path := "<unknown>"
	if f != nil {
		path = f.FormatPath("basename", "")
	}
	start, _ := fs.Resolve(span)
	fmt.Fprintf(sb, "%s %s %s:%d:%d %s", label, code.ID(), path, start.Line, start.Col, msg)
}
