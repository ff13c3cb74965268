package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"minim/internal/diag"
	"minim/internal/source"
)

// Pretty renders diagnostics for humans. Walks bag.Items() in order
// (callers sort first when order matters). Each entry prints
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~
//
// followed by its notes when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	path := formatPath(fs, d.Primary.File, opts.PathMode)

	label := fmt.Sprintf("%s %s", d.Severity.String(), d.Code.ID())
	c := severityColor(d.Severity)
	if opts.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, start.Line, start.Col, c.Sprint(label), d.Message)
	if !opts.NoContext {
		writeContext(w, fs, d.Primary, start)
	}

	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		noteStart, _ := fs.Resolve(note.Span)
		notePath := formatPath(fs, note.Span.File, opts.PathMode)
		fmt.Fprintf(w, "%s:%d:%d: note: %s\n", notePath, noteStart.Line, noteStart.Col, note.Msg)
		if !opts.NoContext {
			writeContext(w, fs, note.Span, noteStart)
		}
	}
}

// writeContext prints the offending source line with a caret underline.
// Multi-line spans are clamped to their first line.
func writeContext(w io.Writer, fs *source.FileSet, span source.Span, start source.LineCol) {
	file := fs.Get(span.File)
	if file == nil {
		return
	}
	raw := file.GetLine(start.Line)
	if raw == "" {
		return
	}
	// Tabs are expanded so the printed line and the caret agree on
	// columns; runewidth keeps the caret aligned under wide runes.
	line := strings.ReplaceAll(raw, "\t", "    ")
	fmt.Fprintf(w, "    %s\n", line)

	col := int(start.Col) - 1
	if col > len(raw) {
		col = len(raw)
	}
	pad := runewidth.StringWidth(strings.ReplaceAll(raw[:col], "\t", "    "))

	width := int(span.End - span.Start)
	if remain := len(raw) - col; width > remain {
		width = remain
	}
	if width < 1 {
		width = 1
	}
	fmt.Fprintf(w, "    %s^%s\n", strings.Repeat(" ", pad), strings.Repeat("~", width-1))
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func formatPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	return f.FormatPath(mode.formatMode(), "")
}
