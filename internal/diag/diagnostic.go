package diag

import (
	"minim/internal/source"
)

// Severity ranks a diagnostic. The semantic phase only ever emits
// SevError; warnings and infos are reserved for lexical trivia and
// driver-level notices.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

// String renders the severity the way golden output spells it.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Note attaches secondary context to a diagnostic, e.g. the site of a
// previous declaration.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one finding produced by a pipeline phase.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
