// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: a Severity, a stable numeric Code, a
// short message, the primary source.Span, and optional Notes pointing at
// related locations (e.g. "previous declaration here").
//
// Phases emit through the Reporter interface so producers stay decoupled
// from storage and formatting. BagReporter aggregates into a Bag, which
// supports sorting, deduplication, and limit enforcement. Rendering lives
// in internal/diagfmt; this package performs no IO.
//
// Semantic diagnostics are never fatal: name analysis records them and
// keeps walking. Syntax errors are different — the parser reports one and
// returns an error, because no trustworthy tree exists past that point.
package diag
