// Package fuzztests houses fuzz harnesses for the minim front end
// (source -> lexer -> parser -> name resolution). The goal is to guard
// against panics and runaway allocation on arbitrary inputs, not to
// check diagnostics.
package fuzztests
