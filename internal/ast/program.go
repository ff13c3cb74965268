package ast

import (
	"minim/internal/source"
)

// Program is the root of one compilation unit: an ordered list of
// top-level declarations.
type Program struct {
	Span  source.Span
	Decls []DeclID
}

// Programs manages allocation of program roots. One parse produces one
// program, but arena storage keeps the ownership model uniform.
type Programs struct {
	Arena *Arena[Program]
}

func NewPrograms(capHint uint) *Programs {
	if capHint == 0 {
		capHint = 1
	}
	return &Programs{
		Arena: NewArena[Program](capHint),
	}
}

func (p *Programs) New(span source.Span, decls []DeclID) ProgramID {
	return ProgramID(p.Arena.Allocate(Program{Span: span, Decls: decls}))
}

func (p *Programs) Get(id ProgramID) *Program {
	return p.Arena.Get(uint32(id))
}
