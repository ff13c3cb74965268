package ast

import (
	"minim/internal/source"
)

// DeclKind tags declaration nodes.
type DeclKind uint8

const (
	DeclInvalid DeclKind = iota
	// DeclVar covers both primitive variables and struct instances; the
	// distinction is carried by the type specifier.
	DeclVar
	DeclFn
	DeclFormal
	DeclStruct
)

// Decl is the header of a declaration node.
type Decl struct {
	Kind    DeclKind
	Span    source.Span
	Payload PayloadID
}

// VarDeclData declares one variable: a type specifier and a name.
type VarDeclData struct {
	Type     TypeID
	Name     source.StringID
	NameSpan source.Span
}

// FnDeclData declares a function. The body keeps declarations and
// statements as separate ordered lists, mirroring the grammar.
type FnDeclData struct {
	ReturnType TypeID
	Name       source.StringID
	NameSpan   source.Span
	Formals    []DeclID
	BodyDecls  []DeclID
	BodyStmts  []StmtID
}

// FormalDeclData declares one function parameter.
type FormalDeclData struct {
	Type     TypeID
	Name     source.StringID
	NameSpan source.Span
}

// StructDeclData declares a struct type and its field list.
type StructDeclData struct {
	Name     source.StringID
	NameSpan source.Span
	Fields   []DeclID
}

// Decls manages allocation of declarations.
type Decls struct {
	Arena   *Arena[Decl]
	Vars    *Arena[VarDeclData]
	Fns     *Arena[FnDeclData]
	Formals *Arena[FormalDeclData]
	Structs *Arena[StructDeclData]
}

func NewDecls(capHint uint) *Decls {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Decls{
		Arena:   NewArena[Decl](capHint),
		Vars:    NewArena[VarDeclData](capHint),
		Fns:     NewArena[FnDeclData](capHint / 4),
		Formals: NewArena[FormalDeclData](capHint / 2),
		Structs: NewArena[StructDeclData](capHint / 4),
	}
}

func (d *Decls) new(kind DeclKind, span source.Span, payload PayloadID) DeclID {
	return DeclID(d.Arena.Allocate(Decl{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the declaration header for the given ID.
func (d *Decls) Get(id DeclID) *Decl {
	return d.Arena.Get(uint32(id))
}

// NewVar creates a variable declaration.
func (d *Decls) NewVar(span source.Span, data VarDeclData) DeclID {
	payload := d.Vars.Allocate(data)
	return d.new(DeclVar, span, PayloadID(payload))
}

func (d *Decls) Var(id DeclID) (*VarDeclData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclVar {
		return nil, false
	}
	return d.Vars.Get(uint32(decl.Payload)), true
}

// NewFn creates a function declaration.
func (d *Decls) NewFn(span source.Span, data FnDeclData) DeclID {
	payload := d.Fns.Allocate(data)
	return d.new(DeclFn, span, PayloadID(payload))
}

func (d *Decls) Fn(id DeclID) (*FnDeclData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclFn {
		return nil, false
	}
	return d.Fns.Get(uint32(decl.Payload)), true
}

// NewFormal creates a formal parameter declaration.
func (d *Decls) NewFormal(span source.Span, data FormalDeclData) DeclID {
	payload := d.Formals.Allocate(data)
	return d.new(DeclFormal, span, PayloadID(payload))
}

func (d *Decls) Formal(id DeclID) (*FormalDeclData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclFormal {
		return nil, false
	}
	return d.Formals.Get(uint32(decl.Payload)), true
}

// NewStruct creates a struct type declaration.
func (d *Decls) NewStruct(span source.Span, data StructDeclData) DeclID {
	payload := d.Structs.Allocate(data)
	return d.new(DeclStruct, span, PayloadID(payload))
}

func (d *Decls) Struct(id DeclID) (*StructDeclData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclStruct {
		return nil, false
	}
	return d.Structs.Get(uint32(decl.Payload)), true
}
