package ast

import (
	"minim/internal/source"
)

// TypeKind enumerates the type specifiers of the language.
type TypeKind uint8

const (
	TypeInvalid TypeKind = iota
	TypeInt
	TypeBool
	TypeVoid
	// TypeStruct is a named struct type, e.g. "struct Point".
	TypeStruct
)

func (k TypeKind) String() string {
	switch k {
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeVoid:
		return "void"
	case TypeStruct:
		return "struct"
	default:
		return "invalid"
	}
}

// Type is a type specifier node. Name and NameSpan are set only for
// TypeStruct.
type Type struct {
	Kind     TypeKind
	Span     source.Span
	Name     source.StringID
	NameSpan source.Span
}

// Types manages allocation of type specifier nodes.
type Types struct {
	Arena *Arena[Type]
}

func NewTypes(capHint uint) *Types {
	return &Types{
		Arena: NewArena[Type](capHint),
	}
}

// New allocates a primitive type specifier.
func (t *Types) New(kind TypeKind, span source.Span) TypeID {
	return TypeID(t.Arena.Allocate(Type{Kind: kind, Span: span}))
}

// NewStruct allocates a struct type specifier with its type name.
func (t *Types) NewStruct(span source.Span, name source.StringID, nameSpan source.Span) TypeID {
	return TypeID(t.Arena.Allocate(Type{
		Kind:     TypeStruct,
		Span:     span,
		Name:     name,
		NameSpan: nameSpan,
	}))
}

func (t *Types) Get(id TypeID) *Type {
	return t.Arena.Get(uint32(id))
}
