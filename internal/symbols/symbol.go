package symbols

import (
	"minim/internal/ast"
	"minim/internal/source"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVar
	SymbolFunc
	SymbolStructDef
	SymbolStructInstance
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVar:
		return "var"
	case SymbolFunc:
		return "func"
	case SymbolStructDef:
		return "struct"
	case SymbolStructInstance:
		return "instance"
	default:
		return "invalid"
	}
}

// TypeRef names a declared type: a primitive kind, or a struct type
// referenced by name.
type TypeRef struct {
	Kind ast.TypeKind
	Name source.StringID // struct type name when Kind is TypeStruct
}

// Signature records a function's parameter types in declaration order plus
// its return type. Downstream type checking consumes it; name analysis only
// builds it.
type Signature struct {
	Params []TypeRef
	Result TypeRef
}

// Symbol describes a named entity visible in a scope. Kind decides which of
// the optional fields carry meaning.
type Symbol struct {
	Name  source.StringID
	Kind  SymbolKind
	Scope ScopeID
	Span  source.Span // declaration site

	Type       TypeRef         // SymbolVar
	Signature  *Signature      // SymbolFunc
	Fields     ScopeID         // SymbolStructDef: detached field scope
	StructName source.StringID // SymbolStructInstance: declared type, resolved by name at use sites
}
