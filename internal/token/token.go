package token

import (
	"minim/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is an integer, string, or boolean
// literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsType reports whether the token can start a type specifier.
func (t Token) IsType() bool {
	switch t.Kind {
	case KwInt, KwBool, KwVoid, KwStruct:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwInt, KwBool, KwVoid, KwStruct, KwIf, KwElse, KwWhile, KwReturn,
		KwInput, KwDisp, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
