package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal.
	IntLit
	// StringLit represents a string literal.
	StringLit

	// KwInt represents the 'int' keyword.
	KwInt // int
	// KwBool represents the 'bool' keyword.
	KwBool // bool
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwInput represents the 'input' keyword.
	KwInput // input
	// KwDisp represents the 'disp' keyword.
	KwDisp // disp
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false

	// LParen '('
	LParen
	// RParen ')'
	RParen
	// LBrace '{'
	LBrace
	// RBrace '}'
	RBrace
	// Semicolon ';'
	Semicolon
	// Comma ','
	Comma
	// Dot '.'
	Dot

	// Assign '='
	Assign
	// PlusPlus '++'
	PlusPlus
	// MinusMinus '--'
	MinusMinus
	// Shl '<<' (write statement)
	Shl
	// Shr '>>' (read statement)
	Shr

	// Plus '+'
	Plus
	// Minus '-'
	Minus
	// Star '*'
	Star
	// Slash '/'
	Slash
	// Bang '!'
	Bang
	// AndAnd '&&'
	AndAnd
	// OrOr '||'
	OrOr
	// EqEq '=='
	EqEq
	// BangEq '!='
	BangEq
	// Lt '<'
	Lt
	// Gt '>'
	Gt
	// LtEq '<='
	LtEq
	// GtEq '>='
	GtEq
)

var kindNames = map[Kind]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	IntLit:     "IntLit",
	StringLit:  "StringLit",
	KwInt:      "int",
	KwBool:     "bool",
	KwVoid:     "void",
	KwStruct:   "struct",
	KwIf:       "if",
	KwElse:     "else",
	KwWhile:    "while",
	KwReturn:   "return",
	KwInput:    "input",
	KwDisp:     "disp",
	KwTrue:     "true",
	KwFalse:    "false",
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	Semicolon:  ";",
	Comma:      ",",
	Dot:        ".",
	Assign:     "=",
	PlusPlus:   "++",
	MinusMinus: "--",
	Shl:        "<<",
	Shr:        ">>",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Bang:       "!",
	AndAnd:     "&&",
	OrOr:       "||",
	EqEq:       "==",
	BangEq:     "!=",
	Lt:         "<",
	Gt:         ">",
	LtEq:       "<=",
	GtEq:       ">=",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
