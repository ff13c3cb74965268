package diag

import (
	"fmt"
)

// Code compactly identifies a diagnostic category. Numbering is stable:
// 1xxx lexical, 2xxx syntax, 3xxx semantic, 4xxx I/O.
type Code uint16

const (
	// UnknownCode is the zero value for uncategorized diagnostics.
	UnknownCode Code = 0

	// Lexical.
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexBadEscape           Code = 1004
	LexIntOverflow         Code = 1005

	// Syntax. A syntax error is fatal: the parser produces no tree.
	SynUnexpectedToken Code = 2001
	SynExpectSemicolon Code = 2002
	SynExpectIdent     Code = 2003
	SynExpectType      Code = 2004
	SynExpectLBrace    Code = 2005
	SynExpectRBrace    Code = 2006
	SynExpectLParen    Code = 2007
	SynExpectRParen    Code = 2008
	SynExpectExpr      Code = 2009
	SynBadAssignTarget Code = 2010

	// Semantic (name analysis). Non-fatal; analysis always continues.
	SemaVoidVariable         Code = 3001
	SemaDuplicateName        Code = 3002
	SemaInvalidStructType    Code = 3003
	SemaUndeclaredIdentifier Code = 3004
	SemaDotAccessNonStruct   Code = 3005
	SemaInvalidFieldName     Code = 3006

	// Driver / I/O.
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexUnknownChar:         "unknown character",
	LexUnterminatedString:  "unterminated string literal",
	LexUnterminatedComment: "unterminated block comment",
	LexBadEscape:           "bad escape sequence",
	LexIntOverflow:         "integer literal out of range",

	SynUnexpectedToken: "unexpected token",
	SynExpectSemicolon: "expected ';'",
	SynExpectIdent:     "expected identifier",
	SynExpectType:      "expected type",
	SynExpectLBrace:    "expected '{'",
	SynExpectRBrace:    "expected '}'",
	SynExpectLParen:    "expected '('",
	SynExpectRParen:    "expected ')'",
	SynExpectExpr:      "expected expression",
	SynBadAssignTarget: "assignment target must be a location",

	SemaVoidVariable:         "non-function declared void",
	SemaDuplicateName:        "identifier multiply-declared",
	SemaInvalidStructType:    "invalid struct type name",
	SemaUndeclaredIdentifier: "identifier undeclared",
	SemaDotAccessNonStruct:   "dot-access of non-struct type",
	SemaInvalidFieldName:     "invalid struct field name",

	IOLoadFileError: "failed to load file",
}

// ID returns the stable short identifier, e.g. "SEM3002".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the human description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
