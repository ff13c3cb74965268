package token

var keywords = map[string]Kind{
	"int":    KwInt,
	"bool":   KwBool,
	"void":   KwVoid,
	"struct": KwStruct,
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
	"return": KwReturn,
	"input":  KwInput,
	"disp":   KwDisp,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
