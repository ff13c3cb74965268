package driver

import (
	"minim/internal/diag"
	"minim/internal/lexer"
	"minim/internal/source"
	"minim/internal/token"
)

// TokenizeResult holds the token stream of one file including the final
// EOF token. Lexical diagnostics land in Bag; lexing always reaches EOF.
type TokenizeResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// TokenizeFile scans one already-loaded file into tokens.
func TokenizeFile(fileSet *source.FileSet, fileID source.FileID, maxDiagnostics int) TokenizeResult {
	file := fileSet.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return TokenizeResult{
		Path:   file.Path,
		FileID: fileID,
		Tokens: tokens,
		Bag:    bag,
	}
}

// TokenizePath loads a file from disk and tokenizes it.
func TokenizePath(fileSet *source.FileSet, path string, maxDiagnostics int) (TokenizeResult, error) {
	fileID, err := fileSet.Load(path)
	if err != nil {
		return TokenizeResult{}, err
	}
	return TokenizeFile(fileSet, fileID, maxDiagnostics), nil
}
