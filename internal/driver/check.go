// Package driver runs the front-end pipeline over source files: lexing,
// parsing, and name resolution, one file at a time or in parallel.
package driver

import (
	"errors"

	"fmt"

	"minim/internal/ast"
	"minim/internal/diag"
	"minim/internal/observ"
	"minim/internal/parser"
	"minim/internal/source"
	"minim/internal/symbols"
)

// CheckResult holds everything produced by checking one file. When the
// parse failed Program is zero and Table is nil; the Bag still carries
// the syntax diagnostic.
type CheckResult struct {
	Path    string
	FileID  source.FileID
	Builder *ast.Builder
	Strings *source.Interner
	Program ast.ProgramID
	Table   *symbols.Table
	Root    symbols.ScopeID
	Bag     *diag.Bag
	Cached  bool
	Timing  observ.Report
}

// Clean reports whether the file checked without errors.
func (r CheckResult) Clean() bool {
	return r.Bag != nil && !r.Bag.HasErrors()
}

// CheckFile parses and resolves one already-loaded file. A syntax error
// stops the pipeline before name analysis; semantic diagnostics never do.
func CheckFile(fileSet *source.FileSet, fileID source.FileID, maxDiagnostics int) CheckResult {
	file := fileSet.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	strings := source.NewInterner()
	builder := ast.NewBuilder(ast.Hints{})

	res := CheckResult{
		Path:    file.Path,
		FileID:  fileID,
		Builder: builder,
		Strings: strings,
		Bag:     bag,
	}

	timer := observ.NewTimer()

	stopParse := timer.Begin("parse")
	p := parser.New(file, builder, parser.Options{
		Reporter: &diag.BagReporter{Bag: bag},
		Strings:  strings,
	})
	program, err := p.ParseProgram()
	if err != nil {
		if errors.Is(err, parser.ErrSyntax) {
			stopParse("syntax error")
			res.Timing = timer.Report()
			return res
		}
		// The parser only fails with ErrSyntax.
		panic(err)
	}
	stopParse("")
	res.Program = program

	stopResolve := timer.Begin("resolve")
	table := symbols.NewTable(symbols.Hints{}, strings)
	resolver := symbols.NewResolver(table, builder, symbols.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	res.Root = resolver.Resolve(program)
	stopResolve(fmt.Sprintf("%d diagnostics", bag.Len()))
	res.Table = table
	res.Timing = timer.Report()
	return res
}

// CheckPath loads a file from disk and checks it. Load failures become an
// IO diagnostic in the result's bag rather than an error.
func CheckPath(fileSet *source.FileSet, path string, maxDiagnostics int) CheckResult {
	fileID, err := fileSet.Load(path)
	if err != nil {
		bag := diag.NewBag(maxDiagnostics)
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + err.Error(),
		})
		return CheckResult{Path: path, Bag: bag}
	}
	return CheckFile(fileSet, fileID, maxDiagnostics)
}
