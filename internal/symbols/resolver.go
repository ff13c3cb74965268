package symbols

import (
	"fmt"

	"minim/internal/ast"
	"minim/internal/diag"
	"minim/internal/source"
)

// Semantic diagnostic wording is fixed; renderers and golden tests rely on
// the exact strings.
const (
	msgVoidVariable      = "Non-function declared void"
	msgDuplicateName     = "Identifier multiply-declared"
	msgInvalidStructType = "Name of struct type invalid"
	msgUndeclaredIdent   = "Identifier undeclared"
	msgDotNonStruct      = "Dot-access of non-struct type"
	msgInvalidFieldName  = "Struct field name invalid"
)

// Options configures resolver construction.
type Options struct {
	Reporter diag.Reporter
}

// Resolver runs name analysis: a single depth-first, left-to-right walk
// that declares symbols, annotates identifier nodes, and reports semantic
// diagnostics. Semantic errors never stop the walk.
type Resolver struct {
	table    *Table
	builder  *ast.Builder
	reporter diag.Reporter
}

// NewResolver wires a resolver to the table it populates and the AST it
// walks. The table's interner must be the one the parser used for names.
func NewResolver(table *Table, builder *ast.Builder, opts Options) *Resolver {
	return &Resolver{
		table:    table,
		builder:  builder,
		reporter: opts.Reporter,
	}
}

// Resolve analyzes the program. The root scope is pushed once, every
// declaration is resolved against it, and the scope stack is back at its
// prior depth on return no matter what was diagnosed. Returns the root
// scope so callers can inspect top-level symbols afterwards.
func (r *Resolver) Resolve(program ast.ProgramID) ScopeID {
	root := r.table.PushScope()
	prog := r.builder.Programs.Get(program)
	if prog != nil {
		for _, decl := range prog.Decls {
			r.resolveDecl(decl)
		}
	}
	r.popScope()
	return root
}

// popScope treats a pop failure as an internal defect: the walk pushes and
// pops in matched pairs, so an empty stack here means the traversal itself
// is broken.
func (r *Resolver) popScope() {
	if err := r.table.PopScope(); err != nil {
		panic(fmt.Errorf("resolver scope stack corrupted: %w", err))
	}
}

func (r *Resolver) report(code diag.Code, span source.Span, msg string) {
	if r.reporter == nil {
		return
	}
	diag.ReportError(r.reporter, code, span, msg).Emit()
}

func (r *Resolver) typeRef(id ast.TypeID) TypeRef {
	typ := r.builder.Types.Get(id)
	if typ == nil {
		return TypeRef{}
	}
	return TypeRef{Kind: typ.Kind, Name: typ.Name}
}
