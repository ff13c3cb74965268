package symbols

import (
	"errors"
	"fmt"

	"minim/internal/ast"
	"minim/internal/diag"
	"minim/internal/source"
)

func (r *Resolver) resolveDecl(id ast.DeclID) {
	decl := r.builder.Decls.Get(id)
	if decl == nil {
		return
	}
	switch decl.Kind {
	case ast.DeclVar:
		data, ok := r.builder.Decls.Var(id)
		if ok {
			r.resolveVarLike(data.Type, data.Name, data.NameSpan, NoScopeID)
		}
	case ast.DeclFormal:
		data, ok := r.builder.Decls.Formal(id)
		if ok {
			r.resolveVarLike(data.Type, data.Name, data.NameSpan, NoScopeID)
		}
	case ast.DeclFn:
		r.resolveFnDecl(id)
	case ast.DeclStruct:
		r.resolveStructDecl(id)
	}
}

// resolveVarLike handles variable, formal, and struct field declarations,
// which share the construction rules. target selects a detached field
// scope; NoScopeID means the innermost open scope.
func (r *Resolver) resolveVarLike(typeID ast.TypeID, name source.StringID, nameSpan source.Span, target ScopeID) {
	typ := r.builder.Types.Get(typeID)
	if typ == nil {
		return
	}
	switch typ.Kind {
	case ast.TypeVoid:
		// Only functions may be void; no symbol is created.
		r.report(diag.SemaVoidVariable, nameSpan, msgVoidVariable)

	case ast.TypeStruct:
		// The instance is declared even when its type name does not
		// resolve, so later uses of the variable itself do not cascade
		// into undeclared-identifier noise. Only an outright miss is
		// reported; a name bound to a non-struct symbol is accepted here
		// and surfaces at dot-access time instead.
		if _, ok := r.table.LookupGlobal(typ.Name); !ok {
			r.report(diag.SemaInvalidStructType, typ.NameSpan, msgInvalidStructType)
		}
		r.declare(name, nameSpan, Symbol{
			Kind:       SymbolStructInstance,
			Span:       nameSpan,
			StructName: typ.Name,
		}, target)

	default:
		r.declare(name, nameSpan, Symbol{
			Kind: SymbolVar,
			Span: nameSpan,
			Type: TypeRef{Kind: typ.Kind},
		}, target)
	}
}

// resolveFnDecl declares the function in the enclosing scope, then opens a
// fresh scope for formals and body. The body is analyzed even when the
// function name itself collided.
func (r *Resolver) resolveFnDecl(id ast.DeclID) {
	data, ok := r.builder.Decls.Fn(id)
	if !ok {
		return
	}

	sig := &Signature{Result: r.typeRef(data.ReturnType)}
	for _, formal := range data.Formals {
		fd, ok := r.builder.Decls.Formal(formal)
		if !ok {
			continue
		}
		sig.Params = append(sig.Params, r.typeRef(fd.Type))
	}

	r.declare(data.Name, data.NameSpan, Symbol{
		Kind:      SymbolFunc,
		Span:      data.NameSpan,
		Signature: sig,
	}, NoScopeID)

	r.table.PushScope()
	for _, formal := range data.Formals {
		r.resolveDecl(formal)
	}
	for _, decl := range data.BodyDecls {
		r.resolveDecl(decl)
	}
	for _, stmt := range data.BodyStmts {
		r.resolveStmt(stmt)
	}
	r.popScope()
}

// resolveStructDecl declares the struct type and populates its detached
// field scope. On a name collision the field list is skipped entirely: the
// type is unusable and per-field diagnostics against it would be noise.
func (r *Resolver) resolveStructDecl(id ast.DeclID) {
	data, ok := r.builder.Decls.Struct(id)
	if !ok {
		return
	}

	fields := r.table.NewDetachedScope()
	if _, err := r.table.Declare(data.Name, Symbol{
		Kind:   SymbolStructDef,
		Span:   data.NameSpan,
		Fields: fields,
	}); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			r.report(diag.SemaDuplicateName, data.NameSpan, msgDuplicateName)
			return
		}
		panic(fmt.Errorf("struct declaration: %w", err))
	}

	for _, field := range data.Fields {
		fd, ok := r.builder.Decls.Var(field)
		if !ok {
			continue
		}
		r.resolveVarLike(fd.Type, fd.Name, fd.NameSpan, fields)
	}
}

// declare installs a symbol, reporting a duplicate binding as a semantic
// diagnostic. Any other declaration failure is a traversal defect.
func (r *Resolver) declare(name source.StringID, span source.Span, sym Symbol, target ScopeID) SymbolID {
	var (
		id  SymbolID
		err error
	)
	if target.IsValid() {
		id, err = r.table.DeclareIn(target, name, sym)
	} else {
		id, err = r.table.Declare(name, sym)
	}
	if err == nil {
		return id
	}
	if errors.Is(err, ErrDuplicateName) {
		r.report(diag.SemaDuplicateName, span, msgDuplicateName)
		return NoSymbolID
	}
	panic(fmt.Errorf("declare %q: %w", r.table.Strings.MustLookup(name), err))
}
