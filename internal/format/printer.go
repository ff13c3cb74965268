// Package format renders the arena AST back to canonical minim source.
//
// The output is a fixed point: unparsing, reparsing, and unparsing again
// yields byte-identical text. The optional annotate mode appends resolved
// symbol info after identifiers and is for debugging only; annotated
// output is not meant to reparse.
package format

import (
	"strconv"
	"strings"

	"minim/internal/ast"
	"minim/internal/source"
	"minim/internal/symbols"
)

const indentStep = 4

// Options configures unparsing.
type Options struct {
	// Annotate appends "(info)" after every identifier the resolver
	// annotated, using Table to describe the symbol.
	Annotate bool
	Table    *symbols.Table
}

// Printer unparses one program. Not safe for reuse across programs.
type Printer struct {
	builder *ast.Builder
	strings *source.Interner
	opts    Options
	sb      strings.Builder
	indent  int
}

// NewPrinter builds a printer over the AST arenas and the interner the
// parser populated.
func NewPrinter(builder *ast.Builder, strings *source.Interner, opts Options) *Printer {
	return &Printer{
		builder: builder,
		strings: strings,
		opts:    opts,
	}
}

// Unparse is a convenience wrapper rendering a whole program.
func Unparse(builder *ast.Builder, strings *source.Interner, program ast.ProgramID, opts Options) string {
	return NewPrinter(builder, strings, opts).Program(program)
}

// Program renders the program and returns the text.
func (p *Printer) Program(id ast.ProgramID) string {
	prog := p.builder.Programs.Get(id)
	if prog == nil {
		return ""
	}
	for _, decl := range prog.Decls {
		p.decl(decl)
	}
	return p.sb.String()
}

func (p *Printer) write(s string) { p.sb.WriteString(s) }
func (p *Printer) writePad()      { p.sb.WriteString(strings.Repeat(" ", p.indent)) }
func (p *Printer) name(id source.StringID) string {
	return p.strings.MustLookup(id)
}

func (p *Printer) decl(id ast.DeclID) {
	decl := p.builder.Decls.Get(id)
	if decl == nil {
		return
	}
	switch decl.Kind {
	case ast.DeclVar:
		data, _ := p.builder.Decls.Var(id)
		p.writePad()
		p.typeSyn(data.Type)
		p.write(" ")
		p.write(p.name(data.Name))
		p.write(";\n")

	case ast.DeclStruct:
		data, _ := p.builder.Decls.Struct(id)
		p.writePad()
		p.write("struct ")
		p.write(p.name(data.Name))
		p.write(" {\n")
		p.indent += indentStep
		for _, field := range data.Fields {
			p.decl(field)
		}
		p.indent -= indentStep
		p.writePad()
		p.write("};\n")

	case ast.DeclFn:
		p.fnDecl(id)

	case ast.DeclFormal:
		data, _ := p.builder.Decls.Formal(id)
		p.typeSyn(data.Type)
		p.write(" ")
		p.write(p.name(data.Name))
	}
}

func (p *Printer) fnDecl(id ast.DeclID) {
	data, _ := p.builder.Decls.Fn(id)
	p.writePad()
	p.typeSyn(data.ReturnType)
	p.write(" ")
	p.write(p.name(data.Name))
	p.write("(")
	for i, formal := range data.Formals {
		if i > 0 {
			p.write(", ")
		}
		p.decl(formal)
	}
	p.write(") {\n")
	p.indent += indentStep
	for _, decl := range data.BodyDecls {
		p.decl(decl)
	}
	for _, stmt := range data.BodyStmts {
		p.stmt(stmt)
	}
	p.indent -= indentStep
	p.writePad()
	p.write("}\n")
}

func (p *Printer) typeSyn(id ast.TypeID) {
	typ := p.builder.Types.Get(id)
	if typ == nil {
		return
	}
	if typ.Kind == ast.TypeStruct {
		p.write("struct ")
		p.write(p.name(typ.Name))
		return
	}
	p.write(typ.Kind.String())
}

func (p *Printer) stmt(id ast.StmtID) {
	stmt := p.builder.Stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtAssign:
		data, _ := p.builder.Stmts.SimpleData(id)
		p.writePad()
		p.assign(data.Expr, false)
		p.write(";\n")

	case ast.StmtPostInc, ast.StmtPostDec:
		data, _ := p.builder.Stmts.SimpleData(id)
		p.writePad()
		p.expr(data.Expr)
		if stmt.Kind == ast.StmtPostInc {
			p.write("++;\n")
		} else {
			p.write("--;\n")
		}

	case ast.StmtRead:
		data, _ := p.builder.Stmts.SimpleData(id)
		p.writePad()
		p.write("input >> ")
		p.expr(data.Expr)
		p.write(";\n")

	case ast.StmtWrite:
		data, _ := p.builder.Stmts.SimpleData(id)
		p.writePad()
		p.write("disp << ")
		p.expr(data.Expr)
		p.write(";\n")

	case ast.StmtCall:
		data, _ := p.builder.Stmts.SimpleData(id)
		p.writePad()
		p.expr(data.Expr)
		p.write(";\n")

	case ast.StmtReturn:
		data, _ := p.builder.Stmts.SimpleData(id)
		p.writePad()
		p.write("return")
		if data.Expr.IsValid() {
			p.write(" ")
			p.expr(data.Expr)
		}
		p.write(";\n")

	case ast.StmtIf, ast.StmtIfElse:
		data, _ := p.builder.Stmts.If(id)
		p.writePad()
		p.write("if (")
		p.expr(data.Cond)
		p.write(") {\n")
		p.block(data.ThenDecls, data.ThenStmts)
		p.writePad()
		p.write("}\n")
		if stmt.Kind == ast.StmtIfElse {
			p.writePad()
			p.write("else {\n")
			p.block(data.ElseDecls, data.ElseStmts)
			p.writePad()
			p.write("}\n")
		}

	case ast.StmtWhile:
		data, _ := p.builder.Stmts.While(id)
		p.writePad()
		p.write("while (")
		p.expr(data.Cond)
		p.write(") {\n")
		p.block(data.Decls, data.Stmts)
		p.writePad()
		p.write("}\n")
	}
}

func (p *Printer) block(decls []ast.DeclID, stmts []ast.StmtID) {
	p.indent += indentStep
	for _, decl := range decls {
		p.decl(decl)
	}
	for _, stmt := range stmts {
		p.stmt(stmt)
	}
	p.indent -= indentStep
}

// assign prints lhs = rhs; statement position drops the outer parentheses.
func (p *Printer) assign(id ast.ExprID, parens bool) {
	data, ok := p.builder.Exprs.Assign(id)
	if !ok {
		p.expr(id)
		return
	}
	if parens {
		p.write("(")
	}
	p.expr(data.Lhs)
	p.write(" = ")
	p.expr(data.Rhs)
	if parens {
		p.write(")")
	}
}

func (p *Printer) expr(id ast.ExprID) {
	expr := p.builder.Exprs.Get(id)
	if expr == nil {
		return
	}
	switch expr.Kind {
	case ast.ExprIntLit:
		data, _ := p.builder.Exprs.IntLit(id)
		p.write(strconv.FormatInt(data.Value, 10))

	case ast.ExprStrLit:
		data, _ := p.builder.Exprs.StrLit(id)
		p.write(p.name(data.Value))

	case ast.ExprTrue:
		p.write("true")

	case ast.ExprFalse:
		p.write("false")

	case ast.ExprIdent:
		p.ident(id)

	case ast.ExprDot:
		data, _ := p.builder.Exprs.Dot(id)
		p.expr(data.Loc)
		p.write(".")
		p.expr(data.Field)

	case ast.ExprAssign:
		p.assign(id, true)

	case ast.ExprCall:
		data, _ := p.builder.Exprs.Call(id)
		p.expr(data.Callee)
		p.write("(")
		for i, arg := range data.Args {
			if i > 0 {
				p.write(", ")
			}
			p.expr(arg)
		}
		p.write(")")

	case ast.ExprUnary:
		data, _ := p.builder.Exprs.Unary(id)
		p.write("(")
		p.write(data.Op.String())
		p.expr(data.Operand)
		p.write(")")

	case ast.ExprBinary:
		data, _ := p.builder.Exprs.Binary(id)
		p.write("(")
		p.expr(data.Left)
		p.write(" ")
		p.write(data.Op.String())
		p.write(" ")
		p.expr(data.Right)
		p.write(")")
	}
}

func (p *Printer) ident(id ast.ExprID) {
	data, _ := p.builder.Exprs.Ident(id)
	p.write(p.name(data.Name))
	if !p.opts.Annotate || p.opts.Table == nil || !data.Symbol.IsValid() {
		return
	}
	sym := p.opts.Table.Symbols.Get(symbols.SymbolID(data.Symbol))
	if sym == nil {
		return
	}
	p.write("(")
	p.write(p.describe(sym))
	p.write(")")
}

// describe renders the annotation text: the declared type for variables
// and instances, the full signature for functions.
func (p *Printer) describe(sym *symbols.Symbol) string {
	switch sym.Kind {
	case symbols.SymbolVar:
		return sym.Type.Kind.String()
	case symbols.SymbolStructInstance:
		return p.name(sym.StructName)
	case symbols.SymbolFunc:
		var sb strings.Builder
		for i, param := range sym.Signature.Params {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(p.typeRefString(param))
		}
		sb.WriteString("->")
		sb.WriteString(p.typeRefString(sym.Signature.Result))
		return sb.String()
	case symbols.SymbolStructDef:
		return "struct"
	default:
		return "?"
	}
}

func (p *Printer) typeRefString(ref symbols.TypeRef) string {
	if ref.Kind == ast.TypeStruct {
		return p.name(ref.Name)
	}
	return ref.Kind.String()
}
