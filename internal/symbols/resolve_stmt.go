package symbols

import (
	"minim/internal/ast"
)

func (r *Resolver) resolveStmt(id ast.StmtID) {
	stmt := r.builder.Stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtAssign, ast.StmtPostInc, ast.StmtPostDec,
		ast.StmtRead, ast.StmtWrite, ast.StmtCall, ast.StmtReturn:
		if data, ok := r.builder.Stmts.SimpleData(id); ok {
			r.resolveExpr(data.Expr) // NoExprID for a bare return
		}

	case ast.StmtIf, ast.StmtIfElse:
		data, ok := r.builder.Stmts.If(id)
		if !ok {
			return
		}
		// The condition is resolved in the current scope; each branch
		// gets its own scope, so then/else declarations stay invisible
		// to each other.
		r.resolveExpr(data.Cond)
		r.resolveBlock(data.ThenDecls, data.ThenStmts)
		if stmt.Kind == ast.StmtIfElse {
			r.resolveBlock(data.ElseDecls, data.ElseStmts)
		}

	case ast.StmtWhile:
		data, ok := r.builder.Stmts.While(id)
		if !ok {
			return
		}
		r.resolveExpr(data.Cond)
		r.resolveBlock(data.Decls, data.Stmts)
	}
}

func (r *Resolver) resolveBlock(decls []ast.DeclID, stmts []ast.StmtID) {
	r.table.PushScope()
	for _, decl := range decls {
		r.resolveDecl(decl)
	}
	for _, stmt := range stmts {
		r.resolveStmt(stmt)
	}
	r.popScope()
}
