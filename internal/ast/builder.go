package ast

// Hints provide optional capacity suggestions for the AST arenas.
type Hints struct{ Decls, Stmts, Exprs, Types uint }

// Builder aggregates the arenas for one compilation unit. Each parse
// owns its Builder; nothing here is shared or process-wide.
type Builder struct {
	Programs *Programs
	Decls    *Decls
	Stmts    *Stmts
	Exprs    *Exprs
	Types    *Types
}

func NewBuilder(hints Hints) *Builder {
	if hints.Decls == 0 {
		hints.Decls = 1 << 7
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Types == 0 {
		hints.Types = 1 << 6
	}
	return &Builder{
		Programs: NewPrograms(1),
		Decls:    NewDecls(hints.Decls),
		Stmts:    NewStmts(hints.Stmts),
		Exprs:    NewExprs(hints.Exprs),
		Types:    NewTypes(hints.Types),
	}
}
