package ast

import (
	"minim/internal/source"
)

// StmtKind tags statement nodes.
type StmtKind uint8

const (
	StmtInvalid StmtKind = iota
	StmtAssign
	StmtPostInc
	StmtPostDec
	StmtRead
	StmtWrite
	StmtIf
	StmtIfElse
	StmtWhile
	StmtCall
	StmtReturn
)

// Stmt is the header of a statement node.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtExprData backs the single-expression statements: assign, ++, --,
// read, write, call, return. A return without a value stores NoExprID.
type StmtExprData struct {
	Expr ExprID
}

// StmtIfData backs both if and if/else. The else lists stay empty for a
// plain if. Declarations precede statements inside every branch, per the
// grammar.
type StmtIfData struct {
	Cond      ExprID
	ThenDecls []DeclID
	ThenStmts []StmtID
	ElseDecls []DeclID
	ElseStmts []StmtID
}

// StmtWhileData is a while loop with its own body block.
type StmtWhileData struct {
	Cond  ExprID
	Decls []DeclID
	Stmts []StmtID
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena  *Arena[Stmt]
	Simple *Arena[StmtExprData]
	Ifs    *Arena[StmtIfData]
	Whiles *Arena[StmtWhileData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:  NewArena[Stmt](capHint),
		Simple: NewArena[StmtExprData](capHint),
		Ifs:    NewArena[StmtIfData](capHint / 4),
		Whiles: NewArena[StmtWhileData](capHint / 4),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement header for the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewSimple creates one of the single-expression statement kinds.
func (s *Stmts) NewSimple(kind StmtKind, span source.Span, expr ExprID) StmtID {
	payload := s.Simple.Allocate(StmtExprData{Expr: expr})
	return s.new(kind, span, PayloadID(payload))
}

// SimpleData returns the expression payload for single-expression kinds.
func (s *Stmts) SimpleData(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil {
		return nil, false
	}
	switch stmt.Kind {
	case StmtAssign, StmtPostInc, StmtPostDec, StmtRead, StmtWrite, StmtCall, StmtReturn:
		return s.Simple.Get(uint32(stmt.Payload)), true
	default:
		return nil, false
	}
}

// NewIf creates an if statement; pass nil else lists for a plain if.
func (s *Stmts) NewIf(span source.Span, data StmtIfData, hasElse bool) StmtID {
	kind := StmtIf
	if hasElse {
		kind = StmtIfElse
	}
	payload := s.Ifs.Allocate(data)
	return s.new(kind, span, PayloadID(payload))
}

func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	stmt := s.Get(id)
	if stmt == nil || (stmt.Kind != StmtIf && stmt.Kind != StmtIfElse) {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

// NewWhile creates a while statement.
func (s *Stmts) NewWhile(span source.Span, data StmtWhileData) StmtID {
	payload := s.Whiles.Allocate(data)
	return s.new(StmtWhile, span, PayloadID(payload))
}

func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}
