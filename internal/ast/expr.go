package ast

import (
	"minim/internal/source"
)

// ExprKind tags expression nodes. Dispatch over this enum is exhaustive
// at every site; adding a kind breaks those switches at compile review.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprIntLit
	ExprStrLit
	ExprTrue
	ExprFalse
	ExprIdent
	ExprDot
	ExprAssign
	ExprCall
	ExprUnary
	ExprBinary
)

// UnaryOp enumerates unary operators.
type UnaryOp uint8

const (
	UnaryNeg UnaryOp = iota // -x
	UnaryNot                // !x
)

func (op UnaryOp) String() string {
	if op == UnaryNot {
		return "!"
	}
	return "-"
}

// BinaryOp enumerates binary operators.
type BinaryOp uint8

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryAnd
	BinaryOr
	BinaryEq
	BinaryNotEq
	BinaryLess
	BinaryGreater
	BinaryLessEq
	BinaryGreaterEq
)

var binaryOpNames = [...]string{
	BinaryAdd:       "+",
	BinarySub:       "-",
	BinaryMul:       "*",
	BinaryDiv:       "/",
	BinaryAnd:       "&&",
	BinaryOr:        "||",
	BinaryEq:        "==",
	BinaryNotEq:     "!=",
	BinaryLess:      "<",
	BinaryGreater:   ">",
	BinaryLessEq:    "<=",
	BinaryGreaterEq: ">=",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "?"
}

// Expr is the header of an expression node; kind-specific data lives in
// the payload arenas.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprIdentData is an identifier occurrence. Symbol is populated by name
// analysis where resolution succeeds.
type ExprIdentData struct {
	Name   source.StringID
	Symbol SymbolRef
}

// ExprIntLitData holds a decimal integer literal value.
type ExprIntLitData struct {
	Value int64
}

// ExprStrLitData holds the raw literal text, quotes included.
type ExprStrLitData struct {
	Value source.StringID
}

// ExprDotData is a field selection loc.field. Field always references an
// ExprIdent node so the resolved field symbol has somewhere to live.
type ExprDotData struct {
	Loc   ExprID
	Field ExprID
}

// ExprAssignData is lhs = rhs.
type ExprAssignData struct {
	Lhs ExprID
	Rhs ExprID
}

// ExprCallData is callee(args...). Callee references an ExprIdent node.
type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprUnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[ExprIdentData]
	IntLits  *Arena[ExprIntLitData]
	StrLits  *Arena[ExprStrLitData]
	Dots     *Arena[ExprDotData]
	Assigns  *Arena[ExprAssignData]
	Calls    *Arena[ExprCallData]
	Unaries  *Arena[ExprUnaryData]
	Binaries *Arena[ExprBinaryData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[ExprIdentData](capHint),
		IntLits:  NewArena[ExprIntLitData](capHint),
		StrLits:  NewArena[ExprStrLitData](capHint),
		Dots:     NewArena[ExprDotData](capHint),
		Assigns:  NewArena[ExprAssignData](capHint),
		Calls:    NewArena[ExprCallData](capHint),
		Unaries:  NewArena[ExprUnaryData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression header for the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewIdent creates an identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier payload, or false when id is not an ident.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewIntLit creates an integer literal expression.
func (e *Exprs) NewIntLit(span source.Span, value int64) ExprID {
	payload := e.IntLits.Allocate(ExprIntLitData{Value: value})
	return e.new(ExprIntLit, span, PayloadID(payload))
}

func (e *Exprs) IntLit(id ExprID) (*ExprIntLitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIntLit {
		return nil, false
	}
	return e.IntLits.Get(uint32(expr.Payload)), true
}

// NewStrLit creates a string literal expression.
func (e *Exprs) NewStrLit(span source.Span, value source.StringID) ExprID {
	payload := e.StrLits.Allocate(ExprStrLitData{Value: value})
	return e.new(ExprStrLit, span, PayloadID(payload))
}

func (e *Exprs) StrLit(id ExprID) (*ExprStrLitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprStrLit {
		return nil, false
	}
	return e.StrLits.Get(uint32(expr.Payload)), true
}

// NewBool creates a true or false literal expression.
func (e *Exprs) NewBool(span source.Span, value bool) ExprID {
	kind := ExprFalse
	if value {
		kind = ExprTrue
	}
	return e.new(kind, span, NoPayloadID)
}

// NewDot creates a field selection expression.
func (e *Exprs) NewDot(span source.Span, loc, field ExprID) ExprID {
	payload := e.Dots.Allocate(ExprDotData{Loc: loc, Field: field})
	return e.new(ExprDot, span, PayloadID(payload))
}

func (e *Exprs) Dot(id ExprID) (*ExprDotData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprDot {
		return nil, false
	}
	return e.Dots.Get(uint32(expr.Payload)), true
}

// NewAssign creates an assignment expression.
func (e *Exprs) NewAssign(span source.Span, lhs, rhs ExprID) ExprID {
	payload := e.Assigns.Allocate(ExprAssignData{Lhs: lhs, Rhs: rhs})
	return e.new(ExprAssign, span, PayloadID(payload))
}

func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.Get(uint32(expr.Payload)), true
}

// NewCall creates a call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: args})
	return e.new(ExprCall, span, PayloadID(payload))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewUnary creates a unary expression.
func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewBinary creates a binary expression.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}
