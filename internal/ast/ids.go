package ast

type (
	ProgramID uint32
	DeclID    uint32
	StmtID    uint32
	ExprID    uint32
	TypeID    uint32
	PayloadID uint32
)

const (
	NoProgramID ProgramID = 0
	NoDeclID    DeclID    = 0
	NoStmtID    StmtID    = 0
	NoExprID    ExprID    = 0
	NoTypeID    TypeID    = 0
	NoPayloadID PayloadID = 0
)

func (id ProgramID) IsValid() bool { return id != NoProgramID }
func (id DeclID) IsValid() bool    { return id != NoDeclID }
func (id StmtID) IsValid() bool    { return id != NoStmtID }
func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id TypeID) IsValid() bool    { return id != NoTypeID }

// SymbolRef is an index into the name resolver's symbol arena, recorded
// on identifier nodes during analysis. Zero means unresolved. The AST
// deliberately stores a raw index rather than a pointer so the tree stays
// serializable and free of aliases into the symbol store.
type SymbolRef uint32

const NoSymbolRef SymbolRef = 0

func (r SymbolRef) IsValid() bool { return r != NoSymbolRef }
