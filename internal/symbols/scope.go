package symbols

import (
	"minim/internal/source"
)

// Scope is one name-to-symbol mapping. Stacked scopes carry a parent link
// forming the lexical chain; detached scopes (struct field tables) have no
// parent and never enter the stack.
type Scope struct {
	Parent  ScopeID
	Names   map[source.StringID]SymbolID
	Symbols []SymbolID // declaration order, for deterministic dumps
}
