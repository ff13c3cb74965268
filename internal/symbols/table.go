package symbols

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"minim/internal/source"
)

var (
	// ErrEmptyTable is returned when popping from an empty scope stack.
	// It signals a defect in the traversal, not a user-facing condition.
	ErrEmptyTable = errors.New("symbol table: no open scope")
	// ErrDuplicateName is returned when declaring a name already bound in
	// the target scope. Shadowing an outer scope is legal and never errors.
	ErrDuplicateName = errors.New("symbol table: name already declared in scope")
)

// Hints provide optional capacity suggestions for the table arenas.
type Hints struct{ Scopes, Symbols uint }

// Table owns the scope and symbol arenas plus the explicit scope stack for
// one analysis. It holds no package state: concurrent analyses each own
// their Table.
type Table struct {
	Scopes  *Scopes
	Symbols *Symbols
	Strings *source.Interner
	stack   []ScopeID
}

// NewTable builds a fresh table with optional capacity hints. If strings is
// nil, a fresh interner is allocated.
func NewTable(h Hints, strings *source.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbol capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Table{
		Scopes:  NewScopes(scopeCap),
		Symbols: NewSymbols(symCap),
		Strings: strings,
		stack:   make([]ScopeID, 0, 8),
	}
}

// PushScope opens a new innermost scope and returns its ID. Always succeeds.
func (t *Table) PushScope() ScopeID {
	scope := t.Scopes.New(t.CurrentScope())
	t.stack = append(t.stack, scope)
	return scope
}

// PopScope closes the innermost scope. The scope stays allocated in the
// arena; only visibility changes.
func (t *Table) PopScope() error {
	if len(t.stack) == 0 {
		return ErrEmptyTable
	}
	t.stack = t.stack[:len(t.stack)-1]
	return nil
}

// CurrentScope returns the innermost open scope, or NoScopeID.
func (t *Table) CurrentScope() ScopeID {
	if len(t.stack) == 0 {
		return NoScopeID
	}
	return t.stack[len(t.stack)-1]
}

// Depth reports the number of open scopes.
func (t *Table) Depth() int { return len(t.stack) }

// NewDetachedScope allocates a parentless scope outside the stack. Struct
// field tables live here: they are reachable only through their StructDef
// symbol and survive for the whole analysis.
func (t *Table) NewDetachedScope() ScopeID {
	return t.Scopes.New(NoScopeID)
}

// Declare binds name to sym in the innermost scope.
func (t *Table) Declare(name source.StringID, sym Symbol) (SymbolID, error) {
	scope := t.CurrentScope()
	if !scope.IsValid() {
		return NoSymbolID, ErrEmptyTable
	}
	return t.DeclareIn(scope, name, sym)
}

// DeclareIn binds name to sym in the given scope, which may be detached.
func (t *Table) DeclareIn(scope ScopeID, name source.StringID, sym Symbol) (SymbolID, error) {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID, ErrEmptyTable
	}
	if _, bound := sc.Names[name]; bound {
		return NoSymbolID, fmt.Errorf("%q: %w", t.Strings.MustLookup(name), ErrDuplicateName)
	}
	sym.Name = name
	sym.Scope = scope
	id := t.Symbols.New(&sym)
	sc.Names[name] = id
	sc.Symbols = append(sc.Symbols, id)
	return id, nil
}

// LookupLocal searches the innermost scope only.
func (t *Table) LookupLocal(name source.StringID) (SymbolID, bool) {
	return t.LookupIn(t.CurrentScope(), name)
}

// LookupGlobal searches open scopes innermost to outermost and returns the
// first match.
func (t *Table) LookupGlobal(name source.StringID) (SymbolID, bool) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if id, ok := t.LookupIn(t.stack[i], name); ok {
			return id, true
		}
	}
	return NoSymbolID, false
}

// LookupIn searches a single scope, typically a detached field table.
func (t *Table) LookupIn(scope ScopeID, name source.StringID) (SymbolID, bool) {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID, false
	}
	id, ok := sc.Names[name]
	return id, ok
}
