package symbols

import (
	"errors"
	"testing"
)

func TestTablePushPopBalance(t *testing.T) {
	table := NewTable(Hints{}, nil)
	if table.Depth() != 0 {
		t.Fatalf("fresh table depth = %d, want 0", table.Depth())
	}

	outer := table.PushScope()
	inner := table.PushScope()
	if !outer.IsValid() || !inner.IsValid() || outer == inner {
		t.Fatalf("scope ids %v and %v", outer, inner)
	}
	if table.CurrentScope() != inner {
		t.Fatalf("current scope %v, want %v", table.CurrentScope(), inner)
	}

	if err := table.PopScope(); err != nil {
		t.Fatalf("pop inner: %v", err)
	}
	if table.CurrentScope() != outer {
		t.Fatalf("current scope %v after pop, want %v", table.CurrentScope(), outer)
	}
	if err := table.PopScope(); err != nil {
		t.Fatalf("pop outer: %v", err)
	}
	if table.Depth() != 0 {
		t.Fatalf("depth %d after balanced pops, want 0", table.Depth())
	}
}

func TestTablePopEmpty(t *testing.T) {
	table := NewTable(Hints{}, nil)
	if err := table.PopScope(); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("pop on empty table: %v, want ErrEmptyTable", err)
	}
}

func TestTableDeclareThenLookupLocal(t *testing.T) {
	table := NewTable(Hints{}, nil)
	table.PushScope()
	name := table.Strings.Intern("x")

	id, err := table.Declare(name, Symbol{Kind: SymbolVar})
	if err != nil {
		t.Fatalf("declare: %v", err)
	}
	got, ok := table.LookupLocal(name)
	if !ok || got != id {
		t.Fatalf("LookupLocal = (%v, %v), want (%v, true)", got, ok, id)
	}
	sym := table.Symbols.Get(got)
	if sym.Name != name || sym.Kind != SymbolVar {
		t.Fatalf("stored symbol %+v", sym)
	}
}

func TestTableDeclareDuplicate(t *testing.T) {
	table := NewTable(Hints{}, nil)
	table.PushScope()
	name := table.Strings.Intern("x")

	if _, err := table.Declare(name, Symbol{Kind: SymbolVar}); err != nil {
		t.Fatalf("first declare: %v", err)
	}
	if _, err := table.Declare(name, Symbol{Kind: SymbolFunc}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("second declare: %v, want ErrDuplicateName", err)
	}
}

func TestTableDeclareWithoutScope(t *testing.T) {
	table := NewTable(Hints{}, nil)
	name := table.Strings.Intern("x")
	if _, err := table.Declare(name, Symbol{Kind: SymbolVar}); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("declare without scope: %v, want ErrEmptyTable", err)
	}
}

func TestTableShadowing(t *testing.T) {
	table := NewTable(Hints{}, nil)
	table.PushScope()
	name := table.Strings.Intern("x")

	outerID, err := table.Declare(name, Symbol{Kind: SymbolVar})
	if err != nil {
		t.Fatalf("outer declare: %v", err)
	}

	table.PushScope()
	innerID, err := table.Declare(name, Symbol{Kind: SymbolVar})
	if err != nil {
		t.Fatalf("shadowing declare should be legal: %v", err)
	}

	if got, ok := table.LookupGlobal(name); !ok || got != innerID {
		t.Fatalf("LookupGlobal = (%v, %v), want innermost %v", got, ok, innerID)
	}
	if got, ok := table.LookupLocal(name); !ok || got != innerID {
		t.Fatalf("LookupLocal = (%v, %v), want %v", got, ok, innerID)
	}

	if err := table.PopScope(); err != nil {
		t.Fatalf("pop: %v", err)
	}
	if got, ok := table.LookupGlobal(name); !ok || got != outerID {
		t.Fatalf("after pop LookupGlobal = (%v, %v), want outer %v", got, ok, outerID)
	}
}

func TestTableLookupGlobalWalksChain(t *testing.T) {
	table := NewTable(Hints{}, nil)
	table.PushScope()
	name := table.Strings.Intern("deep")
	id, err := table.Declare(name, Symbol{Kind: SymbolVar})
	if err != nil {
		t.Fatalf("declare: %v", err)
	}

	table.PushScope()
	table.PushScope()

	if _, ok := table.LookupLocal(name); ok {
		t.Fatal("LookupLocal found an outer binding")
	}
	if got, ok := table.LookupGlobal(name); !ok || got != id {
		t.Fatalf("LookupGlobal = (%v, %v), want (%v, true)", got, ok, id)
	}
}

func TestTableDetachedScope(t *testing.T) {
	table := NewTable(Hints{}, nil)
	table.PushScope()
	detached := table.NewDetachedScope()
	name := table.Strings.Intern("field")

	id, err := table.DeclareIn(detached, name, Symbol{Kind: SymbolVar})
	if err != nil {
		t.Fatalf("DeclareIn: %v", err)
	}
	if _, err := table.DeclareIn(detached, name, Symbol{Kind: SymbolVar}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("duplicate field: %v, want ErrDuplicateName", err)
	}

	// Detached scopes never participate in the lexical chain.
	if _, ok := table.LookupGlobal(name); ok {
		t.Fatal("detached binding visible through LookupGlobal")
	}
	if got, ok := table.LookupIn(detached, name); !ok || got != id {
		t.Fatalf("LookupIn = (%v, %v), want (%v, true)", got, ok, id)
	}

	// Popping every open scope leaves the detached scope reachable.
	if err := table.PopScope(); err != nil {
		t.Fatalf("pop: %v", err)
	}
	if got, ok := table.LookupIn(detached, name); !ok || got != id {
		t.Fatalf("LookupIn after pop = (%v, %v), want (%v, true)", got, ok, id)
	}
}
