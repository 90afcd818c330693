package grammar

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Symbol table for grammar symbols, keyed by name. Iteration is in
// lexicographic order of names, which keeps dumps and fingerprints stable.

// SymbolTable is a symbol table to store symbols (map-like semantics).
type SymbolTable struct {
	table *treemap.Map
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		table: treemap.NewWithStringComparator(),
	}
}

// ResolveSymbol checks for a symbol in the symbol table.
// Returns a symbol or nil.
func (t *SymbolTable) ResolveSymbol(name string) *Symbol {
	if sym, found := t.table.Get(name); found {
		return sym.(*Symbol)
	}
	return nil
}

// InsertSymbol inserts a pre-created symbol.
// Overwrites an existing symbol with this name, if any, and returns it (or nil).
func (t *SymbolTable) InsertSymbol(sym *Symbol) *Symbol {
	old := t.ResolveSymbol(sym.Name)
	t.table.Put(sym.Name, sym)
	return old
}

// Size counts the symbols in a symbol table.
func (t *SymbolTable) Size() int {
	return t.table.Size()
}

// Each iterates over each symbol in the table in order of names,
// executing a mapper function.
func (t *SymbolTable) Each(mapper func(string, *Symbol)) {
	it := t.table.Iterator()
	for it.Next() {
		mapper(it.Key().(string), it.Value().(*Symbol))
	}
}
