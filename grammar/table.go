package grammar

import (
	"errors"
	"fmt"
	"io"

	"github.com/cnf/structhash"
)

// Errors when assembling a table.
var (
	ErrNoStates         = errors.New("automaton has no states")
	ErrOverlappingEdges = errors.New("overlapping edge ranges")
	ErrIncompleteEdge   = errors.New("advancing edge without target state")
	ErrIncompleteGroup  = errors.New("group lacks start, end or container symbol")
	ErrUnknownGroup     = errors.New("unknown group")
)

// Table is an immutable lexer table: symbols, a DFA and lexical groups.
// Create tables with a Builder.
type Table struct {
	Name         string
	symbols      []*Symbol
	symtab       *SymbolTable
	states       []*State
	groups       []*Group
	groupByStart map[*Symbol]*Group
	eof          *Symbol
	err          *Symbol
	fingerprint  string
}

// Initial returns the start state of the DFA.
func (t *Table) Initial() *State {
	return t.states[0]
}

// State returns the DFA state with the given ID, or nil.
func (t *Table) State(id int) *State {
	if id < 0 || id >= len(t.states) {
		return nil
	}
	return t.states[id]
}

// StateCount returns the number of DFA states.
func (t *Table) StateCount() int {
	return len(t.states)
}

// EOF returns the distinguished end-of-input symbol.
func (t *Table) EOF() *Symbol {
	return t.eof
}

// Error returns the distinguished error symbol.
func (t *Table) Error() *Symbol {
	return t.err
}

// Symbols returns all symbols of the table, ordered by index.
func (t *Table) Symbols() []*Symbol {
	return append([]*Symbol(nil), t.symbols...)
}

// Symbol returns the symbol with the given index, or nil.
func (t *Table) Symbol(index int) *Symbol {
	if index < 0 || index >= len(t.symbols) {
		return nil
	}
	return t.symbols[index]
}

// SymbolByName returns the symbol with the given name, or nil.
func (t *Table) SymbolByName(name string) *Symbol {
	return t.symtab.ResolveSymbol(name)
}

// Groups returns all lexical group definitions, ordered by index.
func (t *Table) Groups() []*Group {
	return append([]*Group(nil), t.groups...)
}

// GroupStartedBy returns the group which is opened by symbol sym, or nil.
// If more than one group is started by sym, the one defined first is returned.
func (t *Table) GroupStartedBy(sym *Symbol) *Group {
	return t.groupByStart[sym]
}

// GroupByName returns the group with the given name, or nil.
func (t *Table) GroupByName(name string) *Group {
	for _, g := range t.groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// Fingerprint returns a hash over the complete content of the table. Tables
// assembled from the same definitions have equal fingerprints.
func (t *Table) Fingerprint() string {
	return t.fingerprint
}

// Dump writes a human readable listing of the table to w.
func (t *Table) Dump(w io.Writer) {
	fmt.Fprintf(w, "table %q [%s]\n", t.Name, t.fingerprint)
	fmt.Fprintf(w, "symbols: %d\n", len(t.symbols))
	for _, sym := range t.symbols {
		fmt.Fprintf(w, "  %3d  %-12s %s\n", sym.Index, sym.Kind, sym.Name)
	}
	fmt.Fprintf(w, "groups: %d\n", len(t.groups))
	for _, g := range t.groups {
		fmt.Fprintf(w, "  %3d  %s", g.Index, g)
		for _, n := range g.Nesting() {
			fmt.Fprintf(w, " +%s", n.Name)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "states: %d\n", len(t.states))
	for _, s := range t.states {
		fmt.Fprintf(w, "  %s\n", s)
		for _, e := range s.Edges() {
			fmt.Fprintf(w, "       %s\n", e)
		}
	}
}

// --- Fingerprint -----------------------------------------------------------

// The DFA is a cyclic structure, which structhash cannot walk. We hash a flat
// snapshot referencing states, symbols and groups by index.

type symbolSnapshot struct {
	Name string
	Kind int
}

type edgeSnapshot struct {
	Lo, Hi int
	Action int
	Target int
}

type stateSnapshot struct {
	Accept int
	Edges  []edgeSnapshot
}

type groupSnapshot struct {
	Name                  string
	Start, End, Container int
	Ending, Advance       int
	Nesting               []int
}

type tableSnapshot struct {
	Name    string
	Symbols []symbolSnapshot
	States  []stateSnapshot
	Groups  []groupSnapshot
}

func symbolIndex(sym *Symbol) int {
	if sym == nil {
		return -1
	}
	return sym.Index
}

func computeFingerprint(t *Table) (string, error) {
	snap := tableSnapshot{Name: t.Name}
	for _, sym := range t.symbols {
		snap.Symbols = append(snap.Symbols, symbolSnapshot{sym.Name, int(sym.Kind)})
	}
	for _, s := range t.states {
		ss := stateSnapshot{Accept: symbolIndex(s.Accept)}
		for _, e := range s.Edges() {
			target := -1
			if e.Target != nil {
				target = e.Target.ID
			}
			ss.Edges = append(ss.Edges, edgeSnapshot{int(e.Lo), int(e.Hi), int(e.Action), target})
		}
		snap.States = append(snap.States, ss)
	}
	for _, g := range t.groups {
		gs := groupSnapshot{
			Name:      g.Name,
			Start:     symbolIndex(g.Start),
			End:       symbolIndex(g.End),
			Container: symbolIndex(g.Container),
			Ending:    int(g.Ending),
			Advance:   int(g.Advance),
		}
		for _, n := range g.Nesting() {
			gs.Nesting = append(gs.Nesting, n.Index)
		}
		snap.Groups = append(snap.Groups, gs)
	}
	return structhash.Hash(snap, 1)
}
