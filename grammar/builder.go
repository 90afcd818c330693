package grammar

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/tablex/grammar/sparse"
)

// Builder assembles a Table. Builders are not safe for concurrent use; the
// tables they produce are.
//
// Every builder starts out with two symbols, "EOF" of kind EndOfFile and "Error"
// of kind Error, which serve as the table's distinguished end-of-input and error
// symbols.
type Builder struct {
	name    string
	symtab  *SymbolTable
	symbols []*Symbol
	states  []*StateBuilder
	groups  []*GroupBuilder
	eof     *Symbol
	err     *Symbol
}

// NewBuilder creates a builder for a table with the given name.
func NewBuilder(name string) *Builder {
	b := &Builder{
		name:   name,
		symtab: NewSymbolTable(),
	}
	b.eof = b.Symbol("EOF", EndOfFile)
	b.err = b.Symbol("Error", Error)
	return b
}

// EOF returns the end-of-input symbol.
func (b *Builder) EOF() *Symbol {
	return b.eof
}

// Error returns the error symbol.
func (b *Builder) Error() *Symbol {
	return b.err
}

// Symbol defines a new symbol. If a symbol of the same name already exists, it is
// returned unchanged.
func (b *Builder) Symbol(name string, kind SymbolKind) *Symbol {
	if sym := b.symtab.ResolveSymbol(name); sym != nil {
		if sym.Kind != kind {
			tracer().Errorf("symbol %s already defined with kind %s", name, sym.Kind)
		}
		return sym
	}
	sym := &Symbol{
		Index: len(b.symbols),
		Name:  name,
		Kind:  kind,
	}
	b.symbols = append(b.symbols, sym)
	b.symtab.InsertSymbol(sym)
	return sym
}

// State creates a new DFA state. The first state created is the initial state.
func (b *Builder) State() *StateBuilder {
	s := &StateBuilder{id: len(b.states)}
	b.states = append(b.states, s)
	return s
}

// Keyword adds a chain of states recognizing text, starting at state from, and
// makes the final state accept sym. Existing single-code edges along the way
// are re-used, thus keywords with common prefixes share states.
// Keyword returns the accepting state.
func (b *Builder) Keyword(from *StateBuilder, text string, sym *Symbol) *StateBuilder {
	s := from
	for _, r := range text {
		next := s.target(r)
		if next == nil {
			next = b.State()
			s.Edge(r, r, next)
		}
		s = next
	}
	return s.Accepts(sym)
}

// Group defines a lexical group. Ending mode defaults to Inclusive, advance mode
// to WholeToken; the returned GroupBuilder allows to change them.
func (b *Builder) Group(name string, start, end, container *Symbol) *GroupBuilder {
	g := &GroupBuilder{
		name:      name,
		start:     start,
		end:       end,
		container: container,
	}
	b.groups = append(b.groups, g)
	return g
}

// Table creates an immutable table from the definitions collected so far.
// The builder may be used further, but changes will not affect tables already
// returned.
func (b *Builder) Table() (*Table, error) {
	if len(b.states) == 0 {
		return nil, ErrNoStates
	}
	t := &Table{
		Name:         b.name,
		symbols:      append([]*Symbol(nil), b.symbols...),
		symtab:       b.symtab,
		states:       make([]*State, len(b.states)),
		groupByStart: make(map[*Symbol]*Group),
		eof:          b.eof,
		err:          b.err,
	}
	b.symtab = NewSymbolTable() // table owns the old one
	for _, sym := range t.symbols {
		b.symtab.InsertSymbol(sym)
	}
	for i, sb := range b.states {
		t.states[i] = &State{ID: sb.id, Accept: sb.accept}
	}
	for i, sb := range b.states {
		if err := sb.freeze(t.states[i], t.states); err != nil {
			return nil, err
		}
	}
	if err := b.freezeGroups(t); err != nil {
		return nil, err
	}
	var err error
	if t.fingerprint, err = computeFingerprint(t); err != nil {
		return nil, fmt.Errorf("cannot compute table fingerprint: %w", err)
	}
	tracer().Debugf("created table %q with %d symbols, %d states, %d groups",
		t.Name, len(t.symbols), len(t.states), len(t.groups))
	return t, nil
}

func (b *Builder) freezeGroups(t *Table) error {
	byName := make(map[string]*Group, len(b.groups))
	for i, gb := range b.groups {
		if gb.start == nil || gb.end == nil || gb.container == nil {
			return fmt.Errorf("group %q: %w", gb.name, ErrIncompleteGroup)
		}
		g := &Group{
			Index:     i,
			Name:      gb.name,
			Start:     gb.start,
			End:       gb.end,
			Container: gb.container,
			Ending:    gb.ending,
			Advance:   gb.advance,
			nesting:   hashset.New(),
		}
		t.groups = append(t.groups, g)
		if _, ok := byName[g.Name]; !ok {
			byName[g.Name] = g
		}
		if _, ok := t.groupByStart[g.Start]; !ok {
			t.groupByStart[g.Start] = g
		}
	}
	for i, gb := range b.groups {
		for _, name := range gb.nesting {
			inner, ok := byName[name]
			if !ok {
				return fmt.Errorf("group %q nests %q: %w", gb.name, name, ErrUnknownGroup)
			}
			t.groups[i].nesting.Add(inner)
		}
	}
	return nil
}

// --- State builder ---------------------------------------------------------

// StateBuilder collects the definition of a DFA state.
type StateBuilder struct {
	id     int
	accept *Symbol
	edges  []edgeDef
}

type edgeDef struct {
	lo, hi rune
	action EdgeAction
	to     *StateBuilder
}

// ID returns the serial ID the state will have in the table.
func (s *StateBuilder) ID() int {
	return s.id
}

// Accepts marks the state as accepting symbol sym.
func (s *StateBuilder) Accepts(sym *Symbol) *StateBuilder {
	s.accept = sym
	return s
}

// Edge adds an advancing edge for codes [lo…hi] to state to.
func (s *StateBuilder) Edge(lo, hi rune, to *StateBuilder) *StateBuilder {
	s.edges = append(s.edges, edgeDef{lo: lo, hi: hi, action: Advance, to: to})
	return s
}

// Chars adds an advancing edge to state to for every code point of chars.
func (s *StateBuilder) Chars(chars string, to *StateBuilder) *StateBuilder {
	for _, r := range chars {
		s.Edge(r, r, to)
	}
	return s
}

// Transparent adds a non-advancing edge for codes [lo…hi], which consumes
// lookahead without participating in the match.
func (s *StateBuilder) Transparent(lo, hi rune) *StateBuilder {
	s.edges = append(s.edges, edgeDef{lo: lo, hi: hi, action: Transparent})
	return s
}

// Mark adds a non-advancing edge for codes [lo…hi], which bookmarks the
// current position as the end of a match.
func (s *StateBuilder) Mark(lo, hi rune) *StateBuilder {
	s.edges = append(s.edges, edgeDef{lo: lo, hi: hi, action: Mark})
	return s
}

// target finds the state reached by a single-code advancing edge for r.
func (s *StateBuilder) target(r rune) *StateBuilder {
	for _, e := range s.edges {
		if e.action == Advance && e.lo == r && e.hi == r {
			return e.to
		}
	}
	return nil
}

func (s *StateBuilder) freeze(state *State, states []*State) error {
	state.edges = make([]Edge, len(s.edges))
	state.index = sparse.NewRangeMap(-1)
	for i, e := range s.edges {
		edge := Edge{Lo: e.lo, Hi: e.hi, Action: e.action}
		if e.action == Advance {
			if e.to == nil || e.to.id >= len(states) {
				return fmt.Errorf("state %d: %w", s.id, ErrIncompleteEdge)
			}
			edge.Target = states[e.to.id]
		}
		state.edges[i] = edge
		if err := state.index.Add(e.lo, e.hi, int32(i)); err != nil {
			if errors.Is(err, sparse.ErrOverlap) {
				return fmt.Errorf("state %d, edge [%#U…%#U]: %w", s.id, e.lo, e.hi, ErrOverlappingEdges)
			}
			return fmt.Errorf("state %d: %w", s.id, err)
		}
	}
	return nil
}

// --- Group builder ---------------------------------------------------------

// GroupBuilder collects the definition of a lexical group.
type GroupBuilder struct {
	name      string
	start     *Symbol
	end       *Symbol
	container *Symbol
	ending    EndingMode
	advance   AdvanceMode
	nesting   []string
}

// Ending sets the ending mode of the group.
func (g *GroupBuilder) Ending(mode EndingMode) *GroupBuilder {
	g.ending = mode
	return g
}

// Advancing sets the advance mode of the group.
func (g *GroupBuilder) Advancing(mode AdvanceMode) *GroupBuilder {
	g.advance = mode
	return g
}

// Nests allows the groups named to start inside of this group. Names are
// resolved when the table is created; a group may nest itself.
func (g *GroupBuilder) Nests(groups ...string) *GroupBuilder {
	g.nesting = append(g.nesting, groups...)
	return g
}
