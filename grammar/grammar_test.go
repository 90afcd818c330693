package grammar

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func keywords(t *testing.T) *Table {
	b := NewBuilder("Keywords")
	kif := b.Symbol("if", Terminal)
	kin := b.Symbol("in", Terminal)
	kint := b.Symbol("int", Terminal)
	ws := b.Symbol("ws", Noise)
	s0 := b.State()
	b.Keyword(s0, "if", kif)
	b.Keyword(s0, "in", kin)
	b.Keyword(s0, "int", kint)
	sws := b.State().Accepts(ws)
	s0.Chars(" \t", sws)
	open := b.Symbol("(", GroupStart)
	b.Keyword(s0, "(", open)
	closing := b.Symbol(")", GroupEnd)
	b.Keyword(s0, ")", closing)
	b.Group("Parens", open, closing, b.Symbol("Parenthesized", Terminal)).
		Nests("Parens")
	table, err := b.Table()
	if err != nil {
		t.Fatalf("cannot build table: %v", err)
	}
	return table
}

// walk follows advancing edges for text and returns the state reached, or nil.
func walk(s *State, text string) *State {
	for _, r := range text {
		edge, ok := s.Next(r)
		if !ok || edge.Action != Advance {
			return nil
		}
		s = edge.Target
	}
	return s
}

func TestBuilderSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablex.grammar")
	defer teardown()
	//
	table := keywords(t)
	if table.EOF().Name != "EOF" || table.EOF().Kind != EndOfFile || !table.EOF().IsEnd() {
		t.Errorf("unexpected EOF symbol %v", table.EOF())
	}
	if table.Error().Kind != Error || !table.Error().IsEnd() {
		t.Errorf("unexpected error symbol %v", table.Error())
	}
	for i, sym := range table.Symbols() {
		if sym.Index != i || table.Symbol(i) != sym {
			t.Errorf("symbol %v has inconsistent index %d", sym, i)
		}
		if table.SymbolByName(sym.Name) != sym {
			t.Errorf("symbol %v not found by name", sym)
		}
	}
	if table.Symbol(-1) != nil || table.Symbol(100) != nil || table.SymbolByName("else") != nil {
		t.Errorf("expected lookups of unknown symbols to fail")
	}
	b := NewBuilder("Redefine")
	x := b.Symbol("x", Terminal)
	if b.Symbol("x", Terminal) != x {
		t.Errorf("expected redefinition to return existing symbol")
	}
}

func TestKeywordsShareStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablex.grammar")
	defer teardown()
	//
	table := keywords(t)
	if table.StateCount() != 8 {
		t.Errorf("expected 8 states, have %d", table.StateCount())
	}
	s0 := table.Initial()
	si := walk(s0, "i")
	if si == nil || si.IsAccepting() {
		t.Fatalf("expected non-accepting state after 'i', have %v", si)
	}
	if walk(s0, "in") != walk(si, "n") {
		t.Errorf("expected keywords 'in' and 'int' to share a state")
	}
	for _, kw := range []string{"if", "in", "int"} {
		s := walk(s0, kw)
		if s == nil || s.Accept == nil || s.Accept.Name != kw {
			t.Errorf("expected %q to be accepted, have %v", kw, s)
		}
	}
	if walk(s0, "ix") != nil {
		t.Errorf("expected dead end for 'ix'")
	}
	edges := s0.Edges()
	for i := 1; i < len(edges); i++ {
		if edges[i-1].Hi >= edges[i].Lo {
			t.Errorf("edges not sorted: %s, %s", edges[i-1], edges[i])
		}
	}
}

func TestTableErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablex.grammar")
	defer teardown()
	//
	if _, err := NewBuilder("Empty").Table(); !errors.Is(err, ErrNoStates) {
		t.Errorf("expected ErrNoStates, have %v", err)
	}
	b := NewBuilder("Overlap")
	s0 := b.State()
	s1 := b.State().Accepts(b.Symbol("x", Terminal))
	s0.Edge('a', 'm', s1).Edge('k', 'z', s1)
	if _, err := b.Table(); !errors.Is(err, ErrOverlappingEdges) {
		t.Errorf("expected ErrOverlappingEdges, have %v", err)
	}
	b = NewBuilder("Dangling")
	b.State().Edge('a', 'a', nil)
	if _, err := b.Table(); !errors.Is(err, ErrIncompleteEdge) {
		t.Errorf("expected ErrIncompleteEdge, have %v", err)
	}
	b = NewBuilder("Groups")
	b.State()
	start := b.Symbol("<", GroupStart)
	end := b.Symbol(">", GroupEnd)
	b.Group("Angle", start, end, b.Symbol("Angled", Terminal)).Nests("Square")
	if _, err := b.Table(); !errors.Is(err, ErrUnknownGroup) {
		t.Errorf("expected ErrUnknownGroup, have %v", err)
	}
	b = NewBuilder("Incomplete")
	b.State()
	b.Group("Half", b.Symbol("<", GroupStart), nil, nil)
	if _, err := b.Table(); !errors.Is(err, ErrIncompleteGroup) {
		t.Errorf("expected ErrIncompleteGroup, have %v", err)
	}
}

func TestGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablex.grammar")
	defer teardown()
	//
	table := keywords(t)
	parens := table.GroupByName("Parens")
	if parens == nil {
		t.Fatalf("group Parens not found")
	}
	if table.GroupStartedBy(table.SymbolByName("(")) != parens {
		t.Errorf("expected '(' to start group Parens")
	}
	if table.GroupStartedBy(table.SymbolByName("if")) != nil {
		t.Errorf("expected 'if' not to start a group")
	}
	if !parens.AllowsNesting(parens) {
		t.Errorf("expected Parens to nest itself")
	}
	if parens.Ending != Inclusive || parens.Advance != WholeToken {
		t.Errorf("unexpected default modes %s, %s", parens.Ending, parens.Advance)
	}
	if diff := cmp.Diff([]string{"Parens"}, groupNames(parens.Nesting())); diff != "" {
		t.Errorf("nesting mismatch (-want +got):\n%s", diff)
	}
}

func groupNames(groups []*Group) []string {
	var names []string
	for _, g := range groups {
		names = append(names, g.Name)
	}
	return names
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablex.grammar")
	defer teardown()
	//
	t1, t2 := keywords(t), keywords(t)
	if t1.Fingerprint() == "" || t1.Fingerprint() != t2.Fingerprint() {
		t.Errorf("expected equal, non-empty fingerprints: %q, %q", t1.Fingerprint(), t2.Fingerprint())
	}
	b := NewBuilder("Keywords")
	b.Keyword(b.State(), "if", b.Symbol("if", Terminal))
	t3, err := b.Table()
	if err != nil {
		t.Fatal(err)
	}
	if t3.Fingerprint() == t1.Fingerprint() {
		t.Errorf("expected different tables to have different fingerprints")
	}
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablex.grammar")
	defer teardown()
	//
	table := keywords(t)
	var sb strings.Builder
	table.Dump(&sb)
	dump := sb.String()
	t.Logf("\n%s", dump)
	for _, s := range []string{`table "Keywords"`, "GroupStart", "<group Parens", "+Parens", "accept int"} {
		if !strings.Contains(dump, s) {
			t.Errorf("expected dump to contain %q", s)
		}
	}
}

func TestSymbolTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablex.grammar")
	defer teardown()
	//
	symtab := NewSymbolTable()
	for i, name := range []string{"zeta", "alpha", "mu"} {
		if old := symtab.InsertSymbol(&Symbol{Index: i, Name: name}); old != nil {
			t.Errorf("unexpected previous symbol %v", old)
		}
	}
	if old := symtab.InsertSymbol(&Symbol{Index: 9, Name: "mu"}); old == nil || old.Index != 2 {
		t.Errorf("expected insert to return replaced symbol, have %v", old)
	}
	var names []string
	symtab.Each(func(name string, sym *Symbol) {
		names = append(names, name)
	})
	if diff := cmp.Diff([]string{"alpha", "mu", "zeta"}, names); diff != "" {
		t.Errorf("iteration order mismatch (-want +got):\n%s", diff)
	}
	if symtab.Size() != 3 || symtab.ResolveSymbol("mu").Index != 9 {
		t.Errorf("unexpected symbol table content")
	}
}
