package grammar

import (
	"fmt"

	"github.com/npillmayer/tablex/grammar/sparse"
)

// EdgeAction is the kind of transition an edge performs.
type EdgeAction int8

// Actions of DFA edges. Transparent and Mark are non-advancing: the automaton
// consumes the lookahead unit but stays in its current state.
const (
	Advance     EdgeAction = iota // move to the target state
	Transparent                   // consume the unit, do not participate in the match
	Mark                          // consume the unit and bookmark the current offset as match end
)

func (a EdgeAction) String() string {
	switch a {
	case Advance:
		return "advance"
	case Transparent:
		return "transparent"
	case Mark:
		return "mark"
	}
	return fmt.Sprintf("EdgeAction(%d)", int(a))
}

// Edge is a transition of the DFA for a contiguous range of input codes [Lo…Hi].
// Target is set for Advance edges only.
type Edge struct {
	Lo, Hi rune
	Action EdgeAction
	Target *State
}

func (e Edge) String() string {
	if e.Action == Advance {
		return fmt.Sprintf("[%#U…%#U] -> %d", e.Lo, e.Hi, e.Target.ID)
	}
	return fmt.Sprintf("[%#U…%#U] %s", e.Lo, e.Hi, e.Action)
}

// State is a node of a DFA. A state carrying an accept symbol completes a valid
// match for this symbol.
type State struct {
	ID     int     // serial ID of this state
	Accept *Symbol // accepted symbol, or nil
	edges  []Edge
	index  *sparse.RangeMap // code → index into edges
}

// IsAccepting is a predicate: does reaching this state complete a match?
func (s *State) IsAccepting() bool {
	return s.Accept != nil
}

// Next finds the edge whose code range contains code. If no such edge exists,
// Next returns false (the automaton is at a dead end).
func (s *State) Next(code rune) (Edge, bool) {
	if s.index == nil {
		return Edge{}, false
	}
	i := s.index.Value(code)
	if i == s.index.NullValue() {
		return Edge{}, false
	}
	return s.edges[i], true
}

// Edges returns the outgoing edges of s in ascending order of their code ranges.
func (s *State) Edges() []Edge {
	edges := make([]Edge, 0, len(s.edges))
	if s.index != nil {
		s.index.Each(func(lo, hi rune, i int32) {
			edges = append(edges, s.edges[i])
		})
	}
	return edges
}

func (s *State) String() string {
	if s.Accept != nil {
		return fmt.Sprintf("(state %d | accept %s | %d edges)", s.ID, s.Accept.Name, len(s.edges))
	}
	return fmt.Sprintf("(state %d | %d edges)", s.ID, len(s.edges))
}
