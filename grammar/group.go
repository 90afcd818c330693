package grammar

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
)

// EndingMode determines whether the end delimiter of a lexical group is part of
// the group's captured text.
type EndingMode int8

// Ending modes
const (
	Inclusive EndingMode = iota // consume the end delimiter and capture it
	Exclusive                   // leave the end delimiter in the input
)

func (m EndingMode) String() string {
	if m == Exclusive {
		return "exclusive"
	}
	return "inclusive"
}

// AdvanceMode determines how a lexer moves through the content of a lexical group.
type AdvanceMode int8

// Advance modes
const (
	WholeToken      AdvanceMode = iota // absorb content token by token
	SingleCharacter                    // absorb content one unit at a time
)

func (m AdvanceMode) String() string {
	if m == SingleCharacter {
		return "character"
	}
	return "token"
}

// Group is the definition of a lexical group. Groups are immutable and owned by
// a Table.
type Group struct {
	Index     int         // position of the group within its table
	Name      string      // name of the group, e.g. "Comment"
	Start     *Symbol     // symbol opening the group
	End       *Symbol     // symbol closing the group
	Container *Symbol     // symbol of the token representing the whole group
	Ending    EndingMode  // is the end delimiter part of the group?
	Advance   AdvanceMode // token-wise or character-wise content processing
	nesting   *hashset.Set
}

// AllowsNesting is a predicate: may group inner start while g is open?
func (g *Group) AllowsNesting(inner *Group) bool {
	if g.nesting == nil || inner == nil {
		return false
	}
	return g.nesting.Contains(inner)
}

// Nesting returns the groups which may start inside of g, ordered by table index.
func (g *Group) Nesting() []*Group {
	if g.nesting == nil {
		return nil
	}
	groups := make([]*Group, 0, g.nesting.Size())
	for _, x := range g.nesting.Values() {
		groups = append(groups, x.(*Group))
	}
	sortGroups(groups)
	return groups
}

func (g *Group) String() string {
	return fmt.Sprintf("<group %s: %s…%s => %s (%s, %s)>", g.Name, g.Start.Name, g.End.Name,
		g.Container.Name, g.Ending, g.Advance)
}

func sortGroups(groups []*Group) {
	sort.Slice(groups, func(i, j int) bool { return groups[i].Index < groups[j].Index })
}
