/*
Package sparse implements a simple type for sparse maps over integer ranges.
It is mainly used for DFA edge lookup: every state of an automaton maps
disjoint ranges of input codes to the index of an outgoing edge.

Ranges are stored sorted by their lower bound, which allows lookups by binary search
instead of a linear scan over all edges of a state.

   https://en.wikipedia.org/wiki/Interval_tree#Naive_approach

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"errors"
	"fmt"
	"sort"
)

// ErrOverlap is returned when a range would intersect an already stored range.
var ErrOverlap = errors.New("overlapping ranges")

// RangeMap is a type for a sparse map of code ranges to int32 values. Construct with
//
//     M := NewRangeMap(-1)            // parameter is M's null-value
//
// Now
//
//     M.Add('a', 'z', 4711)           // map a range to a value
//     v := M.Value('k')               // returns 4711
//     v = M.Value('0')                // returns -1, i.e. the null-value
//
// Ranges cannot be deleted. Lookup time is logarithmic in the number of ranges.
type RangeMap struct {
	ranges  []interval
	nullval int32
}

// Closed interval [lo…hi] with a value
type interval struct {
	lo, hi int32
	value  int32
}

// NewRangeMap creates a new, empty range map. The argument is a null-value,
// indicating absent entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewRangeMap(nullValue int32) *RangeMap {
	return &RangeMap{
		ranges:  []interval{},
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for range maps (min int32).
const DefaultNullValue = -2147483648

// NullValue returns this map's null value
func (m *RangeMap) NullValue() int32 {
	return m.nullval
}

// RangeCount returns the number of ranges in the map.
func (m *RangeMap) RangeCount() int {
	return len(m.ranges)
}

// Add maps the closed range [lo…hi] to value. Add returns ErrOverlap (wrapped)
// if the range intersects a range already present, leaving the map unchanged.
func (m *RangeMap) Add(lo, hi rune, value int32) error {
	if lo > hi {
		return fmt.Errorf("sparse: invalid range [%d…%d]", lo, hi)
	}
	l, h := int32(lo), int32(hi)
	at := sort.Search(len(m.ranges), func(i int) bool { // first range right of or at lo
		return m.ranges[i].lo >= l
	})
	if at < len(m.ranges) && m.ranges[at].lo <= h {
		return fmt.Errorf("sparse: range [%d…%d]: %w", lo, hi, ErrOverlap)
	}
	if at > 0 && m.ranges[at-1].hi >= l {
		return fmt.Errorf("sparse: range [%d…%d]: %w", lo, hi, ErrOverlap)
	}
	inew := interval{lo: l, hi: h, value: value}
	// the following 3 lines have to work for at being the right edge of m.ranges or not
	m.ranges = append(m.ranges, inew)    // make room
	copy(m.ranges[at+1:], m.ranges[at:]) // copy remainder ranges one index to right
	m.ranges[at] = inew                  // if not append-case: insert new interval
	return nil
}

// Value returns the value for the range containing code, or NullValue.
func (m *RangeMap) Value(code rune) int32 {
	c := int32(code)
	i := sort.Search(len(m.ranges), func(i int) bool { // first range ending at or behind c
		return m.ranges[i].hi >= c
	})
	if i < len(m.ranges) && m.ranges[i].lo <= c {
		return m.ranges[i].value
	}
	return m.nullval
}

// Each calls f for every range in ascending order.
func (m *RangeMap) Each(f func(lo, hi rune, value int32)) {
	for _, r := range m.ranges {
		f(rune(r.lo), rune(r.hi), r.value)
	}
}

func (iv interval) String() string {
	return fmt.Sprintf("[%d…%d]=%d", iv.lo, iv.hi, iv.value)
}
