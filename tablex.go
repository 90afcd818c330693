package tablex

import "fmt"

// --- Positions -------------------------------------------------------------

// Position is a 1-based line/column location within an input source. Columns count
// input units, i.e. code points for character input and bytes for byte input.
type Position struct {
	Line   int
	Column int
}

// StartOfInput is the position of the first unit of every input source.
var StartOfInput = Position{Line: 1, Column: 1}

// IsValid returns true if p denotes a real location (line and column >= 1).
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// Before is a predicate: does p lie strictly before q?
func (p Position) Before(q Position) bool {
	return p.Line < q.Line || p.Line == q.Line && p.Column < q.Column
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input units. Every token
// tracks which input offsets it covers. A span denotes a start position and the
// position just behind the end, counted in committed units since the start of input.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
