package tablex

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablex")
	defer teardown()
	//
	if !StartOfInput.IsValid() || (Position{}).IsValid() {
		t.Errorf("validity of positions broken")
	}
	p, q := Position{2, 7}, Position{3, 1}
	if !p.Before(q) || q.Before(p) || p.Before(p) {
		t.Errorf("expected %s before %s", p, q)
	}
	if p.String() != "2:7" {
		t.Errorf("expected 2:7, have %s", p)
	}
}

func TestSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablex")
	defer teardown()
	//
	s := Span{3, 8}
	if s.From() != 3 || s.To() != 8 || s.Len() != 5 || s.IsNull() {
		t.Errorf("unexpected span values for %s", s)
	}
	if x := s.Extend(Span{1, 4}); x != (Span{1, 8}) {
		t.Errorf("expected (1…8), have %s", x)
	}
	if !(Span{}).IsNull() {
		t.Errorf("expected zero span to be null")
	}
}
