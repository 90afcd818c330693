package sparse

import (
	"errors"
	"testing"
)

func TestRangeMapLookup(t *testing.T) {
	M := NewRangeMap(-1)
	if err := M.Add('a', 'z', 1); err != nil {
		t.Fatal(err)
	}
	if err := M.Add('0', '9', 2); err != nil {
		t.Fatal(err)
	}
	if err := M.Add('_', '_', 3); err != nil {
		t.Fatal(err)
	}
	for i, test := range []struct {
		code rune
		v    int32
	}{
		{'a', 1}, {'k', 1}, {'z', 1},
		{'0', 2}, {'9', 2},
		{'_', 3},
		{'A', -1}, {'{', -1}, {'/', -1}, {0, -1}, {0x10ffff, -1},
	} {
		if v := M.Value(test.code); v != test.v {
			t.Errorf("test %d: expected value for %q to be %d, is %d", i, test.code, test.v, v)
		}
	}
	if M.RangeCount() != 3 {
		t.Errorf("expected 3 ranges, have %d", M.RangeCount())
	}
}

func TestRangeMapOrder(t *testing.T) {
	M := NewRangeMap(DefaultNullValue)
	M.Add(100, 200, 1)
	M.Add(0, 10, 2)
	M.Add(50, 60, 3)
	var los []rune
	M.Each(func(lo, hi rune, v int32) {
		los = append(los, lo)
	})
	if len(los) != 3 || los[0] != 0 || los[1] != 50 || los[2] != 100 {
		t.Errorf("expected ranges to be sorted, have %v", los)
	}
	if M.Value(5000) != M.NullValue() {
		t.Errorf("expected null value for unmapped code")
	}
}

func TestRangeMapOverlap(t *testing.T) {
	M := NewRangeMap(-1)
	M.Add('c', 'f', 1)
	for i, r := range [][2]rune{{'a', 'c'}, {'f', 'g'}, {'d', 'e'}, {'a', 'z'}} {
		if err := M.Add(r[0], r[1], 2); !errors.Is(err, ErrOverlap) {
			t.Errorf("test %d: expected overlap error for [%c…%c], have %v", i, r[0], r[1], err)
		}
	}
	if err := M.Add('z', 'a', 2); err == nil {
		t.Errorf("expected error for inverted range")
	}
	if M.RangeCount() != 1 {
		t.Errorf("failed additions should leave map unchanged")
	}
}
