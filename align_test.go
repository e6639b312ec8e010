package cdr

import "testing"

func TestCursorPad(t *testing.T) {
	cases := []struct {
		offset, origin, unit, want int
	}{
		{4, 4, 4, 0},
		{5, 4, 4, 3},
		{6, 4, 4, 2},
		{8, 4, 4, 0},
		{12, 4, 8, 0},
		{13, 4, 8, 7},
		{4, 4, 1, 0},
		{7, 4, 0, 0},
	}
	for _, c := range cases {
		cur := &cursor{offset: c.offset, origin: c.origin}
		if got := cur.pad(c.unit); got != c.want {
			t.Errorf("pad(offset=%d, origin=%d, unit=%d) = %d, want %d", c.offset, c.origin, c.unit, got, c.want)
		}
	}
}

func TestCursorAlignAdvancesOffset(t *testing.T) {
	cur := &cursor{offset: 6, origin: 4}
	n := cur.align(4)
	if n != 2 {
		t.Fatalf("align returned %d padding bytes, want 2", n)
	}
	if cur.offset != 8 {
		t.Fatalf("offset = %d, want 8", cur.offset)
	}
}
