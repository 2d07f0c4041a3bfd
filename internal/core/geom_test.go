package core

import (
	"math"
	"testing"
)

func TestBoxEdges(t *testing.T) {
	b := NewBox(100, 540, 40, 60)

	if b.Top() != 510 || b.Bottom() != 570 {
		t.Errorf("vertical edges = (%v, %v), expected (510, 570)", b.Top(), b.Bottom())
	}
	if v := b.Vertical(); v.Min != 510 || v.Max != 570 {
		t.Errorf("Vertical() = %+v", v)
	}
}

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected bool
	}{
		{"overlap", Span{0, 10}, Span{5, 15}, true},
		{"touching", Span{0, 10}, Span{10, 20}, false},
		{"disjoint", Span{0, 10}, Span{11, 20}, false},
		{"nested", Span{0, 10}, Span{2, 3}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSpanShrink(t *testing.T) {
	s := Span{Min: 0, Max: 45}.Shrink(10)
	if s.Min != 10 || s.Max != 35 {
		t.Errorf("Shrink(10) = %+v, expected {10 35}", s)
	}
	// A shrunk span no longer reaches a neighbour it used to touch
	if s.Overlaps(Span{Min: 40, Max: 60}) {
		t.Error("shrunk span should not overlap [40, 60)")
	}
}

func TestDist(t *testing.T) {
	d := Dist(Vec{X: 0, Y: 0}, Vec{X: 3, Y: 4})
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist() = %v, expected 5", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 2, 0},
		{3, 0, 2, 2},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(14.002, 6, 14); got != 14 {
		t.Errorf("ClampF(14.002, 6, 14) = %v, expected 14", got)
	}
	if got := ClampF(5.9, 6, 14); got != 6 {
		t.Errorf("ClampF(5.9, 6, 14) = %v, expected 6", got)
	}
}
