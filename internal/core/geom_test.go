package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"bottom-right inside", 5, 4, true},
		{"right edge is exclusive", 6, 3, false},
		{"bottom edge is exclusive", 2, 5, false},
		{"left of rect", 1, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(10, 20, 6, 4)

	if r.Right() != 16 {
		t.Errorf("Right() = %d, expected 16", r.Right())
	}
	if r.Bottom() != 24 {
		t.Errorf("Bottom() = %d, expected 24", r.Bottom())
	}
	if x, y := r.Center(); x != 13 || y != 22 {
		t.Errorf("Center() = (%d, %d), expected (13, 22)", x, y)
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6)

	in := r.Inset(1, 1)
	if in != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1, 1) = %+v", in)
	}

	out := r.Inset(-1, 0)
	if out != NewRect(-1, 0, 12, 6) {
		t.Errorf("Inset(-1, 0) = %+v", out)
	}

	if !r.Inset(5, 0).Empty() {
		t.Error("fully inset rect should be empty")
	}
}
