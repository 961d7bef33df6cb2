package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 42, 22)
	got := outer.Centered(20, 5)

	want := NewRect(11, 8, 20, 5)
	if got != want {
		t.Errorf("Centered(20, 5) = %+v, expected %+v", got, want)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{55.5, 0.0, 100.0, 55.5},
		{-3.0, 0.0, 100.0, 0.0},
		{150.0, 0.0, 100.0, 100.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
