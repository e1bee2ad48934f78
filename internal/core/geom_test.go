package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"separate horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"separate vertical", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching horizontal", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"touching vertical", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single unit overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
		{"zero height never hits", NewRect(0, 0, 10, 10), NewRect(0, 5, 10, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(160, 360, 40, 40)

	if r.X != 140 || r.Y != 340 {
		t.Errorf("RectFromCenter origin = (%d, %d), expected (140, 340)", r.X, r.Y)
	}
	if cx, cy := r.Center(); cx != 160 || cy != 360 {
		t.Errorf("Center() = (%d, %d), expected (160, 360)", cx, cy)
	}
	if r.Right() != 180 || r.Bottom() != 380 {
		t.Errorf("edges = (%d, %d), expected (180, 380)", r.Right(), r.Bottom())
	}
}

func TestRectEmpty(t *testing.T) {
	for _, r := range []Rect{NewRect(0, 0, 0, 5), NewRect(0, 0, 5, -1)} {
		if !r.Empty() {
			t.Errorf("%+v should be empty", r)
		}
	}
	if NewRect(3, 3, 1, 1).Empty() {
		t.Error("1x1 rect is not empty")
	}
}

func TestScale(t *testing.T) {
	if got := Scale(240, 480, 80); got != 40 {
		t.Errorf("Scale(240, 480, 80) = %d, expected 40", got)
	}
	if got := Scale(10, 0, 80); got != 0 {
		t.Errorf("Scale with zero extent = %d, expected 0", got)
	}
}
