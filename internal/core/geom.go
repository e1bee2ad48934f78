// Package core provides fundamental types shared by the game simulation and
// its frontends. It has no frontend dependencies (no Bubble Tea, no Ebiten)
// so game logic stays pure and testable.
package core

// Rect is an axis-aligned bounding box in logical units.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCenter creates a w x h rectangle centered on (cx, cy).
func RectFromCenter(cx, cy, w, h int) Rect {
	return NewRect(cx-w/2, cy-h/2, w, h)
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the center point, rounded toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether r and other share any area. Rectangles that
// only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return spansOverlap(r.X, r.Right(), other.X, other.Right()) &&
		spansOverlap(r.Y, r.Bottom(), other.Y, other.Bottom())
}

// spansOverlap reports whether the half-open spans [a0, a1) and [b0, b1) meet.
func spansOverlap(a0, a1, b0, b1 int) bool {
	return a0 < b1 && b0 < a1
}

// Scale maps v from a logical extent onto a target extent, truncating.
// Used to project 480x720 play-field units onto terminal cells.
func Scale(v, from, to int) int {
	if from <= 0 {
		return 0
	}
	return v * to / from
}
