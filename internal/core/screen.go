package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a character-cell canvas. Games draw runes and colors into it;
// the terminal frontend turns it into styled output. Writes outside the
// canvas are dropped.
type Screen struct {
	w, h  int
	cells []Cell // row-major
}

// NewScreen creates a blank width x height screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

func (s *Screen) Width() int  { return s.w }
func (s *Screen) Height() int { return s.h }

// Resize changes the dimensions and blanks the canvas.
func (s *Screen) Resize(width, height int) {
	s.w, s.h = max(width, 0), max(height, 0)
	if n := s.w * s.h; cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Cell, n)
	}
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return 0, false
	}
	return y*s.w + x, true
}

// SetColored places a rune with a color at (x, y).
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y), or a blank cell outside the canvas.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// DrawText writes text left to right starting at (x, y), one rune per cell.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawTextCentered draws text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	s.DrawText((s.w-utf8.RuneCountInString(text))/2, y, text, c)
}

// FillRect fills the part of r that lies on the canvas.
func (s *Screen) FillRect(r Rect, fill rune, c Color) {
	x0, x1 := max(r.X, 0), min(r.Right(), s.w)
	y0, y1 := max(r.Y, 0), min(r.Bottom(), s.h)
	cell := Cell{Rune: fill, Color: c}
	for y := y0; y < y1; y++ {
		row := s.cells[y*s.w : (y+1)*s.w]
		for x := x0; x < x1; x++ {
			row[x] = cell
		}
	}
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	left, right := r.X, r.Right()-1
	top, bottom := r.Y, r.Bottom()-1

	for x := left + 1; x < right; x++ {
		s.SetColored(x, top, '─', c)
		s.SetColored(x, bottom, '─', c)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetColored(left, y, '│', c)
		s.SetColored(right, y, '│', c)
	}
	s.SetColored(left, top, '┌', c)
	s.SetColored(right, top, '┐', c)
	s.SetColored(left, bottom, '└', c)
	s.SetColored(right, bottom, '┘', c)
}

// String returns the runes without color, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(len(s.cells) + s.h)
	for i, c := range s.cells {
		if i > 0 && i%s.w == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
