package gravity

// Background is the cosmetic parallax: each layer scrolls at a fraction of
// the base speed and wraps after one field width. It never touches gameplay.
type Background struct {
	fractions []float64
	offsets   []float64
	width     float64
}

// NewBackground creates layers for the given speed fractions.
func NewBackground(fieldWidth int, fractions []float64) *Background {
	return &Background{
		fractions: append([]float64(nil), fractions...),
		offsets:   make([]float64, len(fractions)),
		width:     float64(fieldWidth),
	}
}

// Update scrolls every layer.
func (b *Background) Update(scrollSpeed float64) {
	for i, f := range b.fractions {
		b.offsets[i] -= scrollSpeed * f
		if b.offsets[i] <= -b.width {
			b.offsets[i] += b.width
		}
	}
}

// Layers returns the number of layers.
func (b *Background) Layers() int {
	return len(b.offsets)
}

// Offset returns the current offset of a layer, in (-width, 0].
func (b *Background) Offset(layer int) float64 {
	return b.offsets[layer]
}

// Tiles returns the two x positions a layer is drawn at so the pair covers
// the field without a seam.
func (b *Background) Tiles(layer int) [2]float64 {
	off := b.offsets[layer]
	return [2]float64{off, off + b.width}
}
