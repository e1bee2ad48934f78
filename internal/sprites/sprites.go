// Package sprites builds the player's 3-frame sprite strip and splits a
// strip back into frames for the window frontend.
package sprites

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"
)

const (
	FrameSize    = 40
	FrameCount   = 3
	CornerRadius = 6
)

// FrameColors are the fill colors of the frames, left to right.
var FrameColors = []color.RGBA{
	{R: 255, G: 100, B: 100, A: 255},
	{R: 255, G: 180, B: 100, A: 255},
	{R: 255, G: 100, B: 180, A: 255},
}

// Generate rasterizes the strip: FrameCount rounded squares side by side on
// a transparent background.
func Generate() *image.RGBA {
	strip := image.NewRGBA(image.Rect(0, 0, FrameSize*FrameCount, FrameSize))
	for i, c := range FrameColors {
		z := vector.NewRasterizer(FrameSize, FrameSize)
		roundedRect(z, FrameSize, FrameSize, CornerRadius)
		dst := image.Rect(i*FrameSize, 0, (i+1)*FrameSize, FrameSize)
		z.Draw(strip, dst, image.NewUniform(c), image.Point{})
	}
	return strip
}

// roundedRect traces a w x h rectangle with quadratic corners of radius r.
func roundedRect(z *vector.Rasterizer, w, h, r float32) {
	z.MoveTo(r, 0)
	z.LineTo(w-r, 0)
	z.QuadTo(w, 0, w, r)
	z.LineTo(w, h-r)
	z.QuadTo(w, h, w-r, h)
	z.LineTo(r, h)
	z.QuadTo(0, h, 0, h-r)
	z.LineTo(0, r)
	z.QuadTo(0, 0, r, 0)
	z.ClosePath()
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("sprites: encode png: %w", err)
	}
	return nil
}

// Save writes the generated strip to path, creating parent directories.
func Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("sprites: create dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sprites: create %s: %w", path, err)
	}
	if err := WritePNG(f, Generate()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load decodes a PNG strip from path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprites: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprites: decode %s: %w", path, err)
	}
	return img, nil
}

// Split cuts a horizontal strip into square frames as tall as the strip.
func Split(strip image.Image) ([]*image.RGBA, error) {
	b := strip.Bounds()
	size := b.Dy()
	if size == 0 || b.Dx()%size != 0 {
		return nil, fmt.Errorf("sprites: strip %dx%d is not a row of square frames", b.Dx(), b.Dy())
	}

	frames := make([]*image.RGBA, 0, b.Dx()/size)
	for x := b.Min.X; x < b.Max.X; x += size {
		frame := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.Draw(frame, frame.Bounds(), strip, image.Pt(x, b.Min.Y), draw.Src)
		frames = append(frames, frame)
	}
	return frames, nil
}
