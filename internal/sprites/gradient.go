package sprites

import (
	"image"
	"image/color"
)

// LayerColors are the top and bottom colors of each background layer,
// farthest first. Nearer layers are translucent so the far one shows through.
var LayerColors = [][2]color.RGBA{
	{{R: 12, G: 14, B: 40, A: 255}, {R: 60, G: 24, B: 84, A: 255}},
	{{R: 40, G: 90, B: 160, A: 0}, {R: 40, G: 90, B: 160, A: 96}},
}

// Gradient returns a w x h image blending top into bottom row by row.
func Gradient(w, h int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := lerp(top, bottom, y, h-1)
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// lerp mixes a and b at step/steps, premultiplying for image.RGBA.
func lerp(a, b color.RGBA, step, steps int) color.RGBA {
	if steps <= 0 {
		return premultiply(a)
	}
	mix := func(x, y uint8) uint8 {
		return uint8((int(x)*(steps-step) + int(y)*step) / steps)
	}
	return premultiply(color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	})
}

func premultiply(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(int(c.R) * int(c.A) / 255),
		G: uint8(int(c.G) * int(c.A) / 255),
		B: uint8(int(c.B) * int(c.A) / 255),
		A: c.A,
	}
}

// Layers renders one gradient per entry of LayerColors at the given size.
func Layers(w, h int) []*image.RGBA {
	out := make([]*image.RGBA, len(LayerColors))
	for i, c := range LayerColors {
		out[i] = Gradient(w, h, c[0], c[1])
	}
	return out
}
