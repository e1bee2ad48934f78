package gravity

import (
	"fmt"

	"github.com/vovakirdan/gravflip/internal/core"
)

var (
	playerGlyphs = []rune{'◐', '◓', '◑'}
	playerColors = []core.Color{core.ColorRed, core.ColorOrange, core.ColorPink}
	layerGlyphs  = []rune{'·', '.'}
	layerColors  = []core.Color{core.ColorNavy, core.ColorGray}
)

// starSpacing is the horizontal distance between background dots, in field
// pixels, for the nearest layer. Farther layers are sparser.
const starSpacing = 48

// Render draws the field scaled onto the character grid.
func (g *Game) Render(dst *core.Screen) {
	if g.player == nil {
		return
	}
	g.renderBackground(dst)

	for _, e := range g.platforms.Entities() {
		dst.FillRect(g.toScreen(e.Bounds, dst), '█', core.ColorGreen)
	}

	frame := g.player.Frame() % len(playerGlyphs)
	dst.FillRect(g.toScreen(g.player.Bounds(), dst), playerGlyphs[frame], playerColors[frame])

	g.renderHUD(dst)

	switch {
	case g.phase == core.PhaseGameOver:
		g.renderGameOver(dst)
	case g.paused:
		drawPanel(dst, []string{"PAUSED", "", "P resume"}, core.ColorYellow)
	}
}

// toScreen maps a field rect onto the screen. Non-empty rects keep at least
// one cell so thin objects stay visible.
func (g *Game) toScreen(r core.Rect, dst *core.Screen) core.Rect {
	fw, fh := g.cfg.Field.Width, g.cfg.Field.Height
	w, h := dst.Width(), dst.Height()

	x0, x1 := core.Scale(r.X, fw, w), core.Scale(r.Right(), fw, w)
	y0, y1 := core.Scale(r.Y, fh, h), core.Scale(r.Bottom(), fh, h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func (g *Game) renderBackground(dst *core.Screen) {
	fw, fh := g.cfg.Field.Width, g.cfg.Field.Height
	for layer := 0; layer < g.background.Layers(); layer++ {
		glyph := layerGlyphs[layer%len(layerGlyphs)]
		color := layerColors[layer%len(layerColors)]
		spacing := starSpacing * (g.background.Layers() - layer)

		for _, origin := range g.background.Tiles(layer) {
			for i, x := 0, 0; x < fw; i, x = i+1, x+spacing {
				// Scatter rows with a fixed stride so the pattern tiles.
				y := (i*7919 + layer*104729) % fh
				sx := core.Scale(int(origin)+x, fw, dst.Width())
				sy := core.Scale(y, fh, dst.Height())
				dst.SetColored(sx, sy, glyph, color)
			}
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	arrow := "↓"
	if g.player.Direction() == Up {
		arrow = "↑"
	}
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.DisplayScore()), core.ColorWhite)
	dst.DrawText(dst.Width()-3, 0, arrow, core.ColorCyan)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	drawPanel(dst, []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d", g.DisplayScore()),
		"",
		"R restart  Q quit",
	}, core.ColorRed)
}

// drawPanel draws a cleared, boxed block of centered lines in the middle of
// the screen.
func drawPanel(dst *core.Screen, lines []string, c core.Color) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	boxW := inner + 6
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}
