// Package window runs the gravity runner in a desktop window with ebiten.
// The field is drawn 1:1 in logical pixels; ebiten scales it to the window.
package window

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/gravflip/internal/audio"
	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/games/gravity"
	"github.com/vovakirdan/gravflip/internal/replay"
	"github.com/vovakirdan/gravflip/internal/sprites"
	"github.com/vovakirdan/gravflip/internal/storage"
)

// Debug font cell size used for text placement.
const (
	glyphW = 6
	glyphH = 16
)

var (
	platformColor = color.RGBA{R: 70, G: 200, B: 110, A: 255}
	panelColor    = color.RGBA{A: 180}
)

var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionFlip},
	{ebiten.KeyW, core.ActionFlip},
	{ebiten.KeyArrowUp, core.ActionFlip},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// Options are the collaborators of a window session. Every field is optional.
type Options struct {
	Store      *storage.Store
	Audio      audio.Player
	Logger     *log.Logger
	Pilot      string
	Replay     *storage.Replay
	SpritePath string  // PNG strip to load instead of the generated one
	Scale      float64 // Window size relative to the field, default 1
}

// Frontend adapts a gravity game to ebiten.Game.
type Frontend struct {
	game   *gravity.Game
	config core.RuntimeConfig
	opts   Options

	frames []*ebiten.Image
	layers []*ebiten.Image

	rec      replay.Recorder
	script   *replay.Script
	state    core.GameState
	lastSave int64
}

// New resets game and prepares its images. A missing or malformed sprite
// strip is an error.
func New(game *gravity.Game, cfg core.RuntimeConfig, opts Options) (*Frontend, error) {
	if opts.Replay != nil {
		cfg.Seed = opts.Replay.Seed
	} else if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.NopPlayer{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	var strip image.Image = sprites.Generate()
	if opts.SpritePath != "" {
		img, err := sprites.Load(opts.SpritePath)
		if err != nil {
			return nil, fmt.Errorf("window: %w", err)
		}
		strip = img
	}
	frames, err := sprites.Split(strip)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	game.Reset(cfg)
	field := game.Config().Field

	f := &Frontend{
		game:   game,
		config: cfg,
		opts:   opts,
		state:  game.State(),
	}
	for _, fr := range frames {
		f.frames = append(f.frames, ebiten.NewImageFromImage(fr))
	}
	for _, l := range sprites.Layers(field.Width, field.Height) {
		f.layers = append(f.layers, ebiten.NewImageFromImage(l))
	}
	if opts.Replay != nil {
		f.script = replay.NewScript(opts.Replay.Flips)
	}
	return f, nil
}

// Update reads just-pressed keys and advances the game one tick.
func (f *Frontend) Update() error {
	in := core.NewInputFrame()
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			in.Set(ka.action)
		}
	}
	if f.script != nil {
		in = f.script.Input(f.state, in)
	}

	res := f.game.Step(in)
	f.state = res.State
	f.rec.Observe(res)
	for _, e := range res.Events {
		switch e {
		case core.EventFlip:
			f.opts.Audio.Play(audio.CueJump)
		case core.EventDeath:
			f.opts.Audio.Play(audio.CueDeath)
			if f.opts.Replay == nil {
				f.lastSave = replay.Save(f.opts.Store, f.rec.Build(f.game, f.config.Seed, f.opts.Pilot), f.opts.Logger)
			}
		case core.EventRestart:
			f.lastSave = 0
		}
	}

	if f.state.Terminated() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the field: background, platforms, player, then text.
func (f *Frontend) Draw(screen *ebiten.Image) {
	bg := f.game.Background()
	for i := 0; i < bg.Layers() && i < len(f.layers); i++ {
		for _, x := range bg.Tiles(i) {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, 0)
			screen.DrawImage(f.layers[i], op)
		}
	}

	for _, e := range f.game.PlatformStream().Entities() {
		r := e.Bounds
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), platformColor, false)
	}

	if p := f.game.Player(); p != nil && len(f.frames) > 0 {
		frame := f.frames[p.Frame()%len(f.frames)]
		b := p.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(b.W)/float64(frame.Bounds().Dx()), float64(b.H)/float64(frame.Bounds().Dy()))
		op.GeoM.Translate(float64(b.X), float64(b.Y))
		screen.DrawImage(frame, op)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", f.game.DisplayScore()), 8, 8)
	if f.opts.Replay != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("replay #%d  pilot %s", f.opts.Replay.ID, f.opts.Replay.Pilot), 8, 8+glyphH)
	}

	switch {
	case f.state.GameOver():
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", f.state.Display), "", "R restart  Q quit"}
		if f.opts.Replay != nil {
			lines[3] = "Q quit"
		}
		if f.lastSave != 0 {
			lines = append(lines, fmt.Sprintf("saved as replay #%d", f.lastSave))
		}
		f.drawPanel(screen, lines)
	case f.state.Paused:
		f.drawPanel(screen, []string{"PAUSED", "", "P resume"})
	}
}

// drawPanel prints lines centered on a dimmed box in the middle of the field.
func (f *Frontend) drawPanel(screen *ebiten.Image, lines []string) {
	field := f.game.Config().Field
	widest := 0
	for _, l := range lines {
		widest = max(widest, len(l))
	}
	w := (widest + 4) * glyphW
	h := (len(lines) + 2) * glyphH
	x0 := (field.Width - w) / 2
	y0 := (field.Height - h) / 2
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(w), float32(h), panelColor, false)

	for i, l := range lines {
		x := (field.Width - len(l)*glyphW) / 2
		ebitenutil.DebugPrintAt(screen, l, x, y0+(i+1)*glyphH)
	}
}

// Layout keeps the logical field size regardless of the window size.
func (f *Frontend) Layout(_, _ int) (int, int) {
	field := f.game.Config().Field
	return field.Width, field.Height
}

// State returns the last observed game state.
func (f *Frontend) State() core.GameState {
	return f.state
}

// Run opens a window and plays game until it is closed or the player quits.
func Run(game *gravity.Game, cfg core.RuntimeConfig, opts Options) error {
	f, err := New(game, cfg, opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	field := game.Config().Field
	ebiten.SetWindowSize(int(float64(field.Width)*scale), int(float64(field.Height)*scale))
	ebiten.SetWindowTitle(game.Title())
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(f); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
