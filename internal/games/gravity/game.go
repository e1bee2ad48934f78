// Package gravity implements a side-scrolling runner where the player flips
// the direction of gravity to land on the faces of scrolling columns.
package gravity

import (
	"github.com/vovakirdan/gravflip/internal/config"
	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/registry"
)

// Variant selects the platform layout.
type Variant int

const (
	// VariantStandard gives every column a passable opening.
	VariantStandard Variant = iota
	// VariantClassic keeps full-height walls with no opening.
	VariantClassic
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game runs one gravity runner session through the Running, GameOver and
// Terminated phases.
type Game struct {
	variant  Variant
	override *config.GravityConfig

	runtime core.RuntimeConfig
	cfg     config.GravityConfig
	runSeed int64 // Seed of the current run
	runs    int   // Runs started since the first Reset

	player     *Player
	platforms  *PlatformStream
	background *Background

	score  int
	tick   int
	phase  core.Phase
	paused bool
}

// New creates a game that loads its tuning on Reset.
func New(variant Variant) *Game {
	return &Game{variant: variant}
}

// NewWithConfig creates a game with fixed tuning, skipping the file search.
func NewWithConfig(cfg config.GravityConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "gravity-classic"
	}
	return "gravity"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Gravity Flip (classic walls)"
	}
	return "Gravity Flip"
}

// Reset starts a fresh session: new player at the spawn point, empty
// platform stream, score zero, phase Running.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.resolveConfig()
	g.runs = 0
	g.startRun(runtime.Seed)
}

func (g *Game) resolveConfig() config.GravityConfig {
	if g.override != nil {
		return *g.override
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultGravityConfig()
	}
	if g.variant == VariantClassic {
		cfg = cfg.Classic()
	}
	return cfg
}

// startRun reinitializes every entity. Each run after the first derives its
// seed from the session seed so a session replays identically.
func (g *Game) startRun(seed int64) {
	g.runSeed = seed
	g.runs++

	g.player = NewPlayer(g.cfg.Player, g.cfg.Physics)
	if g.platforms == nil {
		g.platforms = NewPlatformStream(seed, g.cfg)
	} else {
		g.platforms.Reset(seed)
	}
	g.background = NewBackground(g.cfg.Field.Width, g.cfg.Background.Layers)

	g.score = 0
	g.tick = 0
	g.phase = core.PhaseRunning
	g.paused = false
}

// Step advances the session by one tick.
//
// Order within a running tick: gravity toggle, platform scroll and spawn,
// player physics, at most one collision, bounds check, score.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	if in.Has(core.ActionQuit) {
		g.phase = core.PhaseTerminated
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case core.PhaseTerminated:
		return core.StepResult{State: g.State()}
	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.startRun(g.runtime.Seed + int64(g.runs))
			events = append(events, core.EventRestart)
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if in.Has(core.ActionFlip) {
		g.player.ToggleGravity()
		events = append(events, core.EventFlip)
	}

	g.platforms.Update()
	g.background.Update(g.cfg.Physics.ScrollSpeed)

	g.player.Advance()
	if hit, ok := FirstHit(g.player.Entity(), g.platforms.Entities()); ok {
		g.player.ResolveCollision(hit.Bounds)
	}
	g.player.CheckBounds(g.cfg.Field.Height)

	if g.player.Alive() {
		g.score++
	} else {
		g.phase = core.PhaseGameOver
		events = append(events, core.EventDeath)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Display: g.DisplayScore(),
		Tick:    g.tick,
		Phase:   g.phase,
		Paused:  g.paused,
	}
}

// DisplayScore is the score divided by the configured divisor.
func (g *Game) DisplayScore() int {
	return g.score / max(g.cfg.Score.Divisor, 1)
}

// Config returns the tuning in effect.
func (g *Game) Config() config.GravityConfig {
	return g.cfg
}

// RunSeed returns the seed of the current run, used to record replays.
func (g *Game) RunSeed() int64 {
	return g.runSeed
}

// Player returns the player entity.
func (g *Game) Player() *Player {
	return g.player
}

// PlatformStream returns the platform stream.
func (g *Game) PlatformStream() *PlatformStream {
	return g.platforms
}

// Background returns the parallax layers.
func (g *Game) Background() *Background {
	return g.background
}

// Entities returns the live entities to draw, platforms first.
func (g *Game) Entities() []Entity {
	all := append(g.platforms.Entities(), g.player.Entity())
	return Live(all)
}

var _ registry.Game = (*Game)(nil)

func init() {
	registry.Register("gravity", func() registry.Game {
		return New(VariantStandard)
	})
	registry.Register("gravity-classic", func() registry.Game {
		return New(VariantClassic)
	})
}
