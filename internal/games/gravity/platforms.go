package gravity

import (
	"math/rand"

	"github.com/gammazero/deque"

	"github.com/vovakirdan/gravflip/internal/config"
	"github.com/vovakirdan/gravflip/internal/core"
)

// Platform is a vertical column scrolling left. With a zero gap it is one
// full-height wall; otherwise it is split into an upper and a lower segment
// around a passable opening.
type Platform struct {
	X         float64 // Left edge, decreasing every tick
	Width     int
	Height    int
	GapY      int // Top of the opening
	GapHeight int
}

// Left returns the truncated left edge used for collision.
func (p *Platform) Left() int {
	return int(p.X)
}

// Right returns the truncated right edge.
func (p *Platform) Right() int {
	return p.Left() + p.Width
}

// Segments returns the solid parts of the column, top first.
func (p *Platform) Segments() []core.Rect {
	x := p.Left()
	if p.GapHeight <= 0 {
		return []core.Rect{core.NewRect(x, 0, p.Width, p.Height)}
	}
	bottomY := p.GapY + p.GapHeight
	segs := make([]core.Rect, 0, 2)
	if p.GapY > 0 {
		segs = append(segs, core.NewRect(x, 0, p.Width, p.GapY))
	}
	if bottomY < p.Height {
		segs = append(segs, core.NewRect(x, bottomY, p.Width, p.Height-bottomY))
	}
	return segs
}

// PlatformStream spawns columns at the right edge on a fixed cadence,
// scrolls them left, and retires them once they leave the field.
type PlatformStream struct {
	live    deque.Deque[*Platform]
	cursor  float64 // Distance-based spawn cursor
	fieldW  int
	fieldH  int
	speed   float64
	cfg     config.PlatformConfig
	rng     *rand.Rand
	spawned int
}

// NewPlatformStream creates an empty stream with its spawn cursor at the
// right edge of the field.
func NewPlatformStream(seed int64, cfg config.GravityConfig) *PlatformStream {
	ps := &PlatformStream{
		fieldW: cfg.Field.Width,
		fieldH: cfg.Field.Height,
		speed:  cfg.Physics.ScrollSpeed,
		cfg:    cfg.Platforms,
	}
	ps.Reset(seed)
	return ps
}

// Reset removes every platform and rewinds the spawn cursor and RNG.
func (ps *PlatformStream) Reset(seed int64) {
	ps.live.Clear()
	ps.rng = rand.New(rand.NewSource(seed))
	ps.cursor = float64(ps.fieldW)
	ps.spawned = 0
}

// Update runs one tick: scroll, spawn, then drop off-screen platforms.
func (ps *PlatformStream) Update() {
	ps.AdvanceAll(ps.speed)
	ps.MaybeSpawn()
	ps.prune()
}

// AdvanceAll moves every live platform left by speed.
func (ps *PlatformStream) AdvanceAll(speed float64) {
	for i := 0; i < ps.live.Len(); i++ {
		ps.live.At(i).X -= speed
	}
}

// MaybeSpawn moves the cursor by the scroll speed and, once it has covered
// one spacing, spawns a column at the right edge and rewinds the cursor.
// It returns whether a platform was spawned.
func (ps *PlatformStream) MaybeSpawn() bool {
	ps.cursor -= ps.speed
	if ps.cursor > float64(ps.fieldW-ps.cfg.Spacing) {
		return false
	}
	ps.cursor = float64(ps.fieldW)
	ps.live.PushBack(ps.newPlatform())
	ps.spawned++
	return true
}

func (ps *PlatformStream) newPlatform() *Platform {
	p := &Platform{
		X:         float64(ps.fieldW),
		Width:     ps.cfg.Width,
		Height:    ps.fieldH,
		GapHeight: ps.cfg.GapHeight,
	}
	if p.GapHeight > 0 {
		minY := ps.cfg.GapMargin
		maxY := ps.fieldH - ps.cfg.GapMargin - p.GapHeight
		p.GapY = minY
		if maxY > minY {
			p.GapY = minY + ps.rng.Intn(maxY-minY+1)
		}
	}
	return p
}

// prune retires platforms from the front of the queue once their right
// edge has passed the left edge of the field. Platforms spawn in order, so
// the oldest one always leaves first.
func (ps *PlatformStream) prune() {
	for ps.live.Len() > 0 && ps.live.Front().Right() <= 0 {
		ps.live.PopFront()
	}
}

// Cursor returns the spawn cursor position.
func (ps *PlatformStream) Cursor() float64 {
	return ps.cursor
}

// Len returns the number of live platforms.
func (ps *PlatformStream) Len() int {
	return ps.live.Len()
}

// Spawned returns how many platforms have been created since the last reset.
func (ps *PlatformStream) Spawned() int {
	return ps.spawned
}

// Platforms returns the live platforms, oldest first.
func (ps *PlatformStream) Platforms() []Platform {
	out := make([]Platform, 0, ps.live.Len())
	for i := 0; i < ps.live.Len(); i++ {
		out = append(out, *ps.live.At(i))
	}
	return out
}

// Entities returns every solid segment as an entity, oldest platform first.
func (ps *PlatformStream) Entities() []Entity {
	var out []Entity
	for i := 0; i < ps.live.Len(); i++ {
		for _, seg := range ps.live.At(i).Segments() {
			out = append(out, Entity{Kind: KindPlatform, Bounds: seg})
		}
	}
	return out
}

// add inserts a platform directly; tests use it to stage collisions.
func (ps *PlatformStream) add(p Platform) {
	ps.live.PushBack(&p)
}
