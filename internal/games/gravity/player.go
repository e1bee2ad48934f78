package gravity

import (
	"math"

	"github.com/vovakirdan/gravflip/internal/config"
	"github.com/vovakirdan/gravflip/internal/core"
)

// Direction is the sign applied to gravity. It decides which screen edge
// counts as "down" for landing.
type Direction int

const (
	Down Direction = 1
	Up   Direction = -1
)

// String returns "down" or "up".
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Player is the gravity-flipping sprite.
type Player struct {
	entity    Entity
	velocity  float64
	direction Direction
	anim      float64 // Fractional frame index

	gravity   float64
	tolerance int
	frames    int
	animSpeed float64
}

// NewPlayer creates a player centered on the configured start point,
// falling down with zero velocity.
func NewPlayer(pc config.PlayerConfig, phys config.PhysicsConfig) *Player {
	return &Player{
		entity: Entity{
			Kind:   KindPlayer,
			Bounds: core.RectFromCenter(pc.StartX, pc.StartY, pc.Size, pc.Size),
		},
		direction: Down,
		gravity:   phys.Gravity,
		tolerance: phys.Tolerance,
		frames:    max(pc.Frames, 1),
		animSpeed: pc.AnimSpeed,
	}
}

// Advance runs one tick of animation and physics. Gravity is applied
// unconditionally; the position moves by the truncated velocity.
func (p *Player) Advance() {
	p.anim = math.Mod(p.anim+p.animSpeed, float64(p.frames))
	p.entity.Frame = int(p.anim)

	p.velocity += p.gravity * float64(p.direction)
	p.entity.Bounds.Y += int(p.velocity)
}

// CheckBounds kills the player once it leaves the field through the edge it
// is falling toward. It returns whether the player is still alive.
func (p *Player) CheckBounds(fieldHeight int) bool {
	switch p.direction {
	case Down:
		if p.entity.Bounds.Bottom() > fieldHeight {
			p.entity.Dead = true
		}
	case Up:
		if p.entity.Bounds.Y < 0 {
			p.entity.Dead = true
		}
	}
	return !p.entity.Dead
}

// ResolveCollision handles contact with a platform segment that overlaps the
// player. Touching the face opposite the direction of travel within the
// tolerance is a landing: the player snaps onto the face and stops.
// Anything else is a crash. It returns whether the player landed.
func (p *Player) ResolveCollision(platform core.Rect) bool {
	b := &p.entity.Bounds
	switch {
	case p.direction == Down && b.Bottom()-platform.Y <= p.tolerance:
		b.Y = platform.Y - b.H
	case p.direction == Up && platform.Bottom()-b.Y <= p.tolerance:
		b.Y = platform.Bottom()
	default:
		p.entity.Dead = true
		return false
	}
	p.velocity = 0
	return true
}

// ToggleGravity flips the gravity direction without touching velocity.
func (p *Player) ToggleGravity() {
	p.direction = -p.direction
}

// Kill marks the player dead.
func (p *Player) Kill() {
	p.entity.Dead = true
}

// Alive reports whether the player is still in play.
func (p *Player) Alive() bool {
	return !p.entity.Dead
}

// Bounds returns the player's bounding box.
func (p *Player) Bounds() core.Rect {
	return p.entity.Bounds
}

// Velocity returns the vertical velocity (positive is downward on screen).
func (p *Player) Velocity() float64 {
	return p.velocity
}

// Direction returns the current gravity direction.
func (p *Player) Direction() Direction {
	return p.direction
}

// Frame returns the sprite frame index in [0, frames).
func (p *Player) Frame() int {
	return p.entity.Frame
}

// Entity returns the drawable view of the player.
func (p *Player) Entity() Entity {
	return p.entity
}
