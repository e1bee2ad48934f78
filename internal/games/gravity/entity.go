package gravity

import (
	"github.com/samber/lo"

	"github.com/vovakirdan/gravflip/internal/core"
)

// EntityKind tells a frontend which artwork to draw for an entity.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindPlatform
)

// Entity is the drawable part shared by the player and platform segments:
// a bounding box plus the sprite frame to show.
type Entity struct {
	Kind   EntityKind
	Bounds core.Rect
	Frame  int
	Dead   bool
}

// Collides reports whether two entities overlap.
func Collides(a, b Entity) bool {
	return a.Bounds.Intersects(b.Bounds)
}

// FirstHit returns the first entity in iteration order that overlaps e.
func FirstHit(e Entity, others []Entity) (Entity, bool) {
	return lo.Find(others, func(o Entity) bool {
		return Collides(e, o)
	})
}

// Live drops dead entities.
func Live(entities []Entity) []Entity {
	return lo.Filter(entities, func(e Entity, _ int) bool {
		return !e.Dead
	})
}
