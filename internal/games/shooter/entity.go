package shooter

import (
	"time"

	"github.com/vovakirdan/skyraid/internal/core"
)

// Kind tags what an entity is.
type Kind int

const (
	KindPlayer Kind = iota
	KindPlayerBullet
	KindEnemy
	KindEnemyBullet
	KindObstacle
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlayerBullet:
		return "player_bullet"
	case KindEnemy:
		return "enemy"
	case KindEnemyBullet:
		return "enemy_bullet"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Fallback fill colors when a sprite is missing or still loading.
var fallbackColors = map[Kind]core.Color{
	KindPlayer:       core.ColorBrightCyan,
	KindPlayerBullet: core.ColorBrightYellow,
	KindEnemy:        core.ColorBrightRed,
	KindEnemyBullet:  core.ColorOrange,
	KindObstacle:     core.ColorGray,
}

// Entity is a positioned rectangle with optional velocity and health.
// Width and height never change after creation.
type Entity struct {
	Kind     Kind
	X, Y     float64
	W, H     float64
	DX, DY   float64
	Health   int           // Enemies and obstacles only
	LastShot time.Duration // Enemies only, session clock
	Image    Image
}

// NewEntity creates an entity at rest.
func NewEntity(kind Kind, x, y, w, h float64, img Image) Entity {
	return Entity{Kind: kind, X: x, Y: y, W: w, H: h, Image: img}
}

// Rect returns the entity's bounding box.
func (e *Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Overlap reports whether two entities intersect. Touching edges do not count.
func (e *Entity) Overlap(other *Entity) bool {
	return e.Rect().Intersects(other.Rect())
}

// Draw paints the sprite, or a solid rectangle when the sprite is not ready.
func (e *Entity) Draw(c Canvas) {
	if e.Image != nil && e.Image.Ready() {
		c.DrawImage(e.Image, e.Rect())
		return
	}
	c.FillRect(e.Rect(), fallbackColors[e.Kind])
}

// compact removes entities whose dead flag is set, keeping order.
func compact(list []Entity, dead []bool) []Entity {
	n := 0
	for i := range list {
		if !dead[i] {
			list[n] = list[i]
			n++
		}
	}
	clear(list[n:])
	return list[:n]
}

// filter keeps entities for which keep returns true, preserving order.
func filter(list []Entity, keep func(e *Entity) bool) []Entity {
	n := 0
	for i := range list {
		if keep(&list[i]) {
			list[n] = list[i]
			n++
		}
	}
	clear(list[n:])
	return list[:n]
}
