package shooter

import (
	"github.com/vovakirdan/skyraid/internal/core"
)

// Image is a sprite handle that may still be loading.
type Image interface {
	Ready() bool
}

// Canvas is the raster surface a game frame is painted on.
// Coordinates are surface pixels.
type Canvas interface {
	Clear()
	DrawImage(img Image, r core.Rect)
	FillRect(r core.Rect, c core.Color)
}

// Cue identifies a one-shot sound.
type Cue int

const (
	CueEnemyFire Cue = iota
	CueEnemyDestroyed
	CueObstacleDestroyed
)

// String returns the cue name used for asset lookup and logs.
func (c Cue) String() string {
	switch c {
	case CueEnemyFire:
		return "enemy_fire"
	case CueEnemyDestroyed:
		return "enemy_destroyed"
	case CueObstacleDestroyed:
		return "obstacle_destroyed"
	default:
		return "unknown"
	}
}

// AudioSink plays cues. Play must not block.
type AudioSink interface {
	Play(cue Cue)
}

type silentAudio struct{}

func (silentAudio) Play(Cue) {}

// Assets are the five sprite handles a run draws with.
type Assets struct {
	Player       Image
	PlayerBullet Image
	Enemy        Image
	EnemyBullet  Image
	Obstacle     Image
}

// AllReady reports whether every handle is present and loaded.
func (a Assets) AllReady() bool {
	for _, img := range a.list() {
		if img == nil || !img.Ready() {
			return false
		}
	}
	return true
}

// ForKind returns the handle used for new entities of kind k.
func (a Assets) ForKind(k Kind) Image {
	switch k {
	case KindPlayer:
		return a.Player
	case KindPlayerBullet:
		return a.PlayerBullet
	case KindEnemy:
		return a.Enemy
	case KindEnemyBullet:
		return a.EnemyBullet
	case KindObstacle:
		return a.Obstacle
	default:
		return nil
	}
}

func (a Assets) list() []Image {
	return []Image{a.Player, a.PlayerBullet, a.Enemy, a.EnemyBullet, a.Obstacle}
}

// Glyph is an always-ready image for character cell surfaces.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// Ready implements Image.
func (Glyph) Ready() bool { return true }

// GlyphAssets returns the terminal sprite set.
func GlyphAssets() Assets {
	return Assets{
		Player:       Glyph{Rune: '▲', Color: core.ColorCyan},
		PlayerBullet: Glyph{Rune: '│', Color: core.ColorYellow},
		Enemy:        Glyph{Rune: '▼', Color: core.ColorRed},
		EnemyBullet:  Glyph{Rune: '●', Color: core.ColorMagenta},
		Obstacle:     Glyph{Rune: '▓', Color: core.ColorWhite},
	}
}
