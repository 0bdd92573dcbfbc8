package desktop

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/games/shooter"
)

// spriteFiles names the image file of each entity kind.
var spriteFiles = map[shooter.Kind]string{
	shooter.KindPlayer:       "player.png",
	shooter.KindPlayerBullet: "player_bullet.png",
	shooter.KindEnemy:        "enemy.png",
	shooter.KindEnemyBullet:  "enemy_bullet.png",
	shooter.KindObstacle:     "obstacle.png",
}

// Sprite is an image that decodes in the background. It reports ready
// once decoding has finished, successfully or not; a sprite that failed
// to load draws as a flat rectangle.
type Sprite struct {
	name     string
	fallback core.Color
	src      atomic.Pointer[image.Image]
	settled  atomic.Bool
	img      *ebiten.Image // created on the game goroutine
}

// NewSprite returns an unloaded sprite.
func NewSprite(name string, fallback core.Color) *Sprite {
	return &Sprite{name: name, fallback: fallback}
}

// Ready implements shooter.Image.
func (s *Sprite) Ready() bool {
	return s.settled.Load()
}

// Loaded reports whether decoding succeeded.
func (s *Sprite) Loaded() bool {
	return s.src.Load() != nil
}

func (s *Sprite) set(img image.Image) {
	if img != nil {
		s.src.Store(&img)
	}
	s.settled.Store(true)
}

// image returns the GPU image, uploading the decoded pixels on first use.
// Must be called from Update or Draw.
func (s *Sprite) image() *ebiten.Image {
	if s.img != nil {
		return s.img
	}
	src := s.src.Load()
	if src == nil {
		return nil
	}
	s.img = ebiten.NewImageFromImage(*src)
	return s.img
}

// SpriteSet is the five sprites a run draws with.
type SpriteSet map[shooter.Kind]*Sprite

// NewSpriteSet returns unloaded sprites with the terminal glyph colors as
// fallbacks.
func NewSpriteSet() SpriteSet {
	glyphs := shooter.GlyphAssets()
	set := make(SpriteSet, len(spriteFiles))
	for kind, name := range spriteFiles {
		col := core.ColorWhite
		if g, ok := glyphs.ForKind(kind).(shooter.Glyph); ok {
			col = g.Color
		}
		set[kind] = NewSprite(name, col)
	}
	return set
}

// Assets returns the handles for the game.
func (s SpriteSet) Assets() shooter.Assets {
	return shooter.Assets{
		Player:       s[shooter.KindPlayer],
		PlayerBullet: s[shooter.KindPlayerBullet],
		Enemy:        s[shooter.KindEnemy],
		EnemyBullet:  s[shooter.KindEnemyBullet],
		Obstacle:     s[shooter.KindObstacle],
	}
}

// Load decodes every sprite from fsys concurrently. Failures are logged
// and settle the sprite as a rectangle; the returned error joins them.
func (s SpriteSet) Load(ctx context.Context, fsys fs.FS, logger *log.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	results := make(chan error, len(s))

	for _, sp := range s {
		g.Go(func() error {
			img, err := decodeSprite(ctx, fsys, sp.name)
			if err != nil {
				logger.Warn("sprite unavailable, drawing rectangles", "file", sp.name, "error", err)
				results <- err
			}
			sp.set(img)
			return nil
		})
	}

	_ = g.Wait()
	close(results)

	var errs []error
	for err := range results {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("desktop: load sprites: %w", errors.Join(errs...))
	}
	return nil
}

// settleMissing marks every sprite as failed, for runs without an assets
// directory.
func (s SpriteSet) settleMissing() {
	for _, sp := range s {
		sp.set(nil)
	}
}

func decodeSprite(ctx context.Context, fsys fs.FS, name string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
