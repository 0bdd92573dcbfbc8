package shooter

import (
	"testing"

	"github.com/vovakirdan/skyraid/internal/core"
)

func TestEntityOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Entity
		expected bool
	}{
		{
			name:     "bullet inside enemy",
			a:        NewEntity(KindPlayerBullet, 100, 100, 6, 20, nil),
			b:        NewEntity(KindEnemy, 80, 90, 70, 70, nil),
			expected: true,
		},
		{
			name:     "touching horizontally",
			a:        NewEntity(KindPlayerBullet, 150, 100, 6, 20, nil),
			b:        NewEntity(KindEnemy, 80, 90, 70, 70, nil),
			expected: false,
		},
		{
			name:     "touching vertically",
			a:        NewEntity(KindPlayerBullet, 100, 160, 6, 20, nil),
			b:        NewEntity(KindEnemy, 80, 90, 70, 70, nil),
			expected: false,
		},
		{
			name:     "far apart",
			a:        NewEntity(KindObstacle, 0, 0, 70, 70, nil),
			b:        NewEntity(KindPlayer, 300, 800, 70, 70, nil),
			expected: false,
		},
		{
			name:     "wide obstacle over player",
			a:        NewEntity(KindObstacle, 10, 760, 400, 70, nil),
			b:        NewEntity(KindPlayer, 265, 800, 70, 70, nil),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlap(&tc.b); got != tc.expected {
				t.Errorf("a.Overlap(b) = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlap(&tc.a); got != tc.expected {
				t.Errorf("b.Overlap(a) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

// fakeImage is a sprite handle whose readiness tests control.
type fakeImage struct{ ready bool }

func (f *fakeImage) Ready() bool { return f.ready }

// recordingCanvas remembers draw calls.
type recordingCanvas struct {
	clears int
	images []core.Rect
	fills  []core.Rect
}

func (c *recordingCanvas) Clear() { c.clears++ }

func (c *recordingCanvas) DrawImage(_ Image, r core.Rect) { c.images = append(c.images, r) }

func (c *recordingCanvas) FillRect(r core.Rect, _ core.Color) { c.fills = append(c.fills, r) }

func TestEntityDrawFallback(t *testing.T) {
	tests := []struct {
		name       string
		img        Image
		wantImages int
		wantFills  int
	}{
		{"no image", nil, 0, 1},
		{"image still loading", &fakeImage{ready: false}, 0, 1},
		{"image ready", &fakeImage{ready: true}, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &recordingCanvas{}
			e := NewEntity(KindEnemy, 10, 20, 70, 70, tc.img)
			e.Draw(c)

			if len(c.images) != tc.wantImages || len(c.fills) != tc.wantFills {
				t.Errorf("images=%d fills=%d, expected %d/%d", len(c.images), len(c.fills), tc.wantImages, tc.wantFills)
			}
			drawn := append(c.images, c.fills...)
			if drawn[0] != core.NewRect(10, 20, 70, 70) {
				t.Errorf("drawn at %+v", drawn[0])
			}
		})
	}
}

func TestAssetsAllReady(t *testing.T) {
	if !GlyphAssets().AllReady() {
		t.Error("glyph assets should always be ready")
	}

	loading := &fakeImage{}
	a := GlyphAssets()
	a.Obstacle = loading
	if a.AllReady() {
		t.Error("one loading image should block readiness")
	}
	loading.ready = true
	if !a.AllReady() {
		t.Error("all images loaded should report ready")
	}

	a.Enemy = nil
	if a.AllReady() {
		t.Error("a missing image should block readiness")
	}
}
