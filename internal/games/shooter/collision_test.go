package shooter

import (
	"testing"
	"time"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     42,
}

// recordingAudio counts played cues.
type recordingAudio struct {
	cues []Cue
}

func (r *recordingAudio) Play(c Cue) { r.cues = append(r.cues, c) }

func (r *recordingAudio) count(c Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

// newStartedGame returns a running Sky Raid session with recorded audio.
func newStartedGame(t *testing.T) (*Game, *recordingAudio) {
	t.Helper()
	g := New()
	audio := &recordingAudio{}
	g.SetAudio(audio)
	g.ResetWith(testRuntime, config.DefaultShooterConfig())
	g.Start()
	return g, audio
}

// bulletOnPlayer returns an enemy bullet overlapping the player.
func bulletOnPlayer(g *Game) Entity {
	p := g.world.Player
	return NewEntity(KindEnemyBullet, p.X+10, p.Y+10, 30, 30, nil)
}

func TestInvincibilityWindow(t *testing.T) {
	g, _ := newStartedGame(t)

	g.world.EnemyBullets = append(g.world.EnemyBullets, bulletOnPlayer(g))
	g.resolveCollisions(0)
	if g.Lives() != 2 {
		t.Fatalf("hit at t=0: lives = %d, expected 2", g.Lives())
	}
	if len(g.world.EnemyBullets) != 0 {
		t.Error("the bullet that hit should be removed")
	}

	g.world.EnemyBullets = append(g.world.EnemyBullets, bulletOnPlayer(g))
	g.resolveCollisions(500 * time.Millisecond)
	if g.Lives() != 2 {
		t.Errorf("hit at t=500ms: lives = %d, expected 2 (invincible)", g.Lives())
	}
	if len(g.world.EnemyBullets) != 1 {
		t.Error("a bullet that cannot hurt should stay in play")
	}

	g.resolveCollisions(1100 * time.Millisecond)
	if g.Lives() != 1 {
		t.Errorf("hit at t=1100ms: lives = %d, expected 1", g.Lives())
	}
	if g.HUD().Text(FieldLives) != "Lives: 1" {
		t.Errorf("lives text = %q", g.HUD().Text(FieldLives))
	}
}

func TestEveryOverlapCostsALife(t *testing.T) {
	tests := []struct {
		name        string
		bullets     int
		obstacles   int
		wantLives   int
		wantBullets int
	}{
		{name: "single bullet", bullets: 1, wantLives: 2},
		{name: "whole burst", bullets: 3, wantLives: 0},
		{name: "two bullets skip the obstacle", bullets: 2, obstacles: 1, wantLives: 1},
		{name: "two obstacles", obstacles: 2, wantLives: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newStartedGame(t)
			p := g.world.Player
			for range tt.bullets {
				g.world.EnemyBullets = append(g.world.EnemyBullets, bulletOnPlayer(g))
			}
			for range tt.obstacles {
				g.world.Obstacles = append(g.world.Obstacles, NewEntity(KindObstacle, p.X, p.Y-20, 200, 70, nil))
			}

			g.resolveCollisions(0)

			if g.Lives() != tt.wantLives {
				t.Errorf("lives = %d, expected %d", g.Lives(), tt.wantLives)
			}
			if len(g.world.EnemyBullets) != tt.wantBullets {
				t.Errorf("%d enemy bullets left, expected %d", len(g.world.EnemyBullets), tt.wantBullets)
			}
			if len(g.world.Obstacles) != tt.obstacles {
				t.Errorf("obstacles should stay in play, %d left", len(g.world.Obstacles))
			}
		})
	}
}

func TestLivesFloorAtZero(t *testing.T) {
	g, _ := newStartedGame(t)
	for range 5 {
		g.world.EnemyBullets = append(g.world.EnemyBullets, bulletOnPlayer(g))
	}

	g.resolveCollisions(0)

	if g.Lives() != 0 {
		t.Errorf("lives = %d, expected 0", g.Lives())
	}
	if g.HUD().Text(FieldLives) != "Lives: 0" {
		t.Errorf("lives text = %q", g.HUD().Text(FieldLives))
	}
}

func TestObstacleRamDoesNotHarmObstacle(t *testing.T) {
	g, audio := newStartedGame(t)

	p := g.world.Player
	o := NewEntity(KindObstacle, p.X-50, p.Y+10, 200, 70, nil)
	o.Health = 3
	g.world.Obstacles = append(g.world.Obstacles, o)

	g.resolveCollisions(0)

	if g.Lives() != 2 {
		t.Errorf("lives = %d, expected 2", g.Lives())
	}
	if len(g.world.Obstacles) != 1 || g.world.Obstacles[0].Health != 3 {
		t.Errorf("obstacle should be untouched, got %+v", g.world.Obstacles)
	}
	if len(audio.cues) != 0 {
		t.Errorf("no cue expected, got %v", audio.cues)
	}
}

func TestEnemyNeedsFiveHits(t *testing.T) {
	g, audio := newStartedGame(t)

	enemy := NewEntity(KindEnemy, 100, 100, 70, 70, nil)
	enemy.Health = 5
	g.world.Enemies = append(g.world.Enemies, enemy)

	for hit := 1; hit <= 5; hit++ {
		g.world.Bullets = append(g.world.Bullets, NewEntity(KindPlayerBullet, 130, 150, 6, 20, nil))
		g.resolveCollisions(time.Duration(hit) * 100 * time.Millisecond)

		if len(g.world.Bullets) != 0 {
			t.Fatalf("hit %d: bullet should be consumed", hit)
		}
		if hit < 5 {
			if len(g.world.Enemies) != 1 {
				t.Fatalf("hit %d: enemy destroyed too early", hit)
			}
			if g.world.Enemies[0].Health != 5-hit {
				t.Errorf("hit %d: health = %d, expected %d", hit, g.world.Enemies[0].Health, 5-hit)
			}
			if audio.count(CueEnemyDestroyed) != 0 {
				t.Fatalf("hit %d: destruction cue played early", hit)
			}
		}
	}

	if len(g.world.Enemies) != 0 {
		t.Error("enemy should be removed after the fifth hit")
	}
	if audio.count(CueEnemyDestroyed) != 1 {
		t.Errorf("destruction cue played %d times, expected 1", audio.count(CueEnemyDestroyed))
	}
	if g.RunStats().EnemiesDestroyed != 1 {
		t.Errorf("EnemiesDestroyed = %d", g.RunStats().EnemiesDestroyed)
	}
}

func TestBulletHitsOnlyFirstTarget(t *testing.T) {
	g, audio := newStartedGame(t)

	// Two overlapping enemies, one bullet inside both
	for range 2 {
		e := NewEntity(KindEnemy, 100, 100, 70, 70, nil)
		e.Health = 5
		g.world.Enemies = append(g.world.Enemies, e)
	}
	o := NewEntity(KindObstacle, 90, 120, 100, 70, nil)
	o.Health = 3
	g.world.Obstacles = append(g.world.Obstacles, o)
	g.world.Bullets = append(g.world.Bullets, NewEntity(KindPlayerBullet, 130, 140, 6, 20, nil))

	g.resolveCollisions(0)

	if g.world.Enemies[0].Health != 4 || g.world.Enemies[1].Health != 5 {
		t.Errorf("lowest index should take the hit, healths = %d, %d",
			g.world.Enemies[0].Health, g.world.Enemies[1].Health)
	}
	if g.world.Obstacles[0].Health != 3 {
		t.Error("enemies are checked before obstacles")
	}
	if len(audio.cues) != 0 {
		t.Errorf("unexpected cues %v", audio.cues)
	}
}

func TestSimultaneousBulletsOnDyingEnemy(t *testing.T) {
	g, audio := newStartedGame(t)

	e := NewEntity(KindEnemy, 100, 100, 70, 70, nil)
	e.Health = 1
	g.world.Enemies = append(g.world.Enemies, e)
	o := NewEntity(KindObstacle, 90, 120, 100, 70, nil)
	o.Health = 1
	g.world.Obstacles = append(g.world.Obstacles, o)

	g.world.Bullets = append(g.world.Bullets,
		NewEntity(KindPlayerBullet, 120, 140, 6, 20, nil),
		NewEntity(KindPlayerBullet, 140, 140, 6, 20, nil),
	)

	g.resolveCollisions(0)

	// First bullet kills the enemy; the second passes to the obstacle
	if len(g.world.Enemies) != 0 || len(g.world.Obstacles) != 0 {
		t.Errorf("enemies=%d obstacles=%d, expected both destroyed", len(g.world.Enemies), len(g.world.Obstacles))
	}
	if len(g.world.Bullets) != 0 {
		t.Errorf("%d bullets left, expected 0", len(g.world.Bullets))
	}
	if audio.count(CueEnemyDestroyed) != 1 || audio.count(CueObstacleDestroyed) != 1 {
		t.Errorf("cues = %v", audio.cues)
	}
}
