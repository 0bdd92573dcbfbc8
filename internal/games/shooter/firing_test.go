package shooter

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/skyraid/internal/config"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBurstAngular(t *testing.T) {
	enemy := NewEntity(KindEnemy, 100, 50, 70, 70, nil)
	fc := config.DefaultShooterConfig().Enemy.Fire

	bullets := Burst(&enemy, fc, nil)
	if len(bullets) != 3 {
		t.Fatalf("burst size = %d, expected 3", len(bullets))
	}

	for _, b := range bullets {
		if b.X != 100+35-15 || b.Y != 120 {
			t.Errorf("bullet at (%v, %v), expected centred below the enemy", b.X, b.Y)
		}
		if !approx(math.Hypot(b.DX, b.DY), fc.Bullet.Speed) {
			t.Errorf("bullet speed = %v, expected %v", math.Hypot(b.DX, b.DY), fc.Bullet.Speed)
		}
		if b.DY <= 0 {
			t.Errorf("bullet should travel down, dy = %v", b.DY)
		}
	}

	if !approx(bullets[1].DX, 0) {
		t.Errorf("middle bullet dx = %v, expected straight down", bullets[1].DX)
	}
	if !approx(bullets[0].DX, -bullets[2].DX) || !approx(bullets[0].DY, bullets[2].DY) {
		t.Errorf("spread not symmetric: %+v / %+v", bullets[0], bullets[2])
	}
	wantDX := math.Cos(math.Pi/2-math.Pi/16) * 2
	if !approx(bullets[0].DX, wantDX) {
		t.Errorf("first bullet dx = %v, expected %v", bullets[0].DX, wantDX)
	}
}

func TestBurstLateral(t *testing.T) {
	enemy := NewEntity(KindEnemy, 0, 0, 50, 50, nil)
	fc := config.DefaultShooterCompactConfig().Enemy.Fire

	bullets := Burst(&enemy, fc, nil)
	wantDX := []float64{-1, 0, 1}
	for i, b := range bullets {
		if b.DX != wantDX[i] || b.DY != fc.Bullet.Speed {
			t.Errorf("bullet %d velocity = (%v, %v), expected (%v, %v)", i, b.DX, b.DY, wantDX[i], fc.Bullet.Speed)
		}
	}

	fc.Burst = 0
	if Burst(&enemy, fc, nil) != nil {
		t.Error("empty burst should produce no bullets")
	}
}

func TestEnemyFireInterval(t *testing.T) {
	g, audio := newStartedGame(t)

	enemy := NewEntity(KindEnemy, 100, 50, 70, 70, nil)
	enemy.Health = 5
	enemy.LastShot = 0
	g.world.Enemies = append(g.world.Enemies, enemy)

	g.fireEnemies(time.Second, time.Second)
	if len(g.world.EnemyBullets) != 0 {
		t.Error("enemy fired before its interval passed")
	}

	g.fireEnemies(time.Second+time.Millisecond, time.Second)
	if len(g.world.EnemyBullets) != 3 {
		t.Fatalf("expected a burst of 3, got %d", len(g.world.EnemyBullets))
	}
	if g.world.Enemies[0].LastShot != time.Second+time.Millisecond {
		t.Errorf("LastShot = %v", g.world.Enemies[0].LastShot)
	}
	if audio.count(CueEnemyFire) != 1 {
		t.Errorf("fire cue played %d times", audio.count(CueEnemyFire))
	}
}

func TestBurstMovesOnFiringTick(t *testing.T) {
	g, _ := newStartedGame(t)

	enemy := NewEntity(KindEnemy, 100, 50, 70, 70, nil)
	enemy.Health = 5
	enemy.LastShot = -10 * time.Second
	g.world.Enemies = append(g.world.Enemies, enemy)

	g.advance()

	if len(g.world.EnemyBullets) != 3 {
		t.Fatalf("expected a burst of 3, got %d", len(g.world.EnemyBullets))
	}
	muzzle := enemy.Y + enemy.H
	for i, b := range g.world.EnemyBullets {
		if !approx(b.Y, muzzle+b.DY) {
			t.Errorf("bullet %d y = %v, expected %v after one step", i, b.Y, muzzle+b.DY)
		}
	}
}
