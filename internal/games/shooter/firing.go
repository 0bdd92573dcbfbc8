package shooter

import (
	"math"
	"time"

	"github.com/vovakirdan/skyraid/internal/config"
)

// Burst builds the bullets an enemy fires in one volley, centred on
// straight down and spread symmetrically.
func Burst(enemy *Entity, fc config.FireConfig, img Image) []Entity {
	if fc.Burst <= 0 {
		return nil
	}

	bw, bh := fc.Bullet.Width, fc.Bullet.Height
	cx, _ := enemy.Rect().Center()
	x := cx - bw/2
	y := enemy.Y + enemy.H
	mid := float64(fc.Burst-1) / 2

	out := make([]Entity, 0, fc.Burst)
	for i := range fc.Burst {
		off := float64(i) - mid
		b := NewEntity(KindEnemyBullet, x, y, bw, bh, img)
		switch fc.Spread {
		case config.SpreadLateral:
			b.DX = off * fc.Step
			b.DY = fc.Bullet.Speed
		default:
			angle := math.Pi/2 + off*fc.Step
			b.DX = math.Cos(angle) * fc.Bullet.Speed
			b.DY = math.Sin(angle) * fc.Bullet.Speed
		}
		out = append(out, b)
	}
	return out
}

// fireEnemies lets every enemy whose interval has passed fire a burst.
func (g *Game) fireEnemies(now, interval time.Duration) {
	for i := range g.world.Enemies {
		e := &g.world.Enemies[i]
		if now-e.LastShot <= interval {
			continue
		}
		g.world.EnemyBullets = append(g.world.EnemyBullets, Burst(e, g.cfg.Enemy.Fire, g.assets.EnemyBullet)...)
		e.LastShot = now
		g.audio.Play(CueEnemyFire)
	}
}

// firePlayer emits one player bullet if shooting and the cooldown passed.
func (g *Game) firePlayer(now time.Duration) {
	if !g.shooting || now-g.lastPlayerShot <= g.cfg.Player.FireCooldown() {
		return
	}
	p := &g.world.Player
	bc := g.cfg.Player.Bullet
	b := NewEntity(KindPlayerBullet, p.X+p.W/2-bc.Width/2, p.Y, bc.Width, bc.Height, g.assets.PlayerBullet)
	g.world.Bullets = append(g.world.Bullets, b)
	g.lastPlayerShot = now
}
