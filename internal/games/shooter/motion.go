package shooter

import (
	"github.com/vovakirdan/skyraid/internal/config"
)

// Mover advances entities by one tick and drops those that left the surface.
type Mover struct {
	height        float64
	bulletSpeed   float64
	obstacleSpeed float64
	speedJitter   float64
	rng           *rng
}

// NewMover creates a mover for the given configuration.
func NewMover(cfg config.ShooterConfig, r *rng) *Mover {
	return &Mover{
		height:        cfg.Surface.Height,
		bulletSpeed:   cfg.Player.Bullet.Speed,
		obstacleSpeed: cfg.Obstacle.MinSpeed,
		speedJitter:   cfg.Obstacle.SpeedJitter,
		rng:           r,
	}
}

// MoveBullets moves player bullets up. A bullet is gone once it is fully
// above the surface.
func (m *Mover) MoveBullets(w *World) {
	w.Bullets = filter(w.Bullets, func(b *Entity) bool {
		b.Y -= m.bulletSpeed
		return b.Y > -b.H
	})
}

// MoveEnemyBullets moves enemy bullets along their velocity.
func (m *Mover) MoveEnemyBullets(w *World) {
	w.EnemyBullets = filter(w.EnemyBullets, func(b *Entity) bool {
		b.X += b.DX
		b.Y += b.DY
		return b.Y < m.height
	})
}

// MoveEnemies applies each enemy's descent speed.
func (m *Mover) MoveEnemies(w *World) {
	w.Enemies = filter(w.Enemies, func(e *Entity) bool {
		e.Y += e.DY
		return e.Y < m.height
	})
}

// MoveObstacles drops obstacles. With jitter the speed is re-rolled
// for every obstacle on every tick.
func (m *Mover) MoveObstacles(w *World) {
	w.Obstacles = filter(w.Obstacles, func(o *Entity) bool {
		if m.speedJitter > 0 {
			o.Y += m.obstacleSpeed + m.rng.Float64()*m.speedJitter
		} else {
			o.Y += o.DY
		}
		return o.Y < m.height
	})
}
