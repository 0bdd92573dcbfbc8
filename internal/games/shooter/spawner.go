package shooter

import (
	"math"
	"time"

	"github.com/vovakirdan/skyraid/internal/config"
)

// longAgo marks a timer that has never fired, so the first check passes.
const longAgo = time.Duration(math.MinInt64 / 2)

// Spawner creates enemies and obstacles on their own timers.
type Spawner struct {
	surface  config.SurfaceConfig
	enemy    config.EnemyConfig
	obstacle config.ObstacleConfig
	rng      *rng

	lastEnemy    time.Duration
	lastObstacle time.Duration
}

// NewSpawner creates a spawner with both timers eligible.
func NewSpawner(cfg config.ShooterConfig, r *rng) *Spawner {
	s := &Spawner{
		surface:  cfg.Surface,
		enemy:    cfg.Enemy,
		obstacle: cfg.Obstacle,
		rng:      r,
	}
	s.Reset()
	return s
}

// Reset makes both timers eligible again.
func (s *Spawner) Reset() {
	s.lastEnemy = longAgo
	s.lastObstacle = longAgo
}

// EnemyDue reports whether an enemy may spawn now.
// The active cap applies even when the timer has expired.
func (s *Spawner) EnemyDue(now, interval time.Duration, active int) bool {
	return now-s.lastEnemy > interval && active < s.enemy.MaxActive
}

// ObstacleDue reports whether an obstacle may spawn now.
func (s *Spawner) ObstacleDue(now, interval time.Duration) bool {
	return now-s.lastObstacle > interval
}

// SpawnEnemy places an enemy at a random x near the top and restarts the timer.
func (s *Spawner) SpawnEnemy(now time.Duration, img Image) Entity {
	x := s.rng.Float64() * (s.surface.Width - s.enemy.Width)
	e := NewEntity(KindEnemy, x, s.enemy.SpawnY, s.enemy.Width, s.enemy.Height, img)
	e.DY = s.enemy.DescentSpeed
	e.Health = s.enemy.Health
	e.LastShot = now
	s.lastEnemy = now
	return e
}

// SpawnObstacle places an obstacle of random width above the surface and
// restarts the timer.
func (s *Spawner) SpawnObstacle(now time.Duration, img Image) Entity {
	w := s.obstacle.MinWidth + s.rng.Float64()*math.Max(0, s.surface.Width-s.obstacle.WidthMargin)
	w = math.Min(w, s.surface.Width)
	x := s.rng.Float64() * (s.surface.Width - w)
	o := NewEntity(KindObstacle, x, s.obstacle.SpawnY, w, s.obstacle.Height, img)
	o.DY = s.obstacle.MinSpeed
	o.Health = s.obstacle.Health
	s.lastObstacle = now
	return o
}

// Update spawns whatever is due into w.
func (s *Spawner) Update(w *World, now time.Duration, iv config.Intervals, assets Assets) {
	if s.EnemyDue(now, iv.EnemySpawn, len(w.Enemies)) {
		w.Enemies = append(w.Enemies, s.SpawnEnemy(now, assets.Enemy))
	}
	if s.ObstacleDue(now, iv.ObstacleSpawn) {
		w.Obstacles = append(w.Obstacles, s.SpawnObstacle(now, assets.Obstacle))
	}
}
