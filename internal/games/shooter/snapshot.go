package shooter

import (
	"hash/fnv"
	"math"
)

// Snapshot is a value summary of a session for determinism checks.
// Positions are rounded to whole pixels.
type Snapshot struct {
	Tick               uint64
	State              string
	Paused             bool
	Lives              int
	ElapsedMS          int64
	Shooting           bool
	InvincibleUntilMS  int64
	PlayerX            int
	EnemySpawnMS       int64
	ObstacleSpawnMS    int64
	EnemyFireMS        int64
	EnemiesDestroyed   int
	ObstaclesDestroyed int

	// Entity state, flattened. Each entity is 3 ints: X, Y, Health.
	BulletData      []int
	EnemyBulletData []int
	EnemyData       []int
	ObstacleData    []int

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:               g.tick,
		State:              g.state.String(),
		Paused:             g.paused,
		Lives:              g.lives,
		ElapsedMS:          g.now.Milliseconds(),
		Shooting:           g.shooting,
		InvincibleUntilMS:  g.invincibleUntil.Milliseconds(),
		PlayerX:            round(g.world.Player.X),
		EnemySpawnMS:       g.intervals.EnemySpawn.Milliseconds(),
		ObstacleSpawnMS:    g.intervals.ObstacleSpawn.Milliseconds(),
		EnemyFireMS:        g.intervals.EnemyFire.Milliseconds(),
		EnemiesDestroyed:   g.enemiesDestroyed,
		ObstaclesDestroyed: g.obstaclesDestroyed,

		BulletData:      flatten(g.world.Bullets),
		EnemyBulletData: flatten(g.world.EnemyBullets),
		EnemyData:       flatten(g.world.Enemies),
		ObstacleData:    flatten(g.world.Obstacles),

		RNGState: g.rng.state,
	}
}

// Bullets returns the number of live player bullets.
func (s *Snapshot) Bullets() int { return len(s.BulletData) / 3 }

// EnemyBullets returns the number of live enemy bullets.
func (s *Snapshot) EnemyBullets() int { return len(s.EnemyBulletData) / 3 }

// Enemies returns the number of live enemies.
func (s *Snapshot) Enemies() int { return len(s.EnemyData) / 3 }

// Obstacles returns the number of live obstacles.
func (s *Snapshot) Obstacles() int { return len(s.ObstacleData) / 3 }

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	putInts := func(vs []int) {
		put(uint64(len(vs))) //#nosec G115 -- hash computation
		for _, v := range vs {
			put(uint64(v)) //#nosec G115 -- hash computation
		}
	}

	put(s.Tick)
	_, _ = h.Write([]byte(s.State))
	put(uint64(s.Lives))                                               //#nosec G115 -- hash computation
	put(uint64(s.ElapsedMS))                                           //#nosec G115 -- hash computation
	put(uint64(s.PlayerX))                                             //#nosec G115 -- hash computation
	put(uint64(s.EnemiesDestroyed) | uint64(s.ObstaclesDestroyed)<<32) //#nosec G115 -- hash computation
	putInts(s.BulletData)
	putInts(s.EnemyBulletData)
	putInts(s.EnemyData)
	putInts(s.ObstacleData)
	put(s.RNGState)
	return h.Sum64()
}

func flatten(list []Entity) []int {
	out := make([]int, 0, len(list)*3)
	for i := range list {
		out = append(out, round(list[i].X), round(list[i].Y), list[i].Health)
	}
	return out
}

func round(v float64) int {
	return int(math.Round(v))
}
