package shooter

import "time"

// Collision order each tick:
//  1. enemy bullets against the player
//  2. obstacles against the player
//  3. player bullets against enemies
//  4. remaining player bullets against obstacles
//
// Invincibility is checked once before each player pass, so every
// overlapping enemy bullet costs a life, and obstacles are skipped for the
// tick once a bullet has landed. Ties go to the lowest index. A player
// bullet is spent on its first hit, so it never damages two targets.
func (g *Game) resolveCollisions(now time.Duration) {
	w := &g.world

	if !g.invincible(now) {
		hit := make([]bool, len(w.EnemyBullets))
		for i := range w.EnemyBullets {
			if w.EnemyBullets[i].Overlap(&w.Player) {
				hit[i] = true
				g.Damage(now)
			}
		}
		w.EnemyBullets = compact(w.EnemyBullets, hit)
	}

	// Obstacles are not harmed by ramming the player.
	if !g.invincible(now) {
		for i := range w.Obstacles {
			if w.Obstacles[i].Overlap(&w.Player) {
				g.Damage(now)
			}
		}
	}

	spent := make([]bool, len(w.Bullets))
	g.enemiesDestroyed += hitTargets(w.Bullets, spent, w.Enemies)
	g.obstaclesDestroyed += hitTargets(w.Bullets, spent, w.Obstacles)

	w.Enemies = g.sweep(w.Enemies, CueEnemyDestroyed)
	w.Obstacles = g.sweep(w.Obstacles, CueObstacleDestroyed)
	w.Bullets = compact(w.Bullets, spent)
}

// hitTargets applies one point of damage per overlapping unspent bullet to
// the first live target it touches. Returns how many targets reached zero.
func hitTargets(bullets []Entity, spent []bool, targets []Entity) int {
	destroyed := 0
	for bi := range bullets {
		if spent[bi] {
			continue
		}
		for ti := range targets {
			t := &targets[ti]
			if t.Health <= 0 || !bullets[bi].Overlap(t) {
				continue
			}
			spent[bi] = true
			t.Health--
			if t.Health <= 0 {
				destroyed++
			}
			break
		}
	}
	return destroyed
}

// sweep removes destroyed targets, playing cue once for each.
func (g *Game) sweep(targets []Entity, cue Cue) []Entity {
	return filter(targets, func(t *Entity) bool {
		if t.Health > 0 {
			return true
		}
		g.audio.Play(cue)
		return false
	})
}
