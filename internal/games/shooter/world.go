package shooter

// World holds every live entity of a session.
// Slices keep insertion order; collision tie-breaks depend on it.
type World struct {
	Player       Entity
	Bullets      []Entity // Player-owned
	EnemyBullets []Entity
	Enemies      []Entity
	Obstacles    []Entity
}

// Clear drops everything except the player.
func (w *World) Clear() {
	w.Bullets = w.Bullets[:0]
	w.EnemyBullets = w.EnemyBullets[:0]
	w.Enemies = w.Enemies[:0]
	w.Obstacles = w.Obstacles[:0]
}

// Draw paints all entities, player last so it stays on top.
func (w *World) Draw(c Canvas) {
	for i := range w.Obstacles {
		w.Obstacles[i].Draw(c)
	}
	for i := range w.Enemies {
		w.Enemies[i].Draw(c)
	}
	for i := range w.EnemyBullets {
		w.EnemyBullets[i].Draw(c)
	}
	for i := range w.Bullets {
		w.Bullets[i].Draw(c)
	}
	w.Player.Draw(c)
}
