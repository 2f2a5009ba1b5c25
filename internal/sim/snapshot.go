package sim

import "github.com/vovakirdan/mazechase/internal/maze"

// Snapshot captures the observable world state for rendering, determinism
// tests and run history.
type Snapshot struct {
	HeroTicks       uint64
	EnemyTicks      uint64
	Score           int
	Status          Status
	Paused          bool
	Hero            maze.Coord
	Facing          Direction
	Enemies         []maze.Coord
	RemainingPoints int
}

// Snapshot returns the current world snapshot.
func (w *World) Snapshot() Snapshot {
	enemies := make([]maze.Coord, len(w.enemies))
	for i, e := range w.enemies {
		enemies[i] = e.Pos
	}
	return Snapshot{
		HeroTicks:       w.heroTicks,
		EnemyTicks:      w.enemyTicks,
		Score:           w.score,
		Status:          w.status,
		Paused:          w.Paused(),
		Hero:            w.hero.Pos,
		Facing:          w.hero.Facing,
		Enemies:         enemies,
		RemainingPoints: w.level.RemainingPoints(),
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.HeroTicks != other.HeroTicks || s.EnemyTicks != other.EnemyTicks ||
		s.Score != other.Score || s.Status != other.Status || s.Paused != other.Paused ||
		s.Hero != other.Hero || s.Facing != other.Facing ||
		s.RemainingPoints != other.RemainingPoints || len(s.Enemies) != len(other.Enemies) {
		return false
	}
	for i := range s.Enemies {
		if s.Enemies[i] != other.Enemies[i] {
			return false
		}
	}
	return true
}
