package sim

import "github.com/vovakirdan/mazechase/internal/maze"

// StepEnemies advances every enemy one shortest-path step toward the hero.
// Enemies are evaluated in ID order, each against the positions the others
// hold at that moment: a later enemy sees earlier ones where they moved to,
// and may take a cell an earlier enemy just left.
func (w *World) StepEnemies() {
	if w.status != StatusPlaying {
		return
	}
	w.enemyTicks++

	for i := range w.enemies {
		w.stepEnemy(i)
	}
}

// stepEnemy moves enemy i unless its next cell is held by another enemy.
func (w *World) stepEnemy(i int) bool {
	self := w.enemies[i]

	occupied := make(map[maze.Coord]bool, len(w.enemies)-1)
	for j, e := range w.enemies {
		if j != i {
			occupied[e.Pos] = true
		}
	}

	next := maze.NextStep(w.level, self.Pos, w.hero.Pos)
	if next == self.Pos || occupied[next] {
		return false
	}
	w.enemies[i].Pos = next
	return true
}
