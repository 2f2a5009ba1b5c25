package sim

// StepHero resolves one hero move from the pressed keys. The move is
// committed only onto a walkable cell; otherwise the hero keeps both its
// cell and its facing. Entering a point cell collects the point.
// It returns true when the hero changed cells.
func (w *World) StepHero(keys Keys) bool {
	if w.status != StatusPlaying {
		return false
	}
	w.heroTicks++

	dir, ok := keys.Resolve()
	if !ok {
		return false
	}

	dx, dy := dir.Delta()
	next := w.hero.Pos.Add(dx, dy)
	if !w.level.IsWalkable(next) {
		return false
	}

	w.hero.Pos = next
	w.hero.Facing = dir
	if w.level.ConsumePoint(next) {
		w.score++
	}
	w.checkWin()
	return true
}
