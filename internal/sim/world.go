package sim

import (
	"time"

	"github.com/vovakirdan/mazechase/internal/maze"
)

// World is the complete state of one playthrough: the level grid, the hero,
// the enemies, the score and the two step clocks. It is the sole mutator of
// its level.
type World struct {
	level   *maze.Level
	timing  Timing
	hero    Hero
	enemies []Enemy
	score   int
	status  Status

	heroClock  Clock
	enemyClock Clock
	heroTicks  uint64
	enemyTicks uint64
	elapsed    time.Duration
}

// NewWorld places the hero and enemies on the level's spawns.
func NewWorld(lvl *maze.Level, timing Timing) *World {
	w := &World{timing: timing}
	w.Reset(lvl)
	return w
}

// Reset starts a new playthrough on a freshly loaded level.
// Timing is kept.
func (w *World) Reset(lvl *maze.Level) {
	w.level = lvl
	w.hero = Hero{Pos: lvl.HeroSpawn(), Facing: DirRight}

	spawns := lvl.EnemySpawns()
	w.enemies = make([]Enemy, len(spawns))
	for i, s := range spawns {
		w.enemies[i] = Enemy{ID: i, Pos: s}
	}

	w.score = 0
	w.status = StatusPlaying
	w.heroClock = NewClock(w.timing.HeroPeriod)
	w.enemyClock = NewClock(w.timing.EnemyPeriod)
	w.heroTicks = 0
	w.enemyTicks = 0
	w.elapsed = 0
}

// Level returns the level being played.
func (w *World) Level() *maze.Level {
	return w.level
}

// Hero returns the hero state.
func (w *World) Hero() Hero {
	return w.hero
}

// Enemies returns a copy of the enemies in evaluation order.
func (w *World) Enemies() []Enemy {
	out := make([]Enemy, len(w.enemies))
	copy(out, w.enemies)
	return out
}

// Score returns the number of points collected.
func (w *World) Score() int {
	return w.score
}

// Status returns the outcome state.
func (w *World) Status() Status {
	return w.status
}

// Elapsed returns the unpaused simulated time of this playthrough.
func (w *World) Elapsed() time.Duration {
	return w.elapsed
}

// Ticks returns how many hero and enemy steps have fired.
func (w *World) Ticks() (hero, enemy uint64) {
	return w.heroTicks, w.enemyTicks
}

// Timing returns the clock periods.
func (w *World) Timing() Timing {
	return w.timing
}

// Pause suspends both clocks.
func (w *World) Pause() {
	w.heroClock.Pause()
	w.enemyClock.Pause()
}

// Resume continues both clocks exactly where they stopped.
func (w *World) Resume() {
	w.heroClock.Resume()
	w.enemyClock.Resume()
}

// Paused reports whether the world is paused.
func (w *World) Paused() bool {
	return w.heroClock.Paused()
}

// Advance moves simulated time forward by dt. Hero and enemy steps fire in
// chronological order (hero first on ties), and the hero/enemy collision
// check runs after every step and once at the end of the frame.
func (w *World) Advance(dt time.Duration, keys Keys) {
	if w.Paused() || w.status.Terminal() || dt <= 0 {
		return
	}
	w.elapsed += dt

	for w.status == StatusPlaying {
		step := min(w.heroClock.Remaining(), w.enemyClock.Remaining())
		if step > dt {
			w.heroClock.Elapse(dt)
			w.enemyClock.Elapse(dt)
			break
		}
		dt -= step

		heroFired := w.heroClock.Elapse(step) > 0
		enemyFired := w.enemyClock.Elapse(step) > 0

		if heroFired {
			w.StepHero(keys)
			w.CheckCollision()
		}
		if enemyFired && w.status == StatusPlaying {
			w.StepEnemies()
			w.CheckCollision()
		}
	}

	w.CheckCollision()
}

// CheckCollision ends the game as lost when an enemy shares the hero's cell.
func (w *World) CheckCollision() bool {
	if w.status != StatusPlaying {
		return false
	}
	for _, e := range w.enemies {
		if e.Pos == w.hero.Pos {
			w.status = StatusLost
			return true
		}
	}
	return false
}

// checkWin ends the game as won once every point is collected.
func (w *World) checkWin() {
	if w.status == StatusPlaying && w.level.RemainingPoints() == 0 {
		w.status = StatusWon
	}
}
