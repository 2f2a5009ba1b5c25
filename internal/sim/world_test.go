package sim

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/mazechase/internal/maze"
)

func newTestWorld(t *testing.T, rows []string) *World {
	t.Helper()
	lvl, err := maze.Load(rows, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return NewWorld(lvl, DefaultTiming())
}

func TestKeysResolvePriority(t *testing.T) {
	testCases := []struct {
		name     string
		keys     Keys
		expected Direction
		ok       bool
	}{
		{"none", Keys{}, DirRight, false},
		{"left beats all", Keys{Up: true, Down: true, Left: true, Right: true}, DirLeft, true},
		{"right beats down and up", Keys{Up: true, Down: true, Right: true}, DirRight, true},
		{"down beats up", Keys{Up: true, Down: true}, DirDown, true},
		{"up alone", Keys{Up: true}, DirUp, true},
		{"left and up", Keys{Up: true, Left: true}, DirLeft, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir, ok := tc.keys.Resolve()
			if ok != tc.ok || (ok && dir != tc.expected) {
				t.Errorf("Resolve() = %v, %v; expected %v, %v", dir, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestHeroLeftAndUpMovesLeft(t *testing.T) {
	w := newTestWorld(t, []string{
		"#######",
		"#.@...#",
		"#!!!..#",
		"#######",
	})

	if w.Hero().Facing != DirRight {
		t.Fatalf("expected initial facing Right, got %v", w.Hero().Facing)
	}

	moved := w.StepHero(Keys{Left: true, Up: true})
	if !moved {
		t.Fatal("expected hero to move")
	}
	if w.Hero().Pos != maze.C(1, 1) {
		t.Errorf("expected hero at (1,1), got %v", w.Hero().Pos)
	}
	if w.Hero().Facing != DirLeft {
		t.Errorf("expected facing Left, got %v", w.Hero().Facing)
	}
	if w.Score() != 1 {
		t.Errorf("expected score 1, got %d", w.Score())
	}
}

func TestHeroBlockedLeftKeepsFacing(t *testing.T) {
	w := newTestWorld(t, []string{
		"#######",
		"#.....#",
		"#@!!!.#",
		"#######",
	})
	start := w.Hero().Pos

	// Left wins the priority and is a wall, so Up is not tried.
	if w.StepHero(Keys{Left: true, Up: true}) {
		t.Fatal("hero should not move into a wall")
	}
	if w.Hero().Pos != start {
		t.Errorf("expected hero to stay at %v, got %v", start, w.Hero().Pos)
	}
	if w.Hero().Facing != DirRight {
		t.Errorf("expected facing to stay Right, got %v", w.Hero().Facing)
	}

	if !w.StepHero(Keys{Up: true}) {
		t.Fatal("hero should move up")
	}
	if w.Hero().Pos != maze.C(1, 1) || w.Hero().Facing != DirUp {
		t.Errorf("expected (1,1) facing Up, got %v facing %v", w.Hero().Pos, w.Hero().Facing)
	}
}

func TestHeroScoresEachPointOnce(t *testing.T) {
	w := newTestWorld(t, []string{
		"########",
		"#@....!#",
		"#!!....#",
		"########",
	})
	initial := w.Level().RemainingPoints()

	w.StepHero(Keys{Right: true}) // (2,1)
	w.StepHero(Keys{Left: true})  // back to spawn, no point
	w.StepHero(Keys{Right: true}) // (2,1) again, already eaten

	if w.Score() != 1 {
		t.Errorf("expected score 1, got %d", w.Score())
	}
	if w.Level().RemainingPoints() != initial-1 {
		t.Errorf("expected %d points, got %d", initial-1, w.Level().RemainingPoints())
	}
}

func TestEnemyOccupancyFirstEvaluatedWins(t *testing.T) {
	// Open 5x5 grid. Enemy 0 at (1,1) and enemy 1 at (0,2) both want (1,2).
	w := newTestWorld(t, []string{
		".....",
		".!...",
		"!.@..",
		".....",
		"....!",
	})

	enemies := w.Enemies()
	if enemies[0].Pos != maze.C(1, 1) || enemies[1].Pos != maze.C(0, 2) || enemies[2].Pos != maze.C(4, 4) {
		t.Fatalf("unexpected spawn order: %v", enemies)
	}
	if maze.NextStep(w.Level(), maze.C(1, 1), maze.C(2, 2)) != maze.C(1, 2) ||
		maze.NextStep(w.Level(), maze.C(0, 2), maze.C(2, 2)) != maze.C(1, 2) {
		t.Fatal("both enemies should target (1,2)")
	}

	w.StepEnemies()

	enemies = w.Enemies()
	if enemies[0].Pos != maze.C(1, 2) {
		t.Errorf("first enemy should move to (1,2), got %v", enemies[0].Pos)
	}
	if enemies[1].Pos != maze.C(0, 2) {
		t.Errorf("second enemy should stay at (0,2), got %v", enemies[1].Pos)
	}
	if enemies[2].Pos != maze.C(4, 3) {
		t.Errorf("third enemy should move to (4,3), got %v", enemies[2].Pos)
	}
	if w.Status() != StatusPlaying {
		t.Errorf("expected playing, got %v", w.Status())
	}
}

func TestEnemyMayEnterVacatedCell(t *testing.T) {
	w := newTestWorld(t, []string{
		"#########",
		"#@.!!...#",
		"#.#####.#",
		"#......!#",
		"#########",
	})

	w.StepEnemies()

	enemies := w.Enemies()
	if enemies[0].Pos != maze.C(2, 1) {
		t.Errorf("enemy 0 should advance to (2,1), got %v", enemies[0].Pos)
	}
	if enemies[1].Pos != maze.C(3, 1) {
		t.Errorf("enemy 1 should follow into vacated (3,1), got %v", enemies[1].Pos)
	}
}

func TestEnemyCatchesHero(t *testing.T) {
	w := newTestWorld(t, []string{
		"#######",
		"#@.!..#",
		"#!!...#",
		"#######",
	})

	w.StepEnemies()
	if !w.CheckCollision() {
		t.Fatal("expected collision")
	}
	if w.Status() != StatusLost {
		t.Errorf("expected lost, got %v", w.Status())
	}

	// Terminal state freezes the world.
	snap := w.Snapshot()
	w.StepHero(Keys{Right: true})
	w.StepEnemies()
	w.Advance(time.Second, Keys{Right: true})
	if !snap.Equal(w.Snapshot()) {
		t.Error("world changed after game over")
	}
}

func TestWinOnLastPoint(t *testing.T) {
	w := newTestWorld(t, []string{
		"#######",
		"#@.#!!#",
		"####!##",
		"#######",
	})

	if w.Level().RemainingPoints() != 1 {
		t.Fatalf("expected 1 point, got %d", w.Level().RemainingPoints())
	}
	w.StepHero(Keys{Right: true})
	if w.Status() != StatusWon {
		t.Errorf("expected won, got %v", w.Status())
	}
	if w.StepHero(Keys{Left: true}) {
		t.Error("hero should not move after winning")
	}
}

func TestAdvanceCadence(t *testing.T) {
	w := newTestWorld(t, []string{
		"###########",
		"#@........#",
		"#.#######.#",
		"#........!#",
		"#.#######.#",
		"#.......!!#",
		"###########",
	})

	w.Advance(99*time.Millisecond, Keys{})
	if s := w.Snapshot(); s.HeroTicks != 0 || s.EnemyTicks != 0 {
		t.Fatalf("expected no ticks yet, got hero=%d enemy=%d", s.HeroTicks, s.EnemyTicks)
	}

	w.Advance(time.Millisecond, Keys{})
	if s := w.Snapshot(); s.HeroTicks != 1 || s.EnemyTicks != 0 {
		t.Fatalf("expected 1 hero tick, got hero=%d enemy=%d", s.HeroTicks, s.EnemyTicks)
	}

	w.Advance(400*time.Millisecond, Keys{})
	if s := w.Snapshot(); s.HeroTicks != 5 || s.EnemyTicks != 1 {
		t.Fatalf("expected 5/1 ticks, got hero=%d enemy=%d", s.HeroTicks, s.EnemyTicks)
	}
}

func TestAdvanceChunkingIsEquivalent(t *testing.T) {
	rows := []string{
		"###########",
		"#@....#...#",
		"#.###.#.#.#",
		"#.#...!.#.#",
		"#.#.#####.#",
		"#...#!!...#",
		"###########",
	}
	a := newTestWorld(t, rows)
	b := newTestWorld(t, rows)

	keys := Keys{Down: true}
	a.Advance(1500*time.Millisecond, keys)
	for i := 0; i < 150; i++ {
		b.Advance(10*time.Millisecond, keys)
	}

	if !a.Snapshot().Equal(b.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", a.Snapshot(), b.Snapshot())
	}
}

func TestPauseResume(t *testing.T) {
	w := newTestWorld(t, []string{
		"#########",
		"#@......#",
		"#.......#",
		"#.....!!#",
		"#......!#",
		"#########",
	})

	w.Advance(60*time.Millisecond, Keys{})
	w.Pause()
	w.Advance(10*time.Second, Keys{Right: true})

	s := w.Snapshot()
	if s.HeroTicks != 0 || s.EnemyTicks != 0 || !s.Paused {
		t.Fatalf("paused world advanced: %+v", s)
	}
	if w.Elapsed() != 60*time.Millisecond {
		t.Errorf("expected 60ms elapsed, got %v", w.Elapsed())
	}

	w.Resume()
	w.Advance(40*time.Millisecond, Keys{Right: true})
	if s := w.Snapshot(); s.HeroTicks != 1 {
		t.Errorf("expected hero tick right after resume, got %d", s.HeroTicks)
	}
	if w.Hero().Pos != maze.C(2, 1) {
		t.Errorf("expected hero at (2,1), got %v", w.Hero().Pos)
	}
}

func TestPointsNeverIncrease(t *testing.T) {
	rows := []string{
		"#############",
		"#@..........#",
		"#.###.#.###.#",
		"#.....#.....#",
		"#.###.#.###.#",
		"#.....!.....#",
		"#.###.#.###.#",
		"#....!#!....#",
		"#############",
	}

	for seed := int64(1); seed <= 5; seed++ {
		w := newTestWorld(t, rows)
		initial := w.Level().RemainingPoints()
		rng := rand.New(rand.NewSource(seed))

		prev := initial
		var keys Keys
		for frame := 0; frame < 3000 && !w.Status().Terminal(); frame++ {
			if frame%7 == 0 {
				keys = Keys{
					Up:    rng.Intn(4) == 0,
					Down:  rng.Intn(4) == 0,
					Left:  rng.Intn(4) == 0,
					Right: rng.Intn(4) == 0,
				}
			}
			w.Advance(16*time.Millisecond, keys)

			remaining := w.Level().RemainingPoints()
			if remaining > prev {
				t.Fatalf("seed %d: points went up %d -> %d", seed, prev, remaining)
			}
			if w.Score()+remaining != initial {
				t.Fatalf("seed %d: score %d + remaining %d != %d", seed, w.Score(), remaining, initial)
			}
			if (w.Status() == StatusWon) != (remaining == 0) {
				t.Fatalf("seed %d: status %v with %d points left", seed, w.Status(), remaining)
			}
			prev = remaining

			seen := make(map[maze.Coord]bool)
			for _, e := range w.Enemies() {
				if seen[e.Pos] {
					t.Fatalf("seed %d: two enemies share %v", seed, e.Pos)
				}
				seen[e.Pos] = true
			}
		}
	}
}

func TestResetRestoresSpawns(t *testing.T) {
	rows := []string{
		"#######",
		"#@....#",
		"#.#.#.#",
		"#!!!..#",
		"#######",
	}
	w := newTestWorld(t, rows)
	w.Advance(2*time.Second, Keys{Right: true})

	fresh, err := maze.Load(rows, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	w.Reset(fresh)

	s := w.Snapshot()
	if s.Score != 0 || s.Status != StatusPlaying || s.HeroTicks != 0 {
		t.Errorf("reset did not clear state: %+v", s)
	}
	if s.Hero != fresh.HeroSpawn() {
		t.Errorf("expected hero at %v, got %v", fresh.HeroSpawn(), s.Hero)
	}
	for i, sp := range fresh.EnemySpawns() {
		if s.Enemies[i] != sp {
			t.Errorf("enemy %d at %v, expected %v", i, s.Enemies[i], sp)
		}
	}
}

func TestClock(t *testing.T) {
	c := NewClock(100 * time.Millisecond)

	if n := c.Elapse(250 * time.Millisecond); n != 2 {
		t.Errorf("expected 2 firings, got %d", n)
	}
	if c.Remaining() != 50*time.Millisecond {
		t.Errorf("expected 50ms remaining, got %v", c.Remaining())
	}

	c.Pause()
	if n := c.Elapse(time.Second); n != 0 {
		t.Errorf("paused clock fired %d times", n)
	}
	c.Resume()
	if n := c.Elapse(50 * time.Millisecond); n != 1 {
		t.Errorf("expected 1 firing after resume, got %d", n)
	}

	off := NewClock(0)
	if n := off.Elapse(time.Hour); n != 0 {
		t.Errorf("zero-period clock fired %d times", n)
	}
}
