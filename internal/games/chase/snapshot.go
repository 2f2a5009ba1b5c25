package chase

import "github.com/vovakirdan/mazechase/internal/sim"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Mode     Mode
	LevelID  string
	Cleared  int
	Score    int
	TooSmall bool
	World    sim.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Mode:     g.mode,
		LevelID:  g.level.ID,
		Cleared:  g.cleared,
		Score:    g.Score(),
		TooSmall: g.tooSmall,
	}
	if g.world != nil {
		s.World = g.world.Snapshot()
	}
	return s
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.Tick == other.Tick && s.Mode == other.Mode && s.LevelID == other.LevelID &&
		s.Cleared == other.Cleared && s.Score == other.Score && s.TooSmall == other.TooSmall &&
		s.World.Equal(other.World)
}
