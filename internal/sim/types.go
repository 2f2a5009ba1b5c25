// Package sim runs the per-tick chase simulation: hero movement and point
// collection, enemy pursuit with peer-collision avoidance, and the win and
// loss checks. It is single-threaded and driven by logical clocks, so a
// game can be replayed exactly in tests.
package sim

import (
	"time"

	"github.com/vovakirdan/mazechase/internal/maze"
)

// Status is the game outcome state.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game has ended.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Direction is the hero's facing. It only affects presentation.
type Direction int

const (
	DirRight Direction = iota
	DirUp
	DirLeft
	DirDown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) of one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Keys is a snapshot of the pressed direction keys.
type Keys struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Resolve picks one direction when several keys are held.
// Priority is Left, Right, Down, Up.
func (k Keys) Resolve() (Direction, bool) {
	switch {
	case k.Left:
		return DirLeft, true
	case k.Right:
		return DirRight, true
	case k.Down:
		return DirDown, true
	case k.Up:
		return DirUp, true
	default:
		return DirRight, false
	}
}

// Any reports whether at least one key is pressed.
func (k Keys) Any() bool {
	return k.Up || k.Down || k.Left || k.Right
}

// Timing holds the periods of the two simulation clocks.
type Timing struct {
	HeroPeriod  time.Duration
	EnemyPeriod time.Duration
}

// DefaultTiming returns the standard hero and enemy periods.
func DefaultTiming() Timing {
	return Timing{
		HeroPeriod:  100 * time.Millisecond,
		EnemyPeriod: 500 * time.Millisecond,
	}
}

// Hero is the player-controlled entity.
type Hero struct {
	Pos    maze.Coord
	Facing Direction
}

// Enemy is a pursuing entity. ID is its fixed evaluation order.
type Enemy struct {
	ID  int
	Pos maze.Coord
}
