package chase

import (
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/sim"
)

// heldKeys turns key press events into held directions. Terminals send
// presses and auto-repeats but never releases, so a direction counts as
// held for a number of frames after its last press. Pressing a direction
// releases the others, since auto-repeat only ever repeats the newest key.
type heldKeys struct {
	hold    int
	left    [4]int // frames of hold remaining, indexed by sim.Direction
	pressed [4]bool
}

// actionDirections maps the movement actions onto sim directions.
var actionDirections = map[core.Action]sim.Direction{
	core.ActionUp:    sim.DirUp,
	core.ActionDown:  sim.DirDown,
	core.ActionLeft:  sim.DirLeft,
	core.ActionRight: sim.DirRight,
}

func newHeldKeys(hold int) heldKeys {
	return heldKeys{hold: hold}
}

func (h *heldKeys) reset() {
	h.left = [4]int{}
}

// update consumes one frame of input and returns the keys held this frame.
func (h *heldKeys) update(in core.InputFrame) sim.Keys {
	h.pressed = [4]bool{}
	anyPressed := false
	for a, on := range in.Actions {
		if on && a.IsDirection() {
			h.pressed[actionDirections[a]] = true
			anyPressed = true
		}
	}

	for d := range h.left {
		switch {
		case h.pressed[d]:
			h.left[d] = h.hold
		case anyPressed:
			h.left[d] = 0
		case h.left[d] > 0:
			h.left[d]--
		}
	}

	return sim.Keys{
		Up:    h.held(sim.DirUp),
		Down:  h.held(sim.DirDown),
		Left:  h.held(sim.DirLeft),
		Right: h.held(sim.DirRight),
	}
}

func (h *heldKeys) held(d sim.Direction) bool {
	return h.pressed[d] || h.left[d] > 0
}
