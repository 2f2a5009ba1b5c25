package levels

import "math/rand"

// Picker hands out levels for a session. Random picks never repeat the
// previous level when there is more than one to choose from.
type Picker struct {
	defs []Def
	rng  *rand.Rand
	prev int
}

// NewPicker creates a picker over defs. A nil rng uses a fixed seed.
func NewPicker(defs []Def, rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Picker{defs: defs, rng: rng, prev: -1}
}

// Levels returns the levels in order.
func (p *Picker) Levels() []Def {
	return p.defs
}

// Rand returns the picker's random source, shared with level building.
func (p *Picker) Rand() *rand.Rand {
	return p.rng
}

// Random returns a random level, re-rolling while it equals the previous one.
func (p *Picker) Random() Def {
	if len(p.defs) == 0 {
		return Def{}
	}
	i := p.rng.Intn(len(p.defs))
	for len(p.defs) > 1 && i == p.prev {
		i = p.rng.Intn(len(p.defs))
	}
	p.prev = i
	return p.defs[i]
}

// Next returns the level after the previous one in order, wrapping around.
// The first call returns the first level.
func (p *Picker) Next() Def {
	if len(p.defs) == 0 {
		return Def{}
	}
	p.prev = (p.prev + 1) % len(p.defs)
	return p.defs[p.prev]
}

// Select makes the level with the given ID the previous one and returns it.
func (p *Picker) Select(id string) (Def, bool) {
	for i, d := range p.defs {
		if d.ID == id {
			p.prev = i
			return d, true
		}
	}
	return Def{}, false
}
