// Package chase adapts the maze chase simulation to the arcade platform:
// level selection, difficulty, held-key input and rendering.
package chase

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/levels"
	"github.com/vovakirdan/mazechase/internal/maze"
	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/sim"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeRandom   Mode = "random"
)

// Game IDs registered with the platform.
const (
	IDCampaign = "chase"
	IDRandom   = "chase_random"
)

// hudHeight is the number of screen rows above the maze.
const hudHeight = 2

// Game implements registry.Game for the maze chase.
type Game struct {
	mode       Mode
	cfg        config.ChaseConfig
	difficulty *config.DifficultyManager
	defs       []levels.Def
	startLevel string

	rng    *rand.Rand
	picker *levels.Picker
	world  *sim.World
	level  levels.Def
	tick   uint64

	frame   time.Duration // simulated time per Step
	input   heldKeys
	loadErr error

	cleared     int // levels won this session
	banked      int // score from cleared levels
	pointsTotal int // points in the current level at start
	reported    bool
	lastRun     core.RunSummary
	hasRun      bool

	screenW    int
	screenH    int
	mapOffsetX int
	mapOffsetY int
	tooSmall   bool
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          IDCampaign,
		Title:       "Maze Chase",
		Description: "Play the levels in order; enemies speed up as you clear them",
	}, func(opts registry.Options) (registry.Game, error) {
		return New(ModeCampaign, opts)
	})
	registry.Register(registry.GameInfo{
		ID:          IDRandom,
		Title:       "Maze Chase (Random)",
		Description: "Random level after every win, never the same twice in a row",
	}, func(opts registry.Options) (registry.Game, error) {
		return New(ModeRandom, opts)
	})
}

// New loads configuration and levels for a chase game.
func New(mode Mode, opts registry.Options) (*Game, error) {
	cfg, err := config.LoadChase(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	preset := cfg.Difficulty.Preset
	if opts.Difficulty != "" {
		p, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		preset = p
	}
	if preset != "" {
		config.ApplyChasePreset(&cfg, preset)
	}

	dir := cfg.Levels.Dir
	if opts.LevelsDir != "" {
		dir = opts.LevelsDir
	}
	defs, err := levels.Load(dir)
	if err != nil {
		return nil, err
	}

	return NewWithLevels(mode, cfg, defs, opts.LevelID)
}

// NewWithLevels creates a chase game over an explicit level list.
func NewWithLevels(mode Mode, cfg config.ChaseConfig, defs []levels.Def, startLevel string) (*Game, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("chase: no levels")
	}
	if startLevel != "" {
		if _, ok := levels.Find(defs, startLevel); !ok {
			return nil, fmt.Errorf("chase: unknown level %q", startLevel)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("chase: %w", err)
	}

	return &Game{
		mode:       mode,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		defs:       defs,
		startLevel: startLevel,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeRandom {
		return IDRandom
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRandom {
		return "Maze Chase (Random)"
	}
	return "Maze Chase"
}

// Reset starts a new session from the first level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.picker = levels.NewPicker(g.defs, g.rng)
	g.tick = 0
	g.cleared = 0
	g.banked = 0
	g.hasRun = false

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.frame = time.Second / time.Duration(tickRate)
	g.input = newHeldKeys(holdTicks(g.cfg.Input.Hold(), g.frame))

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	var first levels.Def
	switch {
	case g.startLevel != "":
		first, _ = g.picker.Select(g.startLevel)
	case g.mode == ModeRandom:
		first = g.picker.Random()
	default:
		first = g.picker.Next()
	}
	g.loadLevel(first)
}

// holdTicks converts the hold window to whole frames, at least one.
func holdTicks(hold, frame time.Duration) int {
	if frame <= 0 {
		return 1
	}
	n := int((hold + frame - 1) / frame)
	return max(n, 1)
}

// loadLevel builds a fresh world for def.
func (g *Game) loadLevel(def levels.Def) {
	g.level = def
	g.reported = false
	g.input.reset()

	lvl, err := def.Build(g.rng)
	if err != nil {
		g.loadErr = err
		g.world = nil
		return
	}
	g.loadErr = nil

	timing := sim.Timing{
		HeroPeriod:  g.cfg.Timing.HeroPeriod(),
		EnemyPeriod: g.difficulty.EnemyPeriod(g.cfg.Timing.EnemyPeriod(), g.cleared),
	}
	g.world = sim.NewWorld(lvl, timing)
	g.pointsTotal = lvl.RemainingPoints()
	g.layout()
}

// nextLevel moves on after a win, or past a level that failed to load.
func (g *Game) nextLevel() {
	if g.mode == ModeRandom {
		g.loadLevel(g.picker.Random())
		return
	}
	g.loadLevel(g.picker.Next())
}

// Resize re-centers the maze for a new terminal size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout()
}

// layout centers the maze and flags screens too small to show it.
func (g *Game) layout() {
	if g.world == nil {
		return
	}
	lvl := g.world.Level()
	g.tooSmall = g.screenW < lvl.Width() || g.screenH < lvl.Height()+hudHeight+1
	g.mapOffsetX = max((g.screenW-lvl.Width())/2, 0)
	g.mapOffsetY = hudHeight
}

// Step advances the game by one platform frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.world == nil {
		// The level failed to load; Confirm skips it.
		if in.Has(core.ActionConfirm) {
			g.nextLevel()
		}
		return core.StepResult{State: g.State()}
	}

	status := g.world.Status()

	if in.Has(core.ActionRestart) {
		return g.restartLevel()
	}

	if status == sim.StatusWon {
		if in.Has(core.ActionConfirm) {
			g.nextLevel()
		}
		return core.StepResult{State: g.State()}
	}
	if status.Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.world.Paused() {
			g.world.Resume()
		} else {
			g.world.Pause()
		}
	}

	if g.tooSmall || g.world.Paused() {
		g.input.reset()
		return core.StepResult{State: g.State()}
	}
	keys := g.input.update(in)

	g.world.Advance(g.frame, keys)

	finished := false
	if s := g.world.Status(); s.Terminal() && !g.reported {
		g.reported = true
		finished = true
		outcome := core.OutcomeLost
		if s == sim.StatusWon {
			outcome = core.OutcomeWon
			g.cleared++
			g.banked += g.world.Score()
		}
		g.recordRun(outcome)
	}

	return core.StepResult{State: g.State(), Finished: finished}
}

// restartLevel replays the current level. An undecided attempt is
// reported as abandoned. After a loss the platform restarts the session
// instead, so only the level is replayed here.
func (g *Game) restartLevel() core.StepResult {
	finished := false
	if g.world.Status() == sim.StatusPlaying && g.world.Elapsed() > 0 {
		g.recordRun(core.OutcomeAbandoned)
		finished = true
	}
	if g.world.Status() == sim.StatusWon {
		// Replaying a won level takes its points back out of the bank.
		g.cleared--
		g.banked -= g.world.Score()
	}
	g.loadLevel(g.level)
	return core.StepResult{State: g.State(), Finished: finished}
}

func (g *Game) recordRun(outcome core.Outcome) {
	hero, enemy := g.world.Ticks()
	g.lastRun = core.RunSummary{
		LevelID:     g.level.ID,
		Outcome:     outcome,
		Score:       g.world.Score(),
		PointsTotal: g.pointsTotal,
		Duration:    g.world.Elapsed(),
		HeroTicks:   hero,
		EnemyTicks:  enemy,
	}
	g.hasRun = true
}

// LastRun returns the most recently finished level attempt.
func (g *Game) LastRun() (core.RunSummary, bool) {
	return g.lastRun, g.hasRun
}

// Score returns the session score: cleared levels plus the current one.
func (g *Game) Score() int {
	if g.world == nil || g.world.Status() == sim.StatusWon {
		return g.banked
	}
	return g.banked + g.world.Score()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:   g.Score(),
		LevelID: g.level.ID,
	}
	if g.world == nil {
		return st
	}
	st.Paused = g.world.Paused()
	if g.world.Status() == sim.StatusLost {
		st.GameOver = true
		st.Outcome = core.OutcomeLost
	}
	return st
}

// World exposes the running simulation.
func (g *Game) World() *sim.World {
	return g.world
}

// Level returns the level being played.
func (g *Game) Level() levels.Def {
	return g.level
}

// Cleared returns the number of levels won this session.
func (g *Game) Cleared() int {
	return g.cleared
}

// nearestEnemy returns the shortest path length from the hero to any enemy.
func (g *Game) nearestEnemy() (int, bool) {
	best, found := 0, false
	hero := g.world.Hero().Pos
	for _, e := range g.world.Enemies() {
		if d, ok := maze.PathLength(g.world.Level(), e.Pos, hero); ok && (!found || d < best) {
			best, found = d, true
		}
	}
	return best, found
}
