package config

import (
	"math"
	"time"
)

// DifficultyManager calculates the enemy pace from session progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) after the given
// number of cleared levels.
func (d *DifficultyManager) Level(cleared int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type != "levels" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(cleared)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemyPeriod returns the enemy step period for the difficulty reached
// after the given number of cleared levels.
func (d *DifficultyManager) EnemyPeriod(base time.Duration, cleared int) time.Duration {
	level := d.Level(cleared)
	period := time.Duration(float64(base) * (1.0 - level*d.cfg.Scaling.EnemySpeedup))

	floor := time.Duration(d.cfg.Scaling.MinEnemyPeriodMs) * time.Millisecond
	if floor > base {
		floor = base
	}
	if period < floor {
		period = floor
	}
	return period
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
