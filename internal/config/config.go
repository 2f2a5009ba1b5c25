// Package config provides YAML-based game configuration loading and
// difficulty management for the maze chase game.
package config

import (
	"fmt"
	"time"
)

// ChaseConfig contains all configuration for the chase game.
type ChaseConfig struct {
	Timing     ChaseTiming      `yaml:"timing"`
	Input      ChaseInput       `yaml:"input"`
	Levels     ChaseLevels      `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ChaseTiming defines how often the hero and the enemies step.
type ChaseTiming struct {
	HeroPeriodMs  int `yaml:"hero_period_ms"`
	EnemyPeriodMs int `yaml:"enemy_period_ms"`
}

// HeroPeriod returns the hero step period.
func (t ChaseTiming) HeroPeriod() time.Duration {
	return time.Duration(t.HeroPeriodMs) * time.Millisecond
}

// EnemyPeriod returns the enemy step period.
func (t ChaseTiming) EnemyPeriod() time.Duration {
	return time.Duration(t.EnemyPeriodMs) * time.Millisecond
}

// ChaseInput defines input handling.
type ChaseInput struct {
	// HoldMs is how long a key press counts as held. Terminals report
	// presses and auto-repeat but no releases.
	HoldMs int `yaml:"hold_ms"`
}

// Hold returns the key hold window.
func (i ChaseInput) Hold() time.Duration {
	return time.Duration(i.HoldMs) * time.Millisecond
}

// ChaseLevels defines where levels come from.
type ChaseLevels struct {
	Dir string `yaml:"dir"` // empty = built-in pack
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Preset       DifficultyPreset  `yaml:"preset"`
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "levels" or "none"
	MaxAt int    `yaml:"max_at"` // Cleared levels at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	EnemySpeedup     float64 `yaml:"enemy_speedup"`       // Fraction of the enemy period removed at max difficulty
	MinEnemyPeriodMs int     `yaml:"min_enemy_period_ms"` // Floor for the enemy period
}

// Validate checks that the configuration can drive a game.
func (c ChaseConfig) Validate() error {
	if c.Timing.HeroPeriodMs <= 0 {
		return fmt.Errorf("timing.hero_period_ms must be positive, got %d", c.Timing.HeroPeriodMs)
	}
	if c.Timing.EnemyPeriodMs <= 0 {
		return fmt.Errorf("timing.enemy_period_ms must be positive, got %d", c.Timing.EnemyPeriodMs)
	}
	if c.Input.HoldMs < 0 {
		return fmt.Errorf("input.hold_ms must not be negative, got %d", c.Input.HoldMs)
	}
	if c.Difficulty.Scaling.EnemySpeedup < 0 || c.Difficulty.Scaling.EnemySpeedup >= 1 {
		return fmt.Errorf("difficulty.scaling.enemy_speedup must be in [0, 1), got %v", c.Difficulty.Scaling.EnemySpeedup)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.3
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
