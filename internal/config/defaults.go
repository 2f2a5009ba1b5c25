package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Timing: ChaseTiming{
			HeroPeriodMs:  100,
			EnemyPeriodMs: 500,
		},
		Input: ChaseInput{
			HoldMs: 160,
		},
		Difficulty: DifficultyConfig{
			Preset:       DifficultyNormal,
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "levels",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				EnemySpeedup:     0.5,
				MinEnemyPeriodMs: 150,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "chase":
		return defaultChaseYAML
	default:
		return nil
	}
}
