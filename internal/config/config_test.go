package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg ChaseConfig
	if err := yaml.Unmarshal(GetDefaultYAML("chase"), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultChaseConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultChaseConfig())
	}
	if GetDefaultYAML("flappy") != nil {
		t.Error("expected nil yaml for unknown game")
	}
}

func TestLoadChaseCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chase.yaml")
	data := "timing:\n  enemy_period_ms: 300\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadChase(path)
	if err != nil {
		t.Fatalf("LoadChase failed: %v", err)
	}
	if cfg.Timing.EnemyPeriod() != 300*time.Millisecond {
		t.Errorf("EnemyPeriod = %v, expected 300ms", cfg.Timing.EnemyPeriod())
	}
	if cfg.Timing.HeroPeriod() != 100*time.Millisecond {
		t.Errorf("HeroPeriod = %v, expected default 100ms", cfg.Timing.HeroPeriod())
	}
	if cfg.Input.Hold() != 160*time.Millisecond {
		t.Errorf("Hold = %v, expected default 160ms", cfg.Input.Hold())
	}
}

func TestLoadChaseErrors(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "timing: [", "failed to parse"},
		{"zero hero period", "timing:\n  hero_period_ms: 0\n", "hero_period_ms"},
		{"negative hold", "input:\n  hold_ms: -1\n", "hold_ms"},
		{"speedup too large", "difficulty:\n  scaling:\n    enemy_speedup: 1.5\n", "enemy_speedup"},
	}

	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "c"+string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadChase(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadChase error = %v, expected to contain %q", err, tc.want)
			}
		})
	}

	if _, err := LoadChase(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadChaseUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadChase("")
	if err != nil {
		t.Fatalf("LoadChase failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultChaseConfig()) {
		t.Errorf("expected embedded defaults without user config, got %+v", cfg)
	}

	dir := filepath.Join(home, ".mazechase", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "chase.yaml"), []byte("input:\n  hold_ms: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadChase("")
	if err != nil {
		t.Fatalf("LoadChase failed: %v", err)
	}
	if cfg.Input.HoldMs != 90 {
		t.Errorf("HoldMs = %d, expected 90 from user config", cfg.Input.HoldMs)
	}
}

func TestApplyChasePreset(t *testing.T) {
	testCases := []struct {
		preset      DifficultyPreset
		enabled     bool
		enemyPeriod int
		initial     float64
	}{
		{DifficultyEasy, true, 650, 0.0},
		{DifficultyNormal, true, 500, 0.0},
		{DifficultyHard, true, 400, 0.3},
		{DifficultyFixed, false, 500, 0.0},
	}

	for _, tc := range testCases {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultChaseConfig()
			ApplyChasePreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Timing.EnemyPeriodMs != tc.enemyPeriod {
				t.Errorf("EnemyPeriodMs = %d, expected %d", cfg.Timing.EnemyPeriodMs, tc.enemyPeriod)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initial)
			}
			if cfg.Difficulty.Preset != tc.preset {
				t.Errorf("Preset = %v, expected %v", cfg.Difficulty.Preset, tc.preset)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		if p, err := ParsePreset(name); err != nil || string(p) != name {
			t.Errorf("ParsePreset(%q) = %q, %v", name, p, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestDifficultyEnemyPeriod(t *testing.T) {
	base := 500 * time.Millisecond
	cfg := DefaultChaseConfig().Difficulty
	cfg.Scaling.MinEnemyPeriodMs = 0

	dm := NewDifficultyManager(cfg)
	testCases := []struct {
		cleared  int
		expected time.Duration
	}{
		{0, 500 * time.Millisecond},
		{4, 375 * time.Millisecond},
		{8, 250 * time.Millisecond},
		{100, 250 * time.Millisecond},
	}
	for _, tc := range testCases {
		if got := dm.EnemyPeriod(base, tc.cleared); got != tc.expected {
			t.Errorf("EnemyPeriod(%d) = %v, expected %v", tc.cleared, got, tc.expected)
		}
	}

	cfg.Scaling.MinEnemyPeriodMs = 300
	floored := NewDifficultyManager(cfg)
	if got := floored.EnemyPeriod(base, 8); got != 300*time.Millisecond {
		t.Errorf("floored EnemyPeriod = %v, expected 300ms", got)
	}

	cfg.Enabled = false
	fixed := NewDifficultyManager(cfg)
	if fixed.IsEnabled() {
		t.Error("expected progression disabled")
	}
	if got := fixed.EnemyPeriod(base, 8); got != base {
		t.Errorf("fixed EnemyPeriod = %v, expected %v", got, base)
	}
}
