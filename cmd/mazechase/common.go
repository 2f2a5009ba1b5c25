package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/levels"
	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

// gameOptions collects the global flags that shape a game.
func gameOptions(levelID string) registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		LevelsDir:  flagLevelsDir,
		Difficulty: flagDifficulty,
		LevelID:    levelID,
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// loadSettings loads the game config and the level list it points at.
func loadSettings() (config.ChaseConfig, []levels.Def, error) {
	cfg, err := config.LoadChase(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	dir := cfg.Levels.Dir
	if flagLevelsDir != "" {
		dir = flagLevelsDir
	}
	defs, err := levels.Load(dir)
	return cfg, defs, err
}

// openStore opens the score database. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
