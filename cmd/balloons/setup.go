package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/joho/godotenv"

	"github.com/vovakirdan/balloon-quiz/internal/config"
	"github.com/vovakirdan/balloon-quiz/internal/games/balloons"
	"github.com/vovakirdan/balloon-quiz/internal/quiz"
	"github.com/vovakirdan/balloon-quiz/internal/registry"
)

// loadConfig builds the effective configuration.
// Precedence: flags -> environment (.env included) -> config file -> defaults.
func loadConfig() (config.BalloonsConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config.BalloonsConfig{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := config.LoadBalloons(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagTouch != "" {
		cfg.Touch = flagTouch
	}
	return cfg, cfg.Validate()
}

// gameFactory returns a constructor for independent games sharing cfg.
func gameFactory(cfg config.BalloonsConfig) func() (*balloons.Game, error) {
	return func() (*balloons.Game, error) {
		strategy, err := registry.Resolve(cfg.Touch, runtime.GOOS)
		if err != nil {
			return nil, err
		}
		return balloons.New(quiz.DefaultBank(), cfg, strategy)
	}
}
