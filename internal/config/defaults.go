package config

import (
	_ "embed"

	"github.com/vovakirdan/balloon-quiz/internal/core"
)

//go:embed defaults/balloons.yaml
var defaultBalloonsYAML []byte

// DefaultBalloonsConfig returns the hard-coded configuration, used when the
// embedded YAML cannot be parsed.
func DefaultBalloonsConfig() BalloonsConfig {
	return BalloonsConfig{
		TickRate: 30,
		Touch:    TouchAuto,
		Palette:  []core.Color{"#6366f1", "#ec4899", "#9515db", "#3b82f6", "#f59e0b"},
		Balloon: BalloonShape{
			Width:      10,
			BodyHeight: 3,
			Thread:     3,
		},
		Drift: DriftConfig{
			RiseMS:    5000,
			SwayMS:    2500,
			SwayCells: 4,
			StaggerMS: 400,
			StartFrac: 0.15,
			StepFrac:  0.15,
		},
		Server: ServerConfig{
			Address:        ":23235",
			IdleTimeoutMin: 30,
		},
	}
}
