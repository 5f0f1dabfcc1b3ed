// Package config provides YAML-based configuration loading for the balloon
// quiz: timing, palette, balloon shape, drift animation and SSH server
// settings. The question bank itself is not configurable.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/balloon-quiz/internal/core"
)

// Touch strategy names accepted in configuration.
const (
	TouchAuto    = "auto"
	TouchInline  = "inline"
	TouchOverlay = "overlay"
)

var ErrInvalidConfig = errors.New("config: invalid")

// BalloonsConfig contains all configuration for the game.
type BalloonsConfig struct {
	TickRate int          `yaml:"tick_rate"`
	Touch    string       `yaml:"touch"`
	Palette  []core.Color `yaml:"palette"`
	Balloon  BalloonShape `yaml:"balloon"`
	Drift    DriftConfig  `yaml:"drift"`
	Server   ServerConfig `yaml:"server"`
}

// BalloonShape defines the size of a balloon in cells.
type BalloonShape struct {
	Width      int `yaml:"width"`
	BodyHeight int `yaml:"body_height"`
	Thread     int `yaml:"thread"` // Thread length below the knot
}

// Height is the full height of a balloon including knot and thread.
func (b BalloonShape) Height() int {
	return b.BodyHeight + 1 + b.Thread
}

// DriftConfig defines the decorative looping motion of each balloon.
type DriftConfig struct {
	RiseMS    int     `yaml:"rise_ms"`    // Time to float from bottom to top
	SwayMS    int     `yaml:"sway_ms"`    // Time for one half of the side-to-side swing
	SwayCells int     `yaml:"sway_cells"` // Swing amplitude either side of the start column
	StaggerMS int     `yaml:"stagger_ms"` // Delay added per balloon position
	StartFrac float64 `yaml:"start_frac"` // Start column of the first balloon, as a fraction of width
	StepFrac  float64 `yaml:"step_frac"`  // Column offset between balloons, as a fraction of width
}

// Rise returns RiseMS as a duration.
func (d DriftConfig) Rise() time.Duration {
	return time.Duration(d.RiseMS) * time.Millisecond
}

// Sway returns SwayMS as a duration.
func (d DriftConfig) Sway() time.Duration {
	return time.Duration(d.SwayMS) * time.Millisecond
}

// Stagger returns StaggerMS as a duration.
func (d DriftConfig) Stagger() time.Duration {
	return time.Duration(d.StaggerMS) * time.Millisecond
}

// ServerConfig defines the SSH server settings.
type ServerConfig struct {
	Address        string `yaml:"address"`
	HostKeyPath    string `yaml:"host_key_path"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}

// IdleTimeout returns IdleTimeoutMin as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMin) * time.Minute
}

// Validate reports the first invalid setting.
func (c BalloonsConfig) Validate() error {
	switch {
	case c.TickRate <= 0 || c.TickRate > 240:
		return fmt.Errorf("%w: tick_rate %d out of range 1..240", ErrInvalidConfig, c.TickRate)
	case !IsTouchMode(c.Touch):
		return fmt.Errorf("%w: touch %q (want auto, inline or overlay)", ErrInvalidConfig, c.Touch)
	case len(c.Palette) == 0:
		return fmt.Errorf("%w: palette is empty", ErrInvalidConfig)
	case c.Balloon.Width < 4 || c.Balloon.BodyHeight < 3 || c.Balloon.Thread < 0:
		return fmt.Errorf("%w: balloon shape %+v too small", ErrInvalidConfig, c.Balloon)
	case c.Drift.RiseMS <= 0 || c.Drift.SwayMS <= 0:
		return fmt.Errorf("%w: drift durations must be positive", ErrInvalidConfig)
	case c.Drift.SwayCells < 0 || c.Drift.StaggerMS < 0:
		return fmt.Errorf("%w: drift sway and stagger must not be negative", ErrInvalidConfig)
	}

	for i, col := range c.Palette {
		if col == core.ColorDefault || !col.Valid() {
			return fmt.Errorf("%w: palette[%d] %q is not #rrggbb", ErrInvalidConfig, i, col)
		}
	}
	return nil
}

// IsTouchMode reports whether s names a touch strategy setting.
func IsTouchMode(s string) bool {
	switch s {
	case TouchAuto, TouchInline, TouchOverlay:
		return true
	}
	return false
}
