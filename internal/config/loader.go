package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvTouch   = "BALLOONS_TOUCH"
	EnvFPS     = "BALLOONS_FPS"
	EnvSSHAddr = "BALLOONS_SSH_ADDR"
)

// LoadBalloons loads the game configuration.
// Search order: customPath -> ~/.balloons/configs/balloons.yaml -> ./configs/balloons.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadBalloons(customPath string) (BalloonsConfig, error) {
	cfg := embeddedDefaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("balloons.yaml"), filepath.Join("configs", "balloons.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := embeddedDefaults()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	return cfg, nil
}

// embeddedDefaults decodes the embedded YAML, falling back to hard-coded values.
func embeddedDefaults() BalloonsConfig {
	var cfg BalloonsConfig
	if err := yaml.Unmarshal(defaultBalloonsYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultBalloonsConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".balloons", "configs", filename)
}

// ApplyEnv overrides settings from environment variables read through getenv.
func ApplyEnv(cfg *BalloonsConfig, getenv func(string) string) error {
	if v := getenv(EnvTouch); v != "" {
		cfg.Touch = v
	}
	if v := getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvFPS, v)
		}
		cfg.TickRate = fps
	}
	if v := getenv(EnvSSHAddr); v != "" {
		cfg.Server.Address = v
	}
	return cfg.Validate()
}
