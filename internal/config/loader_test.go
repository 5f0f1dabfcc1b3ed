package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	got := embeddedDefaults()
	want := DefaultBalloonsConfig()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("embedded defaults differ from DefaultBalloonsConfig():\n got %+v\nwant %+v", got, want)
	}
	if err := want.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadBalloonsCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balloons.yaml")
	data := []byte("tick_rate: 60\ntouch: overlay\ndrift:\n  sway_cells: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadBalloons(path)
	if err != nil {
		t.Fatalf("LoadBalloons() failed: %v", err)
	}

	if cfg.TickRate != 60 || cfg.Touch != TouchOverlay {
		t.Errorf("overrides not applied: tick_rate=%d touch=%q", cfg.TickRate, cfg.Touch)
	}
	if cfg.Drift.SwayCells != 2 {
		t.Errorf("sway_cells = %d, expected 2", cfg.Drift.SwayCells)
	}
	// Untouched keys keep their defaults
	if cfg.Drift.RiseMS != 5000 || len(cfg.Palette) != 5 {
		t.Errorf("defaults lost: rise_ms=%d palette=%v", cfg.Drift.RiseMS, cfg.Palette)
	}
}

func TestLoadBalloonsErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBalloons(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadBalloons() with missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("tick_rate: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadBalloons(bad); err == nil {
		t.Error("LoadBalloons() with malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("touch: sideways\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadBalloons(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadBalloons() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *BalloonsConfig)
	}{
		{"zero tick rate", func(c *BalloonsConfig) { c.TickRate = 0 }},
		{"unknown touch", func(c *BalloonsConfig) { c.Touch = "pinch" }},
		{"empty palette", func(c *BalloonsConfig) { c.Palette = nil }},
		{"alpha in palette", func(c *BalloonsConfig) { c.Palette[2] = "#9515dbff" }},
		{"tiny balloon", func(c *BalloonsConfig) { c.Balloon.Width = 2 }},
		{"zero rise", func(c *BalloonsConfig) { c.Drift.RiseMS = 0 }},
		{"negative stagger", func(c *BalloonsConfig) { c.Drift.StaggerMS = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBalloonsConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvTouch:   "inline",
		EnvFPS:     "45",
		EnvSSHAddr: ":2200",
	}

	cfg := DefaultBalloonsConfig()
	if err := ApplyEnv(&cfg, func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}

	if cfg.Touch != TouchInline || cfg.TickRate != 45 || cfg.Server.Address != ":2200" {
		t.Errorf("env not applied: %+v", cfg)
	}

	env[EnvFPS] = "fast"
	if err := ApplyEnv(&cfg, func(k string) string { return env[k] }); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ApplyEnv() with bad fps = %v, expected ErrInvalidConfig", err)
	}
}

func TestBalloonShapeHeight(t *testing.T) {
	if h := (BalloonShape{Width: 10, BodyHeight: 3, Thread: 3}).Height(); h != 7 {
		t.Errorf("Height() = %d, expected 7", h)
	}
}
