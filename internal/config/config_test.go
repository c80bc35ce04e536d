package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olivierh59500/particle-field-go/internal/field"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Params() != field.DefaultParams() {
		t.Errorf("expected default params, got %+v", cfg.Params())
	}
	if cfg.TPS <= 0 {
		t.Error("tps should be positive")
	}
}

func TestSaveLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.yaml")
	cfg := DefaultConfig()
	cfg.Particles.MaxParticles = 200
	cfg.Seed = 42
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Particles.MaxParticles != 200 || loaded.Seed != 42 {
		t.Errorf("unexpected loaded config: %+v", loaded)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.yaml")
	if err := os.WriteFile(path, []byte("width: 1024\nparticles:\n  max_particles: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1024 || cfg.Particles.MaxParticles != 10 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Height != DefaultHeight || cfg.Particles.ConnectionRadius != field.ConnectionRadius {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("particles:\n  max_speed: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "max_speed") {
		t.Errorf("expected max_speed error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative size", func(c *Config) { c.Width = -1 }},
		{"zero tps", func(c *Config) { c.TPS = 0 }},
		{"negative cap", func(c *Config) { c.Particles.MaxParticles = -5 }},
		{"zero area", func(c *Config) { c.Particles.AreaPerParticle = 0 }},
		{"zero radius", func(c *Config) { c.Particles.ConnectionRadius = 0 }},
		{"duplicate section", func(c *Config) {
			c.Page.Sections = append(c.Page.Sections, SectionConfig{ID: "home"})
		}},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestBuildPage(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.BuildPage()

	if len(p.Nav.Sections) != len(cfg.Page.Sections) {
		t.Fatalf("expected %d sections, got %d", len(cfg.Page.Sections), len(p.Nav.Sections))
	}
	if p.Nav.Sections[1].Top != 600 {
		t.Errorf("expected about at 600, got %v", p.Nav.Sections[1].Top)
	}
	if p.Height != 3000 {
		t.Errorf("expected document height 3000, got %v", p.Height)
	}
	if len(p.Reveal.Cards) != 10 {
		t.Errorf("expected 10 cards, got %d", len(p.Reveal.Cards))
	}
}

func TestValidateWindow(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ValidateWindow(); err != nil {
		t.Fatalf("default config should open a window: %v", err)
	}

	for _, size := range [][2]int{{0, 600}, {800, 0}, {0, 0}} {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = size[0], size[1]
		if err := cfg.Validate(); err != nil {
			t.Errorf("%v: zero area should stay valid headless: %v", size, err)
		}
		if err := cfg.ValidateWindow(); err == nil {
			t.Errorf("%v: expected window size error", size)
		}
	}

	cfg = DefaultConfig()
	cfg.TPS = 0
	if err := cfg.ValidateWindow(); err == nil {
		t.Error("expected base validation to run")
	}
}

func TestValidateBackground(t *testing.T) {
	tests := []struct {
		background string
		valid      bool
	}{
		{"", true},
		{"#0a0a12", true},
		{"#FFF", true},
		{"teal", false},
		{`#000" onload="x`, false},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Background = tt.background
		err := cfg.Validate()
		if tt.valid && err != nil {
			t.Errorf("%q: unexpected error %v", tt.background, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("%q: expected error", tt.background)
		}
	}
}
