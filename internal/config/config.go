package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/page"
)

// Defaults for a fresh config
const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultTPS      = 60
	DefaultHeadline = "Build worlds, one particle at a time"
)

// Config is the on-disk configuration of the particle field and its page
type Config struct {
	Width      int            `yaml:"width"`
	Height     int            `yaml:"height"`
	TPS        int            `yaml:"tps"`
	Seed       int64          `yaml:"seed"` // 0 seeds from the clock
	Background string         `yaml:"background"`
	Particles  ParticleConfig `yaml:"particles"`
	Page       PageConfig     `yaml:"page"`
}

// ParticleConfig tunes the simulation, see field.Params
type ParticleConfig struct {
	MaxParticles      int     `yaml:"max_particles"`
	AreaPerParticle   float64 `yaml:"area_per_particle"`
	InfluenceRadius   float64 `yaml:"influence_radius"`
	PointerForce      float64 `yaml:"pointer_force"`
	MaxSpeed          float64 `yaml:"max_speed"`
	ConnectionRadius  float64 `yaml:"connection_radius"`
	ConnectionOpacity float64 `yaml:"connection_opacity"`
	LineWidth         float64 `yaml:"line_width"`
}

// PageConfig describes the page shown over the field
type PageConfig struct {
	Headline   string          `yaml:"headline"`
	TypeSpeed  int             `yaml:"type_speed_ms"`
	Sections   []SectionConfig `yaml:"sections"`
	CardHeight float64         `yaml:"card_height"`
}

// SectionConfig is one page section with its cards, laid out top to bottom
type SectionConfig struct {
	ID     string   `yaml:"id"`
	Title  string   `yaml:"title"`
	Height float64  `yaml:"height"`
	Cards  []string `yaml:"cards"`
}

// DefaultConfig returns the website settings
func DefaultConfig() *Config {
	prm := field.DefaultParams()
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		TPS:        DefaultTPS,
		Background: "#0a0a12",
		Particles: ParticleConfig{
			MaxParticles:      prm.MaxParticles,
			AreaPerParticle:   prm.AreaPerParticle,
			InfluenceRadius:   prm.InfluenceRadius,
			PointerForce:      prm.PointerForce,
			MaxSpeed:          prm.MaxSpeed,
			ConnectionRadius:  prm.ConnectionRadius,
			ConnectionOpacity: prm.ConnectionOpacity,
			LineWidth:         prm.LineWidth,
		},
		Page: PageConfig{
			Headline:   DefaultHeadline,
			TypeSpeed:  int(page.DefaultTypeSpeed / time.Millisecond),
			CardHeight: 120,
			Sections: []SectionConfig{
				{ID: "home", Title: "Home", Height: 600},
				{ID: "about", Title: "About", Height: 700, Cards: []string{"Story", "Team", "Studio"}},
				{ID: "platforms", Title: "Platforms", Height: 600, Cards: []string{"PC", "Console", "Mobile"}},
				{ID: "schedule", Title: "Schedule", Height: 600, Cards: []string{"Beta", "Launch"}},
				{ID: "contact", Title: "Contact", Height: 500, Cards: []string{"Mail", "Social"}},
			},
		},
	}
}

// Load reads a YAML file over the defaults and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, errors.New("width and height must not be negative"))
	}
	if c.TPS <= 0 {
		errs = append(errs, errors.New("tps must be positive"))
	}
	p := c.Particles
	if p.MaxParticles < 0 {
		errs = append(errs, errors.New("particles.max_particles must not be negative"))
	}
	if p.AreaPerParticle <= 0 {
		errs = append(errs, errors.New("particles.area_per_particle must be positive"))
	}
	if p.InfluenceRadius <= 0 || p.ConnectionRadius <= 0 {
		errs = append(errs, errors.New("particles radii must be positive"))
	}
	if p.MaxSpeed <= 0 {
		errs = append(errs, errors.New("particles.max_speed must be positive"))
	}
	if c.Background != "" {
		if _, err := colorful.Hex(c.Background); err != nil {
			errs = append(errs, fmt.Errorf("background %q must be a hex color", c.Background))
		}
	}
	seen := make(map[string]bool)
	for _, s := range c.Page.Sections {
		if s.ID == "" {
			errs = append(errs, errors.New("page section without id"))
		} else if seen[s.ID] {
			errs = append(errs, fmt.Errorf("duplicate page section %q", s.ID))
		}
		seen[s.ID] = true
	}
	return errors.Join(errs...)
}

// ValidateWindow additionally requires a drawable window size.
// Headless rendering accepts a zero area, a window does not.
func (c *Config) ValidateWindow() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	return nil
}

// Params returns the field tuning
func (c *Config) Params() field.Params {
	p := c.Particles
	return field.Params{
		MaxParticles:      p.MaxParticles,
		AreaPerParticle:   p.AreaPerParticle,
		InfluenceRadius:   p.InfluenceRadius,
		PointerForce:      p.PointerForce,
		MaxSpeed:          p.MaxSpeed,
		ConnectionRadius:  p.ConnectionRadius,
		ConnectionOpacity: p.ConnectionOpacity,
		LineWidth:         p.LineWidth,
	}
}

// BuildPage lays the sections out top to bottom and creates the page
func (c *Config) BuildPage() *page.Page {
	var (
		sections []page.Section
		cards    []*page.Card
		top      float64
	)
	for _, sc := range c.Page.Sections {
		sections = append(sections, page.Section{ID: sc.ID, Title: sc.Title, Top: top, Height: sc.Height})
		for i, title := range sc.Cards {
			cards = append(cards, &page.Card{
				Title:  title,
				Top:    top + 80 + float64(i)*(c.Page.CardHeight+20),
				Height: c.Page.CardHeight,
				Index:  i,
			})
		}
		top += sc.Height
	}
	speed := time.Duration(c.Page.TypeSpeed) * time.Millisecond
	return page.New(sections, cards, c.Page.Headline, speed, c.TPS)
}
