package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 480
	WindowHeight = 860

	VisualRingSize = 8192
	SampleRate     = 44100

	// Panel placement and button metrics
	PanelY        = 30
	PanelPadding  = 24
	ButtonColumns = 4
	ButtonWidth   = 72
	ButtonHeight  = 52
	ButtonGap     = 12
	HeaderHeight  = 32
	DisplayHeight = 88
	SectionGap    = 20

	// Visualization parameters
	ParticleCount     = 200
	ParticleOpacity   = 0.5
	DisplaySlideTicks = 12
	DisplaySlideDist  = 20
	ClickPulseGain    = 6
	PanelOpacity      = 0.8
)

// Theme selects the colour scheme at startup.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Config is the user facing configuration, loaded from YAML and then
// overridden by command line flags.
type Config struct {
	Theme      Theme  `yaml:"theme"`
	Scientific bool   `yaml:"scientific"`
	Sound      bool   `yaml:"sound"`
	Particles  int    `yaml:"particles"`
	LogLevel   string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Theme:     ThemeAuto,
		Sound:     true,
		Particles: ParticleCount,
		LogLevel:  "info",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	if c.Particles < 0 {
		return errors.New("particles must not be negative")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Dark resolves the theme. Auto follows the desktop's dark preference as
// far as the environment exposes it.
func (c Config) Dark(getenv func(string) string) bool {
	switch c.Theme {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	}
	if strings.Contains(strings.ToLower(getenv("GTK_THEME")), "dark") {
		return true
	}
	// COLORFGBG is "fg;bg"; a background of 0-6 or 8 is a dark palette entry.
	if fgbg := getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		switch parts[len(parts)-1] {
		case "0", "1", "2", "3", "4", "5", "6", "8":
			return true
		}
	}
	return false
}

func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}
