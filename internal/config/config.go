// Package config loads the Cyber News Network settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the application configuration
type Config struct {
	Theme   Theme         `yaml:"theme"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// Theme holds the two accent colours used by the cards and header.
type Theme struct {
	CyberBlue string `yaml:"cyber_blue"`
	CyberPink string `yaml:"cyber_pink"`
}

// UIConfig holds UI preferences
type UIConfig struct {
	LoadDelay       time.Duration `yaml:"load_delay"`       // Simulated feed load delay
	GlitchIntensity float64       `yaml:"glitch_intensity"` // 0 disables the title glitch
	AltScreen       bool          `yaml:"alt_screen"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// DefaultTheme returns the stock cyber-blue / cyber-pink pair.
func DefaultTheme() Theme {
	return Theme{
		CyberBlue: "#00fff9",
		CyberPink: "#ff00c1",
	}
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Theme: DefaultTheme(),
		UI: UIConfig{
			LoadDelay:       time.Second,
			GlitchIntensity: 0.08,
			AltScreen:       true,
		},
		Logging: LoggingConfig{
			Dir:   filepath.Join(home, ".cybernews", "logs"),
			Level: "info",
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cybernews", "config.yaml")
}

// Load reads config from path, or returns defaults when the file does not exist.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks colours, delay and glitch intensity.
func (c *Config) Validate() error {
	if !hexColor.MatchString(c.Theme.CyberBlue) {
		return fmt.Errorf("%w: theme.cyber_blue %q is not a #rrggbb colour", ErrInvalid, c.Theme.CyberBlue)
	}
	if !hexColor.MatchString(c.Theme.CyberPink) {
		return fmt.Errorf("%w: theme.cyber_pink %q is not a #rrggbb colour", ErrInvalid, c.Theme.CyberPink)
	}
	if c.UI.LoadDelay < 0 {
		return fmt.Errorf("%w: ui.load_delay must not be negative", ErrInvalid)
	}
	if c.UI.GlitchIntensity < 0 || c.UI.GlitchIntensity > 1 {
		return fmt.Errorf("%w: ui.glitch_intensity must be within [0, 1]", ErrInvalid)
	}
	return nil
}
