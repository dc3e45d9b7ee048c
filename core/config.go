package core

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// WindowConfig describes the single fixed-size rendering surface.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:  640,
		Height: 640,
		Title:  "Orbit Cubes",
		VSync:  true,
	}
}

// Config is the full application configuration. Values come from
// DefaultConfig, then an optional TOML file, then command-line flags.
type Config struct {
	Window     WindowConfig `toml:"window"`
	LogLevel   string       `toml:"log_level"`
	Seed       int64        `toml:"seed"` // jitter offset seed; 0 picks one from the clock
	ClearColor Color        `toml:"clear_color"`
}

func DefaultConfig() Config {
	return Config{
		Window:     DefaultWindowConfig(),
		LogLevel:   "info",
		ClearColor: ColorBlack,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys missing from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

var errEmptyLevel = errors.New("empty log level")

// ParseLogLevel accepts debug, info, warn or error (any case).
func ParseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, errEmptyLevel
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// NewLogger returns a text logger on stderr filtered at level.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
