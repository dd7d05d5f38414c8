// Package config holds the runtime settings shared by the command-line
// front-ends. Defaults come from TINYLIFE_* environment variables and flags
// override them.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"

	"tiny-life/internal/logging"
	"tiny-life/internal/session"
)

// Config represents the settings of a simulation run.
type Config struct {
	Width    int `env:"TINYLIFE_WIDTH" envDefault:"160"`
	Height   int `env:"TINYLIFE_HEIGHT" envDefault:"120"`
	Capacity int `env:"TINYLIFE_CAPACITY" envDefault:"65536"`
	Scale    int `env:"TINYLIFE_SCALE" envDefault:"2"`
	TPS      int `env:"TINYLIFE_TPS" envDefault:"10"`

	Seed        uint64 `env:"TINYLIFE_SEED" envDefault:"42"`
	ClockSeed   bool   `env:"TINYLIFE_CLOCK_SEED"`
	Pattern     string `env:"TINYLIFE_PATTERN"`
	PatternFile string `env:"TINYLIFE_PATTERN_FILE"`

	AutoReseed     bool   `env:"TINYLIFE_AUTO_RESEED" envDefault:"true"`
	History        int    `env:"TINYLIFE_HISTORY" envDefault:"8"`
	MaxGenerations uint64 `env:"TINYLIFE_MAX_GENERATIONS" envDefault:"0"`

	LiveColor string `env:"TINYLIFE_LIVE_COLOR" envDefault:"#00ff00"`
	Color     bool   `env:"TINYLIFE_COLOR" envDefault:"true"`

	MetricsAddr string `env:"TINYLIFE_METRICS_ADDR"`
	LogLevel    string `env:"TINYLIFE_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"TINYLIFE_LOG_FORMAT" envDefault:"text"`
}

// Load reads the environment into a Config.
func Load() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Bind attaches the grid and seeding settings to fs.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Width, "width", "x", c.Width, "grid width in cells")
	fs.IntVarP(&c.Height, "height", "y", c.Height, "grid height in cells")
	fs.IntVar(&c.Capacity, "capacity", c.Capacity, "storage bound in cells, border included")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for PNG and window output")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for the initial fill")
	fs.BoolVar(&c.ClockSeed, "clock-seed", c.ClockSeed, "seed the initial fill from the wall clock")
	fs.StringVarP(&c.Pattern, "pattern", "p", c.Pattern, "stamp a named pattern instead of a random fill")
	fs.StringVar(&c.PatternFile, "pattern-file", c.PatternFile, "YAML file with extra patterns")
	fs.BoolVar(&c.AutoReseed, "auto-reseed", c.AutoReseed, "reseed when the grid stalls or dies out")
	fs.IntVar(&c.History, "history", c.History, "generations remembered for cycle detection")
	fs.Uint64Var(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 runs forever)")
	fs.StringVar(&c.LiveColor, "live-color", c.LiveColor, "live cell colour as #rrggbb")
	fs.BoolVar(&c.Color, "color", c.Color, "colour terminal output")
}

// BindLogging attaches the logging settings to fs.
func (c *Config) BindLogging(fs *pflag.FlagSet) {
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text, json")
}

// Validate checks ranges and formats.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if c.TPS < 1 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.History < 0 {
		errs = append(errs, fmt.Errorf("history must not be negative, got %d", c.History))
	}
	if _, err := c.Live(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// Session returns the reseed policy for a session.
func (c *Config) Session() session.Config {
	return session.Config{
		AutoReseed:     c.AutoReseed,
		HistoryDepth:   c.History,
		MaxGenerations: c.MaxGenerations,
	}
}

// Live parses LiveColor.
func (c *Config) Live() (color.RGBA, error) {
	s := strings.TrimPrefix(c.LiveColor, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("live colour %q: want #rrggbb", c.LiveColor)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("live colour %q: %w", c.LiveColor, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
