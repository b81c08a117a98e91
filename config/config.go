// Package config loads and validates the settings shared by every Marble Crush host.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/plus3/marblecrush/marble"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all host settings.
type Config struct {
	// Board contains the pixel area and grid layout.
	Board BoardConfig `yaml:"board"`

	// Input contains key bindings.
	Input InputConfig `yaml:"input"`

	// Seed seeds the colour source. Zero picks a random seed at start-up.
	Seed uint64 `yaml:"seed"`

	// TickInterval is the frame period for hosts that drive their own loop.
	TickInterval time.Duration `yaml:"tick_interval" validate:"gt=0"`

	// Log contains logger settings.
	Log LogConfig `yaml:"log"`
}

// BoardConfig describes the board area. Rows and Cols of zero are derived from the area.
type BoardConfig struct {
	Width  int `yaml:"width" validate:"gt=0"`
	Height int `yaml:"height" validate:"gt=0"`
	Radius int `yaml:"radius" validate:"gt=0"`
	Rows   int `yaml:"rows" validate:"gte=0"`
	Cols   int `yaml:"cols" validate:"gte=0"`
}

// InputConfig holds key bindings.
type InputConfig struct {
	RefillKey string `yaml:"refill_key" validate:"required"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the reference configuration: a 300x500 area of radius-10 marbles
// laid out 15 wide and 25 tall.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  300,
			Height: 500,
			Radius: 10,
			Rows:   25,
			Cols:   15,
		},
		Input: InputConfig{
			RefillKey: marble.DefaultRefillKey,
		},
		TickInterval: time.Second / 60,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Grid returns the grid layout, deriving rows and columns from the area when unset.
func (c Config) Grid() marble.Grid {
	g := marble.GridForArea(c.Board.Width, c.Board.Height, c.Board.Radius)
	if c.Board.Rows > 0 {
		g.Rows = c.Board.Rows
	}
	if c.Board.Cols > 0 {
		g.Cols = c.Board.Cols
	}
	return g
}

// Logger builds a slog logger writing to w.
func (c Config) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
