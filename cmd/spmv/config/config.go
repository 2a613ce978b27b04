// SPDX-License-Identifier: MIT

// Package config holds the spmv driver settings: a yaml file layered over
// built-in defaults, with command-line flags applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid reports a setting outside its allowed values.
var ErrInvalid = errors.New("config: invalid setting")

// Accepted values.
const (
	OrientationRow    = "row"
	OrientationColumn = "column"

	FormatText = "text"
	FormatJSON = "json"
)

// Defaults.
const (
	DefaultOrientation = OrientationRow
	DefaultRepeat      = 10
	DefaultLogLevel    = "info"
	DefaultLogFormat   = FormatText
	DefaultBTreeDegree = 32
	DefaultGridLimit   = 24
)

// Config is the effective driver configuration.
type Config struct {
	Orientation string    `yaml:"orientation"`
	Repeat      int       `yaml:"repeat"`
	BTreeDegree int       `yaml:"btree_degree"`
	GridLimit   int       `yaml:"grid_limit"`
	MetricsFile string    `yaml:"metrics_file,omitempty"`
	NoColor     bool      `yaml:"no_color"`
	Log         LogConfig `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Orientation: DefaultOrientation,
		Repeat:      DefaultRepeat,
		BTreeDegree: DefaultBTreeDegree,
		GridLimit:   DefaultGridLimit,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads path over Default. An empty path yields the defaults. Keys absent
// from the file keep their default values; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Marshal renders cfg as yaml.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every setting.
func (c Config) Validate() error {
	switch c.Orientation {
	case OrientationRow, OrientationColumn:
	default:
		return fmt.Errorf("orientation %q (want %s|%s): %w", c.Orientation, OrientationRow, OrientationColumn, ErrInvalid)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("repeat %d (want >= 1): %w", c.Repeat, ErrInvalid)
	}
	if c.BTreeDegree < 2 {
		return fmt.Errorf("btree_degree %d (want >= 2): %w", c.BTreeDegree, ErrInvalid)
	}
	if c.GridLimit < 0 {
		return fmt.Errorf("grid_limit %d (want >= 0): %w", c.GridLimit, ErrInvalid)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("log.format %q (want %s|%s): %w", c.Log.Format, FormatText, FormatJSON, ErrInvalid)
	}

	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error", or offsets like
// "info+2").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return lvl, fmt.Errorf("log.level %q: %w", l.Level, ErrInvalid)
	}

	return lvl, nil
}
