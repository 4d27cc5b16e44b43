// Package config holds the host settings for the fern viewer and exporters.
package config

import (
	"bytes"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

type Config struct {
	// Seed for the draw source. Zero picks a time-based seed.
	Seed uint64 `toml:"seed"`

	// Batch is the number of points generated per tick.
	Batch int `toml:"batch"`

	// Interval between ticks in the viewer.
	Interval Duration `toml:"interval"`

	// History caps how many points the viewer keeps for redraws.
	History int `toml:"history"`

	Color  string  `toml:"color"`
	Alpha  float64 `toml:"alpha"`
	Radius float64 `toml:"radius"`

	// Export settings.
	Size    int `toml:"size"`
	Points  int `toml:"points"`
	Workers int `toml:"workers"`
}

// Duration is a time.Duration written as a string ("16ms") in TOML.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return errors.Wrapf(err, "duration %q", b)
	}
	d.Duration = v
	return nil
}

// Default mirrors the browser host: 1000 points per frame at roughly 60
// frames a second, drawn in translucent green on an 800 pixel square.
func Default() Config {
	return Config{
		Batch:    1000,
		Interval: Duration{16 * time.Millisecond},
		History:  200000,
		Color:    "#007f00",
		Alpha:    0.2,
		Radius:   0.002,
		Size:     800,
		Points:   200000,
		Workers:  1,
	}
}

// Load reads path over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "read config")
	}
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return c, errors.Wrapf(err, "parse %s", path)
	}
	return c, c.Validate()
}

// Save writes c to path as TOML.
func (c Config) Save(path string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrap(os.WriteFile(path, b, 0o644), "write config")
}

func (c Config) Validate() error {
	switch {
	case c.Batch <= 0:
		return errors.Errorf("batch must be positive, got %d", c.Batch)
	case c.Interval.Duration <= 0:
		return errors.Errorf("interval must be positive, got %s", c.Interval)
	case c.History < c.Batch:
		return errors.Errorf("history %d smaller than batch %d", c.History, c.Batch)
	case c.Alpha <= 0 || c.Alpha > 1:
		return errors.Errorf("alpha must be in (0,1], got %v", c.Alpha)
	case c.Radius <= 0:
		return errors.Errorf("radius must be positive, got %v", c.Radius)
	case c.Size <= 0:
		return errors.Errorf("size must be positive, got %d", c.Size)
	case c.Points < 0:
		return errors.Errorf("points must not be negative, got %d", c.Points)
	case c.Workers <= 0:
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := c.Colorful(); err != nil {
		return err
	}
	return nil
}

// Colorful parses the configured fill colour.
func (c Config) Colorful() (colorful.Color, error) {
	col, err := colorful.Hex(c.Color)
	if err != nil {
		return colorful.Color{}, errors.Wrapf(err, "color %q", c.Color)
	}
	return col, nil
}

// SeedOr returns the configured seed, or fallback when none is set.
func (c Config) SeedOr(fallback uint64) uint64 {
	if c.Seed == 0 {
		return fallback
	}
	return c.Seed
}
