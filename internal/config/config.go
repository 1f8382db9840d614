// Package config loads render settings for the mandelbrot command.
//
// Settings are layered with koanf: built-in defaults, then an optional TOML
// file, then command-line overrides. All keys live under the "mandelbrot"
// table:
//
//	[mandelbrot]
//	output      = "mandel.png"
//	pixels      = "1000x750"
//	upper_left  = "-1.20,0.35"
//	lower_right = "-1,0.20"
//	workers     = 8
//	limit       = 255
//	supersample = 1
//	format      = ""        # empty: derived from the output extension
//	sequential  = false
//	log_level   = "info"
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"

	"github.com/gogpu/mandelbrot"
)

// Key is the TOML table holding all settings.
const Key = "mandelbrot"

// ErrMissing is returned when a required setting has no value.
var ErrMissing = errors.New("config: missing setting")

// Config is the raw, unvalidated settings as read from all layers.
type Config struct {
	Output      string `koanf:"output"`
	Pixels      string `koanf:"pixels"`
	UpperLeft   string `koanf:"upper_left"`
	LowerRight  string `koanf:"lower_right"`
	Format      string `koanf:"format"`
	Workers     int    `koanf:"workers"`
	Limit       int    `koanf:"limit"`
	Supersample int    `koanf:"supersample"`
	Sequential  bool   `koanf:"sequential"`
	LogLevel    string `koanf:"log_level"`
}

// Defaults returns the built-in settings, keyed without the table prefix.
func Defaults() map[string]any {
	return map[string]any{
		"workers":     mandelbrot.DefaultWorkers,
		"limit":       mandelbrot.DefaultLimit,
		"supersample": 1,
		"sequential":  false,
		"log_level":   "info",
	}
}

// Load reads the layers in order: Defaults, the TOML file at path (skipped
// if path is empty), then overrides. Override keys are unprefixed, e.g.
// "workers".
func Load(path string, overrides map[string]any) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(prefixed(Defaults()), "."), nil); err != nil {
		return Config{}, fmt.Errorf("config: defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(prefixed(overrides), "."), nil); err != nil {
			return Config{}, fmt.Errorf("config: overrides: %w", err)
		}
	}

	var c Config
	if err := k.Unmarshal(Key, &c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return c, nil
}

func prefixed(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, v := range m {
		out[Key+"."+key] = v
	}
	return out
}

// Job is a validated render request.
type Job struct {
	Output   string
	Format   mandelbrot.Format
	Bounds   mandelbrot.Bounds
	Plane    mandelbrot.Plane
	LogLevel slog.Level
	Options  []mandelbrot.RendererOption
}

// Resolve parses and validates the raw settings.
func (c Config) Resolve() (Job, error) {
	var job Job

	if c.Output == "" {
		return job, fmt.Errorf("%w: output file", ErrMissing)
	}
	job.Output = c.Output

	if c.Pixels == "" {
		return job, fmt.Errorf("%w: pixels", ErrMissing)
	}
	if err := job.Bounds.UnmarshalText([]byte(c.Pixels)); err != nil {
		return job, err
	}
	if err := job.Bounds.Validate(); err != nil {
		return job, err
	}

	if c.UpperLeft == "" || c.LowerRight == "" {
		return job, fmt.Errorf("%w: upper-left and lower-right corners", ErrMissing)
	}
	if err := job.Plane.UpperLeft.UnmarshalText([]byte(c.UpperLeft)); err != nil {
		return job, err
	}
	if err := job.Plane.LowerRight.UnmarshalText([]byte(c.LowerRight)); err != nil {
		return job, err
	}
	if err := job.Plane.Validate(); err != nil {
		return job, err
	}

	var err error
	if c.Format == "" {
		job.Format, err = mandelbrot.FormatFromPath(c.Output)
	} else {
		job.Format, err = mandelbrot.ParseFormat(c.Format)
	}
	if err != nil {
		return job, err
	}

	if err := job.LogLevel.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return job, fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}

	job.Options = []mandelbrot.RendererOption{
		mandelbrot.WithWorkers(c.Workers),
		mandelbrot.WithLimit(c.Limit),
		mandelbrot.WithSupersample(c.Supersample),
	}
	if c.Sequential {
		job.Options = append(job.Options, mandelbrot.WithSequential())
	}

	return job, nil
}
