// Command mandelbrot renders a grayscale image of the Mandelbrot set.
//
// Usage:
//
//	mandelbrot [options] -- FILE PIXELS UPPERLEFT LOWERRIGHT
//
// Example:
//
//	mandelbrot -- mandel.png 1000x750 -1.20,0.35 -1,0.20
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/mandelbrot"
	"github.com/gogpu/mandelbrot/internal/config"
)

// args are the command-line arguments. Positionals may be omitted when a
// config file supplies them.
type args struct {
	File       string `arg:"positional" help:"output image file (.png, .tiff, .bmp)"`
	Pixels     string `arg:"positional" help:"image size in pixels, e.g. 1000x750"`
	UpperLeft  string `arg:"positional" help:"upper-left corner re,im, e.g. -1.20,0.35"`
	LowerRight string `arg:"positional" help:"lower-right corner re,im, e.g. -1,0.20"`

	Config      string `arg:"-c,--config" help:"TOML config file"`
	Workers     int    `arg:"-w,--workers" help:"number of band workers [default: 8]"`
	Limit       int    `arg:"--limit" help:"escape-time iteration limit, 1-255 [default: 255]"`
	Supersample int    `arg:"--supersample" help:"render KxK samples per pixel and downsample [default: 1]"`
	Format      string `arg:"-f,--format" help:"output format: png, tiff or bmp [default: from FILE]"`
	Sequential  bool   `arg:"--sequential" help:"render on a single goroutine"`
	Profile     string `arg:"--profile" help:"write a cpu, mem or trace profile to the current directory"`
	Verbose     bool   `arg:"-v,--verbose" help:"log per-band diagnostics"`
}

func (args) Description() string {
	return "Renders a grayscale escape-time image of the Mandelbrot set."
}

func (args) Epilogue() string {
	return "Use -- before the positionals so negative corners are not read as options:\n" +
		"  mandelbrot -- mandel.png 1000x750 -1.20,0.35 -1,0.20"
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, arg.ErrHelp) || errors.Is(err, arg.ErrVersion) {
			return
		}
		log.Fatalf("mandelbrot: %v", err)
	}
}

// run parses argv, renders the image and writes it. Help and usage go to
// stdout and stderr respectively.
func run(argv []string, stdout, stderr io.Writer) error {
	var a args
	p, err := arg.NewParser(arg.Config{Program: "mandelbrot"}, &a)
	if err != nil {
		return fmt.Errorf("arguments: %w", err)
	}

	if err := p.Parse(argv); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			p.WriteHelp(stdout)
			return err
		}
		p.WriteUsage(stderr)
		return err
	}

	if a.Profile != "" {
		mode, err := profileMode(a.Profile)
		if err != nil {
			return err
		}
		defer profile.Start(mode, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	c, err := config.Load(a.Config, overrides(a))
	if err != nil {
		return err
	}

	job, err := c.Resolve()
	if err != nil {
		if errors.Is(err, config.ErrMissing) {
			p.WriteUsage(stderr)
		}
		return err
	}

	level := job.LogLevel
	if a.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	mandelbrot.SetLogger(logger)
	defer mandelbrot.SetLogger(nil)

	r, err := mandelbrot.NewRenderer(job.Options...)
	if err != nil {
		return err
	}

	start := time.Now()
	img, err := r.RenderImage(job.Bounds, job.Plane)
	if err != nil {
		return err
	}

	if err := img.Save(job.Output, job.Format); err != nil {
		return err
	}

	printer := message.NewPrinter(language.English)
	logger.Info(printer.Sprintf("rendered %d pixels", job.Bounds.Pixels()),
		"file", job.Output, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// overrides collects the arguments that were actually given, keyed like the
// config file.
func overrides(a args) map[string]any {
	m := make(map[string]any)
	set := func(key, v string) {
		if v != "" {
			m[key] = v
		}
	}
	set("output", a.File)
	set("pixels", a.Pixels)
	set("upper_left", a.UpperLeft)
	set("lower_right", a.LowerRight)
	set("format", a.Format)

	if a.Workers != 0 {
		m["workers"] = a.Workers
	}
	if a.Limit != 0 {
		m["limit"] = a.Limit
	}
	if a.Supersample != 0 {
		m["supersample"] = a.Supersample
	}
	if a.Sequential {
		m["sequential"] = true
	}
	return m
}

func profileMode(name string) (func(*profile.Profile), error) {
	switch name {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	case "trace":
		return profile.TraceProfile, nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q (want cpu, mem or trace)", name)
	}
}
