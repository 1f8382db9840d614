package main

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexflint/go-arg"

	"github.com/gogpu/mandelbrot"
	"github.com/gogpu/mandelbrot/internal/config"
)

func TestRun_WritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "mandel.png")
	var stdout, stderr bytes.Buffer

	// Power-of-two raster over a dyadic plane keeps band corner arithmetic exact.
	argv := []string{"--workers", "3", "--", out, "64x32", "-2,1", "2,-1"}
	if err := run(argv, &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v\nstderr: %s", err, stderr.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("decoded %T, want *image.Gray", img)
	}
	if gray.Bounds().Dx() != 64 || gray.Bounds().Dy() != 32 {
		t.Errorf("decoded bounds = %v, want 64x32", gray.Bounds())
	}

	// Same bytes as an in-process sequential render.
	want := make([]byte, 64*32)
	mandelbrot.Render(want, mandelbrot.Bounds{Width: 64, Height: 32},
		mandelbrot.Plane{UpperLeft: mandelbrot.C(-2, 1), LowerRight: mandelbrot.C(2, -1)})
	if !bytes.Equal(gray.Pix, want) {
		t.Error("written image differs from Render output")
	}

	if !strings.Contains(stderr.String(), "rendered 2,048 pixels") {
		t.Errorf("stderr = %q, want grouped pixel count", stderr.String())
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "mandel.bmp")
	cfg := filepath.Join(dir, "mandelbrot.toml")
	body := "[mandelbrot]\n" +
		"output = \"" + filepath.ToSlash(out) + "\"\n" +
		"pixels = \"16x16\"\n" +
		"upper_left = \"-2,2\"\n" +
		"lower_right = \"2,-2\"\n" +
		"sequential = true\n"
	if err := os.WriteFile(cfg, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if err := run([]string{"--config", cfg}, &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v\nstderr: %s", err, stderr.String())
	}

	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--help"}, &stdout, &stderr)
	if !errors.Is(err, arg.ErrHelp) {
		t.Fatalf("run(--help) error = %v, want arg.ErrHelp", err)
	}
	if !strings.Contains(stdout.String(), "PIXELS") {
		t.Errorf("help output misses positionals: %q", stdout.String())
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		argv []string
		want error
	}{
		{"missing corners", []string{"--", filepath.Join(dir, "a.png"), "10x10"}, config.ErrMissing},
		{"bad plane", []string{"--", filepath.Join(dir, "a.png"), "10x10", "1,-1", "-1,1"}, mandelbrot.ErrInvalidPlane},
		{"bad bounds", []string{"--", filepath.Join(dir, "a.png"), "0x10", "-1,1", "1,-1"}, mandelbrot.ErrInvalidBounds},
		{"bad limit", []string{"--limit", "300", "--", filepath.Join(dir, "a.png"), "10x10", "-1,1", "1,-1"}, mandelbrot.ErrInvalidLimit},
		{"bad format", []string{"--", filepath.Join(dir, "a.jpg"), "10x10", "-1,1", "1,-1"}, mandelbrot.ErrUnsupportedFormat},
		{"unwritable", []string{"--", filepath.Join(dir, "missing", "a.png"), "10x10", "-1,1", "1,-1"}, mandelbrot.ErrIO},
		{"bad profile", []string{"--profile", "gpu", "--", filepath.Join(dir, "a.png"), "10x10", "-1,1", "1,-1"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.argv, &stdout, &stderr)
			if err == nil {
				t.Fatal("run() = nil, want error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("run() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRun_MissingPositionalsPrintsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	argv := []string{"--", filepath.Join(t.TempDir(), "a.png"), "10x10"}

	err := run(argv, &stdout, &stderr)
	if !errors.Is(err, config.ErrMissing) {
		t.Fatalf("run() error = %v, want config.ErrMissing", err)
	}
	if !strings.Contains(stderr.String(), "Usage: mandelbrot") {
		t.Errorf("stderr = %q, want usage line", stderr.String())
	}
}

func TestOverrides(t *testing.T) {
	got := overrides(args{File: "x.png", Workers: 4, Sequential: true})

	if got["output"] != "x.png" || got["workers"] != 4 || got["sequential"] != true {
		t.Errorf("overrides() = %v", got)
	}
	for _, key := range []string{"pixels", "limit", "supersample", "format"} {
		if _, ok := got[key]; ok {
			t.Errorf("overrides() sets unset key %q", key)
		}
	}
}

func TestProfileMode(t *testing.T) {
	for _, name := range []string{"cpu", "mem", "trace"} {
		if _, err := profileMode(name); err != nil {
			t.Errorf("profileMode(%q) error: %v", name, err)
		}
	}
	if _, err := profileMode("block"); err == nil {
		t.Error("profileMode(block) = nil error, want error")
	}
}
