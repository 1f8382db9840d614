package mandelbrot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output image encoding.
type Format int

const (
	// FormatPNG is 8-bit grayscale PNG, the default.
	FormatPNG Format = iota

	// FormatTIFF is Deflate-compressed grayscale TIFF.
	FormatTIFF

	// FormatBMP is 8-bit paletted BMP.
	FormatBMP
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatTIFF:
		return "tiff"
	case FormatBMP:
		return "bmp"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses a format name such as "png", "tiff" or "bmp".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "bmp":
		return FormatBMP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Encode writes m to w in the given format.
// Encoder failures are wrapped with ErrEncode.
func Encode(w io.Writer, m image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, m)
	case FormatTIFF:
		err = tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case FormatBMP:
		err = bmp.Encode(w, m)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, f, err)
	}
	return nil
}

// Encode writes the image to w in the given format.
func (m *Image) Encode(w io.Writer, f Format) error {
	return Encode(w, m.ToGray(), f)
}

// Save writes the image to path in the given format.
// File system failures are wrapped with ErrIO. If encoding fails the
// partially written file is removed.
func (m *Image) Save(path string, f Format) error {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIO, path, err)
	}

	if err := m.Encode(file, f); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrIO, path, err)
	}

	Logger().Info("image written", "path", path, "format", f.String(), "bounds", m.size.String())
	return nil
}

// SavePNG writes the image to path as PNG.
func (m *Image) SavePNG(path string) error {
	return m.Save(path, FormatPNG)
}
