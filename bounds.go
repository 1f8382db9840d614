package mandelbrot

import (
	"fmt"
	"image"
	"strconv"

	"github.com/gogpu/mandelbrot/internal/parse"
)

// Bounds is the size of the output raster in pixels.
type Bounds struct {
	Width  int
	Height int
}

// Validate returns ErrInvalidBounds unless both dimensions are positive.
func (b Bounds) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBounds, b.Width, b.Height)
	}
	return nil
}

// Pixels returns Width * Height.
func (b Bounds) Pixels() int {
	return b.Width * b.Height
}

// Rect returns the raster as an image.Rectangle anchored at the origin.
func (b Bounds) Rect() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// Scale returns the bounds multiplied by k in both directions.
func (b Bounds) Scale(k int) Bounds {
	return Bounds{Width: b.Width * k, Height: b.Height * k}
}

// String formats the bounds as "WxH".
func (b Bounds) String() string {
	return strconv.Itoa(b.Width) + "x" + strconv.Itoa(b.Height)
}

// UnmarshalText parses "WxH", e.g. "1000x750".
func (b *Bounds) UnmarshalText(text []byte) error {
	w, h, err := parse.Pair[int](string(text), 'x')
	if err != nil {
		return fmt.Errorf("mandelbrot: bounds %q: %w", text, err)
	}
	*b = Bounds{Width: w, Height: h}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (b Bounds) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Pixel is an integer raster coordinate. It may lie outside the raster,
// e.g. the lower-right corner (Width, Height) of a band.
type Pixel struct {
	Column int
	Row    int
}

// Plane is the region of the complex plane mapped onto the raster.
// The imaginary axis decreases downward: UpperLeft.Im > LowerRight.Im.
type Plane struct {
	UpperLeft  Complex
	LowerRight Complex
}

// Validate returns ErrInvalidPlane unless UpperLeft lies strictly left of
// and above LowerRight.
func (p Plane) Validate() error {
	if p.UpperLeft.Re >= p.LowerRight.Re || p.UpperLeft.Im <= p.LowerRight.Im {
		return fmt.Errorf("%w: upper-left %s, lower-right %s", ErrInvalidPlane, p.UpperLeft, p.LowerRight)
	}
	return nil
}

// Width returns the real extent LowerRight.Re - UpperLeft.Re.
func (p Plane) Width() float64 {
	return p.LowerRight.Re - p.UpperLeft.Re
}

// Height returns the imaginary extent UpperLeft.Im - LowerRight.Im.
func (p Plane) Height() float64 {
	return p.UpperLeft.Im - p.LowerRight.Im
}
