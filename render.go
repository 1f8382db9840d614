package mandelbrot

import (
	"fmt"

	"github.com/gogpu/mandelbrot/internal/parallel"
)

const (
	// DefaultLimit is the escape-time iteration limit. It never exceeds 255,
	// so 255 - count always fits in a byte.
	DefaultLimit = 255

	// DefaultWorkers is the number of band workers used by RenderBands
	// callers that do not choose their own.
	DefaultWorkers = 8
)

// Render fills pixels with the grayscale escape-time image of the plane
// rectangle p, sequentially, using DefaultLimit iterations.
//
// len(pixels) must equal b.Width*b.Height; anything else is a programming
// error and Render panics with an error wrapping ErrInvalidDimensions.
func Render(pixels []byte, b Bounds, p Plane) {
	RenderLimit(pixels, b, p, DefaultLimit)
}

// RenderLimit is Render with an explicit iteration limit.
func RenderLimit(pixels []byte, b Bounds, p Plane, limit int) {
	mustMatch(pixels, b)

	for row := range b.Height {
		line := pixels[row*b.Width : (row+1)*b.Width]
		for col := range line {
			point := PixelToPoint(b, Pixel{Column: col, Row: row}, p)
			line[col] = Intensity(EscapeTime(point, limit))
		}
	}
}

// RenderBands renders like Render but splits pixels into row bands for
// workers goroutines and waits for all of them. Every pixel is mapped with
// the same global PixelToPoint call Render uses, so the result is
// byte-identical to Render for any worker count.
//
// If any worker panics the returned error wraps ErrWorkerFailure and a
// *parallel.PanicError; the buffer must then be discarded.
func RenderBands(pixels []byte, b Bounds, p Plane, workers int) error {
	return renderBands(pixels, b, p, workers, DefaultLimit, renderBand, nil)
}

// bandRenderer fills one band of the raster b.
type bandRenderer func(band *parallel.Band, b Bounds, p Plane, limit int)

// renderBand fills band with the escape-time intensities of its rows.
// Points come from the full raster mapping, not from the band corners, so a
// pixel gets the same plane point whichever band it lands in.
func renderBand(band *parallel.Band, b Bounds, p Plane, limit int) {
	for row := range band.Height {
		for col := range band.Width {
			point := PixelToPoint(b, Pixel{Column: col, Row: band.Top + row}, p)
			band.Pix[band.PixelOffset(col, row)] = Intensity(EscapeTime(point, limit))
		}
	}
}

// BandPlane returns the region of p covered by band: the mapping of its
// top-left pixel and of the pixel just past its bottom-right corner.
func BandPlane(b Bounds, p Plane, band *parallel.Band) Plane {
	return Plane{
		UpperLeft:  PixelToPoint(b, Pixel{Column: 0, Row: band.Top}, p),
		LowerRight: PixelToPoint(b, Pixel{Column: b.Width, Row: band.Bottom()}, p),
	}
}

func renderBands(pixels []byte, b Bounds, p Plane, workers, limit int, render bandRenderer, observe func(*parallel.Band)) error {
	mustMatch(pixels, b)

	bands := parallel.Partition(pixels, b.Width, b.Height, workers)
	err := parallel.ForEachBand(bands, func(band *parallel.Band) {
		if observe != nil {
			observe(band)
		}
		render(band, b, p, limit)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWorkerFailure, err)
	}
	return nil
}

// mustMatch panics unless b is positive and pixels has exactly one byte per
// pixel of b.
func mustMatch(pixels []byte, b Bounds) {
	if b.Width <= 0 || b.Height <= 0 {
		panic(fmt.Errorf("%w: bounds %s", ErrInvalidDimensions, b))
	}
	if len(pixels) != b.Pixels() {
		panic(fmt.Errorf("%w: buffer holds %d bytes, bounds %s need %d",
			ErrInvalidDimensions, len(pixels), b, b.Pixels()))
	}
}
