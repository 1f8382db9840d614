// Package mandelbrot renders grayscale escape-time images of the Mandelbrot set.
//
// # Overview
//
// Each pixel of the output raster is mapped to a point c of the complex
// plane and the recurrence z ← z² + c is iterated from z = 0 until |z|
// exceeds 2 or the iteration limit is reached. Points that never escape are
// drawn black; the others get 255 minus their escape count, so points that
// escape quickly are bright.
//
// # Quick Start
//
//	import "github.com/gogpu/mandelbrot"
//
//	r, err := mandelbrot.NewRenderer()
//	if err != nil {
//	    return err
//	}
//
//	img, err := r.RenderImage(
//	    mandelbrot.Bounds{Width: 1000, Height: 750},
//	    mandelbrot.Plane{
//	        UpperLeft:  mandelbrot.C(-1.20, 0.35),
//	        LowerRight: mandelbrot.C(-1, 0.20),
//	    },
//	)
//	if err != nil {
//	    return err
//	}
//	return img.SavePNG("mandel.png")
//
// # Parallel Rendering
//
// The raster is split into horizontal bands of height/workers + 1 rows.
// Every band gets its own goroutine and its own slice of the buffer, and the
// render returns only after all bands are done. Workers map every pixel
// through the same global PixelToPoint call as a sequential render, so the
// output is byte-identical whatever the worker count.
//
// # Coordinate System
//
//   - Pixel (0,0) is the top-left corner and maps to Plane.UpperLeft
//   - Columns increase right, rows increase down
//   - Pixel (Width,Height) maps to Plane.LowerRight
//   - The imaginary axis increases up
//
// # Output
//
// Images are encoded as 8-bit grayscale PNG by default; TIFF and BMP are
// available through golang.org/x/image.
package mandelbrot

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
