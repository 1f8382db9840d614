package mandelbrot

import "errors"

// Input and contract errors.
var (
	// ErrInvalidDimensions is returned (or panicked with, inside Render) when
	// a pixel buffer does not match its bounds.
	ErrInvalidDimensions = errors.New("mandelbrot: invalid dimensions")

	// ErrInvalidBounds is returned when width or height is non-positive.
	ErrInvalidBounds = errors.New("mandelbrot: invalid bounds")

	// ErrInvalidPlane is returned when the upper-left corner is not strictly
	// left of and above the lower-right corner.
	ErrInvalidPlane = errors.New("mandelbrot: invalid plane rectangle")

	// ErrInvalidLimit is returned when an iteration limit is outside [1, 255].
	ErrInvalidLimit = errors.New("mandelbrot: invalid iteration limit")

	// ErrInvalidWorkers is returned when the worker count is non-positive.
	ErrInvalidWorkers = errors.New("mandelbrot: invalid worker count")
)

// Render and output errors.
var (
	// ErrWorkerFailure is returned when a band worker panics.
	// The pixel buffer must be discarded.
	ErrWorkerFailure = errors.New("mandelbrot: worker failure")

	// ErrUnsupportedFormat is returned for an unknown output format.
	ErrUnsupportedFormat = errors.New("mandelbrot: unsupported format")

	// ErrEncode wraps failures of an image encoder.
	ErrEncode = errors.New("mandelbrot: encode")

	// ErrIO wraps file system failures while writing output.
	ErrIO = errors.New("mandelbrot: io")
)
