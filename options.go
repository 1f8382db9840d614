package mandelbrot

import "log/slog"

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	// Default: 8 band workers, 255 iterations
//	r, _ := mandelbrot.NewRenderer()
//
//	// Four workers and a 2x2 supersampled image
//	r, _ := mandelbrot.NewRenderer(mandelbrot.WithWorkers(4), mandelbrot.WithSupersample(2))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	workers     int
	limit       int
	supersample int
	sequential  bool
	logger      *slog.Logger
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		workers:     DefaultWorkers,
		limit:       DefaultLimit,
		supersample: 1,
		logger:      nil, // falls back to Logger()
	}
}

// WithWorkers sets the number of band workers.
// Fewer bands than workers may be produced for short images.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithLimit sets the escape-time iteration limit. It must be in [1, 255] so
// that every escape count maps to a distinct gray level.
func WithLimit(n int) RendererOption {
	return func(o *rendererOptions) {
		o.limit = n
	}
}

// WithSupersample renders RenderImage at k times the requested size in each
// direction and downsamples the result with a Lanczos filter.
// k = 1 disables supersampling.
func WithSupersample(k int) RendererOption {
	return func(o *rendererOptions) {
		o.supersample = k
	}
}

// WithSequential renders on the calling goroutine without partitioning.
// The output is byte-identical to a banded render.
func WithSequential() RendererOption {
	return func(o *rendererOptions) {
		o.sequential = true
	}
}

// WithLogger sets a logger for this renderer instead of the package logger.
func WithLogger(l *slog.Logger) RendererOption {
	return func(o *rendererOptions) {
		o.logger = l
	}
}
