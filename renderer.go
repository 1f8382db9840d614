package mandelbrot

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gogpu/mandelbrot/internal/parallel"
)

// Renderer renders escape-time images with a fixed configuration.
//
// A Renderer holds no per-render state: every call allocates (or receives)
// its own buffer, starts fresh band workers and joins them before returning.
//
// Thread safety: Renderer is safe for concurrent use.
type Renderer struct {
	workers     int
	limit       int
	supersample int
	sequential  bool
	logger      *slog.Logger

	// band fills one band; replaced in tests to inject worker failures.
	band bandRenderer
}

// NewRenderer creates a renderer. Without options it uses DefaultWorkers
// band workers and DefaultLimit iterations.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.workers <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, o.workers)
	}
	if o.limit < 1 || o.limit > 255 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, o.limit)
	}
	if o.supersample < 1 {
		return nil, fmt.Errorf("%w: supersample factor %d", ErrInvalidDimensions, o.supersample)
	}

	return &Renderer{
		workers:     o.workers,
		limit:       o.limit,
		supersample: o.supersample,
		sequential:  o.sequential,
		logger:      o.logger,
		band:        renderBand,
	}, nil
}

// Workers returns the configured number of band workers.
func (r *Renderer) Workers() int {
	return r.workers
}

// Limit returns the escape-time iteration limit.
func (r *Renderer) Limit() int {
	return r.limit
}

// Supersample returns the supersampling factor (1 if disabled).
func (r *Renderer) Supersample() int {
	return r.supersample
}

// log returns the renderer's logger or the package logger.
func (r *Renderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}

// Render fills pixels with the escape-time image of p.
//
// len(pixels) must equal b.Width*b.Height, otherwise Render panics with an
// error wrapping ErrInvalidDimensions. A worker panic is returned as an error
// wrapping ErrWorkerFailure.
func (r *Renderer) Render(pixels []byte, b Bounds, p Plane) error {
	log := r.log()
	start := time.Now()

	if r.sequential {
		RenderLimit(pixels, b, p, r.limit)
		log.Info("render complete",
			"bounds", b.String(), "mode", "sequential", "elapsed", time.Since(start))
		return nil
	}

	var bands atomic.Int32
	err := renderBands(pixels, b, p, r.workers, r.limit, r.band, func(band *parallel.Band) {
		bands.Add(1)
		if log.Enabled(context.Background(), slog.LevelDebug) {
			bp := BandPlane(b, p, band)
			log.Debug("band started",
				"band", band.Index,
				"rect", band.Bounds().String(),
				"bytes", band.ByteSize(),
				"upper_left", bp.UpperLeft.String(),
				"lower_right", bp.LowerRight.String())
		}
	})
	if err != nil {
		return err
	}

	log.Info("render complete",
		"bounds", b.String(), "workers", r.workers, "bands", bands.Load(), "elapsed", time.Since(start))
	return nil
}

// RenderImage allocates a zeroed image of size b and renders p into it.
// With supersampling enabled the image is rendered at b scaled by the
// factor and then downsampled to b.
func (r *Renderer) RenderImage(b Bounds, p Plane) (*Image, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	full := b.Scale(r.supersample)
	img, err := NewImage(full)
	if err != nil {
		return nil, err
	}

	if err := r.Render(img.Pix(), full, p); err != nil {
		return nil, err
	}

	if r.supersample == 1 {
		return img, nil
	}

	r.log().Debug("downsampling", "from", full.String(), "to", b.String())
	return Downsample(img, b)
}
