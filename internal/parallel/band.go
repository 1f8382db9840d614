// Package parallel provides band-based parallel rendering infrastructure for
// gogpu/mandelbrot.
//
// The output raster is divided into horizontal bands of whole rows that can be
// rendered independently and in parallel. Key properties:
//
//   - Bands are contiguous, non-overlapping and cover the raster exactly
//   - Each band owns a capacity-limited sub-slice of the shared buffer
//   - Workers are started per render and joined before the render returns
//
// Thread safety: a Band must only be written by the goroutine it was handed
// to. Partition itself is not synchronized.
package parallel

import "image"

// Band represents a horizontal strip of rows for parallel processing.
//
// Pix aliases the caller's pixel buffer: it starts at byte Top*Width and
// holds Height*Width bytes. Its capacity equals its length so that an append
// on one band can never spill into the next.
type Band struct {
	// Index is the band number (0-based, top to bottom).
	Index int

	// Top is the first raster row covered by this band.
	Top int

	// Width is the row length in pixels (one byte per pixel).
	Width int

	// Height is the number of rows (the last band may be shorter).
	Height int

	// Pix contains the gray pixel bytes owned by this band.
	Pix []byte
}

// Bounds returns the rows covered by the band in raster space.
func (b *Band) Bounds() image.Rectangle {
	return image.Rect(0, b.Top, b.Width, b.Bottom())
}

// Bottom returns the first raster row after this band.
func (b *Band) Bottom() int {
	return b.Top + b.Height
}

// PixelOffset returns the byte offset into Pix for the given pixel.
// Coordinates px, py are relative to the band.
// Returns -1 if coordinates are out of bounds.
func (b *Band) PixelOffset(px, py int) int {
	if px < 0 || px >= b.Width || py < 0 || py >= b.Height {
		return -1
	}
	return py*b.Width + px
}

// ByteSize returns the number of bytes owned by this band.
func (b *Band) ByteSize() int {
	return b.Width * b.Height
}
