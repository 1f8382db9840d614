package mandelbrot

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

// Downsample resizes img to b with a Lanczos-3 filter. It is used to turn a
// supersampled render into an anti-aliased image of the requested size.
func Downsample(img *Image, b Bounds) (*Image, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if img.Size() == b {
		return img, nil
	}

	out := resize.Resize(uint(b.Width), uint(b.Height), img.ToGray(), resize.Lanczos3) //nolint:gosec // b validated positive

	g, ok := out.(*image.Gray)
	if !ok {
		g = image.NewGray(out.Bounds())
		draw.Draw(g, g.Bounds(), out, out.Bounds().Min, draw.Src)
	}
	return FromGray(g)
}
