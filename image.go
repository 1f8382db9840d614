package mandelbrot

import (
	"fmt"
	"image"
	"image/color"
)

// Image is an 8-bit grayscale pixel buffer, one byte per pixel, row-major.
// It implements image.Image.
type Image struct {
	size Bounds
	pix  []uint8
}

// NewImage creates a zeroed image of the given size.
func NewImage(b Bounds) (*Image, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &Image{size: b, pix: make([]uint8, b.Pixels())}, nil
}

// ImageFromPix wraps an existing buffer without copying.
// len(pix) must equal b.Width*b.Height.
func ImageFromPix(pix []uint8, b Bounds) (*Image, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if len(pix) != b.Pixels() {
		return nil, fmt.Errorf("%w: buffer holds %d bytes, bounds %s need %d",
			ErrInvalidDimensions, len(pix), b, b.Pixels())
	}
	return &Image{size: b, pix: pix}, nil
}

// Size returns the raster dimensions.
func (m *Image) Size() Bounds {
	return m.size
}

// Width returns the width of the image.
func (m *Image) Width() int {
	return m.size.Width
}

// Height returns the height of the image.
func (m *Image) Height() int {
	return m.size.Height
}

// Pix returns the raw gray bytes.
func (m *Image) Pix() []uint8 {
	return m.pix
}

// GrayAt returns the intensity of a pixel, or 0 outside the image.
func (m *Image) GrayAt(x, y int) uint8 {
	if x < 0 || x >= m.size.Width || y < 0 || y >= m.size.Height {
		return 0
	}
	return m.pix[y*m.size.Width+x]
}

// SetGray sets the intensity of a pixel. Out-of-bounds writes are ignored.
func (m *Image) SetGray(x, y int, v uint8) {
	if x < 0 || x >= m.size.Width || y < 0 || y >= m.size.Height {
		return
	}
	m.pix[y*m.size.Width+x] = v
}

// ToGray returns an *image.Gray sharing the image's pixel bytes.
func (m *Image) ToGray() *image.Gray {
	return &image.Gray{
		Pix:    m.pix,
		Stride: m.size.Width,
		Rect:   m.size.Rect(),
	}
}

// FromGray copies an image.Gray into a new Image.
func FromGray(g *image.Gray) (*Image, error) {
	r := g.Bounds()
	img, err := NewImage(Bounds{Width: r.Dx(), Height: r.Dy()})
	if err != nil {
		return nil, err
	}
	for y := range img.size.Height {
		src := g.Pix[g.PixOffset(r.Min.X, r.Min.Y+y):]
		copy(img.pix[y*img.size.Width:(y+1)*img.size.Width], src[:img.size.Width])
	}
	return img, nil
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	return color.Gray{Y: m.GrayAt(x, y)}
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return m.size.Rect()
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.GrayModel
}
