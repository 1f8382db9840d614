package mandelbrot

// PixelToPoint maps a raster coordinate to the point of the complex plane it
// represents, given the raster bounds and the plane rectangle.
//
// The pixel need not be inside the raster: (0,0) maps to p.UpperLeft and
// (Width,Height) maps to p.LowerRight. Rows grow downward while the imaginary
// axis grows upward, hence the subtraction.
func PixelToPoint(b Bounds, px Pixel, p Plane) Complex {
	return Complex{
		Re: p.UpperLeft.Re + float64(px.Column)*p.Width()/float64(b.Width),
		Im: p.UpperLeft.Im - float64(px.Row)*p.Height()/float64(b.Height),
	}
}
