package mandelbrot

import (
	"fmt"
	"strconv"

	"github.com/gogpu/mandelbrot/internal/parse"
)

// Complex is a point in the complex plane with float64 components.
// Complex is an immutable value type.
type Complex struct {
	Re float64
	Im float64
}

// C is shorthand for Complex{Re: re, Im: im}.
func C(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Mul returns z * w using (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// NormSqr returns the squared magnitude Re² + Im².
func (z Complex) NormSqr() float64 {
	return z.Re*z.Re + z.Im*z.Im
}

// Complex128 converts z to the built-in complex type.
func (z Complex) Complex128() complex128 {
	return complex(z.Re, z.Im)
}

// String formats z as "re,im", the same form UnmarshalText accepts.
func (z Complex) String() string {
	return strconv.FormatFloat(z.Re, 'g', -1, 64) + "," + strconv.FormatFloat(z.Im, 'g', -1, 64)
}

// UnmarshalText parses "re,im", e.g. "-1.20,0.35".
func (z *Complex) UnmarshalText(text []byte) error {
	re, im, err := parse.Complex(string(text))
	if err != nil {
		return fmt.Errorf("mandelbrot: complex %q: %w", text, err)
	}
	*z = Complex{Re: re, Im: im}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (z Complex) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}
