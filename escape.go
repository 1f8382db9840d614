package mandelbrot

import "strconv"

// escapeRadiusSqr is |z|² beyond which the orbit is known to diverge.
const escapeRadiusSqr = 4.0

// Escape is the result of EscapeTime: either the orbit escaped after a
// number of iterations, or it stayed bounded for the whole limit.
//
// The zero value is Bounded.
type Escape struct {
	count   int
	escaped bool
}

// Bounded is the result for a point whose orbit never escaped within the
// iteration limit. Such points are presumed members of the set.
var Bounded = Escape{}

// Escaped returns the result for an orbit that escaped at iteration n.
func Escaped(n int) Escape {
	return Escape{count: n, escaped: true}
}

// Count returns the escape iteration and true, or 0 and false for Bounded.
func (e Escape) Count() (int, bool) {
	return e.count, e.escaped
}

// InSet reports whether the point never escaped.
func (e Escape) InSet() bool {
	return !e.escaped
}

// String returns "escaped(n)" or "bounded".
func (e Escape) String() string {
	if !e.escaped {
		return "bounded"
	}
	return "escaped(" + strconv.Itoa(e.count) + ")"
}

// EscapeTime iterates z ← z² + c from z = 0 at most limit times.
//
// Before each update |z|² is compared against 4; the first iteration index
// at which it is exceeded is returned as Escaped(i), so the count is always
// in [0, limit). If the orbit stays bounded for limit iterations the result
// is Bounded.
func EscapeTime(c Complex, limit int) Escape {
	var z Complex
	for i := range limit {
		if z.NormSqr() > escapeRadiusSqr {
			return Escaped(i)
		}
		z = z.Mul(z).Add(c)
	}
	return Bounded
}

// Intensity converts an escape result to a gray level: 0 (black) for
// points in the set, otherwise 255 - count, so fast escapes are bright.
// Counts above 255 are clamped to 0.
func Intensity(e Escape) uint8 {
	n, ok := e.Count()
	if !ok || n >= 255 {
		return 0
	}
	return uint8(255 - n)
}
