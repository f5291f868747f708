// Package escape evaluates the escape time of single points under the
// Mandelbrot recurrence z <- z*z + c.
package escape

// Bailout is the squared modulus a point must exceed to have escaped.
const Bailout = 4.0

// Evaluate returns the number of iterations of z <- z*z + c, starting from
// z = 0 with c = cx + cy*i, needed before |z|^2 exceeds Bailout.
//
// The iteration producing the escaping value is counted, so a point which
// escapes on the first step returns 1. Points which do not escape within
// maxIter iterations return maxIter, as do NaN-contaminated points since
// NaN never compares greater than Bailout.
func Evaluate(cx, cy float64, maxIter uint32) uint32 {
	x, y := 0.0, 0.0

	for i := uint32(0); i < maxIter; i++ {
		xn := x*x - y*y + cx
		yn := 2.0*x*y + cy

		if xn*xn+yn*yn > Bailout {
			return i + 1
		}

		x, y = xn, yn
	}

	return maxIter
}
