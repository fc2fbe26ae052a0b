// Package quad provides the numerical integration used by the section
// property calculations.
package quad

// DefaultSteps is the default number of trapezoid subintervals. It is high
// enough to resolve the circular profile, whose width has a vertical
// tangent at both edges.
const DefaultSteps = 800

// Integrate computes the integral of f over [0, t] using the composite
// trapezoidal rule with n equal subintervals. If n is not positive,
// DefaultSteps is used. A non-positive interval integrates to zero.
func Integrate(t float64, f func(float64) float64, n int) float64 {
	if t <= 0 {
		return 0
	}
	if n <= 0 {
		n = DefaultSteps
	}

	h := t / float64(n)
	sum := (f(0) + f(t)) / 2
	for i := 1; i < n; i++ {
		sum += f(float64(i) * h)
	}

	return sum * h
}
