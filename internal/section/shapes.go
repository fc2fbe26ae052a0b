// Package section defines the cross-section families supported by the
// curved-beam solver, their parameter validation rules, and the width
// profiles they produce.
//
// A cross-section is described by its width b(y) as a function of the
// radial offset y measured from the inner surface. All downstream
// geometry (area, centroid, Winkler integral) is derived from that
// single function, so adding a shape means adding a variant here and
// nothing else.
package section

import (
	"fmt"
	"math"
)

// Shape identifies a supported cross-section family.
type Shape string

const (
	Rectangular Shape = "rectangular"
	Trapezoidal Shape = "trapezoidal"
	Triangular  Shape = "triangular"
	Circular    Shape = "circular"
	TSection    Shape = "tsection"
)

// Params holds the raw shape dimensions, keyed by field name. The required
// fields per shape are listed in the validation rule table.
type Params map[string]float64

// Profile is the width-versus-offset description of a cross-section.
// Width reports the total section width at radial offset y from the inner
// surface, for y in [0, Thickness].
//
// For composite shapes the absolute placement of the parts fixes the inner
// and outer radii, independent of any caller-supplied inner radius; those
// shapes set HasRadii along with RInner and ROuter.
type Profile struct {
	Thickness float64
	Width     func(y float64) float64

	HasRadii bool
	RInner   float64
	ROuter   float64
}

// Build produces the width profile for a shape from validated parameters.
// Parameters must have passed Validate first; Build only fails for shapes
// it does not recognize.
func Build(shape Shape, p Params) (Profile, error) {
	switch shape {
	case Rectangular:
		b, t := p["b"], p["t"]
		return Profile{
			Thickness: t,
			Width:     func(y float64) float64 { return b },
		}, nil

	case Trapezoidal:
		bi, bo, t := p["bInner"], p["bOuter"], p["t"]
		return Profile{
			Thickness: t,
			Width: func(y float64) float64 {
				return bi + (bo-bi)/t*y
			},
		}, nil

	case Triangular:
		// Same linear form as the trapezoid, clamped so a zero-width
		// apex at either surface stays at zero instead of going
		// negative under roundoff.
		bi, bo, t := p["bInner"], p["bOuter"], p["t"]
		return Profile{
			Thickness: t,
			Width: func(y float64) float64 {
				return math.Max(0, bi+(bo-bi)/t*y)
			},
		}, nil

	case Circular:
		// Solid circle of diameter d: the width at offset y is the
		// chord length of the circle centered at y = d/2.
		a := p["d"] / 2
		return Profile{
			Thickness: p["d"],
			Width: func(y float64) float64 {
				return 2 * math.Sqrt(math.Max(0, a*a-(y-a)*(y-a)))
			},
		}, nil

	case TSection:
		return buildTSection(p), nil
	}

	return Profile{}, fmt.Errorf("%w: %q", ErrUnsupportedShape, shape)
}

// buildTSection assembles two rectangular strips placed at absolute radii.
// The strips may overlap, in which case their widths add. The composite's
// radial extent comes from the strips themselves, so the profile carries
// explicit inner and outer radii.
func buildTSection(p Params) Profile {
	r1, t1, b1 := p["R1"], p["t1"], p["b1"]
	r2, t2, b2 := p["R2"], p["t2"], p["b2"]

	ri := math.Min(r1, r2)
	ro := math.Max(r1+t1, r2+t2)

	return Profile{
		Thickness: ro - ri,
		HasRadii:  true,
		RInner:    ri,
		ROuter:    ro,
		Width: func(y float64) float64 {
			r := ri + y
			var w float64
			if r >= r1 && r <= r1+t1 {
				w += b1
			}
			if r >= r2 && r <= r2+t2 {
				w += b2
			}
			return w
		},
	}
}
