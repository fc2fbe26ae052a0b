// Package curved computes bending stresses in curved beams using the
// Winkler-Bach theory.
//
// Unlike straight-beam theory, the neutral axis of a curved beam does not
// pass through the centroid: it shifts toward the center of curvature by
// an eccentricity e, and the bending stress varies hyperbolically with
// radius,
//
//	sigma(r) = M/(A*e) * (Rn/r - 1)
//
// where Rn is the neutral-axis radius. The solver reduces the section to
// three integrals of its width profile and evaluates that closed form.
package curved

import (
	"errors"
	"math"

	"github.com/alexiusacademia/gocurve/internal/quad"
	"github.com/alexiusacademia/gocurve/internal/section"
)

// EccentricityTolerance is the smallest |e| the stress formula accepts.
// Below it the section behaves like a straight beam and the 1/e factor
// is meaningless.
const EccentricityTolerance = 1e-12

// DefaultSamples is the default length of the sampled stress curve.
const DefaultSamples = 201

// Input describes one curved-beam analysis.
//
// The load is either a direct bending moment M, or a force P acting on a
// lever arm D; the product P*D takes precedence whenever both are given.
// Pointer load fields distinguish "not supplied" from an explicit zero.
type Input struct {
	Shape  section.Shape  `json:"shape"`
	Params section.Params `json:"params"`

	// RInner is the inner-surface radius. Ignored for composite shapes
	// that fix their own radii (T-section).
	RInner float64 `json:"ri,omitempty"`

	M *float64 `json:"m,omitempty"`
	P *float64 `json:"p,omitempty"`
	D *float64 `json:"d,omitempty"`

	// Samples is the length of the returned stress curve (default 201).
	Samples int `json:"samples,omitempty"`

	// Steps overrides the quadrature subinterval count (default 800).
	Steps int `json:"steps,omitempty"`
}

// Extreme is a governing fiber stress and where it occurs.
type Extreme struct {
	Value float64 `json:"value"`
	AtR   float64 `json:"atR"`
	Side  string  `json:"side"` // "inner" or "outer"
}

// Result is the complete output record of one analysis. It is computed
// fresh on every call and never mutated afterwards.
type Result struct {
	Moment float64 `json:"moment"` // resolved applied moment

	A    float64 `json:"A"`    // cross-sectional area
	Ybar float64 `json:"ybar"` // centroid offset from inner surface
	Yn   float64 `json:"yn"`   // neutral-axis offset from inner surface
	E    float64 `json:"e"`    // eccentricity ybar - yn
	Rn   float64 `json:"Rn"`   // neutral-axis radius
	Rc   float64 `json:"Rc"`   // centroid radius

	RInner float64 `json:"rInner"`
	ROuter float64 `json:"rOuter"`

	SigmaInner float64 `json:"sigmaInner"`
	SigmaOuter float64 `json:"sigmaOuter"`

	MaxTension     Extreme `json:"maxTension"`
	MaxCompression Extreme `json:"maxCompression"`

	R     []float64 `json:"r"`
	Sigma []float64 `json:"sigma"`
}

// Analyze runs the Winkler-Bach computation for one input. On failure it
// returns a *Error whose Kind discriminates the cause; the computation is
// pure and every call is independent.
func Analyze(in Input) (*Result, error) {
	if err := section.Validate(in.Shape, in.Params); err != nil {
		if errors.Is(err, section.ErrUnsupportedShape) {
			return nil, failf(KindUnsupportedShape, "%v", err)
		}
		return nil, failf(KindInvalidParameter, "%v", err)
	}

	profile, err := section.Build(in.Shape, in.Params)
	if err != nil {
		return nil, failf(KindUnsupportedShape, "%v", err)
	}
	if profile.Thickness <= 0 {
		return nil, failf(KindDegenerateGeometry,
			"section thickness %g is not positive", profile.Thickness)
	}

	ri := in.RInner
	if profile.HasRadii {
		ri = profile.RInner
	}
	if !isFinite(ri) || ri <= 0 {
		return nil, failf(KindInvalidParameter,
			"inner radius must be a positive finite number, got %g", ri)
	}
	ro := ri + profile.Thickness
	if profile.HasRadii {
		ro = profile.ROuter
	}

	moment, err := resolveMoment(in)
	if err != nil {
		return nil, err
	}

	t := profile.Thickness
	b := profile.Width
	area := quad.Integrate(t, b, in.Steps)
	firstMoment := quad.Integrate(t, func(y float64) float64 { return y * b(y) }, in.Steps)
	winkler := quad.Integrate(t, func(y float64) float64 { return b(y) / (ri + y) }, in.Steps)

	if !(area > 0) {
		return nil, failf(KindDegenerateGeometry,
			"section area %g is not positive", area)
	}
	if !(winkler > 0) {
		return nil, failf(KindDegenerateGeometry,
			"Winkler integral %g is not positive", winkler)
	}

	ybar := firstMoment / area
	rn := area / winkler // neutral-axis radius, A / integral(dA/r)
	yn := rn - ri
	ecc := ybar - yn

	// The tolerance scales with the neutral-axis radius: eccentricity
	// shrinks like t^2/(12*Rn) as a section flattens toward straight-beam
	// behavior, so a fixed cutoff would miss the degeneracy for large
	// radii.
	eccTol := EccentricityTolerance * math.Max(1, math.Abs(rn))
	if !isFinite(ecc) || math.Abs(ecc) < eccTol {
		return nil, failf(KindVanishingEccentricity,
			"eccentricity %g is below %g; the section behaves as a straight beam and the curved-beam formula is singular",
			ecc, eccTol)
	}

	stress := func(r float64) float64 {
		return moment / (area * ecc) * (rn/r - 1)
	}

	samples := in.Samples
	if samples < 2 {
		samples = DefaultSamples
	}
	rs := make([]float64, samples)
	sigmas := make([]float64, samples)
	for i := 0; i < samples; i++ {
		y := float64(i) / float64(samples-1) * t
		rs[i] = ri + y
		sigmas[i] = stress(ri + y)
	}

	// Boundary stresses are evaluated directly rather than read off the
	// sample grid.
	sigmaInner := stress(ri)
	sigmaOuter := stress(ro)

	res := &Result{
		Moment:     moment,
		A:          area,
		Ybar:       ybar,
		Yn:         yn,
		E:          ecc,
		Rn:         rn,
		Rc:         ri + ybar,
		RInner:     ri,
		ROuter:     ro,
		SigmaInner: sigmaInner,
		SigmaOuter: sigmaOuter,
		R:          rs,
		Sigma:      sigmas,
	}

	// The governing stresses occur at the fibers. On an exact tie the
	// inner surface is labeled as governing for both.
	if sigmaInner >= sigmaOuter {
		res.MaxTension = Extreme{Value: sigmaInner, AtR: ri, Side: "inner"}
	} else {
		res.MaxTension = Extreme{Value: sigmaOuter, AtR: ro, Side: "outer"}
	}
	if sigmaInner <= sigmaOuter {
		res.MaxCompression = Extreme{Value: sigmaInner, AtR: ri, Side: "inner"}
	} else {
		res.MaxCompression = Extreme{Value: sigmaOuter, AtR: ro, Side: "outer"}
	}

	return res, nil
}

// resolveMoment picks the applied moment: the force times lever arm when
// both are supplied and finite, otherwise the direct moment.
func resolveMoment(in Input) (float64, error) {
	if in.P != nil && in.D != nil && isFinite(*in.P) && isFinite(*in.D) {
		return *in.P * *in.D, nil
	}
	if in.M != nil && isFinite(*in.M) {
		return *in.M, nil
	}
	return 0, failf(KindMissingLoad,
		"no load: supply a finite moment m, or both a force p and lever arm d")
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
