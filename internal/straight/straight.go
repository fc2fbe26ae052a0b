// Package straight evaluates the elementary closed-form solutions for
// straight prismatic beams under the standard load cases: shear, bending
// moment, and elastic deflection along the span.
package straight

import (
	"fmt"
	"math"
)

// LoadCase identifies a supported span and loading arrangement.
type LoadCase string

const (
	// SimpleUDL is a simply supported span under a uniform load w.
	SimpleUDL LoadCase = "simple-udl"
	// SimplePoint is a simply supported span with a point load at midspan.
	SimplePoint LoadCase = "simple-point"
	// CantileverUDL is a cantilever under a uniform load w.
	CantileverUDL LoadCase = "cantilever-udl"
	// CantileverPoint is a cantilever with a point load at the free end.
	CantileverPoint LoadCase = "cantilever-point"
)

// DefaultSamples is the default length of the sampled diagrams.
const DefaultSamples = 201

// Input describes one straight-beam evaluation. Units are whatever the
// caller uses consistently; deflections need E and I in matching units.
type Input struct {
	Case LoadCase `json:"case"`
	Span float64  `json:"span"`

	W float64 `json:"w,omitempty"` // distributed load per unit length
	P float64 `json:"p,omitempty"` // point load

	E float64 `json:"modulus"` // Young's modulus
	I float64 `json:"inertia"` // second moment of area

	Samples int `json:"samples,omitempty"`
}

// Result holds the governing values and the sampled diagrams. Shear and
// moment follow the usual sign convention (sagging positive); deflection
// is positive downward, in the direction of the load.
type Result struct {
	MaxShear      float64 `json:"maxShear"`
	MaxMoment     float64 `json:"maxMoment"`
	MaxMomentAtX  float64 `json:"maxMomentAtX"`
	MaxDeflection float64 `json:"maxDeflection"`

	X          []float64 `json:"x"`
	Shear      []float64 `json:"shear"`
	Moment     []float64 `json:"moment"`
	Deflection []float64 `json:"deflection"`
}

// Evaluate computes the closed-form response for one load case.
func Evaluate(in Input) (*Result, error) {
	if !(in.Span > 0) || math.IsInf(in.Span, 0) {
		return nil, fmt.Errorf("span must be a positive finite number, got %g", in.Span)
	}
	if !(in.E > 0) || !(in.I > 0) {
		return nil, fmt.Errorf("modulus and inertia must be positive, got E=%g I=%g", in.E, in.I)
	}

	var c caseFns
	switch in.Case {
	case SimpleUDL:
		if err := needLoad("w", in.W); err != nil {
			return nil, err
		}
		c = simpleUDL(in)
	case SimplePoint:
		if err := needLoad("p", in.P); err != nil {
			return nil, err
		}
		c = simplePoint(in)
	case CantileverUDL:
		if err := needLoad("w", in.W); err != nil {
			return nil, err
		}
		c = cantileverUDL(in)
	case CantileverPoint:
		if err := needLoad("p", in.P); err != nil {
			return nil, err
		}
		c = cantileverPoint(in)
	default:
		return nil, fmt.Errorf("unsupported load case %q", in.Case)
	}

	samples := in.Samples
	if samples < 2 {
		samples = DefaultSamples
	}

	res := &Result{
		MaxShear:      c.maxShear,
		MaxMoment:     c.maxMoment,
		MaxMomentAtX:  c.maxMomentAtX,
		MaxDeflection: c.maxDeflection,
		X:             make([]float64, samples),
		Shear:         make([]float64, samples),
		Moment:        make([]float64, samples),
		Deflection:    make([]float64, samples),
	}
	for i := 0; i < samples; i++ {
		x := float64(i) / float64(samples-1) * in.Span
		res.X[i] = x
		res.Shear[i] = c.shear(x)
		res.Moment[i] = c.moment(x)
		res.Deflection[i] = c.deflection(x)
	}

	return res, nil
}

func needLoad(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return fmt.Errorf("load case needs a finite non-zero %q, got %g", name, v)
	}
	return nil
}

// caseFns bundles the closed forms for one load case.
type caseFns struct {
	shear, moment, deflection func(x float64) float64

	maxShear, maxMoment, maxMomentAtX, maxDeflection float64
}

func simpleUDL(in Input) caseFns {
	w, l, ei := in.W, in.Span, in.E*in.I
	return caseFns{
		shear:  func(x float64) float64 { return w * (l/2 - x) },
		moment: func(x float64) float64 { return w * x * (l - x) / 2 },
		deflection: func(x float64) float64 {
			return w * x * (l*l*l - 2*l*x*x + x*x*x) / (24 * ei)
		},
		maxShear:      w * l / 2,
		maxMoment:     w * l * l / 8,
		maxMomentAtX:  l / 2,
		maxDeflection: 5 * w * l * l * l * l / (384 * ei),
	}
}

func simplePoint(in Input) caseFns {
	p, l, ei := in.P, in.Span, in.E*in.I
	return caseFns{
		shear: func(x float64) float64 {
			if x < l/2 {
				return p / 2
			}
			return -p / 2
		},
		moment: func(x float64) float64 {
			if x <= l/2 {
				return p * x / 2
			}
			return p * (l - x) / 2
		},
		deflection: func(x float64) float64 {
			// Symmetric about midspan; evaluate on the near half.
			if x > l/2 {
				x = l - x
			}
			return p * x * (3*l*l - 4*x*x) / (48 * ei)
		},
		maxShear:      p / 2,
		maxMoment:     p * l / 4,
		maxMomentAtX:  l / 2,
		maxDeflection: p * l * l * l / (48 * ei),
	}
}

func cantileverUDL(in Input) caseFns {
	w, l, ei := in.W, in.Span, in.E*in.I
	return caseFns{
		shear:  func(x float64) float64 { return w * (l - x) },
		moment: func(x float64) float64 { return -w * (l - x) * (l - x) / 2 },
		deflection: func(x float64) float64 {
			return w * x * x * (6*l*l - 4*l*x + x*x) / (24 * ei)
		},
		maxShear:      w * l,
		maxMoment:     w * l * l / 2,
		maxMomentAtX:  0,
		maxDeflection: w * l * l * l * l / (8 * ei),
	}
}

func cantileverPoint(in Input) caseFns {
	p, l, ei := in.P, in.Span, in.E*in.I
	return caseFns{
		shear:  func(x float64) float64 { return p },
		moment: func(x float64) float64 { return -p * (l - x) },
		deflection: func(x float64) float64 {
			return p * x * x * (3*l - x) / (6 * ei)
		},
		maxShear:      p,
		maxMoment:     p * l,
		maxMomentAtX:  0,
		maxDeflection: p * l * l * l / (3 * ei),
	}
}
