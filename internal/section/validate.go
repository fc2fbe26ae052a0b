package section

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedShape is returned for a shape identifier outside the
// supported families.
var ErrUnsupportedShape = errors.New("unsupported section shape")

// ValidationError reports a parameter that is missing, non-finite, or of
// the wrong sign. The message names the offending field so callers can
// surface it directly.
type ValidationError struct {
	Field string
	msg   string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// constraint is the sign requirement on a single parameter.
type constraint int

const (
	positive constraint = iota
	nonNegative
)

func (c constraint) check(v float64) bool {
	if c == positive {
		return v > 0
	}
	return v >= 0
}

func (c constraint) String() string {
	if c == positive {
		return "a positive number"
	}
	return "a non-negative number"
}

// rule binds a parameter name to its sign constraint.
type rule struct {
	field string
	cons  constraint
}

// rules lists the required parameters per shape. The table drives both
// validation and the field listings in CLI help output.
var rules = map[Shape][]rule{
	Rectangular: {
		{"b", positive},
		{"t", positive},
	},
	Trapezoidal: {
		{"bInner", positive},
		{"bOuter", positive},
		{"t", positive},
	},
	Triangular: {
		{"bInner", nonNegative},
		{"bOuter", nonNegative},
		{"t", positive},
	},
	Circular: {
		{"d", positive},
	},
	TSection: {
		{"R1", positive},
		{"t1", positive},
		{"b1", positive},
		{"R2", positive},
		{"t2", positive},
		{"b2", positive},
	},
}

// Fields reports the required parameter names for a shape, in declaration
// order. It returns nil for an unsupported shape.
func Fields(shape Shape) []string {
	rs, ok := rules[shape]
	if !ok {
		return nil
	}
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.field
	}
	return names
}

// Validate checks the raw parameters for a shape against the rule table.
// It fails on the first missing, non-finite, or wrongly signed field and
// never inspects the resulting width profile.
func Validate(shape Shape, p Params) error {
	rs, ok := rules[shape]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedShape, shape)
	}

	for _, r := range rs {
		v, found := p[r.field]
		if !found || math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{
				Field: r.field,
				msg:   fmt.Sprintf("parameter %q must be %s, got no finite value", r.field, r.cons),
			}
		}
		if !r.cons.check(v) {
			return &ValidationError{
				Field: r.field,
				msg:   fmt.Sprintf("parameter %q must be %s, got %g", r.field, r.cons, v),
			}
		}
	}

	// A triangle may taper to zero width at one surface but not both.
	if shape == Triangular && p["bInner"] <= 0 && p["bOuter"] <= 0 {
		return &ValidationError{
			Field: "bInner",
			msg:   `parameters "bInner" and "bOuter" cannot both be zero`,
		}
	}

	return nil
}
