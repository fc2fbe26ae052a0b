package straight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	// Steel-ish numbers throughout: E = 200e9, I = 8e-5, 6 m span.
	tests := []struct {
		name          string
		in            Input
		maxShear      float64
		maxMoment     float64
		maxMomentAtX  float64
		maxDeflection float64
	}{
		{
			name:          "SimpleUDL",
			in:            Input{Case: SimpleUDL, Span: 6, W: 10e3, E: 200e9, I: 8e-5},
			maxShear:      30e3, // wL/2
			maxMoment:     45e3, // wL^2/8
			maxMomentAtX:  3,
			maxDeflection: 5 * 10e3 * 1296 / (384 * 200e9 * 8e-5), // 5wL^4/384EI
		},
		{
			name:          "SimplePoint",
			in:            Input{Case: SimplePoint, Span: 6, P: 20e3, E: 200e9, I: 8e-5},
			maxShear:      10e3, // P/2
			maxMoment:     30e3, // PL/4
			maxMomentAtX:  3,
			maxDeflection: 20e3 * 216 / (48 * 200e9 * 8e-5), // PL^3/48EI
		},
		{
			name:          "CantileverUDL",
			in:            Input{Case: CantileverUDL, Span: 6, W: 10e3, E: 200e9, I: 8e-5},
			maxShear:      60e3,  // wL
			maxMoment:     180e3, // wL^2/2
			maxMomentAtX:  0,
			maxDeflection: 10e3 * 1296 / (8 * 200e9 * 8e-5), // wL^4/8EI
		},
		{
			name:          "CantileverPoint",
			in:            Input{Case: CantileverPoint, Span: 6, P: 20e3, E: 200e9, I: 8e-5},
			maxShear:      20e3,  // P
			maxMoment:     120e3, // PL
			maxMomentAtX:  0,
			maxDeflection: 20e3 * 216 / (3 * 200e9 * 8e-5), // PL^3/3EI
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.in)
			require.NoError(t, err)

			assert.InEpsilon(t, tt.maxShear, res.MaxShear, 1e-12)
			assert.InEpsilon(t, tt.maxMoment, res.MaxMoment, 1e-12)
			assert.InDelta(t, tt.maxMomentAtX, res.MaxMomentAtX, 1e-12)
			assert.InEpsilon(t, tt.maxDeflection, res.MaxDeflection, 1e-12)

			require.Len(t, res.X, DefaultSamples)
			assert.Zero(t, res.Deflection[0])
		})
	}
}

func TestEvaluateDiagramsMatchClosedForms(t *testing.T) {
	res, err := Evaluate(Input{Case: SimpleUDL, Span: 6, W: 10e3, E: 200e9, I: 8e-5, Samples: 3})
	require.NoError(t, err)

	// Midspan sample lands on the closed-form maxima; end shears are the
	// reactions.
	assert.InDelta(t, 30e3, res.Shear[0], 1e-9)
	assert.InDelta(t, -30e3, res.Shear[2], 1e-9)
	assert.InDelta(t, 45e3, res.Moment[1], 1e-9)
	assert.InDelta(t, res.MaxDeflection, res.Deflection[1], 1e-9)
	assert.Zero(t, res.Moment[0])
	assert.InDelta(t, 0, res.Moment[2], 1e-9)
}

func TestEvaluateInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"ZeroSpan", Input{Case: SimpleUDL, Span: 0, W: 1, E: 1, I: 1}},
		{"NegativeSpan", Input{Case: SimpleUDL, Span: -2, W: 1, E: 1, I: 1}},
		{"ZeroModulus", Input{Case: SimpleUDL, Span: 2, W: 1, E: 0, I: 1}},
		{"ZeroInertia", Input{Case: SimpleUDL, Span: 2, W: 1, E: 1, I: 0}},
		{"MissingUDL", Input{Case: SimpleUDL, Span: 2, E: 1, I: 1}},
		{"MissingPointLoad", Input{Case: CantileverPoint, Span: 2, E: 1, I: 1}},
		{"UnknownCase", Input{Case: LoadCase("fixed-fixed"), Span: 2, W: 1, E: 1, I: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.in)
			assert.Error(t, err)
		})
	}
}
