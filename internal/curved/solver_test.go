package curved

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gocurve/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func rectInput() Input {
	return Input{
		Shape:  section.Rectangular,
		RInner: 0.05,
		Params: section.Params{"b": 0.02, "t": 0.02},
		M:      fp(1000),
	}
}

func TestAnalyzeRectangular(t *testing.T) {
	res, err := Analyze(rectInput())
	require.NoError(t, err)

	const (
		ri = 0.05
		ro = 0.07
		b  = 0.02
		th = 0.02
	)

	// Area and centroid are exact for a constant width profile.
	assert.InDelta(t, b*th, res.A, 1e-12)
	assert.InDelta(t, th/2, res.Ybar, 1e-9)
	assert.InDelta(t, ri+th/2, res.Rc, 1e-9)

	// Closed form for a rectangle: Rn = t / ln(ro/ri).
	rnExact := th / math.Log(ro/ri)
	assert.InEpsilon(t, rnExact, res.Rn, 1e-6)
	assert.InDelta(t, rnExact-ri, res.Yn, 1e-6)
	assert.InDelta(t, th/2-(rnExact-ri), res.E, 1e-6)

	assert.Equal(t, ri, res.RInner)
	assert.InDelta(t, ro, res.ROuter, 1e-15)

	// Positive moment bends the fibers in opposite senses.
	assert.Positive(t, res.SigmaInner)
	assert.Negative(t, res.SigmaOuter)
	assert.Negative(t, res.SigmaInner*res.SigmaOuter)
}

func TestAnalyzeSampledCurveMatchesFibers(t *testing.T) {
	res, err := Analyze(rectInput())
	require.NoError(t, err)

	require.Len(t, res.R, DefaultSamples)
	require.Len(t, res.Sigma, DefaultSamples)

	first, last := 0, len(res.R)-1
	assert.InDelta(t, res.RInner, res.R[first], 1e-12)
	assert.InDelta(t, res.ROuter, res.R[last], 1e-12)
	assert.InDelta(t, res.SigmaInner, res.Sigma[first], math.Abs(res.SigmaInner)*1e-9)
	assert.InDelta(t, res.SigmaOuter, res.Sigma[last], math.Abs(res.SigmaOuter)*1e-9)

	// Stress decreases monotonically through the neutral axis and
	// crosses zero exactly once.
	crossings := 0
	for i := 1; i < len(res.Sigma); i++ {
		if res.Sigma[i-1] > 0 && res.Sigma[i] <= 0 {
			crossings++
		}
	}
	assert.Equal(t, 1, crossings)
}

func TestAnalyzeSampleCountOverride(t *testing.T) {
	in := rectInput()
	in.Samples = 11

	res, err := Analyze(in)
	require.NoError(t, err)
	assert.Len(t, res.R, 11)
	assert.Len(t, res.Sigma, 11)
}

func TestAnalyzeIdempotent(t *testing.T) {
	a, err := Analyze(rectInput())
	require.NoError(t, err)
	b, err := Analyze(rectInput())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestAnalyzeLoadResolution(t *testing.T) {
	t.Run("ForceTimesArmOverridesMoment", func(t *testing.T) {
		in := rectInput()
		in.M = fp(999999)
		in.P = fp(500)
		in.D = fp(2)

		res, err := Analyze(in)
		require.NoError(t, err)
		assert.InDelta(t, 1000, res.Moment, 1e-12)
	})

	t.Run("MomentFallbackWhenArmMissing", func(t *testing.T) {
		in := rectInput()
		in.P = fp(500)
		in.D = nil

		res, err := Analyze(in)
		require.NoError(t, err)
		assert.InDelta(t, 1000, res.Moment, 1e-12)
	})

	t.Run("NoLoad", func(t *testing.T) {
		in := rectInput()
		in.M = nil

		_, err := Analyze(in)
		requireKind(t, err, KindMissingLoad)
	})

	t.Run("NonFiniteMoment", func(t *testing.T) {
		in := rectInput()
		in.M = fp(math.Inf(1))

		_, err := Analyze(in)
		requireKind(t, err, KindMissingLoad)
	})
}

func TestAnalyzeTriangular(t *testing.T) {
	t.Run("OneSideZeroIsValid", func(t *testing.T) {
		res, err := Analyze(Input{
			Shape:  section.Triangular,
			RInner: 0.05,
			Params: section.Params{"bInner": 0, "bOuter": 0.03, "t": 0.02},
			M:      fp(1000),
		})
		require.NoError(t, err)
		// Triangle area: b*t/2, apex at the inner surface.
		assert.InDelta(t, 0.03*0.02/2, res.A, 1e-9)
		assert.InDelta(t, 2.0/3.0*0.02, res.Ybar, 1e-6)
	})

	t.Run("BothSidesZeroRejected", func(t *testing.T) {
		_, err := Analyze(Input{
			Shape:  section.Triangular,
			RInner: 0.05,
			Params: section.Params{"bInner": 0, "bOuter": 0, "t": 0.02},
			M:      fp(1000),
		})
		requireKind(t, err, KindInvalidParameter)
	})
}

func TestAnalyzeCircular(t *testing.T) {
	res, err := Analyze(Input{
		Shape:  section.Circular,
		RInner: 0.05,
		Params: section.Params{"d": 0.04},
		M:      fp(1000),
	})
	require.NoError(t, err)

	// A = pi d^2 / 4; the boundary slope singularity costs some
	// trapezoid accuracy, hence the looser tolerance.
	assert.InEpsilon(t, math.Pi*0.04*0.04/4, res.A, 1e-3)
	assert.InDelta(t, 0.02, res.Ybar, 1e-6)
	assert.InDelta(t, 0.09, res.ROuter, 1e-15)
}

func TestAnalyzeTSection(t *testing.T) {
	// Two coincident rectangles behave as one rectangle of summed width.
	overlapped, err := Analyze(Input{
		Shape: section.TSection,
		Params: section.Params{
			"R1": 0.05, "t1": 0.02, "b1": 0.008,
			"R2": 0.05, "t2": 0.02, "b2": 0.012,
		},
		M: fp(1000),
	})
	require.NoError(t, err)

	plain, err := Analyze(rectInput())
	require.NoError(t, err)

	assert.InDelta(t, 0.05, overlapped.RInner, 1e-15)
	assert.InDelta(t, 0.07, overlapped.ROuter, 1e-15)
	assert.InDelta(t, plain.A, overlapped.A, 1e-9)
	assert.InDelta(t, plain.Rn, overlapped.Rn, 1e-9)
	assert.InDelta(t, plain.SigmaInner, overlapped.SigmaInner, math.Abs(plain.SigmaInner)*1e-6)

	// The composite fixes its own radii; a caller-supplied inner radius
	// is ignored.
	shifted, err := Analyze(Input{
		Shape:  section.TSection,
		RInner: 42,
		Params: section.Params{
			"R1": 0.05, "t1": 0.02, "b1": 0.008,
			"R2": 0.05, "t2": 0.02, "b2": 0.012,
		},
		M: fp(1000),
	})
	require.NoError(t, err)
	assert.Equal(t, overlapped, shifted)
}

func TestAnalyzeVanishingEccentricity(t *testing.T) {
	in := rectInput()
	in.RInner = 1e6

	_, err := Analyze(in)
	requireKind(t, err, KindVanishingEccentricity)
}

func TestAnalyzeInvalidInnerRadius(t *testing.T) {
	for _, ri := range []float64{0, -0.05, math.NaN(), math.Inf(1)} {
		in := rectInput()
		in.RInner = ri

		_, err := Analyze(in)
		requireKind(t, err, KindInvalidParameter)
	}
}

func TestAnalyzeUnsupportedShape(t *testing.T) {
	_, err := Analyze(Input{
		Shape:  section.Shape("hexagonal"),
		RInner: 0.05,
		M:      fp(1000),
	})
	requireKind(t, err, KindUnsupportedShape)
}

func TestAnalyzeExtremes(t *testing.T) {
	res, err := Analyze(rectInput())
	require.NoError(t, err)

	// Positive moment on a positive-eccentricity section: tension at the
	// inner fiber, compression at the outer.
	assert.Equal(t, "inner", res.MaxTension.Side)
	assert.Equal(t, res.SigmaInner, res.MaxTension.Value)
	assert.Equal(t, res.RInner, res.MaxTension.AtR)

	assert.Equal(t, "outer", res.MaxCompression.Side)
	assert.Equal(t, res.SigmaOuter, res.MaxCompression.Value)
	assert.Equal(t, res.ROuter, res.MaxCompression.AtR)

	// Reversed moment swaps the roles.
	in := rectInput()
	in.M = fp(-1000)
	rev, err := Analyze(in)
	require.NoError(t, err)
	assert.Equal(t, "outer", rev.MaxTension.Side)
	assert.Equal(t, "inner", rev.MaxCompression.Side)

	// Zero moment: both fiber stresses are zero and the tie resolves to
	// the inner surface for both labels.
	in = rectInput()
	in.M = fp(0)
	tie, err := Analyze(in)
	require.NoError(t, err)
	assert.Equal(t, "inner", tie.MaxTension.Side)
	assert.Equal(t, "inner", tie.MaxCompression.Side)
}

func requireKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, kind, cerr.Kind)
	assert.NotEmpty(t, cerr.Message)
}
