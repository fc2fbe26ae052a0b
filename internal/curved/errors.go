package curved

import "fmt"

// Kind discriminates the ways an analysis can fail. Every failure is
// terminal for that call and recoverable by the caller; the solver never
// panics and never returns a partial result.
type Kind string

const (
	// KindInvalidParameter marks a required input that is missing,
	// non-finite, or of the wrong sign.
	KindInvalidParameter Kind = "invalid_parameter"

	// KindUnsupportedShape marks a shape identifier outside the
	// supported section families.
	KindUnsupportedShape Kind = "unsupported_shape"

	// KindDegenerateGeometry marks a section whose integrals collapse,
	// such as a composite with no material anywhere.
	KindDegenerateGeometry Kind = "degenerate_geometry"

	// KindVanishingEccentricity marks a section so shallow relative to
	// its radius that the neutral axis coincides with the centroid and
	// the curved-beam stress formula becomes singular.
	KindVanishingEccentricity Kind = "vanishing_eccentricity"

	// KindMissingLoad marks an input where neither a moment nor a
	// complete force and lever-arm pair resolves to a finite value.
	KindMissingLoad Kind = "missing_load"
)

// Error is the failure record returned by Analyze.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func failf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
