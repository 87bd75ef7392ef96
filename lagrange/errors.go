package lagrange

import "errors"

var (
	// ErrInvalidThreshold is returned when threshold is less than 1.
	ErrInvalidThreshold = errors.New("lagrange: threshold must be at least 1")

	// ErrInvalidTotal is returned when the number of shares to generate is less than threshold.
	ErrInvalidTotal = errors.New("lagrange: total shares must be at least equal to threshold")

	// ErrInvalidCoefficientBits is returned when random coefficients are requested with no bits.
	ErrInvalidCoefficientBits = errors.New("lagrange: coefficient bit size must be at least 1")

	// ErrInvalidCoefficient is returned when a polynomial coefficient or secret is nil.
	ErrInvalidCoefficient = errors.New("lagrange: coefficients must be set")

	// ErrInsufficientPoints is returned when fewer points than threshold are provided.
	ErrInsufficientPoints = errors.New("lagrange: insufficient points for interpolation")

	// ErrInvalidPoint is returned when a point has a nil coordinate.
	ErrInvalidPoint = errors.New("lagrange: point coordinates must be set")

	// ErrDuplicateX is returned when two selected points share an x-coordinate.
	ErrDuplicateX = errors.New("lagrange: duplicate x-coordinate")

	// ErrNonIntegerResult is returned when the interpolated value is not a whole number.
	ErrNonIntegerResult = errors.New("lagrange: interpolated value is not an integer")

	// ErrInconsistentPoints is returned when extra points do not lie on the interpolated polynomial.
	ErrInconsistentPoints = errors.New("lagrange: points do not lie on a single polynomial")
)
