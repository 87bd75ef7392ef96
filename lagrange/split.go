package lagrange

import (
	"math/big"
)

// Split hides secret as the constant term of a random polynomial of degree
// threshold-1 and returns its values at x = 1..total. Any threshold of the
// returned points recover the secret through Secret.
//
// Coefficients are random integers below 2^coefficientBits. Arithmetic is over
// the integers, not a finite field, so the points leak information about the
// secret and are meant for record generation and testing.
func Split(secret *big.Int, threshold, total, coefficientBits int) ([]Point, error) {
	if threshold < 1 {
		return nil, ErrInvalidThreshold
	}

	if total < threshold {
		return nil, ErrInvalidTotal
	}

	poly, err := newRandomPolynomial(secret, threshold, coefficientBits)
	if err != nil {
		return nil, err
	}

	xs := make([]*big.Int, total)
	for i := range total {
		// x-coordinates are 1, 2, 3, ... (never 0)
		xs[i] = big.NewInt(int64(i + 1))
	}

	return poly.Points(xs...), nil
}
