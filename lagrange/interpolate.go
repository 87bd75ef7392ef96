package lagrange

import (
	"fmt"
	"math/big"
)

// Interpolate evaluates at atX the unique polynomial of degree at most k-1
// passing through the first k points. A nil atX means zero.
//
// Every term y_i * prod(atX - x_j) / prod(x_i - x_j) is accumulated as an
// exact rational, so individual basis values need not be integers. The final
// sum must be, otherwise ErrNonIntegerResult is returned.
func Interpolate(points []Point, k int, atX *big.Int) (*big.Int, error) {
	sum, err := InterpolateRat(points, k, atX)
	if err != nil {
		return nil, err
	}

	if !sum.IsInt() {
		return nil, fmt.Errorf("%w: got %s", ErrNonIntegerResult, sum.RatString())
	}

	return new(big.Int).Set(sum.Num()), nil
}

// InterpolateRat is like Interpolate but returns the exact rational value.
func InterpolateRat(points []Point, k int, atX *big.Int) (*big.Rat, error) {
	if err := checkPoints(points, k); err != nil {
		return nil, err
	}

	if atX == nil {
		atX = new(big.Int)
	}

	selected := points[:k]
	sum := new(big.Rat)
	diff := new(big.Int)

	for i := range selected {
		numerator := big.NewInt(1)
		denominator := big.NewInt(1)

		for j := range selected {
			if i == j {
				continue
			}

			// numerator *= (atX - x_j)
			numerator.Mul(numerator, diff.Sub(atX, selected[j].X))

			// denominator *= (x_i - x_j)
			denominator.Mul(denominator, diff.Sub(selected[i].X, selected[j].X))
		}

		// sum += y_i * numerator / denominator
		numerator.Mul(numerator, selected[i].Y)
		sum.Add(sum, new(big.Rat).SetFrac(numerator, denominator))
	}

	return sum, nil
}

// Secret recovers the constant term of the polynomial from the first k points.
func Secret(points []Point, k int) (*big.Int, error) {
	return Interpolate(points, k, nil)
}

// checkPoints validates threshold and the first k points. A zero denominator
// is rejected here, before any rational is built from it.
func checkPoints(points []Point, k int) error {
	if k < 1 {
		return ErrInvalidThreshold
	}

	if len(points) < k {
		return fmt.Errorf("%w: need %d, got %d", ErrInsufficientPoints, k, len(points))
	}

	seen := make(map[string]int, k)
	for i, point := range points[:k] {
		if point.X == nil || point.Y == nil {
			return fmt.Errorf("%w: index %d", ErrInvalidPoint, i)
		}

		key := point.X.String()
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: x=%s at indices %d and %d", ErrDuplicateX, key, prev, i)
		}
		seen[key] = i
	}

	return nil
}
