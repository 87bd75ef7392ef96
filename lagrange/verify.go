package lagrange

import (
	"fmt"
)

// Verify checks that all points lie on the polynomial defined by the first k.
// It is never applied implicitly: Interpolate only consults the first k points.
func Verify(points []Point, k int) error {
	if err := checkPoints(points, k); err != nil {
		return err
	}

	// Extra points must have distinct x's too, among themselves and the base.
	seen := make(map[string]int, len(points))
	for i, point := range points {
		if point.X == nil || point.Y == nil {
			return fmt.Errorf("%w: index %d", ErrInvalidPoint, i)
		}

		key := point.X.String()
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: x=%s at indices %d and %d", ErrDuplicateX, key, prev, i)
		}
		seen[key] = i
	}

	for i := k; i < len(points); i++ {
		extra := points[i]

		expected, err := InterpolateRat(points, k, extra.X)
		if err != nil {
			return err
		}

		if !expected.IsInt() || expected.Num().Cmp(extra.Y) != 0 {
			return fmt.Errorf("%w: x=%s has y=%s, expected %s", ErrInconsistentPoints, extra.X, extra.Y, expected.RatString())
		}
	}

	return nil
}
