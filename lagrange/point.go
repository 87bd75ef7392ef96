package lagrange

import (
	"fmt"
	"math/big"
)

// Point is a single (x, y) share of a polynomial.
type Point struct {
	X *big.Int
	Y *big.Int
}

// NewPoint is a shorthand for building points from small integers.
func NewPoint(x, y int64) Point {
	return Point{X: big.NewInt(x), Y: big.NewInt(y)}
}

// Clone creates a deep copy of the point.
func (p Point) Clone() Point {
	var c Point
	if p.X != nil {
		c.X = new(big.Int).Set(p.X)
	}
	if p.Y != nil {
		c.Y = new(big.Int).Set(p.Y)
	}
	return c
}

// Equal checks if two points have the same coordinates.
func (p Point) Equal(other Point) bool {
	return cmpNil(p.X, other.X) && cmpNil(p.Y, other.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

func cmpNil(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}
