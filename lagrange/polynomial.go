package lagrange

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Polynomial is a polynomial with integer coefficients.
// coefficients[0] is the constant term (the secret).
type Polynomial struct {
	coefficients []*big.Int
}

// NewPolynomial creates a polynomial from the given coefficients, lowest degree first.
// The coefficients are copied.
func NewPolynomial(coefficients ...*big.Int) (*Polynomial, error) {
	coeffs := make([]*big.Int, len(coefficients))
	for i, c := range coefficients {
		if c == nil {
			return nil, fmt.Errorf("%w: coefficient %d", ErrInvalidCoefficient, i)
		}
		coeffs[i] = new(big.Int).Set(c)
	}
	return &Polynomial{coefficients: coeffs}, nil
}

// newRandomPolynomial creates a random polynomial of degree (threshold-1)
// with the given secret as the constant term. Other coefficients are drawn
// from [1, 2^bits).
func newRandomPolynomial(secret *big.Int, threshold, bits int) (*Polynomial, error) {
	if threshold < 1 {
		return nil, ErrInvalidThreshold
	}

	if bits < 1 {
		return nil, ErrInvalidCoefficientBits
	}

	if secret == nil {
		return nil, fmt.Errorf("%w: secret", ErrInvalidCoefficient)
	}

	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))

	coefficients := make([]*big.Int, threshold)
	coefficients[0] = new(big.Int).Set(secret)

	for i := 1; i < threshold; i++ {
		coef, err := randomCoefficient(limit)
		if err != nil {
			return nil, err
		}
		coefficients[i] = coef
	}

	return &Polynomial{coefficients: coefficients}, nil
}

// randomCoefficient generates a random integer in [1, limit).
func randomCoefficient(limit *big.Int) (*big.Int, error) {
	for {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return nil, err
		}
		if n.Sign() > 0 {
			return n, nil
		}
	}
}

// Degree returns the degree of the polynomial, or -1 for an empty one.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Evaluate evaluates the polynomial at point x using Horner's method.
// A nil x is treated as 0.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	if len(p.coefficients) == 0 {
		return big.NewInt(0)
	}

	if x == nil {
		return new(big.Int).Set(p.coefficients[0])
	}

	// ((a_n*x + a_{n-1})*x + ... + a_1)*x + a_0
	result := new(big.Int).Set(p.coefficients[len(p.coefficients)-1])

	for i := len(p.coefficients) - 2; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.coefficients[i])
	}

	return result
}

// Points evaluates the polynomial at every x and returns the resulting points.
// A nil x yields the point at 0.
func (p *Polynomial) Points(xs ...*big.Int) []Point {
	points := make([]Point, len(xs))
	for i, x := range xs {
		if x == nil {
			x = new(big.Int)
		}
		points[i] = Point{X: new(big.Int).Set(x), Y: p.Evaluate(x)}
	}
	return points
}
