package lagrange

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points(pairs ...int64) []Point {
	result := make([]Point, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		result = append(result, NewPoint(pairs[i], pairs[i+1]))
	}
	return result
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		points   []Point
		k        int
		atX      *big.Int
		expected int64
	}{
		{
			name:     "quadratic x^2 + 2",
			points:   points(1, 3, 2, 6, 3, 11),
			k:        3,
			expected: 2,
		},
		{
			name:     "quadratic 5 + 3x + 2x^2",
			points:   points(1, 10, 2, 19, 3, 32),
			k:        3,
			expected: 5,
		},
		{
			name:     "linear 3 + 2x",
			points:   points(1, 5, 2, 7),
			k:        2,
			expected: 3,
		},
		{
			name:     "constant",
			points:   points(7, 42),
			k:        1,
			expected: 42,
		},
		{
			name:     "negative coordinates",
			points:   points(-2, 9, -1, 4, 4, 9),
			k:        3,
			expected: 1, // x^2 - 2x + 1
		},
		{
			name:     "non-zero target",
			points:   points(1, 3, 2, 6, 3, 11),
			k:        3,
			atX:      big.NewInt(10),
			expected: 102,
		},
		{
			name:     "target equal to a known x",
			points:   points(1, 3, 2, 6, 3, 11),
			k:        3,
			atX:      big.NewInt(2),
			expected: 6,
		},
		{
			name: "non-integer basis values sum to an integer",
			// 2 + x/2 * (x+1) = (x^2 + x + 4) / 2 evaluated on integer points
			points:   points(1, 3, 2, 5, 4, 12),
			k:        3,
			expected: 2,
		},
		{
			name:     "extra points are ignored",
			points:   points(1, 3, 2, 6, 3, 11, 4, 1000),
			k:        3,
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Interpolate(tt.points, tt.k, tt.atX)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Int64())
		})
	}
}

func TestInterpolateErrors(t *testing.T) {
	tests := []struct {
		name    string
		points  []Point
		k       int
		wantErr error
	}{
		{
			name:    "zero threshold",
			points:  points(1, 3),
			k:       0,
			wantErr: ErrInvalidThreshold,
		},
		{
			name:    "negative threshold",
			points:  points(1, 3),
			k:       -1,
			wantErr: ErrInvalidThreshold,
		},
		{
			name:    "fewer points than threshold",
			points:  points(1, 3, 2, 6),
			k:       3,
			wantErr: ErrInsufficientPoints,
		},
		{
			name:    "no points",
			points:  nil,
			k:       1,
			wantErr: ErrInsufficientPoints,
		},
		{
			name:    "duplicate x coordinates",
			points:  points(1, 3, 1, 4, 3, 11),
			k:       3,
			wantErr: ErrDuplicateX,
		},
		{
			name:    "duplicate x with same y",
			points:  points(1, 3, 2, 6, 2, 6),
			k:       3,
			wantErr: ErrDuplicateX,
		},
		{
			name:    "nil coordinate",
			points:  []Point{{X: big.NewInt(1)}, NewPoint(2, 6)},
			k:       2,
			wantErr: ErrInvalidPoint,
		},
		{
			name:    "points not on an integer polynomial",
			points:  points(1, 1, 3, 2),
			k:       2,
			wantErr: ErrNonIntegerResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Interpolate(tt.points, tt.k, nil)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
		})
	}
}

func TestInterpolateDuplicateBeyondThreshold(t *testing.T) {
	// Duplicates after the first k points are not consulted.
	result, err := Interpolate(points(1, 3, 2, 6, 3, 11, 3, 11), 3, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Int64())
}

func TestInterpolateRat(t *testing.T) {
	t.Run("half-integer value", func(t *testing.T) {
		// line through (1, 1) and (3, 2): y = x/2 + 1/2
		result, err := InterpolateRat(points(1, 1, 3, 2), 2, big.NewInt(0))
		require.NoError(t, err)
		assert.Equal(t, "1/2", result.RatString())
	})

	t.Run("evaluate between points", func(t *testing.T) {
		result, err := InterpolateRat(points(1, 1, 3, 2), 2, big.NewInt(2))
		require.NoError(t, err)
		assert.Equal(t, "3/2", result.RatString())
	})

	t.Run("duplicate x", func(t *testing.T) {
		_, err := InterpolateRat(points(1, 1, 1, 2), 2, nil)
		assert.ErrorIs(t, err, ErrDuplicateX)
	})
}

func TestInterpolateDoesNotMutateInput(t *testing.T) {
	input := points(1, 3, 2, 6, 3, 11)
	snapshot := make([]Point, len(input))
	for i, p := range input {
		snapshot[i] = p.Clone()
	}

	atX := big.NewInt(5)
	_, err := Interpolate(input, 3, atX)
	require.NoError(t, err)

	for i := range input {
		assert.True(t, snapshot[i].Equal(input[i]), "point %d changed", i)
	}
	assert.Equal(t, int64(5), atX.Int64())
}

func TestSecret(t *testing.T) {
	t.Run("three points on x^2 + 2", func(t *testing.T) {
		secret, err := Secret(points(1, 3, 2, 6, 3, 11), 3)
		require.NoError(t, err)
		assert.Equal(t, "2", secret.String())
	})

	t.Run("three points on x^2 + x + 1", func(t *testing.T) {
		secret, err := Secret(points(1, 3, 2, 7, 3, 13), 3)
		require.NoError(t, err)
		assert.Equal(t, "1", secret.String())
	})

	t.Run("large values", func(t *testing.T) {
		c0, ok := new(big.Int).SetString("123456789012345678901234567890123456789012345678901234567890", 10)
		require.True(t, ok)
		c1, ok := new(big.Int).SetString("-98765432109876543210987654321098765432109876543210", 10)
		require.True(t, ok)
		c2, ok := new(big.Int).SetString("31415926535897932384626433832795028841971", 10)
		require.True(t, ok)

		poly := mustNewPolynomial(t, c0, c1, c2)
		shares := poly.Points(big.NewInt(2), big.NewInt(7), big.NewInt(13))

		secret, err := Secret(shares, 3)
		require.NoError(t, err)
		assert.Equal(t, 0, c0.Cmp(secret))
	})
}

func BenchmarkSecret(b *testing.B) {
	coeffs := make([]*big.Int, 10)
	for i := range coeffs {
		coeffs[i] = new(big.Int).Lsh(big.NewInt(int64(i+3)), 250)
	}
	poly := mustNewPolynomial(b, coeffs...)

	xs := make([]*big.Int, len(coeffs))
	for i := range xs {
		xs[i] = big.NewInt(int64(i + 1))
	}
	shares := poly.Points(xs...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Secret(shares, len(shares)); err != nil {
			b.Fatal(err)
		}
	}
}
