package sharefile

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	MinBase = 2
	MaxBase = 36
)

// DecodeValue converts a digit string in the given base into an integer.
// Letters are case-insensitive and a leading sign is allowed.
func DecodeValue(base, value string) (*big.Int, error) {
	radix, err := parseBase(base)
	if err != nil {
		return nil, err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidDigit)
	}

	n, ok := new(big.Int).SetString(value, radix)
	if !ok {
		return nil, fmt.Errorf("%w: %q in base %d", ErrInvalidDigit, value, radix)
	}

	return n, nil
}

// EncodeValue renders n in the given base using lowercase digits.
func EncodeValue(n *big.Int, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", fmt.Errorf("%w: got %d", ErrInvalidBase, base)
	}
	return n.Text(base), nil
}

func parseBase(base string) (int, error) {
	radix, err := strconv.Atoi(strings.TrimSpace(base))
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidBase, base)
	}

	if radix < MinBase || radix > MaxBase {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidBase, radix)
	}

	return radix, nil
}

// parseX parses a record key as a base-10 x-coordinate.
func parseX(key string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(strings.TrimSpace(key), 10)
	if !ok {
		return nil, fmt.Errorf("%w: invalid x-coordinate %q", ErrMalformedInput, key)
	}
	return x, nil
}
