package sharefile

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is returned when a share record cannot be decoded.
	ErrMalformedInput = errors.New("sharefile: malformed input")

	// ErrInvalidBase is returned when a declared base is not an integer in [2, 36].
	ErrInvalidBase = fmt.Errorf("%w: base must be an integer between %d and %d", ErrMalformedInput, MinBase, MaxBase)

	// ErrInvalidDigit is returned when a value contains a digit outside its declared base.
	ErrInvalidDigit = fmt.Errorf("%w: value is not a number in the declared base", ErrMalformedInput)

	// ErrUnsupportedFormat is returned for record formats other than JSON and YAML.
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported record format", ErrMalformedInput)
)
