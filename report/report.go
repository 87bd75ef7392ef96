package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"sync"

	"github.com/vitalvas/secretrecover/lagrange"
	"github.com/vitalvas/secretrecover/sharefile"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Error kinds reported alongside failures.
const (
	KindInsufficientPoints = "InsufficientPoints"
	KindDuplicateX         = "DuplicateXCoordinate"
	KindNonIntegerResult   = "NonIntegerResult"
	KindInconsistentPoints = "InconsistentPoints"
	KindInvalidThreshold   = "InvalidThreshold"
	KindMalformedInput     = "MalformedInput"
	KindUnknown            = "Unknown"
)

var kinds = []struct {
	err  error
	kind string
}{
	{lagrange.ErrInsufficientPoints, KindInsufficientPoints},
	{lagrange.ErrDuplicateX, KindDuplicateX},
	{lagrange.ErrNonIntegerResult, KindNonIntegerResult},
	{lagrange.ErrInconsistentPoints, KindInconsistentPoints},
	{lagrange.ErrInvalidThreshold, KindInvalidThreshold},
	{lagrange.ErrInvalidTotal, KindInvalidThreshold},
	{lagrange.ErrInvalidCoefficientBits, KindInvalidThreshold},
	{lagrange.ErrInvalidPoint, KindMalformedInput},
	{lagrange.ErrInvalidCoefficient, KindMalformedInput},
	{sharefile.ErrMalformedInput, KindMalformedInput},
}

// Kind classifies err into one of the Kind constants.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}

// Reporter writes secrets and errors, one line per result.
// It is safe for concurrent use.
type Reporter struct {
	mu     sync.Mutex
	w      io.Writer
	format string
}

// New creates a Reporter. Unknown formats fall back to text.
func New(w io.Writer, format string) *Reporter {
	format = strings.ToLower(format)
	if format != FormatJSON {
		format = FormatText
	}
	return &Reporter{w: w, format: format}
}

type secretLine struct {
	Source string `json:"source"`
	Secret string `json:"secret"`
}

type errorLine struct {
	Source string `json:"source"`
	Error  string `json:"error"`
	Kind   string `json:"kind"`
}

// Secret reports a recovered secret in base 10.
func (r *Reporter) Secret(source string, secret *big.Int) error {
	if r.format == FormatJSON {
		return r.writeJSON(secretLine{Source: source, Secret: secret.String()})
	}
	return r.writeText(fmt.Sprintf("%s: %s\n", source, secret.String()))
}

// Error reports a failed computation.
func (r *Reporter) Error(source string, err error) error {
	kind := Kind(err)
	if r.format == FormatJSON {
		return r.writeJSON(errorLine{Source: source, Error: err.Error(), Kind: kind})
	}
	return r.writeText(fmt.Sprintf("%s: error [%s]: %s\n", source, kind, err))
}

func (r *Reporter) writeText(line string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := io.WriteString(r.w, line)
	return err
}

func (r *Reporter) writeJSON(v interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return json.NewEncoder(r.w).Encode(v)
}
