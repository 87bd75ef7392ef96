package sharefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/secretrecover/lagrange"
)

// KeysField is the reserved record key holding the threshold parameters.
const KeysField = "keys"

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath picks the record format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: no extension in %s", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Keys holds the threshold parameters of a record.
type Keys struct {
	// N is the number of shares the record was created with. Informational only.
	N int `json:"n" yaml:"n"`
	// K is the number of shares required for reconstruction.
	K int `json:"k" yaml:"k"`
}

// EncodedValue is a y-coordinate written as a digit string in a declared base.
type EncodedValue struct {
	Base  string `json:"base" yaml:"base"`
	Value string `json:"value" yaml:"value"`
}

// Record is a decoded share file: threshold parameters plus shares keyed by
// their base-10 x-coordinate.
type Record struct {
	Keys   Keys
	Shares map[string]EncodedValue
}

// Load reads and parses a record file. The format is chosen by extension.
func Load(path string) (*Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return Parse(data, format)
}

// Parse decodes a record in the given format.
func Parse(data []byte, format Format) (*Record, error) {
	var (
		record *Record
		err    error
	)

	switch format {
	case FormatJSON:
		record, err = parseJSON(data)
	case FormatYAML:
		record, err = parseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return nil, err
	}

	if record.Keys.K < 1 {
		return nil, fmt.Errorf("%w: threshold k must be at least 1, got %d", ErrMalformedInput, record.Keys.K)
	}

	return record, nil
}

func parseJSON(data []byte) (*Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrMalformedInput, err)
	}

	keysData, ok := raw[KeysField]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q object", ErrMalformedInput, KeysField)
	}

	record := &Record{Shares: make(map[string]EncodedValue, len(raw)-1)}

	if err := json.Unmarshal(keysData, &record.Keys); err != nil {
		return nil, errors.Join(fmt.Errorf("%w: invalid %q object", ErrMalformedInput, KeysField), err)
	}

	for key, entry := range raw {
		if key == KeysField {
			continue
		}

		var value wireValue
		if err := json.Unmarshal(entry, &value); err != nil {
			return nil, errors.Join(fmt.Errorf("%w: invalid share %q", ErrMalformedInput, key), err)
		}
		record.Shares[key] = value.encoded()
	}

	return record, nil
}

func parseYAML(data []byte) (*Record, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrMalformedInput, err)
	}

	keysNode, ok := raw[KeysField]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q object", ErrMalformedInput, KeysField)
	}

	record := &Record{Shares: make(map[string]EncodedValue, len(raw)-1)}

	if err := keysNode.Decode(&record.Keys); err != nil {
		return nil, errors.Join(fmt.Errorf("%w: invalid %q object", ErrMalformedInput, KeysField), err)
	}

	for key, node := range raw {
		if key == KeysField {
			continue
		}

		var value EncodedValue
		if err := node.Decode(&value); err != nil {
			return nil, errors.Join(fmt.Errorf("%w: invalid share %q", ErrMalformedInput, key), err)
		}
		record.Shares[key] = value
	}

	return record, nil
}

// Points decodes every share of the record into a point, sorted by ascending x.
// Shares with equal x keep the lexical order of their keys.
func (r *Record) Points() ([]lagrange.Point, error) {
	keys := make([]string, 0, len(r.Shares))
	for key := range r.Shares {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	points := make([]lagrange.Point, 0, len(keys))
	for _, key := range keys {
		x, err := parseX(key)
		if err != nil {
			return nil, err
		}

		share := r.Shares[key]
		y, err := DecodeValue(share.Base, share.Value)
		if err != nil {
			return nil, fmt.Errorf("share %q: %w", key, err)
		}

		points = append(points, lagrange.Point{X: x, Y: y})
	}

	slices.SortStableFunc(points, func(a, b lagrange.Point) int {
		return a.X.Cmp(b.X)
	})

	return points, nil
}

// Encode writes a record for the given points with every y rendered in base.
func Encode(w io.Writer, k int, points []lagrange.Point, base int, format Format) error {
	if k < 1 {
		return fmt.Errorf("%w: threshold k must be at least 1, got %d", ErrMalformedInput, k)
	}

	entries := make([]entry, len(points))
	for i, point := range points {
		value, err := EncodeValue(point.Y, base)
		if err != nil {
			return err
		}
		entries[i] = entry{
			key:   point.X.String(),
			value: EncodedValue{Base: fmt.Sprintf("%d", base), Value: value},
		}
	}

	keys := Keys{N: len(points), K: k}

	switch format {
	case FormatJSON:
		return encodeJSON(w, keys, entries)
	case FormatYAML:
		return encodeYAML(w, keys, entries)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

type entry struct {
	key   string
	value EncodedValue
}

func encodeJSON(w io.Writer, keys Keys, entries []entry) error {
	var buf bytes.Buffer

	keysData, err := json.Marshal(keys)
	if err != nil {
		return err
	}

	buf.WriteString(`{"` + KeysField + `":`)
	buf.Write(keysData)

	for _, e := range entries {
		keyData, err := json.Marshal(e.key)
		if err != nil {
			return err
		}
		valueData, err := json.Marshal(e.value)
		if err != nil {
			return err
		}

		buf.WriteByte(',')
		buf.Write(keyData)
		buf.WriteByte(':')
		buf.Write(valueData)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("failed to indent record: %w", err)
	}
	out.WriteByte('\n')

	_, err = w.Write(out.Bytes())
	return err
}

func encodeYAML(w io.Writer, keys Keys, entries []entry) error {
	root := &yaml.Node{Kind: yaml.MappingNode}

	appendPair := func(key string, value interface{}) error {
		var valueNode yaml.Node
		if err := valueNode.Encode(value); err != nil {
			return err
		}
		keyNode := yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		if _, ok := new(big.Int).SetString(key, 10); ok {
			// numeric keys stay strings when read back
			keyNode.Style = yaml.DoubleQuotedStyle
		}
		root.Content = append(root.Content, &keyNode, &valueNode)
		return nil
	}

	if err := appendPair(KeysField, keys); err != nil {
		return err
	}

	for _, e := range entries {
		if err := appendPair(e.key, e.value); err != nil {
			return err
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}
