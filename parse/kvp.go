package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/napalu/goinput/types"
)

// Key-value-pair micro-syntax: !key:value|key2:value2
const (
	PairMarker        = "!"
	PairSeparator     = "|"
	KeyValueSeparator = ":"
)

var (
	ErrMissingSeparator = errors.New("requires a ':' followed by a value")
	ErrMissingValue     = errors.New("requires a value")
	ErrMissingKey       = errors.New("requires a key")
)

// IsKeyValuePairs reports whether raw uses the key-value-pair micro-syntax
func IsKeyValuePairs(raw string) bool {
	return strings.HasPrefix(raw, PairMarker)
}

// KeyValuePairs parses "!key:value|key2:value2" into a KVP value. Values are run through
// Infer and may themselves contain ':'.
func KeyValuePairs(raw string, parseJSON bool) (types.Value, error) {
	body := strings.TrimPrefix(raw, PairMarker)
	m := types.NewMap()

	for _, pair := range strings.Split(body, PairSeparator) {
		key, value, found := strings.Cut(pair, KeyValueSeparator)
		switch {
		case !found:
			return types.Value{}, fmt.Errorf("pair %q %w", pair, ErrMissingSeparator)
		case key == "":
			return types.Value{}, fmt.Errorf("pair %q %w", pair, ErrMissingKey)
		case value == "":
			return types.Value{}, fmt.Errorf("key %q %w", key, ErrMissingValue)
		}
		m.Set(key, Infer(value, parseJSON))
	}

	return types.KVPOf(m), nil
}
