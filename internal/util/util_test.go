package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		input    string
		expected Number
		valid    bool
	}{
		// Integers
		{"123", Number{Int: 123, IsInt: true}, true},
		{"-456", Number{Int: -456, IsInt: true, IsNegative: true}, true},
		{" 42 ", Number{Int: 42, IsInt: true}, true},
		{"0x1a", Number{Int: 26, IsInt: true}, true},  // hex
		{"0b1010", Number{Int: 10, IsInt: true}, true}, // binary
		{"0o17", Number{Int: 15, IsInt: true}, true},   // octal
		{"0755", Number{Int: 755, IsInt: true}, true},  // leading zeros stay decimal
		{"9223372036854775807", Number{Int: math.MaxInt64, IsInt: true}, true},

		// Floats
		{"123.45", Number{Float: 123.45, IsFloat: true}, true},
		{"-0.5", Number{Float: -0.5, IsFloat: true, IsNegative: true}, true},
		{"1e3", Number{Float: 1000, IsFloat: true}, true},

		// Invalid
		{"", Number{}, false},
		{"abc", Number{}, false},
		{"1_000", Number{}, false},
		{"inf", Number{}, false},
		{"NaN", Number{}, false},
		{"0x1p-2", Number{}, false},
		{"12abc", Number{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseNumeric(tt.input)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.expected, got)
			}
		})
	}

	n, _ := ParseNumeric("7")
	assert.Equal(t, float64(7), n.Value())
	n, _ = ParseNumeric("7.5")
	assert.Equal(t, 7.5, n.Value())
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		input     string
		onlyAlpha bool
		valid     bool
	}{
		{"deploy", true, true},
		{"--project-name", true, true},
		{"-n", true, true},
		{"ipv4", true, false},
		{"ipv4", false, true},
		{"with space", false, false},
		{"under_score", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsIdentifier(tt.input, tt.onlyAlpha))
		})
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"--environment", "--verbose", "--env-file"}

	got := Suggest("--env", candidates, 3)
	assert.Contains(t, got, "--environment")
	assert.Contains(t, got, "--env-file")
	assert.NotContains(t, got, "--verbose")

	assert.Len(t, Suggest("--env", candidates, 1), 1)
	assert.Empty(t, Suggest("--", candidates, 3))
	assert.Empty(t, Suggest("--zzz", candidates, 3))
	assert.Empty(t, Suggest("dep", nil, 3))
}
