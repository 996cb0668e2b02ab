package parse

import (
	"errors"
	"testing"

	"github.com/napalu/goinput/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		parseJSON bool
		want      types.Value
	}{
		{"integer", "42", true, types.NumberOf(42)},
		{"float", "1.5", true, types.NumberOf(1.5)},
		{"negative", "-3", true, types.NumberOf(-3)},
		{"true", "true", true, types.BoolOf(true)},
		{"false", "false", true, types.BoolOf(false)},
		{"capitalised boolean stays a string", "True", true, types.StringOf("True")},
		{"plain string", "prod", true, types.StringOf("prod")},
		{"comma list stays a string", "3,4,5", true, types.StringOf("3,4,5")},
		{"json disabled", `{"a":1}`, false, types.StringOf(`{"a":1}`)},
		{"invalid json", `{a:1}`, true, types.StringOf(`{a:1}`)},
		{"only leading brace", `{"a":1`, true, types.StringOf(`{"a":1`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(tt.raw, tt.parseJSON)
			assert.True(t, tt.want.Equal(got), "got %s (%s)", got, got.Kind())
		})
	}
}

func TestInferKeepsRawText(t *testing.T) {
	raw, ok := Infer("0x10", true).Raw()
	assert.True(t, ok)
	assert.Equal(t, "0x10", raw)
}

func TestInferJSONKeepsKeyOrder(t *testing.T) {
	v := Infer(`{"zeta": 1, "alpha": {"nested": [true, "x", null]}, "mid": -2.5}`, true)
	require.Equal(t, types.KindObject, v.Kind())

	m, _ := v.Map()
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())

	alpha, _ := m.Get("alpha")
	am, ok := alpha.Map()
	require.True(t, ok)
	nested, _ := am.Get("nested")
	assert.True(t, types.ArrayOf(types.BoolOf(true), types.StringOf("x"), types.Null()).Equal(nested))

	mid, _ := m.Get("mid")
	assert.True(t, types.NumberOf(-2.5).Equal(mid))
}

func TestKeyValuePairs(t *testing.T) {
	v, err := KeyValuePairs("!team:core|tier:1|url:http://x", true)
	require.NoError(t, err)
	require.Equal(t, types.KindKVP, v.Kind())

	m, _ := v.Map()
	assert.Equal(t, []string{"team", "tier", "url"}, m.Keys())
	tier, _ := m.Get("tier")
	assert.True(t, types.NumberOf(1).Equal(tier))
	url, _ := m.Get("url")
	assert.True(t, types.StringOf("http://x").Equal(url))
}

func TestKeyValuePairsErrors(t *testing.T) {
	tests := []struct {
		raw  string
		want error
	}{
		{"!team", ErrMissingSeparator},
		{"!team:", ErrMissingValue},
		{"!:core", ErrMissingKey},
		{"!a:1|b", ErrMissingSeparator},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := KeyValuePairs(tt.raw, true)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	assert.True(t, IsKeyValuePairs("!a:b"))
	assert.False(t, IsKeyValuePairs("a:b"))
}

func TestSplitToken(t *testing.T) {
	tok := SplitToken("--env=prod")
	assert.Equal(t, Token{Name: "--env", Value: "prod", HasValue: true}, tok)

	tok = SplitToken("--query=a=b")
	assert.Equal(t, "a=b", tok.Value)

	tok = SplitToken("--verbose")
	assert.False(t, tok.HasValue)
	assert.False(t, tok.Dangling())

	assert.True(t, SplitToken("--env=").Dangling())
}

func TestGroups(t *testing.T) {
	groups, err := Groups([]string{"--config", "--user|--token"})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "--user|--token", groups[1].String())

	present := func(name string) bool { return name == "--token" }
	assert.False(t, groups[0].Satisfied(present))
	assert.True(t, groups[1].Satisfied(present))

	_, err = Groups([]string{"--a|"})
	assert.Error(t, err)
}

func TestState(t *testing.T) {
	s := NewState([]string{"deploy", "--env=prod", "-v"})
	assert.Equal(t, -1, s.Pos())
	assert.Equal(t, "", s.CurrentArg())
	assert.Equal(t, "deploy", s.Peek())

	assert.True(t, s.Advance())
	assert.Equal(t, "deploy", s.CurrentArg())
	assert.Equal(t, []string{"--env=prod", "-v"}, s.Remaining())
	assert.False(t, s.Done())

	assert.True(t, s.Advance())
	assert.True(t, s.Advance())
	assert.True(t, s.Done())
	assert.False(t, s.Advance())
	assert.Nil(t, s.Remaining())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "", s.Peek())
}
