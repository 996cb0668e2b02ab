package parse

import (
	"encoding/json"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/napalu/goinput/internal/util"
	"github.com/napalu/goinput/types"
)

// Infer converts a raw option value into a Value. It tries, in order: a numeric literal,
// the boolean literals true and false, a brace-delimited JSON object when parseJSON is
// set, and otherwise keeps the text as a string. Numbers and booleans remember the text
// they were inferred from.
func Infer(raw string, parseJSON bool) types.Value {
	if n, ok := util.ParseNumeric(raw); ok {
		return types.NumberOf(n.Value()).WithRaw(raw)
	}

	switch raw {
	case "true":
		return types.BoolOf(true).WithRaw(raw)
	case "false":
		return types.BoolOf(false).WithRaw(raw)
	}

	if parseJSON && isBraceDelimited(raw) {
		if v, ok := decodeJSONObject(raw); ok {
			return v
		}
	}

	return types.StringOf(raw)
}

func isBraceDelimited(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}")
}

// decodeJSONObject accepts strict JSON only and decodes it keeping key order
func decodeJSONObject(raw string) (types.Value, bool) {
	if !json.Valid([]byte(raw)) {
		return types.Value{}, false
	}

	var decoded interface{}
	if err := yaml.UnmarshalWithOptions([]byte(raw), &decoded, yaml.UseOrderedMap()); err != nil {
		return types.Value{}, false
	}

	v := fromDecoded(decoded)
	if v.Kind() != types.KindObject {
		return types.Value{}, false
	}

	return v, true
}

func fromDecoded(d interface{}) types.Value {
	switch x := d.(type) {
	case nil:
		return types.Null()
	case yaml.MapSlice:
		m := types.NewMap()
		for _, item := range x {
			m.Set(keyString(item.Key), fromDecoded(item.Value))
		}
		return types.ObjectOf(m)
	case []interface{}:
		items := make([]types.Value, 0, len(x))
		for _, item := range x {
			items = append(items, fromDecoded(item))
		}
		return types.ArrayOf(items...)
	case string:
		return types.StringOf(x)
	case bool:
		return types.BoolOf(x)
	case int:
		return types.NumberOf(float64(x))
	case int64:
		return types.NumberOf(float64(x))
	case uint64:
		return types.NumberOf(float64(x))
	case float64:
		return types.NumberOf(x)
	}

	return types.Null()
}

func keyString(k interface{}) string {
	if s, ok := k.(string); ok {
		return s
	}

	return fromDecoded(k).String()
}
