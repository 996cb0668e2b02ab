package types

import (
	"strings"

	"github.com/araddon/dateparse"
)

// ListDelimiter separates the items of a string given to an Array option
const ListDelimiter = ","

// Coerce checks v against t and returns the value converted to t's representation
func Coerce(v Value, t OptionType) (Value, bool) {
	if v.IsNull() {
		return v, t == Void
	}

	switch t {
	case String:
		if raw, ok := v.Raw(); ok {
			return StringOf(raw), true
		}
	case Number:
		if v.kind == KindNumber {
			return v, true
		}
	case Boolean:
		if v.kind == KindBoolean {
			return v, true
		}
	case Array:
		if v.kind == KindArray {
			return v, true
		}
		if raw, ok := v.Raw(); ok {
			return StringsOf(strings.Split(raw, ListDelimiter)...), true
		}
	case Object, JSON:
		if v.kind == KindObject {
			return v, true
		}
	case KVP:
		if v.kind == KindKVP {
			return v, true
		}
	case Date:
		if v.kind == KindDate {
			return v, true
		}
		if raw, ok := v.Raw(); ok {
			if when, err := dateparse.ParseAny(raw); err == nil {
				return DateOf(when), true
			}
		}
	}

	return v, false
}

// CoerceAny tries each type of ts in order and returns the first successful coercion
// together with the type that accepted it
func CoerceAny(v Value, ts []OptionType) (Value, OptionType, bool) {
	for _, t := range ts {
		if c, ok := Coerce(v, t); ok {
			return c, t, true
		}
	}

	return v, Unset, false
}
