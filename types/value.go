package types

import (
	"strconv"
	"strings"
	"time"
)

// Kind identifies the variant held by a Value
type Kind int

const (
	KindUndefined Kind = iota // zero Value, used by callbacks which leave the parsed value untouched
	KindNull                  // an option given without a value
	KindString
	KindNumber
	KindBoolean
	KindArray
	KindObject
	KindKVP
	KindDate
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindKVP:
		return "kvp"
	case KindDate:
		return "date"
	}
	return "undefined"
}

// Value is the closed set of values an option can hold. The zero Value is undefined.
type Value struct {
	kind Kind
	// string payload, or the source text of an inferred number or boolean
	str  string
	num  float64
	b    bool
	list []Value
	m    *Map
	t    time.Time
}

// Undefined returns the zero Value
func Undefined() Value {
	return Value{}
}

// Null returns the value of an option given without a value
func Null() Value {
	return Value{kind: KindNull}
}

// StringOf returns a string Value
func StringOf(s string) Value {
	return Value{kind: KindString, str: s}
}

// NumberOf returns a number Value
func NumberOf(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// BoolOf returns a boolean Value
func BoolOf(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// ArrayOf returns a sequence Value
func ArrayOf(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, list: items}
}

// StringsOf returns a sequence Value of strings
func StringsOf(items ...string) Value {
	list := make([]Value, 0, len(items))
	for _, s := range items {
		list = append(list, StringOf(s))
	}

	return Value{kind: KindArray, list: list}
}

// ObjectOf returns an object Value backed by m
func ObjectOf(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindObject, m: m}
}

// KVPOf returns a key-value-pair set Value backed by m
func KVPOf(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindKVP, m: m}
}

// DateOf returns a date Value
func DateOf(t time.Time) Value {
	return Value{kind: KindDate, t: t}
}

// WithRaw returns a copy of v remembering the text it was inferred from
func (v Value) WithRaw(raw string) Value {
	if v.kind == KindNumber || v.kind == KindBoolean {
		v.str = raw
	}

	return v
}

// Raw returns the source text of a string, or of an inferred number or boolean
func (v Value) Raw() (string, bool) {
	switch v.kind {
	case KindString:
		return v.str, true
	case KindNumber, KindBoolean:
		return v.str, v.str != ""
	}

	return "", false
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsUndefined() bool {
	return v.kind == KindUndefined
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Str returns the string payload
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// Number returns the numeric payload
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Int returns the numeric payload truncated to an int
func (v Value) Int() (int, bool) {
	return int(v.num), v.kind == KindNumber
}

// Bool returns the boolean payload
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBoolean
}

// Array returns the sequence payload
func (v Value) Array() ([]Value, bool) {
	return v.list, v.kind == KindArray
}

// Map returns the payload of an object or key-value-pair set
func (v Value) Map() (*Map, bool) {
	return v.m, v.kind == KindObject || v.kind == KindKVP
}

// Time returns the date payload
func (v Value) Time() (time.Time, bool) {
	return v.t, v.kind == KindDate
}

// Interface converts v to plain Go values: nil, string, float64, bool, []interface{},
// map[string]interface{} or time.Time
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBoolean:
		return v.b
	case KindArray:
		out := make([]interface{}, 0, len(v.list))
		for _, item := range v.list {
			out = append(out, item.Interface())
		}
		return out
	case KindObject, KindKVP:
		out := make(map[string]interface{}, v.m.Len())
		v.m.Range(func(key string, item Value) bool {
			out[key] = item.Interface()
			return true
		})
		return out
	case KindDate:
		return v.t
	}

	return nil
}

// Clone returns a deep copy of v
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		list := make([]Value, 0, len(v.list))
		for _, item := range v.list {
			list = append(list, item.Clone())
		}
		v.list = list
	case KindObject, KindKVP:
		v.m = v.m.Clone()
	}

	return v
}

// Equal reports whether v and o hold the same variant and payload
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBoolean:
		return v.b == o.b
	case KindDate:
		return v.t.Equal(o.t)
	case KindArray:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindObject, KindKVP:
		return v.m.Equal(o.m)
	}

	return true
}

// String renders v for messages and help output
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		if v.str != "" {
			return v.str
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindDate:
		return v.t.Format(time.RFC3339)
	case KindArray:
		parts := make([]string, 0, len(v.list))
		for _, item := range v.list {
			parts = append(parts, item.String())
		}
		return "[" + strings.Join(parts, ",") + "]"
	case KindObject, KindKVP:
		parts := make([]string, 0, v.m.Len())
		v.m.Range(func(key string, item Value) bool {
			parts = append(parts, key+":"+item.String())
			return true
		})
		return "{" + strings.Join(parts, ",") + "}"
	}

	return v.kind.String()
}
