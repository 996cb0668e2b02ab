package types

import (
	orderedmap "github.com/wk8/go-ordered-map"
)

// Map is an insertion-ordered mapping from string keys to Values. It backs JSON objects,
// key-value-pair sets and the sections of a parsed argument set.
type Map struct {
	om *orderedmap.OrderedMap
}

// NewMap creates an empty Map
func NewMap() *Map {
	return &Map{om: orderedmap.New()}
}

// MapOf creates a Map from alternating key/value pairs kept in the given order
func MapOf(pairs ...KeyValue[string, Value]) *Map {
	m := NewMap()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}

	return m
}

// Set stores value under key. Existing keys keep their position.
func (m *Map) Set(key string, value Value) {
	m.om.Set(key, value)
}

// Get returns the value stored under key
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.om.Get(key)
	if !ok {
		return Value{}, false
	}

	return v.(Value), true
}

// Has reports whether key is present
func (m *Map) Has(key string) bool {
	_, ok := m.om.Get(key)
	return ok
}

// Delete removes key
func (m *Map) Delete(key string) {
	m.om.Delete(key)
}

// Len returns the number of keys
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.om.Len()
}

// Keys returns the keys in insertion order
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.Len())
	m.Range(func(key string, _ Value) bool {
		keys = append(keys, key)
		return true
	})

	return keys
}

// Range calls fn for each pair in insertion order until fn returns false
func (m *Map) Range(fn func(key string, value Value) bool) {
	if m == nil {
		return
	}
	for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key.(string), pair.Value.(Value)) {
			return
		}
	}
}

// Clone returns a deep copy of m
func (m *Map) Clone() *Map {
	c := NewMap()
	m.Range(func(key string, value Value) bool {
		c.Set(key, value.Clone())
		return true
	})

	return c
}

// Equal reports whether m and o hold equal values under the same keys in the same order
func (m *Map) Equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}

	ok := true
	other := o.Keys()
	i := 0
	m.Range(func(key string, value Value) bool {
		if other[i] != key {
			ok = false
			return false
		}
		ov, _ := o.Get(key)
		if !value.Equal(ov) {
			ok = false
			return false
		}
		i++
		return true
	})

	return ok
}

// Interface converts m to a plain map
func (m *Map) Interface() map[string]interface{} {
	out := make(map[string]interface{}, m.Len())
	m.Range(func(key string, value Value) bool {
		out[key] = value.Interface()
		return true
	})

	return out
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// Pair is shorthand for building a KeyValue[string, Value]
func Pair(key string, value Value) KeyValue[string, Value] {
	return KeyValue[string, Value]{Key: key, Value: value}
}
