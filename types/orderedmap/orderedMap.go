// Package orderedmap provides a generic map which remembers insertion order.
// The registry keeps commands, global flags and per-command flags in one so that
// help output and global scanning follow declaration order.
package orderedmap

import (
	"container/list"
)

// OrderedMap definition data is stored in insertion order
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	keys  *list.List
}

type keyValue[K comparable, V any] struct {
	key   K
	value V
}

// Iterator walks an OrderedMap from oldest to newest entry
type Iterator[K comparable, V any] struct {
	e *list.Element
}

// NewOrderedMap creates a new OrderedMap of type K
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		keys:  list.New(),
	}
}

// Set will store a key-value pair. If the key already exists,
// its value is replaced and it keeps its position
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if e, exists := o.store[key]; exists {
		e.Value = keyValue[K, V]{key: key, value: val}
		return
	}

	o.store[key] = o.keys.PushBack(keyValue[K, V]{key: key, value: val})
}

// Get will return the value associated with the key.
// If the key doesn't exist, the second return value will be false.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, exists := o.store[key]
	if !exists {
		return *new(V), false
	}

	return e.Value.(keyValue[K, V]).value, true
}

// Has reports whether key is stored
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.store[key]
	return exists
}

// Delete will remove the key and its associated value.
func (o *OrderedMap[K, V]) Delete(key K) {
	e, exists := o.store[key]
	if !exists {
		return
	}

	o.keys.Remove(e)
	delete(o.store, key)
}

// Count returns the count of keys in OrderedMap
func (o *OrderedMap[K, V]) Count() int {
	if o == nil {
		return 0
	}
	return o.keys.Len()
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.Count())
	for it := o.Front(); it != nil; it = it.Next() {
		keys = append(keys, it.Key())
	}

	return keys
}

// Clear removes all entries
func (o *OrderedMap[K, V]) Clear() {
	o.store = map[K]*list.Element{}
	o.keys.Init()
}

// Front returns an iterator positioned on the oldest entry or nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	if o.Count() == 0 {
		return nil
	}

	return &Iterator[K, V]{e: o.keys.Front()}
}

// Next advances the iterator and returns nil once it moves past the newest entry
func (it *Iterator[K, V]) Next() *Iterator[K, V] {
	it.e = it.e.Next()
	if it.e == nil {
		return nil
	}

	return it
}

// Key returns the key of the current entry
func (it *Iterator[K, V]) Key() K {
	return it.e.Value.(keyValue[K, V]).key
}

// Value returns the value of the current entry
func (it *Iterator[K, V]) Value() V {
	return it.e.Value.(keyValue[K, V]).value
}
