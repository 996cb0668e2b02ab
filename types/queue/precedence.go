package queue

import (
	"sort"

	"github.com/napalu/goinput/types/orderedmap"
)

// Entry is an item drained from a Precedence queue
type Entry[K comparable, V any] struct {
	Precedence int
	Key        K
	Value      V
}

// Precedence holds items in buckets keyed by an integer precedence. Buckets drain in
// ascending order, items inside a bucket in the order they were pushed.
type Precedence[K comparable, V any] struct {
	buckets map[int]*orderedmap.OrderedMap[K, V]
	count   int
}

// NewPrecedence creates an empty Precedence queue
func NewPrecedence[K comparable, V any]() *Precedence[K, V] {
	return &Precedence[K, V]{
		buckets: map[int]*orderedmap.OrderedMap[K, V]{},
	}
}

// Push stores value under key in the bucket of the given precedence. Pushing a key
// again into the same bucket replaces its value and keeps its position.
func (p *Precedence[K, V]) Push(precedence int, key K, value V) {
	bucket, ok := p.buckets[precedence]
	if !ok {
		bucket = orderedmap.NewOrderedMap[K, V]()
		p.buckets[precedence] = bucket
	}
	if !bucket.Has(key) {
		p.count++
	}
	bucket.Set(key, value)
}

// Len returns the number of queued items
func (p *Precedence[K, V]) Len() int {
	return p.count
}

// Levels returns the precedences in use, ascending
func (p *Precedence[K, V]) Levels() []int {
	levels := make([]int, 0, len(p.buckets))
	for level := range p.buckets {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	return levels
}

// Entries returns every queued item in drain order without removing them
func (p *Precedence[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, p.count)
	for _, level := range p.Levels() {
		for it := p.buckets[level].Front(); it != nil; it = it.Next() {
			entries = append(entries, Entry[K, V]{Precedence: level, Key: it.Key(), Value: it.Value()})
		}
	}

	return entries
}

// Drain returns every queued item in drain order and empties the queue
func (p *Precedence[K, V]) Drain() []Entry[K, V] {
	entries := p.Entries()
	p.Clear()

	return entries
}

// Clear removes all items
func (p *Precedence[K, V]) Clear() {
	p.buckets = map[int]*orderedmap.OrderedMap[K, V]{}
	p.count = 0
}
