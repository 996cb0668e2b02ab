package queue

import (
	"github.com/ef-ds/deque"
)

// Q is a generic stack/queue structure that supports both stack and queue operations.
// All operations are O(1), the items live in a segmented deque.
type Q[T any] struct {
	d *deque.Deque
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{d: deque.New()}
}

// Stack Operations

// Push adds an item to the top of the stack (stack behavior)
func (q *Q[T]) Push(item T) {
	q.d.PushBack(item)
}

// Pop removes and returns the top item from the stack (stack behavior)
func (q *Q[T]) Pop() (T, bool) {
	return cast[T](q.d.PopBack())
}

// Peek returns the top item from the stack without removing it
func (q *Q[T]) Peek() (T, bool) {
	return cast[T](q.d.Back())
}

// Queue Operations

// Enqueue adds an item to the end of the queue (queue behavior)
func (q *Q[T]) Enqueue(item T) {
	q.d.PushBack(item)
}

// Dequeue removes and returns the first item from the queue (queue behavior)
func (q *Q[T]) Dequeue() (T, bool) {
	return cast[T](q.d.PopFront())
}

// Front returns the first item of the queue without removing it
func (q *Q[T]) Front() (T, bool) {
	return cast[T](q.d.Front())
}

// Utility Methods

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.d.Len()
}

// Clear removes all items
func (q *Q[T]) Clear() {
	q.d.Init()
}

func cast[T any](v interface{}, ok bool) (T, bool) {
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}
