package queue

import (
	"testing"
)

func TestStackOperations(t *testing.T) {
	q := New[int]()

	q.Push(1)
	q.Push(2)
	q.Push(3)

	item, ok := q.Pop()
	if !ok || item != 3 {
		t.Errorf("expected to pop 3 but got %d", item)
	}

	item, ok = q.Peek()
	if !ok || item != 2 {
		t.Errorf("expected Peek to return 2 but got %d", item)
	}

	item, ok = q.Pop()
	if !ok || item != 2 {
		t.Errorf("expected to pop 2 but got %d", item)
	}

	item, ok = q.Pop()
	if !ok || item != 1 {
		t.Errorf("expected to pop 1 but got %d", item)
	}

	_, ok = q.Pop()
	if ok {
		t.Error("expected Pop on empty queue to return false")
	}
}

func TestQueueOperations(t *testing.T) {
	q := New[string]()

	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")

	if front, ok := q.Front(); !ok || front != "a" {
		t.Errorf("expected Front to return a but got %q", front)
	}

	for _, want := range []string{"a", "b", "c"} {
		item, ok := q.Dequeue()
		if !ok || item != want {
			t.Errorf("expected to dequeue %q but got %q", want, item)
		}
	}

	if _, ok := q.Dequeue(); ok {
		t.Error("expected Dequeue on empty queue to return false")
	}
}

func TestClear(t *testing.T) {
	q := New[int]()
	for i := range 10 {
		q.Enqueue(i)
	}
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("expected empty queue after Clear, got %d items", q.Len())
	}
	q.Enqueue(42)
	if item, ok := q.Dequeue(); !ok || item != 42 {
		t.Errorf("expected 42 after Clear, got %d", item)
	}
}
