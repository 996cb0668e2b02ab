package thread

import "sync"

// Signal identifies an event raised by the pool
type Signal int

const (
	QueueEmpty  Signal = iota // every dispatched worker has reported back
	ThreadDone                // one worker reported a result
	ThreadError               // one worker failed
)

func (s Signal) String() string {
	switch s {
	case QueueEmpty:
		return "queue-empty"
	case ThreadDone:
		return "thread-done"
	case ThreadError:
		return "thread-error"
	}
	return "unknown"
}

// Event is delivered to listeners
type Event struct {
	Signal   Signal
	ThreadID int
	Flag     string
	Err      error
}

// Listener receives events it subscribed to
type Listener func(Event)

type subscription struct {
	id   int
	once bool
	fn   Listener
}

// Signals is a small synchronous event emitter. Listeners run on the emitting goroutine
// in subscription order.
type Signals struct {
	mu        sync.Mutex
	next      int
	listeners map[Signal][]subscription
}

// NewSignals creates an emitter without listeners
func NewSignals() *Signals {
	return &Signals{listeners: map[Signal][]subscription{}}
}

// On subscribes fn to sig and returns a function removing the subscription
func (s *Signals) On(sig Signal, fn Listener) func() {
	return s.subscribe(sig, fn, false)
}

// Once subscribes fn to the next occurrence of sig only
func (s *Signals) Once(sig Signal, fn Listener) func() {
	return s.subscribe(sig, fn, true)
}

func (s *Signals) subscribe(sig Signal, fn Listener, once bool) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	id := s.next
	s.listeners[sig] = append(s.listeners[sig], subscription{id: id, once: once, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.remove(sig, id)
	}
}

func (s *Signals) remove(sig Signal, id int) {
	subs := s.listeners[sig]
	for i, sub := range subs {
		if sub.id == id {
			s.listeners[sig] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Emit delivers ev to the listeners of ev.Signal
func (s *Signals) Emit(ev Event) {
	s.mu.Lock()
	subs := append([]subscription(nil), s.listeners[ev.Signal]...)
	for _, sub := range subs {
		if sub.once {
			s.remove(ev.Signal, sub.id)
		}
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(ev)
	}
}

// Reset drops every listener
func (s *Signals) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = map[Signal][]subscription{}
}
