package goinput

import (
	"sync"

	"github.com/google/uuid"
)

// Session is the state of one invocation. Callbacks share it through Call.Session, e.g.
// a dry-run global flag recording its decision for the flags running after it.
type Session struct {
	mu     sync.RWMutex
	id     string
	values map[string]interface{}
}

// NewSession creates a session with a fresh invocation id
func NewSession() *Session {
	return &Session{
		id:     uuid.NewString(),
		values: map[string]interface{}{},
	}
}

// ID returns the invocation id
func (s *Session) ID() string {
	if s == nil {
		return ""
	}

	return s.id
}

// Set stores value under key
func (s *Session) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get returns the value stored under key
func (s *Session) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]

	return v, ok
}

// Has reports whether key was set
func (s *Session) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}
