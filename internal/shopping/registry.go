package shopping

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for unknown session IDs.
var ErrSessionNotFound = errors.New("session not found")

// Registry maps session IDs to Sessions for multi-request front ends. Each
// Session keeps its own lock; the registry lock only guards the map.
type Registry struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	newSession func() *Session
}

// NewRegistry returns a registry that builds sessions with factory.
func NewRegistry(factory func() *Session) *Registry {
	return &Registry{
		sessions:   make(map[string]*Session),
		newSession: factory,
	}
}

// Create starts a new session and returns its ID.
func (r *Registry) Create() (string, *Session) {
	s := r.newSession()
	id := uuid.New().String()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = s
	return id, s
}

// Get returns the session with id.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Remove ends the session with id.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
