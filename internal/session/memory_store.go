package session

import (
	"context"
	"sync"
	"time"
)

type memoryRecord struct {
	sess      Session
	expiresAt time.Time
}

func (r memoryRecord) expired() bool {
	return time.Now().After(r.expiresAt)
}

// MemoryStore implements Store using an in-process map. It exists for
// tests and local development; production uses RedisStore.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryRecord
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryRecord)}
}

// Get retrieves a session by identifier. Expired records are removed
// lazily on access.
func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	rec, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNoSession
	}
	if rec.expired() {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, ErrNoSession
	}

	// Return a copy so callers hold transient state only.
	sess := rec.sess
	return &sess, nil
}

// Set writes a session record with the given TTL.
func (m *MemoryStore) Set(ctx context.Context, sess *Session, ttl time.Duration) error {
	if sess == nil || sess.ID == "" {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[sess.ID] = memoryRecord{
		sess:      *sess,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a session record if present.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

// Exists reports whether a live record exists for the identifier.
func (m *MemoryStore) Exists(ctx context.Context, id string) (bool, error) {
	m.mu.RLock()
	rec, ok := m.sessions[id]
	m.mu.RUnlock()

	return ok && !rec.expired(), nil
}

// Touch resets the record's TTL to the full duration.
func (m *MemoryStore) Touch(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.sessions[id]
	if !ok || rec.expired() {
		delete(m.sessions, id)
		return false, nil
	}

	rec.expiresAt = time.Now().Add(ttl)
	m.sessions[id] = rec
	return true, nil
}

// Len returns the number of live records, for tests.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, rec := range m.sessions {
		if !rec.expired() {
			n++
		}
	}
	return n
}
