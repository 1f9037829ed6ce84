package session

import (
	"context"
	"time"
)

// Store defines the key-value persistence interface for sessions. The
// Manager depends on the store only through these operations; individual
// calls are assumed atomic, multi-step transactions are not.
type Store interface {
	// Get retrieves a session by identifier. Returns ErrNoSession when
	// the record does not exist and ErrCorruptRecord when it cannot be
	// deserialized.
	Get(ctx context.Context, id string) (*Session, error)

	// Set writes a session record with the given time-to-live,
	// overwriting any existing record for the same identifier.
	Set(ctx context.Context, sess *Session, ttl time.Duration) error

	// Delete removes a session record. Absence is not an error.
	Delete(ctx context.Context, id string) error

	// Exists reports whether a live record exists for the identifier.
	Exists(ctx context.Context, id string) (bool, error)

	// Touch resets the record's time-to-live to the full duration.
	// Returns false when the record is already gone.
	Touch(ctx context.Context, id string, ttl time.Duration) (bool, error)
}
