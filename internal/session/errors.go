package session

import "errors"

var (
	// ErrNoSession indicates the request carried no identifier, or the
	// identifier does not resolve to a live record in the store.
	ErrNoSession = errors.New("session.not_found")

	// ErrCorruptRecord indicates the store returned a record that could
	// not be deserialized. Treated as a store-level failure, never
	// silently recovered from.
	ErrCorruptRecord = errors.New("session.corrupt_record")

	// ErrStoreFailure indicates the underlying key-value store is
	// unreachable or misbehaving.
	ErrStoreFailure = errors.New("session.store_failure")

	// ErrInvalidSession indicates a nil session or one without an ID was
	// handed to the store.
	ErrInvalidSession = errors.New("session.invalid")
)
