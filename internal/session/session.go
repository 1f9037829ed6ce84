package session

import "github.com/google/uuid"

// Session is one shopper's server-side record. The application only ever
// holds a transient copy during a single request; the store owns the
// persisted state, and every mutation must be written back via the
// Manager before the response is sent.
//
// The JSON tags define the persisted record format: the store value for
// key "session:<id>" is this struct serialized as JSON.
type Session struct {
	ID            string  `json:"session_id"`
	Balance       float64 `json:"balance"`
	BonusReceived bool    `json:"bonus_received"`
}

// New creates a fresh session with a random identifier, zero balance and
// the bonus not yet claimed. The identifier is a v4 UUID (122 random
// bits), which makes collisions cryptographically negligible.
func New() *Session {
	return &Session{ID: uuid.NewString()}
}
