package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Manager resolves inbound session identifiers to session records,
// creating records on demand and writing mutations back to the store.
//
// Known limitation: the store provides atomicity for individual get/set
// calls only. Two concurrent requests for the same session each read,
// mutate and write back the whole record, so under true concurrency the
// later write wins and the earlier mutation is lost. There is no
// compare-and-swap on the stored record.
type Manager struct {
	store     Store
	transport Transport
	cfg       Config
	log       *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithTransport overrides the default cookie transport.
func WithTransport(t Transport) Option {
	if t == nil {
		panic("session: WithTransport: nil transport")
	}
	return func(m *Manager) { m.transport = t }
}

// WithLogger supplies a logger. If nil, logging is discarded.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// NewManager creates a session manager backed by the given store.
func NewManager(store Store, cfg Config, opts ...Option) *Manager {
	if store == nil {
		panic("session: store is required")
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "session_id"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 4 * time.Hour
	}

	m := &Manager{
		store: store,
		cfg:   cfg,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.transport == nil {
		m.transport = NewCookieTransport(cfg.CookieName, cfg.SecureCookies)
	}
	if m.log == nil {
		m.log = slog.New(slog.DiscardHandler)
	}
	return m
}

// TTL returns the configured session time-to-live.
func (m *Manager) TTL() time.Duration {
	return m.cfg.TTL
}

// EnsureSession resolves the request's session, creating a new one when
// the request carries no identifier or the identifier does not resolve
// to a live record. Resolving an existing record refreshes its expiry
// to the full TTL. The created flag reports which path was taken; the
// session cookie is set only on creation.
//
// Identifiers supplied by the caller are never trusted on their own:
// the store lookup is what establishes the session.
func (m *Manager) EnsureSession(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, bool, error) {
	if id := m.transport.GetID(r); id != "" {
		sess, err := m.store.Get(ctx, id)
		switch {
		case err == nil:
			if _, err := m.store.Touch(ctx, id, m.cfg.TTL); err != nil {
				return nil, false, err
			}
			m.log.DebugContext(ctx, "retrieved existing session", "session_id", sess.ID)
			return sess, false, nil
		case errors.Is(err, ErrNoSession):
			// Dead identifier, fall through and create.
		default:
			// Corrupt record or store failure, never silently recovered.
			return nil, false, err
		}
	}

	sess := New()
	if err := m.store.Set(ctx, sess, m.cfg.TTL); err != nil {
		return nil, false, err
	}
	m.transport.SetID(w, sess.ID, m.cfg.TTL)
	m.log.InfoContext(ctx, "created new session", "session_id", sess.ID)
	return sess, true, nil
}

// RequireSession resolves the request's session and fails with
// ErrNoSession when the request carries no identifier or the record is
// gone. Used by every endpoint that mutates balance, so direct API
// calls cannot conjure up a session. Resolving refreshes the expiry.
func (m *Manager) RequireSession(ctx context.Context, r *http.Request) (*Session, error) {
	id := m.transport.GetID(r)
	if id == "" {
		return nil, ErrNoSession
	}

	sess, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := m.store.Touch(ctx, id, m.cfg.TTL); err != nil {
		return nil, err
	}
	m.log.DebugContext(ctx, "retrieved existing session", "session_id", sess.ID)
	return sess, nil
}

// Persist writes the session back with the full TTL, renewing its life.
// Must be called after every mutation, before the response is sent.
func (m *Manager) Persist(ctx context.Context, sess *Session) error {
	if err := m.store.Set(ctx, sess, m.cfg.TTL); err != nil {
		return err
	}
	m.log.DebugContext(ctx, "updated session", "session_id", sess.ID)
	return nil
}

// Destroy deletes the request's session record if one exists and clears
// the cookie. Absence of a record is not an error.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if id := m.transport.GetID(r); id != "" {
		ok, err := m.store.Exists(ctx, id)
		if err != nil {
			return err
		}
		if ok {
			if err := m.store.Delete(ctx, id); err != nil {
				return err
			}
			m.log.InfoContext(ctx, "session deleted", "session_id", id)
		}
	}
	m.transport.ClearID(w)
	return nil
}
