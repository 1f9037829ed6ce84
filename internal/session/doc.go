// Package session manages anonymous, cookie-bound shopper sessions with
// sliding expiration.
//
// A Session carries a shopper's balance and one-time bonus flag. Records
// live in an external key-value store behind the Store interface, keyed
// by "session:<id>" with a TTL that is reset on every successful read or
// write. RedisStore is the production implementation; MemoryStore backs
// tests and local development.
//
// The Manager is the only entry point request handlers use:
//
//	mgr := session.NewManager(session.NewRedisStore(client), cfg)
//
//	// Public landing endpoints: resolve or create.
//	sess, created, err := mgr.EnsureSession(ctx, w, r)
//
//	// Balance-mutating endpoints: existing session required.
//	sess, err := mgr.RequireSession(ctx, r)
//	sess.Balance -= total
//	err = mgr.Persist(ctx, sess)
//
// The session identifier travels in a plain cookie readable by the
// storefront frontend; possession of an identifier grants nothing
// unless the store holds a live record for it.
package session
