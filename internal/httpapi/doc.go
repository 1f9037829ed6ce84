// Package httpapi exposes the storefront over HTTP: the index page,
// catalog and session endpoints, the one-time bonus and checkout
// operations, and logout.
//
// Routing is built on chi. Handlers hold no state of their own; they
// resolve the session through session.Manager, delegate mutations to
// shop.Service and map domain errors to HTTP statuses with structured
// JSON error bodies.
package httpapi
