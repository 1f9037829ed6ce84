package session

import (
	"net/http"
	"time"
)

// Transport defines how session identifiers travel between client and
// server.
type Transport interface {
	// GetID extracts the session identifier from the request. An empty
	// string means the request carries none.
	GetID(r *http.Request) string

	// SetID sends the session identifier in the response.
	SetID(w http.ResponseWriter, id string, ttl time.Duration)

	// ClearID removes the session identifier from the client.
	ClearID(w http.ResponseWriter)
}

// CookieTransport implements Transport using a plain cookie. The value
// is the raw session identifier: the storefront frontend reads it from
// document.cookie, so it is deliberately not HttpOnly and not encrypted.
// The identifier alone grants nothing — every protected endpoint
// verifies it against the store.
type CookieTransport struct {
	name   string
	secure bool
}

// NewCookieTransport creates a cookie-based transport.
func NewCookieTransport(name string, secure bool) *CookieTransport {
	return &CookieTransport{name: name, secure: secure}
}

// GetID extracts the session identifier from the cookie.
func (t *CookieTransport) GetID(r *http.Request) string {
	c, err := r.Cookie(t.name)
	if err != nil {
		return ""
	}
	return c.Value
}

// SetID stores the session identifier in a cookie.
func (t *CookieTransport) SetID(w http.ResponseWriter, id string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    id,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: false,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode, // CSRF protection
	})
}

// ClearID expires the session cookie.
func (t *CookieTransport) ClearID(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: false,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
