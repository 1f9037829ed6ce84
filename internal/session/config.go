package session

import "time"

// Config holds session configuration.
type Config struct {
	// CookieName is the name of the session cookie.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session_id"`

	// TTL is the session time-to-live. Every successful read or write
	// resets the record's expiry to this duration (sliding expiration).
	TTL time.Duration `env:"SESSION_TTL" envDefault:"4h"`

	// SecureCookies enables the Secure flag on the session cookie.
	// Off by default: the storefront is served over plain HTTP.
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		CookieName:    "session_id",
		TTL:           4 * time.Hour,
		SecureCookies: false,
	}
}
