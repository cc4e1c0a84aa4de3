package store

import "context"

// Durable preference keys shared with the original mobile clients.
const (
	// KeyPersist is an exported constant or variable used by the session client.
	KeyPersist = "persist"
	// KeyDarkMode is an exported constant or variable used by the session client.
	KeyDarkMode = "isDarkMode"
)

// TokenStore defines a public type used by authkit APIs.
//
// TokenStore holds at most one long-lived refresh credential. Save overwrites
// any previous value, Load reports absence through its second return rather
// than an error, and Clear is idempotent. Implementations must be safe for
// concurrent use from a single process.
type TokenStore interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (token string, ok bool, err error)
	Clear(ctx context.Context) error
}
