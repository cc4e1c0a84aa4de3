package guard

import (
	"github.com/royatali/authkit/jwt"
	"github.com/royatali/authkit/session"
)

// Decision defines a public type used by authkit APIs.
type Decision uint8

const (
	// Admit is an exported constant or variable used by the session client.
	Admit Decision = iota
	// RedirectLogin is an exported constant or variable used by the session client.
	RedirectLogin
	// RedirectForbidden is an exported constant or variable used by the session client.
	RedirectForbidden
)

// String returns the decision name for logs.
func (d Decision) String() string {
	switch d {
	case Admit:
		return "admit"
	case RedirectLogin:
		return "redirect-login"
	case RedirectForbidden:
		return "redirect-forbidden"
	default:
		return "unknown"
	}
}

// Routes defines a public type used by authkit APIs.
//
// Routes maps a destination name to the roles allowed to enter it. A
// destination missing from the table, or mapped to an empty list, is open to
// any authenticated session. Routes instances are intended to be configured
// during initialization and then treated as immutable.
type Routes map[string][]jwt.Role

// Evaluate decides whether the session behind snap may enter destination.
//
// No access token redirects to login regardless of the destination's role
// list. With a token present, a destination with no declared restriction
// admits; otherwise the token's decoded roles must intersect the allowed
// set, and a token whose claims cannot be decoded carries no roles.
func (r Routes) Evaluate(snap session.Snapshot, destination string) Decision {
	if snap.AccessToken == "" {
		return RedirectLogin
	}

	allowed := r[destination]
	if len(allowed) == 0 {
		return Admit
	}

	claims, _ := jwt.Decode(snap.AccessToken)
	if claims.HasAny(allowed...) {
		return Admit
	}
	return RedirectForbidden
}
