package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Role defines a public type used by authkit APIs.
//
// Roles form a small closed enumeration assigned by the server and embedded
// in the access token's claim set. Unknown role strings decode without error
// and simply never match any declared allow-list.
type Role string

const (
	// RoleAdmin is an exported constant or variable used by the session client.
	RoleAdmin Role = "ROLE_ADMIN"
	// RoleUser is an exported constant or variable used by the session client.
	RoleUser Role = "ROLE_USER"
	// RoleEditor is an exported constant or variable used by the session client.
	RoleEditor Role = "ROLE_EDITOR"
)

// ClaimSet defines a public type used by authkit APIs.
//
// ClaimSet instances are derived on demand from the current access token and
// must not be cached across token changes.
type ClaimSet struct {
	SubjectID string `json:"_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Roles     []Role `json:"roles"`
	jwt.RegisteredClaims
}

// HasAny reports whether the claim set carries at least one of the given
// roles. An empty allowed slice never matches.
func (c *ClaimSet) HasAny(allowed ...Role) bool {
	if c == nil {
		return false
	}
	for _, have := range c.Roles {
		for _, want := range allowed {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Decode parses an access token without verifying its signature and returns
// the embedded claim set.
//
// Decode never returns an error: an empty token, a structurally invalid
// token, or any parser failure yields (nil, false). Ordering of roles inside
// the returned claim set is whatever the server emitted; callers must treat
// it as a set.
func Decode(token string) (*ClaimSet, bool) {
	if token == "" {
		return nil, false
	}

	claims := &ClaimSet{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, false
	}

	return claims, true
}
