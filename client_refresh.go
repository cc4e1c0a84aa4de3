package authkit

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/royatali/authkit/api"
)

// Refresh exchanges the stored long-lived credential for a fresh access
// token and merges it into session state, leaving the persist flag as it
// was.
//
// Outcomes:
//
//   - No stored credential (or a store read failure, which is logged):
//     ("", nil). This is a recoverable "no session" state, not a fault.
//   - Server accepts: the new token is returned and set in session state.
//   - Server rejects with 401: the credential is dead, so the full logout
//     teardown runs — session state and stored credential are cleared —
//     and Refresh still returns ("", nil).
//   - Any other failure (network unreachable, 5xx): the stored credential
//     stays intact and the error is returned; the caller may retry later.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	stored, ok, err := c.tokens.Load(ctx)
	if err != nil {
		c.logger.Warn("failed to load refresh token", zap.Error(err))
		return "", nil
	}
	if !ok {
		return "", nil
	}

	stored = normalizeStoredToken(stored)
	if stored == "" {
		return "", nil
	}

	resp, err := c.api.RefreshToken(ctx, stored)
	if err != nil {
		if api.IsUnauthorized(err) {
			c.logger.Info("refresh token rejected, tearing down session")
			c.teardown(ctx)
			return "", nil
		}
		return "", err
	}

	if resp.AccessToken == "" {
		return "", ErrNoAccessToken
	}

	c.state.SetAccessToken(resp.AccessToken)
	return resp.AccessToken, nil
}

// normalizeStoredToken strips whitespace and surrounding quote characters.
// Values written by this store never need it, but stores migrated from the
// mobile clients can hold a JSON-double-encoded token.
func normalizeStoredToken(token string) string {
	token = strings.TrimSpace(token)
	for len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"' {
		token = strings.TrimSpace(token[1 : len(token)-1])
	}
	return token
}
