package authkit

import (
	"context"

	"go.uber.org/zap"

	"github.com/royatali/authkit/api"
	"github.com/royatali/authkit/jwt"
)

// Login authenticates with the service and populates the session: the
// access token goes into session state and the refresh token into the
// secure store. A failure to persist the refresh token is logged and
// swallowed — it only costs silent restore after the next restart, not the
// current session.
func (c *Client) Login(ctx context.Context, email, password string) (*jwt.ClaimSet, error) {
	resp, err := c.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, ErrNoAccessToken
	}

	c.state.SetAccessToken(resp.AccessToken)

	if resp.RefreshToken != "" {
		if err := c.tokens.Save(ctx, resp.RefreshToken); err != nil {
			c.logger.Warn("failed to store refresh token", zap.Error(err))
		}
	}

	claims, _ := jwt.Decode(resp.AccessToken)
	return claims, nil
}

// Logout invalidates the refresh token server-side best-effort and always
// tears the local session down, whatever the server said. The returned
// error reports the server call only; local state is already clear when it
// is returned. Calling Logout on an already-logged-out client is a no-op.
func (c *Client) Logout(ctx context.Context) error {
	access, _ := c.state.AccessToken()

	// Re-read the store rather than trusting anything cached: an
	// interleaved teardown may have already cleared it.
	refreshToken, ok, err := c.tokens.Load(ctx)
	if err != nil {
		c.logger.Warn("failed to load refresh token for logout", zap.Error(err))
	}

	var serverErr error
	if ok && refreshToken != "" {
		if _, serverErr = c.api.Logout(ctx, access, refreshToken); serverErr != nil {
			c.logger.Warn("server logout failed", zap.Error(serverErr))
		}
	}

	c.teardown(ctx)
	return serverErr
}

// teardown clears session state and the stored refresh credential. Every
// mutation here is safe to apply more than once: a user-initiated logout
// racing a 401-triggered one must not differ from either running alone.
func (c *Client) teardown(ctx context.Context) {
	c.state.Clear(ctx)
	if err := c.tokens.Clear(ctx); err != nil {
		c.logger.Warn("failed to clear stored refresh token", zap.Error(err))
	}
}
