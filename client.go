package authkit

import (
	"context"

	"go.uber.org/zap"

	"github.com/royatali/authkit/api"
	"github.com/royatali/authkit/jwt"
	"github.com/royatali/authkit/session"
	"github.com/royatali/authkit/store"
)

// Client defines a public type used by authkit APIs.
//
// Client instances are intended to be built once through [Builder.Build] at
// process start and then treated as immutable; all session mutation happens
// through the lifecycle operations. Methods are safe for concurrent use.
type Client struct {
	config Config
	api    *api.Client
	tokens store.TokenStore
	prefs  *store.Prefs
	state  *session.State
	logger *zap.Logger
}

// Session returns the shared session state for subscribing and reading.
func (c *Client) Session() *session.State {
	return c.state
}

// Gateway returns the underlying API gateway for callers that need raw
// endpoint access with the same bearer and retry policy.
func (c *Client) Gateway() *api.Client {
	return c.api
}

// Prefs returns the general device preference store, for non-session
// settings such as [store.KeyDarkMode]. It is nil when the client was built
// without a data directory or an explicit store.
func (c *Client) Prefs() *store.Prefs {
	return c.prefs
}

// Claims decodes the current access token on demand. It reports no claims
// when the session is unauthenticated or the token cannot be decoded; the
// result must not be cached across token changes.
func (c *Client) Claims() (*jwt.ClaimSet, bool) {
	token, ok := c.state.AccessToken()
	if !ok {
		return nil, false
	}
	return jwt.Decode(token)
}

// Signup registers a new account. It does not log the account in.
func (c *Client) Signup(ctx context.Context, username, email, password string) (string, error) {
	resp, err := c.api.Signup(ctx, api.SignupRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ForgotPassword starts password recovery for email. The response carries
// the server's acknowledgement message and the recovery token that
// [Client.ResetPassword] takes to complete the flow.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*api.ForgotPasswordResponse, error) {
	return c.api.ForgotPassword(ctx, email)
}

// ResetPassword completes password recovery with the token the recovery
// flow issued.
func (c *Client) ResetPassword(ctx context.Context, newPassword, token string) (string, error) {
	resp, err := c.api.ResetPassword(ctx, newPassword, token)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// GetUser fetches a user record over the authenticated gateway.
func (c *Client) GetUser(ctx context.Context, id string) (*api.User, error) {
	return c.api.GetUser(ctx, id)
}

// UpdateUser applies a partial update to a user record over the
// authenticated gateway.
func (c *Client) UpdateUser(ctx context.Context, id string, update api.UserUpdate) (*api.User, error) {
	return c.api.UpdateUser(ctx, id, update)
}

// DeleteUser removes a user record over the authenticated gateway.
func (c *Client) DeleteUser(ctx context.Context, id string) (string, error) {
	resp, err := c.api.DeleteUser(ctx, id)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}
