package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Endpoint paths, relative to the configured base URL.
const (
	pathSignup         = "/auth/signup"
	pathLogin          = "/auth/signin"
	pathRefreshToken   = "/auth/refresh-token"
	pathLogout         = "/auth/logout"
	pathForgotPassword = "/auth/forgot-password"
	pathResetPassword  = "/auth/reset-password"
	pathUsers          = "/users"
)

// maxResponseBody caps how much of a response is read; the auth service
// never returns bodies anywhere near this size.
const maxResponseBody = 1 << 20

// Client defines a public type used by authkit APIs.
//
// Client instances are intended to be configured during initialization and
// then treated as immutable, except for the two hooks below which the root
// package wires in before first use:
//
//   - TokenFunc supplies the current access token for authenticated calls.
//   - RefreshFunc is invoked at most once per call after a 401, and its
//     non-empty result triggers a single retry.
type Client struct {
	base     string
	http     *http.Client
	deviceID string
	logger   *zap.Logger

	TokenFunc   func() (string, bool)
	RefreshFunc func(ctx context.Context) (string, error)
}

// NewClient returns a gateway for the service at baseURL. httpClient may be
// nil for a default with a 15s timeout; logger may be nil.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		base:     baseURL,
		http:     httpClient,
		deviceID: uuid.NewString(),
		logger:   logger,
	}, nil
}

// DeviceID returns the per-process device identifier sent with every
// request.
func (c *Client) DeviceID() string {
	return c.deviceID
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*MessageResponse, error) {
	out := &MessageResponse{}
	if err := c.do(ctx, http.MethodPost, pathSignup, req, out, ""); err != nil {
		return nil, err
	}
	return out, nil
}

// Login exchanges credentials for an access/refresh token pair.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	out := &LoginResponse{}
	if err := c.do(ctx, http.MethodPost, pathLogin, req, out, ""); err != nil {
		return nil, err
	}
	return out, nil
}

// RefreshToken exchanges the long-lived credential for a new access token.
// It is a public endpoint: no bearer header and no retry-after-refresh.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	out := &RefreshResponse{}
	if err := c.do(ctx, http.MethodPost, pathRefreshToken, RefreshRequest{RefreshToken: refreshToken}, out, ""); err != nil {
		return nil, err
	}
	return out, nil
}

// Logout invalidates the refresh token server-side. The access token is
// passed explicitly because logout may run while session state is already
// being torn down.
func (c *Client) Logout(ctx context.Context, accessToken, refreshToken string) (*MessageResponse, error) {
	out := &MessageResponse{}
	if err := c.do(ctx, http.MethodPost, pathLogout, RefreshRequest{RefreshToken: refreshToken}, out, accessToken); err != nil {
		return nil, err
	}
	return out, nil
}

// ForgotPassword starts the password recovery flow.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*ForgotPasswordResponse, error) {
	out := &ForgotPasswordResponse{}
	if err := c.do(ctx, http.MethodPost, pathForgotPassword, ForgotPasswordRequest{Email: email}, out, ""); err != nil {
		return nil, err
	}
	return out, nil
}

// ResetPassword completes the password recovery flow.
func (c *Client) ResetPassword(ctx context.Context, newPassword, token string) (*MessageResponse, error) {
	out := &MessageResponse{}
	if err := c.do(ctx, http.MethodPost, pathResetPassword, ResetPasswordRequest{NewPassword: newPassword, Token: token}, out, ""); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUser fetches a user record. Authenticated.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	out := &User{}
	if err := c.doAuthed(ctx, http.MethodGet, pathUsers+"/"+url.PathEscape(id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateUser applies a partial update to a user record. Authenticated.
func (c *Client) UpdateUser(ctx context.Context, id string, update UserUpdate) (*User, error) {
	out := &User{}
	if err := c.doAuthed(ctx, http.MethodPut, pathUsers+"/"+url.PathEscape(id), update, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteUser removes a user record. Authenticated.
func (c *Client) DeleteUser(ctx context.Context, id string) (*MessageResponse, error) {
	out := &MessageResponse{}
	if err := c.doAuthed(ctx, http.MethodDelete, pathUsers+"/"+url.PathEscape(id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) doAuthed(ctx context.Context, method, path string, body, out any) error {
	var token string
	if c.TokenFunc != nil {
		token, _ = c.TokenFunc()
	}

	err := c.do(ctx, method, path, body, out, token)
	if !IsUnauthorized(err) || c.RefreshFunc == nil {
		return err
	}

	fresh, refreshErr := c.RefreshFunc(ctx)
	if refreshErr != nil || fresh == "" {
		return err
	}

	c.logger.Debug("retrying request with refreshed access token",
		zap.String("method", method), zap.String("path", path))
	return c.do(ctx, method, path, body, out, fresh)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, bearer string) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Device-Id", c.deviceID)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(raw, resp.StatusCode),
		}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// serverMessage extracts the service's message field from an error body,
// falling back to the standard status text.
func serverMessage(raw []byte, status int) string {
	var body MessageResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return http.StatusText(status)
}
