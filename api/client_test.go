package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, srv.Client(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return c
}

func TestLoginDecodesTokenPair(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/signin" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request failed: %v", err)
		}
		if req.Email != "alice@example.com" {
			t.Errorf("email = %q", req.Email)
		}
		_ = json.NewEncoder(w).Encode(LoginResponse{AccessToken: "A", RefreshToken: "R"})
	}))

	resp, err := c.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.AccessToken != "A" || resp.RefreshToken != "R" {
		t.Fatalf("response = %+v", resp)
	}
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_ = json.NewEncoder(w).Encode(MessageResponse{Message: "ok"})
	}))

	if _, err := c.Signup(context.Background(), SignupRequest{Username: "a", Email: "a@b.c", Password: "p"}); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	if got.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q", got.Get("Content-Type"))
	}
	if got.Get("X-Device-Id") != c.DeviceID() {
		t.Errorf("X-Device-Id = %q, want %q", got.Get("X-Device-Id"), c.DeviceID())
	}
	if got.Get("X-Request-Id") == "" {
		t.Error("X-Request-Id missing")
	}
	if got.Get("Authorization") != "" {
		t.Error("public endpoint carried an Authorization header")
	}
}

func TestLogoutSendsBearerAndRefreshToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer ACCESS" {
			t.Errorf("Authorization = %q", auth)
		}
		var req RefreshRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.RefreshToken != "REFRESH" {
			t.Errorf("refreshToken = %q", req.RefreshToken)
		}
		_ = json.NewEncoder(w).Encode(MessageResponse{Message: "logged out"})
	}))

	resp, err := c.Logout(context.Background(), "ACCESS", "REFRESH")
	if err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if resp.Message != "logged out" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestServerErrorCarriesMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(MessageResponse{Message: "email already taken"})
	}))

	_, err := c.Signup(context.Background(), SignupRequest{})
	if !IsStatus(err, http.StatusConflict) {
		t.Fatalf("err = %v, want 409 *Error", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Message != "email already taken" {
		t.Fatalf("message not propagated: %v", err)
	}
	if IsNetwork(err) {
		t.Fatal("server response classified as network failure")
	}
}

func TestServerErrorFallbackMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))

	_, err := c.ForgotPassword(context.Background(), "a@b.c")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("fallback message = %q", apiErr.Message)
	}
}

func TestNetworkFailureClassification(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close() // nothing listening anymore

	c, err := NewClient(base, nil, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = c.Login(context.Background(), LoginRequest{})
	if err == nil {
		t.Fatal("Login against closed server succeeded")
	}
	if !IsNetwork(err) {
		t.Fatalf("err = %v, want network classification", err)
	}
	if IsUnauthorized(err) {
		t.Fatal("network failure classified as credential rejection")
	}
}

func TestAuthedRetryAfterRefresh(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Header.Get("Authorization") != "Bearer FRESH" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(User{ID: "u1", Username: "alice"})
	}))

	c.TokenFunc = func() (string, bool) { return "STALE", true }
	var refreshed atomic.Int32
	c.RefreshFunc = func(ctx context.Context) (string, error) {
		refreshed.Add(1)
		return "FRESH", nil
	}

	user, err := c.GetUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("user = %+v", user)
	}
	if refreshed.Load() != 1 {
		t.Fatalf("refresh invoked %d times, want 1", refreshed.Load())
	}
	if calls.Load() != 2 {
		t.Fatalf("server saw %d calls, want 2", calls.Load())
	}
}

func TestAuthedNoSecondRetry(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))

	c.TokenFunc = func() (string, bool) { return "STALE", true }
	c.RefreshFunc = func(ctx context.Context) (string, error) { return "STILL-BAD", nil }

	_, err := c.GetUser(context.Background(), "u1")
	if !IsUnauthorized(err) {
		t.Fatalf("err = %v, want 401", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("server saw %d calls, want exactly 2 (no retry loop)", calls.Load())
	}
}

func TestAuthedRefreshEmptyResultNoRetry(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))

	c.TokenFunc = func() (string, bool) { return "STALE", true }
	c.RefreshFunc = func(ctx context.Context) (string, error) { return "", nil }

	_, err := c.GetUser(context.Background(), "u1")
	if !IsUnauthorized(err) {
		t.Fatalf("err = %v, want original 401", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("server saw %d calls, want 1", calls.Load())
	}
}

func TestUpdateUserOmitsUnsetFields(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(User{ID: "u1", Username: "newname"})
	}))
	c.TokenFunc = func() (string, bool) { return "ACCESS", true }

	name := "newname"
	if _, err := c.UpdateUser(context.Background(), "u1", UserUpdate{Username: &name}); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	if _, ok := body["email"]; ok {
		t.Fatal("unset email field serialized")
	}
	if body["username"] != "newname" {
		t.Fatalf("body = %v", body)
	}
}
