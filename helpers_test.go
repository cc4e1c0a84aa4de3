package authkit

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/royatali/authkit/jwt"
	"github.com/royatali/authkit/store"
)

func mintToken(t *testing.T, roles ...jwt.Role) string {
	t.Helper()

	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, &jwt.ClaimSet{
		SubjectID: "u1",
		Username:  "alice",
		Email:     "alice@example.com",
		Roles:     roles,
	}).SignedString([]byte("test-signing-key"))
	if err != nil {
		t.Fatalf("mint token failed: %v", err)
	}
	return token
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *store.Memory) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	mem := store.NewMemory()
	c, err := New().
		WithConfig(Config{BaseURL: srv.URL, RequestTimeout: 5 * time.Second}).
		WithTokenStore(mem).
		WithPrefs(store.NewPrefs(filepath.Join(t.TempDir(), "prefs.json"))).
		WithHTTPClient(srv.Client()).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return c, mem
}

// newClosedServerClient returns a client whose base URL points at a port
// that no longer listens, for simulating network-unreachable failures.
func newClosedServerClient(t *testing.T) (*Client, *store.Memory) {
	t.Helper()

	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	mem := store.NewMemory()
	c, err := New().
		WithConfig(Config{BaseURL: base, RequestTimeout: 2 * time.Second}).
		WithTokenStore(mem).
		WithPrefs(store.NewPrefs(filepath.Join(t.TempDir(), "prefs.json"))).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return c, mem
}
