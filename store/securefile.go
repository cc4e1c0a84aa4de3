package store

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/hkdf"
)

// hkdfInfoTokenStore binds derived keys to this store so the same device
// secret can be reused by other subsystems without key collisions.
const hkdfInfoTokenStore = "authkit/refresh-token-store"

// ErrSecretTooShort is an exported constant or variable used by the session client.
var ErrSecretTooShort = errors.New("device secret must be at least 16 bytes")

// SecureFile defines a public type used by authkit APIs.
//
// SecureFile persists the refresh credential encrypted at rest in a single
// file. The encryption key is derived from a device-scoped secret via
// HKDF-SHA256 and never written to disk. Writes go through a temp file and
// rename, so a crash mid-save leaves either the old value or the new one,
// never a torn ciphertext.
type SecureFile struct {
	mu   sync.Mutex
	path string
	aead cipher.AEAD
}

// NewSecureFile derives the at-rest encryption key from secret and returns a
// store rooted at path. The parent directory is created if missing.
func NewSecureFile(path string, secret []byte) (*SecureFile, error) {
	if len(secret) < 16 {
		return nil, ErrSecretTooShort
	}

	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, secret, nil, []byte(hkdfInfoTokenStore))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("derive store key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init store cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init store aead: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	return &SecureFile{path: path, aead: aead}, nil
}

// Save encrypts token and replaces the stored value atomically.
func (s *SecureFile) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	sealed := s.aead.Seal(nonce, nonce, []byte(token), nil)

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, sealed, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("commit token file: %w", err)
	}
	return nil
}

// Load decrypts and returns the stored token. A missing file reports
// absence, not an error; an undecryptable file is an error, since it means
// the value was written with a different device secret or corrupted.
func (s *SecureFile) Load(_ context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read token file: %w", err)
	}

	if len(sealed) < s.aead.NonceSize() {
		return "", false, errors.New("token file truncated")
	}

	nonce, ciphertext := sealed[:s.aead.NonceSize()], sealed[s.aead.NonceSize():]
	plain, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", false, fmt.Errorf("decrypt token file: %w", err)
	}

	return string(plain), true, nil
}

// Clear removes the stored token. Clearing an already-empty store succeeds.
func (s *SecureFile) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
