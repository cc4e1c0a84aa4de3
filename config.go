package authkit

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config defines a public type used by authkit APIs.
//
// Config instances are intended to be configured during initialization and
// then treated as immutable unless documented otherwise.
type Config struct {
	// BaseURL is the root of the remote authentication service. All
	// endpoint paths are relative to it.
	BaseURL string

	// RequestTimeout bounds every network call made by the gateway. The
	// session logic itself defines no timeouts of its own.
	RequestTimeout time.Duration

	// DataDir is where the default stores keep their files: the encrypted
	// refresh credential and the plain preference file.
	DataDir string

	// DeviceSecret is the key material for the default encrypted token
	// store. It must be at least 16 bytes and stable across restarts of
	// the same device installation.
	DeviceSecret []byte
}

/*
====================================
DEFAULTS
====================================
*/

const (
	defaultRequestTimeout = 15 * time.Second

	tokenFileName = "refresh.token"
	prefsFileName = "prefs.json"
)

func defaultConfig() Config {
	return Config{
		RequestTimeout: defaultRequestTimeout,
		DataDir:        defaultDataDir(),
	}
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "authkit")
}

/*
====================================
ENVIRONMENT
====================================
*/

// ConfigFromEnv builds a Config from the environment, loading a local .env
// file first when one exists. Recognized variables:
//
//	AUTHKIT_BASE_URL        service base URL (required by Build)
//	AUTHKIT_TIMEOUT         request timeout, Go duration syntax
//	AUTHKIT_DATA_DIR        storage directory override
//	AUTHKIT_DEVICE_SECRET   key material for the encrypted token store
func ConfigFromEnv() Config {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	cfg := defaultConfig()
	if v := os.Getenv("AUTHKIT_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("AUTHKIT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("AUTHKIT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("AUTHKIT_DEVICE_SECRET"); v != "" {
		cfg.DeviceSecret = []byte(v)
	}
	return cfg
}

func (c Config) validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	return nil
}
