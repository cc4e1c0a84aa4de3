package authkit

import (
	"testing"
	"time"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("AUTHKIT_BASE_URL", "http://auth.local")
	t.Setenv("AUTHKIT_TIMEOUT", "3s")
	t.Setenv("AUTHKIT_DATA_DIR", "/var/lib/authkit")
	t.Setenv("AUTHKIT_DEVICE_SECRET", "0123456789abcdef")

	cfg := ConfigFromEnv()

	if cfg.BaseURL != "http://auth.local" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.DataDir != "/var/lib/authkit" {
		t.Fatalf("DataDir = %q", cfg.DataDir)
	}
	if string(cfg.DeviceSecret) != "0123456789abcdef" {
		t.Fatalf("DeviceSecret = %q", cfg.DeviceSecret)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("AUTHKIT_BASE_URL", "")
	t.Setenv("AUTHKIT_TIMEOUT", "")
	t.Setenv("AUTHKIT_DATA_DIR", "")
	t.Setenv("AUTHKIT_DEVICE_SECRET", "")

	cfg := ConfigFromEnv()

	if cfg.BaseURL != "" {
		t.Fatalf("BaseURL = %q, want empty", cfg.BaseURL)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want default", cfg.RequestTimeout)
	}
}

func TestConfigFromEnvRejectsBadTimeout(t *testing.T) {
	t.Setenv("AUTHKIT_TIMEOUT", "not-a-duration")

	if cfg := ConfigFromEnv(); cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want default kept", cfg.RequestTimeout)
	}
}
