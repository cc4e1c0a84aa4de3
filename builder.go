package authkit

import (
	"context"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/royatali/authkit/api"
	"github.com/royatali/authkit/session"
	"github.com/royatali/authkit/store"
)

// Builder defines a public type used by authkit APIs.
//
// Builder instances are intended to be configured during initialization and
// then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	tokens     store.TokenStore
	prefs      *store.Prefs
	httpClient *http.Client
	logger     *zap.Logger

	built bool
}

// New returns a builder preloaded with defaults.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the builder's configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithTokenStore overrides the default encrypted file store for the
// long-lived refresh credential.
func (b *Builder) WithTokenStore(ts store.TokenStore) *Builder {
	b.tokens = ts
	return b
}

// WithPrefs overrides the default preference store.
func (b *Builder) WithPrefs(p *store.Prefs) *Builder {
	b.prefs = p
	return b
}

// WithHTTPClient overrides the gateway's HTTP client. Its timeout policy
// governs every network call the session logic makes.
func (b *Builder) WithHTTPClient(hc *http.Client) *Builder {
	b.httpClient = hc
	return b
}

// WithLogger sets the structured logger. The default discards everything.
func (b *Builder) WithLogger(l *zap.Logger) *Builder {
	b.logger = l
	return b
}

// Build wires the client together: stores, session state, gateway, and the
// retry-after-refresh hooks. A builder builds at most once.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, ErrBuilderReused
	}
	if err := b.config.validate(); err != nil {
		return nil, err
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	prefs := b.prefs
	if prefs == nil && b.config.DataDir != "" {
		prefs = store.NewPrefs(filepath.Join(b.config.DataDir, prefsFileName))
	}

	tokens := b.tokens
	if tokens == nil {
		if b.config.DataDir == "" || len(b.config.DeviceSecret) == 0 {
			return nil, ErrMissingTokenStore
		}
		sf, err := store.NewSecureFile(filepath.Join(b.config.DataDir, tokenFileName), b.config.DeviceSecret)
		if err != nil {
			return nil, err
		}
		tokens = sf
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: b.config.RequestTimeout}
	}

	gateway, err := api.NewClient(b.config.BaseURL, httpClient, logger)
	if err != nil {
		return nil, err
	}

	// An interface holding a nil *store.Prefs must not reach the state.
	var prefWriter session.PrefWriter
	if prefs != nil {
		prefWriter = prefs
	}
	state := session.NewState(prefWriter, logger)
	restorePersist(state, prefs, logger)

	c := &Client{
		config: b.config,
		api:    gateway,
		tokens: tokens,
		prefs:  prefs,
		state:  state,
		logger: logger,
	}

	gateway.TokenFunc = state.AccessToken
	gateway.RefreshFunc = c.Refresh

	b.built = true
	return c, nil
}

// restorePersist seeds session state from the durable persist flag. Load
// failures only cost the silent-restore convenience, so they are logged and
// swallowed.
func restorePersist(state *session.State, prefs *store.Prefs, logger *zap.Logger) {
	if prefs == nil {
		return
	}
	flag, ok, err := prefs.Bool(context.Background(), store.KeyPersist)
	if err != nil {
		logger.Warn("failed to load persist setting", zap.Error(err))
		return
	}
	if ok {
		state.SetPersist(context.Background(), flag)
	}
}
