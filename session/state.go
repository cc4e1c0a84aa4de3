package session

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// persistPrefKey is the durable key shared with the mobile clients
// (store.KeyPersist).
const persistPrefKey = "persist"

// PrefWriter is the slice of the preference store that [State] needs to
// mirror the persist flag.
type PrefWriter interface {
	SetBool(ctx context.Context, key string, value bool) error
}

// Snapshot defines a public type used by authkit APIs.
//
// Snapshot is an immutable copy of the session state at one point in time.
// An empty AccessToken means unauthenticated.
type Snapshot struct {
	AccessToken string
	Persist     bool
}

// State defines a public type used by authkit APIs.
//
// State instances are intended to be constructed once at process start and
// shared by reference with every component that needs them. All methods are
// safe for concurrent use.
type State struct {
	mu          sync.Mutex
	accessToken string
	persist     bool
	subs        map[int]func(Snapshot)
	nextSub     int

	prefs  PrefWriter
	logger *zap.Logger
}

// NewState returns an empty, unauthenticated state. prefs may be nil, in
// which case the persist flag is process-lifetime only. logger may be nil.
func NewState(prefs PrefWriter, logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &State{
		subs:   map[int]func(Snapshot){},
		prefs:  prefs,
		logger: logger,
	}
}

// Snapshot returns a consistent copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{AccessToken: s.accessToken, Persist: s.persist}
}

// AccessToken returns the current access token, reporting absence when the
// session is unauthenticated.
func (s *State) AccessToken() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.accessToken != ""
}

// Persist reports whether the user opted to keep the session across
// restarts.
func (s *State) Persist() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist
}

// SetAccessToken replaces the access token, leaving the persist flag
// untouched, and notifies subscribers.
func (s *State) SetAccessToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	snap, subs := s.snapshotAndSubsLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

// SetPersist records the user's persist opt-in, mirrors it to durable
// preference storage best-effort, and notifies subscribers.
func (s *State) SetPersist(ctx context.Context, flag bool) {
	s.mu.Lock()
	s.persist = flag
	snap, subs := s.snapshotAndSubsLocked()
	s.mu.Unlock()

	s.mirrorPersist(ctx, flag)
	notify(subs, snap)
}

// Clear resets the session to unauthenticated with persist off. Clearing an
// already-empty state is a no-op apart from subscriber notification.
func (s *State) Clear(ctx context.Context) {
	s.mu.Lock()
	s.accessToken = ""
	s.persist = false
	snap, subs := s.snapshotAndSubsLocked()
	s.mu.Unlock()

	s.mirrorPersist(ctx, false)
	notify(subs, snap)
}

// Subscribe registers fn to run after every state change with the snapshot
// that change produced. Ordering between subscribers is unspecified. The
// returned cancel func removes the subscription and is safe to call more
// than once.
func (s *State) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *State) snapshotAndSubsLocked() (Snapshot, []func(Snapshot)) {
	snap := Snapshot{AccessToken: s.accessToken, Persist: s.persist}
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return snap, subs
}

func (s *State) mirrorPersist(ctx context.Context, flag bool) {
	if s.prefs == nil {
		return
	}
	if err := s.prefs.SetBool(ctx, persistPrefKey, flag); err != nil {
		s.logger.Warn("failed to save persist setting", zap.Error(err))
	}
}

func notify(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
