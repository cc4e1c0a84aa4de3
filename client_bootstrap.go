package authkit

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Bootstrap defines a public type used by authkit APIs.
//
// Bootstrap reports the progress of the silent session restore started by
// [Client.StartBootstrap]. Its loading flag transitions from true to false
// at most once, when the restore settles; cancelling the consumer's context
// before that discards the eventual result without touching the flag.
type Bootstrap struct {
	mu      sync.Mutex
	loading bool
	done    chan struct{}
}

// Loading reports whether the restore is still in flight.
func (b *Bootstrap) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

// Done returns a channel closed when the restore settles. It never closes
// if the consumer's context was cancelled first.
func (b *Bootstrap) Done() <-chan struct{} {
	return b.done
}

func (b *Bootstrap) settle() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.loading {
		return
	}
	b.loading = false
	close(b.done)
}

// StartBootstrap runs the process-start decision: if the session already
// holds an access token the restore settles immediately; otherwise the
// refresh flow runs in the background and the restore settles when it
// does, whatever its outcome. Refresh failures are logged here, never
// surfaced — the rest of the app only needs the loading transition, which
// is guaranteed to happen unless ctx is cancelled first.
//
// ctx is the consuming component's lifetime. Cancelling it abandons the
// wait: the refresh result is discarded and the returned Bootstrap stays
// loading forever, mutating nothing.
func (c *Client) StartBootstrap(ctx context.Context) *Bootstrap {
	b := &Bootstrap{loading: true, done: make(chan struct{})}

	if _, ok := c.state.AccessToken(); ok {
		b.settle()
		return b
	}

	go func() {
		if _, err := c.Refresh(ctx); err != nil {
			c.logger.Error("silent session restore failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			// Consumer torn down mid-flight: no stale flag update.
		default:
			b.settle()
		}
	}()

	return b
}
