// Package session holds the process-lifetime authentication state: the
// current short-lived access token and the user's persist opt-in.
//
// [State] is the single source the rest of the application reads. Consumers
// subscribe for change notification instead of polling; every mutation
// notifies all subscribers with a consistent [Snapshot]. Mutations are
// idempotent and last-write-wins — interleaved flows (bootstrap refresh, a
// user login, a 401-triggered teardown) may race across I/O boundaries, and
// applying the same teardown twice must be a no-op.
//
// The persist flag is mirrored to durable preference storage on every
// change. Mirror failures only cost next-restart convenience, so they are
// logged and swallowed rather than surfaced.
//
// # Architecture boundaries
//
// This package owns in-memory session state and its publish contract. It
// never touches the network and never reads or writes the refresh
// credential; that is the root package's and the store's job.
//
// # What this package must NOT do
//
//   - Decode tokens or inspect claims.
//   - Perform HTTP requests.
//   - Persist anything beyond the persist flag mirror.
package session
