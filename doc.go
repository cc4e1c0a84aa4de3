// Package authkit manages the client side of an authentication session
// against a remote JSON auth service: acquiring tokens, storing the
// long-lived refresh credential encrypted at rest, silently restoring a
// session at process start, refreshing the short-lived access token, and
// tearing everything down on logout or credential rejection.
//
// A [Client] is built once at process start through [Builder.Build] and
// shared by reference. Its session state publishes changes to subscribers,
// and the guard package turns that state plus a declarative route table
// into navigation decisions.
//
// # Architecture boundaries
//
// authkit is the public surface. It exposes [Client], [Builder], [Config],
// and the lifecycle operations. Token decoding lives in jwt, credential
// storage in store, session state in session, route gating in guard, and
// the HTTP gateway in api; the root package is the only place these are
// composed.
//
// # What this package must NOT do
//
//   - Verify token signatures or make server-side authorization decisions;
//     decoded claims gate UI flow only.
//   - Keep more than one active session per process.
//   - Tear a session down on transient failures: only a definitive 401 on
//     refresh (or an explicit logout) clears stored credentials.
package authkit
