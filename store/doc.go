// Package store provides durable device-local storage for the single
// long-lived refresh credential, plus a small plain-value store for
// non-secret preferences.
//
// Exactly one refresh token exists at a time: every save overwrites the
// previous value and clear removes it. [TokenStore] implementations must make
// each call atomic from the caller's perspective — a reader never observes a
// partial write.
//
// Backends:
//
//   - [SecureFile]: encrypted at rest (HKDF-SHA256 key derivation, AES-GCM
//     envelope), for devices without access to a platform keystore daemon.
//   - [Memory]: process-lifetime only, for tests and opt-out sessions.
//   - [Redis]: for headless agents that keep their keystore in a local
//     Redis instance.
//
// # Architecture boundaries
//
// This package owns raw credential storage. No other package reads the
// stored value directly; the root package's refresh and logout flows are the
// only consumers.
//
// # What this package must NOT do
//
//   - Decode, refresh, or transmit tokens.
//   - Hold more than one refresh credential per store.
//   - Report an empty store as an error: absence is a normal state.
package store
