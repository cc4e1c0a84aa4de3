// Package jwt decodes access tokens issued by the remote authentication
// service into a structured claim set (identity, roles).
//
// Decoding is deliberately unverified: signature and expiry validation are
// the server's job, and the decoded claims are advisory UI/routing input
// only, never an authorization decision. [Decode] is total — absent, empty,
// or malformed input yields "no claims" rather than an error, because a
// missing claim set is a legitimate state (logged-out user), not a fault.
//
// # Architecture boundaries
//
// This package owns token decoding and role-set helpers. Token acquisition,
// storage, and refresh live in the root package and its store; this package
// performs no I/O.
//
// # What this package must NOT do
//
//   - Verify signatures or trust decoded claims for access control.
//   - Import the root package, session, store, or guard.
//   - Return decode failures to callers as errors.
package jwt
