// Package guard gates navigation into protected destinations based on the
// current session and the roles decoded from its access token.
//
// Route restrictions live in one declarative [Routes] table instead of being
// scattered per destination, so the navigation layer and any menu/drawer
// rendering consume the same source and cannot drift.
//
// Evaluation order is fixed: a missing access token always redirects to the
// login destination, even when the destination's role list would also fail —
// an unauthenticated user is never shown "forbidden". [Routes.Evaluate] is a
// pure function of its inputs and returns a single decision, so re-running
// it on every session or destination change cannot bounce through an
// intermediate destination.
//
// # What this package must NOT do
//
//   - Perform I/O or mutate session state.
//   - Treat its decision as server-side authorization.
package guard
