// Package api is the JSON gateway to the remote authentication service.
//
// It wraps every endpoint the service exposes (signup, signin, refresh,
// logout, password recovery, user CRUD) behind typed request/response
// structs. Authenticated calls inject the current access token as a bearer
// header and, on a 401, ask the configured refresh hook for a new token and
// retry exactly once — the client-side equivalent of an interceptor.
//
// Failures split into two kinds the caller can tell apart:
//
//   - [*Error]: the server answered with a non-2xx status. Carries the
//     status code and the server-provided message when present.
//   - anything else: the request never produced a response (DNS, refused
//     connection, timeout). [IsNetwork] reports this case.
//
// # What this package must NOT do
//
//   - Store tokens or mutate session state; it only calls the hooks the
//     root package wires in.
//   - Retry more than once per call, or retry unauthenticated endpoints.
package api
