// Package api provides the request factory used to talk to the Recurly v2
// API. It composes request URIs, authenticates, sends single-shot HTTPS
// requests and classifies every response by status code.
//
// # Request URIs
//
// [Client.MakeRequestURI] resolves relative parts one after the other
// against the API root, which always ends in a slash:
//
//	uri, _ := c.MakeRequestURI("accounts/", api.EscapeDataString("ab c"))
//	// https://sub.recurly.com/v2/accounts/ab%20c
//
// # Headers
//
// Every request carries X-Api-Version, User-Agent, Accept: application/xml
// and Authorization: Basic base64(api key). Writes also send
// Content-Type: application/xml; charset=utf-8.
//
// # Timeouts
//
// Reads run under [Config.Timeout] and writes under [Config.WriteTimeout].
// Both are applied as per-request context deadlines, so the shared
// http.Client is never mutated.
//
// # Results
//
// [Client.Get] and [Client.Post] return a [Result]. A transport failure is
// returned as a *apierrors.NetworkError instead. The status table lives in
// apierrors.Classify:
//
//   - 200: Result.Reader streams the body; the caller must Close it.
//   - 404: neither Reader nor Err is set.
//   - 422, 412, 401, 403, 500 and unknown statuses: the body is parsed as an
//     error envelope and Result.Err carries it.
//   - 503: Result.Err is set and the body is ignored.
//
// Nothing is retried.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
