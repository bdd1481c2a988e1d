// Package echo implements the request-to-response mirroring engine.
//
// The engine turns an inbound HTTP request into a response that reflects it
// back to the client: the response carries the request's headers (minus a
// fixed reserved set and the control headers), and the request body echoed
// as text. Two control headers let the client script the response instead:
//
//   - internal.status-code selects the response status
//   - internal.response-body replaces the echoed body
//
// # Core Types
//
// Request and Response model one exchange. Header is an ordered header
// multimap: unlike net/http's map representation it preserves the order and
// repetition of individual header occurrences, which the mirroring contract
// depends on.
//
// # Pipeline
//
// Transform is the single entry point and runs three pure steps:
//
//	classify  every header is reserved, control, or pass-through
//	resolve   control headers produce the effective status and body
//	synthesize pass-through headers plus status and body become a Response
//
// All three steps are deterministic and side-effect free; transports call
// Transform from as many goroutines as they like.
//
// # Observation
//
// Observer is a hook for watching exchanges (the verbose trace uses it).
// The engine never formats or writes diagnostics itself.
//
// # Package Design
//
// This is a leaf package with no internal dependencies, so transports,
// CLIs, and tests can import it without creating import cycles.
package echo
