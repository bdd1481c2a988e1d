package requestlog

import "time"

// MaxLoggedBodySize is the cap on stored request and response bodies.
// Anything larger is truncated before the entry is recorded so a
// single huge upload cannot dominate the history buffer.
const MaxLoggedBodySize = 10 * 1024

// HeaderPair is a single header as it appeared on the wire. Entries
// keep headers as an ordered list rather than a map so repeated names
// and their relative order survive inspection.
type HeaderPair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Entry captures complete details of one echoed exchange for debugging
// and inspection.
type Entry struct {
	// ID is a unique identifier for the log entry.
	ID string `json:"id"`

	// Timestamp is when the request was received.
	Timestamp time.Time `json:"timestamp"`

	// Method is the HTTP method.
	Method string `json:"method"`

	// Path is the request URL path.
	Path string `json:"path"`

	// QueryString is the raw query string.
	QueryString string `json:"queryString,omitempty"`

	// Headers are the request headers in wire order.
	Headers []HeaderPair `json:"headers,omitempty"`

	// Body is the request body content (truncated if > 10KB).
	Body string `json:"body,omitempty"`

	// BodySize is the original body size in bytes.
	BodySize int `json:"bodySize"`

	// RemoteAddr is the client IP address.
	RemoteAddr string `json:"remoteAddr"`

	// Status is the status code returned.
	Status int `json:"status"`

	// ResponseBody is the response body content (truncated if > 10KB).
	ResponseBody string `json:"responseBody,omitempty"`

	// Overridden reports whether the request carried a control header.
	Overridden bool `json:"overridden"`

	// DurationMs is the request processing time in milliseconds.
	DurationMs int `json:"durationMs"`
}

// TruncateBody clips a body to MaxLoggedBodySize for storage in an
// Entry. The returned length is the original size.
func TruncateBody(body string) (string, int) {
	size := len(body)
	if size > MaxLoggedBodySize {
		return body[:MaxLoggedBodySize], size
	}
	return body, size
}
