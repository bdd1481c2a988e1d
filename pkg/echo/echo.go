package echo

// Request is one inbound HTTP exchange as seen by the engine. The
// transport adapter builds it and hands it over; the engine treats it as
// immutable from then on.
type Request struct {
	// Method is the HTTP method verbatim.
	Method string `json:"method"`

	// Path is the URL path component.
	Path string `json:"path"`

	// RawQuery is the query string without the leading "?", empty if none.
	RawQuery string `json:"rawQuery,omitempty"`

	// Header holds every header occurrence in the order the transport
	// delivered them, reserved and control headers included.
	Header Header `json:"header"`

	// Body is the raw request body. May hold arbitrary bytes.
	Body []byte `json:"body,omitempty"`
}

// Response is the mirrored reply for one Request.
type Response struct {
	// StatusCode is the effective HTTP status.
	StatusCode int `json:"statusCode"`

	// Header holds the pass-through fields in request order.
	Header Header `json:"header"`

	// Body is the effective body: the override value or the echoed
	// request body.
	Body string `json:"body"`

	// Overridden reports whether the request carried a control header.
	Overridden bool `json:"overridden"`
}

// Transform runs the full pipeline for one request: classify the headers,
// resolve the overrides, synthesize the response. It is pure; transforming
// the same request twice yields identical responses.
func Transform(req *Request) *Response {
	status, body := Resolve(req.Header, req.Body)
	resp := Synthesize(PassThrough(req.Header), status, body)

	_, hasStatus := req.Header.Get(StatusCodeHeader)
	_, hasBody := req.Header.Get(ResponseBodyHeader)
	resp.Overridden = hasStatus || hasBody

	return resp
}
