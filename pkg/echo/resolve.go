package echo

import (
	"net/http"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Status codes outside this range cannot be carried by the HTTP wire
// format, so override values beyond it fall back to the default.
const (
	minStatusCode = 100
	maxStatusCode = 999
)

// Resolve computes the effective status and body for a request with the
// given headers and raw body.
//
// The status is the first internal.status-code value when it parses as an
// integer within the valid HTTP range, and http.StatusOK otherwise. The
// body is the first internal.response-body value when present, and the
// request body decoded as text otherwise. Malformed override values are
// ignored rather than rejected; a diagnostic server answers every request.
func Resolve(h Header, body []byte) (status int, effectiveBody string) {
	status = http.StatusOK
	if v, ok := h.Get(StatusCodeHeader); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= minStatusCode && n <= maxStatusCode {
			status = n
		}
	}

	if v, ok := h.Get(ResponseBodyHeader); ok {
		return status, v
	}
	return status, decodeLossy(body)
}

// decodeLossy converts raw request bytes to text. Invalid UTF-8 sequences
// are replaced with U+FFFD so a binary body still produces a response.
func decodeLossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
