package echo

import "golang.org/x/net/http/httpguts"

// Synthesize builds a Response from already-classified pass-through
// headers, an effective status, and an effective body. Fields whose name or
// value cannot legally appear on the wire are skipped one at a time; a
// single bad header never fails the whole exchange.
func Synthesize(passThrough Header, status int, body string) *Response {
	resp := &Response{
		StatusCode: status,
		Header:     make(Header, 0, len(passThrough)),
		Body:       body,
	}
	for _, f := range passThrough {
		if !httpguts.ValidHeaderFieldName(f.Name) || !httpguts.ValidHeaderFieldValue(f.Value) {
			continue
		}
		resp.Header = append(resp.Header, f)
	}
	return resp
}
