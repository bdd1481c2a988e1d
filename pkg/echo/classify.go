package echo

import "strings"

// Control header names. Clients set these on a request to script the
// response; they are consumed by the engine and never echoed back. The
// "internal." prefix keeps them out of the way of real header names.
const (
	// StatusCodeHeader selects the response status code.
	StatusCodeHeader = "internal.status-code"

	// ResponseBodyHeader replaces the echoed response body.
	ResponseBodyHeader = "internal.response-body"
)

// Class is the classification of a header name.
type Class int

// Header classes.
const (
	// ClassPassThrough headers are copied into the response unchanged.
	ClassPassThrough Class = iota

	// ClassReserved headers belong to the transport or its intermediaries
	// and are dropped from the response.
	ClassReserved

	// ClassControl headers carry response overrides and are dropped from
	// the response after being consumed.
	ClassControl
)

// String returns the class name for logs and test output.
func (c Class) String() string {
	switch c {
	case ClassReserved:
		return "reserved"
	case ClassControl:
		return "control"
	default:
		return "pass-through"
	}
}

// reservedNames holds the header names that are never echoed back. These
// are the transport- and browser-owned headers: connection management,
// content negotiation, client identification, credentials, and proxy
// routing metadata. All lowercase; membership checks lowercase first.
var reservedNames = map[string]struct{}{
	"content-length":            {},
	"user-agent":                {},
	"host":                      {},
	"connection":                {},
	"accept":                    {},
	"accept-encoding":           {},
	"accept-language":           {},
	"cache-control":             {},
	"upgrade-insecure-requests": {},
	"sec-fetch-dest":            {},
	"sec-fetch-mode":            {},
	"sec-fetch-site":            {},
	"sec-ch-ua":                 {},
	"sec-ch-ua-mobile":          {},
	"sec-ch-ua-platform":        {},
	"authorization":             {},
	"cookie":                    {},
	"referer":                   {},
	"origin":                    {},
	"x-forwarded-for":           {},
	"x-forwarded-proto":         {},
	"x-real-ip":                 {},
	"transfer-encoding":         {},
	"te":                        {},
	"trailer":                   {},
	"proxy-authorization":       {},
	"proxy-authenticate":        {},
	"www-authenticate":          {},
}

// Classify reports the class of a header name. Classification depends only
// on the name, never on the value. Control names win over the reserved set.
func Classify(name string) Class {
	n := strings.ToLower(name)
	if n == StatusCodeHeader || n == ResponseBodyHeader {
		return ClassControl
	}
	if _, ok := reservedNames[n]; ok {
		return ClassReserved
	}
	return ClassPassThrough
}

// PassThrough filters h down to its pass-through fields, preserving the
// order and repetition of the original occurrences.
func PassThrough(h Header) Header {
	out := make(Header, 0, len(h))
	for _, f := range h {
		if Classify(f.Name) == ClassPassThrough {
			out = append(out, f)
		}
	}
	return out
}
