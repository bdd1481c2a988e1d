package testing

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/getechod/echod/pkg/requestlog"
)

// Request represents a recorded exchange for assertions.
type Request struct {
	// Method is the HTTP method (GET, POST, etc.)
	Method string
	// Path is the request URL path
	Path string
	// QueryString is the raw query string
	QueryString string
	// Headers are the request headers (first value per name)
	Headers map[string]string
	// Body is the request body content
	Body string
	// Status is the status code the server answered with
	Status int
	// ResponseBody is the body the server answered with
	ResponseBody string
	// Overridden reports whether a control header shaped the response
	Overridden bool
}

func newRequest(entry *requestlog.Entry) *Request {
	headers := make(map[string]string, len(entry.Headers))
	for _, pair := range entry.Headers {
		if _, ok := headers[pair.Name]; !ok {
			headers[pair.Name] = pair.Value
		}
	}
	return &Request{
		Method:       entry.Method,
		Path:         entry.Path,
		QueryString:  entry.QueryString,
		Headers:      headers,
		Body:         entry.Body,
		Status:       entry.Status,
		ResponseBody: entry.ResponseBody,
		Overridden:   entry.Overridden,
	}
}

// AssertMethod asserts that the request used the expected HTTP method.
func (r *Request) AssertMethod(t testing.TB, expected string) {
	t.Helper()

	if !strings.EqualFold(r.Method, expected) {
		t.Errorf("request method mismatch\nexpected: %q\nactual: %q", expected, r.Method)
	}
}

// AssertBody asserts that the request body exactly matches the expected string.
func (r *Request) AssertBody(t testing.TB, expected string) {
	t.Helper()

	if r.Body != expected {
		t.Errorf("request body does not match\nexpected: %q\nactual: %q", expected, r.Body)
	}
}

// AssertBodyContains asserts that the request body contains the expected substring.
func (r *Request) AssertBodyContains(t testing.TB, substr string) {
	t.Helper()

	if !strings.Contains(r.Body, substr) {
		t.Errorf("request body does not contain %q\nbody: %s", substr, r.Body)
	}
}

// AssertJSONBody asserts that the request body matches the expected JSON.
// The expected value can be a string, []byte, or any struct/map that will be JSON encoded.
func (r *Request) AssertJSONBody(t testing.TB, expected any) {
	t.Helper()

	var expectedJSON any
	var actualJSON any

	switch v := expected.(type) {
	case string:
		if err := json.Unmarshal([]byte(v), &expectedJSON); err != nil {
			t.Errorf("failed to parse expected JSON: %v", err)
			return
		}
	case []byte:
		if err := json.Unmarshal(v, &expectedJSON); err != nil {
			t.Errorf("failed to parse expected JSON: %v", err)
			return
		}
	default:
		// Marshal and unmarshal to normalize
		data, err := json.Marshal(v)
		if err != nil {
			t.Errorf("failed to marshal expected value: %v", err)
			return
		}
		if err := json.Unmarshal(data, &expectedJSON); err != nil {
			t.Errorf("failed to parse expected JSON: %v", err)
			return
		}
	}

	if err := json.Unmarshal([]byte(r.Body), &actualJSON); err != nil {
		t.Errorf("request body is not valid JSON: %v\nbody: %s", err, r.Body)
		return
	}

	if !reflect.DeepEqual(actualJSON, expectedJSON) {
		expectedBytes, _ := json.MarshalIndent(expectedJSON, "", "  ")
		actualBytes, _ := json.MarshalIndent(actualJSON, "", "  ")
		t.Errorf("request body does not match expected JSON\nexpected:\n%s\nactual:\n%s",
			string(expectedBytes), string(actualBytes))
	}
}

// AssertHeader asserts that the request had the specified header with the expected value.
func (r *Request) AssertHeader(t testing.TB, key, expected string) {
	t.Helper()

	actual, ok := r.lookupHeader(key)
	if !ok {
		t.Errorf("request does not have header %q", key)
		return
	}
	if actual != expected {
		t.Errorf("header %q value mismatch\nexpected: %q\nactual: %q", key, expected, actual)
	}
}

// AssertHeaderExists asserts that the request had the specified header (any value).
func (r *Request) AssertHeaderExists(t testing.TB, key string) {
	t.Helper()

	if _, ok := r.lookupHeader(key); !ok {
		t.Errorf("request does not have header %q", key)
	}
}

func (r *Request) lookupHeader(key string) (string, bool) {
	if v, ok := r.Headers[key]; ok {
		return v, true
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// AssertQueryParam asserts that the request had the specified query parameter.
func (r *Request) AssertQueryParam(t testing.TB, key, expected string) {
	t.Helper()

	params := parseQueryString(r.QueryString)
	actual, ok := params[key]
	if !ok {
		t.Errorf("request does not have query parameter %q", key)
		return
	}
	if actual != expected {
		t.Errorf("query parameter %q value mismatch\nexpected: %q\nactual: %q", key, expected, actual)
	}
}

// AssertQueryParamExists asserts that the request had the specified query parameter (any value).
func (r *Request) AssertQueryParamExists(t testing.TB, key string) {
	t.Helper()

	params := parseQueryString(r.QueryString)
	if _, ok := params[key]; !ok {
		t.Errorf("request does not have query parameter %q", key)
	}
}

// AssertStatus asserts that the server answered with the expected status.
func (r *Request) AssertStatus(t testing.TB, expected int) {
	t.Helper()

	if r.Status != expected {
		t.Errorf("response status mismatch\nexpected: %d\nactual: %d", expected, r.Status)
	}
}

// AssertOverridden asserts that a control header shaped the response.
func (r *Request) AssertOverridden(t testing.TB) {
	t.Helper()

	if !r.Overridden {
		t.Error("expected the response to be shaped by a control header, but it was a plain echo")
	}
}

// JSONField extracts a field from the request body JSON.
// Returns nil if the body is not valid JSON or the field doesn't exist.
func (r *Request) JSONField(field string) any {
	var data map[string]any
	if err := json.Unmarshal([]byte(r.Body), &data); err != nil {
		return nil
	}
	return data[field]
}

// parseQueryString splits a raw query string into a key/value map.
func parseQueryString(qs string) map[string]string {
	result := make(map[string]string)
	if qs == "" {
		return result
	}

	pairs := strings.Split(qs, "&")
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 {
			result[parts[0]] = parts[1]
		} else if len(parts) == 1 {
			result[parts[0]] = ""
		}
	}
	return result
}
