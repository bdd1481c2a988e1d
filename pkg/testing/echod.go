package testing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getechod/echod/pkg/engine"
	"github.com/getechod/echod/pkg/requestlog"
)

// EchoServer runs the echo engine in-process for tests. Every request
// is mirrored back and recorded for assertions.
type EchoServer struct {
	t       testing.TB
	history requestlog.Store
	httpSrv *httptest.Server
}

// New starts an echo server for testing. The server is automatically
// shut down when the test completes.
func New(t testing.TB) *EchoServer {
	t.Helper()

	history := requestlog.NewMemoryStore(1000)
	handler := engine.NewHandler()
	handler.SetHistory(history)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &EchoServer{
		t:       t,
		history: history,
		httpSrv: srv,
	}
}

// URL returns the base URL of the echo server.
func (e *EchoServer) URL() string {
	return e.httpSrv.URL
}

// Client returns an HTTP client configured for the server.
func (e *EchoServer) Client() *http.Client {
	return e.httpSrv.Client()
}

// Reset clears the recorded request history.
func (e *EchoServer) Reset() {
	e.history.Clear()
}

// Requests returns all recorded requests for assertions.
// Requests are returned in reverse chronological order (newest first).
func (e *EchoServer) Requests() []*Request {
	e.t.Helper()

	entries := e.history.List(nil)
	result := make([]*Request, len(entries))
	for i, entry := range entries {
		result[i] = newRequest(entry)
	}
	return result
}

// LastRequest returns the most recent recorded request, or nil when
// nothing has been recorded.
func (e *EchoServer) LastRequest() *Request {
	entries := e.history.List(&requestlog.Filter{Limit: 1})
	if len(entries) == 0 {
		return nil
	}
	return newRequest(entries[0])
}

// AssertCalled asserts that a method/path combination was requested at
// least once.
func (e *EchoServer) AssertCalled(t testing.TB, method, path string) {
	t.Helper()

	count := e.countCalls(method, path)
	if count == 0 {
		t.Errorf("expected %s %s to be called, but it was not called", method, path)
	}
}

// AssertCalledTimes asserts that a method/path combination was
// requested exactly n times.
func (e *EchoServer) AssertCalledTimes(t testing.TB, method, path string, times int) {
	t.Helper()

	count := e.countCalls(method, path)
	if count != times {
		t.Errorf("expected %s %s to be called %d times, but was called %d times",
			method, path, times, count)
	}
}

// AssertNotCalled asserts that a method/path combination was never
// requested.
func (e *EchoServer) AssertNotCalled(t testing.TB, method, path string) {
	t.Helper()

	count := e.countCalls(method, path)
	if count > 0 {
		t.Errorf("expected %s %s to not be called, but it was called %d times",
			method, path, count)
	}
}

// countCalls counts recorded requests for a method/path combination.
// Paths compare exactly; the echo server has no routing patterns.
func (e *EchoServer) countCalls(method, path string) int {
	entries := e.history.List(&requestlog.Filter{Method: method})
	count := 0
	for _, entry := range entries {
		if entry.Path == path {
			count++
		}
	}
	return count
}
