package echo

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceObserver(t *testing.T) {
	t.Parallel()

	t.Run("renders both directions of an exchange", func(t *testing.T) {
		t.Parallel()
		var buf strings.Builder
		obs := NewTraceObserver(&buf)

		req := &Request{
			Method:   "GET",
			Path:     "/foo",
			RawQuery: "x=1",
			Header: Header{
				{Name: "X-Test", Value: "abc"},
				{Name: "internal.status-code", Value: "404"},
			},
			Body: []byte("ping"),
		}
		resp := Transform(req)
		obs.Observe(req, resp)

		out := buf.String()
		assert.Contains(t, out, "request: GET /foo?x=1")
		assert.Contains(t, out, "X-Test: abc")
		assert.Contains(t, out, "internal.status-code: 404")
		assert.Contains(t, out, "body (4 bytes): ping")
		assert.Contains(t, out, "response: 404 (overridden)")
	})

	t.Run("omits empty bodies and query strings", func(t *testing.T) {
		t.Parallel()
		var buf strings.Builder
		obs := NewTraceObserver(&buf)

		req := &Request{Method: "GET", Path: "/bare"}
		obs.Observe(req, Transform(req))

		out := buf.String()
		assert.Contains(t, out, "request: GET /bare\n")
		assert.NotContains(t, out, "?")
		assert.NotContains(t, out, "body")
		assert.Contains(t, out, "response: 200\n")
	})

	t.Run("does not mutate the exchange", func(t *testing.T) {
		t.Parallel()
		req := &Request{
			Method: "POST",
			Path:   "/p",
			Header: Header{{Name: "X-A", Value: "1"}},
			Body:   []byte("data"),
		}
		resp := Transform(req)

		wantReqHeader := req.Header.Clone()
		wantRespHeader := resp.Header.Clone()
		wantBody := resp.Body

		NewTraceObserver(&strings.Builder{}).Observe(req, resp)

		assert.Equal(t, wantReqHeader, req.Header)
		assert.Equal(t, wantRespHeader, resp.Header)
		assert.Equal(t, wantBody, resp.Body)
	})

	t.Run("each exchange arrives as one complete write", func(t *testing.T) {
		t.Parallel()
		var mu sync.Mutex
		var chunks []string
		w := writerFunc(func(p []byte) (int, error) {
			mu.Lock()
			defer mu.Unlock()
			chunks = append(chunks, string(p))
			return len(p), nil
		})
		obs := NewTraceObserver(w)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := &Request{Method: "GET", Path: "/c"}
				obs.Observe(req, Transform(req))
			}()
		}
		wg.Wait()

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, chunks, 8)
		for _, c := range chunks {
			assert.True(t, strings.HasPrefix(c, "request: GET /c\n"))
			assert.True(t, strings.HasSuffix(c, "response: 200\n\n"))
		}
	})
}

func TestObserverFunc(t *testing.T) {
	t.Parallel()

	var seen int
	obs := ObserverFunc(func(req *Request, resp *Response) { seen++ })
	req := &Request{Method: "GET", Path: "/"}
	obs.Observe(req, Transform(req))
	assert.Equal(t, 1, seen)
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
