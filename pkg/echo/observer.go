package echo

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Observer is notified after each exchange has been transformed. Observers
// must not modify the request or response; both may still be in use by the
// transport.
type Observer interface {
	Observe(req *Request, resp *Response)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(req *Request, resp *Response)

// Observe calls f.
func (f ObserverFunc) Observe(req *Request, resp *Response) { f(req, resp) }

// TraceObserver renders each exchange as a human-readable trace: the
// request line with every inbound header and the body, then the resolved
// status with the headers and body actually sent. Writes are serialized so
// concurrent exchanges do not interleave; write errors are discarded.
type TraceObserver struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTraceObserver returns a TraceObserver writing to w.
func NewTraceObserver(w io.Writer) *TraceObserver {
	return &TraceObserver{w: w}
}

// Observe writes the trace for one exchange.
func (t *TraceObserver) Observe(req *Request, resp *Response) {
	var b strings.Builder

	fmt.Fprintf(&b, "request: %s %s", req.Method, req.Path)
	if req.RawQuery != "" {
		fmt.Fprintf(&b, "?%s", req.RawQuery)
	}
	b.WriteByte('\n')
	for _, f := range req.Header {
		fmt.Fprintf(&b, "  %s: %s\n", f.Name, f.Value)
	}
	writeTraceBody(&b, decodeLossy(req.Body), len(req.Body))

	status := fmt.Sprintf("response: %d", resp.StatusCode)
	if resp.Overridden {
		status += " (overridden)"
	}
	b.WriteString(status)
	b.WriteByte('\n')
	for _, f := range resp.Header {
		fmt.Fprintf(&b, "  %s: %s\n", f.Name, f.Value)
	}
	writeTraceBody(&b, resp.Body, len(resp.Body))
	b.WriteByte('\n')

	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = io.WriteString(t.w, b.String())
}

func writeTraceBody(b *strings.Builder, body string, size int) {
	if size == 0 {
		return
	}
	fmt.Fprintf(b, "  body (%d bytes): %s\n", size, body)
}
