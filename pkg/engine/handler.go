// Core HTTP request handler for the echo engine.

package engine

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/getechod/echod/pkg/echo"
	"github.com/getechod/echod/pkg/logging"
	"github.com/getechod/echod/pkg/requestlog"
)

// MaxRequestBodySize is the maximum allowed request body size (10MB).
// This prevents denial-of-service via oversized request bodies.
const MaxRequestBodySize = 10 << 20 // 10MB

// Stats reports cumulative request counters for a handler.
type Stats struct {
	// Requests is the total number of requests served.
	Requests uint64 `json:"requests"`

	// Overridden is the number of requests that carried a control
	// header.
	Overridden uint64 `json:"overridden"`
}

// Handler handles incoming HTTP requests and mirrors them back.
// Every path and method is treated identically.
type Handler struct {
	history  requestlog.Logger
	observer echo.Observer
	log      *slog.Logger // Operational logger for errors/warnings

	requests   atomic.Uint64
	overridden atomic.Uint64
}

// NewHandler creates a new Handler.
func NewHandler() *Handler {
	return &Handler{
		log: logging.Nop(), // Default to no-op logger
	}
}

// SetHistory sets the request history sink for the handler.
func (h *Handler) SetHistory(history requestlog.Logger) {
	h.history = history
}

// SetObserver sets the exchange observer. A nil observer disables
// tracing.
func (h *Handler) SetObserver(obs echo.Observer) {
	h.observer = obs
}

// SetOperationalLogger sets the operational logger for error/warning messages.
func (h *Handler) SetOperationalLogger(log *slog.Logger) {
	if log != nil {
		h.log = log
	} else {
		h.log = logging.Nop()
	}
}

// Stats returns the handler's cumulative counters.
func (h *Handler) Stats() Stats {
	return Stats{
		Requests:   h.requests.Load(),
		Overridden: h.overridden.Load(),
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	h.requests.Add(1)

	// Enforce maximum body size to prevent denial-of-service via
	// oversized payloads. MaxBytesReader returns an error when the
	// limit is exceeded, unlike LimitReader which silently truncates.
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodySize)

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.log.Warn("request body too large", "path", r.URL.Path, "limit", MaxRequestBodySize)
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			h.logRequest(startTime, r, headerFromRequest(r), nil, http.StatusRequestEntityTooLarge, "", false)
			return
		}
		// Echo whatever was read before the failure.
		h.log.Warn("failed to read request body", "path", r.URL.Path, "error", err)
	}

	req := &echo.Request{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   headerFromRequest(r),
		Body:     bodyBytes,
	}

	resp := echo.Transform(req)
	if resp.Overridden {
		h.overridden.Add(1)
	}

	h.writeResponse(w, resp)

	if h.observer != nil {
		h.observer.Observe(req, resp)
	}
	h.logRequest(startTime, r, req.Header, bodyBytes, resp.StatusCode, resp.Body, resp.Overridden)
}

// headerFromRequest flattens an incoming header map into wire fields.
// net/http does not retain arrival order across different names, so
// fields are emitted in sorted name order; values within a name keep
// their wire order.
func headerFromRequest(r *http.Request) echo.Header {
	names := make([]string, 0, len(r.Header))
	for name := range r.Header {
		names = append(names, name)
	}
	sort.Strings(names)

	header := make(echo.Header, 0, len(r.Header))
	for _, name := range names {
		for _, value := range r.Header[name] {
			header.Add(name, value)
		}
	}
	return header
}

// writeResponse writes a synthesized echo response to the wire.
func (h *Handler) writeResponse(w http.ResponseWriter, resp *echo.Response) {
	hdr := w.Header()
	hasContentType := false
	for _, f := range resp.Header {
		if strings.EqualFold(f.Name, "Content-Type") {
			hasContentType = true
		}
		hdr.Add(f.Name, f.Value)
	}
	if !hasContentType {
		// Suppress content sniffing so the response carries exactly
		// the echoed headers.
		hdr["Content-Type"] = nil
	}

	w.WriteHeader(resp.StatusCode)
	if len(resp.Body) > 0 {
		if _, err := io.WriteString(w, resp.Body); err != nil {
			h.log.Warn("failed to write response body", "error", err)
		}
	}
}

// logRequest records an exchange in the history store.
func (h *Handler) logRequest(startTime time.Time, r *http.Request, header echo.Header, bodyBytes []byte, statusCode int, responseBody string, overridden bool) {
	if h.history == nil {
		return
	}

	headers := make([]requestlog.HeaderPair, len(header))
	for i, f := range header {
		headers[i] = requestlog.HeaderPair{Name: f.Name, Value: f.Value}
	}
	body, bodySize := requestlog.TruncateBody(string(bodyBytes))
	respBody, _ := requestlog.TruncateBody(responseBody)

	h.history.Log(&requestlog.Entry{
		Timestamp:    startTime,
		Method:       r.Method,
		Path:         r.URL.Path,
		QueryString:  r.URL.RawQuery,
		Headers:      headers,
		Body:         body,
		BodySize:     bodySize,
		RemoteAddr:   r.RemoteAddr,
		Status:       statusCode,
		ResponseBody: respBody,
		Overridden:   overridden,
		DurationMs:   int(time.Since(startTime).Milliseconds()),
	})
}
