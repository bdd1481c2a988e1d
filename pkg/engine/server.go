// Package engine provides the core echo server engine.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/netutil"

	"github.com/getechod/echod/pkg/config"
	"github.com/getechod/echod/pkg/echo"
	"github.com/getechod/echod/pkg/logging"
	"github.com/getechod/echod/pkg/requestlog"
)

// Server is the main echo server engine.
type Server struct {
	settings   *config.Settings
	history    requestlog.Store
	observer   echo.Observer
	log        *slog.Logger // For operational logging (developer-facing)
	handler    *Handler
	httpServer *http.Server
	listener   net.Listener
	mu         sync.RWMutex
	running    bool
	startTime  time.Time
}

// ServerOption is a functional option for configuring a Server.
type ServerOption func(*Server)

// WithLogger sets the operational logger for the server.
func WithLogger(log *slog.Logger) ServerOption {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithObserver sets an observer that sees every completed exchange.
// Used by verbose mode to print request/response traces.
func WithObserver(obs echo.Observer) ServerOption {
	return func(s *Server) {
		s.observer = obs
	}
}

// WithHistory sets the request history store for the server.
// When not set, an in-memory store sized by MaxLogEntries is used.
func WithHistory(history requestlog.Store) ServerOption {
	return func(s *Server) {
		if history != nil {
			s.history = history
		}
	}
}

// NewServer creates a new Server with the given settings.
// Optional ServerOption functions can be passed to customize the server.
func NewServer(settings *config.Settings, opts ...ServerOption) *Server {
	if settings == nil {
		settings = config.Default()
	}

	s := &Server{
		settings: settings,
		log:      logging.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.history == nil {
		maxEntries := settings.MaxLogEntries
		if maxEntries <= 0 {
			maxEntries = config.DefaultMaxLogEntries
		}
		s.history = requestlog.NewMemoryStore(maxEntries)
	}

	handler := NewHandler()
	handler.SetOperationalLogger(s.log)
	handler.SetHistory(s.history)
	handler.SetObserver(s.observer)
	s.handler = handler

	return s
}

// Start begins listening and serving requests. It returns once the
// listener is bound; serving continues on a background goroutine.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("server is already running")
	}

	bind, err := s.settings.BindAddress()
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", bind.String())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", bind, err)
	}
	if s.settings.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, s.settings.MaxConnections)
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler:      s.handler,
		ReadTimeout:  time.Duration(s.settings.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.settings.WriteTimeout) * time.Second,
	}

	s.log.Info("starting HTTP server", "addr", listener.Addr().String())
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("HTTP server error", "error", err)
		}
	}()

	s.running = true
	s.startTime = time.Now()
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = fmt.Errorf("HTTP shutdown: %w", shutdownErr)
		}
	}

	stats := s.handler.Stats()
	s.log.Info("engine stopped",
		"requests", stats.Requests,
		"overridden", stats.Overridden,
	)

	s.running = false
	return err
}

// IsRunning returns whether the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Uptime returns the server uptime in seconds.
func (s *Server) Uptime() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.running {
		return 0
	}
	return int(time.Since(s.startTime).Seconds())
}

// Addr returns the address the server is listening on, or "" when the
// server has not started.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Settings returns the server settings.
func (s *Server) Settings() *config.Settings {
	return s.settings
}

// Stats returns cumulative request counters.
func (s *Server) Stats() Stats {
	return s.handler.Stats()
}

// GetRequestLogs returns request history entries, optionally filtered.
func (s *Server) GetRequestLogs(filter *requestlog.Filter) []*requestlog.Entry {
	if s.history == nil {
		return nil
	}
	return s.history.List(filter)
}

// GetRequestLog returns a single history entry by ID.
func (s *Server) GetRequestLog(id string) *requestlog.Entry {
	if s.history == nil {
		return nil
	}
	return s.history.Get(id)
}

// ClearRequestLogs removes all history entries.
func (s *Server) ClearRequestLogs() {
	if s.history != nil {
		s.history.Clear()
	}
}
