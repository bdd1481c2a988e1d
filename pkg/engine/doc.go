// Package engine provides the core echo server engine for handling HTTP requests.
//
// # Architecture
//
// The engine is a single data plane: one listener, one handler, no
// routing. Every request flows through the same pipeline regardless of
// method or path:
//
//	┌────────────────────────────────────────────────────────┐
//	│                        Server                          │
//	│                                                        │
//	│   listener ──▶ Handler.ServeHTTP                       │
//	│                   │  read body                         │
//	│                   ▼                                    │
//	│               echo.Transform                           │
//	│                   │  classify / resolve / synthesize   │
//	│                   ▼                                    │
//	│               write response                           │
//	│                   │                                    │
//	│                   ├──▶ echo.Observer   (verbose trace) │
//	│                   └──▶ requestlog.Store (history)      │
//	└────────────────────────────────────────────────────────┘
//
// The engine package provides:
//   - Server: lifecycle management around a net/http server
//   - Handler: the HTTP handler that mirrors requests back
//   - Stats: cumulative request counters
//
// # Basic Usage
//
// Create and start a server, then stop it on shutdown:
//
//	settings := config.Default()
//	settings.Port = 3001
//
//	srv := engine.NewServer(settings, engine.WithLogger(logger))
//	if err := srv.Start(); err != nil {
//	    return err
//	}
//	defer srv.Stop()
//
// Request history is available while the server runs:
//
//	entries := srv.GetRequestLogs(&requestlog.Filter{Limit: 10})
//
// # Features
//
// The server supports:
//   - Full request mirroring with header and body echo
//   - Status and body overrides via control headers
//   - Read/write timeouts and an optional connection cap
//   - Request history with filtering
package engine
