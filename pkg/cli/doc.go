// Package cli provides the command-line interface for echod.
//
// The cli package implements all CLI commands for running and managing
// the echo server:
//   - serve: Start the echo server in the foreground (also the default
//     command, so a bare `echod` serves immediately)
//   - init: Create a starter configuration file
//   - stop: Stop a running server via its PID file
//   - status: Show whether a server is running and where it listens
//   - version: Show echod version information
//
// Configuration is layered from four sources, in ascending precedence:
// built-in defaults, a configuration file (--config, ECHOD_CONFIG, or
// ./echod.yaml in the working directory), ECHOD_* environment variables,
// and explicit flags. Host and port input is validated through
// pkg/bindaddr regardless of which source supplied it; a value that does
// not survive validation stops startup with a nonzero exit.
//
// The serve command runs the server in the foreground, shuts down
// gracefully on SIGINT/SIGTERM, and records the process in a PID file
// (~/.echod/echod.pid) that stop and status read.
//
// Usage:
//
//	echod --hostname 0.0.0.0 --port 8080
//	echod serve --verbose
//	echod init -o echod.yaml
//	echod status --json
//	echod stop --force
package cli
