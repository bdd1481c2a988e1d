package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/getechod/echod/internal/cliconfig"
	"github.com/getechod/echod/pkg/bindaddr"
	"github.com/getechod/echod/pkg/cli/internal/output"
	"github.com/getechod/echod/pkg/cli/internal/ports"
	"github.com/getechod/echod/pkg/config"
	"github.com/getechod/echod/pkg/echo"
	"github.com/getechod/echod/pkg/engine"
	"github.com/getechod/echod/pkg/logging"

	"github.com/spf13/cobra"
)

// serveFlagVals is the package-level instance bound to cobra flags.
var serveFlagVals serveFlags

// serveFlags holds all parsed command-line flags for the serve command.
// Hostname and port stay strings so flag input runs through the same
// bindaddr validation as every other configuration source.
type serveFlags struct {
	// Core server flags
	hostname string
	port     string
	verbose  bool

	// Configuration file
	configFile string

	// HTTP tuning flags
	readTimeout    int
	writeTimeout   int
	maxConnections int
	maxLogEntries  int

	// Logging flags
	logLevel  string
	logFormat string

	// Process management
	pidFile string
}

// serveCmd represents the serve command. The root command delegates here,
// so `echod` and `echod serve` behave identically.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the echo server (foreground)",
	Long: `Start the echo server.

The server answers every request on every path by mirroring the request
back: response headers repeat the request headers, the response body
repeats the request body. Requests carrying internal.status-code or
internal.response-body headers have their response steered instead.

Settings are layered in ascending precedence: built-in defaults, the
configuration file, ECHOD_* environment variables, explicit flags.`,
	Example: `  # Start with defaults (127.0.0.1:3001)
  echod serve

  # Bind all interfaces on a custom port
  echod serve --hostname 0.0.0.0 --port 8080

  # Trace every exchange on stdout
  echod serve --verbose

  # Start from a config file
  echod serve --config echod.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addServeFlags(serveCmd)
}

// addServeFlags binds the serve flag set to cmd. It is installed on both
// rootCmd and serveCmd; the flags share one backing struct, and the
// command that actually ran reports which of them were set.
func addServeFlags(cmd *cobra.Command) {
	f := &serveFlagVals

	// Core server flags
	cmd.Flags().StringVarP(&f.hostname, "hostname", "n", config.DefaultHost, "IP address to bind (must be a literal IP)")
	cmd.Flags().StringVarP(&f.port, "port", "p", strconv.Itoa(config.DefaultPort), "TCP port to listen on")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Trace each request/response exchange on stdout")

	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "Path to configuration file (default: ./"+cliconfig.DefaultConfigFile+")")

	// HTTP tuning flags
	cmd.Flags().IntVar(&f.readTimeout, "read-timeout", config.DefaultReadTimeout, "Read timeout in seconds")
	cmd.Flags().IntVar(&f.writeTimeout, "write-timeout", config.DefaultWriteTimeout, "Write timeout in seconds")
	cmd.Flags().IntVar(&f.maxConnections, "max-connections", 0, "Maximum concurrent connections (0 = unlimited)")
	cmd.Flags().IntVar(&f.maxLogEntries, "max-log-entries", config.DefaultMaxLogEntries, "Maximum request history entries")

	// Logging flags
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "text", "Log format (text, json)")

	// Process management
	cmd.Flags().StringVar(&f.pidFile, "pid-file", DefaultPIDPath(), "Path to PID file (empty = disabled)")
}

// resolveSettings layers all configuration sources into a final Settings
// value. Precedence, lowest to highest: defaults, config file, ECHOD_*
// environment variables, explicit flags. The returned sources map records
// where each non-file override came from.
func resolveSettings(cmd *cobra.Command, f *serveFlags) (*config.Settings, map[string]string, error) {
	settings := config.Default()
	sources := map[string]string{}

	// Config file. A file named explicitly (flag or ECHOD_CONFIG) must
	// load; the conventional ./echod.yaml is best-effort.
	path := f.configFile
	explicit := cmd.Flags().Changed("config")
	if !explicit {
		if envPath := cliconfig.ConfigFileFromEnv(); envPath != "" {
			path = envPath
			explicit = true
		}
	}
	if !explicit {
		path = cliconfig.DefaultConfigFile
	}
	loaded, err := config.Load(path)
	switch {
	case err == nil:
		settings = loaded
	case explicit:
		return nil, nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	case errors.Is(err, config.ErrFileNotFound):
		// No config file in the working directory; defaults stand.
	default:
		output.Warn("ignoring config file %s: %v", path, err)
	}

	// Environment overrides.
	cliconfig.ApplyEnv(settings, sources)

	// Explicit flags win over everything.
	flagSet := func(name, field string) bool {
		if cmd.Flags().Changed(name) {
			sources[field] = cliconfig.SourceFlag
			return true
		}
		return false
	}
	if flagSet("hostname", "host") {
		settings.Host = f.hostname
	}
	if flagSet("port", "port") {
		port, err := bindaddr.ParsePort(f.port)
		if err != nil {
			return nil, nil, err
		}
		settings.Port = int(port)
	}
	if flagSet("verbose", "verbose") {
		settings.Verbose = f.verbose
	}
	if flagSet("read-timeout", "readTimeout") {
		settings.ReadTimeout = f.readTimeout
	}
	if flagSet("write-timeout", "writeTimeout") {
		settings.WriteTimeout = f.writeTimeout
	}
	if flagSet("max-connections", "maxConnections") {
		settings.MaxConnections = f.maxConnections
	}
	if flagSet("max-log-entries", "maxLogEntries") {
		settings.MaxLogEntries = f.maxLogEntries
	}
	if flagSet("log-level", "logLevel") {
		settings.LogLevel = f.logLevel
	}
	if flagSet("log-format", "logFormat") {
		settings.LogFormat = f.logFormat
	}

	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}

	return settings, sources, nil
}

// runServe is the RunE for both rootCmd and serveCmd.
func runServe(cmd *cobra.Command, args []string) error {
	f := &serveFlagVals

	settings, sources, err := resolveSettings(cmd, f)
	if err != nil {
		return err
	}

	// Initialize structured logger
	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(settings.LogLevel),
		Format: logging.ParseFormat(settings.LogFormat),
	})
	for field, src := range sources {
		log.Debug("setting overridden", "setting", field, "source", src)
	}

	// Check the port is free before committing to startup
	if err := ports.Check(settings.Host, settings.Port); err != nil {
		return formatPortError(settings.Port, err)
	}

	// Create and configure the echo server
	opts := []engine.ServerOption{
		engine.WithLogger(log.With("component", "engine")),
	}
	if settings.Verbose {
		opts = append(opts, engine.WithObserver(echo.NewTraceObserver(os.Stdout)))
	}
	server := engine.NewServer(settings, opts...)

	if err := server.Start(); err != nil {
		if isAddrInUseError(err) {
			return formatPortError(settings.Port, err)
		}
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	// Write PID file for process management
	if f.pidFile != "" {
		if err := writePIDFileForServe(f.pidFile, settings); err != nil {
			output.Warn("failed to write PID file: %v", err)
		}
	}

	printStartupMessage(settings)

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("\nShutting down...")

	if f.pidFile != "" {
		if err := RemovePIDFile(f.pidFile); err != nil {
			output.Warn("failed to remove PID file: %v", err)
		}
	}

	if err := server.Stop(); err != nil {
		output.Warn("server shutdown error: %v", err)
	}

	fmt.Println("Server stopped")
	return nil
}

// writePIDFileForServe records the running server in a PID file.
func writePIDFileForServe(path string, settings *config.Settings) error {
	return WritePIDFile(path, &PIDFile{
		PID:       os.Getpid(),
		StartTime: time.Now(),
		Version:   Version,
		Commit:    Commit,
		Host:      settings.Host,
		Port:      settings.Port,
		Verbose:   settings.Verbose,
	})
}

// formatPortError formats a port availability error with suggestions.
func formatPortError(port int, err error) error {
	if err != nil {
		if isPermissionDeniedError(err) {
			return fmt.Errorf("could not bind port %d: %v (ports below 1024 need elevated privileges)", port, err)
		}
		if !isAddrInUseError(err) {
			return fmt.Errorf("failed to check port %d availability: %w", port, err)
		}
	}

	return fmt.Errorf(`port %d already in use

Suggestions:
  - Use a different port: echod --port %d
  - Check what's using the port: lsof -i :%d
  - Stop the other process and try again`, port, port+1, port)
}

// printStartupMessage prints the server startup information.
func printStartupMessage(settings *config.Settings) {
	bind, _ := settings.BindAddress()

	fmt.Printf("echod listening on http://%s\n", bind)
	fmt.Println()
	fmt.Println("Every request is echoed back with its headers and body.")
	fmt.Println("Control headers:")
	fmt.Println("  internal.status-code    force the response status code")
	fmt.Println("  internal.response-body  replace the echoed body")
	if settings.Verbose {
		fmt.Println()
		fmt.Println("Verbose tracing is on: exchanges are written to stdout.")
	}
	fmt.Println()
	fmt.Println("Press Ctrl+C to stop")
}
