package cliconfig

import (
	"os"
	"strconv"

	"github.com/getechod/echod/pkg/config"
)

// DefaultConfigFile is the file looked up in the working directory when
// neither --config nor ECHOD_CONFIG names one.
const DefaultConfigFile = "echod.yaml"

// Environment variable names
const (
	EnvHost           = "ECHOD_HOST"
	EnvPort           = "ECHOD_PORT"
	EnvVerbose        = "ECHOD_VERBOSE"
	EnvConfig         = "ECHOD_CONFIG"
	EnvReadTimeout    = "ECHOD_READ_TIMEOUT"
	EnvWriteTimeout   = "ECHOD_WRITE_TIMEOUT"
	EnvMaxConnections = "ECHOD_MAX_CONNECTIONS"
	EnvMaxLogEntries  = "ECHOD_MAX_LOG_ENTRIES"
	EnvLogLevel       = "ECHOD_LOG_LEVEL"
	EnvLogFormat      = "ECHOD_LOG_FORMAT"
)

// Configuration value sources, in ascending precedence.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// ApplyEnv overlays environment variables onto settings. It only sets
// values that are present in the environment; unparseable numeric
// values are skipped so a stray variable cannot keep the server from
// starting. When sources is non-nil the origin of each applied value
// is recorded in it.
func ApplyEnv(settings *config.Settings, sources map[string]string) {
	record := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	// ECHOD_HOST
	if v := os.Getenv(EnvHost); v != "" {
		settings.Host = v
		record("host")
	}

	// ECHOD_PORT
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			settings.Port = port
			record("port")
		}
	}

	// ECHOD_VERBOSE
	if v := os.Getenv(EnvVerbose); v != "" {
		settings.Verbose = v == "true" || v == "1" || v == "yes"
		record("verbose")
	}

	// ECHOD_READ_TIMEOUT
	if v := os.Getenv(EnvReadTimeout); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			settings.ReadTimeout = timeout
			record("readTimeout")
		}
	}

	// ECHOD_WRITE_TIMEOUT
	if v := os.Getenv(EnvWriteTimeout); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			settings.WriteTimeout = timeout
			record("writeTimeout")
		}
	}

	// ECHOD_MAX_CONNECTIONS
	if v := os.Getenv(EnvMaxConnections); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			settings.MaxConnections = n
			record("maxConnections")
		}
	}

	// ECHOD_MAX_LOG_ENTRIES
	if v := os.Getenv(EnvMaxLogEntries); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			settings.MaxLogEntries = n
			record("maxLogEntries")
		}
	}

	// ECHOD_LOG_LEVEL
	if v := os.Getenv(EnvLogLevel); v != "" {
		settings.LogLevel = v
		record("logLevel")
	}

	// ECHOD_LOG_FORMAT
	if v := os.Getenv(EnvLogFormat); v != "" {
		settings.LogFormat = v
		record("logFormat")
	}
}

// ConfigFileFromEnv returns the config file path from the environment.
// Returns empty string if not set.
func ConfigFileFromEnv() string {
	return os.Getenv(EnvConfig)
}
