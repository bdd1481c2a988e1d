package config

import (
	"fmt"

	"github.com/getechod/echod/pkg/bindaddr"
)

// Default values for server settings.
const (
	DefaultHost          = "127.0.0.1"
	DefaultPort          = 3001
	DefaultReadTimeout   = 30
	DefaultWriteTimeout  = 30
	DefaultMaxLogEntries = 1000
)

// Settings holds the server configuration for echod.
type Settings struct {
	// Host is the IP address to bind. Must be a literal IP.
	Host string `json:"host" yaml:"host"`

	// Port is the TCP port to listen on (1-65535).
	Port int `json:"port" yaml:"port"`

	// Verbose enables request/response tracing on stdout.
	Verbose bool `json:"verbose" yaml:"verbose"`

	// ReadTimeout is the HTTP read timeout in seconds.
	ReadTimeout int `json:"readTimeout,omitempty" yaml:"readTimeout,omitempty"`

	// WriteTimeout is the HTTP write timeout in seconds.
	WriteTimeout int `json:"writeTimeout,omitempty" yaml:"writeTimeout,omitempty"`

	// MaxConnections caps concurrent client connections (0 = unlimited).
	MaxConnections int `json:"maxConnections,omitempty" yaml:"maxConnections,omitempty"`

	// MaxLogEntries is the maximum number of request history entries to retain.
	MaxLogEntries int `json:"maxLogEntries,omitempty" yaml:"maxLogEntries,omitempty"`

	// LogLevel is the operational log level (debug, info, warn, error).
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`

	// LogFormat is the operational log format (text, json).
	LogFormat string `json:"logFormat,omitempty" yaml:"logFormat,omitempty"`
}

// Default returns the built-in server settings.
func Default() *Settings {
	return &Settings{
		Host:          DefaultHost,
		Port:          DefaultPort,
		Verbose:       false,
		ReadTimeout:   DefaultReadTimeout,
		WriteTimeout:  DefaultWriteTimeout,
		MaxLogEntries: DefaultMaxLogEntries,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// BindAddress validates Host and Port together and returns the
// combined listen address.
func (s *Settings) BindAddress() (bindaddr.BindAddress, error) {
	addr, err := bindaddr.ParseHost(s.Host)
	if err != nil {
		return bindaddr.BindAddress{}, err
	}
	port, err := bindaddr.ParsePortNumber(s.Port)
	if err != nil {
		return bindaddr.BindAddress{}, err
	}
	return bindaddr.BindAddress{Addr: addr, Port: port}, nil
}

// Validate checks that the settings describe a server that can start.
func (s *Settings) Validate() error {
	if _, err := s.BindAddress(); err != nil {
		return err
	}
	if s.ReadTimeout < 0 {
		return fmt.Errorf("readTimeout must not be negative, got %d", s.ReadTimeout)
	}
	if s.WriteTimeout < 0 {
		return fmt.Errorf("writeTimeout must not be negative, got %d", s.WriteTimeout)
	}
	if s.MaxConnections < 0 {
		return fmt.Errorf("maxConnections must not be negative, got %d", s.MaxConnections)
	}
	if s.MaxLogEntries < 0 {
		return fmt.Errorf("maxLogEntries must not be negative, got %d", s.MaxLogEntries)
	}
	return nil
}
