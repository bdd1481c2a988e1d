// Package config provides configuration types and utilities for the
// echo server.
//
// Settings is the single configuration structure: the listen address,
// timeouts, connection and history limits, and operational logging
// options. Defaults come from Default(), and a file only needs to name
// the values it changes.
//
// File-based Configuration:
//
// Settings can be loaded from YAML or JSON files:
//
//	settings, err := config.Load("echod.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A YAML file looks like:
//
//	host: 127.0.0.1
//	port: 3001
//	verbose: false
//	maxLogEntries: 1000
//
// Loading does not validate: the command layer applies environment and
// flag overrides on top of the file before calling Validate, so a
// value the file gets wrong can still be corrected by a flag.
package config
