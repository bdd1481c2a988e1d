// Package cliconfig provides environment-variable configuration for
// the echod CLI.
//
// It implements a layered configuration system with the following
// precedence (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (ECHOD_* prefix)
//  3. Config file (--config flag, ECHOD_CONFIG, or ./echod.yaml)
//  4. Default values
//
// The command layer owns flag and file handling; this package covers
// the environment layer and records the source of each applied value
// for debugging.
package cliconfig
