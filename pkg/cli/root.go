package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// jsonOutput is the persistent --json flag shared by subcommands.
	jsonOutput bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
// Its RunE delegates to serve, so a bare `echod -n 0.0.0.0 -p 8080 -v`
// starts the server without spelling out the subcommand.
var rootCmd = &cobra.Command{
	Use:   "echod",
	Short: "echod is a diagnostic HTTP echo server",
	Long: `echod starts an HTTP server that mirrors every request back to the caller:
the response repeats the request's headers and body, so clients can see
exactly what arrived on the wire.

Two control headers steer the response instead of being echoed:
  internal.status-code    force the response status code
  internal.response-body  replace the echoed body

Configuration can be provided via flags, ECHOD_* environment variables,
or a configuration file (default: ./echod.yaml).`,
	Args:          cobra.NoArgs,
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")

	// The root command doubles as serve, so it carries the serve flag set.
	addServeFlags(rootCmd)
}
