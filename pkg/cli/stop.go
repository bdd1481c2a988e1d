package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	stopPidFile string
	stopForce   bool
	stopTimeout int
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop a running echod server",
	Long: `Stop the running echod server.

The server is located through its PID file and asked to shut down
gracefully. Use --force to kill it outright.`,
	Example: `  # Graceful stop
  echod stop

  # Force stop
  echod stop --force

  # Stop with custom PID file
  echod stop --pid-file /tmp/echod.pid

  # Allow more time for graceful shutdown
  echod stop --timeout 30`,
	Args: cobra.NoArgs,
	RunE: runStop,
}

func init() {
	rootCmd.AddCommand(stopCmd)

	stopCmd.Flags().StringVar(&stopPidFile, "pid-file", "", "Path to PID file (default: ~/.echod/echod.pid)")
	stopCmd.Flags().BoolVarP(&stopForce, "force", "f", false, "Send "+signalKillName()+" instead of "+signalTermName())
	stopCmd.Flags().IntVar(&stopTimeout, "timeout", 10, "Seconds to wait for graceful shutdown")
}

func runStop(cmd *cobra.Command, args []string) error {
	pidPath := stopPidFile
	if pidPath == "" {
		pidPath = DefaultPIDPath()
	}

	info, err := ReadPIDFile(pidPath)
	if err != nil {
		return fmt.Errorf("echod is not running (no PID file found at %s)", pidPath)
	}

	if !info.IsRunning() {
		// Stale PID file - clean it up
		_ = RemovePIDFile(pidPath)
		return errors.New("echod is not running (stale PID file removed)")
	}

	process, err := os.FindProcess(info.PID)
	if err != nil {
		return fmt.Errorf("failed to find process %d: %w", info.PID, err)
	}

	sig := signalTerm
	sigName := signalTermName()
	if stopForce {
		sig = signalKill
		sigName = signalKillName()
	}

	fmt.Printf("Stopping echod (PID %d) with %s... ", info.PID, sigName)

	if err := process.Signal(sig); err != nil {
		fmt.Println("failed")
		return fmt.Errorf("failed to send signal: %w", err)
	}

	// A force kill is not waited on gracefully
	if stopForce {
		fmt.Println("done")
		time.Sleep(100 * time.Millisecond)
		_ = RemovePIDFile(pidPath)
		return nil
	}

	// Wait for the process to exit
	deadline := time.Now().Add(time.Duration(stopTimeout) * time.Second)
	for time.Now().Before(deadline) {
		if !checkProcessRunning(info.PID) {
			fmt.Println("done")
			_ = RemovePIDFile(pidPath)
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}

	fmt.Println("timeout")
	fmt.Printf("\nProcess did not stop within %d seconds.\n", stopTimeout)
	fmt.Println("Try: echod stop --force")
	return errors.New("timeout waiting for process to stop")
}
