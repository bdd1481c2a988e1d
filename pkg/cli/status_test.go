package cli

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything fn printed.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	fnErr := fn()

	_ = w.Close()
	os.Stdout = orig

	out, readErr := io.ReadAll(r)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if fnErr != nil {
		t.Fatalf("unexpected error: %v", fnErr)
	}
	return string(out)
}

func setJSONOutput(t *testing.T, v bool) {
	t.Helper()
	orig := jsonOutput
	jsonOutput = v
	t.Cleanup(func() { jsonOutput = orig })
}

func setStatusPidFile(t *testing.T, path string) {
	t.Helper()
	orig := statusPidFile
	statusPidFile = path
	t.Cleanup(func() { statusPidFile = orig })
}

// listenLoopback opens a listener on an ephemeral loopback port and
// returns the port number.
func listenLoopback(t *testing.T) (net.Listener, int) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	_, portStr, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatal(err)
	}
	return ln, port
}

func TestBuildStatusOutput(t *testing.T) {
	ln, port := listenLoopback(t)
	defer ln.Close()

	info := &PIDFile{
		PID:       os.Getpid(),
		StartTime: time.Now().Add(-90 * time.Second),
		Version:   "1.0.0",
		Host:      "127.0.0.1",
		Port:      port,
		Verbose:   true,
	}

	status := buildStatusOutput(info)
	if !status.Running {
		t.Error("status should report running")
	}
	if status.PID != os.Getpid() {
		t.Errorf("pid: got %d, want %d", status.PID, os.Getpid())
	}
	if status.URL != "http://127.0.0.1:"+strconv.Itoa(port) {
		t.Errorf("unexpected URL: %s", status.URL)
	}
	if status.Uptime != "1m 30s" {
		t.Errorf("uptime: got %s, want 1m 30s", status.Uptime)
	}
	if !status.Reachable {
		t.Error("server behind a live listener should be reachable")
	}
	if !status.Verbose {
		t.Error("verbose flag lost")
	}
}

func TestProbeServer(t *testing.T) {
	ln, port := listenLoopback(t)

	info := &PIDFile{Host: "127.0.0.1", Port: port}
	if !probeServer(info) {
		t.Error("probe should succeed while the listener is up")
	}

	_ = ln.Close()
	if probeServer(info) {
		t.Error("probe should fail after the listener closes")
	}
}

func TestRunStatusNotRunning(t *testing.T) {
	setStatusPidFile(t, filepath.Join(t.TempDir(), "missing.pid"))
	setJSONOutput(t, false)

	out := captureStdout(t, func() error {
		return runStatus(statusCmd, nil)
	})
	if !strings.Contains(out, "echod is not running") {
		t.Errorf("unexpected output: %s", out)
	}
	if !strings.Contains(out, "To start: echod serve") {
		t.Errorf("expected start hint, got: %s", out)
	}
}

func TestRunStatusNotRunningJSON(t *testing.T) {
	setStatusPidFile(t, filepath.Join(t.TempDir(), "missing.pid"))
	setJSONOutput(t, true)

	out := captureStdout(t, func() error {
		return runStatus(statusCmd, nil)
	})
	if !strings.Contains(out, `"running": false`) {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestRunStatusRunningJSON(t *testing.T) {
	ln, port := listenLoopback(t)
	defer ln.Close()

	path := filepath.Join(t.TempDir(), "echod.pid")
	info := &PIDFile{
		PID:       os.Getpid(),
		StartTime: time.Now(),
		Version:   "1.0.0",
		Host:      "127.0.0.1",
		Port:      port,
	}
	if err := WritePIDFile(path, info); err != nil {
		t.Fatal(err)
	}
	setStatusPidFile(t, path)
	setJSONOutput(t, true)

	out := captureStdout(t, func() error {
		return runStatus(statusCmd, nil)
	})
	if !strings.Contains(out, `"running": true`) {
		t.Errorf("unexpected output: %s", out)
	}
	if !strings.Contains(out, `"reachable": true`) {
		t.Errorf("expected reachable server, got: %s", out)
	}
	if !strings.Contains(out, `"url": "http://127.0.0.1:`+strconv.Itoa(port)+`"`) {
		t.Errorf("unexpected url in output: %s", out)
	}
}
