package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/getechod/echod/pkg/config"
)

// setInitVars fixes the init command's flag variables for a test and
// restores them afterwards.
func setInitVars(t *testing.T, output string, force bool) {
	t.Helper()
	origOutput, origForce, origInteractive := initOutput, initForce, initInteractive
	initOutput = output
	initForce = force
	initInteractive = false
	t.Cleanup(func() {
		initOutput, initForce, initInteractive = origOutput, origForce, origInteractive
	})
}

func TestRunInitCreatesFile(t *testing.T) {
	chdir(t, t.TempDir())
	setInitVars(t, "echod.yaml", false)

	out := captureStdout(t, func() error {
		return runInit(initCmd, nil)
	})

	data, err := os.ReadFile("echod.yaml")
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	contents := string(data)
	if !strings.Contains(contents, "# Generated by: echod init") {
		t.Error("missing generated-by header")
	}
	if !strings.Contains(contents, "host: 127.0.0.1") {
		t.Errorf("missing default host, got:\n%s", contents)
	}
	if !strings.Contains(contents, "port: 3001") {
		t.Errorf("missing default port, got:\n%s", contents)
	}

	if !strings.Contains(out, "Created echod.yaml") {
		t.Errorf("unexpected output: %s", out)
	}
	if !strings.Contains(out, "Next steps:") {
		t.Errorf("expected next steps hint, got: %s", out)
	}
}

func TestRunInitRefusesOverwrite(t *testing.T) {
	chdir(t, t.TempDir())
	setInitVars(t, "echod.yaml", false)

	if err := os.WriteFile("echod.yaml", []byte("host: 10.0.0.1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := runInit(initCmd, nil)
	if err == nil {
		t.Fatal("expected error when file exists")
	}
	if !strings.Contains(err.Error(), "file already exists") {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "--force") {
		t.Errorf("error should point at --force, got: %v", err)
	}

	// The original file is untouched.
	data, err := os.ReadFile("echod.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "10.0.0.1") {
		t.Error("existing file was modified")
	}
}

func TestRunInitForceOverwrites(t *testing.T) {
	chdir(t, t.TempDir())
	setInitVars(t, "echod.yaml", true)

	if err := os.WriteFile("echod.yaml", []byte("host: 10.0.0.1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	captureStdout(t, func() error {
		return runInit(initCmd, nil)
	})

	data, err := os.ReadFile("echod.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "host: 127.0.0.1") {
		t.Error("file was not overwritten with defaults")
	}
}

func TestRunInitCustomOutput(t *testing.T) {
	chdir(t, t.TempDir())
	setInitVars(t, "my-echod.yaml", false)

	out := captureStdout(t, func() error {
		return runInit(initCmd, nil)
	})

	if _, err := os.Stat("my-echod.yaml"); err != nil {
		t.Fatalf("custom output file not created: %v", err)
	}
	if !strings.Contains(out, "serve --config my-echod.yaml") {
		t.Errorf("next steps should name the custom file, got: %s", out)
	}
}

func TestGenerateYAMLWithComments(t *testing.T) {
	data, err := generateYAMLWithComments(config.Default())
	if err != nil {
		t.Fatalf("generateYAMLWithComments failed: %v", err)
	}

	// The header must stay valid YAML commentary.
	loaded, err := config.ParseYAML(data)
	if err != nil {
		t.Fatalf("generated file does not parse: %v", err)
	}
	if loaded.Host != config.DefaultHost {
		t.Errorf("host: got %s, want %s", loaded.Host, config.DefaultHost)
	}
	if loaded.Port != config.DefaultPort {
		t.Errorf("port: got %d, want %d", loaded.Port, config.DefaultPort)
	}
}
