package logging

import (
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		// Lowercase
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},

		// Uppercase
		{"DEBUG", LevelDebug},
		{"INFO", LevelInfo},
		{"WARN", LevelWarn},
		{"WARNING", LevelWarn},
		{"ERROR", LevelError},

		// Mixed case (the fix: these should all work now)
		{"Debug", LevelDebug},
		{"Info", LevelInfo},
		{"Warn", LevelWarn},
		{"Warning", LevelWarn},
		{"Error", LevelError},
		{"dEbUg", LevelDebug},

		// Empty string defaults to Info
		{"", LevelInfo},

		// Unrecognized defaults to Info
		{"trace", LevelInfo},
		{"fatal", LevelInfo},
		{"unknown", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"Json", FormatJSON},
		{"text", FormatText},
		{"TEXT", FormatText},
		{"", FormatText},
		{"yaml", FormatText}, // unrecognized defaults to text
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseFormat(tt.input)
			if result != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNew_FormatSelection(t *testing.T) {
	var buf strings.Builder
	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})
	logger.Info("hello", "port", 3001)

	out := buf.String()
	if !strings.HasPrefix(out, "{") {
		t.Errorf("JSON format expected, got: %s", out)
	}
	if !strings.Contains(out, `"port":3001`) {
		t.Errorf("attribute missing from JSON output: %s", out)
	}

	buf.Reset()
	logger = New(Config{Level: LevelInfo, Format: FormatText, Output: &buf})
	logger.Info("hello", "port", 3001)

	out = buf.String()
	if strings.HasPrefix(out, "{") {
		t.Errorf("text format expected, got: %s", out)
	}
	if !strings.Contains(out, "port=3001") {
		t.Errorf("attribute missing from text output: %s", out)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf strings.Builder
	logger := New(Config{Level: LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("sub-level records leaked: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn record missing: %s", out)
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	if logger == nil {
		t.Fatal("Nop returned nil")
	}
	// Must not panic.
	logger.Info("discarded")
	logger.Error("discarded")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != LevelInfo {
		t.Errorf("default level: got %v", cfg.Level)
	}
	if cfg.Format != FormatText {
		t.Errorf("default format: got %v", cfg.Format)
	}
	if cfg.Output != os.Stderr {
		t.Error("default output should be stderr")
	}
	if cfg.AddSource {
		t.Error("AddSource should default to false")
	}
}
