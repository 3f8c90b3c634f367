package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
		{"ERROR", ErrorLevel},
		{"bogus", WarnLevel},
		{"", WarnLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	Initialize(Config{Level: WarnLevel})
	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below warn should be filtered, got %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("warn and error messages should be logged, got %q", out)
	}
}

func TestJSONOutput(t *testing.T) {
	Initialize(Config{Level: InfoLevel, JSON: true})
	var buf bytes.Buffer
	SetOutput(&buf)

	Info("structured", String("file", "COMMIT_EDITMSG"), Bool("valid", false))

	line := strings.TrimSpace(buf.String())
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v\n%s", err, line)
	}
	if entry["level"] != "INFO" {
		t.Errorf("expected level INFO, got %v", entry["level"])
	}
	if entry["message"] != "structured" {
		t.Errorf("expected message field, got %v", entry["message"])
	}
	fields, ok := entry["fields"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected fields object, got %v", entry["fields"])
	}
	if fields["file"] != "COMMIT_EDITMSG" {
		t.Errorf("expected file field, got %v", fields["file"])
	}
}

func TestPrettyFields(t *testing.T) {
	Initialize(Config{Level: InfoLevel})
	var buf bytes.Buffer
	SetOutput(&buf)

	Warn("invalid message", Int("errors", 2))

	out := buf.String()
	if !strings.Contains(out, "errors=2") {
		t.Errorf("expected fields in pretty output, got %q", out)
	}
	if !strings.Contains(out, "commitcheck:") {
		t.Errorf("expected component prefix in output, got %q", out)
	}
}
