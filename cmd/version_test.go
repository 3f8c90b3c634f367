package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	out, err := execRoot(t, []string{"version"})
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "commitcheck ") {
		t.Errorf("expected text version line, got %q", out)
	}
}

func TestVersion_JSON(t *testing.T) {
	out, err := execRoot(t, []string{"version", "--json"})
	if err != nil {
		t.Fatalf("version --json failed: %v", err)
	}

	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	for _, key := range []string{"version", "goVersion", "platform"} {
		if info[key] == "" {
			t.Errorf("expected %q field in JSON output, got %v", key, info)
		}
	}
}
