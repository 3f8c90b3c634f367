package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/commitcheck/commitcheck/pkg/exitcode"
)

func TestInit(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execRoot(t, []string{"init"})
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, "Wrote "+configFileName) {
		t.Errorf("expected confirmation line, got %q", out)
	}

	data, err := os.ReadFile(configFileName)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	for _, want := range []string{"# commitcheck configuration", "format: conventional", "force_scope: false", "emojis: []"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected config to contain %q, got:\n%s", want, content)
		}
	}
}

func TestInit_RefusesOverwrite(t *testing.T) {
	chdir(t, t.TempDir())

	if err := os.WriteFile(configFileName, []byte("format: gitmoji\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execRoot(t, []string{"init"})
	if code := exitCodeOf(t, err); code != exitcode.ConfigError {
		t.Fatalf("expected exit %d without --force, got %d", exitcode.ConfigError, code)
	}
	data, _ := os.ReadFile(configFileName)
	if string(data) != "format: gitmoji\n" {
		t.Errorf("existing config was modified: %q", string(data))
	}

	if _, err := execRoot(t, []string{"init", "--force"}); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
	data, _ = os.ReadFile(configFileName)
	if !strings.Contains(string(data), "format: conventional") {
		t.Errorf("expected overwritten config, got:\n%s", string(data))
	}
}
