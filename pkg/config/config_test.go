package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, ".commitcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, FormatConventional, cfg.Format)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Conventional.Types)
	assert.Empty(t, cfg.Conventional.Scopes)
	assert.False(t, cfg.Conventional.ForceScope)
	assert.Empty(t, cfg.Gitmoji.Emojis)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
format: gitmoji
strict: true
conventional:
  types: [feat, fix, wip]
  scopes: [api, client]
  force_scope: true
gitmoji:
  emojis: [":bookmark:", "✨"]
`)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, FormatGitmoji, cfg.Format)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"feat", "fix", "wip"}, cfg.Conventional.Types)
	assert.Equal(t, []string{"api", "client"}, cfg.Conventional.Scopes)
	assert.True(t, cfg.Conventional.ForceScope)
	assert.Equal(t, []string{":bookmark:", "✨"}, cfg.Gitmoji.Emojis)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "format: [unterminated")

	_, err := LoadFrom(dir)
	assert.Error(t, err)
}

func TestLoad_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "format: emoji-party")

	_, err := LoadFrom(dir)
	assert.ErrorContains(t, err, "unknown format")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("COMMITCHECK_FORMAT", "gitmoji")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, FormatGitmoji, cfg.Format)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{Format: FormatConventional}).Validate())
	assert.NoError(t, (&Config{Format: FormatGitmoji}).Validate())
	assert.Error(t, (&Config{Format: "nope"}).Validate())
}
