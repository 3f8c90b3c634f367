// Package config loads commitcheck configuration from .commitcheck.yaml and
// COMMITCHECK_* environment variables, layered over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Format selects which grammar validates the commit message.
const (
	FormatConventional = "conventional"
	FormatGitmoji      = "gitmoji"
)

// Config holds all configuration for commitcheck
type Config struct {
	Format       string             `mapstructure:"format"`
	Strict       bool               `mapstructure:"strict"`
	Verbose      bool               `mapstructure:"verbose"`
	Conventional ConventionalConfig `mapstructure:"conventional"`
	Gitmoji      GitmojiConfig      `mapstructure:"gitmoji"`
}

// ConventionalConfig holds the Conventional Commits vocabulary
type ConventionalConfig struct {
	Types      []string `mapstructure:"types"`
	Scopes     []string `mapstructure:"scopes"`
	ForceScope bool     `mapstructure:"force_scope"`
}

// GitmojiConfig holds the GitMoji allow-list. Entries may be glyphs or
// :shortcode: names; resolution happens at validation time.
type GitmojiConfig struct {
	Emojis []string `mapstructure:"emojis"`
}

// Default returns the built-in configuration: Conventional format with the
// default vocabulary, optional scope, non-strict.
func Default() *Config {
	return &Config{Format: FormatConventional}
}

// Load reads configuration from the search paths and environment.
// A missing config file is fine; a malformed one is an error.
func Load() (*Config, error) {
	return load(".")
}

// LoadFrom is Load with an explicit search directory, used by tests.
func LoadFrom(dir string) (*Config, error) {
	return load(dir)
}

func load(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("format", FormatConventional)
	v.SetDefault("strict", false)
	v.SetDefault("verbose", false)
	v.SetDefault("conventional.types", []string{})
	v.SetDefault("conventional.scopes", []string{})
	v.SetDefault("conventional.force_scope", false)
	v.SetDefault("gitmoji.emojis", []string{})

	v.SetConfigName(".commitcheck")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("COMMITCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the fields that cannot be defaulted away.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatConventional, FormatGitmoji:
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected %q or %q)", c.Format, FormatConventional, FormatGitmoji)
	}
}
