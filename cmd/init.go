/*
Copyright © 2025 commitcheck contributors
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/commitcheck/commitcheck/pkg/exitcode"
	"github.com/commitcheck/commitcheck/pkg/logger"
	"github.com/commitcheck/commitcheck/pkg/safeio"
)

const configFileName = ".commitcheck.yaml"

// starterConfig mirrors pkg/config.Config with yaml tags and the fields a
// fresh project usually wants to see spelled out.
type starterConfig struct {
	Format       string              `yaml:"format"`
	Strict       bool                `yaml:"strict"`
	Verbose      bool                `yaml:"verbose"`
	Conventional starterConventional `yaml:"conventional"`
	Gitmoji      starterGitmoji      `yaml:"gitmoji"`
}

type starterConventional struct {
	Types      []string `yaml:"types"`
	Scopes     []string `yaml:"scopes"`
	ForceScope bool     `yaml:"force_scope"`
}

type starterGitmoji struct {
	Emojis []string `yaml:"emojis"`
}

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .commitcheck.yaml",
	Long: `Init writes a commented starter configuration to .commitcheck.yaml in the
current directory. Empty lists mean the built-in defaults: the standard
Conventional Commit types, any scope, and the full GitMoji catalog.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path := filepath.Join(".", configFileName)

	if _, err := os.Stat(path); err == nil && !force {
		logger.Error("Config file already exists, use --force to overwrite", logger.String("file", path))
		return exitError{code: exitcode.ConfigError}
	}

	starter := starterConfig{
		Format: "conventional",
		Conventional: starterConventional{
			Types:  []string{},
			Scopes: []string{},
		},
		Gitmoji: starterGitmoji{
			Emojis: []string{},
		},
	}

	data, err := yaml.Marshal(starter)
	if err != nil {
		return fmt.Errorf("marshaling starter config: %w", err)
	}
	header := []byte("# commitcheck configuration\n# Empty lists fall back to the built-in defaults.\n")
	if err := safeio.WriteFileAtomic(path, append(header, data...), 0o644); err != nil {
		logger.Error("Failed to write config file", logger.String("file", path), logger.Err(err))
		return exitError{code: exitcode.InputError}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
