/*
Copyright © 2025 commitcheck contributors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/commitcheck/commitcheck/internal/render"
	"github.com/commitcheck/commitcheck/pkg/commit"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the GitMoji catalog",
	Long: `Catalog prints the built-in GitMoji allow-list: each glyph and what it
stands for. These are the emojis 'check --format gitmoji' accepts unless a
custom list is configured.`,
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	noColor, _ := cmd.Flags().GetBool("no-color")
	fmt.Fprint(cmd.OutOrStdout(), render.CatalogTable(commit.Catalog(), !noColor))
	return nil
}
