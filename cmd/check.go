/*
Copyright © 2025 commitcheck contributors
*/
package cmd

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/commitcheck/commitcheck/internal/render"
	"github.com/commitcheck/commitcheck/pkg/commit"
	"github.com/commitcheck/commitcheck/pkg/config"
	"github.com/commitcheck/commitcheck/pkg/exitcode"
	"github.com/commitcheck/commitcheck/pkg/logger"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] MSG_FILE",
	Short: "Validate a commit message file",
	Long: `Check reads a git commit message file and validates it against the
configured format. Git comment lines and the verbose-commit diff trailer are
ignored, matching what git itself keeps of the message.

Unless --strict is set, autosquash commits (amend!/fixup!/squash!) and merge
commits pass without validation, since git generates or rewrites those
messages itself.

Exits 0 when the message is valid and 1 when it is not.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	checkCmd.Flags().String("format", "", "Message format to validate: conventional or gitmoji")
	checkCmd.Flags().StringSlice("types", nil, "Override the allowed Conventional Commit types")
	checkCmd.Flags().StringSlice("scopes", nil, "Restrict Conventional Commit scopes to this list")
	checkCmd.Flags().Bool("force-scope", false, "Require a scope on Conventional Commit messages")
	checkCmd.Flags().StringSlice("emojis", nil, "Override the GitMoji allow-list (glyphs or :shortcodes:)")
	checkCmd.Flags().Bool("strict", false, "Also reject autosquash and merge commits")
	checkCmd.Flags().Bool("verbose", false, "Print detailed guidance for invalid messages")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", logger.Err(err))
		return exitError{code: exitcode.ConfigError}
	}
	applyCheckFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", logger.Err(err))
		return exitError{code: exitcode.ConfigError}
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	color := !noColor
	out := cmd.OutOrStdout()

	data, err := os.ReadFile(args[0])
	if err != nil {
		logger.Error("Failed to read commit message file", logger.String("file", args[0]), logger.Err(err))
		return exitError{code: exitcode.InputError}
	}
	if !utf8.Valid(data) {
		fmt.Fprintln(out, render.BadEncoding(color))
		return exitError{code: exitcode.GeneralError}
	}
	message := string(data)

	if !cfg.Strict {
		if commit.HasAutosquashPrefix(message) {
			logger.Debug("Skipping validation for autosquash commit")
			return nil
		}
		if commit.IsMerge(message) {
			logger.Debug("Skipping validation for merge commit")
			return nil
		}
	}

	var (
		valid bool
		errs  []string
	)
	switch cfg.Format {
	case config.FormatGitmoji:
		g := commit.NewGitmoji(emojiAllowList(cfg))
		valid = g.IsValid(message)
		if !valid {
			errs = g.Errors(message)
			fmt.Fprintln(out, render.Fail(commit.Clean(message), cfg.Format, color))
			if cfg.Verbose {
				fmt.Fprintln(out, render.FailVerboseGitmoji(g.Emojis(), errs, color))
			} else {
				fmt.Fprintln(out, render.VerboseHint(color))
			}
		}
	default:
		c := commit.NewConventional(cfg.Conventional.Types, !cfg.Conventional.ForceScope, cfg.Conventional.Scopes)
		valid = c.IsValid(message)
		if !valid {
			errs = c.Errors(message)
			fmt.Fprintln(out, render.Fail(commit.Clean(message), cfg.Format, color))
			if cfg.Verbose {
				fmt.Fprintln(out, render.FailVerboseConventional(c.Types(), cfg.Conventional.Scopes, errs, color))
			} else {
				fmt.Fprintln(out, render.VerboseHint(color))
			}
		}
	}

	if valid {
		return nil
	}
	logger.Info("Commit message rejected", logger.Int("errors", len(errs)))
	return exitError{code: exitcode.GeneralError}
}

// applyCheckFlags lets explicit flags win over file and environment config.
func applyCheckFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("format") {
		cfg.Format, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("types") {
		cfg.Conventional.Types, _ = cmd.Flags().GetStringSlice("types")
	}
	if cmd.Flags().Changed("scopes") {
		cfg.Conventional.Scopes, _ = cmd.Flags().GetStringSlice("scopes")
	}
	if cmd.Flags().Changed("force-scope") {
		cfg.Conventional.ForceScope, _ = cmd.Flags().GetBool("force-scope")
	}
	if cmd.Flags().Changed("emojis") {
		cfg.Gitmoji.Emojis, _ = cmd.Flags().GetStringSlice("emojis")
		// an explicit emoji list implies the gitmoji format
		if !cmd.Flags().Changed("format") {
			cfg.Format = config.FormatGitmoji
		}
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict, _ = cmd.Flags().GetBool("strict")
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	}
}

// emojiAllowList resolves configured shortcodes into glyphs; an empty
// configuration means the built-in catalog.
func emojiAllowList(cfg *config.Config) []string {
	if len(cfg.Gitmoji.Emojis) == 0 {
		return nil
	}
	return commit.ResolveEmojis(cfg.Gitmoji.Emojis)
}
