/*
Copyright © 2025 commitcheck contributors
*/
package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/commitcheck/commitcheck/pkg/buildinfo"
	"github.com/commitcheck/commitcheck/pkg/exitcode"
	"github.com/commitcheck/commitcheck/pkg/logger"
)

// newRootCommand creates a fresh root command instance.
// This factory pattern allows tests to create isolated command trees without shared state.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commitcheck",
		Short: "Check git commit messages against Conventional Commits or GitMoji formatting",
		Long: `Commitcheck validates a git commit message against the Conventional
Commits specification or the GitMoji convention. It is meant to run as a
commit-msg hook: it reads the message file git hands to the hook and exits
non-zero when the message does not follow the configured format.

Examples:
   commitcheck check .git/COMMIT_EDITMSG          # Validate a commit message
   commitcheck check --format gitmoji MSG_FILE    # Validate GitMoji formatting
   commitcheck catalog                            # List the GitMoji catalog
   commitcheck init                               # Write a starter .commitcheck.yaml`,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initializeLogger(cmd)
		},
	}

	// Add global flags
	cmd.PersistentFlags().String("log-level", "warn", "Set log level (debug|info|warn|error)")
	cmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.Version = buildinfo.Version()
	cmd.SetVersionTemplate("commitcheck {{.Version}}\n")

	return cmd
}

// registerSubcommands adds all subcommands to the root command.
// This is called from init() for production and can be called explicitly in tests.
func registerSubcommands(cmd *cobra.Command) {
	cmd.AddCommand(checkCmd)
	cmd.AddCommand(catalogCmd)
	cmd.AddCommand(initCmd)
	cmd.AddCommand(versionCmd)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

// exitError carries a process exit code through cobra's error return. The
// user-facing output has already been printed by the time one is returned.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return exitcode.String(e.code)
}

// Execute runs the root command and maps errors to process exit codes.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var ee exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		logger.Error("Command execution failed", logger.Err(err))
		os.Exit(exitcode.GeneralError)
	}
}

func init() {
	registerSubcommands(rootCmd)
}

// initializeLogger sets up the logger based on command flags
func initializeLogger(cmd *cobra.Command) {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	logger.Initialize(logger.Config{
		Level:    logger.ParseLevel(logLevelStr),
		UseColor: !noColor,
		JSON:     jsonLogs,
	})
}
