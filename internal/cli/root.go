// Package cli provides the command-line interface for sheetwatch.
package cli

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/sheetwatch/internal/cli/commands"
	"github.com/leapstack-labs/sheetwatch/internal/cli/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command. Running the bare binary
// performs the single check-and-report action.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetwatch",
		Short: "sheetwatch - Past-due milestone reporter for Smartsheet",
		Long: `sheetwatch fetches a Smartsheet project-tracking sheet, detects milestone
column triples (M1 / M1 Date / M1 Status), and reports every milestone whose
due date has passed without the milestone being marked complete.

The summary is printed to stdout; when a webhook URL is configured it is also
delivered to a Slack-compatible incoming webhook.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "version" {
				return nil
			}

			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Past-due milestone reporter for Smartsheet
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./sheetwatch.yaml)")
	rootCmd.PersistentFlags().String("token", "", "Smartsheet API access token")
	rootCmd.PersistentFlags().String("sheet-id", "", "Sheet identifier to audit")
	rootCmd.PersistentFlags().String("timezone", "", fmt.Sprintf("IANA time zone for resolving today (default: %s)", config.DefaultTimezone))
	rootCmd.PersistentFlags().String("webhook-url", "", "Slack incoming-webhook URL (empty disables delivery)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
