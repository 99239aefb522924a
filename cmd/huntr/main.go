package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okseby/huntr/cmd/huntr/commands"
	"github.com/okseby/huntr/config"
	"github.com/okseby/huntr/logger"
)

var rootCmd = &cobra.Command{
	Use:   "huntr",
	Short: "huntr - job application pipeline orchestrator",
	Long: `huntr tracks job applications as folders moving through lifecycle
phase directories. Events run against a job folder through a retrying
executor; phase transitions are folder moves.

Examples:
  huntr create --file posting.toml     # Materialize a new job folder in Queued
  huntr run move.applied <job-path>    # Run a single event against a job
  huntr pipeline prepare <job-path>    # Fan out generation events, then advance
  huntr events                         # List registered events
  huntr phases                         # List lifecycle phases in order`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := logger.Initialize(cfg.Log.JSON); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commands.CreateCmd)
	rootCmd.AddCommand(commands.RunCmd)
	rootCmd.AddCommand(commands.PipelineCmd)
	rootCmd.AddCommand(commands.EventsCmd)
	rootCmd.AddCommand(commands.PhasesCmd)
	rootCmd.AddCommand(commands.LogCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
