package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okseby/huntr/flow"
	"github.com/okseby/huntr/job"
)

// EventsCmd lists every registered event name.
var EventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List registered events",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := flow.NewDefaultRegistry()
		for _, name := range registry.Names() {
			fmt.Println(name)
		}
		return nil
	},
}

// PhasesCmd lists the lifecycle phases in pipeline order.
var PhasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "List lifecycle phases in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range job.Phases() {
			fmt.Printf("%-16s %s\n", p, p.DirName())
		}
		return nil
	},
}

// LogCmd prints a job folder's append-only audit trail.
var LogCmd = &cobra.Command{
	Use:   "log <job-path>",
	Short: "Show a job folder's event log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := job.ReadLog(args[0])
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Println(line)
		}
		return nil
	},
}
