package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okseby/huntr/flow"
	"github.com/okseby/huntr/job"
)

// Named pipelines over the composers. The generation steps are supplied by
// the embedding application's handler registrations; the built-in defaults
// carry only the terminal move.
var pipelines = map[string]struct {
	events     []string
	advance    string
	sequential bool
}{
	// prepare fans generation events out concurrently, then advances.
	"prepare": {
		events:  nil, // filled from --events
		advance: flow.MoveEventName(job.PhaseDocsReady),
	},
	// submit runs application steps strictly in order, then advances.
	"submit": {
		events:     nil,
		advance:    flow.MoveEventName(job.PhaseApplied),
		sequential: true,
	},
}

// PipelineCmd runs a named composition of events against a job folder.
var PipelineCmd = &cobra.Command{
	Use:   "pipeline <prepare|submit> <job-path>",
	Short: "Run a composed pipeline of events against a job folder",
	Long: `Pipeline runs several events and then performs a single terminal
phase transition based on aggregate success.

  prepare   runs the given events concurrently (fan-out); if all succeed the
            job advances to docs_ready, otherwise it moves to errored.
  submit    runs the given events strictly in order, stopping at the first
            failure; the job advances to applied only after a full pass.

Event names come from --events; list registered names with 'huntr events'.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, jobPath := args[0], args[1]
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		eventsFlag, _ := cmd.Flags().GetString("events")

		p, ok := pipelines[name]
		if !ok {
			return fmt.Errorf("unknown pipeline %q (want prepare or submit)", name)
		}
		events := p.events
		if eventsFlag != "" {
			events = strings.Split(eventsFlag, ",")
		}
		if len(events) == 0 {
			return fmt.Errorf("pipeline %q has no events; pass --events", name)
		}

		_, exec, ec, err := setup(dryRun)
		if err != nil {
			return err
		}

		var res flow.Result
		if p.sequential {
			res = flow.Sequence(cmd.Context(), exec, events, p.advance, jobPath, ec)
		} else {
			res = flow.FanOut(cmd.Context(), exec, events, p.advance, jobPath, ec)
		}
		fmt.Println(res.Message)
		fmt.Println(res.JobPath)
		if !res.OK {
			return fmt.Errorf("pipeline %s failed", name)
		}
		return nil
	},
}

func init() {
	PipelineCmd.Flags().Bool("dry-run", false, "use each handler's dry-run entry point")
	PipelineCmd.Flags().String("events", "", "comma-separated event names to compose")
}
