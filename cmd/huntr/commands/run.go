package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RunCmd executes a single named event against a job folder.
var RunCmd = &cobra.Command{
	Use:   "run <event> <job-path>",
	Short: "Run one event against a job folder",
	Long: `Run resolves the named event and executes it through the retrying
executor. A repeatedly failing event is classified: job-specific failures
escalate the folder to the Errored phase with a diagnostic record, systemic
failures leave it in place.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		event, jobPath := args[0], args[1]
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		_, exec, ec, err := setup(dryRun)
		if err != nil {
			return err
		}

		res := exec.Run(cmd.Context(), event, jobPath, ec)
		fmt.Println(res.Message)
		fmt.Println(res.JobPath)
		if !res.OK {
			return fmt.Errorf("event %s failed", event)
		}
		return nil
	},
}

func init() {
	RunCmd.Flags().Bool("dry-run", false, "use each handler's dry-run entry point")
}
