package commands

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/okseby/huntr/flow"
	"github.com/okseby/huntr/job"
)

// CreateCmd materializes a new job folder from a TOML job description.
var CreateCmd = &cobra.Command{
	Use:   "create --file <posting.toml>",
	Short: "Create a new job folder in the Queued phase",
	Long: `Create reads a job description (TOML, same shape as job.toml) and
materializes the job folder in the Queued phase. A missing id is allocated
and written into the new folder's metadata.

Creating the same posting twice fails the second time without touching the
first folder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		var desc job.Metadata
		if err := toml.Unmarshal(data, &desc); err != nil {
			return fmt.Errorf("failed to parse job description: %w", err)
		}

		cfg, exec, ec, err := setup(dryRun)
		if err != nil {
			return err
		}
		ec.State.Description = &desc

		res := exec.Run(cmd.Context(), flow.EventCreateFolder, cfg.Jobs.Root, ec)
		if !res.OK {
			return fmt.Errorf("create failed: %s", res.Message)
		}
		fmt.Println(res.JobPath)
		return nil
	},
}

func init() {
	CreateCmd.Flags().String("file", "", "path to the TOML job description (required)")
	CreateCmd.Flags().Bool("dry-run", false, "report the would-be folder without creating it")
	CreateCmd.MarkFlagRequired("file")
}
