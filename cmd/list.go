package cmd

import (
	"github.com/spf13/cobra"

	"badwords.dev/pkg/badwords/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the staged files each group would scan",
		Long:  "Resolve the config and the staged files and show, per group, which files its patterns select. Files are not read.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := workingDir()
			if err != nil {
				return err
			}

			return workflow.Plan(cmd.Context(), domain.CheckArgs{StartDir: start})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
