package cmd

import (
	"github.com/spf13/cobra"

	"badwords.dev/pkg/badwords/internal/domain"
)

// viewCmd represents the config command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the loaded word groups",
		Long:  "Load and validate .git/hooks/config/pre-commit.json and print it as YAML in group order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := workingDir()
			if err != nil {
				return err
			}

			return workflow.ShowConfig(cmd.Context(), domain.CheckArgs{StartDir: start})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
