package cmd

import (
	"github.com/spf13/cobra"

	"badwords.dev/pkg/badwords/internal/domain"
)

var initForceFlag bool

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a starter pre-commit.json",
		Long: `Create .git/hooks/config/pre-commit.json in the enclosing repository,
populated with example word groups so it can be edited manually.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := workingDir()
			if err != nil {
				return err
			}

			return workflow.Init(cmd.Context(), domain.SetupArgs{StartDir: start, Force: initForceFlag})
		},
	}

	cmd.Flags().BoolVarP(&initForceFlag, forceFlagName, "f", false, "overwrite an existing config")

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
