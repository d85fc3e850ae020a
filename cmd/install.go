package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"badwords.dev/pkg/badwords/internal/domain"
)

var installForceFlag bool

// installCmd represents the install command.
var installCmd = newInstallCmd()

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install badwords as the git pre-commit hook",
		Long: `Write .git/hooks/pre-commit so that git runs badwords before every commit.
The hook calls this binary by its absolute path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := workingDir()
			if err != nil {
				return err
			}

			return workflow.Install(cmd.Context(), domain.SetupArgs{
				StartDir: start,
				Force:    installForceFlag,
				Binary:   executablePath(),
			})
		},
	}

	cmd.Flags().BoolVarP(&installForceFlag, forceFlagName, "f", false, "overwrite an existing hook")

	return cmd
}

// executablePath returns the running binary, or "" to let the hook use PATH.
func executablePath() string {
	path, err := os.Executable()
	if err != nil {
		return ""
	}

	return path
}

func init() {
	rootCmd.AddCommand(installCmd)
}
