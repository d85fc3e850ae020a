// Package cmd provides the root command and CLI setup for badwords.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"badwords.dev/pkg/badwords/internal/adapter"
	"badwords.dev/pkg/badwords/internal/controller"
	"badwords.dev/pkg/badwords/internal/domain"
	m "badwords.dev/pkg/badwords/internal/model"
)

var fsAdapter adapter.RepoFSAdapter
var gitAdapter adapter.GitAdapter
var configLoader domain.ConfigLoader
var scanner domain.Scanner
var workflow domain.Workflow
var ui *controller.SimpleUI

var verboseFlag bool
var logFileFlag string
var colorFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd, controller.ParseColorMode(viper.GetString(colorConfigKey)))
	fsAdapter = adapter.NewLocalRepoFSAdapter()
	gitAdapter = adapter.NewLocalGitAdapter()
	configLoader = domain.NewConfigLoader(fsAdapter)
	scanner = domain.NewScanner(fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		gitAdapter,
		ui,
		configLoader,
		scanner,
	)
}

const rootLongDescription = `badwords is a git pre-commit hook that scans staged files for disallowed
words. Words are grouped by category and every group applies only to the
staged files matching its glob patterns.

Run without arguments from anywhere inside a git working tree. The exit code
is 1 when a bad word is found.

Configuration is read from .git/hooks/config/pre-commit.json:

  {
    "bad_words": { "secrets": ["password=", "BEGIN RSA PRIVATE KEY"] },
    "patterns":  { "secrets": ["**/*", "!**/*.md"] }
  }`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "badwords",
		Short:         "Scan staged files for disallowed words",
		Long:          rootLongDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupRun()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := workingDir()
			if err != nil {
				return err
			}

			verdict, err := workflow.Check(cmd.Context(), domain.CheckArgs{StartDir: start})
			if err != nil {
				return err
			}

			if verdict == m.Fail {
				return domain.ErrBadWordsFound
			}

			return nil
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file (default: .git/badwords.log)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().StringVar(&colorFlag, colorFlagName, viper.GetString(colorConfigKey), "colorize output: auto, always or never")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(colorFlagName), colorConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// setupRun applies settings that are only final once flags are parsed.
func setupRun() {
	ui.SetColorMode(controller.ParseColorMode(viper.GetString(colorConfigKey)))

	start, err := workingDir()
	if err != nil {
		start = configFolderPath
	}

	configureLogger(resolveLogPath(fsAdapter, viper.GetString(logFilenameKey), start), viper.GetBool(logVerboseKey))
}

func workingDir() (m.Path, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return m.Path(dir), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(reportError(rootCmd.ErrOrStderr(), err))
	}
}

// reportError prints err unless it was already reported to the user and
// returns the process exit code.
func reportError(w io.Writer, err error) int {
	if errors.Is(err, domain.ErrBadWordsFound) || errors.Is(err, adapter.ErrRepoRootNotFound) {
		return 1
	}

	_, _ = fmt.Fprintf(w, "error: %v\n", err)

	return 1
}
