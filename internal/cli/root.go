package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess    = 0
	ExitUsageError = 2
	ExitRepoError  = 3
	ExitGitError   = 4
	ExitWriteError = 5
)

var rootCmd = &cobra.Command{
	Use:   "gitdiff [repo-path]",
	Short: "Write a filtered git diff to a file",
	Long: "gitdiff shells out to git to diff local changes or two branches,\n" +
		"subtracts excluded pathspecs, and writes the result to a file.",
	Args: cobra.MaximumNArgs(1),
	RunE: runDiff,
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print gitdiff version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "gitdiff version %s\n", version)
	},
}
