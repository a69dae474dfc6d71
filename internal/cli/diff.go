package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Silverls96/gitdiff/internal/config"
	"github.com/Silverls96/gitdiff/internal/gitdiff"
	"github.com/spf13/cobra"
)

var (
	flagCompare       bool
	flagFeatureBranch string
	flagTargetBranch  string
	flagOutput        string
	flagExclude       []string
)

func init() {
	rootCmd.Flags().BoolVarP(&flagCompare, "compare", "c", false, "Compare two branches instead of showing local changes")
	rootCmd.Flags().StringVarP(&flagFeatureBranch, "feature-branch", "s", "", "Feature branch with your changes (default: current branch)")
	rootCmd.Flags().StringVarP(&flagTargetBranch, "target-branch", "t", "", "Target branch you plan to merge into (required with --compare)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file for the diff result (default: <repo-path>/"+config.DefaultOutput+")")
	rootCmd.Flags().StringArrayVarP(&flagExclude, "exclude", "e", nil, "Pathspec pattern to exclude (repeatable)")
}

func runDiff(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	req := buildRequest(cfg, args)
	if err := req.Validate(); err != nil {
		// Surfaced before any output file is touched or git process runs.
		return err
	}

	res, err := gitdiff.Invoke(cmd.Context(), req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = exitCodeFor(err)
		return nil
	}

	if req.Mode == gitdiff.ModeCompare {
		fmt.Fprintf(os.Stderr, "Comparing target branch %q against feature branch %q\n", res.From, res.To)
	}

	if err := gitdiff.Persist(res, req.OutputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitWriteError
		return nil
	}

	if res.Empty {
		fmt.Fprintln(os.Stdout, "No differences found.")
	}
	fmt.Fprintf(os.Stdout, "Diff result saved to %s\n", req.OutputPath)
	return nil
}

// buildRequest assembles an immutable diff request from the merged config
// and the command-line flags.
func buildRequest(cfg config.Config, args []string) gitdiff.Request {
	repoPath := "."
	if len(args) > 0 && args[0] != "" {
		repoPath = args[0]
	}

	mode := gitdiff.ModeLocal
	if flagCompare {
		mode = gitdiff.ModeCompare
	}

	// Flag exclusions add to the configured set, they never replace it.
	exclude := append([]string{}, cfg.Exclude...)
	exclude = append(exclude, flagExclude...)

	return gitdiff.Request{
		RepoPath:      repoPath,
		Mode:          mode,
		FeatureBranch: flagFeatureBranch,
		TargetBranch:  flagTargetBranch,
		OutputPath:    outputPath(cfg, repoPath),
		Exclude:       exclude,
		GitBin:        cfg.GitBin,
	}
}

func outputPath(cfg config.Config, repoPath string) string {
	if flagOutput != "" {
		return flagOutput
	}
	if filepath.IsAbs(cfg.Output) {
		return cfg.Output
	}
	return filepath.Join(repoPath, cfg.Output)
}

func exitCodeFor(err error) int {
	var cfgErr *gitdiff.ConfigError
	var repoErr *gitdiff.RepoError
	switch {
	case errors.As(err, &cfgErr):
		return ExitUsageError
	case errors.As(err, &repoErr):
		return ExitRepoError
	}
	return ExitGitError
}
