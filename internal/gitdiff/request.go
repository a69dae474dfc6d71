package gitdiff

import "strings"

// Mode selects which diff the invoker produces.
type Mode int

const (
	// ModeLocal diffs all local changes, staged and unstaged.
	ModeLocal Mode = iota
	// ModeCompare diffs a feature branch against a target branch.
	ModeCompare
)

// Request describes one diff run. The CLI layer builds it once per
// invocation and it is not modified afterwards.
type Request struct {
	RepoPath      string
	Mode          Mode
	FeatureBranch string // compare mode; empty means the current branch
	TargetBranch  string // compare mode; required
	OutputPath    string
	Exclude       []string
	GitBin        string // git binary to run; empty means "git"
}

// Result holds the collected diff and the refs it was produced from.
type Result struct {
	Diff  string
	From  string // resolved target ref, empty in local mode
	To    string // resolved feature ref, empty in local mode
	Empty bool
}

// Validate checks the request before any repository access happens.
func (r Request) Validate() error {
	if r.Mode == ModeCompare && strings.TrimSpace(r.TargetBranch) == "" {
		return &ConfigError{Reason: "compare mode requires a target branch"}
	}
	return nil
}

// exclusionArgs turns exclusion patterns into negated pathspec tokens,
// preserving input order. Duplicates are harmless: git applies the same
// exclusion twice with no further effect.
func exclusionArgs(patterns []string) []string {
	args := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		args = append(args, ":(exclude)"+p)
	}
	return args
}

// diffArgs assembles the argument list for one git diff invocation: any
// leading refs or flags, then the pathspec tail "-- . :(exclude)...".
func diffArgs(refs []string, exclude []string) []string {
	args := append([]string{"diff"}, refs...)
	args = append(args, "--", ".")
	return append(args, exclusionArgs(exclude)...)
}
