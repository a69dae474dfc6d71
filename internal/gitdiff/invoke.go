package gitdiff

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Invoke validates the request, resolves refs for compare mode, runs git in
// the repository directory, and returns the collected diff text.
func Invoke(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	repo, err := openRepo(req.RepoPath)
	if err != nil {
		return Result{}, err
	}

	if req.Mode == ModeCompare {
		from, err := resolveBranch(repo, req.RepoPath, req.TargetBranch)
		if err != nil {
			return Result{}, err
		}
		feature := req.FeatureBranch
		if feature == "" {
			// Resolved here, not at startup: the checkout may have changed.
			feature, err = currentBranch(repo)
			if err != nil {
				return Result{}, &RepoError{Path: req.RepoPath, Err: err}
			}
		}
		to, err := resolveBranch(repo, req.RepoPath, feature)
		if err != nil {
			return Result{}, err
		}
		diff, err := runGit(ctx, req, diffArgs([]string{from, to}, req.Exclude))
		if err != nil {
			return Result{}, err
		}
		return Result{Diff: diff, From: from, To: to, Empty: diff == ""}, nil
	}

	// Local mode: working tree vs index, then index vs HEAD, so the result
	// covers all local changes whether staged or not.
	unstaged, err := runGit(ctx, req, diffArgs(nil, req.Exclude))
	if err != nil {
		return Result{}, err
	}
	staged, err := runGit(ctx, req, diffArgs([]string{"--cached"}, req.Exclude))
	if err != nil {
		return Result{}, err
	}
	diff := unstaged + staged
	return Result{Diff: diff, Empty: diff == ""}, nil
}

// Persist writes the diff text verbatim to path, creating or truncating the
// file. An empty diff still produces an (empty) file.
func Persist(res Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(res.Diff); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	return nil
}

func runGit(ctx context.Context, req Request, args []string) (string, error) {
	bin := req.GitBin
	if bin == "" {
		bin = "git"
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = req.RepoPath
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		return "", &GitError{Args: args, Stderr: errb.String(), Err: err}
	}
	return out.String(), nil
}
