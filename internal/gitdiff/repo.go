package gitdiff

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// openRepo opens the repository at path. The path must point at the
// repository root; no parent-directory discovery is attempted.
func openRepo(path string) (*git.Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, &RepoError{Path: path, Err: fmt.Errorf("not a git repository: %w", err)}
	}
	if _, err := repo.Worktree(); errors.Is(err, git.ErrIsBareRepository) {
		return nil, &RepoError{Path: path, Err: errors.New("repository is bare")}
	}
	return repo, nil
}

// currentBranch returns the short name of the branch HEAD points at.
func currentBranch(repo *git.Repository) (string, error) {
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is detached at %s", head.Hash())
	}
	return head.Name().Short(), nil
}

// resolveBranch returns a ref name usable as a git diff argument. A branch
// missing locally falls back to its origin remote-tracking ref.
func resolveBranch(repo *git.Repository, path, name string) (string, error) {
	if _, err := repo.Reference(plumbing.NewBranchReferenceName(name), true); err == nil {
		return name, nil
	}
	if _, err := repo.Reference(plumbing.NewRemoteReferenceName("origin", name), true); err == nil {
		return "origin/" + name, nil
	}
	return "", &RepoError{Path: path, Err: fmt.Errorf("branch %q does not exist locally or on origin", name)}
}
