package gitdiff

import (
	"fmt"
	"strings"
)

// ConfigError reports an invalid request, detected before any repository
// access or git invocation.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return e.Reason }

// RepoError reports a problem with the repository itself: the path is not a
// git repository, the repository is bare, or a requested branch does not
// exist locally or on origin.
type RepoError struct {
	Path string
	Err  error
}

func (e *RepoError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }

func (e *RepoError) Unwrap() error { return e.Err }

// GitError reports a non-zero exit from the git binary, carrying whatever
// git wrote to stderr.
type GitError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *GitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("git %s: %s", strings.Join(e.Args, " "), msg)
}

func (e *GitError) Unwrap() error { return e.Err }
