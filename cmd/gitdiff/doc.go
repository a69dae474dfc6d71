// Gitdiff writes a filtered git diff to a file.
//
// By default it collects all local changes, staged and unstaged; with
// --compare it diffs a feature branch against a target branch, defaulting
// the feature side to whatever branch is currently checked out. Excluded
// pathspecs (a generated-migrations directory by default) are subtracted
// from the result.
//
// Usage:
//
//	gitdiff                              # local changes in the current directory
//	gitdiff /path/to/repo                # local changes in another repository
//	gitdiff -c -t main                   # current branch vs main
//	gitdiff -c -s feature-x -t main      # feature-x vs main
//	gitdiff -e 'vendor/' -o review.diff  # extra exclusion, custom output file
package main
