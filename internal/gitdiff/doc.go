// Package gitdiff produces a git diff of local changes or of one branch
// against another, subtracts excluded pathspecs, and writes the result to a
// file.
//
// Repository validation and branch resolution go through go-git; the diff
// text itself always comes from the git binary, so output matches what git
// users expect byte for byte. Branch names are resolved at invocation time,
// never earlier, since the checkout can change between process start and the
// diff run.
package gitdiff
