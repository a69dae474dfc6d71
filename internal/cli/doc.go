// Package cli wires together the Cobra command tree for the gitdiff binary.
//
// It defines the root command and its flags, merges configuration with
// flag values into a diff request, invokes the diff pipeline, and maps
// error classes to deterministic exit codes.
package cli
