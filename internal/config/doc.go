// Package config loads and merges gitdiff configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags (applied by the cli package)
//  2. Environment variables (GITDIFF_OUTPUT, GITDIFF_GIT_BIN, GITDIFF_EXCLUDE)
//  3. Config file ($XDG_CONFIG_HOME/gitdiff/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config]. The default exclusion set always
// contains the generated-migrations directory pattern; `--exclude` flag
// values are appended to the effective set rather than replacing it.
package config
