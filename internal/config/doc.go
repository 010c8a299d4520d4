// Package config handles loading and validation of wts configuration.
//
// Global configuration is read from ~/.config/wts/config.toml. A worktree
// home may carry a .wts.toml at its root that overrides the global values
// for that home only.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (e.g. new --no-publish)
//   - WTS_CONFIG env var: Alternative path of the global config file
//   - <home>/.wts.toml
//   - ~/.config/wts/config.toml
//   - Default values
//
// # Key Settings
//
//	remote = "origin"          # publish target and remote collision checks
//	default_branch = "main"    # clone fallback when the remote HEAD is unknown
//	publish = true             # push new branches
//	sync_on_done = true        # fetch --prune and pull after done
//
//	[env]
//	files = [".env"]           # copied into new siblings, compared on done
//
//	[install]
//	enabled = true
//	command = ""               # empty detects bun, pnpm, yarn or npm
//
// Missing files are not an error. Local env files are appended to the
// global list, every other local field replaces the global one when set.
package config
