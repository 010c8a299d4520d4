package config

// MergeLocal merges a local per-home config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global

	if local.Remote != nil {
		merged.Remote = *local.Remote
	}
	if local.DefaultBranch != nil {
		merged.DefaultBranch = *local.DefaultBranch
	}
	if local.Publish != nil {
		merged.Publish = *local.Publish
	}
	if local.SyncOnDone != nil {
		merged.SyncOnDone = *local.SyncOnDone
	}

	// Env files (append with dedup)
	if len(local.Env.Files) > 0 {
		merged.Env.Files = appendUnique(global.Env.Files, local.Env.Files)
	}

	if local.Install.Enabled != nil {
		merged.Install.Enabled = *local.Install.Enabled
	}
	if local.Install.Command != nil {
		merged.Install.Command = *local.Install.Command
	}

	return &merged
}

// appendUnique appends items from extra to base, skipping duplicates.
// Returns a new slice (never mutates base).
func appendUnique(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, v := range base {
		seen[v] = true
	}

	result := make([]string, len(base))
	copy(result, base)

	for _, v := range extra {
		if !seen[v] {
			result = append(result, v)
			seen[v] = true
		}
	}

	return result
}
