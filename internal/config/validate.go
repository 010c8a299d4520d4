package config

import (
	"fmt"
	"strings"
)

// validate checks cfg after decoding. contextInfo names the source file.
func validate(cfg *Config, contextInfo string) error {
	if strings.TrimSpace(cfg.Remote) == "" {
		return fmt.Errorf("invalid remote in %s: must not be empty", contextInfo)
	}
	return validateEnvFiles(cfg.Env.Files, contextInfo)
}

// validateEnvFiles checks that env files are plain names inside the checkout root.
func validateEnvFiles(files []string, contextInfo string) error {
	for i, name := range files {
		if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("invalid env.files[%d] %q in %s: must be a file name without path separators", i, name, contextInfo)
		}
	}
	return nil
}
