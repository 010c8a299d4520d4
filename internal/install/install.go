// Package install runs the JavaScript dependency installer in a checkout.
//
// The installer is chosen from, in order: the packageManager field of
// package.json, the lockfile present in the checkout, bun when it is on
// PATH, and finally npm. A configured command replaces detection.
package install

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/raphi011/wts/internal/cmd"
	"github.com/raphi011/wts/internal/config"
	"github.com/raphi011/wts/internal/log"
)

// ManifestName is the dependency manifest that triggers an install.
const ManifestName = "package.json"

// knownTools are the installers recognised in packageManager.
var knownTools = []string{"bun", "pnpm", "yarn", "npm"}

// lockfiles maps lockfile names to their installer, checked in order.
var lockfiles = []struct {
	name string
	tool string
}{
	{"bun.lock", "bun"},
	{"bun.lockb", "bun"},
	{"pnpm-lock.yaml", "pnpm"},
	{"yarn.lock", "yarn"},
	{"package-lock.json", "npm"},
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Tool is an installer invocation.
type Tool struct {
	Name string
	Args []string
}

func (t Tool) String() string {
	return strings.TrimSpace(t.Name + " " + strings.Join(t.Args, " "))
}

// HasManifest reports whether dir contains a package.json.
func HasManifest(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ManifestName))
	return err == nil && info.Mode().IsRegular()
}

// manifest is the subset of package.json we read.
type manifest struct {
	PackageManager string `json:"packageManager"`
}

// fromManifest returns the tool named in packageManager, e.g. "pnpm@9.1.0".
func fromManifest(dir string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return "", false
	}
	var m manifest
	if err := json.Unmarshal(jsonc.ToJSON(data), &m); err != nil {
		return "", false
	}
	name, _, _ := strings.Cut(strings.TrimSpace(m.PackageManager), "@")
	if slices.Contains(knownTools, name) {
		return name, true
	}
	return "", false
}

// Detect picks the installer for dir.
func Detect(dir string) Tool {
	if name, ok := fromManifest(dir); ok {
		return Tool{Name: name, Args: []string{"install"}}
	}
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.name)); err == nil {
			return Tool{Name: lf.tool, Args: []string{"install"}}
		}
	}
	if _, err := lookPath("bun"); err == nil {
		return Tool{Name: "bun", Args: []string{"install"}}
	}
	return Tool{Name: "npm", Args: []string{"install"}}
}

// Resolve returns the installer to run in dir, or false when installs are
// disabled or dir has no manifest.
func Resolve(cfg config.InstallConfig, dir string) (Tool, bool) {
	if !cfg.Enabled || !HasManifest(dir) {
		return Tool{}, false
	}
	if fields := strings.Fields(cfg.Command); len(fields) > 0 {
		return Tool{Name: fields[0], Args: fields[1:]}, true
	}
	return Detect(dir), true
}

// Run installs dependencies in dir. ran is false when nothing was attempted.
func Run(ctx context.Context, cfg config.InstallConfig, dir string) (ran bool, err error) {
	tool, ok := Resolve(cfg, dir)
	if !ok {
		return false, nil
	}
	log.FromContext(ctx).Debug("install: running", "dir", dir, "tool", tool)
	if err := cmd.RunContext(ctx, dir, tool.Name, tool.Args...); err != nil {
		// Installers often report on stdout, so show both streams.
		var cmdErr *cmd.Error
		if errors.As(err, &cmdErr) {
			if out := cmdErr.Output(); out != "" {
				return true, fmt.Errorf("%s failed (run it manually in %s): %w\n%s", tool, dir, cmdErr.Err, out)
			}
		}
		return true, fmt.Errorf("%s failed (run it manually in %s): %w", tool, dir, err)
	}
	return true, nil
}
