// Package preserve propagates auxiliary environment files between checkouts.
//
// Files such as .env are usually ignored by git, so a fresh sibling starts
// without them. CopyEnvFiles seeds a new sibling from the main checkout and
// Diverged reports files that drifted apart before a sibling is retired.
package preserve

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/raphi011/wts/internal/log"
)

// CopyFile copies src to dst, creating parent directories as needed.
// Uses O_CREATE|O_EXCL to skip files that already exist (never overwrite).
// Preserves the source file's permission bits.
// Returns true if the file was copied, false if dst already existed.
func CopyFile(src, dst string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return false, err
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, srcInfo.Mode().Perm())
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, err
	}
	defer dstFile.Close()

	srcFile, err := os.Open(src)
	if err != nil {
		os.Remove(dst)
		return false, err
	}
	defer srcFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		os.Remove(dst)
		return false, err
	}

	return true, nil
}

// isRegular reports whether path exists and is a regular file.
func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// CopyEnvFiles copies each named file that exists in sourceDir into
// targetDir. Files already present in targetDir are left untouched.
// Returns the names that were copied; failures are joined into err.
func CopyEnvFiles(ctx context.Context, names []string, sourceDir, targetDir string) ([]string, error) {
	l := log.FromContext(ctx)

	var copied []string
	var errs []error

	for _, name := range names {
		src := filepath.Join(sourceDir, name)
		if !isRegular(src) {
			l.Debug("preserve: source missing", "file", name)
			continue
		}

		ok, err := CopyFile(src, filepath.Join(targetDir, name))
		if err != nil {
			errs = append(errs, fmt.Errorf("copy %s: %w", name, err))
			continue
		}
		if ok {
			copied = append(copied, name)
		} else {
			l.Debug("preserve: target exists, skipped", "file", name)
		}
	}

	return copied, errors.Join(errs...)
}

// Diverged returns the names that exist in both dirs with different bytes.
// Files missing on either side are not compared.
func Diverged(names []string, mainDir, targetDir string) ([]string, error) {
	var diverged []string
	for _, name := range names {
		a, b := filepath.Join(mainDir, name), filepath.Join(targetDir, name)
		if !isRegular(a) || !isRegular(b) {
			continue
		}

		same, err := sameContent(a, b)
		if err != nil {
			return diverged, fmt.Errorf("compare %s: %w", name, err)
		}
		if !same {
			diverged = append(diverged, name)
		}
	}
	return diverged, nil
}

func sameContent(a, b string) (bool, error) {
	da, err := os.ReadFile(a)
	if err != nil {
		return false, err
	}
	db, err := os.ReadFile(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(da, db), nil
}
