// internal/repo/repo.go
//
// Repository root discovery. The root is the nearest directory, starting at
// a given path and walking up, whose .git entry go-git can open as a
// repository. A .git directory and a "gitdir:" file (worktrees, submodules)
// both count; entries go-git rejects, like an empty .git directory, are
// skipped and the search continues in the parent.

package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-git/go-git/v5"
)

// MetadataName is the version-control entry that marks a repository root.
const MetadataName = git.GitDirName

// ErrNotFound reports that no ancestor carries repository metadata.
var ErrNotFound = errors.New("repository root not found")

// DiscoveryError describes a failed upward search.
type DiscoveryError struct {
	Start string
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("repo: no git repository found in %s or any parent directory", e.Start)
}

// Unwrap lets errors.Is match ErrNotFound.
func (e *DiscoveryError) Unwrap() error { return ErrNotFound }

// FindRoot returns the nearest ancestor of start (start included) holding a
// valid git repository.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("repo: resolve %s: %w", start, err)
	}
	dir := abs
	for {
		if isRepository(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &DiscoveryError{Start: abs}
		}
		dir = parent
	}
}

// isRepository reports whether dir/.git exists and opens as a repository.
// Without the Lstat, PlainOpen would try dir itself as a bare repository.
func isRepository(dir string) bool {
	if _, err := os.Lstat(filepath.Join(dir, MetadataName)); err != nil {
		return false
	}
	_, err := git.PlainOpen(dir)
	return err == nil
}

var discover = sync.OnceValues(func() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("repo: get working directory: %w", err)
	}
	return FindRoot(cwd)
})

// Discover finds the root above the process working directory. The search
// runs once per process; later calls return the first result.
func Discover() (string, error) {
	return discover()
}
