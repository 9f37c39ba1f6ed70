// Package logset resolves the files belonging to one logical log group.
//
// Each worker process writes its own log file named <base><unique-suffix>.
// A group is identified by the shared base name and resolved by prefix match
// against a directory listing. No ordering is implied among the files of a
// group.
package logset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// NotFoundError reports that a log group could not be resolved: the
// directory is unreadable, or the group matched no files and the caller
// treats that as fatal.
type NotFoundError struct {
	Base string
	Dir  string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("log group %q in %s: %v", e.Base, e.Dir, e.Err)
	}
	return fmt.Sprintf("log group %q in %s: no matching files", e.Base, e.Dir)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Resolve returns the regular files in dir whose name starts with base,
// sorted for deterministic processing. An empty result is not an error at
// this layer; callers decide whether a zero-file group is fatal. An empty
// dir defaults to the current directory.
func Resolve(base, dir string) ([]string, error) {
	if base == "" {
		return nil, errors.New("base name must not be empty")
	}
	if dir == "" {
		dir = "."
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &NotFoundError{Base: base, Dir: dir, Err: err}
	}

	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.HasPrefix(entry.Name(), base) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	// Sort for deterministic ordering
	sort.Strings(paths)

	return paths, nil
}
