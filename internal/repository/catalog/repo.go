// Package catalog lists trade document files in local folders.
package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/clearstone-io/tradematch/internal/domain"
)

// Repo enumerates document files one level deep, filtered by extension.
type Repo struct{}

// New creates a catalog repository.
func New() *Repo {
	return &Repo{}
}

// List returns the paths of regular files in dir whose extension matches
// ext (case-insensitive), sorted by name. A missing folder maps to
// domain.ErrFolderNotFound.
func (r *Repo) List(_ context.Context, dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("folder %s: %w", dir, domain.ErrFolderNotFound)
		}
		return nil, fmt.Errorf("read folder %s: %w", dir, err)
	}

	// Non-nil so an empty folder serializes as [] rather than null.
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ext) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Check verifies that dir exists and is a directory.
func (r *Repo) Check(_ context.Context, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("folder %s: %w", dir, domain.ErrFolderNotFound)
		}
		return fmt.Errorf("stat folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("folder %s: not a directory: %w", dir, domain.ErrFolderNotFound)
	}
	return nil
}
