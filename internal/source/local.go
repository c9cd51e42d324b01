// Package source discovers and reads the input workbooks. The
// pipeline only sees file names and bytes, so a local report folder
// and a GCS bucket are interchangeable.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Local reads workbooks from a folder on disk, filtered by extension.
type Local struct {
	dir string
	ext string
}

// NewLocal creates a source over dir keeping only files with the
// given extension (case-insensitive, e.g. ".xlsx").
func NewLocal(dir, ext string) *Local {
	return &Local{dir: dir, ext: ext}
}

// List returns the matching file names in the folder, as named on
// disk.
func (s *Local) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read folder %s: %w", s.dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), strings.ToLower(s.ext)) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Open reads one file's bytes.
func (s *Local) Open(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", name, err)
	}
	return data, nil
}
