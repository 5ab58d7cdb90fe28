// Package documents retrieves report documents for extraction. Storage of
// documents is owned elsewhere; this service only reads.
package documents

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"courtcal/pkg/platform/sentinel"
)

// Store retrieves document bytes by path.
type Store interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// FSStore serves documents from a root directory. Paths are resolved relative
// to the root and must not escape it.
type FSStore struct {
	root string
}

func NewFSStore(root string) *FSStore {
	return &FSStore{root: root}
}

func (s *FSStore) Fetch(_ context.Context, path string) ([]byte, error) {
	cleaned := filepath.Clean("/" + strings.TrimSpace(path))
	full := filepath.Join(s.root, cleaned)

	rel, err := filepath.Rel(s.root, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil, fmt.Errorf("path escapes document root: %w", sentinel.ErrNotFound)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("document %q: %w", path, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("read document %q: %w", path, err)
	}
	return data, nil
}
