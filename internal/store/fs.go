package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FS stores blobs under a root directory, mirroring the key scheme as nested
// directories.
type FS struct {
	Root string
}

func NewFS(root string) *FS {
	return &FS{Root: root}
}

func (s *FS) Put(_ context.Context, key string, body []byte) error {
	path := filepath.Join(s.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", key, err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
