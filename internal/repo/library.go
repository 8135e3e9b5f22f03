// Package repo contains all filesystem access for the photo tagger.
// Each concern has its own file with an interface and an os-backed implementation.
// No business logic lives here, only directory listing and file copying.
package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileEntry is a single non-directory entry found in a photo folder.
type FileEntry struct {
	// Name is the base name, e.g. "beach.jpg".
	Name string
	// Path is the absolute path to the file.
	Path string
}

// LibraryRepo lists the contents of photo folders.
// The service layer depends on this interface, not the os-backed
// implementation, which allows imports to be unit-tested with a mock.
type LibraryRepo interface {
	// ListFiles returns every non-directory entry directly inside dir, in the
	// order the filesystem enumerates them. Callers must not assume any
	// particular ordering. Subdirectories are not descended into.
	ListFiles(ctx context.Context, dir string) ([]FileEntry, error)
}

// fsLibraryRepo is the os-backed implementation of LibraryRepo.
type fsLibraryRepo struct{}

// NewLibraryRepo constructs a LibraryRepo that reads the local filesystem.
func NewLibraryRepo() LibraryRepo {
	return &fsLibraryRepo{}
}

// ListFiles reads dir once and returns its file entries with absolute paths.
func (r *fsLibraryRepo) ListFiles(ctx context.Context, dir string) ([]FileEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repo.LibraryRepo.ListFiles: %w", err)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("repo.LibraryRepo.ListFiles: resolve %q: %w", dir, err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("repo.LibraryRepo.ListFiles: %w", err)
	}

	files := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, FileEntry{
			Name: e.Name(),
			Path: filepath.Join(abs, e.Name()),
		})
	}
	return files, nil
}
