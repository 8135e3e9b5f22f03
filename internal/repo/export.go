package repo

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ExportRepo writes exported photo copies.
type ExportRepo interface {
	// EnsureDir creates dir and any missing parents.
	// An already existing directory is not an error.
	EnsureDir(ctx context.Context, dir string) error

	// CopyFile copies the regular file src to dst, replacing dst if it exists.
	// Permission bits and the modification time of src are carried over.
	// src is only ever read. Copying a file onto itself is refused.
	CopyFile(ctx context.Context, src, dst string) error
}

// fsExportRepo is the os-backed implementation of ExportRepo.
type fsExportRepo struct{}

// NewExportRepo constructs an ExportRepo that writes to the local filesystem.
func NewExportRepo() ExportRepo {
	return &fsExportRepo{}
}

// EnsureDir is os.MkdirAll with the repo's error wrapping.
func (r *fsExportRepo) EnsureDir(_ context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("repo.ExportRepo.EnsureDir: %w", err)
	}
	return nil
}

// CopyFile streams src into dst and then restores src's mode and mtime on dst.
func (r *fsExportRepo) CopyFile(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("repo.ExportRepo.CopyFile: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("repo.ExportRepo.CopyFile: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("repo.ExportRepo.CopyFile: stat source: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("repo.ExportRepo.CopyFile: %s is not a regular file", src)
	}

	// O_TRUNC on the source itself would wipe the original.
	if existing, err := os.Stat(dst); err == nil && os.SameFile(info, existing) {
		return fmt.Errorf("repo.ExportRepo.CopyFile: %s and %s are the same file", src, dst)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("repo.ExportRepo.CopyFile: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("repo.ExportRepo.CopyFile: copy: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("repo.ExportRepo.CopyFile: close: %w", err)
	}

	// OpenFile only applies the mode when it creates the file.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("repo.ExportRepo.CopyFile: chmod: %w", err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("repo.ExportRepo.CopyFile: chtimes: %w", err)
	}
	return nil
}
