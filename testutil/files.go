// Package testutil provides shared helpers for filesystem-backed tests.
// Everything is created under t.TempDir(), so the test framework removes it.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates dir/name with content and returns the full path.
// The test fails immediately if the file cannot be written.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("testutil.WriteFile: %v", err)
	}
	return p
}

// PhotoDir returns a fresh temporary folder holding one file per name.
// Each file's content is PhotoContent(name), so copies can be traced back.
func PhotoDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		WriteFile(t, dir, n, PhotoContent(n))
	}
	return dir
}

// PhotoContent is the placeholder body PhotoDir writes for name.
func PhotoContent(name string) string {
	return "img " + name
}

// DirNames lists the entry names of dir in lexical order.
func DirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("testutil.DirNames: %v", err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}
