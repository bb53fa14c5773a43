package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateDataDir creates a temporary data directory holding files
// (name to content)
func CreateDataDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		WriteDataFile(t, dir, name, content)
	}
	return dir
}

// WriteDataFile writes one file into dir
func WriteDataFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}

// ReadFile reads a file written by a command under test
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
