package testutil

import (
	"os"
	"testing"
)

// AssertSymlinkTo checks that path is a symlink whose target is exactly target
func AssertSymlinkTo(t *testing.T, path, target string) {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		t.Errorf("Expected symlink at %s: %v", path, err)
		return
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("Expected %s to be a symlink, mode is %v", path, info.Mode())
		return
	}
	got, err := os.Readlink(path)
	if err != nil {
		t.Errorf("Failed to read link %s: %v", path, err)
		return
	}
	if got != target {
		t.Errorf("Symlink %s points to %q, expected %q", path, got, target)
	}
}

// AssertNotExists checks that nothing, not even a dangling link, is at path
func AssertNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Lstat(path); err == nil {
		t.Errorf("Expected %s not to exist", path)
	} else if !os.IsNotExist(err) {
		t.Errorf("Unexpected error checking %s: %v", path, err)
	}
}

// AssertRegularFile checks that path is a regular file with the given content
func AssertRegularFile(t *testing.T, path, content string) {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		t.Errorf("Expected file at %s: %v", path, err)
		return
	}
	if !info.Mode().IsRegular() {
		t.Errorf("Expected %s to be a regular file, mode is %v", path, info.Mode())
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("Failed to read %s: %v", path, err)
		return
	}
	if string(data) != content {
		t.Errorf("File %s has content %q, expected %q", path, data, content)
	}
}
