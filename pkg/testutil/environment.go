package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cleanfig/pkg/paths"
)

// TestEnvironment is an isolated home directory for a single test
type TestEnvironment struct {
	HomeDir    string
	ConfigRoot string

	t *testing.T
}

// NewTestEnvironment creates a temp home with an empty configuration root.
// HOME is pointed at it for the duration of the test.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := NewBareEnvironment(t)
	if err := os.MkdirAll(env.ConfigRoot, 0755); err != nil {
		t.Fatalf("Failed to create configuration root: %v", err)
	}
	return env
}

// NewBareEnvironment creates a temp home without a configuration root
func NewBareEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	home := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(home, 0755); err != nil {
		t.Fatalf("Failed to create home: %v", err)
	}
	t.Setenv(paths.EnvHome, home)

	return &TestEnvironment{
		HomeDir:    home,
		ConfigRoot: paths.ConfigRoot(home),
		t:          t,
	}
}

// AddFile creates a file entry in the configuration root and returns its path
func (env *TestEnvironment) AddFile(name, content string) string {
	env.t.Helper()

	path := filepath.Join(env.ConfigRoot, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write entry %s: %v", name, err)
	}
	return path
}

// AddDir creates a directory entry in the configuration root and returns its path
func (env *TestEnvironment) AddDir(name string) string {
	env.t.Helper()

	path := filepath.Join(env.ConfigRoot, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		env.t.Fatalf("Failed to create entry %s: %v", name, err)
	}
	return path
}

// Path returns the absolute path of a slash-separated path relative to home
func (env *TestEnvironment) Path(rel string) string {
	return paths.Join(env.HomeDir, rel)
}

// WriteHomeFile creates a regular file relative to home, with parents
func (env *TestEnvironment) WriteHomeFile(rel, content string) string {
	env.t.Helper()

	path := env.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create parent of %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", rel, err)
	}
	return path
}

// MkdirHome creates a directory relative to home
func (env *TestEnvironment) MkdirHome(rel string) string {
	env.t.Helper()

	path := env.Path(rel)
	if err := os.MkdirAll(path, 0755); err != nil {
		env.t.Fatalf("Failed to create %s: %v", rel, err)
	}
	return path
}

// SymlinkHome creates a symlink relative to home pointing at target
func (env *TestEnvironment) SymlinkHome(rel, target string) string {
	env.t.Helper()

	path := env.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create parent of %s: %v", rel, err)
	}
	if err := os.Symlink(target, path); err != nil {
		env.t.Fatalf("Failed to symlink %s: %v", rel, err)
	}
	return path
}
