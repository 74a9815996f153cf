package testutil

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/cleanfig/pkg/types"
)

// MockLinkCreator is a mock implementation of types.LinkCreator for testing.
// Calls are recorded; nil funcs succeed without touching the filesystem.
type MockLinkCreator struct {
	LinkFileAtFunc func(src, dest string) error
	LinkDirAtFunc  func(src, dest string) error

	FileLinks [][2]string
	DirLinks  [][2]string
}

// LinkFileAt records the call and runs the mock's function.
func (m *MockLinkCreator) LinkFileAt(src, dest string) error {
	m.FileLinks = append(m.FileLinks, [2]string{src, dest})
	if m.LinkFileAtFunc != nil {
		return m.LinkFileAtFunc(src, dest)
	}
	return nil
}

// LinkDirAt records the call and runs the mock's function.
func (m *MockLinkCreator) LinkDirAt(src, dest string) error {
	m.DirLinks = append(m.DirLinks, [2]string{src, dest})
	if m.LinkDirAtFunc != nil {
		return m.LinkDirAtFunc(src, dest)
	}
	return nil
}

// Calls returns the total number of link calls
func (m *MockLinkCreator) Calls() int {
	return len(m.FileLinks) + len(m.DirLinks)
}

// DeniedLinkCreator fails every call with a permission error, the way an
// unprivileged process fails on Windows.
func DeniedLinkCreator() *MockLinkCreator {
	deny := func(src, dest string) error {
		return &fs.PathError{Op: "symlink", Path: dest, Err: fs.ErrPermission}
	}
	return &MockLinkCreator{LinkFileAtFunc: deny, LinkDirAtFunc: deny}
}

// FaultyFS wraps a types.FS and returns the injected error for any
// operation on a path in Errors. Directories in PartialErrors are listed
// with their first entry only, followed by the injected error, the way a
// listing fails partway through.
type FaultyFS struct {
	types.FS
	Errors        map[string]error
	PartialErrors map[string]error
}

// NewFaultyFS creates a FaultyFS around base
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{
		FS:            base,
		Errors:        make(map[string]error),
		PartialErrors: make(map[string]error),
	}
}

// FailPartway injects err after the first entry of a ReadDir on dir
func (f *FaultyFS) FailPartway(dir string, err error) {
	f.PartialErrors[filepath.Clean(dir)] = err
}

// Fail injects err for path
func (f *FaultyFS) Fail(path string, err error) {
	f.Errors[filepath.Clean(path)] = err
}

func (f *FaultyFS) injected(path string) error {
	return f.Errors[filepath.Clean(path)]
}

func (f *FaultyFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.injected(name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.injected(name); err != nil {
		return nil, err
	}
	entries, err := f.FS.ReadDir(name)
	if err != nil {
		return entries, err
	}
	if perr := f.PartialErrors[filepath.Clean(name)]; perr != nil && len(entries) > 0 {
		return entries[:1], perr
	}
	return entries, nil
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.injected(path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}
