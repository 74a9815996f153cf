package types

import (
	"io/fs"
)

// FS defines the read side of the filesystem the linker needs.
// This allows for easy mocking in tests.
type FS interface {
	// Lstat inspects the node itself without following a final symlink
	Lstat(name string) (fs.FileInfo, error)

	// ReadDir lists the immediate entries of a directory
	ReadDir(name string) ([]fs.DirEntry, error)

	// Readlink returns the target of a symlink
	Readlink(name string) (string, error)

	// MkdirAll creates a directory and any missing parents
	MkdirAll(path string, perm fs.FileMode) error
}

// LinkCreator is the platform capability for creating links. File and
// directory links are separate operations because some platforms (Windows)
// need to know the kind up front.
type LinkCreator interface {
	// LinkFileAt creates a symbolic link at dest pointing to the file src.
	LinkFileAt(src, dest string) error

	// LinkDirAt creates a symbolic link at dest pointing to the directory src.
	LinkDirAt(src, dest string) error
}
