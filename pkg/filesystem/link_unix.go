//go:build !windows

package filesystem

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// Unix symlinks carry no file/directory distinction.

func symlinkFile(src, dest string) error {
	return symlink(src, dest)
}

func symlinkDir(src, dest string) error {
	return symlink(src, dest)
}

func symlink(src, dest string) error {
	if err := unix.Symlink(src, dest); err != nil {
		return &fs.PathError{Op: "symlink", Path: dest, Err: err}
	}
	return nil
}
