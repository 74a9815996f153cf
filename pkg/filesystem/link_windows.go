//go:build windows

package filesystem

import (
	"io/fs"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// Creating symlinks on Windows requires SeCreateSymbolicLinkPrivilege, which
// normally means an elevated process.

func symlinkFile(src, dest string) error {
	return createSymbolicLink(src, dest, 0)
}

func symlinkDir(src, dest string) error {
	return createSymbolicLink(src, dest, windows.SYMBOLIC_LINK_FLAG_DIRECTORY)
}

func createSymbolicLink(src, dest string, flags uint32) error {
	linkPtr, err := windows.UTF16PtrFromString(filepath.FromSlash(dest))
	if err != nil {
		return &fs.PathError{Op: "symlink", Path: dest, Err: err}
	}
	targetPtr, err := windows.UTF16PtrFromString(filepath.FromSlash(src))
	if err != nil {
		return &fs.PathError{Op: "symlink", Path: dest, Err: err}
	}
	if err := windows.CreateSymbolicLink(linkPtr, targetPtr, flags); err != nil {
		return &fs.PathError{Op: "symlink", Path: dest, Err: err}
	}
	return nil
}
