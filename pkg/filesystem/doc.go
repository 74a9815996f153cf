// Package filesystem provides filesystem implementations for cleanfig.
//
// This package contains the OS implementation of types.FS and the platform
// adapter behind types.LinkCreator. Platform-specific link creation lives in
// link_unix.go and link_windows.go; nothing else in the module knows which
// system call creates a link.
package filesystem
