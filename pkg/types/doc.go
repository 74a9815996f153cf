// Package types defines the core types and interfaces shared across cleanfig.
// This includes the FS and LinkCreator interfaces the linker depends on, the
// link kinds of the mapping table, and the per-entry outcome of a run.
package types
