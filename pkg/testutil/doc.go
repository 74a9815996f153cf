// Package testutil provides utilities for testing cleanfig components.
//
// Key components:
//   - TestEnvironment: an isolated home directory on the real filesystem,
//     with the configuration root already created
//   - MockLinkCreator: a types.LinkCreator with injectable behavior
//   - FaultyFS: a types.FS wrapper that injects errors for chosen paths
//
// Linker tests run against real temp directories because symlink semantics
// (Lstat versus Stat, dangling links) are the thing under test.
package testutil
