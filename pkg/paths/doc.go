// Package paths provides centralized path handling for cleanfig.
//
// Home directory resolution is the only place cleanfig consults the
// environment. Everything downstream receives the resolved home as a plain
// string, so the linker can run against synthetic homes in tests.
package paths
