// Package config handles ambient settings for cleanfig: logging and output.
// Defaults are embedded TOML; CLEANFIG_* environment variables override them
// (CLEANFIG_LOG_VERBOSITY sets log.verbosity). Command-line flags are applied
// on top by the caller.
package config
