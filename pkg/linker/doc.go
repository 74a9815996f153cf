// Package linker links the entries of the cleanfig configuration root into
// the locations applications read their configuration from.
//
// A run lists $HOME/.config/cleanfig once and resolves every entry against a
// fixed mapping table:
//
//	alacritty.yml  -> AppData/Roaming/alacritty/alacritty.yml  (file)
//	nvim           -> AppData/Local/nvim                       (directory)
//	starship.toml  -> .config/starship.toml                    (file)
//	topgrade.toml  -> AppData/Roaming/topgrade.toml            (file)
//	.git, README.md                                            (ignored)
//
// File destinations are checked: an existing symlink counts as already
// linked, whatever it points at, and any other existing node is an error.
// Directory destinations are only ever created; if something is already
// there the entry is left alone without inspection.
//
// The first error stops the run. Links created before it are kept.
package linker
