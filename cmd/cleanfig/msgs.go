package cleanfig

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Link configuration files from ~/.config/cleanfig into place"
	MsgStatusShort  = "Show the link state of every configuration entry"
	MsgVersionShort = "Print version information"
	MsgManShort     = "Generate man pages"

	// Flags
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Show which links would be created without creating them"
	MsgFlagOutput  = "Output format: text, json, yaml or toml"

	// Dry run output
	MsgDryRunNotice    = "DRY RUN MODE - No changes were made"
	MsgDryRunPlanned   = "  would link %s -> %s\n"
	MsgDryRunNothingTo = "Nothing to link."
)

// MsgRootLong is the long description of the root command
const MsgRootLong = `cleanfig links the entries of ~/.config/cleanfig to the places
applications expect their configuration:

  alacritty.yml  ~/AppData/Roaming/alacritty/alacritty.yml
  nvim           ~/AppData/Local/nvim
  starship.toml  ~/.config/starship.toml
  topgrade.toml  ~/AppData/Roaming/topgrade.toml

.git and README.md are ignored. Any other entry is an error.

Existing symlinks are left as they are. Existing files are never
overwritten. On success cleanfig prints nothing.`
