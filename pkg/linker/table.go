package linker

import "github.com/arthur-debert/cleanfig/pkg/types"

// mappings is the complete set of entries the configuration root may hold.
// Destinations are slash-separated and relative to the home directory.
var mappings = map[string]types.Mapping{
	"alacritty.yml": {Kind: types.KindFile, Destination: "AppData/Roaming/alacritty/alacritty.yml"},
	"nvim":          {Kind: types.KindDirectory, Destination: "AppData/Local/nvim"},
	"starship.toml": {Kind: types.KindFile, Destination: ".config/starship.toml"},
	"topgrade.toml": {Kind: types.KindFile, Destination: "AppData/Roaming/topgrade.toml"},

	".git":      {Kind: types.KindIgnore},
	"README.md": {Kind: types.KindIgnore},
}

// Lookup resolves an entry name against the mapping table. Matching is
// case-sensitive. ok is false for names the table does not know.
func Lookup(name string) (m types.Mapping, ok bool) {
	m, ok = mappings[name]
	return m, ok
}
