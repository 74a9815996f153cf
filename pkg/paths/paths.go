package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/arthur-debert/cleanfig/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// ConfigRootDir is the configuration store, relative to the home directory.
// It is not user-configurable.
const ConfigRootDir = ".config/cleanfig"

// LookupFunc has the shape of os.LookupEnv
type LookupFunc func(key string) (string, bool)

// GetHomeDirectory returns the home directory from the HOME environment
// variable. Unlike os.UserHomeDir it never falls back to platform defaults:
// a missing value is an error the user has to fix.
func GetHomeDirectory() (string, error) {
	return HomeFromEnv(os.LookupEnv)
}

// HomeFromEnv resolves the home directory through lookup. An unset or empty
// variable and a value that is not valid UTF-8 both yield an ENV_VAR error.
func HomeFromEnv(lookup LookupFunc) (string, error) {
	home, ok := lookup(EnvHome)
	if !ok || home == "" {
		return "", errors.EnvVar("environment variable not found").WithDetail("var", EnvHome)
	}
	if !utf8.ValidString(home) {
		return "", errors.EnvVar(fmt.Sprintf("environment variable was not valid unicode: %q", home)).
			WithDetail("var", EnvHome)
	}
	return home, nil
}

// ConfigRoot returns the configuration root for the given home directory
func ConfigRoot(home string) string {
	return Join(home, ConfigRootDir)
}

// Join joins a slash-separated relative path onto the home directory using
// the platform separator.
func Join(home, rel string) string {
	return filepath.Join(home, filepath.FromSlash(rel))
}
