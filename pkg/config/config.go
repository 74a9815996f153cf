package config

import (
	_ "embed"
	stderrors "errors"
	"strings"

	"github.com/arthur-debert/cleanfig/pkg/errors"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "CLEANFIG_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the ambient settings
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Output OutputConfig `koanf:"output"`
}

// LogConfig controls logger setup
type LogConfig struct {
	Verbosity int  `koanf:"verbosity"`
	File      bool `koanf:"file"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Color string `koanf:"color"`
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Load reads the embedded defaults and applies environment overrides
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Environment, CLEANFIG_LOG_VERBOSITY -> log.verbosity
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	cfg.Output.Color = strings.ToLower(cfg.Output.Color)
	switch cfg.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "invalid output.color %q", cfg.Output.Color).
			WithDetail("value", cfg.Output.Color)
	}

	return &cfg, nil
}

// envKey maps CLEANFIG_SECTION_KEY to section.key. Only the first
// underscore separates section from key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}
