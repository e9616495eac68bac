// Package config loads vapor's configuration by merging built-in
// defaults, the user's vapor.toml, and VAPOR_* environment variables.
package config

import (
	"os"
	"strings"
	"time"

	stderrors "errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Elsie19/vapor/pkg/errors"
)

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Config is vapor's merged configuration.
type Config struct {
	// GameRoot is the game installation directory all relative paths are
	// resolved against.
	GameRoot string `koanf:"game_root"`

	// AllowedRoots restricts which top-level directories mod files may
	// land in. Empty disables the restriction.
	AllowedRoots []string `koanf:"allowed_roots"`

	// Created records when `vapor init` wrote the config file.
	Created time.Time `koanf:"created"`
}

// Load merges defaults, the config file at configPath (skipped when the
// file does not exist), and VAPOR_* environment variables.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	// 2. User config file, if present
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configPath)
			}
		}
	}

	// 3. Environment overrides: VAPOR_GAME_ROOT -> game_root
	if err := k.Load(env.Provider("VAPOR_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "VAPOR_"))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeHookFunc(time.RFC3339),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	return &cfg, nil
}
