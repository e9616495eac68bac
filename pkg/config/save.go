package config

import (
	"path/filepath"
	"time"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/Elsie19/vapor/pkg/errors"
	"github.com/Elsie19/vapor/pkg/types"
)

// fileConfig is the on-disk shape of vapor.toml. Only fields the user is
// expected to edit (or init writes) appear here.
type fileConfig struct {
	GameRoot     string    `toml:"game_root"`
	AllowedRoots []string  `toml:"allowed_roots,omitempty"`
	Created      time.Time `toml:"created"`
}

// Save writes the config file for `vapor init`, creating parent
// directories as needed.
func Save(fsys types.FS, path string, cfg *Config) error {
	out := fileConfig{
		GameRoot:     cfg.GameRoot,
		AllowedRoots: cfg.AllowedRoots,
		Created:      cfg.Created,
	}
	if out.Created.IsZero() {
		out.Created = time.Now().UTC()
	}

	data, err := gotoml.Marshal(out)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to serialize config")
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to create config directory").
			WithDetail("path", filepath.Dir(path))
	}
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to write config file").
			WithDetail("path", path)
	}
	return nil
}
