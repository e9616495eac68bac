package core

import (
	"time"

	"github.com/Elsie19/vapor/pkg/conflict"
	"github.com/Elsie19/vapor/pkg/errors"
	"github.com/Elsie19/vapor/pkg/source"
	"github.com/Elsie19/vapor/pkg/types"
)

// AddOptions defines the options for the Add transition.
type AddOptions struct {
	// Name is the unique, case-sensitive mod identifier.
	Name string
	// Version is stored verbatim, never interpreted.
	Version string
	// Dependencies are stored for display only; vapor never resolves them.
	Dependencies []string
	// Files is the resolved set of files to install, from pkg/source.
	Files []source.File
}

// AddResult describes a successful add.
type AddResult struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	FileCount int      `json:"file_count"`
	Files     []string `json:"files"`
}

// Add installs a new mod: absent -> enabled. On any failure the ledger is
// unchanged and no files are left in the game root.
func (m *Manager) Add(opts AddOptions) (*AddResult, error) {
	logger := m.log.With().Str("mod", opts.Name).Logger()

	if opts.Name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "mod name must not be empty")
	}
	if len(opts.Files) == 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "mod %q has no files to install", opts.Name).
			WithDetail("mod", opts.Name)
	}

	lock, err := m.lock()
	if err != nil {
		return nil, err
	}
	defer lock.Release()

	snap, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	if _, exists := snap.Mods[opts.Name]; exists {
		return nil, errors.Newf(errors.ErrNameAlreadyExists, "mod %q is already installed", opts.Name).
			WithDetail("mod", opts.Name)
	}

	relPaths := make([]string, 0, len(opts.Files))
	for _, f := range opts.Files {
		relPaths = append(relPaths, f.RelPath)
	}
	if err := conflict.Check(snap, opts.Name, relPaths); err != nil {
		return nil, err
	}

	entries, err := m.engine.Install(opts.Name, opts.Files)
	if err != nil {
		return nil, err
	}

	rec := &types.ModRecord{
		Name:         opts.Name,
		Version:      opts.Version,
		Dependencies: opts.Dependencies,
		State:        types.StateEnabled,
		InstalledAt:  time.Now().UTC(),
		Files:        entries,
	}
	snap.Mods[opts.Name] = rec

	if err := m.store.Commit(snap); err != nil {
		// The files are in place but the ledger does not know them; undo
		// the install so both sides agree again.
		if _, rmErr := m.engine.Remove(rec); rmErr != nil {
			logger.Warn().Err(rmErr).Msg("Could not undo install after failed commit")
		}
		return nil, err
	}

	logger.Info().Str("version", opts.Version).Int("files", len(entries)).Msg("Mod added")
	return &AddResult{
		Name:      opts.Name,
		Version:   opts.Version,
		FileCount: len(entries),
		Files:     rec.RelPaths(),
	}, nil
}
