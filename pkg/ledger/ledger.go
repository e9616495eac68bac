// Package ledger persists the mod registry as a single TOML file. The
// on-disk ledger is always either the pre-operation or post-operation
// snapshot: commits serialize to a temporary file in the same directory
// and atomically rename it over the previous ledger.
package ledger

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/Elsie19/vapor/pkg/errors"
	"github.com/Elsie19/vapor/pkg/logging"
	"github.com/Elsie19/vapor/pkg/types"
)

// Store is the single source of truth for mod and file state.
type Store struct {
	fs   types.FS
	path string
}

// New creates a Store persisting to the given ledger path.
func New(fsys types.FS, path string) *Store {
	return &Store{fs: fsys, path: path}
}

// Path returns the ledger file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the current snapshot. A missing ledger file yields an empty
// snapshot; an unreadable or malformed one yields LEDGER_CORRUPT and is
// never auto-repaired.
func (s *Store) Load() (*types.Snapshot, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) || stderrors.Is(err, fs.ErrNotExist) {
			return types.NewSnapshot(), nil
		}
		return nil, errors.Wrap(err, errors.ErrIO, "failed to read ledger").
			WithDetail("path", s.path)
	}

	var snap types.Snapshot
	if err := gotoml.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(err, errors.ErrLedgerCorrupt, "ledger is unreadable; fix or reset it manually").
			WithDetail("path", s.path)
	}
	if snap.Mods == nil {
		snap.Mods = make(map[string]*types.ModRecord)
	}

	// Records carry their map key as Name in memory.
	for name, rec := range snap.Mods {
		rec.Name = name
	}

	if err := validate(&snap); err != nil {
		return nil, err
	}

	return &snap, nil
}

// Commit atomically replaces the ledger with the given snapshot. A crash
// mid-write leaves the previous valid snapshot intact.
func (s *Store) Commit(snap *types.Snapshot) error {
	logger := logging.GetLogger("ledger")

	data, err := gotoml.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to serialize ledger")
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to create ledger directory").
			WithDetail("path", dir)
	}

	// Temp file in the same directory so the rename is atomic.
	tmp := filepath.Join(dir, fmt.Sprintf("%s.tmp-%s", filepath.Base(s.path), uuid.NewString()))
	if err := s.fs.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to write ledger").
			WithDetail("path", tmp)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrap(err, errors.ErrIO, "failed to replace ledger").
			WithDetail("path", s.path)
	}

	logger.Debug().Str("path", s.path).Int("mods", len(snap.Mods)).Msg("Ledger committed")
	return nil
}

// validate enforces snapshot invariants: states are known, enabled entries
// carry no quarantine path, disabled entries do, and no relative path has
// two enabled owners. A ledger violating these was written by something
// other than vapor and is treated as corrupt.
func validate(snap *types.Snapshot) error {
	enabledOwners := make(map[string]string)
	for name, rec := range snap.Mods {
		if !rec.State.IsValid() {
			return errors.Newf(errors.ErrLedgerCorrupt, "mod %q has unknown state %q", name, rec.State)
		}
		for _, f := range rec.Files {
			switch rec.State {
			case types.StateEnabled:
				if f.Quarantine != "" {
					return errors.Newf(errors.ErrLedgerCorrupt,
						"enabled mod %q has quarantined file %q", name, f.RelPath)
				}
				if prev, ok := enabledOwners[f.RelPath]; ok {
					return errors.Newf(errors.ErrLedgerCorrupt,
						"path %q is enabled for both %q and %q", f.RelPath, prev, name)
				}
				enabledOwners[f.RelPath] = name
			case types.StateDisabled:
				if f.Quarantine == "" {
					return errors.Newf(errors.ErrLedgerCorrupt,
						"disabled mod %q has no quarantine path for %q", name, f.RelPath)
				}
			}
		}
	}
	return nil
}
