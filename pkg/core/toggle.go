package core

import (
	"time"

	"github.com/Elsie19/vapor/pkg/conflict"
	"github.com/Elsie19/vapor/pkg/errors"
	"github.com/Elsie19/vapor/pkg/types"
)

// ToggleResult describes a successful enable or disable.
type ToggleResult struct {
	Name      string         `json:"name"`
	State     types.ModState `json:"state"`
	FileCount int            `json:"file_count"`
}

// Disable moves a mod's files into quarantine: enabled -> disabled. On
// failure (drift or IO) the ledger is unchanged.
func (m *Manager) Disable(name string) (*ToggleResult, error) {
	lock, err := m.lock()
	if err != nil {
		return nil, err
	}
	defer lock.Release()

	snap, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	rec, err := findMod(snap, name)
	if err != nil {
		return nil, err
	}
	if rec.State == types.StateDisabled {
		return nil, errors.Newf(errors.ErrInvalidStateTransition, "mod %q is already disabled", name).
			WithDetail("mod", name)
	}

	if err := m.engine.Disable(rec); err != nil {
		return nil, err
	}

	rec.State = types.StateDisabled
	rec.InstalledAt = time.Time{}

	if err := m.store.Commit(snap); err != nil {
		return nil, err
	}

	m.log.Info().Str("mod", name).Msg("Mod disabled")
	return &ToggleResult{Name: name, State: rec.State, FileCount: len(rec.Files)}, nil
}

// Enable restores a mod's files from quarantine: disabled -> enabled.
// Conflict resolution runs again first, because other mods may have
// claimed the paths while this mod was disabled.
func (m *Manager) Enable(name string) (*ToggleResult, error) {
	lock, err := m.lock()
	if err != nil {
		return nil, err
	}
	defer lock.Release()

	snap, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	rec, err := findMod(snap, name)
	if err != nil {
		return nil, err
	}
	if rec.State == types.StateEnabled {
		return nil, errors.Newf(errors.ErrInvalidStateTransition, "mod %q is already enabled", name).
			WithDetail("mod", name)
	}

	if err := conflict.Check(snap, name, rec.RelPaths()); err != nil {
		return nil, err
	}

	if err := m.engine.Enable(rec); err != nil {
		return nil, err
	}

	rec.State = types.StateEnabled
	rec.InstalledAt = time.Now().UTC()

	if err := m.store.Commit(snap); err != nil {
		return nil, err
	}

	m.log.Info().Str("mod", name).Msg("Mod enabled")
	return &ToggleResult{Name: name, State: rec.State, FileCount: len(rec.Files)}, nil
}

// findMod resolves a mod by exact, case-sensitive name.
func findMod(snap *types.Snapshot, name string) (*types.ModRecord, error) {
	rec, ok := snap.Mods[name]
	if !ok {
		return nil, errors.Newf(errors.ErrModNotFound, "no mod named %q is installed", name).
			WithDetail("mod", name)
	}
	return rec, nil
}
