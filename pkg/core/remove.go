package core

import (
	"github.com/Elsie19/vapor/pkg/types"
)

// RemoveResult describes a remove, including the partial-failure case.
type RemoveResult struct {
	Name    string   `json:"name"`
	Deleted []string `json:"deleted"`
	// Remaining lists files that could not be deleted. The mod stays in
	// the ledger owning exactly these files; a retry operates on them
	// alone.
	Remaining []string `json:"remaining,omitempty"`
}

// Remove deletes a mod's files and drops it from the ledger: enabled or
// disabled -> absent. This is the one transition where atomicity is
// relaxed: files already deleted are never restored. On partial failure
// the record is committed with only the surviving files so the ledger
// keeps describing what is actually on disk, and the error is returned
// alongside the partial result.
func (m *Manager) Remove(name string) (*RemoveResult, error) {
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

	deleted, rmErr := m.engine.Remove(rec)
	if rmErr == nil {
		delete(snap.Mods, name)
		if err := m.store.Commit(snap); err != nil {
			return nil, err
		}
		m.log.Info().Str("mod", name).Int("files", len(deleted)).Msg("Mod removed")
		return &RemoveResult{Name: name, Deleted: deleted}, nil
	}

	// Partial failure: keep the record, owning only the survivors.
	gone := make(map[string]bool, len(deleted))
	for _, p := range deleted {
		gone[p] = true
	}
	var remaining []types.FileEntry
	for _, f := range rec.Files {
		if !gone[f.RelPath] {
			remaining = append(remaining, f)
		}
	}
	rec.Files = remaining

	if err := m.store.Commit(snap); err != nil {
		return nil, err
	}

	result := &RemoveResult{Name: name, Deleted: deleted}
	for _, f := range remaining {
		result.Remaining = append(result.Remaining, f.RelPath)
	}
	m.log.Warn().Str("mod", name).
		Int("deleted", len(deleted)).
		Int("remaining", len(remaining)).
		Msg("Mod partially removed; retry to delete the rest")
	return result, rmErr
}
