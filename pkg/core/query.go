package core

import (
	"time"

	"github.com/Elsie19/vapor/pkg/types"
)

// Queries are read-only projections over the ledger. They never take the
// advisory lock: commits are atomic renames, so a concurrent reader
// always observes either the pre- or post-state, never a torn one.

// ModInfo is the list projection of one mod.
type ModInfo struct {
	Name      string         `json:"name"`
	Version   string         `json:"version"`
	State     types.ModState `json:"state"`
	FileCount int            `json:"file_count"`
}

// FileStatus is the status projection of one tracked file.
type FileStatus struct {
	RelPath  string `json:"path"`
	Checksum string `json:"checksum"`
	Size     int64  `json:"size"`
	// Missing is set when the file is not where the ledger says it
	// should be; the user modified the installation outside vapor.
	Missing bool `json:"missing,omitempty"`
}

// ModStatus is the full status projection of one mod.
type ModStatus struct {
	Name         string         `json:"name"`
	Version      string         `json:"version"`
	State        types.ModState `json:"state"`
	Dependencies []string       `json:"dependencies,omitempty"`
	InstalledAt  time.Time      `json:"installed_at,omitempty"`
	Files        []FileStatus   `json:"files"`
}

// List returns every installed mod, sorted by name.
func (m *Manager) List() ([]ModInfo, error) {
	snap, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	mods := make([]ModInfo, 0, len(snap.Mods))
	for _, name := range snap.SortedModNames() {
		rec := snap.Mods[name]
		mods = append(mods, ModInfo{
			Name:      name,
			Version:   rec.Version,
			State:     rec.State,
			FileCount: len(rec.Files),
		})
	}
	return mods, nil
}

// Status returns the full record of one mod, with per-file checksum and
// on-disk size.
func (m *Manager) Status(name string) (*ModStatus, error) {
	snap, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	rec, err := findMod(snap, name)
	if err != nil {
		return nil, err
	}

	status := &ModStatus{
		Name:         rec.Name,
		Version:      rec.Version,
		State:        rec.State,
		Dependencies: rec.Dependencies,
		InstalledAt:  rec.InstalledAt,
	}
	for _, f := range rec.SortedFiles() {
		fileStatus := FileStatus{RelPath: f.RelPath, Checksum: f.Checksum}
		location := f.Quarantine
		if rec.State == types.StateEnabled {
			location = m.paths.InGameRoot(f.RelPath)
		}
		if info, err := m.fs.Stat(location); err == nil {
			fileStatus.Size = info.Size()
		} else {
			fileStatus.Missing = true
		}
		status.Files = append(status.Files, fileStatus)
	}
	return status, nil
}

// Files returns the sorted relative paths a mod owns.
func (m *Manager) Files(name string) ([]string, error) {
	snap, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	rec, err := findMod(snap, name)
	if err != nil {
		return nil, err
	}
	return rec.RelPaths(), nil
}
