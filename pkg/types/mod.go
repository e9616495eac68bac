package types

import (
	"sort"
	"time"
)

// ModState is the lifecycle state of an installed mod. A mod that has been
// removed has no record at all, so there is no "removed" state.
type ModState string

const (
	StateEnabled  ModState = "enabled"
	StateDisabled ModState = "disabled"
)

// IsValid reports whether s is one of the known states.
func (s ModState) IsValid() bool {
	return s == StateEnabled || s == StateDisabled
}

// FileEntry is one physical file managed on behalf of a mod.
type FileEntry struct {
	// RelPath is the file's path relative to the game root. While the
	// owning mod is enabled, no other enabled mod may hold the same path.
	RelPath string `toml:"path"`

	// Checksum is the content hash recorded at install time, in the
	// "sha256:<hex>" form. Used to detect drift before any move.
	Checksum string `toml:"checksum"`

	// Quarantine is the absolute path of the file's bytes while the owning
	// mod is disabled. Empty while the mod is enabled.
	Quarantine string `toml:"quarantine,omitempty"`
}

// ModRecord is the ledger entry for one installed mod.
type ModRecord struct {
	// Name is the map key in the ledger; filled in on load, never
	// serialized twice.
	Name string `toml:"-"`

	// Version is an opaque, user-supplied string. Never interpreted.
	Version string `toml:"version"`

	// Dependencies is informational only. vapor stores and displays it but
	// no operation reads it.
	Dependencies []string `toml:"dependencies,omitempty"`

	State ModState `toml:"state"`

	// InstalledAt is set when the mod's files land in the game root (add
	// or enable) and zeroed on disable.
	InstalledAt time.Time `toml:"installed_at"`

	Files []FileEntry `toml:"files"`
}

// SortedFiles returns the mod's file entries ordered lexicographically by
// relative path. All multi-file operations use this ordering so retries
// after a partial failure behave predictably.
func (m *ModRecord) SortedFiles() []FileEntry {
	out := make([]FileEntry, len(m.Files))
	copy(out, m.Files)
	sort.Slice(out, func(i, j int) bool { return out[i].RelPath < out[j].RelPath })
	return out
}

// RelPaths returns the sorted relative paths of the mod's files.
func (m *ModRecord) RelPaths() []string {
	paths := make([]string, 0, len(m.Files))
	for _, f := range m.Files {
		paths = append(paths, f.RelPath)
	}
	sort.Strings(paths)
	return paths
}
