package types

import "sort"

// Snapshot is the full in-memory ledger state. Callers load a snapshot,
// mutate a copy, and commit the whole thing back; there are no partial
// updates.
type Snapshot struct {
	Mods map[string]*ModRecord `toml:"mods"`
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{Mods: make(map[string]*ModRecord)}
}

// Clone returns a deep copy of the snapshot. Mutating operations work on a
// clone so a failed transfer leaves the loaded snapshot untouched.
func (s *Snapshot) Clone() *Snapshot {
	out := NewSnapshot()
	for name, rec := range s.Mods {
		cp := *rec
		cp.Dependencies = append([]string(nil), rec.Dependencies...)
		cp.Files = append([]FileEntry(nil), rec.Files...)
		out.Mods[name] = &cp
	}
	return out
}

// EnabledOwner returns the name of the enabled mod owning relPath, if any.
func (s *Snapshot) EnabledOwner(relPath string) (string, bool) {
	for name, rec := range s.Mods {
		if rec.State != StateEnabled {
			continue
		}
		for _, f := range rec.Files {
			if f.RelPath == relPath {
				return name, true
			}
		}
	}
	return "", false
}

// SortedModNames returns all mod names in lexicographic order.
func (s *Snapshot) SortedModNames() []string {
	names := make([]string, 0, len(s.Mods))
	for name := range s.Mods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
