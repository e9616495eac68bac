package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModState_IsValid(t *testing.T) {
	assert.True(t, StateEnabled.IsValid())
	assert.True(t, StateDisabled.IsValid())
	assert.False(t, ModState("removed").IsValid())
	assert.False(t, ModState("").IsValid())
}

func TestModRecord_SortedFiles(t *testing.T) {
	rec := &ModRecord{
		Name: "test-mod",
		Files: []FileEntry{
			{RelPath: "r6/scripts/z.reds"},
			{RelPath: "archive/pc/mod/a.archive"},
			{RelPath: "bin/x64/plugins/m.dll"},
		},
	}

	sorted := rec.SortedFiles()
	assert.Equal(t, "archive/pc/mod/a.archive", sorted[0].RelPath)
	assert.Equal(t, "bin/x64/plugins/m.dll", sorted[1].RelPath)
	assert.Equal(t, "r6/scripts/z.reds", sorted[2].RelPath)

	// The record itself is untouched.
	assert.Equal(t, "r6/scripts/z.reds", rec.Files[0].RelPath)
}

func TestModRecord_RelPaths(t *testing.T) {
	rec := &ModRecord{
		Files: []FileEntry{
			{RelPath: "b/two"},
			{RelPath: "a/one"},
		},
	}
	assert.Equal(t, []string{"a/one", "b/two"}, rec.RelPaths())
}

func TestSnapshot_EnabledOwner(t *testing.T) {
	snap := NewSnapshot()
	snap.Mods["enabled-mod"] = &ModRecord{
		State: StateEnabled,
		Files: []FileEntry{{RelPath: "archive/pc/mod/a.archive"}},
	}
	snap.Mods["disabled-mod"] = &ModRecord{
		State: StateDisabled,
		Files: []FileEntry{{RelPath: "r6/scripts/b.reds", Quarantine: "/q/b.reds"}},
	}

	owner, ok := snap.EnabledOwner("archive/pc/mod/a.archive")
	assert.True(t, ok)
	assert.Equal(t, "enabled-mod", owner)

	// Disabled mods own nothing in the game root.
	_, ok = snap.EnabledOwner("r6/scripts/b.reds")
	assert.False(t, ok)

	_, ok = snap.EnabledOwner("bin/unknown.dll")
	assert.False(t, ok)
}

func TestSnapshot_Clone(t *testing.T) {
	snap := NewSnapshot()
	snap.Mods["mod"] = &ModRecord{
		State:        StateEnabled,
		Dependencies: []string{"dep"},
		Files:        []FileEntry{{RelPath: "bin/a.dll", Checksum: "sha256:aa"}},
	}

	clone := snap.Clone()
	clone.Mods["mod"].Files[0].Checksum = "sha256:bb"
	clone.Mods["mod"].Dependencies[0] = "other"
	delete(clone.Mods, "mod")

	assert.Equal(t, "sha256:aa", snap.Mods["mod"].Files[0].Checksum)
	assert.Equal(t, "dep", snap.Mods["mod"].Dependencies[0])
}

func TestSnapshot_SortedModNames(t *testing.T) {
	snap := NewSnapshot()
	snap.Mods["zeta"] = &ModRecord{State: StateEnabled}
	snap.Mods["alpha"] = &ModRecord{State: StateEnabled}
	snap.Mods["mid"] = &ModRecord{State: StateDisabled}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, snap.SortedModNames())
}
