// Package conflict decides whether a mod may claim a set of relative
// paths. Approval is all-or-nothing: one conflicting path rejects the
// entire set, and every conflict is reported so the user sees the full
// picture in one pass.
package conflict

import (
	"sort"
	"strings"

	"github.com/Elsie19/vapor/pkg/errors"
	"github.com/Elsie19/vapor/pkg/types"
)

// Conflict is one contested path and the enabled mod that owns it.
type Conflict struct {
	Path  string `json:"path"`
	Owner string `json:"owner"`
}

// Check validates that modName may claim relPaths given the current
// snapshot. It rejects in-set duplicates with DUPLICATE_PATH before
// consulting the ledger, then rejects any path another mod currently has
// enabled with PATH_CONFLICT.
func Check(snap *types.Snapshot, modName string, relPaths []string) error {
	seen := make(map[string]bool, len(relPaths))
	var dupes []string
	for _, p := range relPaths {
		if seen[p] {
			dupes = append(dupes, p)
		}
		seen[p] = true
	}
	if len(dupes) > 0 {
		sort.Strings(dupes)
		return errors.Newf(errors.ErrDuplicatePath,
			"mod %q lists the same path more than once: %s", modName, strings.Join(dupes, ", ")).
			WithDetail("mod", modName).
			WithDetail("paths", dupes)
	}

	var conflicts []Conflict
	for _, p := range relPaths {
		owner, ok := snap.EnabledOwner(p)
		if ok && owner != modName {
			conflicts = append(conflicts, Conflict{Path: p, Owner: owner})
		}
	}
	if len(conflicts) == 0 {
		return nil
	}

	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].Path < conflicts[j].Path })
	lines := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		lines = append(lines, c.Owner+" | "+c.Path)
	}

	err := errors.Newf(errors.ErrPathConflict,
		"files from %q are already owned by other mods:\n%s", modName, strings.Join(lines, "\n")).
		WithDetail("mod", modName).
		WithDetail("conflicts", conflicts)
	// The first conflict doubles as the headline path/owner pair.
	return err.WithDetail("path", conflicts[0].Path).WithDetail("owner", conflicts[0].Owner)
}
