// Package core drives the mod lifecycle state machine. Every mutating
// transition follows the same sequence: acquire the advisory lock, load
// the ledger, validate the precondition, run conflict resolution where
// paths are being newly claimed, perform the file transfer, and only then
// commit the ledger. The ledger therefore never claims a state the
// filesystem does not reflect, with the single documented exception of a
// partially failed remove.
package core

import (
	"github.com/rs/zerolog"

	"github.com/Elsie19/vapor/pkg/ledger"
	"github.com/Elsie19/vapor/pkg/lockfile"
	"github.com/Elsie19/vapor/pkg/logging"
	"github.com/Elsie19/vapor/pkg/paths"
	"github.com/Elsie19/vapor/pkg/transfer"
	"github.com/Elsie19/vapor/pkg/types"
)

// Manager wires the ledger store and transfer engine together for one
// game installation.
type Manager struct {
	fs     types.FS
	paths  paths.Paths
	store  *ledger.Store
	engine *transfer.Engine
	log    zerolog.Logger
}

// NewManager creates a Manager for the given filesystem and path layout.
func NewManager(fsys types.FS, p paths.Paths) *Manager {
	return &Manager{
		fs:     fsys,
		paths:  p,
		store:  ledger.New(fsys, p.LedgerPath()),
		engine: transfer.New(fsys, p.GameRoot(), p.QuarantineDir()),
		log:    logging.GetLogger("core"),
	}
}

// Store exposes the ledger store for read-only callers.
func (m *Manager) Store() *ledger.Store {
	return m.store
}

// lock acquires the advisory lock every mutating transition holds for its
// whole duration. Queries never take it.
func (m *Manager) lock() (*lockfile.Lock, error) {
	return lockfile.Acquire(m.paths.LockPath())
}
