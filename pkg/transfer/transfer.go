// Package transfer performs the physical filesystem effects of mod
// lifecycle transitions: installing files into the game root, moving them
// to and from quarantine, and deleting them. Install, disable, and enable
// are atomic per mod (staged copies and best-effort rollback); remove is
// deliberately not rolled back, since a partially removed mod is an
// acceptable degraded state.
package transfer

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Elsie19/vapor/pkg/errors"
	"github.com/Elsie19/vapor/pkg/internal/hashutil"
	"github.com/Elsie19/vapor/pkg/logging"
	"github.com/Elsie19/vapor/pkg/source"
	"github.com/Elsie19/vapor/pkg/types"
)

// Engine moves mod files between the game root and quarantine.
type Engine struct {
	fs             types.FS
	gameRoot       string
	quarantineRoot string
	log            zerolog.Logger
}

// New creates an Engine operating on the given game root and quarantine
// storage area.
func New(fsys types.FS, gameRoot, quarantineRoot string) *Engine {
	return &Engine{
		fs:             fsys,
		gameRoot:       gameRoot,
		quarantineRoot: quarantineRoot,
		log:            logging.GetLogger("transfer"),
	}
}

func (e *Engine) gamePath(relPath string) string {
	return filepath.Join(e.gameRoot, filepath.FromSlash(relPath))
}

func (e *Engine) quarantinePath(modName, relPath string) string {
	return filepath.Join(e.quarantineRoot, modName, filepath.FromSlash(relPath))
}

// Install copies the approved source files into the game root, recording a
// checksum per file. Each file lands via a staged temp copy and rename, so
// a crash never leaves a half-written game file. If any copy fails,
// everything this call created is removed and INSTALL_FAILED is returned.
func (e *Engine) Install(modName string, files []source.File) ([]types.FileEntry, error) {
	done := logging.LogOperationStart(e.log, "install")
	defer done()

	sorted := make([]source.File, len(files))
	copy(sorted, files)
	source.SortFiles(sorted)

	var installed []types.FileEntry
	for _, f := range sorted {
		entry, err := e.copyIn(f)
		if err != nil {
			e.rollbackInstall(installed)
			return nil, errors.Wrapf(err, errors.ErrInstallFailed,
				"failed to install %q for mod %q", f.RelPath, modName).
				WithDetail("mod", modName).
				WithDetail("path", f.RelPath)
		}
		installed = append(installed, entry)
	}

	e.log.Info().Str("mod", modName).Int("files", len(installed)).Msg("Installed mod files")
	return installed, nil
}

// copyIn stages one source file into the game root and returns its entry.
func (e *Engine) copyIn(f source.File) (types.FileEntry, error) {
	data, err := e.fs.ReadFile(f.AbsPath)
	if err != nil {
		return types.FileEntry{}, err
	}

	dest := e.gamePath(f.RelPath)
	if err := e.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return types.FileEntry{}, err
	}

	// Stage next to the destination so the final rename is atomic.
	tmp := filepath.Join(filepath.Dir(dest),
		fmt.Sprintf(".%s.vapor-%s", filepath.Base(dest), uuid.NewString()))
	if err := e.fs.WriteFile(tmp, data, 0644); err != nil {
		return types.FileEntry{}, err
	}
	if err := e.fs.Rename(tmp, dest); err != nil {
		_ = e.fs.Remove(tmp)
		return types.FileEntry{}, err
	}

	return types.FileEntry{
		RelPath:  f.RelPath,
		Checksum: hashutil.ChecksumBytes(data),
	}, nil
}

// rollbackInstall removes the files a failed install already copied.
func (e *Engine) rollbackInstall(installed []types.FileEntry) {
	for _, entry := range installed {
		dest := e.gamePath(entry.RelPath)
		if err := e.fs.Remove(dest); err != nil {
			e.log.Warn().Err(err).Str("path", dest).Msg("Rollback could not remove file")
			continue
		}
		e.pruneUpwards(filepath.Dir(dest), e.gameRoot)
	}
}

// Disable moves every file of an enabled mod into quarantine. All
// checksums are verified before anything moves; a single mismatch aborts
// with DRIFT_DETECTED and zero moves. On success the entries' Quarantine
// fields are filled in.
func (e *Engine) Disable(rec *types.ModRecord) error {
	done := logging.LogOperationStart(e.log, "disable")
	defer done()

	sorted := rec.SortedFiles()
	for _, f := range sorted {
		if err := e.verify(e.gamePath(f.RelPath), f.Checksum, f.RelPath); err != nil {
			return err
		}
	}

	var moved []types.FileEntry
	for _, f := range sorted {
		from := e.gamePath(f.RelPath)
		to := e.quarantinePath(rec.Name, f.RelPath)
		if err := e.move(from, to, e.gameRoot); err != nil {
			e.undoMoves(rec.Name, moved, false)
			return errors.Wrapf(err, errors.ErrIO, "failed to quarantine %q", f.RelPath).
				WithDetail("mod", rec.Name).
				WithDetail("path", f.RelPath)
		}
		moved = append(moved, f)
	}

	e.setQuarantine(rec, true)
	e.log.Info().Str("mod", rec.Name).Int("files", len(sorted)).Msg("Mod disabled")
	return nil
}

// Enable moves a disabled mod's files from quarantine back into the game
// root, verifying checksums before and after the move. Conflict
// resolution has already happened by the time this runs.
func (e *Engine) Enable(rec *types.ModRecord) error {
	done := logging.LogOperationStart(e.log, "enable")
	defer done()

	sorted := rec.SortedFiles()
	for _, f := range sorted {
		if err := e.verify(f.Quarantine, f.Checksum, f.RelPath); err != nil {
			return err
		}
	}

	var moved []types.FileEntry
	for _, f := range sorted {
		to := e.gamePath(f.RelPath)
		if err := e.move(f.Quarantine, to, e.quarantineRoot); err != nil {
			e.undoMoves(rec.Name, moved, true)
			return errors.Wrapf(err, errors.ErrIO, "failed to restore %q", f.RelPath).
				WithDetail("mod", rec.Name).
				WithDetail("path", f.RelPath)
		}
		moved = append(moved, f)
	}

	// Re-verify the restored files; rename should never corrupt, but the
	// checksum is the contract the ledger records.
	for _, f := range sorted {
		if err := e.verify(e.gamePath(f.RelPath), f.Checksum, f.RelPath); err != nil {
			return err
		}
	}

	e.setQuarantine(rec, false)
	e.log.Info().Str("mod", rec.Name).Int("files", len(sorted)).Msg("Mod enabled")
	return nil
}

// Remove deletes a mod's files from wherever they live (game root if
// enabled, quarantine if disabled). Deletions already performed are never
// rolled back; the returned slice lists the relative paths actually
// deleted, and any failures are reported in the error.
func (e *Engine) Remove(rec *types.ModRecord) ([]string, error) {
	done := logging.LogOperationStart(e.log, "remove")
	defer done()

	var (
		deleted []string
		failed  []string
		lastErr error
	)
	for _, f := range rec.SortedFiles() {
		var path, stop string
		if rec.State == types.StateEnabled {
			path, stop = e.gamePath(f.RelPath), e.gameRoot
		} else {
			path, stop = f.Quarantine, e.quarantineRoot
		}
		if err := e.fs.Remove(path); err != nil {
			e.log.Warn().Err(err).Str("path", path).Msg("Failed to delete mod file")
			failed = append(failed, f.RelPath)
			lastErr = err
			continue
		}
		e.pruneUpwards(filepath.Dir(path), stop)
		deleted = append(deleted, f.RelPath)
	}

	if len(failed) > 0 {
		return deleted, errors.Wrapf(lastErr, errors.ErrIO,
			"failed to delete %d of %d files for mod %q", len(failed), len(rec.Files), rec.Name).
			WithDetail("mod", rec.Name).
			WithDetail("failed", failed).
			WithDetail("deleted", deleted)
	}

	e.log.Info().Str("mod", rec.Name).Int("files", len(deleted)).Msg("Mod removed")
	return deleted, nil
}

// verify checks a file's content hash against the ledger's record. A
// missing file or a mismatch both count as drift: something outside vapor
// touched the installation.
func (e *Engine) verify(path, want, relPath string) error {
	got, err := hashutil.ChecksumFS(e.fs, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDriftDetected,
			"tracked file %q is missing or unreadable", relPath).
			WithDetail("path", relPath)
	}
	if got != want {
		return errors.Newf(errors.ErrDriftDetected,
			"tracked file %q was modified outside vapor", relPath).
			WithDetail("path", relPath).
			WithDetail("want", want).
			WithDetail("got", got)
	}
	return nil
}

// move renames from -> to, creating destination directories and pruning
// directories left empty under stop.
func (e *Engine) move(from, to, stop string) error {
	if err := e.fs.MkdirAll(filepath.Dir(to), 0755); err != nil {
		return err
	}
	if err := e.fs.Rename(from, to); err != nil {
		return err
	}
	e.pruneUpwards(filepath.Dir(from), stop)
	return nil
}

// undoMoves reverses the moves of a partially failed disable or enable so
// the filesystem matches the uncommitted ledger again.
func (e *Engine) undoMoves(modName string, moved []types.FileEntry, toQuarantine bool) {
	for _, f := range moved {
		game := e.gamePath(f.RelPath)
		quar := e.quarantinePath(modName, f.RelPath)
		from, to, stop := quar, game, e.quarantineRoot
		if toQuarantine {
			from, to, stop = game, quar, e.gameRoot
		}
		if err := e.move(from, to, stop); err != nil {
			e.log.Warn().Err(err).Str("path", f.RelPath).Msg("Could not undo partial move")
		}
	}
}

// pruneUpwards removes now-empty directories from start up to (but not
// including) stop.
func (e *Engine) pruneUpwards(start, stop string) {
	dir := start
	for dir != stop && dir != "." && dir != string(filepath.Separator) {
		entries, err := e.fs.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := e.fs.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}

// setQuarantine fills or clears the Quarantine field on every entry.
func (e *Engine) setQuarantine(rec *types.ModRecord, quarantined bool) {
	for i := range rec.Files {
		if quarantined {
			rec.Files[i].Quarantine = e.quarantinePath(rec.Name, rec.Files[i].RelPath)
		} else {
			rec.Files[i].Quarantine = ""
		}
	}
}
