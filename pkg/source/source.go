// Package source resolves user-supplied mod content into the set of
// (relative path, on-disk file) pairs the transfer engine installs. Two
// providers exist: an already-expanded directory tree, and a zip archive
// expanded into a staging area first.
package source

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"

	"github.com/Elsie19/vapor/pkg/errors"
	"github.com/Elsie19/vapor/pkg/logging"
)

// File is one file to install: its path relative to the game root (always
// slash-separated) and the absolute location of its bytes.
type File struct {
	RelPath string
	AbsPath string
}

// SortFiles orders files lexicographically by relative path.
func SortFiles(files []File) {
	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
}

// FromDir scans an expanded mod directory and returns its files sorted by
// relative path. allowedRoots, when non-empty, restricts the top-level
// directories files may live under.
func FromDir(dir string, allowedRoots []string) ([]File, error) {
	logger := logging.GetLogger("source")

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve source directory").
			WithDetail("path", dir)
	}

	var (
		mu    sync.Mutex
		files []File
	)
	conf := fastwalk.Config{
		Follow: false, // mod trees should not smuggle files in via symlinks
	}
	walkErr := fastwalk.Walk(&conf, abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}
		mu.Lock()
		files = append(files, File{RelPath: filepath.ToSlash(rel), AbsPath: path})
		mu.Unlock()
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrap(walkErr, errors.ErrIO, "failed to scan source directory").
			WithDetail("path", abs)
	}

	SortFiles(files)
	if err := ValidatePaths(relPaths(files), allowedRoots); err != nil {
		return nil, err
	}

	logger.Debug().Str("dir", abs).Int("files", len(files)).Msg("Scanned source directory")
	return files, nil
}

// ValidatePaths rejects unsafe or out-of-bounds relative paths: absolute
// paths, parent-directory traversal, and (when allowedRoots is non-empty)
// files outside the allowed top-level directories.
func ValidatePaths(relPaths []string, allowedRoots []string) error {
	allowed := make(map[string]bool, len(allowedRoots))
	for _, r := range allowedRoots {
		allowed[r] = true
	}

	for _, p := range relPaths {
		if p == "" || strings.HasPrefix(p, "/") || filepath.IsAbs(filepath.FromSlash(p)) {
			return errors.Newf(errors.ErrInvalidInput, "unsafe file path %q", p).
				WithDetail("path", p)
		}
		clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(p)))
		if clean != p || clean == ".." || strings.HasPrefix(clean, "../") {
			return errors.Newf(errors.ErrInvalidInput, "unsafe file path %q", p).
				WithDetail("path", p)
		}
		if len(allowed) > 0 {
			root := clean
			if i := strings.IndexByte(clean, '/'); i >= 0 {
				root = clean[:i]
			}
			if !allowed[root] {
				return errors.Newf(errors.ErrInvalidInput,
					"file %q is outside the allowed game directories (%s)", p, strings.Join(allowedRoots, ", ")).
					WithDetail("path", p)
			}
		}
	}
	return nil
}

func relPaths(files []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.RelPath)
	}
	return out
}
