package source

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Elsie19/vapor/pkg/errors"
	"github.com/Elsie19/vapor/pkg/logging"
)

// FromArchive expands a zip archive into a fresh directory under
// stagingDir and scans the result. The returned cleanup removes the
// staged tree; callers run it once the install has finished either way.
func FromArchive(zipPath, stagingDir string, allowedRoots []string) ([]File, func(), error) {
	logger := logging.GetLogger("source.archive")

	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrInvalidInput, "cannot open mod archive").
			WithDetail("path", zipPath)
	}
	defer func() {
		_ = reader.Close()
	}()

	stage := filepath.Join(stagingDir, uuid.NewString())
	if err := os.MkdirAll(stage, 0755); err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrIO, "failed to create staging directory").
			WithDetail("path", stage)
	}
	cleanup := func() {
		if err := os.RemoveAll(stage); err != nil {
			logger.Warn().Err(err).Str("path", stage).Msg("Failed to clean staging directory")
		}
	}

	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		name := filepath.ToSlash(entry.Name)
		if strings.HasPrefix(name, "/") || strings.Contains(name, "..") {
			cleanup()
			return nil, nil, errors.Newf(errors.ErrInvalidInput,
				"archive entry %q escapes the staging directory", entry.Name).
				WithDetail("path", entry.Name)
		}

		dest := filepath.Join(stage, filepath.FromSlash(name))
		if err := extractEntry(entry, dest); err != nil {
			cleanup()
			return nil, nil, errors.Wrapf(err, errors.ErrIO, "failed to extract %q", entry.Name).
				WithDetail("path", entry.Name)
		}
	}

	files, err := FromDir(stage, allowedRoots)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	logger.Debug().Str("archive", zipPath).Int("files", len(files)).Msg("Expanded mod archive")
	return files, cleanup, nil
}

func extractEntry(entry *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer func() {
		_ = src.Close()
	}()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
