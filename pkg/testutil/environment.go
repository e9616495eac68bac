// Package testutil provides shared helpers for vapor's tests: isolated
// game roots, seeded mod source trees, and ledger inspection.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Elsie19/vapor/pkg/internal/hashutil"
	"github.com/Elsie19/vapor/pkg/paths"
)

// TestEnvironment wires a temporary game root and data directory so a
// test can exercise the full manager stack against the real filesystem.
type TestEnvironment struct {
	GameRoot string
	DataDir  string
	Paths    paths.Paths

	t *testing.T
}

// NewTestEnvironment creates an isolated environment backed by t.TempDir.
// The relevant VAPOR_* variables are set for the lifetime of the test.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	gameRoot := filepath.Join(root, "game")
	dataDir := filepath.Join(root, "data")
	configDir := filepath.Join(root, "config")

	for _, dir := range []string{gameRoot, dataDir, configDir} {
		require.NoError(t, os.MkdirAll(dir, 0o755))
	}

	t.Setenv(paths.EnvGameRoot, gameRoot)
	t.Setenv(paths.EnvVaporDataDir, dataDir)
	t.Setenv(paths.EnvVaporConfigDir, configDir)

	p, err := paths.New(gameRoot)
	require.NoError(t, err)

	return &TestEnvironment{
		GameRoot: gameRoot,
		DataDir:  dataDir,
		Paths:    p,
		t:        t,
	}
}

// SourceDir creates a mod source tree under a fresh temp directory and
// returns its path. files maps relative paths to file contents.
func (e *TestEnvironment) SourceDir(files map[string]string) string {
	e.t.Helper()

	dir := e.t.TempDir()
	for rel, content := range files {
		WriteFile(e.t, dir, rel, content)
	}
	return dir
}

// GamePath returns an absolute path inside the game root.
func (e *TestEnvironment) GamePath(rel string) string {
	return filepath.Join(e.GameRoot, filepath.FromSlash(rel))
}

// WriteGameFile writes a file directly into the game root, bypassing
// the manager. Useful for simulating drift and pre-existing files.
func (e *TestEnvironment) WriteGameFile(rel, content string) {
	e.t.Helper()
	WriteFile(e.t, e.GameRoot, rel, content)
}

// WriteFile writes content to dir/rel, creating parent directories.
func WriteFile(t *testing.T, dir, rel, content string) {
	t.Helper()

	full := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

// Checksum returns the sha256 checksum string of the file at path,
// failing the test if the file cannot be read.
func Checksum(t *testing.T, path string) string {
	t.Helper()

	sum, err := hashutil.CalculateFileChecksum(path)
	require.NoError(t, err)
	return sum
}

// FileExists reports whether path exists as a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
