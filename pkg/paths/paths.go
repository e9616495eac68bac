// Package paths provides centralized path handling for vapor.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/Elsie19/vapor/pkg/errors"
)

// Environment variable names
const (
	// EnvGameRoot overrides the configured game installation directory
	EnvGameRoot = "VAPOR_GAME_ROOT"

	// EnvVaporDataDir overrides the XDG data directory for vapor
	EnvVaporDataDir = "VAPOR_DATA_DIR"

	// EnvVaporConfigDir overrides the XDG config directory for vapor
	EnvVaporConfigDir = "VAPOR_CONFIG_DIR"
)

// Default directories and files
// IMPORTANT: These constants define vapor's internal storage structure and
// are NOT user-configurable. They must remain consistent across all vapor
// installations so a ledger written by one invocation is found by the next.
const (
	// VaporDirName is the directory name for vapor-specific files
	VaporDirName = "vapor"

	// LedgerFileName is the name of the mod ledger file
	LedgerFileName = "mods.toml"

	// LockFileName is the name of the advisory lock file
	LockFileName = ".vapor.lock"

	// ConfigFileName is the name of the config file
	ConfigFileName = "vapor.toml"

	// QuarantineDirName is the subdirectory holding disabled mods' files
	QuarantineDirName = "quarantine"

	// StagingDirName is the subdirectory used as scratch space for
	// archive expansion
	StagingDirName = "staging"

	// LogFileName is the name of the log file
	LogFileName = "vapor.log"
)

// Paths provides centralized path management for vapor
type Paths interface {
	GameRoot() string
	DataDir() string
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	LedgerPath() string
	LockPath() string
	QuarantineDir() string
	StagingDir() string
	LogFilePath() string
	// InGameRoot maps a ledger-relative path to its absolute location
	// under the game root.
	InGameRoot(relPath string) string
	// InQuarantine maps a (mod, relative path) pair to its quarantine
	// location.
	InQuarantine(modName, relPath string) string
}

type paths struct {
	gameRoot  string
	xdgData   string
	xdgConfig string
	xdgState  string
}

// New creates a Paths instance rooted at the given game directory. The
// game root may be empty for commands that never touch the game
// installation (init, list before configuration).
func New(gameRoot string) (Paths, error) {
	if env := os.Getenv(EnvGameRoot); env != "" {
		gameRoot = env
	}
	if gameRoot != "" {
		expanded, err := expandHome(gameRoot)
		if err != nil {
			return nil, err
		}
		gameRoot = filepath.Clean(expanded)
	}

	dataDir := os.Getenv(EnvVaporDataDir)
	if dataDir == "" {
		dataDir = filepath.Join(xdg.DataHome, VaporDirName)
	}

	configDir := os.Getenv(EnvVaporConfigDir)
	if configDir == "" {
		configDir = filepath.Join(xdg.ConfigHome, VaporDirName)
	}

	return &paths{
		gameRoot:  gameRoot,
		xdgData:   dataDir,
		xdgConfig: configDir,
		xdgState:  filepath.Join(xdg.StateHome, VaporDirName),
	}, nil
}

func (p *paths) GameRoot() string  { return p.gameRoot }
func (p *paths) DataDir() string   { return p.xdgData }
func (p *paths) ConfigDir() string { return p.xdgConfig }
func (p *paths) StateDir() string  { return p.xdgState }

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

func (p *paths) LedgerPath() string {
	return filepath.Join(p.xdgData, LedgerFileName)
}

func (p *paths) LockPath() string {
	return filepath.Join(p.xdgData, LockFileName)
}

func (p *paths) QuarantineDir() string {
	return filepath.Join(p.xdgData, QuarantineDirName)
}

func (p *paths) StagingDir() string {
	return filepath.Join(p.xdgData, StagingDirName)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

func (p *paths) InGameRoot(relPath string) string {
	return filepath.Join(p.gameRoot, filepath.FromSlash(relPath))
}

func (p *paths) InQuarantine(modName, relPath string) string {
	return filepath.Join(p.QuarantineDir(), modName, filepath.FromSlash(relPath))
}

// expandHome expands a leading ~/ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrGameRootInvalid, "cannot resolve home directory")
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
