// Package steam discovers Steam library locations so `vapor init` can
// suggest game directories. Discovery is best effort: a machine without
// Steam simply yields no suggestions.
package steam

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/Elsie19/vapor/pkg/logging"
	"github.com/Elsie19/vapor/pkg/types"
)

// vdfCandidates are the known locations of libraryfolders.vdf, covering
// flatpak, native, and older Steam layouts.
var vdfCandidates = []string{
	".var/app/com.valvesoftware.Steam/.local/share/Steam/steamapps",
	".steam/steam/steamapps",
	".steam/steamapps",
	".local/share/Steam/steamapps",
	".steam/root/steamapps",
	".steam/root/SteamApps",
}

// Libraries returns `<library>/steamapps/common` for every Steam library
// found on this machine.
func Libraries(fsys types.FS) []string {
	logger := logging.GetLogger("steam")

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	for _, candidate := range vdfCandidates {
		vdf := filepath.Join(home, candidate, "libraryfolders.vdf")
		data, err := fsys.ReadFile(vdf)
		if err != nil {
			continue
		}
		paths := parseLibraryPaths(data)
		if len(paths) == 0 {
			continue
		}
		suggestions := make([]string, 0, len(paths))
		for _, p := range paths {
			suggestions = append(suggestions, filepath.Join(p, "steamapps", "common"))
		}
		logger.Debug().Str("vdf", vdf).Int("libraries", len(suggestions)).Msg("Found Steam libraries")
		return suggestions
	}
	return nil
}

// parseLibraryPaths pulls every "path" value out of a libraryfolders.vdf.
// The VDF format is a nested key/value tree of quoted tokens; vapor only
// needs the path entries, so a line scan is sufficient.
func parseLibraryPaths(data []byte) []string {
	var paths []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		key, value, ok := splitVDFLine(scanner.Text())
		if ok && key == "path" && value != "" {
			paths = append(paths, value)
		}
	}
	return paths
}

// splitVDFLine parses a `"key"  "value"` line into its parts.
func splitVDFLine(line string) (key, value string, ok bool) {
	fields := strings.SplitN(strings.TrimSpace(line), "\"", 5)
	// A well-formed pair splits into ["", key, sep, value, rest].
	if len(fields) < 4 {
		return "", "", false
	}
	return fields[1], fields[3], true
}
