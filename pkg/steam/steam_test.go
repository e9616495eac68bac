package steam

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elsie19/vapor/pkg/filesystem"
)

const sampleVDF = `"libraryfolders"
{
	"0"
	{
		"path"		"/home/user/.local/share/Steam"
		"label"		""
		"contentid"		"1111111111111111111"
		"apps"
		{
			"1091500"		"71000000000"
		}
	}
	"1"
	{
		"path"		"/mnt/games/SteamLibrary"
		"label"		"games drive"
	}
}
`

func TestParseLibraryPaths(t *testing.T) {
	paths := parseLibraryPaths([]byte(sampleVDF))
	assert.Equal(t, []string{
		"/home/user/.local/share/Steam",
		"/mnt/games/SteamLibrary",
	}, paths)
}

func TestParseLibraryPaths_Empty(t *testing.T) {
	assert.Empty(t, parseLibraryPaths(nil))
	assert.Empty(t, parseLibraryPaths([]byte(`"libraryfolders"
{
}
`)))
}

func TestSplitVDFLine(t *testing.T) {
	tests := []struct {
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{`	"path"		"/mnt/games"`, "path", "/mnt/games", true},
		{`"label"	""`, "label", "", true},
		{`{`, "", "", false},
		{``, "", "", false},
		{`"lonely"`, "", "", false},
	}

	for _, tt := range tests {
		key, value, ok := splitVDFLine(tt.line)
		assert.Equal(t, tt.wantOK, ok, "line %q", tt.line)
		assert.Equal(t, tt.wantKey, key, "line %q", tt.line)
		assert.Equal(t, tt.wantValue, value, "line %q", tt.line)
	}
}

func TestLibraries(t *testing.T) {
	home, err := filepath.Abs(t.TempDir())
	require.NoError(t, err)
	t.Setenv("HOME", home)

	fsys := filesystem.NewMemory()
	vdf := filepath.Join(home, ".steam/steam/steamapps/libraryfolders.vdf")
	require.NoError(t, fsys.MkdirAll(filepath.Dir(vdf), 0o755))
	require.NoError(t, fsys.WriteFile(vdf, []byte(sampleVDF), 0o644))

	libs := Libraries(fsys)
	require.Len(t, libs, 2)
	assert.Equal(t, "/home/user/.local/share/Steam/steamapps/common", libs[0])
	assert.Equal(t, "/mnt/games/SteamLibrary/steamapps/common", libs[1])
}

func TestLibraries_NoSteam(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	assert.Empty(t, Libraries(filesystem.NewMemory()))
}
