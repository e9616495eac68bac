package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elsie19/vapor/pkg/core"
	"github.com/Elsie19/vapor/pkg/errors"
	"github.com/Elsie19/vapor/pkg/types"
)

func TestRenderResult_ListText(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	err := r.RenderResult([]core.ModInfo{
		{Name: "alpha-mod", Version: "1.0", State: types.StateEnabled, FileCount: 3},
		{Name: "zeta-mod", State: types.StateDisabled, FileCount: 1},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "alpha-mod")
	assert.Contains(t, out, "enabled")
	assert.Contains(t, out, "zeta-mod")
	assert.Contains(t, out, "disabled")
	// Missing versions render as a dash.
	assert.Contains(t, out, "-")
}

func TestRenderResult_EmptyListText(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	require.NoError(t, r.RenderResult([]core.ModInfo{}))
	assert.Contains(t, buf.String(), "no mods installed")
}

func TestRenderResult_ListJSON(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true)

	err := r.RenderResult([]core.ModInfo{
		{Name: "alpha-mod", Version: "1.0", State: types.StateEnabled, FileCount: 3},
	})
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "alpha-mod", decoded[0]["name"])
	assert.Equal(t, "enabled", decoded[0]["state"])
	assert.Equal(t, float64(3), decoded[0]["file_count"])
}

func TestRenderResult_StatusText(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	err := r.RenderResult(&core.ModStatus{
		Name:         "better-minimap",
		Version:      "1.2.0",
		State:        types.StateEnabled,
		Dependencies: []string{"redscript"},
		InstalledAt:  time.Now().Add(-time.Hour),
		Files: []core.FileStatus{
			{RelPath: "archive/pc/mod/m.archive", Checksum: "sha256:aabb", Size: 2048},
			{RelPath: "r6/scripts/m.reds", Checksum: "sha256:ccdd", Missing: true},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "better-minimap 1.2.0")
	assert.Contains(t, out, "depends on: redscript")
	assert.Contains(t, out, "archive/pc/mod/m.archive")
	assert.Contains(t, out, "missing")
}

func TestRenderResult_ToggleText(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	err := r.RenderResult(&core.ToggleResult{
		Name:  "better-minimap",
		State: types.StateDisabled,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "better-minimap is now disabled")
}

func TestRenderResult_RemoveText(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	err := r.RenderResult(&core.RemoveResult{
		Name:      "stubborn-mod",
		Deleted:   []string{"bin/a.dll"},
		Remaining: []string{"bin/locked.dll"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Removed stubborn-mod (1 files)")
	assert.Contains(t, out, "could not be deleted")
	assert.Contains(t, out, "bin/locked.dll")
}

func TestRenderResult_FileListText(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	require.NoError(t, r.RenderResult([]string{"archive/a.archive", "r6/b.reds"}))
	assert.Equal(t, "archive/a.archive\nr6/b.reds\n", buf.String())
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	require.NoError(t, r.RenderError(errors.New(errors.ErrModNotFound, "no mod named \"x\"")))
	assert.Contains(t, buf.String(), "error:")
	assert.Contains(t, buf.String(), "MOD_NOT_FOUND")
}

func TestRenderError_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true)

	require.NoError(t, r.RenderError(errors.New(errors.ErrLockHeld, "busy")))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded["error"], "LOCK_HELD")
}
