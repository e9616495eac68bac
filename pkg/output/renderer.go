// Package output renders command results for humans (styled text) or
// machines (JSON). Rendering never touches the ledger; it consumes the
// projections pkg/core produces.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Elsie19/vapor/pkg/core"
	"github.com/Elsie19/vapor/pkg/types"
)

// Renderer writes command results to an output stream.
type Renderer struct {
	out   io.Writer
	json  bool
	color bool
}

// New creates a Renderer. When jsonOut is set everything is emitted as
// indented JSON; otherwise styled text is written, with color gated on
// the terminal.
func New(out io.Writer, jsonOut bool) *Renderer {
	return &Renderer{
		out:   out,
		json:  jsonOut,
		color: !jsonOut && colorEnabled(),
	}
}

// RenderResult renders any result payload. In text mode the payload must
// be one of the core result types.
func (r *Renderer) RenderResult(result interface{}) error {
	if r.json {
		return r.encode(result)
	}

	switch v := result.(type) {
	case []core.ModInfo:
		return r.renderList(v)
	case *core.ModStatus:
		return r.renderStatus(v)
	case *core.AddResult:
		_, err := fmt.Fprintf(r.out, "Added %s %s (%d files)\n",
			style(titleStyle, v.Name, r.color), v.Version, v.FileCount)
		return err
	case *core.ToggleResult:
		_, err := fmt.Fprintf(r.out, "%s is now %s\n",
			style(titleStyle, v.Name, r.color), r.state(v.State))
		return err
	case *core.RemoveResult:
		return r.renderRemove(v)
	case []string:
		for _, line := range v {
			if _, err := fmt.Fprintln(r.out, style(pathStyle, line, r.color)); err != nil {
				return err
			}
		}
		return nil
	default:
		return r.encode(result)
	}
}

// RenderError renders an error, as JSON when requested.
func (r *Renderer) RenderError(err error) error {
	if r.json {
		return r.encode(map[string]string{"error": err.Error()})
	}
	_, werr := fmt.Fprintf(r.out, "%s %v\n", style(warnStyle, "error:", r.color), err)
	return werr
}

func (r *Renderer) encode(v interface{}) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) state(s types.ModState) string {
	if s == types.StateEnabled {
		return style(enabledStyle, string(s), r.color)
	}
	return style(disabledStyle, string(s), r.color)
}

func (r *Renderer) renderList(mods []core.ModInfo) error {
	if len(mods) == 0 {
		_, err := fmt.Fprintln(r.out, style(mutedStyle, "no mods installed", r.color))
		return err
	}
	for _, m := range mods {
		version := m.Version
		if version == "" {
			version = "-"
		}
		if _, err := fmt.Fprintf(r.out, "%-30s %-12s %s (%d files)\n",
			style(titleStyle, m.Name, r.color), version, r.state(m.State), m.FileCount); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderStatus(s *core.ModStatus) error {
	fmt.Fprintf(r.out, "%s %s [%s]\n", style(titleStyle, s.Name, r.color), s.Version, r.state(s.State))
	if len(s.Dependencies) > 0 {
		fmt.Fprintf(r.out, "  depends on: %s\n", strings.Join(s.Dependencies, ", "))
	}
	if !s.InstalledAt.IsZero() {
		fmt.Fprintf(r.out, "  installed %s\n", humanize.Time(s.InstalledAt))
	}
	for _, f := range s.Files {
		note := humanize.Bytes(uint64(f.Size))
		if f.Missing {
			note = style(warnStyle, "missing", r.color)
		}
		fmt.Fprintf(r.out, "  %s  %s  %s\n",
			style(pathStyle, f.RelPath, r.color), style(mutedStyle, f.Checksum, r.color), note)
	}
	return nil
}

func (r *Renderer) renderRemove(v *core.RemoveResult) error {
	fmt.Fprintf(r.out, "Removed %s (%d files)\n", style(titleStyle, v.Name, r.color), len(v.Deleted))
	if len(v.Remaining) > 0 {
		fmt.Fprintf(r.out, "%s %d files could not be deleted:\n",
			style(warnStyle, "warning:", r.color), len(v.Remaining))
		for _, p := range v.Remaining {
			fmt.Fprintf(r.out, "  %s\n", style(pathStyle, p, r.color))
		}
	}
	return nil
}
