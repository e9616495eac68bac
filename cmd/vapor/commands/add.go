package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Elsie19/vapor/pkg/core"
	"github.com/Elsie19/vapor/pkg/errors"
	"github.com/Elsie19/vapor/pkg/source"
)

func newAddCmd() *cobra.Command {
	var (
		name    string
		modVer  string
		deps    []string
		archive bool
	)

	cmd := &cobra.Command{
		Use:     "add <source>",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, cfg, p, err := newManager()
			if err != nil {
				return reportError(cmd, err)
			}

			src := args[0]
			info, err := os.Stat(src)
			if err != nil {
				return reportError(cmd, errors.Wrapf(err, errors.ErrInvalidInput,
					"cannot read mod source %q", src))
			}

			var files []source.File
			if info.IsDir() {
				files, err = source.FromDir(src, cfg.AllowedRoots)
			} else if archive || strings.EqualFold(filepath.Ext(src), ".zip") {
				var cleanup func()
				files, cleanup, err = source.FromArchive(src, p.StagingDir(), cfg.AllowedRoots)
				if cleanup != nil {
					defer cleanup()
				}
			} else {
				err = errors.Newf(errors.ErrInvalidInput,
					"mod source %q is neither a directory nor a zip archive", src)
			}
			if err != nil {
				return reportError(cmd, err)
			}

			if name == "" {
				name = strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
			}

			result, err := mgr.Add(core.AddOptions{
				Name:         name,
				Version:      modVer,
				Dependencies: deps,
				Files:        files,
			})
			if err != nil {
				return reportError(cmd, err)
			}
			return renderResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Mod name (defaults to the source basename)")
	cmd.Flags().StringVar(&modVer, "version", "", "Mod version string")
	cmd.Flags().StringArrayVar(&deps, "dep", nil, "Declared dependency (repeatable)")
	cmd.Flags().BoolVar(&archive, "archive", false, "Treat the source as a zip archive regardless of extension")
	return cmd
}
