package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Elsie19/vapor/pkg/config"
	"github.com/Elsie19/vapor/pkg/errors"
	"github.com/Elsie19/vapor/pkg/filesystem"
	"github.com/Elsie19/vapor/pkg/steam"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init [game-dir]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys := filesystem.NewOS()

			cfg, p, err := loadConfig()
			if err != nil {
				return reportError(cmd, err)
			}

			if len(args) == 0 {
				return suggestLibraries(cmd)
			}

			if _, err := os.Stat(p.ConfigFilePath()); err == nil && !force {
				return reportError(cmd, errors.Newf(errors.ErrConfigInvalid,
					"config already exists at %s, use --force to overwrite", p.ConfigFilePath()))
			}

			gameRoot := args[0]
			info, err := os.Stat(gameRoot)
			if err != nil || !info.IsDir() {
				return reportError(cmd, errors.Newf(errors.ErrGameRootInvalid,
					"%q is not an existing directory", gameRoot))
			}

			cfg.GameRoot = gameRoot
			cfg.Created = time.Now().UTC()
			if err := config.Save(fsys, p.ConfigFilePath(), cfg); err != nil {
				return reportError(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configured game directory %s\n", gameRoot)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config")
	return cmd
}

// suggestLibraries scans Steam library folders and prints candidate
// game directories for the user to pass back to init.
func suggestLibraries(cmd *cobra.Command) error {
	libs := steam.Libraries(filesystem.NewOS())
	if len(libs) == 0 {
		return reportError(cmd, errors.New(errors.ErrGameRootInvalid,
			"no Steam libraries found, pass the game directory explicitly"))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Found Steam libraries, pick your game under one of:")
	for _, lib := range libs {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", lib)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "\nThen run: vapor init <game-dir>")
	return nil
}
