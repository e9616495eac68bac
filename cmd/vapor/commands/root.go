// Package commands wires the vapor CLI: one constructor per subcommand,
// all hanging off NewRootCmd.
package commands

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Elsie19/vapor/internal/version"
	"github.com/Elsie19/vapor/pkg/config"
	"github.com/Elsie19/vapor/pkg/core"
	"github.com/Elsie19/vapor/pkg/errors"
	"github.com/Elsie19/vapor/pkg/filesystem"
	"github.com/Elsie19/vapor/pkg/logging"
	"github.com/Elsie19/vapor/pkg/output"
	"github.com/Elsie19/vapor/pkg/paths"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		jsonOut   bool
	)

	rootCmd := &cobra.Command{
		Use:     "vapor",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, MsgFlagJSON)

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newEnableCmd())
	rootCmd.AddCommand(newDisableCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newFilesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if err != errSilent {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

var errSilent = stderrors.New("command failed")

// renderResult writes a result to stdout, honoring --json.
func renderResult(cmd *cobra.Command, result interface{}) error {
	jsonOut, _ := cmd.Root().PersistentFlags().GetBool("json")
	return output.New(cmd.OutOrStdout(), jsonOut).RenderResult(result)
}

// reportError prints err through the renderer on stderr and returns a
// sentinel so cobra exits nonzero without double-printing.
func reportError(cmd *cobra.Command, err error) error {
	jsonOut, _ := cmd.Root().PersistentFlags().GetBool("json")
	_ = output.New(cmd.ErrOrStderr(), jsonOut).RenderError(err)
	return errSilent
}

// loadConfig loads the config file from the XDG config directory (or
// its VAPOR_CONFIG_DIR override). A missing file yields defaults.
func loadConfig() (*config.Config, paths.Paths, error) {
	base, err := paths.New("")
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(base.ConfigFilePath())
	if err != nil {
		return nil, nil, err
	}
	return cfg, base, nil
}

// newManager resolves the game root from config (or VAPOR_GAME_ROOT)
// and builds a Manager over the real filesystem.
func newManager() (*core.Manager, *config.Config, paths.Paths, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	p, err := paths.New(cfg.GameRoot)
	if err != nil {
		return nil, nil, nil, err
	}
	root := p.GameRoot()
	if root == "" {
		return nil, nil, nil, errors.New(errors.ErrGameRootInvalid,
			"no game directory configured, run 'vapor init' first")
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, nil, nil, errors.Newf(errors.ErrGameRootInvalid,
			"game directory %q does not exist", root)
	}

	return core.NewManager(filesystem.NewOS(), p), cfg, p, nil
}
