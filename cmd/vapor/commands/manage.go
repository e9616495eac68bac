package commands

import (
	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <mod>",
		Aliases: []string{"rm"},
		Short:   MsgRemoveShort,
		Long:    MsgRemoveLong,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, _, err := newManager()
			if err != nil {
				return reportError(cmd, err)
			}
			result, err := mgr.Remove(args[0])
			if err != nil {
				if result != nil {
					_ = renderResult(cmd, result)
				}
				return reportError(cmd, err)
			}
			return renderResult(cmd, result)
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Example: MsgListExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, _, err := newManager()
			if err != nil {
				return reportError(cmd, err)
			}
			mods, err := mgr.List()
			if err != nil {
				return reportError(cmd, err)
			}
			return renderResult(cmd, mods)
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <mod>",
		Short: MsgStatusShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, _, err := newManager()
			if err != nil {
				return reportError(cmd, err)
			}
			status, err := mgr.Status(args[0])
			if err != nil {
				return reportError(cmd, err)
			}
			return renderResult(cmd, status)
		},
	}
}

func newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files <mod>",
		Short: MsgFilesShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, _, err := newManager()
			if err != nil {
				return reportError(cmd, err)
			}
			files, err := mgr.Files(args[0])
			if err != nil {
				return reportError(cmd, err)
			}
			return renderResult(cmd, files)
		},
	}
}
