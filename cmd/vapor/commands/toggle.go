package commands

import (
	"github.com/spf13/cobra"
)

func newEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <mod>",
		Short: MsgEnableShort,
		Long:  MsgEnableLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, _, err := newManager()
			if err != nil {
				return reportError(cmd, err)
			}
			result, err := mgr.Enable(args[0])
			if err != nil {
				return reportError(cmd, err)
			}
			return renderResult(cmd, result)
		},
	}
}

func newDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <mod>",
		Short: MsgDisableShort,
		Long:  MsgDisableLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, _, err := newManager()
			if err != nil {
				return reportError(cmd, err)
			}
			result, err := mgr.Disable(args[0])
			if err != nil {
				return reportError(cmd, err)
			}
			return renderResult(cmd, result)
		},
	}
}
