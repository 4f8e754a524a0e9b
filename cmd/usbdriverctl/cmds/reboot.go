package cmds

import (
	"fmt"

	"github.com/spf13/cobra"
)

func cmdRebootPending(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reboot-pending",
		Short: "Print whether a driver install has requested a reboot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), opts.reboot.Raised())
			return nil
		},
	}
}
