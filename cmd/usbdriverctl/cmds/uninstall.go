package cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crafted-tech/usbdrivers/actions"
)

func cmdUninstall(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the USB device and USB monitor drivers",
		Long: `Remove VBoxUSB and then VBoxUSBMon. Both are always attempted and the
command succeeds even if a removal fails; see the log for details.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, cleanup, err := opts.newEnv(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			outcome := actions.Uninstall(env)
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d drivers removed\n",
				outcome.Completed, outcome.Completed+outcome.Failed)
			return nil
		},
	}
}
