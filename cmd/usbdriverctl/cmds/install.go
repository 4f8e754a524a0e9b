package cmds

import (
	"github.com/spf13/cobra"

	"github.com/crafted-tech/usbdrivers/actions"
	"github.com/crafted-tech/usbdrivers/installer"
)

func cmdInstall(opts *options) *cobra.Command {
	var noRebootSignal bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the USB monitor and USB device drivers",
		Long: `Install VBoxUSBMon and then VBoxUSB from the installation directory.
Stops at the first failure. If a driver needs a restart, the same reboot
marker the installer checks is raised, unless --no-reboot-signal is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, cleanup, err := opts.newEnv(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if noRebootSignal {
				env.Reboot = nil
			}
			if status := actions.InstallDrivers(env); status != installer.StatusSuccess {
				return &StatusError{Status: status}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noRebootSignal, "no-reboot-signal", false, "only log a pending reboot, do not raise the reboot marker")
	return cmd
}
