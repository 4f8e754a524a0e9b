package actions

import (
	"github.com/crafted-tech/usbdrivers/installer"
)

// Uninstall removes every configured driver in reverse install order.
// Every driver is attempted; failures are logged and counted in the outcome.
func Uninstall(env Env) installer.Outcome {
	env = env.withLogger()
	base := env.baseDirectory()

	drivers := env.Config.Drivers
	steps := make([]installer.Step, 0, len(drivers))
	for i := len(drivers) - 1; i >= 0; i-- {
		steps = append(steps, installer.StepUninstallDriver(env.Store, drivers[i].Name, drivers[i].Path(base)))
	}

	return installer.RunStepsBestEffort(env.Log, steps)
}

// UninstallDrivers is the UninstallDrivers custom action. It always succeeds.
func UninstallDrivers(env Env) installer.Status {
	// The reboot flags reported during removal are not acted on.
	Uninstall(env)
	return installer.StatusSuccess
}
