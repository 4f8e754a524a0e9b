package actions

import (
	"github.com/crafted-tech/usbdrivers/installer"
)

// Result is the outcome of a successful install.
type Result struct {
	// RebootRequired is set if any driver takes effect only after a restart.
	RebootRequired bool
}

// Install installs every configured driver in order, stopping at the first
// failure. Drivers installed before the failure are left in place; undoing
// them is the installer engine's rollback.
func Install(env Env) (Result, error) {
	env = env.withLogger()
	base := env.baseDirectory()

	steps := make([]installer.Step, 0, len(env.Config.Drivers))
	for _, d := range env.Config.Drivers {
		steps = append(steps, installer.StepInstallDriver(env.Store, d.Name, d.Path(base)))
	}

	outcome, err := installer.RunSteps(env.Log, steps)
	if err != nil {
		return Result{}, err
	}
	return Result{RebootRequired: outcome.RebootRequired}, nil
}

// InstallDrivers is the InstallDrivers custom action.
// It reports success even when a reboot is pending, after raising the
// reboot signal for the engine's post-finalize check.
func InstallDrivers(env Env) installer.Status {
	env = env.withLogger()

	result, err := Install(env)
	if err != nil {
		return installer.StatusInstallFailure
	}
	if result.RebootRequired {
		// The drivers are in place; a marker that cannot be set only
		// loses the restart prompt.
		_ = installer.RequestReboot(env.Log, env.Reboot)
	}
	return installer.StatusSuccess
}
