package installer

import (
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/crafted-tech/usbdrivers/platform"
)

// DriverStore installs and removes INF driver packages.
// Both calls block until the operating system finishes.
type DriverStore interface {
	InstallDriver(infPath string) (needReboot bool, err error)
	UninstallDriver(infPath string) (needReboot bool, err error)
}

// SystemDriverStore is the DriverStore of the running Windows system.
type SystemDriverStore struct {
	// Force reinstalls a package even if the same or a newer one is
	// present, and suppresses the interactive driver-signing prompt.
	Force bool
}

// InstallDriver implements DriverStore.
func (s SystemDriverStore) InstallDriver(infPath string) (bool, error) {
	var flags uint32
	if s.Force {
		flags |= platform.DriverForceInf
	}
	return platform.InstallDriver(infPath, flags)
}

// UninstallDriver implements DriverStore.
func (s SystemDriverStore) UninstallDriver(infPath string) (bool, error) {
	return platform.UninstallDriver(infPath, 0)
}

// StepInstallDriver creates a Step that installs the driver package at infPath.
// The step's result carries the reboot flag reported by the store.
func StepInstallDriver(store DriverStore, name, infPath string) Step {
	return Step{
		Name:   "Installing",
		Fields: logrus.Fields{"driver": name},
		Action: func() StepResult {
			needReboot, err := store.InstallDriver(infPath)
			if err != nil {
				return Failed(errors.Wrapf(err, "install %s", name))
			}
			return SuccessNeedsReboot(needReboot)
		},
	}
}

// StepUninstallDriver creates a Step that removes the driver package at infPath.
func StepUninstallDriver(store DriverStore, name, infPath string) Step {
	return Step{
		Name:   "Uninstalling",
		Fields: logrus.Fields{"driver": name},
		Action: func() StepResult {
			needReboot, err := store.UninstallDriver(infPath)
			if err != nil {
				return Failed(errors.Wrapf(err, "uninstall %s", name))
			}
			return SuccessNeedsReboot(needReboot)
		},
	}
}

// ErrorCode returns the Windows error code wrapped in err, if any.
func ErrorCode(err error) (uint32, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno), true
	}
	return 0, false
}
