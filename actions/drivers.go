package actions

import (
	"github.com/crafted-tech/usbdrivers/installer"
)

// DriverSpec identifies a driver package shipped with the product.
type DriverSpec struct {
	// Name is the driver's service name, used in log lines.
	Name string

	// InfPath is the INF file path relative to the installation directory.
	InfPath string
}

// Path returns the absolute INF path for the installation directory base.
// base is expected to end in a path separator, as MSI directory properties do.
func (d DriverSpec) Path(base string) string {
	return base + d.InfPath
}

var (
	// Monitor is the USB monitor driver. Device depends on it.
	Monitor = DriverSpec{Name: "VBoxUSBMon", InfPath: `Drivers\VBoxUSBMon\VBoxUSBMon.inf`}

	// Device is the USB device driver.
	Device = DriverSpec{Name: "VBoxUSB", InfPath: `Drivers\VBoxUSB\VBoxUSB.inf`}
)

// Config holds the parameters of the driver custom actions.
type Config struct {
	// PropertyName is the session property holding the installation
	// directory. Deferred actions can only see CustomActionData.
	PropertyName string

	// Drivers lists the driver packages in install order.
	// Uninstall walks the list backwards.
	Drivers []DriverSpec

	// ForceReinstall installs even if an identical driver is present and
	// suppresses the driver-signing prompt. Unattended installs need it.
	ForceReinstall bool

	// RebootAtom is the global atom raised when a reboot is pending.
	RebootAtom string
}

// DefaultConfig returns the configuration used by the shipped MSI package.
func DefaultConfig() Config {
	return Config{
		PropertyName:   installer.CustomActionDataProperty,
		Drivers:        []DriverSpec{Monitor, Device},
		ForceReinstall: true,
		RebootAtom:     installer.RebootAtomName,
	}
}

// Env is everything one custom action invocation works with.
// The session is borrowed for the duration of the call.
type Env struct {
	Session installer.Session
	Store   installer.DriverStore
	Reboot  installer.RebootSignal
	Config  Config

	// Log receives progress and errors. If nil, a Logger writing to
	// Session is created.
	Log *installer.Logger
}

// NewSystemEnv returns the Env backed by the real driver store and global atom table.
func NewSystemEnv(session installer.Session, cfg Config) Env {
	return Env{
		Session: session,
		Store:   installer.SystemDriverStore{Force: cfg.ForceReinstall},
		Reboot:  installer.NewAtomRebootSignal(cfg.RebootAtom),
		Config:  cfg,
	}
}

func (env Env) withLogger() Env {
	if env.Log == nil {
		env.Log = installer.NewLogger(env.Session)
	}
	return env
}

func (env Env) baseDirectory() string {
	return installer.SessionProperty(env.Session, env.Config.PropertyName)
}
