package installer

import (
	"github.com/crafted-tech/usbdrivers/platform"
)

// RebootAtomName is the global atom WiX's WixCheckRebootRequired looks for
// after InstallFinalize. Its presence makes the engine ask for a restart.
const RebootAtomName = "WcaDeferredActionRequiresReboot"

// RebootSignal publishes a pending-reboot requirement to whatever runs after
// the custom action. There is deliberately no way to clear it; a restart does.
type RebootSignal interface {
	// Raise records the requirement. Raising an already raised signal is a no-op.
	Raise() error

	// Raised reports whether the requirement is currently recorded.
	Raised() bool
}

// AtomRebootSignal is a RebootSignal stored in the global atom table.
type AtomRebootSignal struct {
	Name string
}

// NewAtomRebootSignal returns a signal for the named global atom.
func NewAtomRebootSignal(name string) *AtomRebootSignal {
	return &AtomRebootSignal{Name: name}
}

// Raise implements RebootSignal.
func (s *AtomRebootSignal) Raise() error {
	return platform.AddGlobalAtom(s.Name)
}

// Raised implements RebootSignal.
func (s *AtomRebootSignal) Raised() bool {
	return platform.GlobalAtomExists(s.Name)
}

// RequestReboot logs the request and raises signal.
// A failure to raise is logged and returned; callers on the install path
// treat it as non-fatal since the drivers are already in place.
func RequestReboot(log *Logger, signal RebootSignal) error {
	log.Info("Requesting reboot")
	if signal == nil {
		return nil
	}
	if err := signal.Raise(); err != nil {
		log.WithFields(ErrorFields(err)).Warn("Reboot marker not set")
		return err
	}
	return nil
}
