// Package platform provides the Windows primitives used by driver custom actions.
//
// The functions wrap Win32 entry points loaded lazily from system DLLs:
//
//   - Installer session: read properties and post log records (msi.dll)
//   - Driver store: install and uninstall INF driver packages (newdev.dll)
//   - Global atoms: the cross-process reboot marker (kernel32.dll)
//   - Elevation: check for an administrator token
//   - Single Instance: named mutex for manual maintenance runs
//
// On other platforms every operation returns ErrUnsupported (or a neutral
// value) so that packages built on top of this one still compile and test.
//
// # Example Usage
//
//	needReboot, err := platform.InstallDriver(`C:\Program Files\usbipd-win\Drivers\VBoxUSBMon\VBoxUSBMon.inf`, platform.DriverForceInf)
//	if err != nil {
//	    return err
//	}
//	if needReboot {
//	    _ = platform.AddGlobalAtom("WcaDeferredActionRequiresReboot")
//	}
package platform
