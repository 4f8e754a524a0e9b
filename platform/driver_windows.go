//go:build windows

package platform

import (
	"path/filepath"
	"unsafe"

	"github.com/gentlemanautomaton/windevice/infpath"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	modnewdev = windows.NewLazySystemDLL("newdev.dll")

	procDiInstallDriverW   = modnewdev.NewProc("DiInstallDriverW")
	procDiUninstallDriverW = modnewdev.NewProc("DiUninstallDriverW")
)

// InstallDriver preinstalls the driver package described by the INF file at
// path into the driver store and installs it on matching devices.
// Blocks until the operation finishes, which can take tens of seconds.
//
// https://learn.microsoft.com/en-us/windows/win32/api/newdev/nf-newdev-diinstalldriverw
func InstallDriver(path string, flags uint32) (needReboot bool, err error) {
	return callDriverProc(procDiInstallDriverW, path, flags)
}

// UninstallDriver removes the driver package described by the INF file at
// path from the driver store and from any devices using it.
//
// https://learn.microsoft.com/en-us/windows/win32/api/newdev/nf-newdev-diuninstalldriverw
func UninstallDriver(path string, flags uint32) (needReboot bool, err error) {
	return callDriverProc(procDiUninstallDriverW, path, flags)
}

func callDriverProc(proc *windows.LazyProc, path string, flags uint32) (bool, error) {
	if err := proc.Find(); err != nil {
		return false, errors.Wrapf(err, "locate %s", proc.Name)
	}

	path = resolveInfPath(path)
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, errors.Wrapf(err, "encode inf path %s", path)
	}

	// NeedReboot is a Win32 BOOL, four bytes wide.
	var needReboot int32
	r, _, e := proc.Call(
		0,
		uintptr(unsafe.Pointer(pathPtr)),
		uintptr(flags),
		uintptr(unsafe.Pointer(&needReboot)),
	)
	if r == 0 {
		errno, ok := e.(windows.Errno)
		if !ok || errno == 0 {
			errno = windows.ERROR_GEN_FAILURE
		}
		return needReboot != 0, errors.Wrapf(errno, "%s %s", proc.Name, path)
	}
	return needReboot != 0, nil
}

// resolveInfPath cleans an absolute INF path that names a usable file.
// Any other path is passed through untouched so the driver store itself
// rejects it and reports the Windows error code for the failure.
func resolveInfPath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	prepared, err := infpath.Prepare(path)
	if err != nil {
		return path
	}
	return prepared
}
