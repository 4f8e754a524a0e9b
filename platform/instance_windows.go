//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

// AcquireSingleInstance tries to acquire a named mutex in the Global\ namespace.
// Returns a release function and true if the lock was acquired.
// Returns nil and false if another process already holds the lock.
//
// Usage:
//
//	release, ok := platform.AcquireSingleInstance("usbipd-win.drivers")
//	if !ok {
//	    return errBusy
//	}
//	defer release()
func AcquireSingleInstance(name string) (release func(), ok bool) {
	mutexName, _ := windows.UTF16PtrFromString("Global\\" + name)

	handle, err := windows.CreateMutex(nil, false, mutexName)
	if err != nil {
		if err == windows.ERROR_ALREADY_EXISTS {
			if handle != 0 {
				windows.CloseHandle(handle)
			}
			return nil, false
		}
		// Fail open: any other error must not block driver maintenance.
		return func() {
			if handle != 0 {
				windows.CloseHandle(handle)
			}
		}, true
	}

	return func() { windows.CloseHandle(handle) }, true
}
