//go:build windows

package platform

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGlobalAddAtomW  = modkernel32.NewProc("GlobalAddAtomW")
	procGlobalFindAtomW = modkernel32.NewProc("GlobalFindAtomW")
)

// GlobalAtomExists reports whether name is present in the global atom table.
func GlobalAtomExists(name string) bool {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return false
	}
	atom, _, _ := procGlobalFindAtomW.Call(uintptr(unsafe.Pointer(namePtr)))
	return atom != 0
}

// AddGlobalAtom adds name to the global atom table.
// If the atom is already present the table is left unchanged and nil is returned.
// Global atoms live until the system restarts; there is no matching delete here.
func AddGlobalAtom(name string) error {
	if GlobalAtomExists(name) {
		return nil
	}
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return errors.Wrapf(err, "encode atom name %q", name)
	}
	atom, _, e := procGlobalAddAtomW.Call(uintptr(unsafe.Pointer(namePtr)))
	if atom == 0 {
		return errors.Wrapf(e, "GlobalAddAtom %q", name)
	}
	return nil
}
