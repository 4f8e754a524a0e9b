//go:build windows

package platform

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	modmsi = windows.NewLazySystemDLL("msi.dll")

	procMsiGetPropertyW     = modmsi.NewProc("MsiGetPropertyW")
	procMsiCreateRecord     = modmsi.NewProc("MsiCreateRecord")
	procMsiRecordSetStringW = modmsi.NewProc("MsiRecordSetStringW")
	procMsiProcessMessage   = modmsi.NewProc("MsiProcessMessage")
	procMsiCloseHandle      = modmsi.NewProc("MsiCloseHandle")
)

// MsiGetProperty reads a property from the installer session identified by handle.
// Returns false if the property is unset, empty, or cannot be read.
//
// The value is read in two calls: a sizing call with an empty buffer that reports
// the required length, then a fetch into a buffer of exactly that size.
//
// https://learn.microsoft.com/en-us/windows/win32/api/msiquery/nf-msiquery-msigetpropertyw
func MsiGetProperty(handle uint32, name string) (string, bool) {
	if err := procMsiGetPropertyW.Find(); err != nil {
		return "", false
	}
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return "", false
	}

	return readProperty(func(buf []uint16, size *uint32) uint32 {
		r, _, _ := procMsiGetPropertyW.Call(
			uintptr(handle),
			uintptr(unsafe.Pointer(namePtr)),
			uintptr(unsafe.Pointer(&buf[0])),
			uintptr(unsafe.Pointer(size)),
		)
		return uint32(r)
	})
}

// MsiProcessMessage sends text to the installer session as a single-field record.
// kind is one of the INSTALLMESSAGE_* values.
//
// https://learn.microsoft.com/en-us/windows/win32/api/msiquery/nf-msiquery-msiprocessmessage
func MsiProcessMessage(handle uint32, kind uint32, text string) error {
	if err := modmsi.Load(); err != nil {
		return errors.Wrap(err, "load msi.dll")
	}

	textPtr, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return errors.Wrap(err, "encode message")
	}

	record, _, _ := procMsiCreateRecord.Call(0)
	if record == 0 {
		return errors.New("MsiCreateRecord failed")
	}
	defer procMsiCloseHandle.Call(record)

	if r, _, _ := procMsiRecordSetStringW.Call(record, 0, uintptr(unsafe.Pointer(textPtr))); r != 0 {
		return errors.Wrap(windows.Errno(r), "MsiRecordSetString")
	}

	// MsiProcessMessage returns -1 on error; any other value is a dialog result.
	if r, _, _ := procMsiProcessMessage.Call(uintptr(handle), uintptr(kind), record); int32(r) == -1 {
		return errors.New("MsiProcessMessage failed")
	}
	return nil
}
