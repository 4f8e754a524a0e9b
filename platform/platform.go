package platform

import "errors"

// ErrUnsupported is returned by every operation on platforms other than Windows.
var ErrUnsupported = errors.New("operation requires Windows")

// Flags for InstallDriver (DIIRFLAG_*).
//
// https://learn.microsoft.com/en-us/windows/win32/api/newdev/nf-newdev-diinstalldriverw
const (
	// DriverForceInf installs the package even if the same or a better
	// driver is already installed, and suppresses the driver-signing prompt
	// an interactive install would raise.
	DriverForceInf uint32 = 0x00000002
)

// InstallMessageInfo is the INSTALLMESSAGE_INFO message type for
// MsiProcessMessage. Records of this type go to the log file only.
const InstallMessageInfo uint32 = 0x04000000
