//go:build windows

package platform

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// IsElevated checks if the current process is running with administrator privileges.
// Driver store changes require an elevated token.
func IsElevated() bool {
	elevated, err := isElevated()
	if err != nil {
		return false
	}
	return elevated
}

func isElevated() (bool, error) {
	token := windows.Token(0)
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token); err != nil {
		return false, err
	}
	defer token.Close()

	type tokenElevation struct {
		TokenIsElevated uint32
	}

	var elevation tokenElevation
	var outLen uint32
	if err := windows.GetTokenInformation(
		token,
		windows.TokenElevation,
		(*byte)(unsafe.Pointer(&elevation)),
		uint32(unsafe.Sizeof(elevation)),
		&outLen,
	); err != nil {
		return false, err
	}

	return elevation.TokenIsElevated != 0, nil
}
