//go:build !windows

package platform

// MsiGetProperty is not supported on non-Windows platforms.
func MsiGetProperty(handle uint32, name string) (string, bool) {
	return "", false
}

// MsiProcessMessage is not supported on non-Windows platforms.
func MsiProcessMessage(handle uint32, kind uint32, text string) error {
	return ErrUnsupported
}

// InstallDriver is not supported on non-Windows platforms.
func InstallDriver(path string, flags uint32) (bool, error) {
	return false, ErrUnsupported
}

// UninstallDriver is not supported on non-Windows platforms.
func UninstallDriver(path string, flags uint32) (bool, error) {
	return false, ErrUnsupported
}

// GlobalAtomExists always reports false on non-Windows platforms.
func GlobalAtomExists(name string) bool {
	return false
}

// AddGlobalAtom is not supported on non-Windows platforms.
func AddGlobalAtom(name string) error {
	return ErrUnsupported
}

// IsElevated always reports false on non-Windows platforms.
func IsElevated() bool {
	return false
}

// AcquireSingleInstance always succeeds on non-Windows platforms.
func AcquireSingleInstance(name string) (release func(), ok bool) {
	return func() {}, true
}
