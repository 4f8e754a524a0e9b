//go:build !windows

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStubsReportUnsupported(t *testing.T) {
	_, err := InstallDriver(`C:\usbipd\Drivers\VBoxUSB\VBoxUSB.inf`, DriverForceInf)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = UninstallDriver(`C:\usbipd\Drivers\VBoxUSB\VBoxUSB.inf`, 0)
	assert.ErrorIs(t, err, ErrUnsupported)

	assert.ErrorIs(t, AddGlobalAtom("x"), ErrUnsupported)
	assert.False(t, GlobalAtomExists("x"))

	assert.ErrorIs(t, MsiProcessMessage(1, InstallMessageInfo, "x"), ErrUnsupported)
	value, ok := MsiGetProperty(1, "CustomActionData")
	assert.False(t, ok)
	assert.Empty(t, value)

	assert.False(t, IsElevated())
	release, ok := AcquireSingleInstance("x")
	assert.True(t, ok)
	release()
}
