//go:build windows

package installer

import (
	"fmt"
	"os"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

var (
	testKernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procTestGlobalFindAtomW  = testKernel32.NewProc("GlobalFindAtomW")
	procTestGlobalDeleteAtom = testKernel32.NewProc("GlobalDeleteAtom")
)

// dropAtomReference releases one reference to the named global atom.
func dropAtomReference(t *testing.T, name string) {
	t.Helper()
	namePtr, err := windows.UTF16PtrFromString(name)
	require.NoError(t, err)
	atom, _, _ := procTestGlobalFindAtomW.Call(uintptr(unsafe.Pointer(namePtr)))
	require.NotZero(t, atom)
	procTestGlobalDeleteAtom.Call(atom)
}

func TestAtomRebootSignalRaiseIsIdempotent(t *testing.T) {
	// Not RebootAtomName: global atoms outlive the test until the next restart.
	name := fmt.Sprintf("usbdrivers-test-reboot-signal-%d-%d", os.Getpid(), time.Now().UnixNano())
	signal := NewAtomRebootSignal(name)

	require.NoError(t, signal.Raise())
	require.NoError(t, signal.Raise())
	assert.True(t, signal.Raised())

	// The second Raise must not take another reference, so one release clears it.
	dropAtomReference(t, name)
	assert.False(t, signal.Raised())
}
