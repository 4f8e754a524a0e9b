//go:build windows && cgo

// Command customactions is the custom action DLL of the usbipd-win MSI package.
//
// Build it as a C shared library and reference the exports from the package's
// CustomAction table as deferred, no-impersonate actions scheduled between
// InstallFiles and InstallFinalize:
//
//	go build -buildmode=c-shared -o CustomActions.dll ./cmd/customactions
package main

import "C"

import (
	"github.com/crafted-tech/usbdrivers/actions"
	"github.com/crafted-tech/usbdrivers/installer"
)

//export InstallDrivers
func InstallDrivers(hInstall uint32) uint32 {
	session := installer.NewMsiSession(hInstall)
	return uint32(actions.InstallDrivers(actions.NewSystemEnv(session, actions.DefaultConfig())))
}

//export UninstallDrivers
func UninstallDrivers(hInstall uint32) uint32 {
	session := installer.NewMsiSession(hInstall)
	return uint32(actions.UninstallDrivers(actions.NewSystemEnv(session, actions.DefaultConfig())))
}

func main() {}
