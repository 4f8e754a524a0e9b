// Package actions implements the usbipd-win driver custom actions.
//
// InstallDrivers installs the USB monitor driver (VBoxUSBMon) and then the
// USB device driver (VBoxUSB). It stops at the first failure and reports
// ERROR_INSTALL_FAILURE so the installer engine rolls the transaction back.
//
// UninstallDrivers removes them in reverse order. Failures are logged and
// skipped; removal of the product is never blocked by driver cleanup.
//
// Both run as deferred actions between InstallFiles and InstallFinalize and
// read the installation directory from CustomActionData.
package actions
