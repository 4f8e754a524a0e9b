// Package installer provides building blocks for Windows Installer custom actions.
//
// This package offers reusable components that custom actions can pick from:
//   - Session: property access and message delivery for the borrowed MSI session
//   - Logger: structured logging forwarded to the installer log
//   - Step execution: all-or-nothing and best-effort step runners
//   - Driver steps: install and uninstall INF driver packages
//   - RebootSignal: tell the engine a restart is needed after the transaction
//
// # Design Philosophy
//
// This package provides utilities, not a framework. Each custom action keeps
// its own list of steps and decides what a failure means for its status code.
// Rollback belongs to the installer engine; nothing here undoes a completed step.
//
// # Basic Usage
//
//	session := installer.NewMsiSession(handle)
//	log := installer.NewLogger(session)
//	base := installer.SessionProperty(session, installer.CustomActionDataProperty)
//
//	store := installer.SystemDriverStore{Force: true}
//	outcome, err := installer.RunSteps(log, []installer.Step{
//	    installer.StepInstallDriver(store, "VBoxUSBMon", base+`Drivers\VBoxUSBMon\VBoxUSBMon.inf`),
//	})
//	if err != nil {
//	    return installer.StatusInstallFailure
//	}
//	if outcome.RebootRequired {
//	    installer.RequestReboot(log, installer.NewAtomRebootSignal(installer.RebootAtomName))
//	}
//	return installer.StatusSuccess
//
// # Step Pattern
//
// Steps are simple structs with a progress message, log fields and an action:
//
//	type Step struct {
//	    Name   string
//	    Fields logrus.Fields
//	    Action func() StepResult
//	}
//
// The StepResult indicates success, a pending reboot, or failure:
//
//	type StepResult struct {
//	    Reboot bool  // Takes effect after restart
//	    Err    error // Error (nil = success)
//	}
package installer
