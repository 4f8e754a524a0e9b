package installer

import "github.com/sirupsen/logrus"

// Status is the value a custom action returns to the installer engine.
type Status uint32

const (
	// StatusSuccess is ERROR_SUCCESS.
	StatusSuccess Status = 0

	// StatusInstallFailure is ERROR_INSTALL_FAILURE. The engine rolls back
	// the transaction when a deferred action returns it.
	StatusInstallFailure Status = 1603
)

// StepResult represents the outcome of a step execution.
type StepResult struct {
	// Reboot reports that the operation completed but takes full effect
	// only after the system restarts.
	Reboot bool

	// Err contains the error if the step failed.
	// A nil Err indicates success.
	Err error
}

// SuccessNeedsReboot creates a successful StepResult carrying a reboot flag.
func SuccessNeedsReboot(needReboot bool) StepResult {
	return StepResult{Reboot: needReboot}
}

// Failed creates a StepResult with an error.
func Failed(err error) StepResult {
	return StepResult{Err: err}
}

// Step represents a named action executed by a custom action.
type Step struct {
	// Name is the progress message logged before the action runs,
	// e.g. "Installing".
	Name string

	// Fields are attached to every log line about this step.
	Fields logrus.Fields

	// Action executes the step and returns the result.
	// Actions may block; nothing interrupts them once started.
	Action func() StepResult
}
