package installer

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Outcome summarizes a step run.
type Outcome struct {
	// Completed is the number of steps that succeeded.
	Completed int

	// Failed is the number of steps that returned an error.
	Failed int

	// RebootRequired is the logical OR of the Reboot flag of every
	// successful step.
	RebootRequired bool
}

// RunSteps executes steps sequentially and stops at the first failure.
// Returns the outcome so far and the failing step's error, or nil if all
// steps succeeded. Steps after a failure are never started.
//
// Example:
//
//	steps := []installer.Step{
//	    installer.StepInstallDriver(store, "VBoxUSBMon", monInf),
//	    installer.StepInstallDriver(store, "VBoxUSB", usbInf),
//	}
//	outcome, err := installer.RunSteps(log, steps)
func RunSteps(log *Logger, steps []Step) (Outcome, error) {
	return runStepsInternal(log, steps, true)
}

// RunStepsBestEffort executes every step regardless of failures.
// Failures are logged and counted but never returned.
func RunStepsBestEffort(log *Logger, steps []Step) Outcome {
	outcome, _ := runStepsInternal(log, steps, false)
	return outcome
}

func runStepsInternal(log *Logger, steps []Step, stopOnError bool) (Outcome, error) {
	var outcome Outcome

	for _, step := range steps {
		entry := log.WithFields(step.Fields)
		entry.Info(step.Name)

		result := step.Action()

		if result.Err != nil {
			outcome.Failed++
			entry.WithFields(ErrorFields(result.Err)).Error(step.Name)
			if stopOnError {
				return outcome, fmt.Errorf("%s: %w", describeStep(step), result.Err)
			}
			continue
		}

		outcome.Completed++
		outcome.RebootRequired = outcome.RebootRequired || result.Reboot

		entry.WithField("reboot", result.Reboot).Debug("Step completed")
	}

	return outcome, nil
}

// ErrorFields returns log fields describing err: the Windows error code in
// the customary 0x%08x form when one is present, and the error text.
func ErrorFields(err error) logrus.Fields {
	fields := logrus.Fields{logrus.ErrorKey: err}
	if code, ok := ErrorCode(err); ok {
		fields["code"] = fmt.Sprintf("0x%08x", code)
	}
	return fields
}

func describeStep(step Step) string {
	if len(step.Fields) == 0 {
		return step.Name
	}
	return step.Name + formatFields(step.Fields)
}
