package installer

import (
	"errors"
	"syscall"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordingStep(name string, ran *[]string, result StepResult) Step {
	return Step{
		Name:   "Running",
		Fields: logrus.Fields{"step": name},
		Action: func() StepResult {
			*ran = append(*ran, name)
			return result
		},
	}
}

func TestRunStepsStopsAtFirstFailure(t *testing.T) {
	var ran []string
	failure := syscall.Errno(5)
	session := NewStaticSession(nil, nil)

	outcome, err := RunSteps(NewLogger(session), []Step{
		recordingStep("first", &ran, SuccessNeedsReboot(false)),
		recordingStep("second", &ran, Failed(failure)),
		recordingStep("third", &ran, SuccessNeedsReboot(false)),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, failure))
	assert.Contains(t, err.Error(), "Running step=second")
	assert.Equal(t, []string{"first", "second"}, ran)
	assert.Equal(t, Outcome{Completed: 1, Failed: 1}, outcome)

	msgs := session.Messages()
	require.Len(t, msgs, 3)
	assert.Contains(t, msgs[2], "ERROR Running")
	assert.Contains(t, msgs[2], "code=0x00000005")
}

func TestRunStepsAccumulatesReboot(t *testing.T) {
	var ran []string

	outcome, err := RunSteps(nil, []Step{
		recordingStep("first", &ran, SuccessNeedsReboot(true)),
		recordingStep("second", &ran, SuccessNeedsReboot(false)),
	})

	require.NoError(t, err)
	assert.Equal(t, Outcome{Completed: 2, RebootRequired: true}, outcome)
}

func TestRunStepsIgnoresRebootOfFailedStep(t *testing.T) {
	var ran []string

	outcome, err := RunSteps(nil, []Step{
		recordingStep("first", &ran, StepResult{Reboot: true, Err: errors.New("boom")}),
	})

	require.Error(t, err)
	assert.False(t, outcome.RebootRequired)
}

func TestRunStepsBestEffortRunsEverything(t *testing.T) {
	var ran []string
	session := NewStaticSession(nil, nil)

	outcome := RunStepsBestEffort(NewLogger(session), []Step{
		recordingStep("first", &ran, Failed(errors.New("boom"))),
		recordingStep("second", &ran, Failed(syscall.Errno(2))),
		recordingStep("third", &ran, SuccessNeedsReboot(false)),
	})

	assert.Equal(t, []string{"first", "second", "third"}, ran)
	assert.Equal(t, Outcome{Completed: 1, Failed: 2}, outcome)
	assert.Len(t, session.Messages(), 5)
}

func TestErrorFieldsWithoutCode(t *testing.T) {
	fields := ErrorFields(errors.New("boom"))
	assert.NotContains(t, fields, "code")
	assert.Contains(t, fields, logrus.ErrorKey)
}
