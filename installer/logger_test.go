package installer

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSink struct {
	calls int
}

func (s *failingSink) ProcessMessage(kind MessageKind, text string) error {
	s.calls++
	return errors.New("MsiCreateRecord failed")
}

func TestLoggerForwardsFormattedRecords(t *testing.T) {
	session := NewStaticSession(nil, nil)
	log := NewLogger(session)

	log.WithField("driver", "VBoxUSBMon").Info("Installing")
	log.Info("Requesting reboot")

	assert.Equal(t, []string{
		"CustomActions: Installing driver=VBoxUSBMon",
		"CustomActions: Requesting reboot",
	}, session.Messages())
}

func TestLoggerErrorRecordCarriesCode(t *testing.T) {
	session := NewStaticSession(nil, nil)
	log := NewLogger(session)

	err := syscall.Errno(0xe0000247)
	log.WithField("driver", "VBoxUSB").WithFields(ErrorFields(err)).Error("Installing")

	msgs := session.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "CustomActions: ERROR Installing")
	assert.Contains(t, msgs[0], "code=0xe0000247")
	assert.Contains(t, msgs[0], "driver=VBoxUSB")
}

func TestLoggerSortsAndQuotesFields(t *testing.T) {
	session := NewStaticSession(nil, nil)
	log := NewLogger(session)

	log.WithFields(logrus.Fields{
		"path":   `C:\Program Files\usbipd-win\`,
		"driver": "VBoxUSB",
	}).Info("Checking")

	assert.Equal(t, []string{
		`CustomActions: Checking driver=VBoxUSB path="C:\Program Files\usbipd-win\"`,
	}, session.Messages())
}

func TestLoggerDropsUndeliverableRecords(t *testing.T) {
	sink := &failingSink{}
	log := NewLogger(sink)

	assert.NotPanics(t, func() {
		log.Info("Installing")
		log.WithField("driver", "VBoxUSB").Error("Installing")
	})
	assert.Equal(t, 2, sink.calls)
}

func TestLoggerDebugNeedsVerbose(t *testing.T) {
	session := NewStaticSession(nil, nil)
	log := NewLogger(session)

	log.WithField("reboot", false).Debug("Step completed")
	assert.Empty(t, session.Messages())

	log.SetVerbose(true)
	log.WithField("reboot", false).Debug("Step completed")
	assert.Equal(t, []string{"CustomActions: Step completed reboot=false"}, session.Messages())
}

func TestNilLoggerDiscards(t *testing.T) {
	var log *Logger
	assert.NotPanics(t, func() {
		log.Info("Installing")
		log.WithField("driver", "VBoxUSB").Error("Installing")
		log.SetVerbose(true)
		log.Close()
	})
}

func TestLoggerLogToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "drivers.log")
	session := NewStaticSession(nil, nil)
	log := NewLogger(session)

	require.NoError(t, log.LogToFile(path))
	log.WithField("driver", "VBoxUSBMon").Info("Installing")
	log.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=Installing")
	assert.Contains(t, string(data), "driver=VBoxUSBMon")
	assert.Len(t, session.Messages(), 1)
}
