package installer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MessagePrefix tags every line forwarded to the installer log so it can be
// found among the engine's own messages.
const MessagePrefix = "CustomActions: "

var discardLogger = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

// Logger forwards structured log entries to an installer session.
// Each entry becomes one INSTALLMESSAGE_INFO record. A record that cannot be
// built or delivered is dropped; logging never changes an action's outcome.
//
// A nil *Logger discards everything.
type Logger struct {
	logger *logrus.Logger
	file   *os.File
}

// NewLogger creates a Logger that writes to sink at Info level.
//
// Example:
//
//	log := installer.NewLogger(session)
//	log.WithField("driver", "VBoxUSB").Info("Installing")
//	// CustomActions: Installing driver=VBoxUSB
func NewLogger(sink MessageSink) *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	l.AddHook(&sessionHook{
		sink:      sink,
		formatter: &sessionFormatter{prefix: MessagePrefix},
	})
	return &Logger{logger: l}
}

// SetVerbose enables Debug entries, such as per-step completion lines.
func (l *Logger) SetVerbose(verbose bool) {
	if l == nil {
		return
	}
	if verbose {
		l.logger.SetLevel(logrus.DebugLevel)
	} else {
		l.logger.SetLevel(logrus.InfoLevel)
	}
}

// LogToFile mirrors every entry to the file at path, appending to it.
// Parent directories are created as needed.
func (l *Logger) LogToFile(path string) error {
	if l == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "create log directory %s", filepath.Dir(path))
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "open log file %s", path)
	}
	l.file = f
	l.logger.AddHook(&fileHook{
		file:      f,
		formatter: &logrus.TextFormatter{FullTimestamp: true, DisableColors: true},
	})
	return nil
}

// Close closes the mirror file, if any.
func (l *Logger) Close() {
	if l == nil || l.file == nil {
		return
	}
	l.file.Close()
	l.file = nil
}

// WithField returns an entry carrying a single field.
func (l *Logger) WithField(key string, value any) *logrus.Entry {
	return l.entry().WithField(key, value)
}

// WithFields returns an entry carrying fields.
func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	return l.entry().WithFields(fields)
}

// Info logs a message without fields.
func (l *Logger) Info(msg string) {
	l.entry().Info(msg)
}

func (l *Logger) entry() *logrus.Entry {
	if l == nil {
		return logrus.NewEntry(discardLogger)
	}
	return logrus.NewEntry(l.logger)
}

// sessionHook delivers formatted entries to the session message sink.
type sessionHook struct {
	sink      MessageSink
	formatter logrus.Formatter
}

func (h *sessionHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire never returns an error so logrus does not report a broken hook on stderr.
func (h *sessionHook) Fire(entry *logrus.Entry) error {
	if h.sink == nil {
		return nil
	}
	text, err := h.formatter.Format(entry)
	if err != nil {
		return nil
	}
	_ = h.sink.ProcessMessage(MessageInfo, string(text))
	return nil
}

type fileHook struct {
	file      *os.File
	formatter logrus.Formatter
}

func (h *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fileHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return nil
	}
	_, _ = h.file.Write(line)
	return nil
}

// sessionFormatter renders "<prefix>[ERROR ]<message> key=value ..." with
// keys sorted and no trailing newline, matching one installer log record.
type sessionFormatter struct {
	prefix string
}

func (f *sessionFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(f.prefix)
	switch {
	case entry.Level <= logrus.ErrorLevel:
		b.WriteString("ERROR ")
	case entry.Level == logrus.WarnLevel:
		b.WriteString("WARNING ")
	}
	b.WriteString(entry.Message)
	b.WriteString(formatFields(entry.Data))
	return b.Bytes(), nil
}

// formatFields renders fields as " key=value" pairs in key order.
func formatFields(fields logrus.Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(quoteIfNeeded(fmt.Sprint(fields[k])))
	}
	return b.String()
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\r\n\"=") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}
