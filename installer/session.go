package installer

import (
	"fmt"
	"io"
	"sync"

	"github.com/crafted-tech/usbdrivers/platform"
)

// CustomActionDataProperty is the only property a deferred custom action can
// read. The immediate phase copies whatever the action needs into it.
const CustomActionDataProperty = "CustomActionData"

// MessageKind selects how the installer engine treats a message record.
type MessageKind uint32

// MessageInfo records a line in the installer log without user interaction.
const MessageInfo = MessageKind(platform.InstallMessageInfo)

// MessageSink accepts log records for the installer's log.
type MessageSink interface {
	ProcessMessage(kind MessageKind, text string) error
}

// Session is the installer session a custom action borrows for one call.
type Session interface {
	MessageSink

	// Property returns the value of a session property.
	// The boolean is false if the property is unset, empty, or unreadable.
	Property(name string) (string, bool)
}

// SessionProperty returns the named property, or "" if it is absent.
// It never fails: a missing value surfaces later, when a path built from it
// turns out to be invalid.
func SessionProperty(s Session, name string) string {
	if s == nil {
		return ""
	}
	value, ok := s.Property(name)
	if !ok {
		return ""
	}
	return value
}

// NewMsiSession wraps the MSIHANDLE passed to a custom action entry point.
// The handle stays owned by the installer engine.
func NewMsiSession(handle uint32) Session {
	return msiSession{handle: handle}
}

type msiSession struct {
	handle uint32
}

func (s msiSession) Property(name string) (string, bool) {
	return platform.MsiGetProperty(s.handle, name)
}

func (s msiSession) ProcessMessage(kind MessageKind, text string) error {
	return platform.MsiProcessMessage(s.handle, uint32(kind), text)
}

// StaticSession is a Session backed by a property map. Messages are recorded
// and, when an output writer is set, printed one per line.
// It is used to run custom actions outside the installer engine.
type StaticSession struct {
	mu       sync.Mutex
	props    map[string]string
	out      io.Writer
	messages []string
}

// NewStaticSession creates a StaticSession with a copy of props.
// out may be nil.
func NewStaticSession(props map[string]string, out io.Writer) *StaticSession {
	s := &StaticSession{
		props: make(map[string]string, len(props)),
		out:   out,
	}
	for k, v := range props {
		s.props[k] = v
	}
	return s
}

// SetProperty sets a property. Setting "" unsets it, as in the engine.
func (s *StaticSession) SetProperty(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value == "" {
		delete(s.props, name)
		return
	}
	s.props[name] = value
}

// Property implements Session.
func (s *StaticSession) Property(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.props[name]
	return value, ok && value != ""
}

// ProcessMessage implements MessageSink.
func (s *StaticSession) ProcessMessage(kind MessageKind, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, text)
	if s.out != nil {
		if _, err := fmt.Fprintln(s.out, text); err != nil {
			return err
		}
	}
	return nil
}

// Messages returns a copy of every message received so far.
func (s *StaticSession) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.messages...)
}
