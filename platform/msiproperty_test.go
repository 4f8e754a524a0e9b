package platform

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
)

// msiGetter behaves like MsiGetPropertyW for a session holding value.
// An unset property reads the same as an empty one.
type msiGetter struct {
	value    []uint16
	calls    int
	fetchLen int
	failOn   int
}

func newMsiGetter(value string) *msiGetter {
	return &msiGetter{value: utf16.Encode([]rune(value))}
}

func (g *msiGetter) get(buf []uint16, size *uint32) uint32 {
	g.calls++
	if g.calls == g.failOn {
		return 6 // ERROR_INVALID_HANDLE
	}
	n := uint32(len(g.value))
	if *size <= n {
		*size = n
		return errorMoreData
	}
	g.fetchLen = len(buf)
	copy(buf, g.value)
	buf[n] = 0
	*size = n
	return errorSuccess
}

func TestReadPropertyRoundTrip(t *testing.T) {
	tests := []string{
		`C:\Program Files\usbipd-win\`,
		"x",
		`D:\Überordner\usbipd 😀\`,
		longValue(1024),
	}
	for _, value := range tests {
		g := newMsiGetter(value)

		got, ok := readProperty(g.get)

		assert.True(t, ok)
		assert.Equal(t, value, got)
		assert.Equal(t, 2, g.calls)
		assert.Equal(t, len(utf16.Encode([]rune(value)))+1, g.fetchLen, "buffer sized to the value plus terminator")
	}
}

func TestReadPropertyUnsetIsAbsent(t *testing.T) {
	g := newMsiGetter("")

	got, ok := readProperty(g.get)

	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestReadPropertyFailedSizingCall(t *testing.T) {
	g := newMsiGetter(`C:\usbipd\`)
	g.failOn = 1

	got, ok := readProperty(g.get)

	assert.False(t, ok)
	assert.Empty(t, got)
	assert.Equal(t, 1, g.calls)
}

func TestReadPropertyFailedFetch(t *testing.T) {
	g := newMsiGetter(`C:\usbipd\`)
	g.failOn = 2

	got, ok := readProperty(g.get)

	assert.False(t, ok)
	assert.Empty(t, got)
}

func longValue(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a' + byte(i%26)
	}
	return string(b)
}
