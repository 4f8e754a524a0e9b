package platform

import "unicode/utf16"

// Return codes of MsiGetProperty that drive the two-phase read.
const (
	errorSuccess  uint32 = 0   // ERROR_SUCCESS
	errorMoreData uint32 = 234 // ERROR_MORE_DATA
)

// propertyGetter is one MsiGetPropertyW call for a fixed session and name.
// buf is never empty; size holds the buffer capacity in UTF-16 units on
// input and the value length, without terminator, on output.
type propertyGetter func(buf []uint16, size *uint32) uint32

// readProperty asks get for the value length, then fetches into a buffer
// of exactly that length plus the terminator. Returns false if either call
// fails or the value is empty.
func readProperty(get propertyGetter) (string, bool) {
	sizing := make([]uint16, 1)
	var size uint32
	if get(sizing, &size) != errorMoreData {
		return "", false
	}

	size++ // terminating NUL
	buf := make([]uint16, size)
	if get(buf, &size) != errorSuccess {
		return "", false
	}
	if size == 0 || int(size) >= len(buf) {
		return "", false
	}

	return string(utf16.Decode(buf[:size])), true
}
