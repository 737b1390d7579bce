// Package win implements the platform backends on top of user32 and a
// GDI-backed screen capture library.
package win

import "unicode/utf16"

// titleBufLen is the UTF-16 buffer size used when reading window titles.
// Longer titles are truncated before substring matching ever sees them, so
// a target substring that only occurs past this cap will not match.
const titleBufLen = 1024

// decodeTitle converts a NUL-terminated UTF-16 title buffer to a string.
func decodeTitle(buf []uint16) string {
	for i, c := range buf {
		if c == 0 {
			buf = buf[:i]
			break
		}
	}
	return string(utf16.Decode(buf))
}
