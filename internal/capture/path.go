// Package capture wires the window enumerator to the screen capturer and
// writes the result to a timestamped image file.
package capture

import (
	"strings"
	"time"
)

// timestampLayout renders yyyyMMdd_HHmmss. Timestamps are second-granular:
// two captures into the same directory within one second land on the same
// file name and the later write wins.
const timestampLayout = "20060102_150405"

// OutputFileName builds the capture destination from the output directory,
// the image format token, and now. Backslashes are normalized to forward
// slashes and the directory gains exactly one trailing slash. Pure function
// of its inputs; the file itself is not created here.
func OutputFileName(dir, format string, now time.Time) string {
	dir = strings.ReplaceAll(dir, `\`, "/")
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	return dir + now.Format(timestampLayout) + "." + format
}
