package platform

import (
	"errors"
	"strings"

	"github.com/mj1618/wincap/internal/model"
)

// MinimizedLeft is the sentinel X coordinate the OS reports for minimized
// windows, which park off-screen around (-32000,-32000). A window whose left
// edge is at or below this value is minimized, not positioned.
const MinimizedLeft = -32000

// ErrNoMatch is reported by FindWindow when no visible, non-minimized window
// title contains the target substring.
var ErrNoMatch = errors.New("no window matched")

// MatchOptions selects the capture target.
type MatchOptions struct {
	// Target is the title substring to look for. An empty target matches
	// any titled window.
	Target string
	// IgnoreCase makes the substring match case-insensitive. The default
	// is an ordinary case-sensitive search.
	IgnoreCase bool
}

// Matches reports whether w passes the capture-target filters: not minimized
// and title contains the target substring. Visibility is the enumerator's
// job; windows reaching Matches were already reported visible by the OS.
func Matches(w model.Window, opts MatchOptions) bool {
	if w.Rect.Left <= MinimizedLeft {
		return false
	}
	if opts.IgnoreCase {
		return strings.Contains(strings.ToLower(w.Title), strings.ToLower(opts.Target))
	}
	return strings.Contains(w.Title, opts.Target)
}
