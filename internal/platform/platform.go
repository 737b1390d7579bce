package platform

import (
	"image"

	"github.com/mj1618/wincap/internal/model"
)

// Enumerator reads the OS window table.
type Enumerator interface {
	// ListWindows returns all visible, non-minimized, titled top-level
	// windows in Z-order (front to back).
	ListWindows() ([]model.Window, error)

	// FindWindow returns the first window in enumeration order that is
	// visible, not minimized, and whose title contains the target
	// substring. Enumeration stops at the first hit. Returns an error
	// wrapping ErrNoMatch when no window qualifies.
	FindWindow(opts MatchOptions) (model.Window, error)
}

// Capturer samples screen pixels.
type Capturer interface {
	// CaptureRect captures the screen region covered by r.Normalized().
	CaptureRect(r model.Rect) (image.Image, error)
}
