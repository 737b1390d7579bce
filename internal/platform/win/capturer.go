//go:build windows

package win

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"

	"github.com/mj1618/wincap/internal/model"
)

// Capturer samples screen pixels through the GDI-backed screenshot library.
type Capturer struct{}

// NewCapturer returns a screen capturer for the current desktop.
func NewCapturer() *Capturer { return &Capturer{} }

// CaptureRect captures the screen region covered by r.Normalized().
// Regions partly outside the desktop surface as a capture error.
func (c *Capturer) CaptureRect(r model.Rect) (image.Image, error) {
	region := r.Normalized()
	img, err := screenshot.CaptureRect(region)
	if err != nil {
		return nil, fmt.Errorf("capture %dx%d region at (%d,%d): %w",
			region.Dx(), region.Dy(), region.Min.X, region.Min.Y, err)
	}
	return img, nil
}
