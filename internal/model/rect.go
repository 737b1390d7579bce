// Package model holds the window records shared by the enumerator, the
// capturer, and the command output.
package model

import "image"

// Rect is a window bounding rectangle in screen pixel coordinates, as
// reported by the OS: left/top is the upper-left corner, right/bottom the
// lower-right.
type Rect struct {
	Left   int `yaml:"left"   json:"left"`
	Top    int `yaml:"top"    json:"top"`
	Right  int `yaml:"right"  json:"right"`
	Bottom int `yaml:"bottom" json:"bottom"`
}

// Normalized returns the capture region for the rectangle: anchored at
// (Left, Top) with width |Right-Left|+1 and height |Bottom-Top|+1. Degenerate
// and sign-inverted rectangles therefore still cover at least one pixel.
func (r Rect) Normalized() image.Rectangle {
	w := abs(r.Right-r.Left) + 1
	h := abs(r.Bottom-r.Top) + 1
	return image.Rect(r.Left, r.Top, r.Left+w, r.Top+h)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
