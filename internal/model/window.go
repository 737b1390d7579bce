package model

import "fmt"

// Handle identifies a top-level OS window. It is an opaque token: the only
// meaningful operation on it is equality comparison.
type Handle uintptr

// Window represents a top-level OS window. The zero value means "no window".
type Window struct {
	Handle Handle `yaml:"handle" json:"handle"`
	Title  string `yaml:"title"  json:"title"`
	Rect   Rect   `yaml:"rect"   json:"rect"`
}

// IsZero reports whether w carries no window.
func (w Window) IsZero() bool {
	return w.Handle == 0 && w.Title == "" && w.Rect == (Rect{})
}

// String renders the window as a one-line diagnostic:
// (left,top)-(right,bottom) : "title".
func (w Window) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d) : %q",
		w.Rect.Left, w.Rect.Top, w.Rect.Right, w.Rect.Bottom, w.Title)
}
