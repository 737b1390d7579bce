package platform

import (
	"testing"

	"github.com/mj1618/wincap/internal/model"
)

func window(title string, left int) model.Window {
	return model.Window{
		Handle: 1,
		Title:  title,
		Rect:   model.Rect{Left: left, Top: 0, Right: left + 100, Bottom: 50},
	}
}

func TestMatches_Substring(t *testing.T) {
	w := window("Untitled - Notepad", 10)

	tests := []struct {
		target string
		want   bool
	}{
		{"Notepad", true},
		{"Untitled - Notepad", true},
		{"", true},
		{"notepad", false}, // case-sensitive by default
		{"Wordpad", false},
	}
	for _, tt := range tests {
		opts := MatchOptions{Target: tt.target}
		if got := Matches(w, opts); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.target, got, tt.want)
		}
	}
}

func TestMatches_IgnoreCase(t *testing.T) {
	w := window("Untitled - Notepad", 10)
	if !Matches(w, MatchOptions{Target: "NOTEPAD", IgnoreCase: true}) {
		t.Error("expected case-insensitive match")
	}
	if Matches(w, MatchOptions{Target: "Wordpad", IgnoreCase: true}) {
		t.Error("ignore-case must not loosen the substring requirement")
	}
}

func TestMatches_MinimizedSentinel(t *testing.T) {
	// A minimized window is never a target, even with a matching title.
	w := window("Untitled - Notepad", MinimizedLeft)
	if Matches(w, MatchOptions{Target: "Notepad"}) {
		t.Error("minimized window must not match")
	}

	below := window("Untitled - Notepad", MinimizedLeft-500)
	if Matches(below, MatchOptions{Target: "Notepad"}) {
		t.Error("window below the sentinel must not match")
	}

	// Just inside the sentinel is a real position.
	edge := window("Untitled - Notepad", MinimizedLeft+1)
	if !Matches(edge, MatchOptions{Target: "Notepad"}) {
		t.Error("window just inside the sentinel should match")
	}
}
