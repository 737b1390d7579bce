//go:build windows

package win

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/mj1618/wincap/internal/model"
	"github.com/mj1618/wincap/internal/platform"
)

var (
	user32              = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows     = user32.NewProc("EnumWindows")
	procIsWindowVisible = user32.NewProc("IsWindowVisible")
	procGetWindowRect   = user32.NewProc("GetWindowRect")
	procGetWindowTextW  = user32.NewProc("GetWindowTextW")
)

// winRect mirrors the Win32 RECT layout.
type winRect struct {
	left, top, right, bottom int32
}

const (
	enumContinue uintptr = 1
	enumStop     uintptr = 0
)

// The runtime never releases callback slots and caps how many a process may
// create, so the EnumWindows callback is minted exactly once and the
// per-call visit function is handed to it through enumVisit. enumMu
// serializes enumerations so concurrent MCP tool calls cannot clobber each
// other's visit.
var (
	enumMu    sync.Mutex
	enumVisit func(w model.Window) bool
)

var enumCallback = windows.NewCallback(func(hwnd, lparam uintptr) uintptr {
	if visible, _, _ := procIsWindowVisible.Call(hwnd); visible == 0 {
		return enumContinue
	}
	var r winRect
	procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	buf := make([]uint16, titleBufLen)
	procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	w := model.Window{
		Handle: model.Handle(hwnd),
		Title:  decodeTitle(buf),
		Rect: model.Rect{
			Left:   int(r.left),
			Top:    int(r.top),
			Right:  int(r.right),
			Bottom: int(r.bottom),
		},
	}
	if !enumVisit(w) {
		return enumStop
	}
	return enumContinue
})

// Enumerator walks the Win32 window table via user32.
type Enumerator struct{}

// NewEnumerator returns a user32-backed window enumerator.
func NewEnumerator() *Enumerator { return &Enumerator{} }

// enumerate walks all top-level windows front to back and invokes visit for
// each visible one. visit returns false to stop the walk early. Per-window
// queries are best-effort: EnumWindows and its siblings report state, they
// do not fail in ways we can recover from.
func (e *Enumerator) enumerate(visit func(w model.Window) bool) {
	enumMu.Lock()
	defer enumMu.Unlock()
	enumVisit = visit
	defer func() { enumVisit = nil }()
	// EnumWindows also returns FALSE when the callback stops the walk, so
	// its return value is not an error signal here.
	procEnumWindows.Call(enumCallback, 0)
}

// ListWindows returns all visible, non-minimized, titled top-level windows
// in Z-order.
func (e *Enumerator) ListWindows() ([]model.Window, error) {
	var wins []model.Window
	e.enumerate(func(w model.Window) bool {
		if w.Rect.Left > platform.MinimizedLeft && w.Title != "" {
			wins = append(wins, w)
		}
		return true
	})
	return wins, nil
}

// FindWindow returns the first visible, non-minimized window whose title
// contains opts.Target, stopping the enumeration at the first hit.
func (e *Enumerator) FindWindow(opts platform.MatchOptions) (model.Window, error) {
	var match model.Window
	found := false
	e.enumerate(func(w model.Window) bool {
		if platform.Matches(w, opts) {
			match, found = w, true
			return false
		}
		return true
	})
	if !found {
		return model.Window{}, fmt.Errorf("%w: no visible window title contains %q", platform.ErrNoMatch, opts.Target)
	}
	return match, nil
}
