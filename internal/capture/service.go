package capture

import (
	"fmt"
	"os"
	"time"

	"github.com/mj1618/wincap/internal/model"
	"github.com/mj1618/wincap/internal/platform"
)

// Options configures one capture run.
type Options struct {
	Target     string // title substring to match
	OutputDir  string // destination directory
	Format     string // image format token, passed to the encoder
	IgnoreCase bool
	Quality    int     // JPEG quality 1-100
	Scale      float64 // downscale factor; 0 or 1 keeps full size
}

// Result reports a completed capture.
type Result struct {
	Window model.Window `yaml:"window" json:"window"`
	Path   string       `yaml:"path"   json:"path"`
	Width  int          `yaml:"width"  json:"width"`
	Height int          `yaml:"height" json:"height"`
}

// Service wires the window enumerator to the screen capturer.
type Service struct {
	Enumerator platform.Enumerator
	Capturer   platform.Capturer

	// Now is the clock used for output file names. Defaults to time.Now.
	Now func() time.Time
}

// NewService builds a Service from the platform provider.
func NewService(p *platform.Provider) *Service {
	return &Service{Enumerator: p.Enumerator, Capturer: p.Capturer}
}

// Run finds the first window matching opts.Target, captures its bounding
// rectangle, and writes the encoded image to a timestamped file under
// opts.OutputDir. An existing file at the same path is overwritten; a file
// partially written before an encoding failure is removed.
func (s *Service) Run(opts Options) (Result, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	path := OutputFileName(opts.OutputDir, opts.Format, now())

	win, err := s.Enumerator.FindWindow(platform.MatchOptions{
		Target:     opts.Target,
		IgnoreCase: opts.IgnoreCase,
	})
	if err != nil {
		return Result{}, err
	}

	img, err := s.Capturer.CaptureRect(win.Rect)
	if err != nil {
		return Result{}, fmt.Errorf("capture window %s: %w", win, err)
	}
	img = Downscale(img, opts.Scale)

	f, err := os.Create(path)
	if err != nil {
		return Result{}, fmt.Errorf("create %s for window %s: %w", path, win, err)
	}
	if err := Encode(f, img, EncodeOptions{Format: opts.Format, Quality: opts.Quality}); err != nil {
		f.Close()
		os.Remove(path)
		return Result{}, fmt.Errorf("encode %s for window %s: %w", path, win, err)
	}
	if err := f.Close(); err != nil {
		return Result{}, fmt.Errorf("close %s for window %s: %w", path, win, err)
	}

	b := img.Bounds()
	return Result{Window: win, Path: path, Width: b.Dx(), Height: b.Dy()}, nil
}
