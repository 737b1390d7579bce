//go:build windows

package win

import "github.com/mj1618/wincap/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Enumerator: NewEnumerator(),
			Capturer:   NewCapturer(),
		}, nil
	}
}
