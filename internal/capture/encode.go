package capture

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

// defaultJPEGQuality is used when EncodeOptions.Quality is out of range.
const defaultJPEGQuality = 80

// EncodeOptions selects the image encoder.
type EncodeOptions struct {
	// Format is the image format token: png, jpg, jpeg, or bmp.
	Format string
	// Quality is the JPEG quality, 1-100. Ignored for other formats.
	Quality int
}

// Encode writes img to w in the requested format. An unsupported format
// token surfaces here, at capture time; it is deliberately not validated
// during argument parsing.
func Encode(w io.Writer, img image.Image, opts EncodeOptions) error {
	switch opts.Format {
	case "png":
		return png.Encode(w, img)
	case "jpg", "jpeg":
		quality := opts.Quality
		if quality <= 0 || quality > 100 {
			quality = defaultJPEGQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q (use png, jpg, or bmp)", opts.Format)
	}
}
