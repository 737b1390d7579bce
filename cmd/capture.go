package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/wincap/internal/capture"
	"github.com/mj1618/wincap/internal/output"
	"github.com/mj1618/wincap/internal/platform"
)

var captureCmd = &cobra.Command{
	Use:   "capture <title-substring> <output-dir> <image-format>",
	Short: "Capture a window to an image file",
	Long: `Find the first visible, non-minimized window whose title contains the
given substring and write a screenshot of its bounding rectangle to
<output-dir>/<yyyyMMdd_HHmmss>.<image-format>.

Supported image formats: png, jpg, bmp. The title match is case-sensitive
unless --ignore-case is set.`,
	Args: cobra.ExactArgs(3),
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)
	captureCmd.Flags().Bool("ignore-case", false, "Match the title substring case-insensitively")
	captureCmd.Flags().Int("quality", 80, "JPEG quality 1-100")
	captureCmd.Flags().Float64("scale", 1.0, "Downscale factor 0.1-1.0 (1.0 = full size)")
	captureCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runCapture(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	ignoreCase, _ := cmd.Flags().GetBool("ignore-case")
	quality, _ := cmd.Flags().GetInt("quality")
	scale, _ := cmd.Flags().GetFloat64("scale")

	svc := capture.NewService(provider)
	result, err := svc.Run(capture.Options{
		Target:     args[0],
		OutputDir:  args[1],
		Format:     args[2],
		IgnoreCase: ignoreCase,
		Quality:    quality,
		Scale:      scale,
	})
	if errors.Is(err, platform.ErrNoMatch) {
		return fmt.Errorf("no window found matching title %q", args[0])
	}
	if err != nil {
		return err
	}
	return output.Print(result)
}
