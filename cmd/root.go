package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/wincap/internal/output"
	"github.com/mj1618/wincap/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "wincap",
	Short: "Capture a window to an image file by title substring",
	Long:  "A CLI tool that finds a visible window by title substring and writes a screenshot of its bounding rectangle to a timestamped image file.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// The persistent --format selects the console output encoding; the
		// capture command's positional format argument selects the image
		// encoding and is unrelated.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}
