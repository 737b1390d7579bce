package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/wincap/internal/model"
	"github.com/mj1618/wincap/internal/output"
	"github.com/mj1618/wincap/internal/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible windows",
	Long:  "List visible, non-minimized top-level windows with their handle, title, and bounding rectangle, in Z-order.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("title", "", "Filter windows by title substring")
	listCmd.Flags().Bool("ignore-case", false, "Match the title filter case-insensitively")
	listCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	ignoreCase, _ := cmd.Flags().GetBool("ignore-case")

	windows, err := provider.Enumerator.ListWindows()
	if err != nil {
		return err
	}
	if title != "" {
		windows = filterWindows(windows, platform.MatchOptions{Target: title, IgnoreCase: ignoreCase})
	}
	if windows == nil {
		windows = []model.Window{}
	}
	return output.Print(windows)
}

// filterWindows keeps the windows passing the match filter, preserving order.
func filterWindows(windows []model.Window, opts platform.MatchOptions) []model.Window {
	var filtered []model.Window
	for _, w := range windows {
		if platform.Matches(w, opts) {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
