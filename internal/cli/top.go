package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewTopCmd creates the 'top' command for listing the highest-scored items.
func NewTopCmd() *cobra.Command {
	var limit int
	var minLaunches int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "top",
		Short: "List the most frequently used items by frecency score",
		Long: `Rank recorded items by launch count weighted by recency. Items launched
fewer than the minimum number of times are excluded.`,
		Example: `  launchd top
  launchd top --limit 5
  launchd top --min-launches 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTop(limit, minLaunches, jsonOutput)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of items")
	cmd.Flags().IntVarP(&minLaunches, "min-launches", "m", -1, "Minimum launch count (default from config)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runTop(limit, minLaunches int, jsonOutput bool) error {
	a := newApp()
	defer a.close()

	if minLaunches < 0 {
		minLaunches = a.cfg.Settings.MinLaunches
	}

	items := a.store.TopItems(limit, minLaunches)

	if jsonOutput {
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(items) == 0 {
		fmt.Println("No usage recorded yet.")
		return nil
	}

	fmt.Printf("Top items (%d):\n\n", len(items))
	for i, it := range items {
		last := time.Unix(it.LastLaunch, 0).Format("2006-01-02 15:04")
		fmt.Printf("  %2d. %-40s score %8.1f  launches %4d  last %s\n",
			i+1, it.ItemID, it.Score, it.LaunchCount, last)
	}
	return nil
}
