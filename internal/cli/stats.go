package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewStatsCmd creates the 'stats' command for usage statistics.
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [item-id]",
		Short: "Show usage statistics",
		Long: `Without arguments, show aggregate usage statistics. With an item ID,
show that item's launch record.`,
		Example: `  launchd stats
  launchd stats firefox.desktop`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runItemStats(args[0])
			}
			return runStats()
		},
	}

	return cmd
}

func runStats() error {
	a := newApp()
	defer a.close()

	fmt.Printf("Total launches:    %d\n", a.store.TotalLaunches())
	fmt.Printf("Searches recorded: %d\n", a.store.SearchCount())
	fmt.Printf("Applications:      %d\n", a.catalog.Len())
	return nil
}

func runItemStats(itemID string) error {
	a := newApp()
	defer a.close()

	rec, ok := a.store.Stats(itemID)
	if !ok {
		fmt.Printf("No usage recorded for %s\n", itemID)
		return nil
	}

	fmt.Printf("Item:         %s\n", rec.ItemID)
	fmt.Printf("Launches:     %d\n", rec.LaunchCount)
	fmt.Printf("Last launch:  %s\n", time.Unix(rec.LastLaunch, 0).Format(time.RFC1123))
	fmt.Printf("First seen:   %s\n", time.Unix(rec.CreatedAt, 0).Format(time.RFC1123))
	return nil
}
