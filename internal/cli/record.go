package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRecordCmd creates the 'record' command for logging a launch manually.
func NewRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record <item-id>",
		Short: "Record a launch of an item",
		Long: `Increment the launch count for an item and stamp the launch time.
Useful for shell integrations that launch outside launchd.`,
		Example: `  launchd record firefox.desktop`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(args[0])
		},
	}

	return cmd
}

func runRecord(itemID string) error {
	a := newApp()
	defer a.close()

	if err := a.store.RecordLaunch(itemID); err != nil {
		return fmt.Errorf("failed to record launch: %w", err)
	}

	if rec, ok := a.store.Stats(itemID); ok {
		fmt.Printf("Recorded launch of %s (count: %d)\n", itemID, rec.LaunchCount)
	} else {
		fmt.Printf("Recorded launch of %s\n", itemID)
	}
	return nil
}
