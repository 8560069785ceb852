package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewClearCmd creates the 'clear' command for resetting usage data.
func NewClearCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clear [item-id]",
		Short: "Clear usage data for an item, or everything with --all",
		Example: `  launchd clear firefox.desktop
  launchd clear --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				return runClearAll()
			}
			if len(args) != 1 {
				return fmt.Errorf("provide an item ID or --all")
			}
			return runClear(args[0])
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Clear all usage data")

	return cmd
}

func runClear(itemID string) error {
	a := newApp()
	defer a.close()

	if err := a.store.Clear(itemID); err != nil {
		return fmt.Errorf("failed to clear %s: %w", itemID, err)
	}
	fmt.Printf("Cleared usage data for %s\n", itemID)
	return nil
}

func runClearAll() error {
	a := newApp()
	defer a.close()

	if err := a.store.ClearAll(); err != nil {
		return fmt.Errorf("failed to clear usage data: %w", err)
	}
	fmt.Println("Cleared all usage data.")
	return nil
}
