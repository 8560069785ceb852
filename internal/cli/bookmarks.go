package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/launchd/internal/bookmarks"
)

// NewBookmarksCmd creates the 'bookmarks' command group.
func NewBookmarksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmarks",
		Short: "List or edit pinned items",
		Example: `  launchd bookmarks
  launchd bookmarks add firefox.desktop
  launchd bookmarks remove firefox.desktop`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBookmarksList()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <item-id>",
		Short: "Pin an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBookmarksAdd(args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "remove <item-id>",
		Aliases: []string{"rm"},
		Short:   "Unpin an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBookmarksRemove(args[0])
		},
	})

	return cmd
}

func loadBookmarks() (*bookmarks.Store, error) {
	path, err := bookmarks.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bookmarks path: %w", err)
	}
	return bookmarks.Load(path), nil
}

func runBookmarksList() error {
	store, err := loadBookmarks()
	if err != nil {
		return err
	}

	ids := store.IDs()
	if len(ids) == 0 {
		fmt.Println("No bookmarks.")
		return nil
	}

	fmt.Printf("Bookmarks (%d):\n\n", len(ids))
	for i, id := range ids {
		fmt.Printf("  %2d. %s\n", i+1, id)
	}
	return nil
}

func runBookmarksAdd(itemID string) error {
	store, err := loadBookmarks()
	if err != nil {
		return err
	}

	if store.Contains(itemID) {
		fmt.Printf("%s is already bookmarked.\n", itemID)
		return nil
	}

	store.Add(itemID)
	if err := store.Save(); err != nil {
		return fmt.Errorf("failed to save bookmarks: %w", err)
	}
	fmt.Printf("Bookmarked %s\n", itemID)
	return nil
}

func runBookmarksRemove(itemID string) error {
	store, err := loadBookmarks()
	if err != nil {
		return err
	}

	if !store.Contains(itemID) {
		fmt.Printf("%s is not bookmarked.\n", itemID)
		return nil
	}

	store.Remove(itemID)
	if err := store.Save(); err != nil {
		return fmt.Errorf("failed to save bookmarks: %w", err)
	}
	fmt.Printf("Removed bookmark %s\n", itemID)
	return nil
}
