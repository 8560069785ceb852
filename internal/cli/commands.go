package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// NewCommandsCmd creates the 'commands' command for listing custom commands.
func NewCommandsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List the configured custom commands",
		Long:  `Display the custom commands from ~/.launchd.json, triggered with the ! prefix.`,
		Example: `  launchd commands
  launchd search '!lock'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommands()
		},
	}

	return cmd
}

func runCommands() error {
	a := newApp()
	defer a.close()

	if len(a.cfg.Commands) == 0 {
		fmt.Println("No custom commands configured.")
		fmt.Println("Add a \"commands\" section to ~/.launchd.json.")
		return nil
	}

	names := make([]string, 0, len(a.cfg.Commands))
	for name := range a.cfg.Commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("Custom commands (%d):\n\n", len(names))
	for _, name := range names {
		c := a.cfg.Commands[name]
		fmt.Printf("  !%s\n", name)
		if c.Description != "" {
			fmt.Printf("    Description: %s\n", c.Description)
		}
		fmt.Printf("    Exec:        %s\n", c.Exec)
		fmt.Println()
	}
	return nil
}
