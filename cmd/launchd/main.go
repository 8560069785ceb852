/*
Package main is the entry point for the launchd CLI.

launchd is the core of a desktop application launcher: a frecency-ranked
usage store over SQLite plus a prefix-routed search pipeline (system
controls, calculator, web search, custom commands, fuzzy app search).

Usage:
  launchd [command]

Available Commands:
  search      Route a query and print the results
  top         List the most frequently used items
  record      Record a launch of an item
  stats       Show usage statistics
  clear       Clear usage data
  commands    List the configured custom commands
  bookmarks   List or edit pinned items
  setup       Write a default configuration file
  version     Show version information
  help        Help about any command

Examples:
  # Write the starter config
  launchd setup

  # Search and launch the best match
  launchd search --launch firefox

  # Inline calculator
  launchd search "= 2 * (3 + 4)"
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khanglvm/launchd/internal/cli"
	"github.com/khanglvm/launchd/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "launchd",
		Short: "Frecency-ranked application launcher core",
		Long: `launchd is the headless core of a desktop launcher. Queries are routed
to exactly one handler by prefix:

  • (keyword)  - volume and brightness controls
  • =          - inline calculator
  • ?, g:, ... - web search engines
  • !          - custom commands
  • anything   - fuzzy application search, frecency ranked

Launch history lives in a local SQLite database and feeds the ranking:
frequently and recently used items surface first.`,
		Version: version.GetVersion(),
	}

	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewTopCmd())
	rootCmd.AddCommand(cli.NewRecordCmd())
	rootCmd.AddCommand(cli.NewStatsCmd())
	rootCmd.AddCommand(cli.NewClearCmd())
	rootCmd.AddCommand(cli.NewCommandsCmd())
	rootCmd.AddCommand(cli.NewBookmarksCmd())
	rootCmd.AddCommand(cli.NewSetupCmd())
	rootCmd.AddCommand(cli.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
