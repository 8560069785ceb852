package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khanglvm/launchd/internal/search"
)

// NewSearchCmd creates the 'search' command for routing a query through the
// handler chain.
func NewSearchCmd() *cobra.Command {
	var jsonOutput bool
	var launchFirst bool

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Route a query and print the results",
		Long: `Route a query through the handler chain (controls, calculator, web
search, commands, app search) and print the winning handler's results.`,
		Example: `  launchd search firefox
  launchd search "= 2 * (3 + 4)"
  launchd search "g: golang generics"
  launchd search --launch terminal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(strings.Join(args, " "), jsonOutput, launchFirst)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	cmd.Flags().BoolVarP(&launchFirst, "launch", "l", false, "Activate the first result")

	return cmd
}

// searchRow is the JSON shape for one result.
type searchRow struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Type        string `json:"type"`
}

func runSearch(query string, jsonOutput, launchFirst bool) error {
	a := newApp()
	defer a.close()

	handler, results := a.router.Route(query)

	if err := a.store.RecordSearch(query, handler, len(results)); err != nil {
		// analytics only, never fail the search
		fmt.Fprintf(os.Stderr, "Warning: failed to record search: %v\n", err)
	}

	if launchFirst && len(results) > 0 {
		return activate(a, results[0])
	}

	if jsonOutput {
		rows := make([]searchRow, len(results))
		for i, r := range results {
			rows[i] = searchRow{Title: r.Title, Description: r.Description, Icon: r.Icon, Type: r.Type}
		}
		out := struct {
			Handler string      `json:"handler"`
			Results []searchRow `json:"results"`
		}{Handler: handler, Results: rows}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if handler == search.NoHandler {
		fmt.Println("No handler claimed the query.")
		return nil
	}

	fmt.Printf("Handler: %s (%d results)\n\n", handler, len(results))
	for _, r := range results {
		if r.Description != "" {
			fmt.Printf("  %s  (%s)\n", r.Title, r.Description)
		} else {
			fmt.Printf("  %s\n", r.Title)
		}
	}
	return nil
}

// activate fires the first result the way the shell would: launchable
// targets go through the coordinator so usage is recorded, everything else
// runs its activation callback.
func activate(a *app, r search.ResultItem) error {
	if r.Target != nil {
		coord := launchCoordinator(a)
		if err := coord.Launch(r.Target); err != nil {
			return err
		}
		fmt.Printf("Launched %s\n", r.Title)
		return nil
	}
	if r.OnActivate != nil {
		r.OnActivate()
		fmt.Printf("Activated %s\n", r.Title)
		return nil
	}
	fmt.Printf("%s has no action\n", r.Title)
	return nil
}
