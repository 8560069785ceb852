package handlers

import (
	"log"
	"sort"
	"strings"

	"github.com/khanglvm/launchd/internal/config"
	"github.com/khanglvm/launchd/internal/search"
)

const (
	commandsName     = "commands"
	commandsPriority = 300

	commandIcon  = "utilities-terminal"
	questionIcon = "dialog-question"
)

// Commands executes user-defined command aliases via the "!" prefix. The
// command table comes from configuration; malformed entries were already
// dropped at config load.
type Commands struct {
	commands map[string]*config.Command
	spawner  Spawner
	closer   func()
}

// NewCommands creates the handler over the loaded command table.
func NewCommands(cfg *config.Config, spawner Spawner, closer func()) *Commands {
	return &Commands{
		commands: cfg.Commands,
		spawner:  spawner,
		closer:   closer,
	}
}

func (h *Commands) Name() string  { return commandsName }
func (h *Commands) Priority() int { return commandsPriority }

func (h *Commands) Matches(query string) bool {
	return strings.HasPrefix(strings.TrimSpace(query), "!")
}

func (h *Commands) Results(query string) []search.ResultItem {
	q := strings.ToLower(strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(query), "!")))

	if q == "" {
		// Bare "!" lists every command, sorted by name.
		names := make([]string, 0, len(h.commands))
		for name := range h.commands {
			names = append(names, name)
		}
		sort.Strings(names)

		results := make([]search.ResultItem, 0, len(names))
		for _, name := range names {
			results = append(results, h.commandResult(name, h.commands[name]))
		}
		return results
	}

	var names []string
	for name, cmd := range h.commands {
		if strings.Contains(strings.ToLower(name), q) ||
			strings.Contains(strings.ToLower(cmd.Description), q) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return []search.ResultItem{{
			Title:       "Unknown command: !" + q,
			Description: "Type ! to see available commands",
			Icon:        questionIcon,
			Type:        search.TypeCommand,
		}}
	}

	results := make([]search.ResultItem, 0, len(names))
	for _, name := range names {
		results = append(results, h.commandResult(name, h.commands[name]))
	}
	return results
}

func (h *Commands) commandResult(name string, cmd *config.Command) search.ResultItem {
	icon := cmd.Icon
	if icon == "" {
		icon = commandIcon
	}

	execStr := cmd.Exec
	return search.ResultItem{
		Title:       "!" + name,
		Description: cmd.Description,
		Icon:        icon,
		Type:        search.TypeCommand,
		OnActivate: func() {
			if err := h.spawner.Run(execStr); err != nil {
				log.Printf("Warning: failed to execute command %q: %v", execStr, err)
			}
			if h.closer != nil {
				h.closer()
			}
		},
	}
}
