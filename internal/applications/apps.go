// Package applications discovers launchable desktop applications by scanning
// freedesktop .desktop entries under the XDG data directories.
package applications

import (
	"bufio"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/khanglvm/launchd/internal/search"
)

// Spawner starts a detached process from a command line.
type Spawner interface {
	Run(command string) error
}

// App is a single desktop entry. DesktopID is the entry's file name
// (e.g. "firefox.desktop") and deduplicates entries across data dirs.
type App struct {
	DesktopID string
	Name      string
	Comment   string
	Icon      string
	Exec      string
	Terminal  bool

	spawner Spawner
}

// ID implements search.Launchable.
func (a *App) ID() string { return a.DesktopID }

// Launch starts the application via its Exec line. Terminal entries are not
// wrapped in an emulator; they run detached like everything else.
func (a *App) Launch() error {
	if a.spawner == nil {
		return errors.New("no spawner configured")
	}
	return a.spawner.Run(a.Exec)
}

// Catalog is a scanned snapshot of the installed applications, sorted by
// name.
type Catalog struct {
	apps []*App
}

// Scan reads every .desktop entry under dirs. The first directory containing
// a given desktop ID wins, matching XDG precedence. Unreadable directories
// and malformed entries are skipped with a warning.
func Scan(dirs []string, spawner Spawner) *Catalog {
	seen := make(map[string]struct{})
	apps := make([]*App, 0, 128)

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				log.Printf("Warning: failed to read %s: %v", dir, err)
			}
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".desktop") {
				continue
			}
			if _, ok := seen[entry.Name()]; ok {
				continue
			}

			app, err := parseDesktopFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				if !errors.Is(err, errSkipEntry) {
					log.Printf("Warning: failed to parse %s: %v", entry.Name(), err)
				}
				continue
			}

			seen[entry.Name()] = struct{}{}
			app.DesktopID = entry.Name()
			app.spawner = spawner
			apps = append(apps, app)
		}
	}

	sort.Slice(apps, func(i, j int) bool {
		ni, nj := strings.ToLower(apps[i].Name), strings.ToLower(apps[j].Name)
		if ni == nj {
			return apps[i].DesktopID < apps[j].DesktopID
		}
		return ni < nj
	})

	return &Catalog{apps: apps}
}

// ScanDefault scans the standard XDG application directories.
func ScanDefault(spawner Spawner) *Catalog {
	return Scan(DefaultDirs(), spawner)
}

// DefaultDirs returns the XDG application directories in precedence order.
func DefaultDirs() []string {
	dirs := make([]string, 0, 6)

	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "applications"))
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local/share/applications"))
	}

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, dir := range strings.Split(dataDirs, ":") {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		dirs = append(dirs, filepath.Join(dir, "applications"))
	}

	return dirs
}

// Apps returns the catalog contents in sorted order.
func (c *Catalog) Apps() []*App { return c.apps }

// Len returns the number of discovered applications.
func (c *Catalog) Len() int { return len(c.apps) }

// Lookup finds an application by desktop ID.
func (c *Catalog) Lookup(desktopID string) (*App, bool) {
	for _, a := range c.apps {
		if a.DesktopID == desktopID {
			return a, true
		}
	}
	return nil, false
}

// Items converts the catalog into search items for the fallback handler.
func (c *Catalog) Items() []search.Item {
	items := make([]search.Item, len(c.apps))
	for i, a := range c.apps {
		items[i] = search.Item{
			ID:          a.DesktopID,
			Name:        a.Name,
			Description: a.Comment,
			Icon:        a.Icon,
			Target:      a,
		}
	}
	return items
}

var errSkipEntry = errors.New("skip entry")

// parseDesktopFile reads the [Desktop Entry] section. Entries that are
// hidden, NoDisplay, or not of Type=Application are skipped.
func parseDesktopFile(path string) (*App, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var (
		inEntry   bool
		entryType string
		hidden    bool
		noDisplay bool
		app       App
	)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inEntry = line == "[Desktop Entry]"
			continue
		}
		if !inEntry {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch {
		case key == "Type":
			entryType = value
		case key == "Name":
			app.Name = value
		case strings.HasPrefix(key, "Name[") && app.Name == "":
			app.Name = value
		case key == "Comment":
			app.Comment = value
		case key == "Icon":
			app.Icon = value
		case key == "Exec":
			app.Exec = stripFieldCodes(value)
		case key == "Terminal":
			app.Terminal = strings.EqualFold(value, "true")
		case key == "Hidden":
			hidden = strings.EqualFold(value, "true")
		case key == "NoDisplay":
			noDisplay = strings.EqualFold(value, "true")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if entryType != "Application" || hidden || noDisplay || app.Name == "" || app.Exec == "" {
		return nil, errSkipEntry
	}
	return &app, nil
}

// stripFieldCodes removes desktop-entry field codes (%f, %u, %F, %U and the
// rest) from an Exec line. The launcher never passes files or URLs in.
func stripFieldCodes(raw string) string {
	fields := strings.Fields(raw)
	cleaned := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.HasPrefix(f, "%") && len(f) == 2 {
			continue
		}
		cleaned = append(cleaned, f)
	}
	return strings.Join(cleaned, " ")
}
