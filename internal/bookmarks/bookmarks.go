// Package bookmarks persists the user's pinned item list as a small JSON
// file. Order is user-controlled and preserved across loads.
package bookmarks

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// Store holds an ordered list of bookmarked item IDs backed by a JSON file.
// A missing or unreadable file yields an empty store rather than an error.
type Store struct {
	path string
	ids  []string
}

type fileFormat struct {
	Bookmarks []string `json:"bookmarks"`
}

// DefaultPath returns the bookmark file location under the user's data
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "launchd", "bookmarks.json"), nil
}

// Load reads the bookmark file at path. Missing or corrupt files log a
// warning and produce an empty store so the launcher keeps working.
func Load(path string) *Store {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: failed to read bookmarks file: %v", err)
		}
		return s
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		log.Printf("Warning: bookmarks file is corrupt, starting empty: %v", err)
		return s
	}

	s.ids = f.Bookmarks
	return s
}

// Save writes the current list back to disk, creating parent directories as
// needed.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(fileFormat{Bookmarks: s.ids}, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(s.path, data, 0644)
}

// IDs returns the bookmarked IDs in order. The returned slice is a copy.
func (s *Store) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Contains reports whether id is bookmarked.
func (s *Store) Contains(id string) bool {
	for _, b := range s.ids {
		if b == id {
			return true
		}
	}
	return false
}

// Add appends id to the list. Adding an existing bookmark is a no-op.
func (s *Store) Add(id string) {
	if s.Contains(id) {
		return
	}
	s.ids = append(s.ids, id)
}

// Remove deletes id from the list if present.
func (s *Store) Remove(id string) {
	for i, b := range s.ids {
		if b == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

// Reorder moves the bookmark at index from to index to, shifting the rest.
// Out-of-range indices are ignored.
func (s *Store) Reorder(from, to int) {
	if from < 0 || from >= len(s.ids) || to < 0 || to >= len(s.ids) || from == to {
		return
	}
	id := s.ids[from]
	s.ids = append(s.ids[:from], s.ids[from+1:]...)

	rest := append([]string{}, s.ids[to:]...)
	s.ids = append(append(s.ids[:to], id), rest...)
}

// Len returns the number of bookmarks.
func (s *Store) Len() int { return len(s.ids) }
