// Package state persists the small pieces of client-side state the app
// keeps between runs: the session's token triple, the signed-in email,
// and view preferences. It is the CLI analog of the browser's durable
// key-value storage and is deliberately unscoped by account — a second
// account signing in on the same machine inherits the prior preferences.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// View modes for the shelf renderer.
const (
	ViewFull    = "full"
	ViewCompact = "compact"
)

// State is everything persisted client-side.
type State struct {
	AccessToken  string            `yaml:"access_token,omitempty"`
	IDToken      string            `yaml:"id_token,omitempty"`
	RefreshToken string            `yaml:"refresh_token,omitempty"`
	Email        string            `yaml:"email,omitempty"`
	ViewMode     string            `yaml:"view_mode,omitempty"`
	ShelfSort    map[string]string `yaml:"shelf_sort,omitempty"` // persisted status → sort key
}

// HasTokens reports whether both the access and refresh tokens are stored.
func (s *State) HasTokens() bool {
	return s.AccessToken != "" && s.RefreshToken != ""
}

// ClearTokens wipes the token triple and email, ending the session.
// Preferences are kept.
func (s *State) ClearTokens() {
	s.AccessToken = ""
	s.IDToken = ""
	s.RefreshToken = ""
	s.Email = ""
}

// SortKeyFor returns the saved default sort key for a shelf, or empty.
func (s *State) SortKeyFor(status string) string {
	return s.ShelfSort[status]
}

// SetSortKeyFor saves the default sort key for a shelf.
func (s *State) SetSortKeyFor(status, key string) {
	if s.ShelfSort == nil {
		s.ShelfSort = make(map[string]string)
	}
	s.ShelfSort[status] = key
}

// File reads and writes the state file.
type File struct {
	path string
}

// NewFile creates a File at the given path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Load reads the state from disk. A missing file yields empty state.
func (f *File) Load() (*State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{}, nil
		}
		return nil, fmt.Errorf("reading state: %w", err)
	}
	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing state: %w", err)
	}
	return &st, nil
}

// Save writes the state to disk. The file holds bearer tokens, so it is
// created owner-readable only.
func (f *File) Save(st *State) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0600)
}
