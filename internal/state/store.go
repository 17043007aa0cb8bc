// Package state persists the single active-JDK pointer consumed by shells,
// IDEs and launchers: one absolute home path in a plain-text file.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jdkpulse/internal/jdk"
)

// ListFunc produces a fresh registry snapshot for resolving selections.
type ListFunc func() ([]jdk.Record, error)

// Store reads and writes the active-selection state file. Concurrent writers
// are not coordinated; the last write to complete wins.
type Store struct {
	path string
	list ListFunc
}

// DefaultPath returns ~/.jdk_current, the well-known per-user state file.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jdk_current"
	}
	return filepath.Join(home, ".jdk_current")
}

// NewStore creates a store over the given state file, resolving selections
// against snapshots produced by list.
func NewStore(path string, list ListFunc) *Store {
	return &Store{path: path, list: list}
}

// Active returns the currently selected JDK, or nil when no selection has
// been made. A persisted home that no longer matches any enumerated record
// yields a minimal record carrying only the path, never an error: the
// registry drifting must not break tools that only need the pointer.
func (s *Store) Active() (*jdk.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil
	}

	home := strings.TrimSpace(string(data))
	if home == "" {
		return nil, nil
	}

	records, err := s.list()
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].Home == home {
			return &records[i], nil
		}
	}

	return &jdk.Record{
		ID:          "unknown",
		VersionFull: "unknown",
		Home:        home,
	}, nil
}

// SetActive resolves idOrHome to a JDK home path, validates it and persists
// it, overwriting any prior selection. Inputs starting with "/" or "~/" are
// treated as paths (with "~/" expanded against the user's home directory),
// anything else as a record ID looked up in a fresh registry snapshot.
// Returns the resolved path.
func (s *Store) SetActive(idOrHome string) (string, error) {
	home, err := s.resolve(idOrHome)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(home); err != nil {
		return "", fmt.Errorf("JDK path does not exist: %s", home)
	}

	// Missing launcher is suspicious but not disqualifying; the user may be
	// pointing at a stripped runtime on purpose.
	if !jdk.HasRuntime(home) {
		fmt.Fprintf(os.Stderr, "Warning: %s does not contain bin/java\n", home)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("error creating state directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, []byte(home), 0o644); err != nil {
		return "", fmt.Errorf("error writing state file: %w", err)
	}

	return home, nil
}

func (s *Store) resolve(idOrHome string) (string, error) {
	if strings.HasPrefix(idOrHome, "/") || strings.HasPrefix(idOrHome, "~/") {
		path := idOrHome
		if rest, ok := strings.CutPrefix(idOrHome, "~/"); ok {
			if home, err := os.UserHomeDir(); err == nil {
				path = filepath.Join(home, rest)
			}
		}
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("JDK path does not exist: %s", path)
		}
		return path, nil
	}

	records, err := s.list()
	if err != nil {
		return "", err
	}

	for _, r := range records {
		if r.ID == idOrHome {
			return r.Home, nil
		}
	}

	return "", fmt.Errorf("JDK with ID %q not found", idOrHome)
}
