// Package config persists user settings between sessions: the known game
// installations, UI defaults, and logging preferences. Settings live in a
// JSON file under the user's config directory and are written atomically
// (temp file, then rename) so a crash mid-write never leaves a truncated
// file behind.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wowsafe/internal/game"
)

// settingsVersion is bumped when the file format changes shape.
const settingsVersion = "1.0"

// Settings is everything wowsafe remembers between runs.
type Settings struct {
	Version     string    `json:"version"`
	LastUpdated time.Time `json:"last_updated"`

	Installations []game.Installation `json:"installations"`

	// UI defaults
	LastBranch  string `json:"last_branch,omitempty"`
	LastAccount string `json:"last_account,omitempty"`
	LogLevel    string `json:"log_level,omitempty"`
}

// Dir returns the configuration directory, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".config", "wowsafe")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

func settingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// Load reads the settings file, returning defaults when none exists yet.
func Load() (*Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads settings from an explicit path, for the --config flag and
// tests.
func LoadFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{Version: settingsVersion, LastUpdated: time.Now()}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	s.pruneStaleInstalls()
	return &s, nil
}

// Save writes the settings to the default location.
func (s *Settings) Save() error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	return s.SaveTo(path)
}

// SaveTo writes the settings to an explicit path atomically.
func (s *Settings) SaveTo(path string) error {
	s.Version = settingsVersion
	s.LastUpdated = time.Now()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}

// AddInstallation records an installation, replacing any existing entry for
// the same root and branch.
func (s *Settings) AddInstallation(inst game.Installation) {
	for i, existing := range s.Installations {
		if existing.Root == inst.Root && existing.Branch == inst.Branch {
			s.Installations[i] = inst
			return
		}
	}
	s.Installations = append(s.Installations, inst)
}

// pruneStaleInstalls drops installations whose branch directory no longer
// exists, so the UI never offers a character list that can't be read.
func (s *Settings) pruneStaleInstalls() {
	kept := s.Installations[:0]
	for _, inst := range s.Installations {
		if info, err := os.Stat(inst.BranchDir()); err == nil && info.IsDir() {
			kept = append(kept, inst)
		}
	}
	s.Installations = kept
}
