package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wowsafe/internal/game"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	assert.Equal(t, settingsVersion, s.Version)
	assert.Empty(t, s.Installations)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	branchDir := filepath.Join(dir, "wow", "_retail_")
	require.NoError(t, os.MkdirAll(branchDir, 0o755))

	s := &Settings{LogLevel: "debug", LastBranch: "_retail_", LastAccount: "MYACCOUNT"}
	s.AddInstallation(game.Installation{Root: filepath.Join(dir, "wow"), Branch: "_retail_"})
	require.NoError(t, s.SaveTo(path))

	// No temp file left behind.
	assert.NoFileExists(t, path+".tmp")

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, settingsVersion, loaded.Version)
	assert.Equal(t, "debug", loaded.LogLevel)
	assert.Equal(t, "_retail_", loaded.LastBranch)
	assert.Equal(t, "MYACCOUNT", loaded.LastAccount)
	require.Len(t, loaded.Installations, 1)
	assert.Equal(t, "_retail_", loaded.Installations[0].Branch)
	assert.False(t, loaded.LastUpdated.IsZero())
}

func TestLoadFromRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestAddInstallationReplacesSameRootAndBranch(t *testing.T) {
	s := &Settings{}
	s.AddInstallation(game.Installation{Root: "/games/wow", Branch: "_retail_"})
	s.AddInstallation(game.Installation{Root: "/games/wow", Branch: "_classic_"})
	s.AddInstallation(game.Installation{Root: "/games/wow", Branch: "_retail_"})
	assert.Len(t, s.Installations, 2)
}

func TestLoadPrunesStaleInstallations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	liveRoot := filepath.Join(dir, "live")
	require.NoError(t, os.MkdirAll(filepath.Join(liveRoot, "_retail_"), 0o755))

	s := &Settings{}
	s.AddInstallation(game.Installation{Root: liveRoot, Branch: "_retail_"})
	s.AddInstallation(game.Installation{Root: filepath.Join(dir, "gone"), Branch: "_retail_"})
	require.NoError(t, s.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	require.Len(t, loaded.Installations, 1)
	assert.Equal(t, liveRoot, loaded.Installations[0].Root)
}
