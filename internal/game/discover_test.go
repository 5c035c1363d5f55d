package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, parts ...string) string {
	t.Helper()
	p := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(p, 0o755))
	return p
}

func touch(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscoverCharacters(t *testing.T) {
	inst := Installation{Root: t.TempDir(), Branch: "_retail_"}
	acct := filepath.Join(inst.AccountDir(), "MYACCOUNT")

	mkdirs(t, acct, "Proudmoore", "Bananas")
	mkdirs(t, acct, "Proudmoore", "Apples")
	mkdirs(t, acct, "Stormrage", "Cherries")
	// Account-level clutter that must not be mistaken for realms.
	mkdirs(t, acct, "SavedVariables")
	touch(t, filepath.Join(acct, "cache.md5"), "abc")
	// Realm-level files are not characters.
	touch(t, filepath.Join(acct, "Proudmoore", "notes.txt"), "hi")
	// Hidden account directories are skipped.
	mkdirs(t, inst.AccountDir(), ".stale", "Proudmoore", "Ghost")

	chars, err := DiscoverCharacters(inst)
	require.NoError(t, err)
	require.Len(t, chars, 3)

	// Sorted by realm then name.
	assert.Equal(t, "Apples", chars[0].Name)
	assert.Equal(t, "Bananas", chars[1].Name)
	assert.Equal(t, "Cherries", chars[2].Name)
	assert.Equal(t, "Proudmoore", chars[0].Realm)
	assert.Equal(t, "MYACCOUNT", chars[0].Account)
	assert.Equal(t, "_retail_", chars[0].Branch)
}

func TestDiscoverCharactersMissingTree(t *testing.T) {
	inst := Installation{Root: t.TempDir(), Branch: "_classic_"}
	chars, err := DiscoverCharacters(inst)
	assert.NoError(t, err)
	assert.Empty(t, chars)
}

func TestListFiles(t *testing.T) {
	inst := Installation{Root: t.TempDir(), Branch: "_retail_"}
	ci := CharInstall{
		Char:    Character{Account: "ACCT", Branch: "_retail_", Realm: "Proudmoore", Name: "Bananas"},
		Install: inst,
	}
	root := ci.DataDir()
	touch(t, filepath.Join(root, "config-cache.wtf"), "SET uiScale 0.8")
	touch(t, filepath.Join(root, "SavedVariables", "Layout.lua"), "layout = {}")
	// The top-level backups directory is excluded, but a nested one is
	// ordinary data.
	touch(t, filepath.Join(root, BackupsDirName, "old.zip"), "zipzip")
	touch(t, filepath.Join(root, "SavedVariables", BackupsDirName, "keep.lua"), "x")

	entries, err := ListFiles(ci)
	require.NoError(t, err)

	var rels []string
	for _, e := range entries {
		rels = append(rels, e.RelPath)
	}
	assert.Equal(t, []string{
		"SavedVariables/Layout.lua",
		"SavedVariables/backups/keep.lua",
		"config-cache.wtf",
	}, rels)
	assert.Equal(t, int64(len("SET uiScale 0.8")), entries[2].Size)
}

func TestListFilesMissingRoot(t *testing.T) {
	inst := Installation{Root: t.TempDir(), Branch: "_retail_"}
	ci := CharInstall{
		Char:    Character{Account: "A", Realm: "R", Name: "Nobody"},
		Install: inst,
	}
	_, err := ListFiles(ci)
	assert.Error(t, err)
}

func TestClassFromID(t *testing.T) {
	assert.Equal(t, ClassWarrior, ClassFromID(1))
	assert.Equal(t, ClassEvoker, ClassFromID(13))
	assert.Equal(t, ClassUnknown, ClassFromID(0))
	assert.Equal(t, ClassUnknown, ClassFromID(99))
	assert.Equal(t, ClassUnknown, ClassFromID(-4))

	assert.Equal(t, "Death Knight", ClassDeathKnight.String())
	assert.Equal(t, "Unknown", Class(42).String())
}
