package backup

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSkipsUndecodableNames(t *testing.T) {
	ci := newTestChar(t, "Bananas")
	dir := ci.BackupsDir()
	writeFile(t, filepath.Join(dir, "Bananas_20260101-120000.zip"), "a")
	writeFile(t, filepath.Join(dir, "Bananas_20260201-120000_PINNED.zip"), "b")
	writeFile(t, filepath.Join(dir, "notes.txt"), "stray file")
	writeFile(t, filepath.Join(dir, "Bananas_badstamp.zip"), "c")

	infos, err := List(ci)

	require.NoError(t, err)
	require.Len(t, infos, 2)
	// Newest first
	assert.Equal(t, "Bananas_20260201-120000_PINNED.zip", infos[0].FileName)
	assert.True(t, infos[0].IsPinned)
	assert.Equal(t, "Bananas_20260101-120000.zip", infos[1].FileName)
}

func TestListMissingDirIsEmpty(t *testing.T) {
	ci := newTestChar(t, "Bananas")

	infos, err := List(ci)

	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestDeleteRemovesArchive(t *testing.T) {
	ci := newTestChar(t, "Bananas")
	name := "Bananas_20260101-120000.zip"
	path := filepath.Join(ci.BackupsDir(), name)
	writeFile(t, path, "a")

	require.NoError(t, Delete(ci, name))
	assert.NoFileExists(t, path)

	assert.Error(t, Delete(ci, name))
}

func TestSetPinnedRenamesInPlace(t *testing.T) {
	ci := newTestChar(t, "Bananas")
	dir := ci.BackupsDir()
	writeFile(t, filepath.Join(dir, "Bananas_20260101-120000.zip"), "a")

	infos, err := List(ci)
	require.NoError(t, err)
	require.Len(t, infos, 1)

	newName, err := SetPinned(ci, infos[0], true)
	require.NoError(t, err)
	assert.Equal(t, "Bananas_20260101-120000_PINNED.zip", newName)
	assert.FileExists(t, filepath.Join(dir, newName))
	assert.NoFileExists(t, filepath.Join(dir, infos[0].FileName))

	// No-op when the state already matches
	infos, err = List(ci)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	same, err := SetPinned(ci, infos[0], true)
	require.NoError(t, err)
	assert.Equal(t, newName, same)
}
