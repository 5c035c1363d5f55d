package backup

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wowsafe/internal/game"
)

// newTestChar builds a character directory tree under a temp root with a
// few settings files in it.
func newTestChar(t *testing.T, name string) game.CharInstall {
	t.Helper()
	ci := game.CharInstall{
		Char: game.Character{
			Account: "TESTACCT",
			Branch:  "_retail_",
			Realm:   "Proudmoore",
			Name:    name,
		},
		Install: game.Installation{Root: t.TempDir(), Branch: "_retail_"},
	}
	writeFile(t, filepath.Join(ci.DataDir(), "config-cache.wtf"), "SET uiScale 0.8")
	writeFile(t, filepath.Join(ci.DataDir(), "macros-cache.txt"), "MACRO 1")
	writeFile(t, filepath.Join(ci.DataDir(), "SavedVariables", "Layout.lua"), "layout = {}")
	return ci
}

func newTestEngine(mock bool) *Engine {
	return NewEngine(zerolog.Nop(), mock)
}

func TestBackupAndRestoreRoundTrip(t *testing.T) {
	eng := newTestEngine(false)
	ci := newTestChar(t, "Bananas")

	dest, err := eng.Backup(context.Background(), ci, false)
	require.NoError(t, err)
	assert.FileExists(t, dest)

	info, ok := DecodeName(filepath.Base(dest))
	require.True(t, ok)
	assert.Equal(t, "Bananas", info.Character)
	assert.False(t, info.IsPaste)

	// Clobber a file, then restore it from the archive
	writeFile(t, filepath.Join(ci.DataDir(), "config-cache.wtf"), "SET uiScale 9.9")

	n, err := eng.Restore(context.Background(), ci, dest)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	data, err := os.ReadFile(filepath.Join(ci.DataDir(), "config-cache.wtf"))
	require.NoError(t, err)
	assert.Equal(t, "SET uiScale 0.8", string(data))
}

func TestBackupRestoresIntoFreshDirectory(t *testing.T) {
	eng := newTestEngine(false)

	src := game.CharInstall{
		Char: game.Character{
			Account: "TESTACCT",
			Branch:  "_retail_",
			Realm:   "Proudmoore",
			Name:    "Bananas",
		},
		Install: game.Installation{Root: t.TempDir(), Branch: "_retail_"},
	}
	writeFile(t, filepath.Join(src.DataDir(), "a.lua"), "0123456789")
	writeFile(t, filepath.Join(src.DataDir(), "sub", "b.txt"), "")

	dest, err := eng.Backup(context.Background(), src, false)
	require.NoError(t, err)

	// Same character identity on a different, empty installation
	fresh := src
	fresh.Install = game.Installation{Root: t.TempDir(), Branch: "_retail_"}

	n, err := eng.Restore(context.Background(), fresh, dest)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(filepath.Join(fresh.DataDir(), "a.lua"))
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(data))

	data, err = os.ReadFile(filepath.Join(fresh.DataDir(), "sub", "b.txt"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestBackupExcludesBackupsDir(t *testing.T) {
	eng := newTestEngine(false)
	ci := newTestChar(t, "Bananas")

	// A previous backup must not end up inside the next one
	writeFile(t, filepath.Join(ci.BackupsDir(), "old_20250101-000000.zip"), "zipzip")

	dest, err := eng.Backup(context.Background(), ci, false)
	require.NoError(t, err)

	zr, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer zr.Close()
	for _, f := range zr.File {
		assert.NotContains(t, f.Name, "backups/")
	}
	assert.Len(t, zr.File, 3)
}

func TestBackupSelected(t *testing.T) {
	eng := newTestEngine(false)
	ci := newTestChar(t, "Bananas")

	dest, err := eng.BackupSelected(context.Background(), ci, []string{"config-cache.wtf"}, false)
	require.NoError(t, err)

	zr, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer zr.Close()
	require.Len(t, zr.File, 1)
	assert.Equal(t, "config-cache.wtf", zr.File[0].Name)
}

func TestBackupCanceled(t *testing.T) {
	eng := newTestEngine(false)
	ci := newTestChar(t, "Bananas")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.Backup(ctx, ci, false)
	assert.ErrorContains(t, err, "canceled")
}

func TestMockBackupWritesNothing(t *testing.T) {
	eng := newTestEngine(true)
	ci := newTestChar(t, "Bananas")

	dest, err := eng.Backup(context.Background(), ci, false)
	require.NoError(t, err)
	assert.NotEmpty(t, dest)
	assert.NoFileExists(t, dest)
	assert.NoDirExists(t, ci.BackupsDir())
}

func TestRestoreSkipsEntriesOutsideRoot(t *testing.T) {
	eng := newTestEngine(false)
	ci := newTestChar(t, "Bananas")

	// Hand-craft an archive with a traversal entry alongside a good one
	evil := filepath.Join(t.TempDir(), "evil.zip")
	f, err := os.Create(evil)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("../escaped.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("nope"))
	require.NoError(t, err)
	w, err = zw.Create("good.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("fine"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	n, err := eng.Restore(context.Background(), ci, evil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.FileExists(t, filepath.Join(ci.DataDir(), "good.txt"))
	assert.NoFileExists(t, filepath.Join(ci.DataDir(), "..", "escaped.txt"))
}

func TestPasteCopiesAndSnapshotsDestination(t *testing.T) {
	eng := newTestEngine(false)
	src := newTestChar(t, "Bananas")
	dst := newTestChar(t, "Oranges")
	writeFile(t, filepath.Join(src.DataDir(), "config-cache.wtf"), "SET uiScale 0.5")

	n, err := eng.Paste(context.Background(), dst, src, []string{"config-cache.wtf"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	data, err := os.ReadFile(filepath.Join(dst.DataDir(), "config-cache.wtf"))
	require.NoError(t, err)
	assert.Equal(t, "SET uiScale 0.5", string(data))

	// The destination's previous version was snapshotted with the paste tag
	infos, err := List(dst)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.True(t, infos[0].IsPaste)
	assert.Equal(t, "Oranges", infos[0].Character)
}

func TestMockPasteTouchesNothing(t *testing.T) {
	eng := newTestEngine(true)
	src := newTestChar(t, "Bananas")
	dst := newTestChar(t, "Oranges")
	writeFile(t, filepath.Join(src.DataDir(), "config-cache.wtf"), "SET uiScale 0.5")

	n, err := eng.Paste(context.Background(), dst, src, []string{"config-cache.wtf"})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	data, err := os.ReadFile(filepath.Join(dst.DataDir(), "config-cache.wtf"))
	require.NoError(t, err)
	assert.Equal(t, "SET uiScale 0.8", string(data))
}

func TestExportAndImport(t *testing.T) {
	eng := newTestEngine(false)
	ci := newTestChar(t, "Bananas")

	dest, err := eng.Backup(context.Background(), ci, false)
	require.NoError(t, err)

	exportDir := t.TempDir()
	exported, err := eng.Export(ci, filepath.Base(dest), exportDir)
	require.NoError(t, err)
	assert.FileExists(t, exported)

	// Import into another character; the recognized name is kept as is
	other := newTestChar(t, "Oranges")
	imported, err := eng.Import(other, exported)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dest), filepath.Base(imported))
	assert.FileExists(t, imported)
}

func TestImportRenamesUnrecognizedArchives(t *testing.T) {
	eng := newTestEngine(false)
	ci := newTestChar(t, "Bananas")

	src := filepath.Join(t.TempDir(), "random-archive.zip")
	writeFile(t, src, "not really a zip but copied as is")

	imported, err := eng.Import(ci, src)
	require.NoError(t, err)

	info, ok := DecodeName(filepath.Base(imported))
	require.True(t, ok)
	assert.Equal(t, "Bananas", info.Character)
}

func TestProgressReachesReceiver(t *testing.T) {
	eng := newTestEngine(false)
	ci := newTestChar(t, "Bananas")

	rec := &recordingProgress{}
	ctx := WithProgress(context.Background(), rec)

	_, err := eng.Backup(ctx, ci, false)
	require.NoError(t, err)
	assert.Equal(t, 3, rec.total)
	assert.Equal(t, 3, rec.lastCompleted)
}

type recordingProgress struct {
	total         int
	lastCompleted int
}

func (r *recordingProgress) Start(total int) { r.total = total }
func (r *recordingProgress) Advance(completed, total int) {
	r.lastCompleted = completed
	r.total = total
}
