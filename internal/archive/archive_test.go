package archive

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0644))

	path := filepath.Join(dir, "out.zip")
	w, err := NewWriter(path, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, w.IsMock())
	assert.Equal(t, path, w.Path())

	require.NoError(t, w.AddDir("sub"))
	require.NoError(t, w.AddFile("sub/a.txt", src))
	require.NoError(t, w.AddFile("b.txt", src))
	require.NoError(t, w.Close())
	// Idempotent: the deferred safety-net close is a no-op
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, 3, r.Len())
	assert.False(t, r.IsEmpty())
	assert.Equal(t, []string{"sub/", "sub/a.txt", "b.txt"}, r.Names())
	assert.Equal(t, []string{"b.txt", "sub"}, r.TopLevel())

	f, err := r.EntryByName("sub/a.txt")
	require.NoError(t, err)
	rc, err := f.Open()
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "hello", string(data))

	under := r.Under("sub")
	require.Len(t, under, 2)

	_, err = r.EntryByName("missing.txt")
	assert.Error(t, err)
	_, err = r.Entry(99)
	assert.Error(t, err)
}

func TestRoundTripContentSizes(t *testing.T) {
	contents := map[string][]byte{
		"empty.txt":      {},
		"one.txt":        []byte("x"),
		"big.dat":        bytes.Repeat([]byte("0123456789abcdef"), 1024),
		"sub/nested.lua": []byte("layout = {}"),
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.zip")
	w, err := NewWriter(path, zerolog.Nop())
	require.NoError(t, err)
	for name, data := range contents {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()
	require.Equal(t, len(contents), r.Len())

	for name, want := range contents {
		f, err := r.EntryByName(name)
		require.NoError(t, err)
		rc, err := f.Open()
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, want, got, name)
	}
}

func TestMockWriterWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.zip")

	w := NewMockWriter(path, zerolog.Nop())
	assert.True(t, w.IsMock())

	require.NoError(t, w.AddDir("sub"))
	entry, err := w.Create("sub/a.txt")
	require.NoError(t, err)
	_, err = entry.Write([]byte("discarded"))
	require.NoError(t, err)

	// AddFile in mock mode must not even open the source
	require.NoError(t, w.AddFile("b.txt", filepath.Join(dir, "does-not-exist.txt")))
	require.NoError(t, w.Close())

	assert.NoFileExists(t, path)
}

func TestAddDirMirror(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested", "leaf")
	require.NoError(t, os.MkdirAll(sub, 0755))

	path := filepath.Join(dir, "out.zip")
	w, err := NewWriter(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, w.AddDirMirror(dir, sub))
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, []string{"nested/leaf/"}, r.Names())
}

func TestIsWithin(t *testing.T) {
	assert.True(t, IsWithin("a/b", "a/b/c.txt"))
	assert.True(t, IsWithin("a/b", "a/b"))
	assert.True(t, IsWithin("", "anything"))
	assert.True(t, IsWithin("a", "a/./b"))
	assert.True(t, IsWithin("a\\b", "a/b/c"))

	// Partial-segment matches are rejected
	assert.False(t, IsWithin("a/b", "a/bc/d.txt"))
	assert.False(t, IsWithin("a/b", "a"))
	assert.False(t, IsWithin("a/b", "a/c/b"))
	assert.False(t, IsWithin("/data/char", "/data/char2/f"))
}
