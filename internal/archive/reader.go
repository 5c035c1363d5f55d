package archive

import (
	"archive/zip"
	"fmt"
	"sort"
	"strings"
)

// Reader opens an existing zip archive for inspection and extraction. Like
// Writer it is owned by a single operation; it is not safe for concurrent
// use.
type Reader struct {
	path string
	rc   *zip.ReadCloser
}

// OpenReader opens the archive at path.
func OpenReader(path string) (*Reader, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}
	return &Reader{path: path, rc: rc}, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.rc.Close()
}

// Len returns the number of entries in the archive.
func (r *Reader) Len() int {
	return len(r.rc.File)
}

// IsEmpty reports whether the archive has no entries.
func (r *Reader) IsEmpty() bool {
	return r.Len() == 0
}

// Entry returns the entry at the given index.
func (r *Reader) Entry(i int) (*zip.File, error) {
	if i < 0 || i >= len(r.rc.File) {
		return nil, fmt.Errorf("archive %s has no entry %d", r.path, i)
	}
	return r.rc.File[i], nil
}

// EntryByName returns the entry with exactly the given name.
func (r *Reader) EntryByName(name string) (*zip.File, error) {
	for _, f := range r.rc.File {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("archive %s has no entry %q", r.path, name)
}

// Entries returns every entry in archive order.
func (r *Reader) Entries() []*zip.File {
	return r.rc.File
}

// Names returns the names of every entry in archive order.
func (r *Reader) Names() []string {
	names := make([]string, len(r.rc.File))
	for i, f := range r.rc.File {
		names[i] = f.Name
	}
	return names
}

// TopLevel returns the distinct first path components of all entries,
// sorted.
func (r *Reader) TopLevel() []string {
	seen := map[string]bool{}
	for _, f := range r.rc.File {
		name := strings.Trim(f.Name, "/")
		if name == "" {
			continue
		}
		if i := strings.IndexByte(name, '/'); i >= 0 {
			name = name[:i]
		}
		seen[name] = true
	}
	tops := make([]string, 0, len(seen))
	for name := range seen {
		tops = append(tops, name)
	}
	sort.Strings(tops)
	return tops
}

// Under returns the entries whose path lies within the given logical
// directory. Containment is component-wise, so "foo" does not match
// "foobar/x".
func (r *Reader) Under(dir string) []*zip.File {
	var out []*zip.File
	for _, f := range r.rc.File {
		if IsWithin(dir, f.Name) {
			out = append(out, f)
		}
	}
	return out
}

// IsWithin reports whether child lies inside parent, comparing path
// component by component. The parent must have no more components than the
// child and every parent component must equal the corresponding child
// component. Partial-segment matches are rejected.
func IsWithin(parent, child string) bool {
	pc := splitComponents(parent)
	cc := splitComponents(child)
	if len(pc) > len(cc) {
		return false
	}
	for i, p := range pc {
		if cc[i] != p {
			return false
		}
	}
	return true
}

func splitComponents(p string) []string {
	var out []string
	for _, c := range strings.Split(strings.ReplaceAll(p, "\\", "/"), "/") {
		if c != "" && c != "." {
			out = append(out, c)
		}
	}
	return out
}
