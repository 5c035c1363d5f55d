package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Walk enumerates every regular file beneath root, skipping any subtree
// whose path relative to root exactly matches one of the excluded paths.
// Exclusions are matched as whole relative paths, not by base name, so
// excluding "backups" does not skip "sub/backups".
//
// Any error, including an unreadable directory, aborts the walk with no
// partial result: a backup that silently misses files is worse than one
// that fails loudly. Output is sorted so archives come out deterministic.
func Walk(root string, exclude []string) ([]string, error) {
	excluded := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		excluded[filepath.Clean(e)] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if rel != "." && excluded[rel] {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
