package game

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileEntry describes one file beneath a character's data directory, for
// display in the file selection list.
type FileEntry struct {
	RelPath string // slash-separated path relative to the character root
	Size    int64
}

// DiscoverCharacters enumerates every character directory beneath the
// installation's account tree. A missing account tree is not an error; it
// just means the branch has no characters yet.
func DiscoverCharacters(inst Installation) ([]Character, error) {
	accountDir := inst.AccountDir()
	accounts, err := os.ReadDir(accountDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read account directory %s: %w", accountDir, err)
	}

	var chars []Character
	for _, acct := range accounts {
		if !acct.IsDir() || strings.HasPrefix(acct.Name(), ".") {
			continue
		}
		realms, err := os.ReadDir(filepath.Join(accountDir, acct.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read account %s: %w", acct.Name(), err)
		}
		for _, realm := range realms {
			// Account-level files (SavedVariables, cache) sit next to the
			// realm directories; only directories are realms.
			if !realm.IsDir() || realm.Name() == "SavedVariables" {
				continue
			}
			names, err := os.ReadDir(filepath.Join(accountDir, acct.Name(), realm.Name()))
			if err != nil {
				return nil, fmt.Errorf("failed to read realm %s: %w", realm.Name(), err)
			}
			for _, name := range names {
				if !name.IsDir() {
					continue
				}
				chars = append(chars, Character{
					Account: acct.Name(),
					Branch:  inst.Branch,
					Name:    name.Name(),
					Realm:   realm.Name(),
				})
			}
		}
	}

	sort.Slice(chars, func(i, j int) bool {
		if chars[i].Realm != chars[j].Realm {
			return chars[i].Realm < chars[j].Realm
		}
		return chars[i].Name < chars[j].Name
	})
	return chars, nil
}

// ListFiles enumerates the files beneath the character's data directory,
// excluding the backups subdirectory, with sizes for the selection list.
// Paths are slash-separated and relative to the character root.
func ListFiles(ci CharInstall) ([]FileEntry, error) {
	root := ci.DataDir()
	var entries []FileEntry

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Only the top-level backups directory is special; a user file
			// tree may legitimately contain a nested "backups" folder.
			if rel == BackupsDirName {
				return filepath.SkipDir
			}
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		entries = append(entries, FileEntry{
			RelPath: filepath.ToSlash(rel),
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files for %s: %w", ci.Char.Name, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].RelPath < entries[j].RelPath })
	return entries, nil
}
