package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"wowsafe/internal/game"
)

// List reconstructs the character's backup records by reading its backups
// directory and decoding each filename. Entries that don't decode are
// skipped without complaint; stray files may legitimately live alongside
// real backups. Results are newest first.
func List(ci game.CharInstall) ([]Info, error) {
	dir := ci.BackupsDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backups directory %s: %w", dir, err)
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if info, ok := DecodeName(entry.Name()); ok {
			infos = append(infos, info)
		}
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Time.After(infos[j].Time) })
	return infos, nil
}

// Delete removes the backup archive with the given filename.
func Delete(ci game.CharInstall, fileName string) error {
	path := filepath.Join(ci.BackupsDir(), fileName)
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete backup %s: %w", fileName, err)
	}
	return nil
}

// SetPinned pins or unpins a backup by renaming its archive; the pin lives
// in the filename, so there is no separate metadata to update. Returns the
// new filename.
func SetPinned(ci game.CharInstall, info Info, pinned bool) (string, error) {
	if info.IsPinned == pinned {
		return info.FileName, nil
	}
	newName := EncodeName(info.Character, info.Time, info.IsPaste, pinned)
	dir := ci.BackupsDir()
	if err := os.Rename(filepath.Join(dir, info.FileName), filepath.Join(dir, newName)); err != nil {
		return "", fmt.Errorf("failed to rename backup %s: %w", info.FileName, err)
	}
	return newName, nil
}
