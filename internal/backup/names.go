// Package backup implements the backup/restore engine: filename codec,
// directory walking, archive creation and extraction, paste between
// characters, listing, verification, and the destination space preflight.
package backup

import (
	"path/filepath"
	"strings"
	"time"
)

// Archive filename grammar:
//
//	{character}_{YYYYMMDD-HHMMSS}[_RESTORE][_PINNED].zip
//
// The name carries all backup metadata; there is no sidecar manifest to
// fall out of sync with the file. The flip side is that a character name
// containing '_' decodes wrong, because the stem is split on '_'. That
// behavior is kept as is; Engine logs a warning when it creates a backup
// for such a name.
const (
	// ArchiveExt is the extension of every backup archive.
	ArchiveExt = ".zip"

	// TimestampLayout is the fixed-width local-time format inside names.
	TimestampLayout = "20060102-150405"

	// suffixPaste marks a backup created automatically before a paste.
	suffixPaste = "RESTORE"

	// suffixPinned marks a backup exempt from automatic pruning.
	suffixPinned = "PINNED"
)

// Info is a backup record reconstructed from an archive filename.
type Info struct {
	Character string
	Time      time.Time
	IsPaste   bool
	IsPinned  bool
	FileName  string // the filename the record was decoded from
}

// EncodeName builds the archive filename for a backup of the given
// character taken at t.
func EncodeName(character string, t time.Time, paste, pinned bool) string {
	var b strings.Builder
	b.WriteString(character)
	b.WriteByte('_')
	b.WriteString(t.Format(TimestampLayout))
	if paste {
		b.WriteByte('_')
		b.WriteString(suffixPaste)
	}
	if pinned {
		b.WriteByte('_')
		b.WriteString(suffixPinned)
	}
	b.WriteString(ArchiveExt)
	return b.String()
}

// DecodeName parses an archive filename back into a backup record. The
// second return is false when the name is not a recognized backup name:
// fewer than two underscore-separated segments, or a second segment that is
// not a valid timestamp. Unknown suffix segments are ignored so newer
// versions can add markers without breaking older readers.
func DecodeName(fileName string) (Info, bool) {
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	parts := strings.Split(stem, "_")
	if len(parts) < 2 {
		return Info{}, false
	}

	t, err := time.ParseInLocation(TimestampLayout, parts[1], time.Local)
	if err != nil {
		return Info{}, false
	}

	info := Info{Character: parts[0], Time: t, FileName: fileName}
	for _, seg := range parts[2:] {
		switch seg {
		case suffixPaste:
			info.IsPaste = true
		case suffixPinned:
			info.IsPinned = true
		}
	}
	return info, true
}
