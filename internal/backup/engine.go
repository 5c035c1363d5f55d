package backup

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"wowsafe/internal/archive"
	"wowsafe/internal/game"
)

// Progress receives count updates during long-running engine operations.
// task.Reporter satisfies it.
type Progress interface {
	Start(total int)
	Advance(completed, total int)
}

type noProgress struct{}

func (noProgress) Start(int)        {}
func (noProgress) Advance(int, int) {}

type progressKey struct{}

// WithProgress attaches a progress receiver to the context handed to engine
// operations. The UI's task closures use this to stream counts back to the
// progress popup without the engine knowing about tasks.
func WithProgress(ctx context.Context, p Progress) context.Context {
	return context.WithValue(ctx, progressKey{}, p)
}

func progressFrom(ctx context.Context) Progress {
	if p, ok := ctx.Value(progressKey{}).(Progress); ok && p != nil {
		return p
	}
	return noProgress{}
}

// Engine performs backup, restore, and paste operations for characters. In
// mock mode every mutating filesystem and archive operation becomes a
// logging-only no-op.
type Engine struct {
	log  zerolog.Logger
	mock bool
}

// NewEngine creates an engine logging to log. When mock is true all
// mutations are suppressed and log lines carry a mock marker.
func NewEngine(log zerolog.Logger, mock bool) *Engine {
	if mock {
		log = log.With().Bool("mock", true).Logger()
	}
	return &Engine{log: log, mock: mock}
}

// Mock reports whether the engine is in mock mode.
func (e *Engine) Mock() bool {
	return e.mock
}

// Backup creates a full backup of the character's data directory and
// returns the path of the written archive. The paste flag tags the backup
// as an automatic pre-paste snapshot.
func (e *Engine) Backup(ctx context.Context, ci game.CharInstall, paste bool) (string, error) {
	files, err := Walk(ci.DataDir(), []string{game.BackupsDirName})
	if err != nil {
		return "", err
	}

	var total int64
	for _, f := range files {
		if info, err := os.Stat(f); err == nil {
			total += info.Size()
		}
	}
	if !e.mock {
		if err := CheckSpace(ci.DataDir(), uint64(total)); err != nil {
			return "", err
		}
	}

	return e.writeArchive(ctx, ci, files, paste, progressFrom(ctx))
}

// BackupSelected creates a backup containing only the given
// character-relative paths. The full tree is still walked and filtered so
// full and selective backups share one code path; selections are small
// relative to tree size, so the extra enumeration does not matter.
func (e *Engine) BackupSelected(ctx context.Context, ci game.CharInstall, selected []string, paste bool) (string, error) {
	files, err := Walk(ci.DataDir(), []string{game.BackupsDirName})
	if err != nil {
		return "", err
	}

	want := make(map[string]bool, len(selected))
	for _, rel := range selected {
		want[filepath.Join(ci.DataDir(), filepath.FromSlash(rel))] = true
	}
	var picked []string
	for _, f := range files {
		if want[f] {
			picked = append(picked, f)
		}
	}

	return e.writeArchive(ctx, ci, picked, paste, progressFrom(ctx))
}

// writeArchive ensures the backups directory exists, derives the archive
// name, and writes every listed file under its character-relative path.
func (e *Engine) writeArchive(ctx context.Context, ci game.CharInstall, files []string, paste bool, p Progress) (string, error) {
	if strings.Contains(ci.Char.Name, "_") {
		// Underscores collide with the filename field separator; the backup
		// still works but its name will decode with the wrong character.
		e.log.Warn().Str("character", ci.Char.Name).Msg("character name contains '_'; backup name will not round-trip")
	}

	backupsDir := ci.BackupsDir()
	if e.mock {
		e.log.Info().Str("dir", backupsDir).Msg("ensuring backups directory")
	} else if err := os.MkdirAll(backupsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backups directory %s: %w", backupsDir, err)
	}

	name := EncodeName(ci.Char.Name, time.Now(), paste, false)
	dest := filepath.Join(backupsDir, name)

	var w *archive.Writer
	if e.mock {
		w = archive.NewMockWriter(dest, e.log)
	} else {
		var err error
		w, err = archive.NewWriter(dest, e.log)
		if err != nil {
			return "", err
		}
	}
	defer w.CloseQuietly()

	p.Start(len(files))
	root := ci.DataDir()
	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("backup canceled: %w", err)
		}
		rel, err := filepath.Rel(root, f)
		if err != nil {
			return "", fmt.Errorf("failed to relativize %s: %w", f, err)
		}
		if err := w.AddFile(filepath.ToSlash(rel), f); err != nil {
			return "", err
		}
		e.log.Info().Str("file", filepath.ToSlash(rel)).Str("archive", name).Msg("backed up file")
		p.Advance(i+1, len(files))
	}

	if err := w.Close(); err != nil {
		return "", err
	}
	e.log.Info().Str("archive", dest).Int("files", len(files)).Msg("backup complete")
	return dest, nil
}

// Restore extracts the archive into the character's data directory and
// returns how many files were actually written. Entries that would resolve
// outside the destination root are skipped silently so a malformed archive
// cannot write elsewhere, and an unreadable entry skips rather than
// aborting the rest of a legitimate archive.
func (e *Engine) Restore(ctx context.Context, ci game.CharInstall, archivePath string) (int, error) {
	r, err := archive.OpenReader(archivePath)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := r.Close(); err != nil {
			e.log.Warn().Err(err).Str("path", archivePath).Msg("failed to close archive")
		}
	}()

	root := ci.DataDir()
	if e.mock {
		e.log.Info().Str("dir", root).Msg("ensuring destination directory")
	} else if err := os.MkdirAll(root, 0755); err != nil {
		return 0, fmt.Errorf("failed to create destination %s: %w", root, err)
	}

	p := progressFrom(ctx)
	p.Start(r.Len())

	restored := 0
	for i, f := range r.Entries() {
		if err := ctx.Err(); err != nil {
			return restored, fmt.Errorf("restore canceled: %w", err)
		}
		p.Advance(i+1, r.Len())

		target := filepath.Join(root, filepath.FromSlash(f.Name))
		if !archive.IsWithin(root, target) {
			e.log.Warn().Str("entry", f.Name).Msg("skipping entry outside destination root")
			continue
		}

		if f.FileInfo().IsDir() {
			if e.mock {
				e.log.Info().Str("dir", target).Msg("creating directory")
			} else if err := os.MkdirAll(target, 0755); err != nil {
				return restored, fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			continue
		}

		if e.mock {
			e.log.Info().Str("entry", f.Name).Msg("restoring file")
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return restored, fmt.Errorf("failed to create directory %s: %w", filepath.Dir(target), err)
		}
		if err := extractEntry(f, target); err != nil {
			e.log.Warn().Err(err).Str("entry", f.Name).Msg("skipping unreadable entry")
			continue
		}
		e.log.Info().Str("entry", f.Name).Msg("restored file")
		restored++
	}

	e.log.Info().Str("archive", archivePath).Int("files", restored).Msg("restore complete")
	return restored, nil
}

// Paste copies the selected character-relative files from src's data
// directory into dst's, taking a paste-tagged safety backup of dst's
// current versions first. Returns how many files were copied (0 in mock
// mode).
func (e *Engine) Paste(ctx context.Context, dst, src game.CharInstall, selected []string) (int, error) {
	if e.mock {
		e.log.Info().Str("from", src.Char.Name).Str("to", dst.Char.Name).Msg("skipping pre-paste backup")
	} else {
		if _, err := e.BackupSelected(ctx, dst, selected, true); err != nil {
			return 0, fmt.Errorf("pre-paste backup failed: %w", err)
		}
	}

	p := progressFrom(ctx)
	p.Start(len(selected))

	copied := 0
	for i, rel := range selected {
		if err := ctx.Err(); err != nil {
			return copied, fmt.Errorf("paste canceled: %w", err)
		}
		p.Advance(i+1, len(selected))

		from := filepath.Join(src.DataDir(), filepath.FromSlash(rel))
		to := filepath.Join(dst.DataDir(), filepath.FromSlash(rel))
		if e.mock {
			e.log.Info().Str("file", rel).Str("to", dst.Char.Name).Msg("copying file")
			continue
		}
		if err := os.MkdirAll(filepath.Dir(to), 0755); err != nil {
			return copied, fmt.Errorf("failed to create directory %s: %w", filepath.Dir(to), err)
		}
		if err := copyFile(from, to); err != nil {
			return copied, err
		}
		e.log.Info().Str("file", rel).Str("from", src.Char.Name).Str("to", dst.Char.Name).Msg("copied file")
		copied++
	}

	return copied, nil
}

// Export copies the named backup archive out of the character's backups
// directory into destDir and returns the written path.
func (e *Engine) Export(ci game.CharInstall, fileName, destDir string) (string, error) {
	src := filepath.Join(ci.BackupsDir(), fileName)
	dest := filepath.Join(destDir, fileName)
	if e.mock {
		e.log.Info().Str("from", src).Str("to", dest).Msg("exporting backup")
		return dest, nil
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory %s: %w", destDir, err)
	}
	if err := copyFile(src, dest); err != nil {
		return "", err
	}
	e.log.Info().Str("archive", dest).Msg("exported backup")
	return dest, nil
}

// Import brings an external archive into the character's backups
// directory. Archives whose names don't decode get a fresh name for this
// character so the listing can always parse them.
func (e *Engine) Import(ci game.CharInstall, srcPath string) (string, error) {
	name := filepath.Base(srcPath)
	if _, ok := DecodeName(name); !ok {
		name = EncodeName(ci.Char.Name, time.Now(), false, false)
		e.log.Info().Str("from", filepath.Base(srcPath)).Str("to", name).Msg("renaming unrecognized archive on import")
	}

	dest := filepath.Join(ci.BackupsDir(), name)
	if e.mock {
		e.log.Info().Str("from", srcPath).Str("to", dest).Msg("importing backup")
		return dest, nil
	}
	if err := os.MkdirAll(ci.BackupsDir(), 0755); err != nil {
		return "", fmt.Errorf("failed to create backups directory: %w", err)
	}
	if err := copyFile(srcPath, dest); err != nil {
		return "", err
	}
	e.log.Info().Str("archive", dest).Msg("imported backup")
	return dest, nil
}

func extractEntry(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open entry: %w", err)
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy to %s: %w", dst, err)
	}
	return out.Close()
}
