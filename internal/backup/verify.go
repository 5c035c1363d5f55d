package backup

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"wowsafe/internal/archive"
	"wowsafe/internal/game"
)

// Mismatch describes one archive entry that no longer matches the
// character's live file.
type Mismatch struct {
	Entry  string // archive entry path
	Reason string // human-readable difference
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s", m.Entry, m.Reason)
}

// Verify compares every file entry in the archive against the character's
// current files. Differences are collected, not fatal; the returned error
// covers only failures to read the archive itself.
func (e *Engine) Verify(ctx context.Context, ci game.CharInstall, archivePath string) ([]Mismatch, error) {
	r, err := archive.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := r.Close(); err != nil {
			e.log.Warn().Err(err).Str("path", archivePath).Msg("failed to close archive")
		}
	}()

	p := progressFrom(ctx)
	p.Start(r.Len())

	root := ci.DataDir()
	var mismatches []Mismatch
	for i, f := range r.Entries() {
		if err := ctx.Err(); err != nil {
			return mismatches, fmt.Errorf("verification canceled: %w", err)
		}
		p.Advance(i+1, r.Len())

		if f.FileInfo().IsDir() {
			continue
		}
		target := filepath.Join(root, filepath.FromSlash(f.Name))
		if !archive.IsWithin(root, target) {
			mismatches = append(mismatches, Mismatch{Entry: f.Name, Reason: "entry path escapes character directory"})
			continue
		}

		info, err := os.Stat(target)
		if err != nil {
			mismatches = append(mismatches, Mismatch{Entry: f.Name, Reason: "file missing"})
			continue
		}
		if uint64(info.Size()) != f.UncompressedSize64 {
			mismatches = append(mismatches, Mismatch{
				Entry:  f.Name,
				Reason: fmt.Sprintf("size differs (archive %d, disk %d)", f.UncompressedSize64, info.Size()),
			})
			continue
		}

		archiveSum, err := entrySHA256(f)
		if err != nil {
			mismatches = append(mismatches, Mismatch{Entry: f.Name, Reason: fmt.Sprintf("unreadable archive entry: %v", err)})
			continue
		}
		diskSum, err := fileSHA256(target)
		if err != nil {
			mismatches = append(mismatches, Mismatch{Entry: f.Name, Reason: fmt.Sprintf("unreadable file: %v", err)})
			continue
		}
		if archiveSum != diskSum {
			mismatches = append(mismatches, Mismatch{Entry: f.Name, Reason: "content differs"})
		}
	}

	e.log.Info().Str("archive", archivePath).Int("mismatches", len(mismatches)).Msg("verification complete")
	return mismatches, nil
}

func entrySHA256(f interface {
	Open() (io.ReadCloser, error)
}) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return hashReader(rc)
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return hashReader(f)
}

func hashReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
