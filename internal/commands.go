package internal

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wowsafe/internal/backup"
	"wowsafe/internal/game"
	"wowsafe/internal/state"
	"wowsafe/internal/task"
)

// taskResult collects the outcome of a background task. The worker goroutine
// writes it before the terminal progress message is sent; the UI reads it
// only after the task reports finished, so no locking is needed.
type taskResult struct {
	archivePath string
	files       int
	mismatches  []backup.Mismatch
}

// pollTask schedules the next poll of the active task.
func pollTask() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return state.TaskTickMsg{Time: t}
	})
}

// spinnerTick schedules the next frame of the indeterminate spinner.
func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return state.SpinnerTickMsg{}
	})
}

// loadCharactersCmd scans the installation for characters in the background.
func loadCharactersCmd(inst game.Installation) tea.Cmd {
	return func() tea.Msg {
		chars, err := game.DiscoverCharacters(inst)
		return state.CharactersLoadedMsg{Characters: chars, Err: err}
	}
}

// loadFilesCmd lists a character's settings files for the selection screen.
func loadFilesCmd(ci game.CharInstall) tea.Cmd {
	return func() tea.Msg {
		files, err := game.ListFiles(ci)
		return state.FilesLoadedMsg{Files: files, Err: err}
	}
}

// loadBackupsCmd reads and decodes the character's backup directory.
func loadBackupsCmd(ci game.CharInstall) tea.Cmd {
	return func() tea.Msg {
		backups, err := backup.List(ci)
		return state.BackupsLoadedMsg{Backups: backups, Err: err}
	}
}

// newBackupTask builds a task that archives the character's settings.
// A nil selected slice means a full backup; otherwise only the named files
// are archived. The destination path lands in res when the task finishes.
func newBackupTask(eng *backup.Engine, ci game.CharInstall, selected []string, paste bool, res *taskResult) *task.Task {
	name := fmt.Sprintf("Backing up %s", ci.Char.Name)
	return task.New(name, func(ctx context.Context, r *task.Reporter) error {
		ctx = backup.WithProgress(ctx, r)
		var (
			dest string
			err  error
		)
		if selected == nil {
			dest, err = eng.Backup(ctx, ci, paste)
		} else {
			dest, err = eng.BackupSelected(ctx, ci, selected, paste)
		}
		if err != nil {
			return err
		}
		res.archivePath = dest
		return nil
	})
}

// newRestoreTask builds a task that extracts an archive into the character's
// settings directory.
func newRestoreTask(eng *backup.Engine, ci game.CharInstall, archivePath string, res *taskResult) *task.Task {
	name := fmt.Sprintf("Restoring %s", ci.Char.Name)
	return task.New(name, func(ctx context.Context, r *task.Reporter) error {
		ctx = backup.WithProgress(ctx, r)
		n, err := eng.Restore(ctx, ci, archivePath)
		if err != nil {
			return err
		}
		res.files = n
		return nil
	})
}

// newPasteTask builds a task that copies settings files from one character
// to another. The engine snapshots the destination first. A nil selected
// slice copies everything the source character has.
func newPasteTask(eng *backup.Engine, dst, src game.CharInstall, selected []string, res *taskResult) *task.Task {
	name := fmt.Sprintf("Copying %s to %s", src.Char.Name, dst.Char.Name)
	return task.New(name, func(ctx context.Context, r *task.Reporter) error {
		ctx = backup.WithProgress(ctx, r)
		if selected == nil {
			entries, err := game.ListFiles(src)
			if err != nil {
				return err
			}
			for _, entry := range entries {
				selected = append(selected, entry.RelPath)
			}
		}
		n, err := eng.Paste(ctx, dst, src, selected)
		if err != nil {
			return err
		}
		res.files = n
		return nil
	})
}

// newVerifyTask builds a task that compares an archive against the files on
// disk. Mismatches land in res; the task itself only fails on read errors.
func newVerifyTask(eng *backup.Engine, ci game.CharInstall, archivePath string, res *taskResult) *task.Task {
	name := fmt.Sprintf("Verifying %s", ci.Char.Name)
	return task.New(name, func(ctx context.Context, r *task.Reporter) error {
		ctx = backup.WithProgress(ctx, r)
		mismatches, err := eng.Verify(ctx, ci, archivePath)
		if err != nil {
			return err
		}
		res.mismatches = mismatches
		return nil
	})
}

// deleteBackupCmd removes an archive from the character's backup directory.
func deleteBackupCmd(ci game.CharInstall, info backup.Info) tea.Cmd {
	return func() tea.Msg {
		if err := backup.Delete(ci, info.FileName); err != nil {
			return state.ActionDoneMsg{Err: err}
		}
		return state.ActionDoneMsg{Message: fmt.Sprintf("Deleted %s", info.FileName)}
	}
}

// togglePinCmd flips the pinned flag on an archive, renaming it in place.
func togglePinCmd(ci game.CharInstall, info backup.Info) tea.Cmd {
	return func() tea.Msg {
		newName, err := backup.SetPinned(ci, info, !info.IsPinned)
		if err != nil {
			return state.ActionDoneMsg{Err: err}
		}
		verb := "Pinned"
		if info.IsPinned {
			verb = "Unpinned"
		}
		return state.ActionDoneMsg{Message: fmt.Sprintf("%s %s", verb, newName)}
	}
}

// exportBackupCmd copies an archive into the user's home directory.
func exportBackupCmd(eng *backup.Engine, ci game.CharInstall, info backup.Info) tea.Cmd {
	return func() tea.Msg {
		home, err := os.UserHomeDir()
		if err != nil {
			return state.ActionDoneMsg{Err: err}
		}
		dest, err := eng.Export(ci, info.FileName, home)
		if err != nil {
			return state.ActionDoneMsg{Err: err}
		}
		return state.ActionDoneMsg{Message: fmt.Sprintf("Exported to %s", dest)}
	}
}
