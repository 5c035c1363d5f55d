package state

import (
	"time"

	"wowsafe/internal/backup"
	"wowsafe/internal/game"
)

// TaskTickMsg drives polling of the active background task. It is sent
// periodically while the progress screen is visible.
type TaskTickMsg struct {
	Time time.Time
}

// SpinnerTickMsg advances the indeterminate progress animation.
type SpinnerTickMsg struct{}

// CharactersLoadedMsg carries the result of a character discovery scan.
type CharactersLoadedMsg struct {
	Characters []game.Character
	Err        error
}

// FilesLoadedMsg carries the file listing for the selective backup screen.
type FilesLoadedMsg struct {
	Files []game.FileEntry
	Err   error
}

// BackupsLoadedMsg carries the decoded backup listing for a character.
type BackupsLoadedMsg struct {
	Backups []backup.Info
	Err     error
}

// ActionDoneMsg reports the outcome of a quick operation (delete, pin,
// export) that runs to completion without a progress screen.
type ActionDoneMsg struct {
	Message string
	Err     error
}

// ErrorMsg represents an error message that may require dismissal
type ErrorMsg struct {
	Message               string
	RequiresManualDismiss bool
}

// CompletionMsg represents a successful operation completion
type CompletionMsg struct {
	Message string
}
