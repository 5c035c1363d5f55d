// Package internal provides the core application model and state management for WoWSafe's TUI.
//
// This package implements the Bubble Tea model pattern for the interactive terminal user interface.
// The model handles:
//   - Application state management across different screens (main, character select, backups, etc.)
//   - Message handling for user input, system events, and background operations
//   - Screen transitions and navigation logic
//   - Progress tracking for long-running operations (backup, restore, paste, verification)
//   - File selection for selective backups
//
// The main Model struct contains all UI state and implements the tea.Model interface
// for integration with the Bubble Tea framework.
package internal

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"wowsafe/internal/backup"
	"wowsafe/internal/config"
	"wowsafe/internal/game"
	"wowsafe/internal/handlers"
	"wowsafe/internal/logging"
	"wowsafe/internal/screens"
	"wowsafe/internal/state"
	"wowsafe/internal/task"
)

// ModelConfig carries the application services the model depends on.
type ModelConfig struct {
	Settings *config.Settings
	Engine   *backup.Engine
	Log      zerolog.Logger
	Ring     *logging.Ring
}

// Model represents the complete application state for the WoWSafe TUI.
// It implements the tea.Model interface and contains all data needed to
// render screens and handle user interactions.
type Model struct {
	// Screen and navigation state
	screen     screens.Screen // Current active screen
	lastScreen screens.Screen // Previous screen for back navigation
	cursor     int            // Current cursor/selection position
	choices    []string       // Available menu options for current screen

	// Operation state
	operation    string // Current operation identifier (e.g., "backup", "archive_restore")
	message      string // Status or error message to display
	confirmation string // Confirmation dialog text
	canceling    bool   // Flag indicating operation cancellation in progress

	// Display dimensions
	width  int // Terminal width for rendering
	height int // Terminal height for rendering

	// Application services
	settings *config.Settings
	engine   *backup.Engine
	log      zerolog.Logger
	ring     *logging.Ring

	// Game state
	install     game.Installation // Active installation (root + branch)
	characters  []game.Character  // Discovered characters for the active installation
	target      game.CharInstall  // Character the current operation acts on
	pasteSource game.CharInstall  // Source character for a paste operation
	haveSource  bool              // True once a paste source has been picked

	// Selective backup state
	files         []game.FileEntry // Files of the target character
	selectedFiles map[string]bool  // User's file selections (relative path -> selected)

	// Backup list state
	backups   []backup.Info // Decoded backups of the target character
	backupIdx int           // Index of the archive the action menu refers to

	// Background task state
	active       *task.Task  // Currently running task, nil when idle
	result       *taskResult // Outcome holder for the active task
	spinnerFrame int         // Current frame for the progress animation

	// Error handling
	errorRequiresManualDismissal bool // True for critical errors needing user acknowledgment

	// Scrollable result screens
	verifyResults []backup.Mismatch // Mismatch list for the verification results screen
	scrollOffset  int               // Current scroll position for log and results screens

	// Menu handlers
	mainMenu      *handlers.MainMenuHandler
	backupActions *handlers.BackupActionsHandler
}

// InitialModel creates and returns a new Model instance with default values.
// This sets up the initial application state with the main menu active.
func InitialModel(cfg ModelConfig) Model {
	return Model{
		screen:        screens.ScreenMain,
		choices:       screens.MainMenuChoices,
		settings:      cfg.Settings,
		engine:        cfg.Engine,
		log:           cfg.Log,
		ring:          cfg.Ring,
		selectedFiles: make(map[string]bool),
		mainMenu:      handlers.NewMainMenuHandler(),
		backupActions: handlers.NewBackupActionsHandler(),
		width:         100,
		height:        30,
	}
}

// Init implements tea.Model.Init() and returns any initial commands.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.Update() and handles all incoming messages.
// This is the central message router that processes user input, system events,
// background operation updates, and screen transitions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case state.CharactersLoadedMsg:
		if msg.Err != nil {
			return m.showError(fmt.Sprintf("Failed to scan characters: %v", msg.Err)), nil
		}
		m.characters = msg.Characters
		if len(m.characters) == 0 {
			return m.showError(fmt.Sprintf("No characters found under %s", m.install.AccountDir())), nil
		}
		m.choices = make([]string, 0, len(m.characters)+1)
		for _, c := range m.characters {
			m.choices = append(m.choices, fmt.Sprintf("🧙 %s (%s)", c.Name, c.Realm))
		}
		m.choices = append(m.choices, "⬅️ Back")
		m.cursor = 0
		if m.operation != "paste_target" {
			m.message = ""
		}
		return m, nil

	case state.FilesLoadedMsg:
		if msg.Err != nil {
			return m.showError(fmt.Sprintf("Failed to list files: %v", msg.Err)), nil
		}
		m.files = msg.Files
		m.selectedFiles = make(map[string]bool, len(m.files))
		for _, f := range m.files {
			m.selectedFiles[f.RelPath] = true
		}
		m.screen = screens.ScreenFileSelect
		m.cursor = 0
		m.message = ""
		return m, nil

	case state.BackupsLoadedMsg:
		if msg.Err != nil {
			return m.showError(fmt.Sprintf("Failed to list backups: %v", msg.Err)), nil
		}
		m.backups = msg.Backups
		m.choices = make([]string, 0, len(m.backups)+1)
		for _, b := range m.backups {
			label := fmt.Sprintf("%s %s  %s", CurrentSymbols.Archive, FormatBackupTime(b.Time), b.Character)
			if b.IsPaste {
				label += "  [pre-paste]"
			}
			if b.IsPinned {
				label += "  " + CurrentSymbols.Pin
			}
			m.choices = append(m.choices, label)
		}
		m.choices = append(m.choices, "⬅️ Back")
		m.screen = screens.ScreenBackupList
		if m.cursor >= len(m.choices) {
			m.cursor = 0
		}
		if len(m.backups) == 0 {
			m.message = "No backups yet for this character"
		}
		return m, nil

	case state.ActionDoneMsg:
		if msg.Err != nil {
			return m.showError(fmt.Sprintf("Operation failed: %v", msg.Err)), nil
		}
		switch m.operation {
		case "archive_pin", "archive_delete":
			// Stay on the list; reload so the renamed or removed entry shows
			m.message = FormatSuccess(msg.Message)
			return m, loadBackupsCmd(m.target)
		default:
			m.message = msg.Message
			m.lastScreen = m.screen
			m.screen = screens.ScreenComplete
			return m, nil
		}

	case state.CompletionMsg:
		m.message = msg.Message
		m.lastScreen = m.screen
		m.screen = screens.ScreenComplete
		return m, nil

	case state.ErrorMsg:
		m.message = msg.Message
		m.errorRequiresManualDismissal = msg.RequiresManualDismiss
		m.lastScreen = m.screen
		m.screen = screens.ScreenError
		return m, nil

	case state.SpinnerTickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 20
		if m.screen == screens.ScreenProgress {
			return m, spinnerTick()
		}
		return m, nil

	case state.TaskTickMsg:
		return m.handleTaskTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleTaskTick polls the active background task and routes its completion.
func (m Model) handleTaskTick() (tea.Model, tea.Cmd) {
	if m.active == nil {
		return m, nil
	}
	m.active.Poll()

	if !m.active.Finished() {
		if !m.canceling {
			m.message = m.active.Describe()
		}
		return m, pollTask()
	}

	t := m.active

	if errMsg := t.Err(); errMsg != "" {
		m.active = nil
		if m.canceling {
			m.canceling = false
			m = m.resetToMain()
			m.message = "Operation canceled"
			return m, nil
		}
		return m.showError(errMsg), nil
	}

	// Chained tasks run back to back under the same progress screen.
	if next := t.TakeNext(); next != nil {
		m.active = next
		next.Start()
		m.message = next.Describe()
		return m, pollTask()
	}

	m.active = nil
	m.canceling = false

	if after := t.TakeAfterMessages(); len(after) > 0 {
		cmds := make([]tea.Cmd, 0, len(after))
		for _, am := range after {
			am := am
			cmds = append(cmds, func() tea.Msg { return am })
		}
		return m, tea.Batch(cmds...)
	}

	res := m.result
	switch m.operation {
	case "backup", "selective_backup":
		m.message = FormatSuccess(fmt.Sprintf("Backup created: %s", filepath.Base(res.archivePath)))
		m.screen = screens.ScreenComplete
	case "restore", "archive_restore":
		m.message = FormatSuccess(fmt.Sprintf("Restored %d files to %s", res.files, m.target.Char.Name))
		m.screen = screens.ScreenComplete
	case "paste_target":
		m.message = FormatSuccess(fmt.Sprintf("Copied %d files to %s", res.files, m.target.Char.Name))
		m.screen = screens.ScreenComplete
	case "archive_verify":
		if len(res.mismatches) == 0 {
			m.message = FormatSuccess("Archive verified: all files match")
			m.screen = screens.ScreenComplete
		} else {
			m.verifyResults = res.mismatches
			m.scrollOffset = 0
			m.screen = screens.ScreenVerifyResults
		}
	default:
		m.screen = screens.ScreenComplete
	}
	return m, nil
}

// handleKey routes keyboard input for the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle error screen dismissal first
	if m.screen == screens.ScreenError {
		// Any key press dismisses the error screen and returns to main menu
		return m.resetToMain(), nil
	}

	// Handle completion screen dismissal
	if m.screen == screens.ScreenComplete {
		// Returning from a manage action goes back to the backup list
		if m.lastScreen == screens.ScreenBackupActions || m.lastScreen == screens.ScreenBackupList {
			m.screen = screens.ScreenBackupList
			m.message = ""
			return m, loadBackupsCmd(m.target)
		}
		return m.resetToMain(), nil
	}

	// The about screen dismisses on any key, as its footer promises
	if m.screen == screens.ScreenAbout {
		return m.resetToMain(), nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		if m.screen == screens.ScreenMain {
			return m, tea.Quit
		}
		// Handle Ctrl+C during progress - set canceling state
		if m.screen == screens.ScreenProgress {
			return m.cancelActive(), nil
		}
		return m.resetToMain(), nil

	case "esc":
		switch m.screen {
		case screens.ScreenProgress:
			return m.cancelActive(), nil
		case screens.ScreenFileSelect:
			m.screen = screens.ScreenCharSelect
			m.cursor = 0
			m.message = ""
			return m, loadCharactersCmd(m.install)
		case screens.ScreenBackupActions:
			m.screen = screens.ScreenBackupList
			m.cursor = 0
			m.message = ""
			return m, nil
		case screens.ScreenVerifyResults, screens.ScreenLog:
			return m.resetToMain(), nil
		case screens.ScreenMain:
			return m, nil
		}
		return m.resetToMain(), nil

	case "up", "k":
		m.moveCursor(-1)
		return m, nil

	case "down", "j":
		m.moveCursor(1)
		return m, nil

	case "a", "A":
		if m.screen == screens.ScreenFileSelect {
			for _, f := range m.files {
				m.selectedFiles[f.RelPath] = true
			}
		}
		return m, nil

	case "n", "N", "x", "X":
		if m.screen == screens.ScreenFileSelect {
			for _, f := range m.files {
				m.selectedFiles[f.RelPath] = false
			}
		}
		return m, nil

	case "enter", " ":
		return m.handleSelection()
	}

	return m, nil
}

// moveCursor moves the selection or scroll position by delta, wrapping on
// menu screens and clamping on scrollable ones.
func (m *Model) moveCursor(delta int) {
	switch m.screen {
	case screens.ScreenConfirm:
		m.cursor = clamp(m.cursor+delta, 0, 1)
	case screens.ScreenFileSelect:
		max := len(screens.FileSelectControlChoices) + len(m.files) - 1
		m.cursor = wrap(m.cursor+delta, max)
	case screens.ScreenVerifyResults:
		max := len(m.verifyResults) - m.visibleRows()
		m.scrollOffset = clamp(m.scrollOffset+delta, 0, maxInt(max, 0))
	case screens.ScreenLog:
		max := m.ring.Len() - m.visibleRows()
		m.scrollOffset = clamp(m.scrollOffset+delta, 0, maxInt(max, 0))
	case screens.ScreenProgress, screens.ScreenError, screens.ScreenComplete, screens.ScreenAbout:
		// No cursor on these screens
	default:
		if len(m.choices) > 0 {
			m.cursor = wrap(m.cursor+delta, len(m.choices)-1)
		}
	}
}

// handleSelection processes menu selections and handles screen transitions.
// This method implements the navigation logic for all interactive screens,
// managing state changes and initiating background operations as needed.
func (m Model) handleSelection() (tea.Model, tea.Cmd) {
	switch m.screen {
	case screens.ScreenMain:
		screen, op, quit := m.mainMenu.HandleSelection(m.cursor)
		if quit {
			return m, tea.Quit
		}
		switch screen {
		case screens.ScreenCharSelect:
			return m.enterCharFlow(op)
		case screens.ScreenLog:
			m.screen = screens.ScreenLog
			m.scrollOffset = maxInt(m.ring.Len()-m.visibleRows(), 0)
		case screens.ScreenAbout:
			m.screen = screens.ScreenAbout
		}
		return m, nil

	case screens.ScreenBranchSelect:
		if m.cursor < len(m.settings.Installations) {
			m.install = m.settings.Installations[m.cursor]
			m.settings.LastBranch = m.install.Branch
			m.screen = screens.ScreenCharSelect
			m.choices = nil
			m.cursor = 0
			m.message = "🔍 Scanning characters..."
			return m, loadCharactersCmd(m.install)
		}
		return m.resetToMain(), nil

	case screens.ScreenCharSelect:
		return m.handleCharSelection()

	case screens.ScreenFileSelect:
		return m.handleFileSelection()

	case screens.ScreenBackupList:
		if m.cursor < len(m.backups) {
			m.backupIdx = m.cursor
			info := m.backups[m.backupIdx]
			switch m.operation {
			case "restore":
				m.confirmation = fmt.Sprintf(
					"Restore backup of %s from %s?\n\n%s  This will OVERWRITE the character's current settings.\nA snapshot is taken first so you can undo.",
					info.Character, FormatBackupTime(info.Time), CurrentSymbols.Warning)
				m.operation = "archive_restore"
				m.screen = screens.ScreenConfirm
				m.cursor = 1
			case "manage":
				m.screen = screens.ScreenBackupActions
				m.choices = screens.BackupActionChoices
				m.cursor = 0
				m.message = ""
			}
			return m, nil
		}
		// Back option
		m.screen = screens.ScreenCharSelect
		m.cursor = 0
		m.message = ""
		return m, loadCharactersCmd(m.install)

	case screens.ScreenBackupActions:
		return m.handleBackupAction()

	case screens.ScreenConfirm:
		return m.handleConfirmation()

	case screens.ScreenAbout, screens.ScreenLog, screens.ScreenVerifyResults:
		return m.resetToMain(), nil
	}
	return m, nil
}

// enterCharFlow begins a flow that needs a character: resolve the active
// installation first, then scan for characters.
func (m Model) enterCharFlow(op string) (tea.Model, tea.Cmd) {
	m.operation = op
	m.haveSource = false

	installs := m.settings.Installations
	switch len(installs) {
	case 0:
		m.errorRequiresManualDismissal = true
		m.message = "No game installation configured.\n\nRun with --root pointing at your World of Warcraft directory."
		m.lastScreen = m.screen
		m.screen = screens.ScreenError
		return m, nil
	case 1:
		m.install = installs[0]
		m.screen = screens.ScreenCharSelect
		m.choices = nil
		m.cursor = 0
		m.message = "🔍 Scanning characters..."
		return m, loadCharactersCmd(m.install)
	default:
		m.screen = screens.ScreenBranchSelect
		m.choices = make([]string, 0, len(installs)+1)
		for _, inst := range installs {
			m.choices = append(m.choices, fmt.Sprintf("🌿 %s (%s)", inst.Branch, inst.Root))
		}
		m.choices = append(m.choices, "⬅️ Back")
		m.cursor = 0
		return m, nil
	}
}

// handleCharSelection routes a picked character into the current operation.
func (m Model) handleCharSelection() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.characters) {
		return m.resetToMain(), nil
	}
	ci := game.CharInstall{Char: m.characters[m.cursor], Install: m.install}

	switch m.operation {
	case "backup":
		m.target = ci
		m.confirmation = fmt.Sprintf("Back up all settings of %s (%s)?", ci.Char.Name, ci.Char.Realm)
		m.screen = screens.ScreenConfirm
		m.cursor = 0
		return m, nil

	case "selective_backup":
		m.target = ci
		m.message = fmt.Sprintf("🔍 Scanning files of %s...", ci.Char.Name)
		return m, loadFilesCmd(ci)

	case "restore", "manage":
		m.target = ci
		m.message = ""
		return m, loadBackupsCmd(ci)

	case "paste_source":
		m.pasteSource = ci
		m.haveSource = true
		m.operation = "paste_target"
		m.cursor = 0
		m.message = fmt.Sprintf("📋 Copying from %s. Now pick the destination character.", ci.Char.Name)
		return m, nil

	case "paste_target":
		if ci.Char == m.pasteSource.Char {
			m.message = FormatWarning("Pick a different character as the destination")
			return m, nil
		}
		m.target = ci
		m.confirmation = fmt.Sprintf(
			"Copy settings from %s (%s) to %s (%s)?\n\n%s  %s's current settings are snapshotted first.",
			m.pasteSource.Char.Name, m.pasteSource.Char.Realm,
			ci.Char.Name, ci.Char.Realm,
			CurrentSymbols.Warning, ci.Char.Name)
		m.screen = screens.ScreenConfirm
		m.cursor = 0
		return m, nil
	}
	return m, nil
}

// handleFileSelection toggles files or continues to confirmation.
// Layout: cursor 0-1 are controls (Continue, Back), 2+ are files.
func (m Model) handleFileSelection() (tea.Model, tea.Cmd) {
	numControls := len(screens.FileSelectControlChoices)

	if m.cursor < numControls {
		switch m.cursor {
		case 0: // Continue with selection
			count := 0
			for _, sel := range m.selectedFiles {
				if sel {
					count++
				}
			}
			if count == 0 {
				m.message = FormatWarning("Nothing selected")
				return m, nil
			}
			m.confirmation = fmt.Sprintf("Back up %d selected files of %s (%s)?",
				count, m.target.Char.Name, m.target.Char.Realm)
			m.screen = screens.ScreenConfirm
			m.cursor = 0
		case 1: // Back
			m.screen = screens.ScreenCharSelect
			m.cursor = 0
			m.message = ""
			return m, loadCharactersCmd(m.install)
		}
		return m, nil
	}

	idx := m.cursor - numControls
	if idx < len(m.files) {
		rel := m.files[idx].RelPath
		m.selectedFiles[rel] = !m.selectedFiles[rel]
	}
	return m, nil
}

// handleBackupAction dispatches the archive action menu.
func (m Model) handleBackupAction() (tea.Model, tea.Cmd) {
	op, back := m.backupActions.HandleSelection(m.cursor)
	if back {
		m.screen = screens.ScreenBackupList
		m.cursor = 0
		return m, loadBackupsCmd(m.target)
	}
	m.operation = op
	info := m.backups[m.backupIdx]

	switch op {
	case "archive_restore":
		m.confirmation = fmt.Sprintf(
			"Restore backup of %s from %s?\n\n%s  This will OVERWRITE the character's current settings.\nA snapshot is taken first so you can undo.",
			info.Character, FormatBackupTime(info.Time), CurrentSymbols.Warning)
		m.screen = screens.ScreenConfirm
		m.cursor = 1
		return m, nil

	case "archive_verify":
		m.result = &taskResult{}
		t := newVerifyTask(m.engine, m.target, filepath.Join(m.target.BackupsDir(), info.FileName), m.result)
		return m.startTask(t)

	case "archive_pin":
		m.message = "📌 Updating pin..."
		return m, togglePinCmd(m.target, info)

	case "archive_export":
		m.message = "📤 Exporting..."
		return m, exportBackupCmd(m.engine, m.target, info)

	case "archive_delete":
		if info.IsPinned {
			m.message = FormatWarning("Unpin this backup before deleting it")
			return m, nil
		}
		m.confirmation = fmt.Sprintf("Delete backup of %s from %s?\n\nThis cannot be undone.",
			info.Character, FormatBackupTime(info.Time))
		m.screen = screens.ScreenConfirm
		m.cursor = 1
		return m, nil
	}
	return m, nil
}

// handleConfirmation starts the confirmed operation or backs out.
func (m Model) handleConfirmation() (tea.Model, tea.Cmd) {
	if m.cursor != 0 { // No
		m.confirmation = ""
		switch m.operation {
		case "archive_restore", "archive_delete":
			m.screen = screens.ScreenBackupList
			m.cursor = 0
			return m, loadBackupsCmd(m.target)
		}
		return m.resetToMain(), nil
	}

	m.confirmation = ""
	m.result = &taskResult{}

	switch m.operation {
	case "backup":
		return m.startTask(newBackupTask(m.engine, m.target, nil, false, m.result))

	case "selective_backup":
		selected := make([]string, 0, len(m.files))
		for _, f := range m.files {
			if m.selectedFiles[f.RelPath] {
				selected = append(selected, f.RelPath)
			}
		}
		return m.startTask(newBackupTask(m.engine, m.target, selected, false, m.result))

	case "restore", "archive_restore":
		info := m.backups[m.backupIdx]
		archivePath := filepath.Join(m.target.BackupsDir(), info.FileName)
		// Snapshot the current settings, then extract. Both run under the
		// same progress screen.
		snap := newBackupTask(m.engine, m.target, nil, true, m.result)
		snap.Chain(newRestoreTask(m.engine, m.target, archivePath, m.result))
		return m.startTask(snap)

	case "paste_target":
		t := newPasteTask(m.engine, m.target, m.pasteSource, nil, m.result)
		t.AddOnAllComplete(state.CompletionMsg{
			Message: FormatSuccess(fmt.Sprintf("Settings copied from %s to %s",
				m.pasteSource.Char.Name, m.target.Char.Name)),
		})
		return m.startTask(t)

	case "archive_delete":
		info := m.backups[m.backupIdx]
		m.screen = screens.ScreenBackupList
		m.cursor = 0
		m.message = "🗑️ Deleting..."
		return m, deleteBackupCmd(m.target, info)
	}
	return m.resetToMain(), nil
}

// startTask transitions to the progress screen and spawns the task's worker.
func (m Model) startTask(t *task.Task) (tea.Model, tea.Cmd) {
	m.active = t
	m.canceling = false
	m.screen = screens.ScreenProgress
	m.message = t.Describe()
	t.Start()
	return m, tea.Batch(pollTask(), spinnerTick())
}

// cancelActive requests cooperative cancellation of the running task.
func (m Model) cancelActive() Model {
	if m.active != nil && !m.canceling {
		m.canceling = true
		m.message = "Canceling operation... Please wait for cleanup to complete."
		m.active.Cancel()
	}
	return m
}

// showError transitions to the error screen with manual dismissal.
func (m Model) showError(message string) Model {
	m.log.Error().Msg(message)
	m.message = message
	m.errorRequiresManualDismissal = true
	m.lastScreen = m.screen
	m.screen = screens.ScreenError
	return m
}

// resetToMain clears all operation state and returns to the main menu.
func (m Model) resetToMain() Model {
	m.screen = screens.ScreenMain
	m.choices = screens.MainMenuChoices
	m.cursor = 0
	m.message = ""
	m.operation = ""
	m.confirmation = ""
	m.errorRequiresManualDismissal = false
	m.canceling = false
	m.haveSource = false
	m.scrollOffset = 0
	m.verifyResults = nil
	return m
}

// visibleRows estimates how many content rows fit on scrollable screens.
func (m Model) visibleRows() int {
	rows := m.height - 10
	if rows < 5 {
		rows = 5
	}
	return rows
}

// View implements tea.Model.View() and delegates to the screen renderers.
func (m Model) View() string {
	switch m.screen {
	case screens.ScreenMain:
		return m.renderMainMenu()
	case screens.ScreenBranchSelect:
		return m.renderBranchSelect()
	case screens.ScreenCharSelect:
		return m.renderCharSelect()
	case screens.ScreenFileSelect:
		return m.renderFileSelect()
	case screens.ScreenBackupList:
		return m.renderBackupList()
	case screens.ScreenBackupActions:
		return m.renderBackupActions()
	case screens.ScreenConfirm:
		return m.renderConfirmation()
	case screens.ScreenProgress:
		return m.renderProgress()
	case screens.ScreenError:
		return m.renderError()
	case screens.ScreenComplete:
		return m.renderComplete()
	case screens.ScreenVerifyResults:
		return m.renderVerifyResults()
	case screens.ScreenLog:
		return m.renderLog()
	case screens.ScreenAbout:
		return m.renderAbout()
	default:
		return "Unknown screen"
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrap(v, max int) int {
	if v < 0 {
		return max
	}
	if v > max {
		return 0
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
