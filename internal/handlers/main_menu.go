package handlers

import (
	"wowsafe/internal/screens"
)

// MainMenuHandler handles main menu selections and returns the next screen state
type MainMenuHandler struct{}

// NewMainMenuHandler creates a new main menu handler
func NewMainMenuHandler() *MainMenuHandler {
	return &MainMenuHandler{}
}

// HandleSelection processes a main menu selection. It returns the destination
// screen, the operation identifier carried through downstream screens, and
// whether the program should quit.
func (h *MainMenuHandler) HandleSelection(cursor int) (screen screens.Screen, operation string, quit bool) {
	switch cursor {
	case 0: // Backup Character
		return screens.ScreenCharSelect, "backup", false
	case 1: // Selective Backup
		return screens.ScreenCharSelect, "selective_backup", false
	case 2: // Restore Backup
		return screens.ScreenCharSelect, "restore", false
	case 3: // Copy Settings Between Characters
		return screens.ScreenCharSelect, "paste_source", false
	case 4: // Manage Backups
		return screens.ScreenCharSelect, "manage", false
	case 5: // View Session Log
		return screens.ScreenLog, "", false
	case 6: // About
		return screens.ScreenAbout, "", false
	case 7: // Exit
		return screens.ScreenMain, "", true
	}
	return screens.ScreenMain, "", false
}
