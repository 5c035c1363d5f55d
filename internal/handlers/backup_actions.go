package handlers

// BackupActionsHandler handles selections on the archive action menu
type BackupActionsHandler struct{}

// NewBackupActionsHandler creates a new backup actions handler
func NewBackupActionsHandler() *BackupActionsHandler {
	return &BackupActionsHandler{}
}

// HandleSelection maps an action menu selection to an operation identifier.
// back is true when the selection navigates back to the backup list.
func (h *BackupActionsHandler) HandleSelection(cursor int) (operation string, back bool) {
	switch cursor {
	case 0: // Restore This Backup
		return "archive_restore", false
	case 1: // Verify Integrity
		return "archive_verify", false
	case 2: // Toggle Pin
		return "archive_pin", false
	case 3: // Export to Home Directory
		return "archive_export", false
	case 4: // Delete
		return "archive_delete", false
	}
	return "", true
}
