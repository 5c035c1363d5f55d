package screens

// Menu choice constants for different screens
var (
	// MainMenuChoices defines the main menu options in the correct order
	MainMenuChoices = []string{
		"🗄️ Backup Character",
		"🎯 Selective Backup",
		"🔄 Restore Backup",
		"📋 Copy Settings Between Characters",
		"🗂️ Manage Backups",
		"📜 View Session Log",
		"ℹ️ About",
		"❌ Exit",
	}

	// BackupActionChoices defines the actions available for a chosen archive
	BackupActionChoices = []string{
		"🔄 Restore This Backup",
		"🔍 Verify Integrity",
		"📌 Toggle Pin",
		"📤 Export to Home Directory",
		"🗑️ Delete",
		"⬅️ Back",
	}

	// ConfirmationChoices defines standard yes/no choices
	ConfirmationChoices = []string{
		"✅ Yes",
		"❌ No",
	}

	// FileSelectControlChoices defines the control options shown above the
	// file list on the selective backup screen
	FileSelectControlChoices = []string{
		"✅ Continue with selection",
		"⬅️ Back",
	}
)

// GetMenuChoices returns the appropriate menu choices for a given screen
func GetMenuChoices(screen Screen) []string {
	switch screen {
	case ScreenMain:
		return MainMenuChoices
	case ScreenBackupActions:
		return BackupActionChoices
	case ScreenConfirm:
		return ConfirmationChoices
	default:
		return []string{}
	}
}
