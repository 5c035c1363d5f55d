package screens

// Screen represents the different screens/views in the application
type Screen int

// Screen constants define all possible screens in the application
const (
	ScreenMain Screen = iota
	ScreenBranchSelect
	ScreenCharSelect
	ScreenFileSelect
	ScreenBackupList
	ScreenBackupActions
	ScreenConfirm
	ScreenProgress
	ScreenError
	ScreenComplete
	ScreenVerifyResults
	ScreenLog
	ScreenAbout
)

// String returns the string representation of a screen
func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "Main Menu"
	case ScreenBranchSelect:
		return "Branch Selection"
	case ScreenCharSelect:
		return "Character Selection"
	case ScreenFileSelect:
		return "File Selection"
	case ScreenBackupList:
		return "Backup List"
	case ScreenBackupActions:
		return "Backup Actions"
	case ScreenConfirm:
		return "Confirmation"
	case ScreenProgress:
		return "Progress"
	case ScreenError:
		return "Error"
	case ScreenComplete:
		return "Complete"
	case ScreenVerifyResults:
		return "Verification Results"
	case ScreenLog:
		return "Session Log"
	case ScreenAbout:
		return "About"
	default:
		return "Unknown"
	}
}
