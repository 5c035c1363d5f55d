package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wowsafe/internal/screens"
)

// Styles
var (
	// Color palette - Tokyo Night inspired
	primaryColor    = lipgloss.Color("#7aa2f7") // Tokyo Night blue
	secondaryColor  = lipgloss.Color("#9ece6a") // Tokyo Night green
	warningColor    = lipgloss.Color("#e0af68") // Tokyo Night yellow
	errorColor      = lipgloss.Color("#f7768e") // Tokyo Night red
	successColor    = lipgloss.Color("#9ece6a") // Tokyo Night green
	textColor       = lipgloss.Color("#c0caf5") // Tokyo Night foreground
	dimColor        = lipgloss.Color("#565f89") // Tokyo Night comment
	backgroundColor = lipgloss.Color("#1a1b26") // Tokyo Night background
	borderColor     = lipgloss.Color("#414868") // Tokyo Night border

	asciiStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Align(lipgloss.Center).
			MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true).
			Align(lipgloss.Center).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Align(lipgloss.Center).
			MarginBottom(1)

	menuItemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2).
			Foreground(textColor)

	selectedMenuItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				PaddingRight(2).
				Background(primaryColor).
				Foreground(backgroundColor).
				Bold(true).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor)

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(2, 3).
			Margin(1)

	warningStyle = lipgloss.NewStyle().
			Foreground(backgroundColor).
			Background(warningColor).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(warningColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(backgroundColor).
			Background(errorColor).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errorColor)

	successStyle = lipgloss.NewStyle().
			Foreground(backgroundColor).
			Background(successColor).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(successColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Align(lipgloss.Center).
			Italic(true).
			MarginTop(2)

	infoBoxStyle = lipgloss.NewStyle().
			Background(borderColor).
			Foreground(textColor).
			Padding(0, 1).
			Margin(0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimColor)

	logLineStyle = lipgloss.NewStyle().
			Foreground(textColor)
)

// ASCII art for the program name
const asciiArt = `█ █ █ █▀█ █ █ █ █▀ ▄▀█ █▀▀ █▀▀
▀▄▀▄▀ █▄█ ▀▄▀▄▀ ▄█ █▀█ █▀  ██▄`

// Render the main menu
func (m Model) renderMainMenu() string {
	var s strings.Builder

	// Header
	header := m.renderHeader()
	s.WriteString(header + "\n\n")

	// Menu options
	for i, choice := range m.choices {
		if m.cursor == i {
			s.WriteString(selectedMenuItemStyle.Render("❯ "+choice) + "\n")
		} else {
			s.WriteString(menuItemStyle.Render("  "+choice) + "\n")
		}
	}

	if m.message != "" {
		s.WriteString("\n" + subtitleStyle.Render(m.message))
	}

	// Help text
	help := m.renderHelp()
	s.WriteString("\n" + help)

	content := borderStyle.Width(m.width - 8).Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Render branch selection (shown when several installations are configured)
func (m Model) renderBranchSelect() string {
	var s strings.Builder

	ascii := asciiStyle.Render(asciiArt)
	s.WriteString(ascii + "\n")
	s.WriteString(titleStyle.Render("🌿 Select Game Branch") + "\n\n")

	for i, choice := range m.choices {
		if m.cursor == i {
			s.WriteString(selectedMenuItemStyle.Render("❯ "+choice) + "\n")
		} else {
			s.WriteString(menuItemStyle.Render("  "+choice) + "\n")
		}
	}

	help := m.renderHelp()
	s.WriteString("\n" + help)

	content := borderStyle.Width(m.width - 8).Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Render character selection
func (m Model) renderCharSelect() string {
	var s strings.Builder

	ascii := asciiStyle.Render(asciiArt)
	s.WriteString(ascii + "\n")
	s.WriteString(titleStyle.Render("🧙 Select Character") + "\n\n")

	if len(m.characters) == 0 {
		s.WriteString(infoBoxStyle.Render("🔍 Scanning for characters...") + "\n")
	} else {
		for i, choice := range m.choices {
			if m.cursor == i {
				s.WriteString(selectedMenuItemStyle.Render("❯ "+choice) + "\n")
			} else {
				s.WriteString(menuItemStyle.Render("  "+choice) + "\n")
			}
		}
	}

	if m.message != "" {
		s.WriteString("\n" + subtitleStyle.Render(m.message))
	}

	help := m.renderHelp()
	s.WriteString("\n" + help)

	content := borderStyle.Width(m.width - 8).Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Render file selection for selective backups.
// Layout mirrors the cursor math in handleFileSelection: controls first,
// then one row per file with a checkbox.
func (m Model) renderFileSelect() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf("🎯 Select Files - %s", m.target.Char.Name)) + "\n\n")

	for i, choice := range screens.FileSelectControlChoices {
		if m.cursor == i {
			s.WriteString(selectedMenuItemStyle.Render("❯ "+choice) + "\n")
		} else {
			s.WriteString(menuItemStyle.Render("  "+choice) + "\n")
		}
	}
	s.WriteString("\n")

	numControls := len(screens.FileSelectControlChoices)
	rows := m.visibleRows()

	// Keep the cursor's file in view when the list is long
	start := 0
	if fileCursor := m.cursor - numControls; fileCursor >= rows {
		start = fileCursor - rows + 1
	}

	var totalSelected int64
	selectedCount := 0
	for _, f := range m.files {
		if m.selectedFiles[f.RelPath] {
			selectedCount++
			totalSelected += f.Size
		}
	}

	for i := start; i < len(m.files) && i < start+rows; i++ {
		f := m.files[i]
		box := "☐"
		if m.selectedFiles[f.RelPath] {
			box = "☑️"
		}
		line := fmt.Sprintf("%s %s (%s)", box, f.RelPath, FormatBytes(f.Size))
		if m.cursor == i+numControls {
			s.WriteString(selectedMenuItemStyle.Render("❯ "+line) + "\n")
		} else {
			s.WriteString(menuItemStyle.Render("  "+line) + "\n")
		}
	}
	if start+rows < len(m.files) {
		s.WriteString(menuItemStyle.Render(fmt.Sprintf("  … %d more", len(m.files)-start-rows)) + "\n")
	}

	info := infoBoxStyle.Render(fmt.Sprintf("📊 Selected: %d of %d files (%s)",
		selectedCount, len(m.files), FormatBytes(totalSelected)))
	s.WriteString("\n" + info)

	if m.message != "" {
		s.WriteString("\n" + subtitleStyle.Render(m.message))
	}

	help := helpStyle.Render("space: toggle • a: all • n: none • enter: select • esc: back")
	s.WriteString("\n" + help)

	content := borderStyle.Width(m.width - 8).Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Render the backup listing for a character
func (m Model) renderBackupList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf("🗂️ Backups - %s (%s)", m.target.Char.Name, m.target.Char.Realm)) + "\n\n")

	if len(m.backups) == 0 {
		s.WriteString(infoBoxStyle.Render("No backups yet for this character") + "\n")
	}
	for i, choice := range m.choices {
		if m.cursor == i {
			s.WriteString(selectedMenuItemStyle.Render("❯ "+choice) + "\n")
		} else {
			s.WriteString(menuItemStyle.Render("  "+choice) + "\n")
		}
	}

	if m.message != "" {
		s.WriteString("\n" + subtitleStyle.Render(m.message))
	}

	help := m.renderHelp()
	s.WriteString("\n" + help)

	content := borderStyle.Width(m.width - 8).Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Render the action menu for a chosen archive
func (m Model) renderBackupActions() string {
	var s strings.Builder

	info := m.backups[m.backupIdx]
	s.WriteString(titleStyle.Render("🗄️ Backup Actions") + "\n")

	detail := fmt.Sprintf("%s  •  %s", info.Character, FormatBackupTime(info.Time))
	if info.IsPaste {
		detail += "  •  pre-paste snapshot"
	}
	if info.IsPinned {
		detail += "  •  " + CurrentSymbols.Pin + " pinned"
	}
	s.WriteString(subtitleStyle.Render(detail) + "\n\n")

	for i, choice := range m.choices {
		if m.cursor == i {
			s.WriteString(selectedMenuItemStyle.Render("❯ "+choice) + "\n")
		} else {
			s.WriteString(menuItemStyle.Render("  "+choice) + "\n")
		}
	}

	if m.message != "" {
		s.WriteString("\n" + subtitleStyle.Render(m.message))
	}

	help := m.renderHelp()
	s.WriteString("\n" + help)

	content := borderStyle.Width(m.width - 8).Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Render confirmation dialog
func (m Model) renderConfirmation() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("⚠️  Confirmation Required") + "\n\n")

	confirmMsg := warningStyle.Render(m.confirmation)
	s.WriteString(confirmMsg + "\n\n")

	choices := []string{"✅ Yes, Continue", "❌ No, Cancel"}
	for i, choice := range choices {
		cursor := " "
		if m.cursor == i {
			cursor = "❯"
			s.WriteString(selectedMenuItemStyle.Render(cursor+" "+choice) + "\n")
		} else {
			s.WriteString(menuItemStyle.Render(cursor+" "+choice) + "\n")
		}
	}

	help := helpStyle.Render("↑/↓: navigate • enter: select • esc: cancel")
	s.WriteString("\n" + help)

	content := borderStyle.Width(m.width - 4).Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Render progress screen
func (m Model) renderProgress() string {
	var s strings.Builder

	ascii := asciiStyle.Render(asciiArt)
	s.WriteString(ascii + "\n")
	s.WriteString(subtitleStyle.Render(GetSubtitle()) + "\n\n")

	if m.canceling {
		s.WriteString(titleStyle.Render("🛑 Canceling Operation") + "\n\n")
	} else {
		s.WriteString(titleStyle.Render("🔄 Operation in Progress") + "\n\n")
	}

	// Progress bar (only show if not canceling)
	if !m.canceling {
		progressBar := m.renderProgressBar()
		s.WriteString(progressBar + "\n\n")
	}

	// Status message
	if m.message != "" {
		var statusStyle lipgloss.Style
		if m.canceling {
			statusStyle = warningStyle
		} else {
			statusStyle = lipgloss.NewStyle().
				Foreground(secondaryColor).
				Align(lipgloss.Center)
		}
		s.WriteString(statusStyle.Render(m.message) + "\n")
	}

	var help string
	if m.canceling {
		help = helpStyle.Render("Please wait for cleanup to complete...")
	} else {
		help = helpStyle.Render("Please wait... • Ctrl+C: cancel")
	}
	s.WriteString("\n" + help)

	content := borderStyle.Width(m.width - 4).Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Render the progress bar for the active task. Tasks that have not reported
// a total yet get an indeterminate sweep instead of a percentage.
func (m Model) renderProgressBar() string {
	width := 50

	var fraction float64
	hasValue := false
	if m.active != nil {
		fraction, hasValue = m.active.Progress()
	}

	if !hasValue {
		// Indeterminate: sweep a block back and forth
		pos := m.spinnerFrame
		if pos >= 10 {
			pos = 20 - pos
		}
		pos = pos * width / 10

		var bar strings.Builder
		for i := 0; i < width; i++ {
			if i == pos || i == pos+1 || i == pos+2 {
				bar.WriteString("█")
			} else {
				bar.WriteString("░")
			}
		}

		progressText := fmt.Sprintf("%s [%s] Working...", GetProgressFrame(m.spinnerFrame), bar.String())
		return lipgloss.NewStyle().
			Foreground(primaryColor).
			Align(lipgloss.Center).
			Render(progressText)
	}

	percentage := fmt.Sprintf("%3d%%", m.active.Percent())
	filled := int(fraction * float64(width))

	var bar strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			bar.WriteString("█")
		} else {
			bar.WriteString("░")
		}
	}

	counts := fmt.Sprintf("%d/%d", m.active.Completed(), m.active.Total())
	progressText := fmt.Sprintf("Progress: [%s] %s (%s)", bar.String(), percentage, counts)

	return lipgloss.NewStyle().
		Foreground(primaryColor).
		Align(lipgloss.Center).
		Render(progressText)
}

// Render header with ASCII art
func (m Model) renderHeader() string {
	ascii := asciiStyle.Render(asciiArt)
	title := titleStyle.Render(AppDesc)
	subtitle := subtitleStyle.Render(GetSubtitle())

	return ascii + "\n" + title + "\n" + subtitle
}

// Render help text
func (m Model) renderHelp() string {
	return helpStyle.Render("↑/↓: navigate • enter: select • q: quit • esc: back")
}

// Render error screen that requires manual dismissal
func (m Model) renderError() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("❌ Error") + "\n\n")

	errorMsg := errorStyle.Render(m.message)
	s.WriteString(errorMsg + "\n\n")

	help := helpStyle.Render("📖 Please read the message above • Press ESC or any key when ready to continue")
	s.WriteString(help)

	content := borderStyle.Width(m.width - 8).Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Render completion screen that requires manual dismissal
func (m Model) renderComplete() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("✅ Operation Complete") + "\n\n")

	successMsg := successStyle.Render(m.message)
	s.WriteString(successMsg + "\n\n")

	help := helpStyle.Render("🎉 Operation completed successfully • Press any key to continue")
	s.WriteString(help)

	content := borderStyle.Width(m.width - 8).Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Render verification mismatch list with scrolling
func (m Model) renderVerifyResults() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("🔍 Verification Results") + "\n")
	s.WriteString(warningStyle.Render(fmt.Sprintf("%d files do not match the archive", len(m.verifyResults))) + "\n\n")

	rows := m.visibleRows()
	end := m.scrollOffset + rows
	if end > len(m.verifyResults) {
		end = len(m.verifyResults)
	}
	for _, mm := range m.verifyResults[m.scrollOffset:end] {
		s.WriteString(logLineStyle.Render("  "+mm.String()) + "\n")
	}
	if end < len(m.verifyResults) {
		s.WriteString(menuItemStyle.Render(fmt.Sprintf("  … %d more", len(m.verifyResults)-end)) + "\n")
	}

	help := helpStyle.Render("↑/↓: scroll • esc: back to main menu")
	s.WriteString("\n" + help)

	content := borderStyle.Width(m.width - 8).Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Render the in-memory session log with scrolling
func (m Model) renderLog() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("📜 Session Log") + "\n\n")

	lines := m.ring.Lines()
	if len(lines) == 0 {
		s.WriteString(infoBoxStyle.Render("Nothing logged yet") + "\n")
	}

	rows := m.visibleRows()
	end := m.scrollOffset + rows
	if end > len(lines) {
		end = len(lines)
	}
	start := m.scrollOffset
	if start > len(lines) {
		start = len(lines)
	}
	for _, line := range lines[start:end] {
		s.WriteString(logLineStyle.Render(line) + "\n")
	}

	help := helpStyle.Render("↑/↓: scroll • esc: back to main menu")
	s.WriteString("\n" + help)

	content := borderStyle.Width(m.width - 8).Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Render about screen
func (m Model) renderAbout() string {
	var s strings.Builder

	ascii := asciiStyle.Render(asciiArt)
	s.WriteString(ascii + "\n")
	s.WriteString(titleStyle.Render("ℹ️ About "+AppName) + "\n\n")

	about := GetAboutText() + `

Powered by Bubble Tea & Lipgloss

Features:
• Per-character backup of WTF settings files
• Selective backups of individual files
• Restore with automatic pre-restore snapshot
• Copy settings between characters
• Archive integrity verification (SHA-256)
• Pin important backups against deletion
• Mock mode for dry runs

Press any key to return to main menu`

	info := lipgloss.NewStyle().
		Foreground(textColor).
		Margin(0, 2).
		Align(lipgloss.Left).
		Render(about)

	s.WriteString(info)

	content := borderStyle.Width(m.width - 8).Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
