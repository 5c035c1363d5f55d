// Package internal provides core utilities and shared functionality for the WoWSafe TUI.
//
// This package contains common utilities including:
//   - Formatting functions for human-readable display of numbers and byte sizes
//   - Timestamp formatting for backup listings
//
// The utilities in this package provide consistent formatting across the
// entire application.
package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatNumber adds commas to large numbers for readability.
// It accepts int64 values and formats them with thousands separators.
//
// Examples:
//
//	FormatNumber(1234) -> "1,234"
//	FormatNumber(1234567) -> "1,234,567"
//	FormatNumber(999) -> "999" (no comma for numbers < 1000)
func FormatNumber(n int64) string {
	if n < 1000 {
		return strconv.FormatInt(n, 10)
	}

	// Convert to string and add commas
	str := strconv.FormatInt(n, 10)
	var result strings.Builder

	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(char)
	}

	return result.String()
}

// FormatBytes formats byte counts into human-readable size with proper units.
// It uses binary units (1024-based).
//
// Examples:
//
//	FormatBytes(1024) -> "1.0 KB"
//	FormatBytes(1536) -> "1.5 KB"
//	FormatBytes(1048576) -> "1.0 MB"
//	FormatBytes(999) -> "999 B"
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatBackupTime renders a backup timestamp for list display.
// Example: "2026-08-30 14:05"
func FormatBackupTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
