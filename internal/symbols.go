// Package internal provides Unicode symbol definitions with fallback support for cross-platform compatibility.
//
// This module ensures consistent visual representation across different terminals and systems
// by providing ASCII fallbacks for Unicode symbols that may not render properly on all platforms.
package internal

import (
	"os"
	"strings"
)

// SymbolSet defines a collection of symbols used throughout the UI
type SymbolSet struct {
	// Status indicators
	Success string
	Error   string
	Warning string
	Info    string

	// File and archive icons
	Folder  string
	File    string
	Archive string
	Pin     string

	// Progress indicators
	Progress []string // Animation frames
	Bullet   string
	Arrow    string
	Check    string
	Cross    string

	// Misc
	Sparkle string
	Party   string
}

// UnicodeSymbols provides rich Unicode symbols for modern terminals
var UnicodeSymbols = SymbolSet{
	Success: "✓",
	Error:   "✗",
	Warning: "⚠️",
	Info:    "🔍",

	Folder:  "📁",
	File:    "📄",
	Archive: "🗄️",
	Pin:     "📌",

	Progress: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"},
	Bullet:   "•",
	Arrow:    "➜",
	Check:    "✓",
	Cross:    "❌",

	Sparkle: "✨",
	Party:   "🎉",
}

// ASCIISymbols provides ASCII-only fallbacks for compatibility
var ASCIISymbols = SymbolSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[?]",

	Folder:  "[D]",
	File:    "[F]",
	Archive: "[A]",
	Pin:     "[P]",

	Progress: []string{"|", "/", "-", "\\"},
	Bullet:   "*",
	Arrow:    "->",
	Check:    "[v]",
	Cross:    "[X]",

	Sparkle: "*",
	Party:   "*!*",
}

// CurrentSymbols holds the active symbol set based on terminal capabilities
var CurrentSymbols SymbolSet

// init determines which symbol set to use based on environment
func init() {
	CurrentSymbols = detectSymbolSet()
}

// detectSymbolSet determines the appropriate symbol set based on terminal capabilities
func detectSymbolSet() SymbolSet {
	// Check for explicit ASCII mode via environment variable
	if os.Getenv("WOWSAFE_ASCII") == "1" || os.Getenv("WOWSAFE_ASCII") == "true" {
		return ASCIISymbols
	}

	// Check TERM environment variable for known problematic terminals
	term := strings.ToLower(os.Getenv("TERM"))
	if term == "dumb" || term == "vt100" || strings.HasPrefix(term, "xterm-mono") {
		return ASCIISymbols
	}

	// Check for SSH connections which might have encoding issues
	if os.Getenv("SSH_CLIENT") != "" || os.Getenv("SSH_TTY") != "" {
		// Only use ASCII for SSH if locale doesn't support UTF-8
		locale := strings.ToLower(os.Getenv("LANG"))
		if !strings.Contains(locale, "utf-8") && !strings.Contains(locale, "utf8") {
			return ASCIISymbols
		}
	}

	// Default to Unicode for modern terminals
	return UnicodeSymbols
}

// ForceASCII switches to ASCII symbols regardless of terminal detection
func ForceASCII() {
	CurrentSymbols = ASCIISymbols
}

// GetProgressFrame returns the current progress animation frame
func GetProgressFrame(tick int) string {
	frames := CurrentSymbols.Progress
	if len(frames) == 0 {
		return ""
	}
	return frames[tick%len(frames)]
}

// FormatSuccess formats a success message with the appropriate symbol
func FormatSuccess(message string) string {
	return CurrentSymbols.Success + " " + message
}

// FormatError formats an error message with the appropriate symbol
func FormatError(message string) string {
	return CurrentSymbols.Error + " " + message
}

// FormatWarning formats a warning message with the appropriate symbol
func FormatWarning(message string) string {
	return CurrentSymbols.Warning + " " + message
}
