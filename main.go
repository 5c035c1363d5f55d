// Package main implements the entry point and command-line interface for WoWSafe.
//
// This package handles:
//   - Command-line parsing and flag handling
//   - Settings loading and installation registration
//   - Single instance checking to prevent concurrent operations
//   - Signal handling for clean shutdown
//   - TUI initialization and execution
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"wowsafe/internal"
	"wowsafe/internal/backup"
	"wowsafe/internal/config"
	"wowsafe/internal/game"
	"wowsafe/internal/logging"
)

// lockFileName is the singleton instance lock, created under the system
// temp directory. This prevents two wowsafe processes from mutating the
// same backup directories concurrently.
const lockFileName = "wowsafe.lock"

var (
	flagRoot     string
	flagBranch   string
	flagMock     bool
	flagLogLevel string
	flagLogFile  string
	flagConfig   string

	flagAccount string
	flagRealm   string
	flagName    string
)

var rootCmd = &cobra.Command{
	Use:   "wowsafe",
	Short: "Back up and restore World of Warcraft character settings",
	Long: `WoWSafe archives the per-character configuration files that live under
WTF/Account in a World of Warcraft installation, and restores, copies,
and verifies them from a terminal UI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(internal.GetFullVersionString())
	},
}

var importCmd = &cobra.Command{
	Use:   "import <archive.zip>",
	Short: "Import a backup archive into a character's backup directory",
	Long: `Import copies an external backup archive into the named character's
backup directory. Archives whose names don't follow the backup naming
scheme are renamed so the listing can always parse them.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "path to the World of Warcraft installation directory")
	rootCmd.PersistentFlags().StringVar(&flagBranch, "branch", "_retail_", "game branch directory (e.g. _retail_, _classic_)")
	rootCmd.PersistentFlags().BoolVar(&flagMock, "mock", false, "log operations without touching the filesystem")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "also append log lines to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to the settings file")

	importCmd.Flags().StringVar(&flagAccount, "account", "", "account directory name")
	importCmd.Flags().StringVar(&flagRealm, "realm", "", "realm name")
	importCmd.Flags().StringVar(&flagName, "name", "", "character name")
	importCmd.MarkFlagRequired("account")
	importCmd.MarkFlagRequired("realm")
	importCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSettings reads the settings file and registers the installation from
// the --root flag, if given.
func loadSettings() (*config.Settings, error) {
	var (
		settings *config.Settings
		err      error
	)
	if flagConfig != "" {
		settings, err = config.LoadFrom(flagConfig)
	} else {
		settings, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if flagRoot != "" {
		settings.AddInstallation(game.Installation{Root: flagRoot, Branch: flagBranch})
	}
	return settings, nil
}

func saveSettings(settings *config.Settings) error {
	if flagConfig != "" {
		return settings.SaveTo(flagConfig)
	}
	return settings.Save()
}

func runTUI(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	if err := checkSingleInstance(); err != nil {
		return err
	}
	if err := createInstanceLock(); err != nil {
		return fmt.Errorf("failed to create instance lock: %w", err)
	}
	defer removeInstanceLock()

	// Set up signal handling for clean exit
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		removeInstanceLock()
		os.Exit(1)
	}()

	// The TUI owns the terminal, so logs go to an in-memory ring the log
	// screen renders, and optionally to a file for post-mortem reading.
	ring := logging.NewRing(logging.DefaultRingCapacity)
	var sink io.Writer = ring
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		sink = io.MultiWriter(ring, f)
	}
	logger := logging.NewLogger(sink, logging.LevelFromString(flagLogLevel))
	engine := backup.NewEngine(logger, flagMock)

	logger.Info().
		Str("version", internal.GetVersionString()).
		Bool("mock", flagMock).
		Msg("starting")

	m := internal.InitialModel(internal.ModelConfig{
		Settings: settings,
		Engine:   engine,
		Log:      logger,
		Ring:     ring,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return err
	}

	return saveSettings(settings)
}

func runImport(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if len(settings.Installations) == 0 {
		return fmt.Errorf("no game installation configured; pass --root")
	}

	// Prefer the installation matching --branch, else the first configured
	inst := settings.Installations[0]
	for _, candidate := range settings.Installations {
		if candidate.Branch == flagBranch {
			inst = candidate
			break
		}
	}

	ci := game.CharInstall{
		Char: game.Character{
			Account: flagAccount,
			Branch:  inst.Branch,
			Realm:   flagRealm,
			Name:    flagName,
		},
		Install: inst,
	}

	logger := logging.NewLogger(os.Stderr, logging.LevelFromString(flagLogLevel))
	engine := backup.NewEngine(logger, flagMock)

	dest, err := engine.Import(ci, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Imported %s\n", dest)

	return saveSettings(settings)
}

func lockFilePath() string {
	return filepath.Join(os.TempDir(), lockFileName)
}

// checkSingleInstance verifies that no other wowsafe process is currently
// running. It checks for the existence of a lock file and validates that the
// PID is still active. Stale lock files are automatically cleaned up if the
// process no longer exists.
func checkSingleInstance() error {
	path := lockFilePath()
	if _, err := os.Stat(path); err == nil {
		// Lock file exists, check if process is actually running
		lockContent, readErr := os.ReadFile(path)
		if readErr == nil {
			pid := strings.TrimSpace(string(lockContent))
			if pid != "" {
				if pidInt, err := strconv.Atoi(pid); err == nil {
					if process, err := os.FindProcess(pidInt); err == nil {
						// Send signal 0 to check if process exists
						if err := process.Signal(syscall.Signal(0)); err == nil {
							return fmt.Errorf("another wowsafe process is already running (PID: %s)", pid)
						}
					}
				}
			}
		}
		// Stale lock file, remove it
		os.Remove(path)
	}
	return nil
}

// createInstanceLock creates a lock file containing the current process ID.
func createInstanceLock() error {
	pid := fmt.Sprintf("%d", os.Getpid())
	return os.WriteFile(lockFilePath(), []byte(pid), 0644)
}

// removeInstanceLock deletes the singleton lock file to allow new instances.
func removeInstanceLock() {
	os.Remove(lockFilePath())
}
