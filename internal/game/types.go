// Package game models World of Warcraft installations and the characters
// whose per-character configuration lives beneath them.
//
// An installation is a root directory plus a branch (client variant) such as
// "_retail_" or "_classic_". Each character's configuration sits at
// <root>/<branch>/WTF/Account/<account>/<realm>/<name>, and that directory
// is where wowsafe reads files from and keeps its backups subdirectory.
package game

import "path/filepath"

// BackupsDirName is the subdirectory inside a character's data directory
// where backup archives are kept. The walker excludes it so backups never
// contain earlier backups.
const BackupsDirName = "backups"

// wtfAccountDir is the fixed path from a branch root to the account tree.
var wtfAccountDir = filepath.Join("WTF", "Account")

// Installation identifies one installed client branch on disk.
type Installation struct {
	Root   string `json:"root"`   // install root, e.g. /games/World of Warcraft
	Branch string `json:"branch"` // branch subdirectory, e.g. _retail_
}

// BranchDir returns the branch's root subdirectory.
func (i Installation) BranchDir() string {
	return filepath.Join(i.Root, i.Branch)
}

// AccountDir returns the directory containing all account trees for the
// branch.
func (i Installation) AccountDir() string {
	return filepath.Join(i.BranchDir(), wtfAccountDir)
}

// Character identifies one character within an installation branch.
type Character struct {
	Account string `json:"account"`
	Branch  string `json:"branch"`
	Name    string `json:"name"`
	Realm   string `json:"realm"`
}

// DataDir resolves the character's on-disk configuration directory within
// the given installation.
func (c Character) DataDir(inst Installation) string {
	return filepath.Join(inst.AccountDir(), c.Account, c.Realm, c.Name)
}

// BackupsDir resolves the directory holding this character's backup
// archives.
func (c Character) BackupsDir(inst Installation) string {
	return filepath.Join(c.DataDir(inst), BackupsDirName)
}

// CharInstall pairs a character with the installation it belongs to for the
// duration of one operation. It is a transient view, not owned data.
type CharInstall struct {
	Char    Character
	Install Installation
}

// DataDir resolves the paired character's data directory.
func (ci CharInstall) DataDir() string {
	return ci.Char.DataDir(ci.Install)
}

// BackupsDir resolves the paired character's backups directory.
func (ci CharInstall) BackupsDir() string {
	return ci.Char.BackupsDir(ci.Install)
}
