package steam

import (
	"path/filepath"

	serrors "github.com/matzehuels/sudet/pkg/errors"
)

// File names under the Steam config directory.
const (
	LoginUsersFile    = "loginusers.vdf"
	RemoteClientsFile = "remoteclients.vdf"
	LocalConfigFile   = "localconfig.vdf"
)

// Paths locates a Steam installation.
type Paths struct {
	// SteamDir is the Steam install root (contains config/, logs/, userdata/).
	SteamDir string
	// HTMLCacheDir is the embedded browser's cache directory.
	HTMLCacheDir string
}

// DefaultPaths returns the usual install locations for goos. getenv and home
// are injected so the result does not depend on the running process.
func DefaultPaths(goos string, getenv func(string) string, home string) Paths {
	switch goos {
	case "windows":
		programs := getenv("ProgramFiles(x86)")
		if programs == "" {
			programs = `C:\Program Files (x86)`
		}
		profile := getenv("USERPROFILE")
		if profile == "" {
			profile = home
		}
		return Paths{
			SteamDir:     filepath.Join(programs, "Steam"),
			HTMLCacheDir: filepath.Join(profile, "AppData", "Local", "Steam", "htmlcache"),
		}
	case "darwin":
		dir := filepath.Join(home, "Library", "Application Support", "Steam")
		return Paths{SteamDir: dir, HTMLCacheDir: filepath.Join(dir, "config", "htmlcache")}
	default:
		dir := filepath.Join(home, ".steam", "steam")
		return Paths{SteamDir: dir, HTMLCacheDir: filepath.Join(dir, "config", "htmlcache")}
	}
}

// ConfigDir returns the directory holding loginusers.vdf and remoteclients.vdf.
func (p Paths) ConfigDir() string { return filepath.Join(p.SteamDir, "config") }

// LoginUsers returns the path of loginusers.vdf.
func (p Paths) LoginUsers() string { return filepath.Join(p.ConfigDir(), LoginUsersFile) }

// RemoteClients returns the path of remoteclients.vdf.
func (p Paths) RemoteClients() string { return filepath.Join(p.ConfigDir(), RemoteClientsFile) }

// LogsDir returns the Steam client log directory.
func (p Paths) LogsDir() string { return filepath.Join(p.SteamDir, "logs") }

// UserDataDir returns the per-account data directory root.
func (p Paths) UserDataDir() string { return filepath.Join(p.SteamDir, "userdata") }

// LocalConfig returns the path of accountID's localconfig.vdf.
// The ID must be a decimal account ID.
func (p Paths) LocalConfig(accountID string) (string, error) {
	if err := serrors.ValidateAccountID(accountID); err != nil {
		return "", err
	}
	return filepath.Join(p.UserDataDir(), accountID, "config", LocalConfigFile), nil
}
