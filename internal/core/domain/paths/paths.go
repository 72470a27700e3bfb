/*
Package paths holds the filesystem locations gogo works with. A Paths value is
built once at startup and handed to every component that touches the disk.
*/
package paths

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

const (
	configDirName    = ".config/gogo"
	configFileName   = "gogo.conf"
	settingsFileName = "settings.yaml"
)

// Paths describes where gogo keeps its files.
type Paths struct {
	Home     string // The invoking user's home directory.
	Dir      string // Directory holding the config file.
	File     string // The alias config file.
	Settings string // Optional YAML settings file.
}

// Default builds the standard layout rooted at home.
func Default(home string) Paths {
	dir := filepath.Join(home, configDirName)
	return Paths{
		Home:     home,
		Dir:      dir,
		File:     filepath.Join(dir, configFileName),
		Settings: filepath.Join(dir, settingsFileName),
	}
}

// HomeDir returns the invoking user's home directory, preferring $HOME and
// falling back to the user database.
func HomeDir() (string, error) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home, nil
	}
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	return usr.HomeDir, nil
}

// ExpandHome replaces a leading "~" with home for "~" and "~/..." values.
// Other values, including "~user/...", are returned unchanged.
func ExpandHome(p, home string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return home + p[1:]
	}
	return p
}

// UserFriendly converts an absolute path under home to a ~/-based path for display.
func (p Paths) UserFriendly(absPath string) string {
	if p.Home == "" || !strings.HasPrefix(absPath, p.Home) {
		return absPath
	}
	if absPath == p.Home {
		return "~"
	}
	relPath, err := filepath.Rel(p.Home, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return absPath
	}
	return filepath.Join("~", relPath)
}
