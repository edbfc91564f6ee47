package tools

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// UserBinDir returns the per-OS directory where self-updated tools are
// installed. It is prepended to PATH at startup so updated tools shadow
// system ones.
func UserBinDir() string {
	return userBinDir(runtime.GOOS, os.Getenv("APPDATA"), homeDir())
}

func userBinDir(goos, appData, home string) string {
	switch goos {
	case "windows":
		if appData == "" {
			appData = home
		}
		return filepath.Join(appData, "QuickTube", "bin")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "QuickTube", "bin")
	default:
		return filepath.Join(home, ".local", "bin", "quicktube_tools")
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// PrependPath puts dir in front of PATH for this process and everything it
// spawns.
func PrependPath(dir string) {
	os.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// MakeBinDir creates the tool directory if needed.
func MakeBinDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// WasRunFromSrc checks if the binary was run from a Go build temp directory.
func WasRunFromSrc() bool {
	buildPath := filepath.Join(os.TempDir(), "go-build")
	return strings.HasPrefix(os.Args[0], buildPath)
}

// ScriptDir returns the directory holding the running binary. Under
// `go run` the binary lives in a throwaway build dir, so the working
// directory is used instead; the session log should not land in /tmp.
func ScriptDir() (string, error) {
	if WasRunFromSrc() {
		return os.Getwd()
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
