// Package session keeps the append-only run log next to the binary.
// Logging is strictly best-effort: if the file cannot be opened or written,
// every call becomes a no-op and the interactive flow is never blocked.
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const logFileName = "log.txt"

var logger *log.Logger

// Init opens the session log in dir and writes the session separator.
func Init(dir string) {
	path := filepath.Join(dir, logFileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
	})
	logger.Info("--- new session started ---")
}

// Logf records one timestamped line. Safe to call before Init.
func Logf(format string, args ...any) {
	if logger == nil {
		return
	}
	logger.Info(fmt.Sprintf(format, args...))
}

// Errorf records one timestamped error line. Safe to call before Init.
func Errorf(format string, args ...any) {
	if logger == nil {
		return
	}
	logger.Error(fmt.Sprintf(format, args...))
}
