// Package clipboard reads the system clipboard by shelling out to the
// platform's paste tool, matching how the rest of the program treats
// external binaries.
package clipboard

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/coffe/quicktube2/internal/runner"
)

type pasteTool struct {
	name string
	args []string
}

// Tried in order on non-Windows systems; Wayland first, then X11, then
// macOS.
var unixTools = []pasteTool{
	{"wl-paste", nil},
	{"xclip", []string{"-o", "-selection", "clipboard"}},
	{"pbpaste", nil},
}

// Read returns the current clipboard text, or "" when no paste tool is
// available or the read fails. A missing tool and an empty clipboard look
// the same to the caller; neither is an error.
func Read() string {
	if runtime.GOOS == "windows" {
		out, err := runner.Output("powershell", "-command", "Get-Clipboard")
		if err != nil {
			return ""
		}
		return Sanitize(string(out))
	}
	for _, tool := range unixTools {
		if _, err := exec.LookPath(tool.name); err != nil {
			continue
		}
		out, err := runner.Output(tool.name, tool.args...)
		if err != nil {
			return ""
		}
		return Sanitize(string(out))
	}
	return ""
}

// Sanitize strips NUL bytes and surrounding whitespace from clipboard text.
// wl-paste pads its output with NULs on some compositors.
func Sanitize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
}
