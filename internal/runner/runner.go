// Package runner executes the external collaborators (yt-dlp, svtplay-dl,
// mpv) synchronously. Their exit code is the whole contract.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/coffe/quicktube2/internal/session"
)

// Run executes a tool with inherited stdio and blocks until it exits.
// The exit code is reported separately from start failures: err is non-nil
// only when the process could not be started at all.
func Run(name string, args ...string) (int, error) {
	logCommand(name, args)
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	session.Errorf("command not run: %v", err)
	return -1, err
}

// Output executes a tool and captures its stdout. Stderr is folded into the
// returned error so metadata failures carry the tool's own message.
func Output(name string, args ...string) ([]byte, error) {
	logCommand(name, args)
	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

func logCommand(name string, args []string) {
	session.Logf("running: %s", shellescape.QuoteCommand(append([]string{name}, args...)))
}
